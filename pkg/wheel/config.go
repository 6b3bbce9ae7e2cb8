package wheel

// DrawMode selects how the wheel body is painted.
type DrawMode string

const (
	DrawModeCode  DrawMode = "code"
	DrawModeImage DrawMode = "image"
)

// TextOrientation — how segment labels are laid out.
type TextOrientation string

const (
	TextHorizontal TextOrientation = "horizontal"
	TextVertical   TextOrientation = "vertical"
	TextCurved     TextOrientation = "curved"
)

// TextAlignment positions a label relative to its anchor.
type TextAlignment string

const (
	TextAlignCenter TextAlignment = "center"
	TextAlignLeft   TextAlignment = "left"
	TextAlignRight  TextAlignment = "right"
)

// TextDirection flips labels when reversed.
type TextDirection string

const (
	TextNormal   TextDirection = "normal"
	TextReversed TextDirection = "reversed"
)

// ImageDirection is the compass direction the top of the wheel image faces.
type ImageDirection string

const (
	ImageNorth ImageDirection = "N"
	ImageEast  ImageDirection = "E"
	ImageSouth ImageDirection = "S"
	ImageWest  ImageDirection = "W"
)

// AnimationType — supported spin kinds. Only spinToStop exists.
type AnimationType string

const AnimationSpinToStop AnimationType = "spinToStop"

// Defaults applied by DefaultConfig.
const (
	DefaultFillStyle     = "silver"
	DefaultStrokeStyle   = "black"
	DefaultLineWidth     = 1.0
	DefaultFontFamily    = "Arial"
	DefaultFontSize      = 20.0
	DefaultFontWeight    = "normal"
	DefaultTextFillStyle = "black"
	DefaultTextLineWidth = 1.0
	DefaultPinRadius     = 3.0
	DefaultSpinDuration  = 5.0
)

// Segment is one wedge of the wheel. Size is in degrees; every style field
// left at its zero value inherits the wheel-level default.
type Segment struct {
	Size float64 `json:"size"`
	Text string  `json:"text,omitempty"`

	FillStyle   string  `json:"fill_style,omitempty"`
	StrokeStyle string  `json:"stroke_style,omitempty"`
	LineWidth   float64 `json:"line_width,omitempty"`

	TextFontFamily  string          `json:"text_font_family,omitempty"`
	TextFontSize    float64         `json:"text_font_size,omitempty"`
	TextFontWeight  string          `json:"text_font_weight,omitempty"`
	TextOrientation TextOrientation `json:"text_orientation,omitempty"`
	TextAlignment   TextAlignment   `json:"text_alignment,omitempty"`
	TextDirection   TextDirection   `json:"text_direction,omitempty"`
	TextMargin      float64         `json:"text_margin,omitempty"`
	TextFillStyle   string          `json:"text_fill_style,omitempty"`
	TextStrokeStyle string          `json:"text_stroke_style,omitempty"`
	TextLineWidth   float64         `json:"text_line_width,omitempty"`
}

// Pins are the small discs spaced around the rim.
type Pins struct {
	Number      int     `json:"number"`
	Margin      float64 `json:"margin"`
	OuterRadius float64 `json:"outer_radius"`
	FillStyle   string  `json:"fill_style,omitempty"`
	StrokeStyle string  `json:"stroke_style,omitempty"`
	LineWidth   float64 `json:"line_width,omitempty"`
}

// PointerGuide is a debug line drawn at the pointer angle.
type PointerGuide struct {
	StrokeStyle string  `json:"stroke_style,omitempty"`
	LineWidth   float64 `json:"line_width,omitempty"`
}

// FinishedFunc receives the indicated segment when a spin completes.
// number is 1-indexed; 0 (and a nil seg) when no segment is under the pointer.
type FinishedFunc func(number int, seg *Segment)

// AnimationSpec describes a spin-to-stop animation.
type AnimationSpec struct {
	Type      AnimationType `json:"type"`
	Spins     int           `json:"spins"`
	StopAngle float64       `json:"stop_angle"`
	Duration  float64       `json:"duration"` // seconds
	Easing    string        `json:"easing,omitempty"`

	// CallbackName is looked up in the handler table passed with WithHandlers.
	CallbackName string       `json:"callback,omitempty"`
	Callback     FinishedFunc `json:"-"`
}

// TargetRotation — absolute rotation the spin ends on.
func (a AnimationSpec) TargetRotation() float64 {
	return float64(a.Spins)*360 + a.StopAngle
}

// Config is the full wheel configuration. Start from DefaultConfig: boolean
// flags default to values a zero Config cannot express.
type Config struct {
	CenterX       float64   `json:"center_x"`
	CenterY       float64   `json:"center_y"`
	OuterRadius   float64   `json:"outer_radius"`
	InnerRadius   float64   `json:"inner_radius"`
	NumSegments   int       `json:"num_segments"`
	Segments      []Segment `json:"segments"`
	RotationAngle float64   `json:"rotation_angle"`
	DrawMode      DrawMode  `json:"draw_mode"`

	FillStyle   string  `json:"fill_style"`
	StrokeStyle string  `json:"stroke_style"`
	LineWidth   float64 `json:"line_width"`

	TextFontFamily  string          `json:"text_font_family"`
	TextFontSize    float64         `json:"text_font_size"`
	TextFontWeight  string          `json:"text_font_weight"`
	TextOrientation TextOrientation `json:"text_orientation"`
	TextAlignment   TextAlignment   `json:"text_alignment"`
	TextDirection   TextDirection   `json:"text_direction"`
	TextMargin      float64         `json:"text_margin"`
	TextFillStyle   string          `json:"text_fill_style"`
	TextStrokeStyle string          `json:"text_stroke_style"`
	TextLineWidth   float64         `json:"text_line_width"`

	ClearTheCanvas bool           `json:"clear_the_canvas"`
	ImageOverlay   bool           `json:"image_overlay"`
	DrawText       bool           `json:"draw_text"`
	PointerAngle   float64        `json:"pointer_angle"`
	WheelImage     string         `json:"wheel_image"`
	ImageDirection ImageDirection `json:"image_direction"`
	Responsive     bool           `json:"responsive"`

	Animation    *AnimationSpec `json:"animation,omitempty"`
	Pins         *Pins          `json:"pins,omitempty"`
	PointerGuide *PointerGuide  `json:"pointer_guide,omitempty"`
}

// DefaultConfig returns a Config with every documented default set.
// Decoding JSON into the returned value keeps defaults for absent keys.
func DefaultConfig() Config {
	return Config{
		DrawMode:        DrawModeCode,
		FillStyle:       DefaultFillStyle,
		StrokeStyle:     DefaultStrokeStyle,
		LineWidth:       DefaultLineWidth,
		TextFontFamily:  DefaultFontFamily,
		TextFontSize:    DefaultFontSize,
		TextFontWeight:  DefaultFontWeight,
		TextOrientation: TextHorizontal,
		TextAlignment:   TextAlignCenter,
		TextDirection:   TextNormal,
		TextFillStyle:   DefaultTextFillStyle,
		TextLineWidth:   DefaultTextLineWidth,
		ClearTheCanvas:  true,
		DrawText:        true,
		ImageDirection:  ImageNorth,
	}
}

// DefaultAnimation returns a spin spec with the default duration and easing.
func DefaultAnimation() *AnimationSpec {
	return &AnimationSpec{
		Type:     AnimationSpinToStop,
		Duration: DefaultSpinDuration,
	}
}

// applyDefaults fills enum fields left empty by a hand-built Config and
// derives centre and radius from the surface. Geometry given explicitly wins.
func applyDefaults(cfg *Config, surface Surface) derived {
	var d derived
	if cfg.DrawMode == "" {
		cfg.DrawMode = DrawModeCode
	}
	if cfg.TextOrientation == "" {
		cfg.TextOrientation = TextHorizontal
	}
	if cfg.TextAlignment == "" {
		cfg.TextAlignment = TextAlignCenter
	}
	if cfg.TextDirection == "" {
		cfg.TextDirection = TextNormal
	}
	if cfg.ImageDirection == "" {
		cfg.ImageDirection = ImageNorth
	}
	if cfg.TextFontSize <= 0 {
		cfg.TextFontSize = DefaultFontSize
	}

	switch {
	case len(cfg.Segments) == 0:
		cfg.NumSegments = 0
	case cfg.NumSegments <= 0 || cfg.NumSegments > len(cfg.Segments):
		cfg.NumSegments = len(cfg.Segments)
	}

	if surface != nil {
		d.center = cfg.CenterX == 0 && cfg.CenterY == 0
		d.radius = cfg.OuterRadius == 0
		deriveGeometry(cfg, surface, d)
	}
	return d
}

// derived remembers which geometry fields follow the surface size.
type derived struct {
	center bool
	radius bool
}

func deriveGeometry(cfg *Config, surface Surface, d derived) {
	w, h := surface.Size()
	if d.center {
		cfg.CenterX = w / 2
		cfg.CenterY = h / 2
	}
	if d.radius {
		cfg.OuterRadius = min(w, h)/2 - cfg.LineWidth
	}
}
