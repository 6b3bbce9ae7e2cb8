package wheel

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"

	"prize-wheel/internal/event"
)

// ImageLoader fetches the wheel image asynchronously and reports through done.
// done may be called from any goroutine, including synchronously.
type ImageLoader interface {
	Load(src string, done func(img image.Image, err error))
}

// FileImageLoader decodes PNG, JPEG or WebP files from disk on a goroutine.
type FileImageLoader struct{}

// Load implements ImageLoader.
func (FileImageLoader) Load(src string, done func(image.Image, error)) {
	go func() {
		img, err := DecodeImageFile(src)
		done(img, err)
	}()
}

// DecodeImageFile reads and decodes one image file.
func DecodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// ImageLoaded is the payload of event.ImageLoaded.
type ImageLoaded struct {
	Source string
	Err    error
}

// ImageError returns the last wheel image load failure, if any.
func (w *Wheel) ImageError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.imageErr
}

// ImageReady reports whether the wheel image has been decoded.
func (w *Wheel) ImageReady() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.image != nil
}

func (w *Wheel) loadImage() {
	w.mu.Lock()
	if w.loading || w.image != nil || w.imageErr != nil || w.surface == nil {
		w.mu.Unlock()
		return
	}
	src := w.cfg.WheelImage
	if src == "" {
		w.imageErr = ErrNoWheelImage
		w.mu.Unlock()
		Logger().Warn("wheel: image mode without an image source")
		return
	}
	w.loading = true
	loader := w.loader
	w.mu.Unlock()

	Logger().Debug("wheel: loading image", "src", src)
	loader.Load(src, func(img image.Image, err error) {
		w.imageLoaded(src, img, err)
	})
}

// imageLoaded stores the result and redraws once the image is available.
func (w *Wheel) imageLoaded(src string, img image.Image, err error) {
	w.mu.Lock()
	w.loading = false
	if err == nil && img == nil {
		err = fmt.Errorf("loader returned no image for %s", src)
	}
	if err != nil {
		w.imageErr = fmt.Errorf("failed to load wheel image: %w", err)
		w.mu.Unlock()
		Logger().Warn("wheel: image load failed", "src", src, "err", err)
		w.dispatch(event.ImageLoaded, ImageLoaded{Source: src, Err: err})
		return
	}
	w.image = img
	w.mu.Unlock()
	w.onSurface(func() {
		w.mu.Lock()
		w.drawLocked(false)
		w.mu.Unlock()
		w.dispatch(event.ImageLoaded, ImageLoaded{Source: src})
	})
}

// drawWheelImage paints the loaded image centred and rotated with the wheel.
func (w *Wheel) drawWheelImage() {
	cfg := &w.cfg
	b := w.image.Bounds()
	sf := w.surface
	sf.Push()
	defer sf.Pop()
	sf.Translate(cfg.CenterX, cfg.CenterY)
	sf.Rotate(DegToRad(cfg.RotationAngle + directionOffset(cfg.ImageDirection)))
	sf.DrawImage(w.image, -float64(b.Dx())/2, -float64(b.Dy())/2)
}

// directionOffset turns an image drawn facing dir so that its top faces north.
func directionOffset(dir ImageDirection) float64 {
	switch dir {
	case ImageEast:
		return -90
	case ImageSouth:
		return -180
	case ImageWest:
		return -270
	}
	return 0
}
