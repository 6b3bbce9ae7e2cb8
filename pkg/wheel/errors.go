package wheel

import "errors"

var (
	ErrOverlayUnsupported   = errors.New("wheel: image overlay is not supported in image draw mode")
	ErrInvalidRadius        = errors.New("wheel: inner radius must be smaller than outer radius")
	ErrUnknownHandler       = errors.New("wheel: unknown completion handler")
	ErrUnsupportedAnimation = errors.New("wheel: unsupported animation type")
	ErrAnimationRunning     = errors.New("wheel: animation already running")
	ErrNoTweener            = errors.New("wheel: no tweener attached")
	ErrNoWheelImage         = errors.New("wheel: image mode without wheel image")
	ErrSegmentSum           = errors.New("wheel: segment sizes do not add up to 360 degrees")
	ErrNoSegments           = errors.New("wheel: no segments")
)
