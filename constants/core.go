package constants

import "time"

// Loop & Playback Timing
const (
	// FrameUpdateInterval is the event loop frame interval (~60 FPS), scheduled tasks run on frame boundaries
	FrameUpdateInterval = 16 * time.Millisecond

	// TickDelay is the minimum delay between playback ticks (~33 steps/second)
	TickDelay = 30 * time.Millisecond
)

// Curve Parameter
const (
	// MinTime and MaxTime bound the integer curve parameter
	MinTime = 0
	MaxTime = 100

	// MotionPathSize is the number of samples in a motion path, one per integer parameter
	MotionPathSize = MaxTime - MinTime + 1
)

// Control Points
const (
	// DefaultPointRadius is the radius of a point added without an explicit radius
	DefaultPointRadius = 7.0

	// GrabMargin is added to a point's radius when hit testing
	GrabMargin = 5.0

	// LabelOffset is the distance of a point's label from its rim
	LabelOffset = 5.0
)

// Canvas Defaults
const (
	DefaultCanvasWidth  = 500
	DefaultCanvasHeight = 500
)

// Stroke widths in surface units
const (
	GuideLineWidth = 1.0
	CurveLineWidth = 2.0

	// ApexMarkerRadius is the radius of the dot marking the curve point at the current time
	ApexMarkerRadius = 3.0
)

// ControlBarRows is the number of terminal rows reserved below the canvas
const ControlBarRows = 2
