package render

import "github.com/lixenwraith/bezier-anim/vmath"

// Surface receives draw commands in surface coordinates
// Implementations own the mapping to their backing store (terminal cells, pixels, a command log)
type Surface interface {
	// ClearAndFill paints the whole surface with a single color
	ClearAndFill(c Color)

	// StrokePolyline connects consecutive points with line segments
	StrokePolyline(points []vmath.Point, c Color, width float64)

	// FillCircle paints a filled disc
	FillCircle(center vmath.Point, radius float64, c Color)

	// DrawLabel writes text with its top-left corner near pos
	DrawLabel(text string, pos vmath.Point)
}

// Presenter is optionally implemented by surfaces that buffer commands until flushed
type Presenter interface {
	Present()
}

// Present flushes s when it buffers output
func Present(s Surface) {
	if p, ok := s.(Presenter); ok {
		p.Present()
	}
}
