package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/bezier-anim/vmath"
)

// labelFontSize is the label size in surface units
const labelFontSize = 11.0

// RasterSurface draws into an anti-aliased pixel buffer, one pixel per surface unit
type RasterSurface struct {
	dc  *gg.Context
	err error // First draw failure, reported by EncodePNG and SavePNG

	LabelColor Color
}

// NewRasterSurface creates a width x height pixel surface with the Go Regular label font
func NewRasterSurface(width, height int) (*RasterSurface, error) {
	dc := gg.NewContext(width, height)

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	dc.SetFont(source.Face(labelFontSize))

	return &RasterSurface{dc: dc, LabelColor: ColorBlack}, nil
}

func (s *RasterSurface) ClearAndFill(c Color) {
	r, g, b := c.RGB().Float()
	s.dc.ClearWithColor(gg.RGB(r, g, b))
}

func (s *RasterSurface) StrokePolyline(points []vmath.Point, c Color, width float64) {
	if len(points) < 2 {
		return
	}
	s.dc.ClearPath()
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.setColor(c)
	s.dc.SetLineWidth(width)
	s.keep(s.dc.Stroke())
}

func (s *RasterSurface) FillCircle(center vmath.Point, radius float64, c Color) {
	s.dc.ClearPath()
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.setColor(c)
	s.keep(s.dc.Fill())
}

func (s *RasterSurface) DrawLabel(label string, pos vmath.Point) {
	s.setColor(s.LabelColor)
	// DrawString anchors at the baseline, shift down so pos is the top-left corner
	s.dc.DrawString(label, pos.X, pos.Y+labelFontSize)
}

// EncodePNG writes the current pixels as PNG
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}

// SavePNG writes the current pixels to a PNG file
func (s *RasterSurface) SavePNG(path string) error {
	if s.err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, s.err)
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context
func (s *RasterSurface) Close() error {
	return s.dc.Close()
}

// Err returns the first draw failure
func (s *RasterSurface) Err() error {
	return s.err
}

func (s *RasterSurface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("draw failed: %w", err)
	}
}

func (s *RasterSurface) setColor(c Color) {
	r, g, b := c.RGB().Float()
	s.dc.SetRGB(r, g, b)
}
