package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bezier-anim/vmath"
)

// Glyphs used to rasterize draw commands into cells
const (
	glyphThin   = '·'
	glyphThick  = '•'
	glyphDisc   = '█'
	glyphMarker = '●'
)

// Region is a rectangle of terminal cells
type Region struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether cell (x, y) lies inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// TerminalSurface draws a logical width x height surface into a region of a tcell screen
// Not safe for concurrent use, callers draw from the event loop goroutine
type TerminalSurface struct {
	screen tcell.Screen
	width  float64
	height float64
	region Region
	bg     RGB

	LabelColor Color
}

// NewTerminalSurface creates a surface covering the whole screen
func NewTerminalSurface(screen tcell.Screen, width, height float64) *TerminalSurface {
	cols, rows := screen.Size()
	return &TerminalSurface{
		screen:     screen,
		width:      width,
		height:     height,
		region:     Region{Width: cols, Height: rows},
		bg:         RGBWhite,
		LabelColor: ColorBlack,
	}
}

// SetRegion moves the surface to a new cell rectangle, used on terminal resize
func (s *TerminalSurface) SetRegion(r Region) {
	s.region = r
}

// Region returns the cell rectangle backing the surface
func (s *TerminalSurface) Region() Region {
	return s.region
}

// ToCell maps a surface point to the cell containing it
// ok is false when the point falls outside the region
func (s *TerminalSurface) ToCell(p vmath.Point) (x, y int, ok bool) {
	if s.region.Width <= 0 || s.region.Height <= 0 {
		return 0, 0, false
	}
	cx := int(math.Floor(p.X * float64(s.region.Width) / s.width))
	cy := int(math.Floor(p.Y * float64(s.region.Height) / s.height))
	x, y = s.region.X+cx, s.region.Y+cy
	return x, y, s.region.Contains(x, y)
}

// ToSurface maps a cell to the surface point at its center
// ok is false when the cell is outside the region
func (s *TerminalSurface) ToSurface(x, y int) (vmath.Point, bool) {
	if !s.region.Contains(x, y) {
		return vmath.Point{}, false
	}
	cx := float64(x-s.region.X) + 0.5
	cy := float64(y-s.region.Y) + 0.5
	return vmath.Pt(
		cx*s.width/float64(s.region.Width),
		cy*s.height/float64(s.region.Height),
	), true
}

// PickSlop returns half the cell diagonal in surface units
// A press reports its cell center, so anything drawn in that cell is within this distance of it
func (s *TerminalSurface) PickSlop() float64 {
	if s.region.Width <= 0 || s.region.Height <= 0 {
		return 0
	}
	cw := s.width / float64(s.region.Width)
	ch := s.height / float64(s.region.Height)
	return math.Hypot(cw, ch) / 2
}

func (s *TerminalSurface) ClearAndFill(c Color) {
	s.bg = c.RGB()
	style := tcell.StyleDefault.Background(s.bg.Tcell())
	for y := s.region.Y; y < s.region.Y+s.region.Height; y++ {
		for x := s.region.X; x < s.region.X+s.region.Width; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *TerminalSurface) StrokePolyline(points []vmath.Point, c Color, width float64) {
	if len(points) == 0 {
		return
	}
	glyph := glyphThin
	if width >= 2 {
		glyph = glyphThick
	}
	style := s.style(c)

	// Segment endpoints may fall outside the region, plot clips per cell
	cellOf := func(p vmath.Point) (int, int) {
		x := s.region.X + int(math.Floor(p.X*float64(s.region.Width)/s.width))
		y := s.region.Y + int(math.Floor(p.Y*float64(s.region.Height)/s.height))
		return x, y
	}

	x0, y0 := cellOf(points[0])
	s.plot(x0, y0, glyph, style)
	for _, p := range points[1:] {
		x1, y1 := cellOf(p)
		traceLine(x0, y0, x1, y1, func(x, y int) {
			s.plot(x, y, glyph, style)
		})
		x0, y0 = x1, y1
	}
}

func (s *TerminalSurface) FillCircle(center vmath.Point, radius float64, c Color) {
	style := s.style(c)
	r2 := radius * radius
	covered := false

	for y := s.region.Y; y < s.region.Y+s.region.Height; y++ {
		for x := s.region.X; x < s.region.X+s.region.Width; x++ {
			p, _ := s.ToSurface(x, y)
			if p.DistanceSquared(center) <= r2 {
				s.screen.SetContent(x, y, glyphDisc, nil, style)
				covered = true
			}
		}
	}

	// Discs smaller than a cell still get a marker
	if !covered {
		if x, y, ok := s.ToCell(center); ok {
			s.screen.SetContent(x, y, glyphMarker, nil, style)
		}
	}
}

func (s *TerminalSurface) DrawLabel(text string, pos vmath.Point) {
	x, y, ok := s.ToCell(pos)
	if !ok {
		return
	}
	style := s.style(s.LabelColor)
	for _, r := range text {
		if !s.region.Contains(x, y) {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Present pushes the cell buffer to the terminal
func (s *TerminalSurface) Present() {
	s.screen.Show()
}

func (s *TerminalSurface) style(c Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c.RGB().Tcell()).Background(s.bg.Tcell())
}

func (s *TerminalSurface) plot(x, y int, glyph rune, style tcell.Style) {
	if s.region.Contains(x, y) {
		s.screen.SetContent(x, y, glyph, nil, style)
	}
}

// traceLine visits every cell of the Bresenham line from (x0, y0) to (x1, y1), endpoints included
func traceLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
