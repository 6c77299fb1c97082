// Package points owns the ordered set of control points that define a curve
package points

import (
	"strconv"

	"github.com/lixenwraith/bezier-anim/constants"
	"github.com/lixenwraith/bezier-anim/render"
	"github.com/lixenwraith/bezier-anim/vmath"
)

// ControlPoint is a user-placed curve control point
type ControlPoint struct {
	X, Y   float64
	Radius float64
	Label  string
	Color  render.Color

	// Priority is the creation id, breaks ties between overlapping hit test candidates
	Priority int

	// Grabbed is set while the point follows the pointer
	Grabbed bool
}

// Center returns the point position
func (p ControlPoint) Center() vmath.Point {
	return vmath.Pt(p.X, p.Y)
}

// AddOption customizes a point created by Add
type AddOption func(*ControlPoint)

// WithRadius overrides the default radius
func WithRadius(r float64) AddOption {
	return func(p *ControlPoint) { p.Radius = r }
}

// WithLabel overrides the default label, an empty label keeps the id label
func WithLabel(label string) AddOption {
	return func(p *ControlPoint) { p.Label = label }
}

// WithColor overrides the default fill color
func WithColor(c render.Color) AddOption {
	return func(p *ControlPoint) { p.Color = c }
}

// noGrab marks the absence of a grabbed point
const noGrab = -1

// Store is the ordered control point collection; order is both the curve polygon and drawing order
// Not safe for concurrent use, all access happens on the event loop goroutine
type Store struct {
	points  []ControlPoint
	nextID  int
	grabbed int // Priority of the grabbed point or noGrab
	version uint64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{grabbed: noGrab}
}

// Add appends a point with the next priority id and returns a copy of it
func (s *Store) Add(x, y float64, opts ...AddOption) ControlPoint {
	id := s.nextID
	s.nextID++

	p := ControlPoint{
		X:        x,
		Y:        y,
		Radius:   constants.DefaultPointRadius,
		Color:    render.ColorBlack,
		Priority: id,
	}
	for _, opt := range opts {
		opt(&p)
	}
	if p.Label == "" {
		p.Label = strconv.Itoa(id)
	}

	s.points = append(s.points, p)
	s.touch()
	return p
}

// RemoveLast pops the most recently added point, no-op when empty
func (s *Store) RemoveLast() {
	if len(s.points) == 0 {
		return
	}
	last := s.points[len(s.points)-1]
	if last.Priority == s.grabbed {
		s.grabbed = noGrab
	}
	s.points = s.points[:len(s.points)-1]
	s.touch()
}

// RemoveAll clears the store, resets the id generator and drops any grab
func (s *Store) RemoveAll() {
	s.points = nil
	s.nextID = 0
	s.grabbed = noGrab
	s.touch()
}

// HitTest returns the highest-priority point whose grab circle contains (x, y)
func (s *Store) HitTest(x, y float64) (ControlPoint, bool) {
	at := vmath.Pt(x, y)
	best := -1

	for i, p := range s.points {
		thresh := p.Radius + constants.GrabMargin
		if p.Center().DistanceSquared(at) > thresh*thresh {
			continue
		}
		if best < 0 || p.Priority > s.points[best].Priority {
			best = i
		}
	}

	if best < 0 {
		return ControlPoint{}, false
	}
	return s.points[best], true
}

// Grab marks the point with the given priority id as grabbed, releasing any previous grab
// Returns false when no such point exists
func (s *Store) Grab(id int) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	if prev := s.indexOf(s.grabbed); prev >= 0 {
		s.points[prev].Grabbed = false
	}
	s.points[idx].Grabbed = true
	s.grabbed = id
	return true
}

// Release drops the current grab, no-op when nothing is grabbed
func (s *Store) Release() {
	if idx := s.indexOf(s.grabbed); idx >= 0 {
		s.points[idx].Grabbed = false
	}
	s.grabbed = noGrab
}

// MoveGrabbed moves the grabbed point to (x, y), returns false when nothing is grabbed
func (s *Store) MoveGrabbed(x, y float64) bool {
	idx := s.indexOf(s.grabbed)
	if idx < 0 {
		return false
	}
	s.points[idx].X = x
	s.points[idx].Y = y
	s.touch()
	return true
}

// Grabbed returns a copy of the grabbed point
func (s *Store) Grabbed() (ControlPoint, bool) {
	idx := s.indexOf(s.grabbed)
	if idx < 0 {
		return ControlPoint{}, false
	}
	return s.points[idx], true
}

// Points projects the store to positions, in insertion order
func (s *Store) Points() []vmath.Point {
	out := make([]vmath.Point, len(s.points))
	for i, p := range s.points {
		out[i] = p.Center()
	}
	return out
}

// Snapshot returns copies of every point, in insertion order
func (s *Store) Snapshot() []ControlPoint {
	out := make([]ControlPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of points
func (s *Store) Len() int {
	return len(s.points)
}

// Version increases on every mutation that changes the curve; caches compare it to detect staleness
func (s *Store) Version() uint64 {
	return s.version
}

func (s *Store) touch() {
	s.version++
}

func (s *Store) indexOf(id int) int {
	if id == noGrab {
		return -1
	}
	for i := range s.points {
		if s.points[i].Priority == id {
			return i
		}
	}
	return -1
}
