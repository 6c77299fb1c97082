package vmath

import (
	"fmt"
	"math"
)

// Point is a position on the drawing surface in surface units
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y)
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Lerp returns p + (o - p) * u
func (p Point) Lerp(o Point, u float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*u,
		Y: p.Y + (o.Y-p.Y)*u,
	}
}

// DistanceSquared returns the squared euclidean distance, avoids sqrt for hit tests
func (p Point) DistanceSquared(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// ApproxEqual reports whether both coordinates differ by at most eps
func (p Point) ApproxEqual(o Point, eps float64) bool {
	return math.Abs(p.X-o.X) <= eps && math.Abs(p.Y-o.Y) <= eps
}

// Clamp confines v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
