// Package curve evaluates Bézier curves with De Casteljau's algorithm
package curve

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/bezier-anim/constants"
	"github.com/lixenwraith/bezier-anim/vmath"
)

// ErrInvalidParameter is returned when the curve parameter is outside [MinTime, MaxTime]
var ErrInvalidParameter = errors.New("curve parameter out of range")

// Level is one row of the interpolation pyramid
type Level []vmath.Point

// Pyramid holds every interpolation level, control polygon first
type Pyramid []Level

// Apex returns the curve point, the single element of the last level
// ok is false for an empty pyramid or when the last level does not hold exactly one point
func (p Pyramid) Apex() (vmath.Point, bool) {
	if len(p) == 0 {
		return vmath.Point{}, false
	}
	last := p[len(p)-1]
	if len(last) != 1 {
		return vmath.Point{}, false
	}
	return last[0], true
}

// ValidateTime checks t against the parameter range
func ValidateTime(t int) error {
	if t < constants.MinTime || t > constants.MaxTime {
		return fmt.Errorf("%w: t=%d, want [%d,%d]", ErrInvalidParameter, t, constants.MinTime, constants.MaxTime)
	}
	return nil
}

// Evaluate builds the De Casteljau pyramid for points at integer parameter t
// Level 0 is a copy of points, never aliasing the caller's slice
func Evaluate(points []vmath.Point, t int) (Pyramid, error) {
	if err := ValidateTime(t); err != nil {
		return nil, err
	}

	u := float64(t) / constants.MaxTime

	first := make(Level, len(points))
	copy(first, points)

	pyramid := make(Pyramid, 1, max(len(points), 1))
	pyramid[0] = first

	for i := 0; i < len(points)-1; i++ {
		last := pyramid[i]
		if len(last) == 1 {
			break
		}

		next := make(Level, len(last)-1)
		for j := range next {
			next[j] = last[j].Lerp(last[j+1], u)
		}
		pyramid = append(pyramid, next)
	}

	return pyramid, nil
}

// PointAt returns only the curve point at t
func PointAt(points []vmath.Point, t int) (vmath.Point, error) {
	pyramid, err := Evaluate(points, t)
	if err != nil {
		return vmath.Point{}, err
	}
	apex, ok := pyramid.Apex()
	if !ok {
		return vmath.Point{}, fmt.Errorf("%w: no curve point for %d control points", ErrInvalidParameter, len(points))
	}
	return apex, nil
}
