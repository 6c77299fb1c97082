package curve

import (
	"github.com/lixenwraith/bezier-anim/constants"
	"github.com/lixenwraith/bezier-anim/vmath"
)

// MotionPath samples the curve at every integer parameter
// Returns MotionPathSize points, or nil when there are fewer than two control points
func MotionPath(points []vmath.Point) []vmath.Point {
	if len(points) <= 1 {
		return nil
	}

	path := make([]vmath.Point, 0, constants.MotionPathSize)
	for t := constants.MinTime; t <= constants.MaxTime; t++ {
		// t is always in range and there are at least two points
		apex, _ := PointAt(points, t)
		path = append(path, apex)
	}
	return path
}

// Until returns the prefix of path traced from parameter 0 through t inclusive
func Until(path []vmath.Point, t int) []vmath.Point {
	end := vmath.Clamp(t+1, 0, len(path))
	return path[:end]
}
