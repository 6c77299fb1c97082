package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(100, 50)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Pt(50, 25), a.Lerp(b, 0.5))
	assert.Equal(t, Pt(25, 12.5), a.Lerp(b, 0.25))
}

func TestDistanceSquared(t *testing.T) {
	assert.Equal(t, 25.0, Pt(0, 0).DistanceSquared(Pt(3, 4)))
	assert.Equal(t, 0.0, Pt(7, 7).DistanceSquared(Pt(7, 7)))
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, Pt(1, 1).ApproxEqual(Pt(1+1e-12, 1-1e-12), 1e-9))
	assert.False(t, Pt(1, 1).ApproxEqual(Pt(1.1, 1), 1e-9))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want int
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{101, 100},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Clamp(tc.v, 0, 100), "clamp(%d)", tc.v)
	}
}
