package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bezier-anim/render"
	"github.com/lixenwraith/bezier-anim/vmath"
)

func TestAdd_Defaults(t *testing.T) {
	s := NewStore()

	p := s.Add(10, 20)
	assert.Equal(t, 10.0, p.X)
	assert.Equal(t, 20.0, p.Y)
	assert.Equal(t, 7.0, p.Radius)
	assert.Equal(t, "0", p.Label)
	assert.Equal(t, render.ColorBlack, p.Color)
	assert.Equal(t, 0, p.Priority)
	assert.False(t, p.Grabbed)

	q := s.Add(1, 1, WithRadius(3), WithLabel("P"), WithColor(render.ColorRed))
	assert.Equal(t, 3.0, q.Radius)
	assert.Equal(t, "P", q.Label)
	assert.Equal(t, render.ColorRed, q.Color)
	assert.Equal(t, 1, q.Priority)

	r := s.Add(2, 2, WithLabel(""))
	assert.Equal(t, "2", r.Label)
}

func TestPriorities_MonotonicAcrossRemoval(t *testing.T) {
	s := NewStore()
	s.Add(0, 0)
	s.Add(0, 0)
	s.RemoveLast()
	p := s.Add(0, 0)

	assert.Equal(t, 2, p.Priority, "popped ids are not reused")
	assert.Equal(t, "2", p.Label)

	snap := s.Snapshot()
	for i := 1; i < len(snap); i++ {
		assert.Greater(t, snap[i].Priority, snap[i-1].Priority)
	}
}

func TestRemoveAll_ResetsIDs(t *testing.T) {
	s := NewStore()
	s.Add(1, 1)
	s.Add(2, 2)
	s.Add(3, 3)

	s.RemoveAll()
	assert.Equal(t, 0, s.Len())

	p := s.Add(4, 4)
	assert.Equal(t, "0", p.Label)
	assert.Equal(t, 0, p.Priority)
}

func TestRemoveLast(t *testing.T) {
	s := NewStore()
	s.RemoveLast()
	assert.Equal(t, 0, s.Len(), "empty removal is a no-op")

	s.Add(1, 1)
	s.Add(2, 2)
	s.Add(3, 3)
	s.RemoveLast()

	assert.Equal(t, []vmath.Point{vmath.Pt(1, 1), vmath.Pt(2, 2)}, s.Points())
}

func TestHitTest(t *testing.T) {
	s := NewStore()
	s.Add(100, 100)

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"center", 100, 100, true},
		{"inside radius", 104, 104, true},
		{"on grab margin edge", 112, 100, true},
		{"just outside margin", 112.01, 100, false},
		{"diagonal outside", 109, 109, false},
		{"far", 300, 300, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := s.HitTest(tc.x, tc.y)
			assert.Equal(t, tc.hit, ok)
			if tc.hit {
				assert.Equal(t, 0, p.Priority)
			}
		})
	}
}

func TestHitTest_PriorityTieBreak(t *testing.T) {
	s := NewStore()
	s.Add(100, 100)
	s.Add(104, 100)
	s.Add(300, 300)

	p, ok := s.HitTest(102, 100)
	require.True(t, ok)
	assert.Equal(t, 1, p.Priority, "later point wins")

	// Highest priority wins regardless of slice order
	s.RemoveAll()
	s.Add(0, 0)
	s.Add(50, 50)
	s.Add(3, 3)
	p, ok = s.HitTest(1, 1)
	require.True(t, ok)
	assert.Equal(t, 2, p.Priority)
}

func TestHitTest_Idempotent(t *testing.T) {
	s := NewStore()
	s.Add(10, 10)
	s.Add(12, 12)

	a, okA := s.HitTest(11, 11)
	b, okB := s.HitTest(11, 11)
	assert.Equal(t, okA, okB)
	assert.Equal(t, a, b)
}

func TestGrabMoveRelease(t *testing.T) {
	s := NewStore()
	s.Add(10, 10)
	s.Add(50, 50)

	assert.False(t, s.MoveGrabbed(1, 1), "nothing grabbed")
	assert.False(t, s.Grab(42))

	require.True(t, s.Grab(0))
	g, ok := s.Grabbed()
	require.True(t, ok)
	assert.Equal(t, 0, g.Priority)
	assert.True(t, g.Grabbed)

	require.True(t, s.MoveGrabbed(30, 40))
	assert.Equal(t, vmath.Pt(30, 40), s.Points()[0])

	// Grabbing another point transfers the grab
	require.True(t, s.Grab(1))
	snap := s.Snapshot()
	assert.False(t, snap[0].Grabbed)
	assert.True(t, snap[1].Grabbed)

	s.Release()
	_, ok = s.Grabbed()
	assert.False(t, ok)
	for _, p := range s.Snapshot() {
		assert.False(t, p.Grabbed)
	}

	s.Release()
	assert.False(t, s.MoveGrabbed(0, 0))
}

func TestGrab_DroppedByRemoval(t *testing.T) {
	t.Run("remove all", func(t *testing.T) {
		s := NewStore()
		s.Add(10, 10)
		require.True(t, s.Grab(0))

		s.RemoveAll()
		s.Add(10, 10)

		_, ok := s.Grabbed()
		assert.False(t, ok, "new point with reused id must not inherit the grab")
		assert.False(t, s.MoveGrabbed(99, 99))
	})

	t.Run("remove last", func(t *testing.T) {
		s := NewStore()
		s.Add(10, 10)
		s.Add(20, 20)
		require.True(t, s.Grab(1))

		s.RemoveLast()
		_, ok := s.Grabbed()
		assert.False(t, ok)
	})

	t.Run("remove other", func(t *testing.T) {
		s := NewStore()
		s.Add(10, 10)
		s.Add(20, 20)
		require.True(t, s.Grab(0))

		s.RemoveLast()
		g, ok := s.Grabbed()
		require.True(t, ok)
		assert.Equal(t, 0, g.Priority)
	})
}

func TestVersion(t *testing.T) {
	s := NewStore()
	v := s.Version()

	s.Add(1, 1)
	assert.Greater(t, s.Version(), v)
	v = s.Version()

	s.HitTest(1, 1)
	s.Points()
	s.Grab(0)
	s.Release()
	assert.Equal(t, v, s.Version(), "reads and grabs do not change the curve")

	s.Grab(0)
	s.MoveGrabbed(5, 5)
	assert.Greater(t, s.Version(), v)
	v = s.Version()

	s.RemoveLast()
	assert.Greater(t, s.Version(), v)
	v = s.Version()

	s.RemoveAll()
	assert.Greater(t, s.Version(), v)
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Add(1, 1)

	snap := s.Snapshot()
	snap[0].X = 99
	pts := s.Points()
	pts[0].Y = 99

	assert.Equal(t, vmath.Pt(1, 1), s.Points()[0])
}
