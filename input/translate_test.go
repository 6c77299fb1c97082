package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/bezier-anim/vmath"
)

// gridMapper maps cell (x, y) to (10x, 10y) inside a 10x10 grid
type gridMapper struct{}

func (gridMapper) ToSurface(x, y int) (vmath.Point, bool) {
	if x < 0 || y < 0 || x >= 10 || y >= 10 {
		return vmath.Point{}, false
	}
	return vmath.Pt(float64(x*10), float64(y*10)), true
}

func (gridMapper) PickSlop() float64 { return 7 }

func mouse(x, y int, b tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, b, tcell.ModNone)
}

func TestTranslator_PressDragRelease(t *testing.T) {
	tr := NewTranslator(gridMapper{})

	ev, ok := tr.Translate(mouse(1, 2, tcell.Button1))
	assert.True(t, ok)
	assert.Equal(t, PointerEvent{Action: PointerDown, X: 10, Y: 20, Slop: 7}, ev)
	assert.True(t, tr.Pressed())

	_, ok = tr.Translate(mouse(1, 2, tcell.Button1))
	assert.False(t, ok, "repeated report of the same cell is dropped")

	ev, ok = tr.Translate(mouse(3, 2, tcell.Button1))
	assert.True(t, ok)
	assert.Equal(t, PointerEvent{Action: PointerMove, X: 30, Y: 20}, ev)

	ev, ok = tr.Translate(mouse(3, 2, tcell.ButtonNone))
	assert.True(t, ok)
	assert.Equal(t, PointerUp, ev.Action)
	assert.False(t, tr.Pressed())
}

func TestTranslator_PressOutsideIgnored(t *testing.T) {
	tr := NewTranslator(gridMapper{})

	_, ok := tr.Translate(mouse(20, 2, tcell.Button1))
	assert.False(t, ok)
	assert.False(t, tr.Pressed())
}

func TestTranslator_ReleaseOutsideStillReported(t *testing.T) {
	tr := NewTranslator(gridMapper{})
	tr.Translate(mouse(4, 4, tcell.Button1))

	_, ok := tr.Translate(mouse(30, 4, tcell.Button1))
	assert.False(t, ok, "drag outside the surface is dropped")

	ev, ok := tr.Translate(mouse(30, 4, tcell.ButtonNone))
	assert.True(t, ok)
	assert.Equal(t, PointerEvent{Action: PointerUp, X: 40, Y: 40}, ev)
}

func TestTranslator_HoverIsMove(t *testing.T) {
	tr := NewTranslator(gridMapper{})

	ev, ok := tr.Translate(mouse(5, 5, tcell.ButtonNone))
	assert.True(t, ok)
	assert.Equal(t, PointerMove, ev.Action)
}
