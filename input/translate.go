package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bezier-anim/vmath"
)

// CellMapper maps a terminal cell to surface coordinates
type CellMapper interface {
	ToSurface(x, y int) (vmath.Point, bool)

	// PickSlop is the largest distance from a cell center to any point of the cell
	PickSlop() float64
}

// Translator turns tcell button-state mouse reports into pointer down/move/up transitions
// tcell reports button state, not edges, so the translator remembers whether the primary button is held
type Translator struct {
	mapper  CellMapper
	pressed bool
	last    vmath.Point
}

// NewTranslator creates a translator over the given cell mapping
func NewTranslator(mapper CellMapper) *Translator {
	return &Translator{mapper: mapper}
}

// Pressed reports whether a press started inside the surface is still held
func (t *Translator) Pressed() bool {
	return t.pressed
}

// Translate converts a mouse report, ok is false when it produces no pointer event
// A press outside the surface is ignored; a release is always reported once a press was seen
func (t *Translator) Translate(ev *tcell.EventMouse) (PointerEvent, bool) {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0
	p, inside := t.mapper.ToSurface(x, y)

	switch {
	case held && !t.pressed:
		if !inside {
			return PointerEvent{}, false
		}
		t.pressed = true
		t.last = p
		return PointerEvent{Action: PointerDown, X: p.X, Y: p.Y, Slop: t.mapper.PickSlop()}, true

	case held:
		if !inside || p == t.last {
			return PointerEvent{}, false
		}
		t.last = p
		return PointerEvent{Action: PointerMove, X: p.X, Y: p.Y}, true

	case t.pressed:
		t.pressed = false
		if !inside {
			p = t.last
		}
		return PointerEvent{Action: PointerUp, X: p.X, Y: p.Y}, true

	default:
		if !inside {
			return PointerEvent{}, false
		}
		return PointerEvent{Action: PointerMove, X: p.X, Y: p.Y}, true
	}
}
