package input

import "fmt"

// PointerAction represents the type of pointer event
type PointerAction uint8

const (
	PointerNone PointerAction = iota
	PointerDown
	PointerMove
	PointerUp
)

// String returns human-readable action name
func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	default:
		return "None"
	}
}

// PointerEvent is a pointer event in surface-local coordinates
type PointerEvent struct {
	Action PointerAction
	X, Y   float64

	// Slop widens the pick area of a press, in surface units, for devices coarser than the surface
	Slop float64
}

func (e PointerEvent) String() string {
	return fmt.Sprintf("%s(%g, %g)", e.Action, e.X, e.Y)
}

// PointerHandler receives dispatched pointer events
type PointerHandler func(PointerEvent)

type pointerHandler struct {
	id uint32
	fn PointerHandler
}

// Bus fans pointer events out to subscribed handlers in subscription order
// Not safe for concurrent use, events are dispatched from the event loop goroutine
type Bus struct {
	handlers []pointerHandler
	nextID   uint32
}

// NewBus creates an empty pointer event bus
func NewBus() *Bus {
	return &Bus{}
}

// Handle detaches a subscription
type Handle struct {
	id  uint32
	bus *Bus
}

// Remove unsubscribes the handler, safe to call more than once and on the zero Handle
func (h Handle) Remove() {
	if h.bus == nil {
		return
	}
	h.bus.remove(h.id)
}

// Subscribe registers fn for every subsequent dispatch
func (b *Bus) Subscribe(fn PointerHandler) Handle {
	b.nextID++
	b.handlers = append(b.handlers, pointerHandler{id: b.nextID, fn: fn})
	return Handle{id: b.nextID, bus: b}
}

// Dispatch delivers ev to the handlers subscribed when dispatch starts
// Handlers subscribed during dispatch wait for the next event, handlers removed during dispatch are skipped
func (b *Bus) Dispatch(ev PointerEvent) {
	snapshot := make([]pointerHandler, len(b.handlers))
	copy(snapshot, b.handlers)

	for _, h := range snapshot {
		if !b.has(h.id) {
			continue
		}
		h.fn(ev)
	}
}

// Len returns the number of live subscriptions
func (b *Bus) Len() int {
	return len(b.handlers)
}

func (b *Bus) has(id uint32) bool {
	for i := range b.handlers {
		if b.handlers[i].id == id {
			return true
		}
	}
	return false
}

func (b *Bus) remove(id uint32) {
	for i := range b.handlers {
		if b.handlers[i].id == id {
			copy(b.handlers[i:], b.handlers[i+1:])
			b.handlers[len(b.handlers)-1] = pointerHandler{}
			b.handlers = b.handlers[:len(b.handlers)-1]
			return
		}
	}
}
