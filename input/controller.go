package input

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/bezier-anim/audio"
	"github.com/lixenwraith/bezier-anim/constants"
	"github.com/lixenwraith/bezier-anim/points"
	"github.com/lixenwraith/bezier-anim/render"
	"github.com/lixenwraith/bezier-anim/vmath"
)

// Background draws everything beneath the control points
type Background interface {
	RenderBackground(s render.Surface)
}

// BackgroundFunc adapts a function to Background
type BackgroundFunc func(s render.Surface)

func (f BackgroundFunc) RenderBackground(s render.Surface) { f(s) }

// Controller binds pointer events to store mutations while enabled
// Every move of a grabbed point repaints the surface synchronously
type Controller struct {
	store      *points.Store
	bus        *Bus
	surface    render.Surface
	background Background

	handle  Handle
	enabled bool

	cues   audio.Player
	logger zerolog.Logger
	moves  metric.Int64Counter
}

// ControllerOption customizes a Controller
type ControllerOption func(*Controller)

// WithBackground sets the hook drawn beneath the points on every redraw
func WithBackground(b Background) ControllerOption {
	return func(c *Controller) { c.background = b }
}

// WithCues sets the player used for grab feedback
func WithCues(p audio.Player) ControllerOption {
	return func(c *Controller) { c.cues = p }
}

// WithLogger sets the controller logger
func WithLogger(l zerolog.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a disabled controller; call Enable to start receiving events
func NewController(store *points.Store, bus *Bus, surface render.Surface, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:   store,
		bus:     bus,
		surface: surface,
		cues:    audio.Silent{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	moves, err := meter().Int64Counter("input.drag.moves",
		metric.WithDescription("Pointer moves applied to a grabbed control point"))
	if err != nil {
		c.logger.Warn().Err(err).Msg("drag move counter unavailable")
	}
	c.moves = moves

	return c
}

// SetBackground replaces the background hook
func (c *Controller) SetBackground(b Background) {
	c.background = b
}

// Enable subscribes the controller to the pointer bus, no-op when already enabled
func (c *Controller) Enable() {
	if c.enabled {
		return
	}
	c.handle = c.bus.Subscribe(c.HandlePointer)
	c.enabled = true
	c.logger.Debug().Msg("interaction enabled")
}

// Disable detaches from the pointer bus and drops any grab in progress
func (c *Controller) Disable() {
	if !c.enabled {
		return
	}
	c.handle.Remove()
	c.handle = Handle{}
	c.enabled = false
	c.store.Release()
	c.logger.Debug().Msg("interaction disabled")
}

// Enabled reports whether pointer events reach the store
func (c *Controller) Enabled() bool {
	return c.enabled
}

// HandlePointer applies a single pointer event to the store
func (c *Controller) HandlePointer(ev PointerEvent) {
	switch ev.Action {
	case PointerDown:
		p, ok := c.store.HitTest(ev.X, ev.Y)
		if !ok && ev.Slop > 0 {
			p, ok = pickWithin(c.store.Snapshot(), ev.X, ev.Y, ev.Slop)
		}
		if !ok {
			return
		}
		c.store.Grab(p.Priority)
		c.cues.Play(audio.CueGrab)
		c.logger.Debug().Str("label", p.Label).Int("priority", p.Priority).Msg("point grabbed")

	case PointerMove:
		if !c.store.MoveGrabbed(ev.X, ev.Y) {
			return
		}
		if c.moves != nil {
			c.moves.Add(context.Background(), 1)
		}
		c.Redraw()

	case PointerUp:
		c.store.Release()
	}
}

// pickWithin is the hit test with every grab circle widened by slop, highest priority wins
func pickWithin(pts []points.ControlPoint, x, y, slop float64) (points.ControlPoint, bool) {
	at := vmath.Pt(x, y)
	var best points.ControlPoint
	found := false
	for _, p := range pts {
		reach := p.Radius + constants.GrabMargin + slop
		if p.Center().DistanceSquared(at) > reach*reach {
			continue
		}
		if !found || p.Priority > best.Priority {
			best, found = p, true
		}
	}
	return best, found
}

// Redraw repaints the background, then the points on top, then presents the surface
func (c *Controller) Redraw() {
	if c.background != nil {
		c.background.RenderBackground(c.surface)
	} else {
		c.surface.ClearAndFill(render.ColorWhite)
	}
	DrawPoints(c.surface, c.store.Snapshot())
	render.Present(c.surface)
}

// DrawPoints paints each point as a filled disc with its label above and to the right
func DrawPoints(s render.Surface, pts []points.ControlPoint) {
	for _, p := range pts {
		s.FillCircle(p.Center(), p.Radius, p.Color)
		s.DrawLabel(p.Label, vmath.Pt(
			p.X+constants.LabelOffset,
			p.Y-p.Radius-constants.LabelOffset,
		))
	}
}
