package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/bezier-anim/audio"
	"github.com/lixenwraith/bezier-anim/constants"
	"github.com/lixenwraith/bezier-anim/curve"
	"github.com/lixenwraith/bezier-anim/engine/fsm"
	"github.com/lixenwraith/bezier-anim/input"
	"github.com/lixenwraith/bezier-anim/points"
	"github.com/lixenwraith/bezier-anim/render"
	"github.com/lixenwraith/bezier-anim/vmath"
)

// Playback states
const (
	StateIdle fsm.StateID = iota + 2
	StatePlaying
	StateManualOverride
)

// Playback triggers
const (
	TriggerStart fsm.Trigger = iota + 1
	TriggerStop
	TriggerOverride
	TriggerSettle
)

// Interaction is the pointer-driven editing the playback suspends while playing
type Interaction interface {
	Enable()
	Disable()
	Redraw()
}

// Palette colors the curve layers
type Palette struct {
	Background render.Color
	Curve      render.Color
	Guide      render.Color // Outermost construction level
	GuideEnd   render.Color // Innermost construction level
}

// DefaultPalette returns the stock colors
func DefaultPalette() Palette {
	return Palette{
		Background: render.ColorWhite,
		Curve:      render.ColorRed,
		Guide:      render.ColorBlue,
		GuideEnd:   render.ColorBlue,
	}
}

// Playback owns the curve parameter and the animation loop
// Leaving Playing is the only cancellation: a tick scheduled by an earlier run finds the guard closed and does nothing
// Not safe for concurrent use, all calls happen on the event loop goroutine
type Playback struct {
	machine *fsm.Machine[*Playback]

	store       *points.Store
	interaction Interaction
	bus         *input.Bus
	scheduler   Scheduler

	time  int
	shown int    // Parameter of the last background render
	run   uint64 // Incremented on each entry to Playing, ties ticks to their run
	show  bool

	// Cached motion path, valid while pathVersion matches the store
	path        []vmath.Point
	pathVersion uint64
	pathValid   bool

	stopHandle    input.Handle
	onTimeChanged func(t int)

	palette   Palette
	tickDelay time.Duration
	spawn     vmath.Point
	pointOpts []points.AddOption

	cues    audio.Player
	logger  zerolog.Logger
	metrics playbackMetrics
}

// PlaybackOption customizes a Playback
type PlaybackOption func(*Playback)

// WithPalette sets the curve colors
func WithPalette(p Palette) PlaybackOption {
	return func(pb *Playback) { pb.palette = p }
}

// WithTickDelay sets the minimum delay between ticks
func WithTickDelay(d time.Duration) PlaybackOption {
	return func(pb *Playback) { pb.tickDelay = d }
}

// WithSpawn sets where AddPoint places new points
func WithSpawn(p vmath.Point) PlaybackOption {
	return func(pb *Playback) { pb.spawn = p }
}

// WithPointOptions sets the options AddPoint applies to new points
func WithPointOptions(opts ...points.AddOption) PlaybackOption {
	return func(pb *Playback) { pb.pointOpts = opts }
}

// WithShowIntermediates sets the initial construction guide visibility
func WithShowIntermediates(show bool) PlaybackOption {
	return func(pb *Playback) { pb.show = show }
}

// WithCues sets the player for loop and stop feedback
func WithCues(c audio.Player) PlaybackOption {
	return func(pb *Playback) { pb.cues = c }
}

// WithLogger sets the playback logger
func WithLogger(l zerolog.Logger) PlaybackOption {
	return func(pb *Playback) { pb.logger = l }
}

// NewPlayback creates a playback controller in Idle
func NewPlayback(store *points.Store, interaction Interaction, bus *input.Bus, scheduler Scheduler, opts ...PlaybackOption) (*Playback, error) {
	pb := &Playback{
		store:         store,
		interaction:   interaction,
		bus:           bus,
		scheduler:     scheduler,
		show:          true,
		shown:         constants.MaxTime,
		onTimeChanged: func(int) {},
		palette:       DefaultPalette(),
		tickDelay:     constants.TickDelay,
		spawn:         vmath.Pt(constants.DefaultCanvasWidth/2, constants.DefaultCanvasHeight/2),
		cues:          audio.Silent{},
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(pb)
	}

	metrics, err := newPlaybackMetrics()
	if err != nil {
		pb.logger.Warn().Err(err).Msg("playback metrics unavailable")
	}
	pb.metrics = metrics

	pb.machine, err = newPlaybackMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to build playback machine: %w", err)
	}
	if err := pb.machine.Init(pb); err != nil {
		return nil, fmt.Errorf("failed to init playback machine: %w", err)
	}

	return pb, nil
}

// newPlaybackMachine wires the Idle/Playing/ManualOverride graph
func newPlaybackMachine() (*fsm.Machine[*Playback], error) {
	m := fsm.NewMachine[*Playback]()
	m.AddState(fsm.StateRoot, "Root", fsm.StateNone)
	m.AddState(StateIdle, "Idle", fsm.StateRoot)
	m.AddState(StatePlaying, "Playing", fsm.StateRoot)
	m.AddState(StateManualOverride, "ManualOverride", fsm.StateRoot)

	m.AddTransition(StateIdle, fsm.Transition[*Playback]{
		TargetID: StatePlaying,
		Trigger:  TriggerStart,
		Guard:    func(pb *Playback) bool { return pb.store.Len() >= 2 },
	})
	m.AddTransition(StateIdle, fsm.Transition[*Playback]{TargetID: StateManualOverride, Trigger: TriggerOverride})
	m.AddTransition(StatePlaying, fsm.Transition[*Playback]{TargetID: StateIdle, Trigger: TriggerStop})
	m.AddTransition(StateManualOverride, fsm.Transition[*Playback]{TargetID: StateIdle, Trigger: TriggerSettle})

	m.OnEnter(StatePlaying, (*Playback).enterPlaying)
	m.OnExit(StatePlaying, (*Playback).exitPlaying)

	m.InitialStateID = StateIdle
	if err := m.CompilePaths(); err != nil {
		return nil, err
	}
	return m, nil
}

func (pb *Playback) enterPlaying() {
	pb.run++
	pb.time = constants.MinTime
	pb.interaction.Disable()

	// Any press on the surface ends playback
	pb.stopHandle = pb.bus.Subscribe(func(ev input.PointerEvent) {
		if ev.Action == input.PointerDown {
			pb.Stop()
		}
	})
	pb.logger.Debug().Int("points", pb.store.Len()).Msg("playback started")
}

func (pb *Playback) exitPlaying() {
	pb.scheduler.Clear()
	pb.stopHandle.Remove()
	pb.stopHandle = input.Handle{}
	pb.interaction.Enable()
	pb.time = constants.MinTime
	pb.notify()
	pb.cues.Play(audio.CueStop)
	pb.logger.Debug().Msg("playback stopped")
}

// RenderBackground draws the curve layers beneath the points
// In Idle the motion path is refreshed and the whole curve shown; otherwise the frozen path is traced up to the current time
func (pb *Playback) RenderBackground(s render.Surface) {
	s.ClearAndFill(pb.palette.Background)

	if pb.machine.IsIn(StateIdle) {
		pb.refreshPath()
		pb.shown = constants.MaxTime
	} else {
		pb.shown = pb.time
	}
	pb.renderAt(s, pb.shown)
}

// RenderAt draws the curve state at t into s without touching playback state
func (pb *Playback) RenderAt(s render.Surface, t int) {
	pb.refreshPath()
	pb.renderAt(s, vmath.Clamp(t, constants.MinTime, constants.MaxTime))
}

func (pb *Playback) renderAt(s render.Surface, t int) {
	if len(pb.path) <= 1 {
		return
	}

	if pb.show {
		pyramid, err := curve.Evaluate(pb.store.Points(), t)
		if err != nil {
			pb.logger.Error().Err(err).Int("t", t).Msg("construction guides skipped")
		} else if len(pyramid) > 1 {
			guides := pyramid[:len(pyramid)-1]
			colors := pb.palette.Guide.Gradient(pb.palette.GuideEnd, len(guides))
			for i, level := range guides {
				if len(level) < 2 {
					continue
				}
				s.StrokePolyline(level, colors[i], constants.GuideLineWidth)
			}
		}
	}

	traced := curve.Until(pb.path, t)
	if len(traced) >= 2 {
		s.StrokePolyline(traced, pb.palette.Curve, constants.CurveLineWidth)
	}
	s.FillCircle(traced[len(traced)-1], constants.ApexMarkerRadius, pb.palette.Curve)
}

func (pb *Playback) refreshPath() {
	if pb.pathValid && pb.pathVersion == pb.store.Version() {
		return
	}
	pb.path = curve.MotionPath(pb.store.Points())
	pb.pathVersion = pb.store.Version()
	pb.pathValid = true
}

// tickTask returns the tick bound to the current run
func (pb *Playback) tickTask() Task {
	run := pb.run
	return func() { pb.tick(run) }
}

func (pb *Playback) tick(run uint64) {
	if !pb.machine.IsIn(StatePlaying) || run != pb.run {
		return
	}

	if pb.time < constants.MaxTime {
		pb.time++
	} else {
		pb.time = constants.MinTime
		pb.cues.Play(audio.CueLoop)
		if pb.metrics.loops != nil {
			pb.metrics.loops.Add(context.Background(), 1)
		}
	}
	if pb.metrics.ticks != nil {
		pb.metrics.ticks.Add(context.Background(), 1)
	}

	pb.interaction.Redraw()
	pb.notify()
	pb.scheduler.Schedule(pb.tickDelay, pb.tickTask())
}

func (pb *Playback) notify() {
	pb.onTimeChanged(pb.time)
}

// stopPlayback leaves Playing without repainting, reports whether playback was running
func (pb *Playback) stopPlayback() bool {
	return pb.machine.Fire(pb, TriggerStop)
}

// Start begins playback when at least two points exist, the first tick runs immediately
func (pb *Playback) Start() {
	if !pb.machine.Fire(pb, TriggerStart) {
		return
	}
	pb.tick(pb.run)
}

// Stop ends playback and repaints, no-op unless playing
func (pb *Playback) Stop() {
	if pb.stopPlayback() {
		pb.interaction.Redraw()
	}
}

// TogglePlay starts playback when idle and stops it when playing
func (pb *Playback) TogglePlay() {
	if pb.Playing() {
		pb.Stop()
		return
	}
	pb.Start()
}

// SetTime shows the curve at t, stopping playback first; t is clamped to the parameter range
func (pb *Playback) SetTime(t int) {
	t = vmath.Clamp(t, constants.MinTime, constants.MaxTime)
	pb.stopPlayback()

	pb.machine.Fire(pb, TriggerOverride)
	pb.time = t
	pb.interaction.Redraw()
	pb.notify()
	pb.machine.Fire(pb, TriggerSettle)
}

// Step moves the parameter by delta from its current value
func (pb *Playback) Step(delta int) {
	pb.SetTime(pb.time + delta)
}

// AddPoint appends a point at the spawn position
func (pb *Playback) AddPoint() {
	pb.AddPointAt(pb.spawn.X, pb.spawn.Y, pb.pointOpts...)
}

// AddPointAt appends a point at (x, y), stopping playback first
func (pb *Playback) AddPointAt(x, y float64, opts ...points.AddOption) {
	pb.stopPlayback()
	p := pb.store.Add(x, y, opts...)
	pb.logger.Debug().Str("label", p.Label).Float64("x", x).Float64("y", y).Msg("point added")
	pb.interaction.Redraw()
}

// RemovePoint removes the most recent point, stopping playback first
func (pb *Playback) RemovePoint() {
	pb.stopPlayback()
	pb.store.RemoveLast()
	pb.interaction.Redraw()
}

// Reset stops playback, zeroes the parameter, clears every point and re-enables interaction
func (pb *Playback) Reset() {
	// Exits the whole active path, so a running playback gets its stop actions
	if err := pb.machine.Reset(pb); err != nil {
		pb.logger.Error().Err(err).Msg("playback machine reset failed")
	}
	pb.time = constants.MinTime
	pb.notify()
	pb.store.RemoveAll()
	pb.interaction.Enable()
	pb.interaction.Redraw()
	pb.logger.Debug().Msg("reset")
}

// SetShowIntermediates toggles the construction guides and repaints
func (pb *Playback) SetShowIntermediates(show bool) {
	pb.show = show
	pb.interaction.Redraw()
}

// ShowIntermediates reports whether construction guides are drawn
func (pb *Playback) ShowIntermediates() bool {
	return pb.show
}

// OnTimeChanged registers the observer called whenever the parameter changes, nil clears it
func (pb *Playback) OnTimeChanged(fn func(t int)) {
	if fn == nil {
		fn = func(int) {}
	}
	pb.onTimeChanged = fn
}

// Time returns the current parameter
func (pb *Playback) Time() int {
	return pb.time
}

// Shown returns the parameter the background was last rendered at
func (pb *Playback) Shown() int {
	return pb.shown
}

// State returns the active playback state
func (pb *Playback) State() fsm.StateID {
	return pb.machine.ActiveStateID()
}

// StateName returns the active playback state name
func (pb *Playback) StateName() string {
	return pb.machine.ActiveName()
}

// Playing reports whether the tick loop is running
func (pb *Playback) Playing() bool {
	return pb.machine.IsIn(StatePlaying)
}
