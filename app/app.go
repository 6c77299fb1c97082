// Package app wires the store, interaction, playback and control bar onto a tcell screen and runs the event loop
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/bezier-anim/audio"
	"github.com/lixenwraith/bezier-anim/config"
	"github.com/lixenwraith/bezier-anim/constants"
	"github.com/lixenwraith/bezier-anim/core"
	"github.com/lixenwraith/bezier-anim/engine"
	"github.com/lixenwraith/bezier-anim/input"
	"github.com/lixenwraith/bezier-anim/points"
	"github.com/lixenwraith/bezier-anim/render"
	"github.com/lixenwraith/bezier-anim/ui"
	"github.com/lixenwraith/bezier-anim/vmath"
)

const instrumentationName = "github.com/lixenwraith/bezier-anim/app"

// App owns every component of an interactive session
// All methods except Run's poll goroutine execute on the event loop goroutine
type App struct {
	cfg    *config.Config
	screen tcell.Screen
	logger zerolog.Logger

	store      *points.Store
	bus        *input.Bus
	surface    *render.TerminalSurface
	controller *input.Controller
	translator *input.Translator
	scheduler  *engine.FrameScheduler
	playback   *engine.Playback
	bar        *ui.ControlBar

	sound  *audio.SoundManager
	frames metric.Int64Counter
}

// Option customizes an App
type Option func(*options)

type options struct {
	clock  engine.Clock
	logger zerolog.Logger
}

// WithClock sets the clock driving the frame scheduler
func WithClock(c engine.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the application logger
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New builds a session on an initialized screen and seeds it with the configured demo points
func New(cfg *config.Config, screen tcell.Screen, opts ...Option) (*App, error) {
	o := options{clock: engine.SystemClock{}, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{
		cfg:    cfg,
		screen: screen,
		logger: o.logger,
		store:  points.NewStore(),
		bus:    input.NewBus(),
	}
	screen.EnableMouse()

	var cues audio.Player = audio.Silent{}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, a.logger)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, runs without sound
			a.logger.Warn().Err(err).Msg("audio initialization failed")
		} else {
			a.sound = sm
			cues = sm
		}
	}

	a.surface = render.NewTerminalSurface(screen, cfg.Canvas.Width, cfg.Canvas.Height)
	a.surface.LabelColor = cfg.Colors.Label

	a.controller = input.NewController(a.store, a.bus, a.surface,
		input.WithCues(cues),
		input.WithLogger(a.logger.With().Str("component", "interaction").Logger()),
	)
	a.translator = input.NewTranslator(a.surface)
	a.scheduler = engine.NewFrameScheduler(o.clock)

	pb, err := engine.NewPlayback(a.store, a.controller, a.bus, a.scheduler,
		engine.WithPalette(engine.Palette{
			Background: cfg.Colors.Background,
			Curve:      cfg.Colors.Curve,
			Guide:      cfg.Colors.Guide,
			GuideEnd:   cfg.Colors.GuideEnd,
		}),
		engine.WithTickDelay(cfg.Playback.TickDelay),
		engine.WithSpawn(vmath.Pt(cfg.Canvas.SpawnX, cfg.Canvas.SpawnY)),
		engine.WithShowIntermediates(cfg.Playback.ShowIntermediates),
		engine.WithPointOptions(points.WithColor(cfg.Colors.Point)),
		engine.WithCues(cues),
		engine.WithLogger(a.logger.With().Str("component", "playback").Logger()),
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.playback = pb
	a.controller.SetBackground(pb)
	a.controller.Enable()

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.ParseKeyBindings(cfg.Keys)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("keys: %w", err)
		}
		keys = input.MergeKeyTable(keys, override)
	}
	a.bar = ui.NewControlBar(screen, render.Region{}, pb, keys)
	pb.OnTimeChanged(a.bar.TimeChanged)

	frames, err := otel.Meter(instrumentationName).Int64Counter("render.frames",
		metric.WithDescription("Event loop frames that flushed the screen"))
	if err != nil {
		a.logger.Warn().Err(err).Msg("frame counter unavailable")
	}
	a.frames = frames

	a.layout()
	for _, p := range cfg.DemoPoints {
		pb.AddPointAt(p.X, p.Y, points.WithColor(cfg.Colors.Point))
	}
	a.redraw()

	a.logger.Info().
		Int("points", a.store.Len()).
		Str("config", cfg.File).
		Msg("session started")
	return a, nil
}

// Playback exposes the playback controller
func (a *App) Playback() *engine.Playback {
	return a.playback
}

// Store exposes the control point store
func (a *App) Store() *points.Store {
	return a.store
}

// Surface exposes the terminal surface
func (a *App) Surface() *render.TerminalSurface {
	return a.surface
}

// layout splits the screen into the canvas and the control bar below it
func (a *App) layout() {
	cols, rows := a.screen.Size()
	canvasRows := max(rows-constants.ControlBarRows, 0)

	a.surface.SetRegion(render.Region{X: 0, Y: 0, Width: cols, Height: canvasRows})
	a.bar.SetRegion(render.Region{X: 0, Y: canvasRows, Width: cols, Height: rows - canvasRows})
}

func (a *App) redraw() {
	a.controller.Redraw()
	a.bar.Draw()
	a.screen.Show()
}

// Run polls screen events and drives frames until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(a.cfg.Playback.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

// Frame runs due scheduled tasks and flushes the screen when any ran
func (a *App) Frame() {
	if a.scheduler.RunFrame() == 0 {
		return
	}
	a.screen.Show()
	if a.frames != nil {
		a.frames.Add(context.Background(), 1)
	}
}

// HandleEvent applies one screen event, returns true when the session should end
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.layout()
		a.screen.Sync()
		a.redraw()
		return false

	case *tcell.EventKey:
		switch a.bar.HandleKey(ev) {
		case input.IntentQuit:
			return true
		case input.IntentSnapshot:
			a.snapshot()
		}

	case *tcell.EventMouse:
		// A drag that started on the canvas keeps going to the canvas
		if !a.translator.Pressed() && a.bar.HandleMouse(ev) {
			break
		}
		if pe, ok := a.translator.Translate(ev); ok {
			a.bus.Dispatch(pe)
		}
	}

	a.bar.Draw()
	a.screen.Show()
	return false
}

// snapshotTime is the parameter currently on screen
func (a *App) snapshotTime() int {
	return a.playback.Shown()
}

func (a *App) snapshot() {
	t := a.snapshotTime()

	path := a.cfg.SnapshotPath
	if err := WriteSnapshot(path, a.cfg, a.playback, a.store, t); err != nil {
		a.logger.Error().Err(err).Str("path", path).Msg("snapshot failed")
		a.bar.SetStatus("snapshot failed: " + err.Error())
		return
	}
	a.logger.Info().Str("path", path).Int("t", t).Msg("snapshot written")
	a.bar.SetStatus(fmt.Sprintf("saved %s (t=%d)", path, t))
}

// Close releases audio, the screen is owned by the caller
func (a *App) Close() {
	if a.sound != nil {
		a.sound.Cleanup()
		a.sound = nil
	}
}
