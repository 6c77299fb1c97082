package app

import (
	"fmt"
	"math"

	"github.com/lixenwraith/bezier-anim/config"
	"github.com/lixenwraith/bezier-anim/engine"
	"github.com/lixenwraith/bezier-anim/input"
	"github.com/lixenwraith/bezier-anim/points"
	"github.com/lixenwraith/bezier-anim/render"
)

// RenderScene draws the full frame at t: background, curve layers, then points
func RenderScene(s render.Surface, bg render.Color, pb *engine.Playback, store *points.Store, t int) {
	s.ClearAndFill(bg)
	pb.RenderAt(s, t)
	input.DrawPoints(s, store.Snapshot())
}

// WriteSnapshot rasterizes the scene at t to a PNG file
func WriteSnapshot(path string, cfg *config.Config, pb *engine.Playback, store *points.Store, t int) error {
	w := int(math.Ceil(cfg.Canvas.Width))
	h := int(math.Ceil(cfg.Canvas.Height))

	surface, err := render.NewRasterSurface(w, h)
	if err != nil {
		return err
	}
	defer surface.Close()
	surface.LabelColor = cfg.Colors.Label

	RenderScene(surface, cfg.Colors.Background, pb, store, t)
	return surface.SavePNG(path)
}

// headless satisfies engine.Interaction when no screen exists
type headless struct{}

func (headless) Enable()  {}
func (headless) Disable() {}
func (headless) Redraw()  {}

// Snapshot renders the configured demo points at t without a terminal
func Snapshot(cfg *config.Config, path string, t int) error {
	if len(cfg.DemoPoints) < 2 {
		return fmt.Errorf("snapshot needs at least two demo points, have %d", len(cfg.DemoPoints))
	}

	store := points.NewStore()
	for _, p := range cfg.DemoPoints {
		store.Add(p.X, p.Y, points.WithColor(cfg.Colors.Point))
	}

	pb, err := engine.NewPlayback(store, headless{}, input.NewBus(), engine.NewFrameScheduler(engine.SystemClock{}),
		engine.WithPalette(engine.Palette{
			Background: cfg.Colors.Background,
			Curve:      cfg.Colors.Curve,
			Guide:      cfg.Colors.Guide,
			GuideEnd:   cfg.Colors.GuideEnd,
		}),
		engine.WithShowIntermediates(cfg.Playback.ShowIntermediates),
	)
	if err != nil {
		return err
	}

	return WriteSnapshot(path, cfg, pb, store, t)
}
