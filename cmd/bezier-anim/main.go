package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bezier-anim/app"
	"github.com/lixenwraith/bezier-anim/config"
	"github.com/lixenwraith/bezier-anim/constants"
	"github.com/lixenwraith/bezier-anim/core"
	"github.com/lixenwraith/bezier-anim/logging"
)

var (
	configFlag   = flag.String("config", "", "Config file path (default: search ./bezier-anim.toml, ~/.config/bezier-anim)")
	snapshotFlag = flag.String("snapshot", "", "Render the demo curve to this PNG and exit")
	timeFlag     = flag.Int("t", constants.MaxTime, "Curve parameter for -snapshot, 0-100")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the main loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bezier-anim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	if *snapshotFlag != "" {
		if *timeFlag < constants.MinTime || *timeFlag > constants.MaxTime {
			return fmt.Errorf("-t must be in [%d, %d], got %d", constants.MinTime, constants.MaxTime, *timeFlag)
		}
		if err := app.Snapshot(cfg, *snapshotFlag, *timeFlag); err != nil {
			return err
		}
		logger.Info().Str("path", *snapshotFlag).Int("t", *timeFlag).Msg("snapshot written")
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.RegisterScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()

	a, err := app.New(cfg, screen, app.WithLogger(logger))
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = a.Run(ctx)
	logger.Info().Msg("session ended")
	return err
}
