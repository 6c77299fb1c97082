// Package config loads runtime settings from defaults, an optional TOML file and BEZIER_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/lixenwraith/bezier-anim/constants"
	"github.com/lixenwraith/bezier-anim/render"
	"github.com/lixenwraith/bezier-anim/vmath"
)

const (
	configName = "bezier-anim"
	envPrefix  = "BEZIER"
)

// CanvasConfig holds the logical drawing surface settings
type CanvasConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	SpawnX float64 `mapstructure:"spawnX"`
	SpawnY float64 `mapstructure:"spawnY"`
}

// PlaybackConfig holds animation timing
type PlaybackConfig struct {
	TickDelay         time.Duration `mapstructure:"tickDelay"`
	FrameInterval     time.Duration `mapstructure:"frameInterval"`
	ShowIntermediates bool          `mapstructure:"showIntermediates"`
}

// ColorsConfig holds the palette, every entry is a color name or #rrggbb
type ColorsConfig struct {
	Background render.Color `mapstructure:"background"`
	Curve      render.Color `mapstructure:"curve"`
	Guide      render.Color `mapstructure:"guide"`
	GuideEnd   render.Color `mapstructure:"guideEnd"`
	Point      render.Color `mapstructure:"point"`
	Label      render.Color `mapstructure:"label"`
}

// AudioConfig holds cue playback settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// LogConfig holds logging settings, an empty File disables logging
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config is the resolved application configuration
type Config struct {
	Canvas   CanvasConfig   `mapstructure:"canvas"`
	Playback PlaybackConfig `mapstructure:"playback"`
	Colors   ColorsConfig   `mapstructure:"colors"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Log      LogConfig      `mapstructure:"log"`

	// DemoPoints are added at startup
	DemoPoints []vmath.Point `mapstructure:"-"`

	// SnapshotPath is where the snapshot key writes its PNG
	SnapshotPath string `mapstructure:"-"`

	// Keys overrides key bindings, key name to action name
	Keys map[string]string `mapstructure:"-"`

	// File is the config file that was read, empty when only defaults and env applied
	File string `mapstructure:"-"`
}

// DefaultDemoPoints is a four-point S-curve on the default canvas
var DefaultDemoPoints = [][]float64{{100, 400}, {150, 100}, {350, 100}, {400, 400}}

func setDefaults(v *viper.Viper) {
	v.SetDefault("canvas.width", constants.DefaultCanvasWidth)
	v.SetDefault("canvas.height", constants.DefaultCanvasHeight)
	v.SetDefault("canvas.spawnX", constants.DefaultCanvasWidth/2)
	v.SetDefault("canvas.spawnY", constants.DefaultCanvasHeight/2)

	v.SetDefault("playback.tickDelay", constants.TickDelay)
	v.SetDefault("playback.frameInterval", constants.FrameUpdateInterval)
	v.SetDefault("playback.showIntermediates", true)

	v.SetDefault("colors.background", string(render.ColorWhite))
	v.SetDefault("colors.curve", string(render.ColorRed))
	v.SetDefault("colors.guide", string(render.ColorBlue))
	v.SetDefault("colors.guideEnd", string(render.ColorBlue))
	v.SetDefault("colors.point", string(render.ColorBlack))
	v.SetDefault("colors.label", string(render.ColorBlack))

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", configName+".log")

	v.SetDefault("demo.points", DefaultDemoPoints)
	v.SetDefault("snapshot.path", configName+".png")
	v.SetDefault("keys", map[string]string{})
}

// Load resolves the configuration
// With an explicit path the file must exist; otherwise bezier-anim.toml is searched in . and ~/.config/bezier-anim and may be absent
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	return decode(v)
}

// Default returns the built-in configuration without reading files or environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	demo, err := parsePoints(v.Get("demo.points"))
	if err != nil {
		return nil, fmt.Errorf("demo.points: %w", err)
	}
	cfg.DemoPoints = demo
	cfg.SnapshotPath = v.GetString("snapshot.path")
	cfg.Keys = v.GetStringMapString("keys")
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parsePoints accepts a list of [x, y] pairs of any numeric type
func parsePoints(raw any) ([]vmath.Point, error) {
	if raw == nil {
		return nil, nil
	}

	var pairs []any
	switch r := raw.(type) {
	case [][]float64:
		out := make([]vmath.Point, 0, len(r))
		for i, pair := range r {
			if len(pair) != 2 {
				return nil, fmt.Errorf("entry %d: want [x, y], got %d values", i, len(pair))
			}
			out = append(out, vmath.Pt(pair[0], pair[1]))
		}
		return out, nil
	case []any:
		pairs = r
	default:
		return nil, fmt.Errorf("want a list of [x, y] pairs, got %T", raw)
	}

	out := make([]vmath.Point, 0, len(pairs))
	for i, entry := range pairs {
		pair, err := cast.ToSliceE(entry)
		if err != nil || len(pair) != 2 {
			return nil, fmt.Errorf("entry %d: want [x, y], got %v", i, entry)
		}
		x, err := cast.ToFloat64E(pair[0])
		if err != nil {
			return nil, fmt.Errorf("entry %d: x: %w", i, err)
		}
		y, err := cast.ToFloat64E(pair[1])
		if err != nil {
			return nil, fmt.Errorf("entry %d: y: %w", i, err)
		}
		out = append(out, vmath.Pt(x, y))
	}
	return out, nil
}

// Validate checks ranges and normalizes colors
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if !c.inside(vmath.Pt(c.Canvas.SpawnX, c.Canvas.SpawnY)) {
		return fmt.Errorf("spawn point (%g, %g) is outside the canvas", c.Canvas.SpawnX, c.Canvas.SpawnY)
	}
	if c.Playback.TickDelay <= 0 {
		return fmt.Errorf("playback.tickDelay must be positive, got %s", c.Playback.TickDelay)
	}
	if c.Playback.FrameInterval <= 0 {
		return fmt.Errorf("playback.frameInterval must be positive, got %s", c.Playback.FrameInterval)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0,1], got %g", c.Audio.Volume)
	}

	for i, p := range c.DemoPoints {
		if !c.inside(p) {
			return fmt.Errorf("demo point %d %s is outside the canvas", i, p)
		}
	}

	colors := []struct {
		key string
		dst *render.Color
	}{
		{"background", &c.Colors.Background},
		{"curve", &c.Colors.Curve},
		{"guide", &c.Colors.Guide},
		{"guideEnd", &c.Colors.GuideEnd},
		{"point", &c.Colors.Point},
		{"label", &c.Colors.Label},
	}
	for _, col := range colors {
		parsed, err := render.ParseColor(string(*col.dst))
		if err != nil {
			return fmt.Errorf("colors.%s: %w", col.key, err)
		}
		*col.dst = parsed
	}

	return nil
}

func (c *Config) inside(p vmath.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= c.Canvas.Width && p.Y <= c.Canvas.Height
}
