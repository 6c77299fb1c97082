package engine

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/bezier-anim/engine"

// playbackMetrics holds the playback instruments, nil fields are skipped
type playbackMetrics struct {
	ticks metric.Int64Counter
	loops metric.Int64Counter
}

func newPlaybackMetrics() (playbackMetrics, error) {
	m := otel.Meter(instrumentationName)

	ticks, err := m.Int64Counter("playback.ticks",
		metric.WithDescription("Playback ticks that advanced the curve parameter"))
	if err != nil {
		return playbackMetrics{}, err
	}

	loops, err := m.Int64Counter("playback.loops",
		metric.WithDescription("Playback wraps from the end of the curve back to the start"))
	if err != nil {
		return playbackMetrics{}, err
	}

	return playbackMetrics{ticks: ticks, loops: loops}, nil
}
