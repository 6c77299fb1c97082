package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for range 1000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer did not terminate")
	return nil
}

func TestCueStreamer_Length(t *testing.T) {
	for c, tn := range cueTones {
		s, err := CueStreamer(c, testRate, 1)
		require.NoError(t, err, c.String())

		samples := drain(t, s)
		assert.Equal(t, testRate.N(tn.duration), len(samples), c.String())
	}
}

func TestCueStreamer_EnvelopeShape(t *testing.T) {
	s, err := CueStreamer(CueStop, testRate, 1)
	require.NoError(t, err)
	samples := drain(t, s)

	peak := 0.0
	for _, sm := range samples {
		peak = math.Max(peak, math.Abs(sm[0]))
	}
	assert.Greater(t, peak, 0.5)
	assert.LessOrEqual(t, peak, 1.0)

	assert.Equal(t, 0.0, samples[0][0], "attack starts from silence")
	assert.Less(t, math.Abs(samples[len(samples)-1][0]), 0.05, "release fades out")
}

func TestCueStreamer_SilentAtZeroVolume(t *testing.T) {
	s, err := CueStreamer(CueGrab, testRate, 0)
	require.NoError(t, err)

	for _, sm := range drain(t, s) {
		assert.Equal(t, [2]float64{}, sm)
	}
}

func TestCueStreamer_UnknownCue(t *testing.T) {
	_, err := CueStreamer(CueNone, testRate, 1)
	assert.Error(t, err)
}

func TestEnvelope_CutsAtDuration(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})

	env := NewEnvelope(src, 10*time.Millisecond, 0, 0, testRate)
	samples := drain(t, env)
	require.Len(t, samples, testRate.N(10*time.Millisecond))
	assert.Equal(t, [2]float64{1, 1}, samples[40])
}
