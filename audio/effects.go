package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// tone describes the oscillator and envelope of a cue
type tone struct {
	freq     float64
	duration time.Duration
	attack   time.Duration
	release  time.Duration
}

// cueTones holds the synthesis parameters per cue
var cueTones = map[Cue]tone{
	CueGrab: {freq: 880, duration: 40 * time.Millisecond, attack: 2 * time.Millisecond, release: 30 * time.Millisecond},
	CueLoop: {freq: 660, duration: 80 * time.Millisecond, attack: 5 * time.Millisecond, release: 60 * time.Millisecond},
	CueStop: {freq: 330, duration: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 100 * time.Millisecond},
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume, math.Log2(0) is -Inf so 0 maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CueStreamer synthesizes the finite stream for c at the given linear volume
func CueStreamer(c Cue, rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	tn, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %s", c)
	}

	sine, err := generators.SineTone(rate, tn.freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s tone: %w", c, err)
	}

	samples := rate.N(tn.duration)
	shaped := NewEnvelope(beep.Take(samples, sine), tn.duration, tn.attack, tn.release, rate)
	return newVolume(shaped, vol), nil
}
