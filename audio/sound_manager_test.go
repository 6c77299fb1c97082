package audio

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSoundManager_PlayBeforeInitializeIsNoop(t *testing.T) {
	sm := NewSoundManager(0.5, zerolog.Nop())

	assert.NotPanics(t, func() {
		sm.Play(CueGrab)
		sm.Cleanup()
	})
	assert.Equal(t, 0, sm.mixer.Len())
}

func TestCue_String(t *testing.T) {
	assert.Equal(t, "Grab", CueGrab.String())
	assert.Equal(t, "Loop", CueLoop.String())
	assert.Equal(t, "Stop", CueStop.String())
	assert.Equal(t, "None", Cue(9).String())
}

func TestSilent_Play(t *testing.T) {
	var p Player = Silent{}
	assert.NotPanics(t, func() { p.Play(CueLoop) })
}
