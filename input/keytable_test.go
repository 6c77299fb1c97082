package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyTable_Lookup(t *testing.T) {
	kt := DefaultKeyTable()

	cases := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), IntentAddPoint},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentTogglePlay},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentStepBack},
		{tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), IntentSeekEnd},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, kt.Lookup(tc.ev), tc.ev.Name())
	}
}

func TestParseKeyBindings(t *testing.T) {
	kt, err := ParseKeyBindings(map[string]string{
		"n":     "add_point",
		"space": "stop",
		"Up":    "seek_end",
		"x":     "none",
	})
	require.NoError(t, err)

	assert.Equal(t, IntentAddPoint, kt.Runes['n'])
	assert.Equal(t, IntentStop, kt.Runes[' '])
	assert.Equal(t, IntentSeekEnd, kt.SpecialKeys[tcell.KeyUp])

	merged := MergeKeyTable(DefaultKeyTable(), kt)
	assert.Equal(t, IntentStop, merged.Runes[' '])
	_, bound := merged.Runes['x']
	assert.False(t, bound, "none unbinds")
	assert.Equal(t, IntentRemovePoint, DefaultKeyTable().Runes['x'], "base table untouched")
}

func TestParseKeyBindings_Errors(t *testing.T) {
	_, err := ParseKeyBindings(map[string]string{"a": "fly"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = ParseKeyBindings(map[string]string{"NotAKey": "quit"})
	assert.ErrorContains(t, err, "unknown key name")
}

func TestIntentType_String(t *testing.T) {
	assert.Equal(t, "toggle_play", IntentTogglePlay.String())
	assert.Equal(t, "none", IntentType(200).String())
	assert.True(t, IntentSeekStart.IsScrub())
	assert.False(t, IntentReset.IsScrub())
}
