package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to control intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyEscape:     IntentQuit,
			tcell.KeyBackspace:  IntentRemovePoint,
			tcell.KeyBackspace2: IntentRemovePoint,
			tcell.KeyLeft:       IntentStepBack,
			tcell.KeyRight:      IntentStepForward,
			tcell.KeyHome:       IntentSeekStart,
			tcell.KeyEnd:        IntentSeekEnd,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentSnapshot,
			'a': IntentAddPoint,
			'x': IntentRemovePoint,
			'c': IntentReset,
			' ': IntentTogglePlay,
			's': IntentStop,
			'i': IntentToggleIntermediates,
		},
	}
}

// Lookup resolves a key event to an intent, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
