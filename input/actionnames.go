package input

import (
	"fmt"
	"strings"
)

// actionRegistry maps canonical action names to intents
// Used by the key binding loader to resolve configured action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":                 IntentQuit,
	"snapshot":             IntentSnapshot,
	"add_point":            IntentAddPoint,
	"remove_point":         IntentRemovePoint,
	"reset":                IntentReset,
	"toggle_play":          IntentTogglePlay,
	"stop":                 IntentStop,
	"toggle_intermediates": IntentToggleIntermediates,
	"step_back":            IntentStepBack,
	"step_forward":         IntentStepForward,
	"seek_start":           IntentSeekStart,
	"seek_end":             IntentSeekEnd,
}

// intentNames is the reverse of actionRegistry
var intentNames = func() map[IntentType]string {
	m := make(map[IntentType]string, len(actionRegistry))
	for name, it := range actionRegistry {
		m[it] = name
	}
	return m
}()

// ActionIntent resolves an action name, case and surrounding space are ignored
func ActionIntent(name string) (IntentType, error) {
	it, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return it, nil
}
