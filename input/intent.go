package input

// IntentType discriminates semantic control actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit     // q, Esc, Ctrl+C
	IntentSnapshot // p

	// Point editing
	IntentAddPoint    // a
	IntentRemovePoint // x, Backspace
	IntentReset       // c

	// Playback
	IntentTogglePlay          // Space
	IntentStop                // s
	IntentToggleIntermediates // i

	// Scrubbing
	IntentStepBack    // Left arrow
	IntentStepForward // Right arrow
	IntentSeekStart   // Home
	IntentSeekEnd     // End
)

// String returns the canonical action name
func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "none"
}

// IsScrub reports whether the intent moves the time parameter
func (t IntentType) IsScrub() bool {
	switch t {
	case IntentStepBack, IntentStepForward, IntentSeekStart, IntentSeekEnd:
		return true
	}
	return false
}
