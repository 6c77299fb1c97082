package audio

// Cue identifies a short feedback sound
type Cue uint8

const (
	CueNone Cue = iota
	CueGrab     // Control point picked up
	CueLoop     // Playback wrapped from the end of the curve to the start
	CueStop     // Playback stopped
)

// String returns human-readable cue name
func (c Cue) String() string {
	switch c {
	case CueGrab:
		return "Grab"
	case CueLoop:
		return "Loop"
	case CueStop:
		return "Stop"
	default:
		return "None"
	}
}

// Player plays feedback cues, implementations must not block the caller
type Player interface {
	Play(c Cue)
}

// Silent is a Player that discards every cue
type Silent struct{}

func (Silent) Play(Cue) {}
