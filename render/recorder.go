package render

import "github.com/lixenwraith/bezier-anim/vmath"

// CommandType identifies a recorded draw operation
type CommandType uint8

const (
	CmdClearAndFill CommandType = iota
	CmdStrokePolyline
	CmdFillCircle
	CmdDrawLabel
	CmdPresent
)

// String returns human-readable command name
func (t CommandType) String() string {
	switch t {
	case CmdClearAndFill:
		return "ClearAndFill"
	case CmdStrokePolyline:
		return "StrokePolyline"
	case CmdFillCircle:
		return "FillCircle"
	case CmdDrawLabel:
		return "DrawLabel"
	case CmdPresent:
		return "Present"
	default:
		return "Unknown"
	}
}

// Command is one captured draw operation, only the fields relevant to Type are set
type Command struct {
	Type   CommandType
	Points []vmath.Point
	Color  Color
	Width  float64
	Radius float64
	Text   string
}

// Recorder is a Surface that captures commands instead of drawing them
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ClearAndFill(c Color) {
	r.commands = append(r.commands, Command{Type: CmdClearAndFill, Color: c})
}

func (r *Recorder) StrokePolyline(points []vmath.Point, c Color, width float64) {
	pts := make([]vmath.Point, len(points))
	copy(pts, points)
	r.commands = append(r.commands, Command{Type: CmdStrokePolyline, Points: pts, Color: c, Width: width})
}

func (r *Recorder) FillCircle(center vmath.Point, radius float64, c Color) {
	r.commands = append(r.commands, Command{Type: CmdFillCircle, Points: []vmath.Point{center}, Radius: radius, Color: c})
}

func (r *Recorder) DrawLabel(text string, pos vmath.Point) {
	r.commands = append(r.commands, Command{Type: CmdDrawLabel, Points: []vmath.Point{pos}, Text: text})
}

func (r *Recorder) Present() {
	r.commands = append(r.commands, Command{Type: CmdPresent})
}

// Commands returns every command recorded since the last Reset
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Filter returns the recorded commands of one type, in order
func (r *Recorder) Filter(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many commands of type t were recorded
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Reset discards recorded commands
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}
