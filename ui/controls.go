// Package ui draws the control bar under the canvas and routes keys and slider clicks to playback commands
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bezier-anim/constants"
	"github.com/lixenwraith/bezier-anim/input"
	"github.com/lixenwraith/bezier-anim/render"
)

// Slider characters
const (
	sliderFull  = '█'
	sliderEmpty = '░'
	sliderHalf  = '▌'
)

const hints = "a:add x:remove space:play s:stop c:clear i:guides ←→:scrub p:png q:quit"

// Commands is the control surface the bar drives
type Commands interface {
	AddPoint()
	RemovePoint()
	TogglePlay()
	Stop()
	Reset()
	SetTime(t int)
	Step(delta int)
	SetShowIntermediates(show bool)
	ShowIntermediates() bool
	StateName() string
}

// ControlBar is the two-row strip holding hints, state and the time slider
// Not safe for concurrent use
type ControlBar struct {
	screen tcell.Screen
	region render.Region
	cmds   Commands
	keys   *input.KeyTable

	time    int
	status  string
	sliding bool

	fg, bg, accent tcell.Color
}

// NewControlBar creates a bar drawing into region, which should be ControlBarRows tall
func NewControlBar(screen tcell.Screen, region render.Region, cmds Commands, keys *input.KeyTable) *ControlBar {
	return &ControlBar{
		screen: screen,
		region: region,
		cmds:   cmds,
		keys:   keys,
		fg:     render.RGBBlack.Tcell(),
		bg:     render.RGB{R: 220, G: 220, B: 220}.Tcell(),
		accent: render.ColorRed.RGB().Tcell(),
	}
}

// SetRegion moves the bar, used on terminal resize
func (b *ControlBar) SetRegion(r render.Region) {
	b.region = r
}

// SetStatus shows a transient message on the hint row until the next status
func (b *ControlBar) SetStatus(msg string) {
	b.status = msg
	b.Draw()
}

// TimeChanged mirrors the playback parameter on the slider
func (b *ControlBar) TimeChanged(t int) {
	b.time = t
	b.Draw()
}

// Time returns the value shown on the slider
func (b *ControlBar) Time() int {
	return b.time
}

// Draw paints both rows
func (b *ControlBar) Draw() {
	if b.region.Height < constants.ControlBarRows || b.region.Width <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(b.fg).Background(b.bg)

	// Hint row
	y := b.region.Y
	b.fill(y, style)
	text := hints
	if b.status != "" {
		text = b.status
	}
	x := b.text(b.region.X, y, text, style)
	state := fmt.Sprintf(" [%s]", b.cmds.StateName())
	if b.cmds.ShowIntermediates() {
		state += " guides"
	}
	b.text(max(x, b.region.X+b.region.Width-len(state)), y, state, style.Bold(true))

	// Slider row
	y++
	b.fill(y, style)
	label := fmt.Sprintf(" t=%3d ", b.time)
	x0, w := b.track()
	b.text(b.region.X, y, label, style)
	b.progress(x0, y, w, float64(b.time)/constants.MaxTime, style.Foreground(b.accent))
}

// track returns the slider's first cell and width
func (b *ControlBar) track() (int, int) {
	const labelWidth = len(" t=100 ")
	return b.region.X + labelWidth, max(b.region.Width-labelWidth-1, 0)
}

// progress draws the slider, adapted from a horizontal progress bar
func (b *ControlBar) progress(x, y, w int, pct float64, style tcell.Style) {
	pct = min(max(pct, 0), 1)
	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	for i := 0; i < w; i++ {
		var ch rune
		if i < filled {
			ch = sliderFull
		} else if i == filled && remainder >= 0.5 {
			ch = sliderHalf
		} else {
			ch = sliderEmpty
		}
		b.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (b *ControlBar) fill(y int, style tcell.Style) {
	for x := b.region.X; x < b.region.X+b.region.Width; x++ {
		b.screen.SetContent(x, y, ' ', nil, style)
	}
}

// text writes s clipped to the region and returns the cell after the last rune
func (b *ControlBar) text(x, y int, s string, style tcell.Style) int {
	end := b.region.X + b.region.Width
	for _, r := range s {
		if x >= end {
			break
		}
		b.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// onTrack reports whether cell (x, y) lies on the slider row within one cell of the track
func (b *ControlBar) onTrack(x, y int) bool {
	x0, w := b.track()
	return y == b.region.Y+1 && w > 0 && x >= x0-1 && x <= x0+w
}

// timeAt maps a column to a parameter value, columns past either end clamp
func (b *ControlBar) timeAt(x int) int {
	x0, w := b.track()
	if w <= 1 {
		return constants.MaxTime
	}
	cell := min(max(x-x0, 0), w-1)
	return cell * constants.MaxTime / (w - 1)
}

// HandleMouse scrubs when the primary button is pressed on the slider or dragged after such a press
// Returns true when the event was consumed
func (b *ControlBar) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	if !held {
		consumed := b.sliding
		b.sliding = false
		return consumed
	}

	if !b.sliding {
		if !b.onTrack(x, y) {
			return false
		}
		b.sliding = true
	}

	// While sliding only the column matters, so the thumb follows the pointer off the bar
	b.cmds.SetTime(b.timeAt(x))
	return true
}

// HandleKey applies the bound command and returns the intent
// Quit and snapshot are returned for the caller to act on
func (b *ControlBar) HandleKey(ev *tcell.EventKey) input.IntentType {
	intent := b.keys.Lookup(ev)

	switch intent {
	case input.IntentAddPoint:
		b.cmds.AddPoint()
	case input.IntentRemovePoint:
		b.cmds.RemovePoint()
	case input.IntentReset:
		b.cmds.Reset()
	case input.IntentTogglePlay:
		b.cmds.TogglePlay()
	case input.IntentStop:
		b.cmds.Stop()
	case input.IntentToggleIntermediates:
		b.cmds.SetShowIntermediates(!b.cmds.ShowIntermediates())
	case input.IntentStepBack:
		b.cmds.Step(-1)
	case input.IntentStepForward:
		b.cmds.Step(1)
	case input.IntentSeekStart:
		b.cmds.SetTime(constants.MinTime)
	case input.IntentSeekEnd:
		b.cmds.SetTime(constants.MaxTime)
	}

	if intent != input.IntentNone && intent != input.IntentSnapshot && intent != input.IntentQuit {
		b.status = ""
	}
	b.Draw()
	return intent
}
