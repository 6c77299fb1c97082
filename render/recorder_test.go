package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bezier-anim/vmath"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	var s Surface = rec

	pts := []vmath.Point{vmath.Pt(0, 0), vmath.Pt(10, 10)}
	s.ClearAndFill(ColorWhite)
	s.StrokePolyline(pts, ColorBlue, 1)
	s.FillCircle(vmath.Pt(5, 5), 7, ColorBlack)
	s.DrawLabel("0", vmath.Pt(10, -7))
	Present(s)

	cmds := rec.Commands()
	require.Len(t, cmds, 5)
	assert.Equal(t, CmdClearAndFill, cmds[0].Type)
	assert.Equal(t, ColorWhite, cmds[0].Color)
	assert.Equal(t, pts, cmds[1].Points)
	assert.Equal(t, 7.0, cmds[2].Radius)
	assert.Equal(t, "0", cmds[3].Text)
	assert.Equal(t, CmdPresent, cmds[4].Type)

	// Recorded points are copies
	pts[0] = vmath.Pt(99, 99)
	assert.Equal(t, vmath.Pt(0, 0), rec.Filter(CmdStrokePolyline)[0].Points[0])

	assert.Equal(t, 1, rec.Count(CmdFillCircle))
	rec.Reset()
	assert.Empty(t, rec.Commands())
}

func TestCommandTypeString(t *testing.T) {
	assert.Equal(t, "StrokePolyline", CmdStrokePolyline.String())
	assert.Equal(t, "Unknown", CommandType(200).String())
}
