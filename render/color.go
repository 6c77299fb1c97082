package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a W3C/X11 color name ("black", "red") or a "#rrggbb" hex value
type Color string

const (
	ColorBlack Color = "black"
	ColorWhite Color = "white"
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
)

// ParseColor validates s against tcell's color table and hex notation
func ParseColor(s string) (Color, error) {
	if tcell.GetColor(s) != tcell.ColorDefault {
		return Color(s), nil
	}
	if c, err := colorful.Hex(s); err == nil {
		return Color(c.Hex()), nil
	}
	return "", fmt.Errorf("unknown color %q", s)
}

// RGB resolves the color, unknown names resolve to black
func (c Color) RGB() RGB {
	tc := tcell.GetColor(string(c))
	if tc == tcell.ColorDefault {
		return RGBBlack
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return RGBBlack
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Gradient returns n colors blended from c to end in CIE-Lab space
// The first element is c and the last is end; n == 1 yields only c
func (c Color) Gradient(end Color, n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	if n == 1 {
		out[0] = c
		return out
	}

	from := c.RGB().Colorful()
	to := end.RGB().Colorful()
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = Color(fromColorful(from.BlendLab(to, t)).Colorful().Hex())
	}
	return out
}
