package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bezier-anim/vmath"
)

func decodePNG(t *testing.T, s *RasterSurface) image.Image {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	return img
}

func rgbAt(img image.Image, x, y int) RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestRasterSurface_Draw(t *testing.T) {
	s, err := NewRasterSurface(100, 100)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	s.ClearAndFill(ColorWhite)
	s.FillCircle(vmath.Pt(50, 50), 10, ColorBlack)
	s.StrokePolyline([]vmath.Point{vmath.Pt(0, 90), vmath.Pt(100, 90)}, ColorRed, 4)
	s.DrawLabel("0", vmath.Pt(5, 5))

	require.NoError(t, s.Err())
	img := decodePNG(t, s)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, RGBWhite, rgbAt(img, 95, 5))
	assert.Equal(t, RGBBlack, rgbAt(img, 50, 50))
	assert.Equal(t, RGB{255, 0, 0}, rgbAt(img, 50, 90))
}

func TestRasterSurface_DegeneratePolyline(t *testing.T) {
	s, err := NewRasterSurface(20, 20)
	require.NoError(t, err)

	s.ClearAndFill(ColorWhite)
	s.StrokePolyline(nil, ColorRed, 2)
	s.StrokePolyline([]vmath.Point{vmath.Pt(10, 10)}, ColorRed, 2)

	img := decodePNG(t, s)
	assert.Equal(t, RGBWhite, rgbAt(img, 10, 10))
}

func TestRasterSurface_SavePNG(t *testing.T) {
	s, err := NewRasterSurface(20, 20)
	require.NoError(t, err)
	s.ClearAndFill(ColorBlue)

	path := filepath.Join(t.TempDir(), "snap.png")
	require.NoError(t, s.SavePNG(path))

	err = s.SavePNG(filepath.Join(t.TempDir(), "missing", "dir", "snap.png"))
	assert.Error(t, err)
}

func TestRasterSurface_DrawFailureFailsSave(t *testing.T) {
	s, err := NewRasterSurface(20, 20)
	require.NoError(t, err)
	s.ClearAndFill(ColorWhite)

	s.keep(nil)
	require.NoError(t, s.Err())

	first := errors.New("rasterizer out of memory")
	s.keep(first)
	s.keep(errors.New("later"))
	assert.ErrorIs(t, s.Err(), first)

	var buf bytes.Buffer
	assert.ErrorIs(t, s.EncodePNG(&buf), first)

	path := filepath.Join(t.TempDir(), "snap.png")
	assert.ErrorIs(t, s.SavePNG(path), first)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
