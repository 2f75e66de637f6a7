package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoRowPNG encodes a 1x2 image: red on top, blue below.
func twoRowPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeRGBA(t *testing.T) {
	rgba, err := DecodeRGBA(bytes.NewReader(twoRowPNG(t)), false)
	require.NoError(t, err)
	assert.Equal(t, 1, rgba.Rect.Dx())
	assert.Equal(t, 2, rgba.Rect.Dy())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(0, 1))
}

func TestDecodeRGBAFlip(t *testing.T) {
	rgba, err := DecodeRGBA(bytes.NewReader(twoRowPNG(t)), true)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(0, 1))
}

func TestDecodeRGBARejectsGarbage(t *testing.T) {
	_, err := DecodeRGBA(strings.NewReader("not an image"), true)
	assert.Error(t, err)
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"), false)
	assert.ErrorContains(t, err, "could not open image")
}
