package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCropPNG(t *testing.T) {
	data := encodeTestImage(t, 200, 100)

	out, err := CropPNG(data, CropRegion{X: 10, Y: 20, Width: 50, Height: 40})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}

func TestCropPNGClampsToBounds(t *testing.T) {
	data := encodeTestImage(t, 100, 100)

	out, err := CropPNG(data, CropRegion{X: 80, Y: 80, Width: 50, Height: 50})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestCropPNGOutsideRaster(t *testing.T) {
	data := encodeTestImage(t, 100, 100)

	_, err := CropPNG(data, CropRegion{X: 200, Y: 200, Width: 10, Height: 10})
	assert.Error(t, err)
}

func TestCropPNGRejectsGarbage(t *testing.T) {
	_, err := CropPNG([]byte("not a png"), CropRegion{X: 0, Y: 0, Width: 10, Height: 10})
	assert.Error(t, err)
}
