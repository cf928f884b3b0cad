package artwork

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, solid(190, 170, color.White)))
	require.NoError(t, file.Close())

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 190, img.Bounds().Dx())
	assert.Equal(t, 170, img.Bounds().Dy())
}

func TestLoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.jpg")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(file, solid(64, 32, color.Black), nil))
	require.NoError(t, file.Close())

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 32), img.Bounds())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0644))
	_, err = Load(garbage)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestDownscale(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	small := Downscale(solid(190, 190, red), 19, 7)

	assert.Equal(t, image.Rect(0, 0, 19, 7), small.Bounds())
	assert.Equal(t, red, small.RGBAAt(9, 3))

	// Нулевой размер превращается в одну ячейку
	tiny := Downscale(solid(10, 10, red), 0, 0)
	assert.Equal(t, image.Rect(0, 0, 1, 1), tiny.Bounds())
}
