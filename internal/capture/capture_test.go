package capture

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePNG(t *testing.T) {
	img := uniformImage(16, 9, 128)
	path := filepath.Join(t.TempDir(), "AAPL", "barchart_AAPL_put_call_ratios.png")

	require.NoError(t, SavePNG(img, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	decoded, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())
	assert.Equal(t, 9, decoded.Bounds().Dy())
}

func TestSavePNGOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, SavePNG(uniformImage(4, 4, 0), path))
	require.NoError(t, SavePNG(uniformImage(8, 8, 0), path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	decoded, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 8, decoded.Bounds().Dx())
}

func TestImprintExtendsImage(t *testing.T) {
	img := uniformImage(120, 40, 128)

	out := Imprint(img, "AAPL 2024-01-02 13:37:00")

	assert.Equal(t, 120, out.Bounds().Dx())
	assert.Greater(t, out.Bounds().Dy(), 40)

	// The original content must be untouched above the caption strip.
	r, g, b, ok := ChannelMeans(out)
	require.True(t, ok)
	assert.Greater(t, r, 100.0)
	assert.Greater(t, g, 100.0)
	assert.Greater(t, b, 100.0)
}
