package assets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toxichemicals/GO/glsandbox/internal/config"
)

// Default paths are relative to the module root.
func TestDefaultAssetsLoad(t *testing.T) {
	cfg := config.Default()

	img, err := LoadImage(filepath.Join("..", cfg.Assets.Texture), true)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Rect.Dx())

	m, err := LoadModel(filepath.Join("..", cfg.Assets.Model))
	require.NoError(t, err)
	require.NoError(t, m.Mesh.Validate())
	assert.Len(t, m.Mesh.Indices, 18)

	require.NotEmpty(t, m.Texture)
	_, err = LoadImage(m.Texture, false)
	assert.NoError(t, err, "the model's texture ships next to it")
}
