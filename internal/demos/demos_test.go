package demos

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/toxichemicals/GO/glsandbox/assets"
	"github.com/toxichemicals/GO/glsandbox/internal/config"
)

func TestRegistry(t *testing.T) {
	all := All()
	names := make([]string, 0, len(all))
	for _, d := range all {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Short, d.Name)
	}
	assert.Equal(t, []string{"arcball", "ebo", "letters", "model", "orbit", "shaded", "textured", "triangle", "window"}, names)

	d, ok := Lookup("orbit")
	require.True(t, ok)
	assert.Equal(t, "orbit", d.Name)

	_, ok = Lookup("missing")
	assert.False(t, ok)
}

func TestConstructorsDoNotTouchGL(t *testing.T) {
	cfg := config.Default()
	for _, d := range All() {
		assert.NotNil(t, d.New(cfg), d.Name)
	}
}

func TestLetterPlacement(t *testing.T) {
	// each glyph's local +z ends up pointing away from the centre
	for i, want := range []mgl32.Vec3{{0, 0, 1}, {1, 0, 0}, {0, 0, -1}, {-1, 0, 0}} {
		m := letterPlacement(i)
		assert.True(t, m.Col(3).Vec3().ApproxEqualThreshold(want, 1e-5), "offset %d", i)

		facing := m.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3().Normalize()
		assert.True(t, facing.ApproxEqualThreshold(want, 1e-5), "facing %d: %v", i, facing)
	}
}

func TestLightRigFollowsConfig(t *testing.T) {
	cfg := config.Default()
	r := newLightRig(cfg.Light, wasdKeys)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, r.light.Position)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, r.light.Diffuse)
	assert.Equal(t, float32(4), r.speed)
	assert.True(t, r.blinnPhong)
}

func TestLoadOrCube(t *testing.T) {
	log := zaptest.NewLogger(t)

	missing := func() (assets.Model, error) {
		return assets.LoadModel(filepath.Join(t.TempDir(), "gone.holym"))
	}
	m, err := loadOrCube(missing, log)
	require.NoError(t, err)
	assert.Equal(t, assets.CubeData(), m.Mesh)
	assert.Empty(t, m.Texture)

	_, err = loadOrCube(func() (assets.Model, error) { return assets.LoadModel("model.stl") }, log)
	assert.Error(t, err, "unsupported formats are not papered over")
}

func TestDefaultModelLoads(t *testing.T) {
	cfg := config.Default()
	m, err := loadOrCube(func() (assets.Model, error) {
		return assets.LoadModel(filepath.Join("..", "..", cfg.Assets.Model))
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.NotEqual(t, assets.CubeData(), m.Mesh, "the shipped model is found")
}
