package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadHolym = `
# two triangles sharing an edge
v 0 0 0 c 1 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3
f 1/1 3/3 4/4
tex_path quad.png
`

func TestParseHolym(t *testing.T) {
	m, err := ParseHolym(strings.NewReader(quadHolym))
	require.NoError(t, err)

	assert.Equal(t, "quad.png", m.Texture)
	assert.Equal(t, 4, m.Mesh.VertexCount(), "shared corners are merged")
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Mesh.Indices)

	stride := LayoutFull.Stride()
	first := m.Mesh.Vertices[:stride]
	assert.Equal(t, []float32{0, 0, 0}, first[0:3])
	assert.Equal(t, []float32{0, 0, 1}, first[3:6], "flat normal of a CCW face")
	assert.Equal(t, []float32{0, 0}, first[6:8])
	assert.Equal(t, []float32{1, 0, 0, 1}, first[8:12])

	second := m.Mesh.Vertices[stride : 2*stride]
	assert.Equal(t, []float32{1, 1, 1, 1}, second[8:12], "color defaults to white")
}

func TestParseHolymErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short vertex", "v 1 2", "three coordinates"},
		{"bad number", "v 1 x 2", "line 1"},
		{"bad corner", "v 0 0 0\nvt 0 0\nf 1 1 1", "expected V/VT"},
		{"vertex out of range", "v 0 0 0\nvt 0 0\nf 1/1 2/1 1/1", "vertex index out of bounds: 2"},
		{"uv out of range", "v 0 0 0\nvt 0 0\nf 1/1 1/2 1/1", "texture coordinate index out of bounds: 2"},
		{"empty", "", "no vertices"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHolym(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadModelDispatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.holym")
	require.NoError(t, os.WriteFile(path, []byte(quadHolym), 0o644))

	m, err := LoadModel(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quad.png"), m.Texture)

	_, err = LoadModel(filepath.Join(dir, "model.stl"))
	assert.ErrorContains(t, err, "unsupported model format")
}

func TestPlaneData(t *testing.T) {
	p := PlaneData()
	require.NoError(t, p.Validate())
	assert.Equal(t, 4, p.VertexCount())
	for v := 0; v < 4; v++ {
		assert.Equal(t, []float32{0, 1, 0}, p.Vertices[v*12+3:v*12+6])
	}
}
