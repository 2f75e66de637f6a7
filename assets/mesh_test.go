package assets

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStride(t *testing.T) {
	assert.Equal(t, 6, LayoutPosColor.Stride())
	assert.Equal(t, 5, LayoutPos2Color.Stride())
	assert.Equal(t, 12, LayoutFull.Stride())
	assert.Equal(t, 0, VertexLayout{}.Stride())
}

func TestInterleave(t *testing.T) {
	layout := VertexLayout{{0, 2}, {1, 1}}
	got, err := Interleave(layout, []float32{1, 2, 3, 4}, []float32{9, 8})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 9, 3, 4, 8}, got)
}

func TestInterleaveErrors(t *testing.T) {
	layout := VertexLayout{{0, 3}, {1, 2}}

	_, err := Interleave(layout, []float32{1, 2, 3})
	assert.Error(t, err, "stream count")

	_, err = Interleave(layout, []float32{1, 2}, []float32{1, 2})
	assert.Error(t, err, "ragged stream")

	_, err = Interleave(layout, []float32{1, 2, 3, 4, 5, 6}, []float32{1, 2})
	assert.Error(t, err, "vertex count mismatch")
}

func TestMeshDataValidate(t *testing.T) {
	ok := MeshData{Layout: LayoutPosColor, Vertices: make([]float32, 18), Indices: []uint32{0, 1, 2}}
	require.NoError(t, ok.Validate())
	assert.Equal(t, 3, ok.VertexCount())

	assert.ErrorIs(t, MeshData{Layout: LayoutPosColor}.Validate(), errEmptyMesh)
	assert.Error(t, MeshData{Layout: LayoutPosColor, Vertices: make([]float32, 7)}.Validate())

	bad := ok
	bad.Indices = []uint32{0, 1, 3}
	assert.Error(t, bad.Validate())
}

func TestCubeData(t *testing.T) {
	cube := CubeData()
	require.NoError(t, cube.Validate())
	assert.Equal(t, 24, cube.VertexCount())
	assert.Len(t, cube.Indices, 36)

	stride := LayoutFull.Stride()
	vertex := func(i uint32) (pos, normal mgl32.Vec3) {
		v := cube.Vertices[int(i)*stride:]
		return mgl32.Vec3{v[0], v[1], v[2]}, mgl32.Vec3{v[3], v[4], v[5]}
	}

	for tri := 0; tri < len(cube.Indices); tri += 3 {
		a, n := vertex(cube.Indices[tri])
		b, _ := vertex(cube.Indices[tri+1])
		c, _ := vertex(cube.Indices[tri+2])

		// Counter-clockwise winding seen from outside: the face normal
		// from the winding agrees with the stored normal.
		wound := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assert.InDelta(t, 1, wound.Dot(n), 1e-5, "triangle %d", tri/3)

		// Every vertex lies on the face plane its normal describes.
		assert.InDelta(t, 1, a.Dot(n), 1e-5)
	}
}
