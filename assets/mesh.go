// Package assets holds the GL-free side of the sandbox: vertex layouts and
// mesh data, built-in geometry, image decoding, model loading and point light
// parameters.
package assets

import (
	"errors"
	"fmt"
)

// Attribute is one vertex attribute: its shader location and float count.
type Attribute struct {
	Location uint32
	Size     int32
}

// VertexLayout describes interleaved float32 vertices.
type VertexLayout []Attribute

// Stride returns the number of floats per vertex.
func (l VertexLayout) Stride() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Common layouts. Locations match the embedded shaders.
var (
	LayoutPosColor  = VertexLayout{{0, 3}, {1, 3}}
	LayoutPos2Color = VertexLayout{{0, 2}, {1, 3}}
	LayoutFull      = VertexLayout{{0, 3}, {1, 3}, {2, 2}, {3, 4}} // position, normal, uv, color
)

// MeshData is geometry ready for upload.
type MeshData struct {
	Layout   VertexLayout
	Vertices []float32
	Indices  []uint32 // nil draws arrays
}

// VertexCount returns how many vertices Vertices holds.
func (d MeshData) VertexCount() int {
	stride := d.Layout.Stride()
	if stride == 0 {
		return 0
	}
	return len(d.Vertices) / stride
}

var errEmptyMesh = errors.New("mesh has no vertices")

// Validate checks the vertex buffer against the layout and every index
// against the vertex count.
func (d MeshData) Validate() error {
	stride := d.Layout.Stride()
	if stride == 0 || len(d.Vertices) == 0 {
		return errEmptyMesh
	}
	if len(d.Vertices)%stride != 0 {
		return fmt.Errorf("vertex buffer of %d floats is not a multiple of stride %d", len(d.Vertices), stride)
	}
	n := uint32(d.VertexCount())
	for i, idx := range d.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Interleave packs per-attribute streams into one vertex buffer. Each stream
// holds count*size floats for its attribute; all must describe the same
// number of vertices.
func Interleave(layout VertexLayout, streams ...[]float32) ([]float32, error) {
	if len(streams) != len(layout) {
		return nil, fmt.Errorf("got %d streams for %d attributes", len(streams), len(layout))
	}
	count := -1
	for i, s := range streams {
		size := int(layout[i].Size)
		if size <= 0 || len(s)%size != 0 {
			return nil, fmt.Errorf("stream %d has %d floats, not a multiple of %d", i, len(s), size)
		}
		n := len(s) / size
		if count >= 0 && n != count {
			return nil, fmt.Errorf("stream %d has %d vertices, want %d", i, n, count)
		}
		count = n
	}

	out := make([]float32, 0, count*layout.Stride())
	for v := 0; v < count; v++ {
		for i, s := range streams {
			size := int(layout[i].Size)
			out = append(out, s[v*size:(v+1)*size]...)
		}
	}
	return out, nil
}
