package core

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/toxichemicals/GO/glsandbox/assets"
)

const floatSize = 4

// Mesh owns a VAO and its buffers.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// NewMesh uploads data to the GPU.
func NewMesh(data assets.MeshData) (*Mesh, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	m := &Mesh{indexed: len(data.Indices) > 0}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*floatSize, gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	if m.indexed {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)
		m.count = int32(len(data.Indices))
	} else {
		m.count = int32(data.VertexCount())
	}

	stride := int32(data.Layout.Stride() * floatSize)
	offset := 0
	for _, a := range data.Layout {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, uintptr(offset*floatSize))
		gl.EnableVertexAttribArray(a.Location)
		offset += int(a.Size)
	}

	gl.BindVertexArray(0) // Unbind VAO
	return m, nil
}

// Draw renders the mesh as triangles with the current program.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete frees the GPU buffers.
func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.indexed {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
