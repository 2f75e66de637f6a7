package assets

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sheenobu/go-obj/obj"
)

var errNoFaces = errors.New("obj: no faces found")

// LoadOBJ reads a Wavefront .obj file. Materials are not read, so the model
// carries no texture.
func LoadOBJ(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return Model{}, fmt.Errorf("failed to open OBJ file %s: %w", path, err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return Model{}, fmt.Errorf("%s: %w", path, err)
	}
	return Model{Mesh: mesh}, nil
}

// ParseOBJ decodes OBJ geometry into LayoutFull. Polygons are split into
// triangle fans. Corners without a normal get the flat normal of their
// triangle, corners without a texture coordinate get (0, 0), and every
// vertex is white.
func ParseOBJ(r io.Reader) (MeshData, error) {
	o, err := obj.NewReader(r).Read()
	if err != nil {
		return MeshData{}, fmt.Errorf("failed to parse OBJ: %w", err)
	}

	type corner struct {
		pos, normal mgl32.Vec3
		uv          mgl32.Vec2
	}
	seen := make(map[corner]uint32)
	var (
		vertices []float32
		indices  []uint32
	)
	emit := func(c corner) {
		if idx, ok := seen[c]; ok {
			indices = append(indices, idx)
			return
		}
		idx := uint32(len(vertices) / LayoutFull.Stride())
		vertices = append(vertices,
			c.pos[0], c.pos[1], c.pos[2],
			c.normal[0], c.normal[1], c.normal[2],
			c.uv[0], c.uv[1],
			1, 1, 1, 1,
		)
		seen[c] = idx
		indices = append(indices, idx)
	}

	for fi, face := range o.Faces {
		if len(face.Points) < 3 {
			return MeshData{}, fmt.Errorf("face %d has %d corners", fi+1, len(face.Points))
		}
		corners := make([]corner, len(face.Points))
		for i, p := range face.Points {
			if p == nil || p.Vertex == nil {
				return MeshData{}, fmt.Errorf("face %d: corner %d has no vertex", fi+1, i+1)
			}
			corners[i].pos = mgl32.Vec3{float32(p.Vertex.X), float32(p.Vertex.Y), float32(p.Vertex.Z)}
			if p.Texture != nil {
				corners[i].uv = mgl32.Vec2{float32(p.Texture.U), float32(p.Texture.V)}
			}
			if p.Normal != nil {
				corners[i].normal = mgl32.Vec3{float32(p.Normal.X), float32(p.Normal.Y), float32(p.Normal.Z)}
			}
		}

		for i := 1; i+1 < len(corners); i++ {
			tri := [3]corner{corners[0], corners[i], corners[i+1]}
			flat := tri[1].pos.Sub(tri[0].pos).Cross(tri[2].pos.Sub(tri[0].pos))
			if flat.Len() > 0 {
				flat = flat.Normalize()
			}
			for _, c := range tri {
				if c.normal == (mgl32.Vec3{}) {
					c.normal = flat
				}
				emit(c)
			}
		}
	}
	if len(indices) == 0 {
		return MeshData{}, errNoFaces
	}

	mesh := MeshData{Layout: LayoutFull, Vertices: vertices, Indices: indices}
	if err := mesh.Validate(); err != nil {
		return MeshData{}, err
	}
	return mesh, nil
}
