package assets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Model is mesh data plus the texture it refers to, if any.
type Model struct {
	Mesh    MeshData
	Texture string
}

// LoadModel reads a .gltf, .glb, .obj or .holym file.
func LoadModel(path string) (Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		mesh, err := LoadGLTF(path)
		return Model{Mesh: mesh}, err
	case ".obj":
		return LoadOBJ(path)
	case ".holym":
		return LoadHolym(path)
	default:
		return Model{}, fmt.Errorf("unsupported model format %q", filepath.Ext(path))
	}
}

// LoadHolym reads a .holym file. A relative tex_path is resolved against the
// file's directory.
func LoadHolym(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return Model{}, fmt.Errorf("failed to open .holym file: %w", err)
	}
	defer f.Close()

	m, err := ParseHolym(f)
	if err != nil {
		return Model{}, fmt.Errorf("%s: %w", path, err)
	}
	if m.Texture != "" && !filepath.IsAbs(m.Texture) {
		m.Texture = filepath.Join(filepath.Dir(path), m.Texture)
	}
	return m, nil
}

type holymCorner struct{ vertex, texCoord int }

// ParseHolym decodes the .holym text format into LayoutFull:
//
//	v x y z [c r g b]    position with an optional color, white by default
//	vt u v               texture coordinate
//	f v/vt v/vt v/vt     triangle, 1-based indices
//	tex_path file        texture image
//
// Faces get flat normals. Corners sharing position, texture coordinate and
// normal are merged.
func ParseHolym(r io.Reader) (Model, error) {
	var (
		positions []mgl32.Vec3
		colors    []mgl32.Vec3
		texCoords []mgl32.Vec2
		faces     [][3]holymCorner
		texture   string
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return Model{}, fmt.Errorf("line %d: vertex needs three coordinates", line)
			}
			p, err := parseFloats(fields[1:4])
			if err != nil {
				return Model{}, fmt.Errorf("line %d: %w", line, err)
			}
			positions = append(positions, mgl32.Vec3{p[0], p[1], p[2]})

			color := mgl32.Vec3{1, 1, 1}
			if len(fields) == 8 && fields[4] == "c" {
				c, err := parseFloats(fields[5:8])
				if err != nil {
					return Model{}, fmt.Errorf("line %d: %w", line, err)
				}
				color = mgl32.Vec3{c[0], c[1], c[2]}
			}
			colors = append(colors, color)

		case "vt":
			if len(fields) < 3 {
				return Model{}, fmt.Errorf("line %d: texture coordinate needs u and v", line)
			}
			uv, err := parseFloats(fields[1:3])
			if err != nil {
				return Model{}, fmt.Errorf("line %d: %w", line, err)
			}
			texCoords = append(texCoords, mgl32.Vec2{uv[0], uv[1]})

		case "f":
			if len(fields) < 4 {
				return Model{}, fmt.Errorf("line %d: face needs three corners", line)
			}
			var face [3]holymCorner
			for i := range face {
				parts := strings.Split(fields[i+1], "/")
				if len(parts) != 2 {
					return Model{}, fmt.Errorf("line %d: invalid face corner %q (expected V/VT)", line, fields[i+1])
				}
				v, err := strconv.Atoi(parts[0])
				if err != nil {
					return Model{}, fmt.Errorf("line %d: %w", line, err)
				}
				vt, err := strconv.Atoi(parts[1])
				if err != nil {
					return Model{}, fmt.Errorf("line %d: %w", line, err)
				}
				face[i] = holymCorner{v - 1, vt - 1}
			}
			faces = append(faces, face)

		case "tex_path":
			if len(fields) >= 2 {
				texture = fields[1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Model{}, fmt.Errorf("error scanning .holym data: %w", err)
	}

	type key struct {
		corner holymCorner
		normal mgl32.Vec3
	}
	seen := make(map[key]uint32)
	var (
		vertices []float32
		indices  []uint32
	)
	for _, face := range faces {
		for _, c := range face {
			if c.vertex < 0 || c.vertex >= len(positions) {
				return Model{}, fmt.Errorf("vertex index out of bounds: %d", c.vertex+1)
			}
			if c.texCoord < 0 || c.texCoord >= len(texCoords) {
				return Model{}, fmt.Errorf("texture coordinate index out of bounds: %d", c.texCoord+1)
			}
		}
		p0, p1, p2 := positions[face[0].vertex], positions[face[1].vertex], positions[face[2].vertex]
		normal := p1.Sub(p0).Cross(p2.Sub(p0))
		if normal.Len() > 0 {
			normal = normal.Normalize()
		}

		for _, c := range face {
			k := key{c, normal}
			if idx, ok := seen[k]; ok {
				indices = append(indices, idx)
				continue
			}
			idx := uint32(len(vertices) / LayoutFull.Stride())
			pos, col, uv := positions[c.vertex], colors[c.vertex], texCoords[c.texCoord]
			vertices = append(vertices,
				pos[0], pos[1], pos[2],
				normal[0], normal[1], normal[2],
				uv[0], uv[1],
				col[0], col[1], col[2], 1,
			)
			seen[k] = idx
			indices = append(indices, idx)
		}
	}

	mesh := MeshData{Layout: LayoutFull, Vertices: vertices, Indices: indices}
	if err := mesh.Validate(); err != nil {
		return Model{}, err
	}
	return Model{Mesh: mesh, Texture: texture}, nil
}

func parseFloats(fields []string) ([]float32, error) {
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

// PlaneData returns a unit square in the y=0 plane facing +y, in LayoutFull.
func PlaneData() MeshData {
	return MeshData{
		Layout: LayoutFull,
		Vertices: []float32{
			-0.5, 0, 0.5, 0, 1, 0, 0, 0, 1, 1, 1, 1,
			0.5, 0, 0.5, 0, 1, 0, 1, 0, 1, 1, 1, 1,
			0.5, 0, -0.5, 0, 1, 0, 1, 1, 1, 1, 1, 1,
			-0.5, 0, -0.5, 0, 1, 0, 0, 1, 1, 1, 1, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}
