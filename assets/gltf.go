package assets

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var errNoPrimitive = errors.New("gltf: no triangle primitive found")

// LoadGLTF reads the first triangle primitive of the first mesh in a .gltf or
// .glb file into LayoutFull vertices. Missing normals default to +Z, missing
// texture coordinates to (0, 0) and every vertex is white.
func LoadGLTF(path string) (MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return MeshData{}, fmt.Errorf("failed to open glTF %s: %w", path, err)
	}
	return meshFromDocument(doc)
}

func meshFromDocument(doc *gltf.Document) (MeshData, error) {
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			if _, ok := prim.Attributes[gltf.POSITION]; !ok {
				continue
			}
			return readPrimitive(doc, prim)
		}
	}
	return MeshData{}, errNoPrimitive
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (MeshData, error) {
	posIdx := prim.Attributes[gltf.POSITION]
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return MeshData{}, fmt.Errorf("gltf: reading positions: %w", err)
	}
	count := len(positions)

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return MeshData{}, fmt.Errorf("gltf: reading normals: %w", err)
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return MeshData{}, fmt.Errorf("gltf: reading texture coordinates: %w", err)
		}
	}

	vertices := make([]float32, 0, count*LayoutFull.Stride())
	for i, p := range positions {
		n := [3]float32{0, 0, 1}
		if i < len(normals) {
			n = normals[i]
		}
		var uv [2]float32
		if i < len(uvs) {
			uv = uvs[i]
		}
		vertices = append(vertices, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1], 1, 1, 1, 1)
	}

	data := MeshData{Layout: LayoutFull, Vertices: vertices}
	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return MeshData{}, fmt.Errorf("gltf: reading indices: %w", err)
		}
		data.Indices = indices
	}
	if err := data.Validate(); err != nil {
		return MeshData{}, fmt.Errorf("gltf: %w", err)
	}
	return data, nil
}
