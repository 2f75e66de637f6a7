package assets

/*
cube vertices numbered, +z towards the viewer:

	      6 ---------------- 7
	     /|                 /|
	    / |                / |
	3 ---------------- 2     |
	  |   |            |     |
	  |   5 -----------|---- 4
	  |  /             |   /
	  | /              |  /
	0 ---------------- 1

Each face gets its own four vertices so normals and UVs stay flat.
*/

var cubePositions = []float32{
	// front
	-1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1, 1,
	// back
	1, -1, -1, -1, -1, -1, -1, 1, -1, 1, 1, -1,
	// left
	-1, -1, -1, -1, -1, 1, -1, 1, 1, -1, 1, -1,
	// right
	1, -1, 1, 1, -1, -1, 1, 1, -1, 1, 1, 1,
	// top
	-1, 1, 1, 1, 1, 1, 1, 1, -1, -1, 1, -1,
	// bottom
	-1, -1, -1, 1, -1, -1, 1, -1, 1, -1, -1, 1,
}

var cubeFaceNormals = [6][3]float32{
	{0, 0, 1},  // front
	{0, 0, -1}, // back
	{-1, 0, 0}, // left
	{1, 0, 0},  // right
	{0, 1, 0},  // top
	{0, -1, 0}, // bottom
}

var cubeColors = []float32{
	// front: black, red, green, blue
	0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1,
	// back: yellow, magenta, white, cyan
	1, 1, 0, 1, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1,
	// left: magenta, black, blue, white
	1, 0, 1, 1, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1, 1, 1,
	// right: red, yellow, cyan, green
	1, 0, 0, 1, 1, 1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 1,
	// top: blue, green, cyan, white
	0, 0, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1,
	// bottom: magenta, yellow, red, black
	1, 0, 1, 1, 1, 1, 0, 1, 1, 0, 0, 1, 0, 0, 0, 1,
}

// CubeData returns a 2x2x2 cube centred on the origin in LayoutFull, with
// counter-clockwise front faces.
func CubeData() MeshData {
	normals := make([]float32, 0, 24*3)
	uvs := make([]float32, 0, 24*2)
	indices := make([]uint32, 0, 36)
	for face, n := range cubeFaceNormals {
		for i := 0; i < 4; i++ {
			normals = append(normals, n[:]...)
		}
		uvs = append(uvs, 0, 0, 1, 0, 1, 1, 0, 1)

		base := uint32(face * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	vertices, err := Interleave(LayoutFull, cubePositions, normals, uvs, cubeColors)
	if err != nil {
		panic(err) // static data
	}
	return MeshData{Layout: LayoutFull, Vertices: vertices, Indices: indices}
}
