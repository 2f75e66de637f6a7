package assets

// Letter is one flat glyph in LayoutPos2Color, spanning [-0.875, 0.875] on
// both axes.
type Letter struct {
	Glyph string
	Mesh  MeshData
}

type glyph struct {
	name      string
	positions []float32
	colors    []float32
	indices   []uint32
}

var glyphs = []glyph{
	{
		name: "J",
		positions: []float32{
			.125, .5, -.125, .5, .875, .5,
			-.875, .5, .875, .75, -.875, .75,
			-.125, -.5, .125, -.75, -.875, -.5,
			-.875, -.75,
		},
		colors: []float32{
			1, 0, 0, 1, 0, 0, 1, 0, 1,
			0, 0, 0, 1, 0, 1, 0, 0, 0,
			1, 1, 0, 1, 1, 0, 0, 1, 1,
			0, 1, 1,
		},
		indices: []uint32{
			0, 1, 4, 0, 2, 4, 0, 1, 7, 1, 3, 5,
			1, 4, 5, 1, 6, 7, 6, 7, 9, 6, 8, 9,
		},
	},
	{
		name: "D",
		positions: []float32{
			-.875, .75, -.875, -.75, -.625, .5,
			-.625, -.5, -.375, .75, -.375, -.75,
			.375, 0, .875, 0,
		},
		colors: []float32{
			0, 0, 0, 0, 1, 1, 1, 0, 0,
			0, 1, 1, 1, 0, 1, 0, 1, 0,
			1, 1, 0, 1, 1, 0,
		},
		indices: []uint32{
			0, 1, 3, 0, 2, 3, 0, 2, 4, 1, 3, 5,
			2, 4, 6, 3, 5, 6, 4, 6, 7, 5, 6, 7,
		},
	},
	{
		name: "T",
		positions: []float32{
			.125, .5, -.125, .5, .875, .5,
			-.875, .5, .875, .75, -.875, .75,
			-.125, -.5, .125, -.75,
		},
		colors: []float32{
			1, 0, 0, 1, 0, 0, 1, 0, 1,
			0, 0, 0, 1, 0, 1, 0, 0, 0,
			1, 1, 0, 1, 1, 0,
		},
		indices: []uint32{
			0, 1, 4, 0, 2, 4, 0, 1, 7,
			1, 3, 5, 1, 4, 5, 1, 6, 7,
		},
	},
	{
		name: "II",
		positions: []float32{
			-.875, .75, -.875, .5, -.875, -.5,
			-.875, -.75, -.375, .5, -.375, -.5,
			-.125, .5, -.125, -.5, .125, .5,
			.125, -.5, .375, .5, .375, -.5,
			.875, .75, .875, .5, .875, -.5,
			.875, -.75,
		},
		colors: []float32{
			0, 0, 0, 0, 0, 0, 0, 1, 1,
			0, 1, 1, 1, 0, 0, 0, 1, 1,
			1, 0, 0, 1, 1, 0, 0, 1, 1,
			1, 1, 0, 0, 1, 1, 1, 1, 0,
			1, 0, 1, 1, 0, 1, 1, 1, 0,
			1, 1, 0,
		},
		indices: []uint32{
			0, 1, 4, 0, 4, 6, 0, 6, 12, 2, 3, 5,
			3, 5, 7, 3, 7, 9, 3, 9, 15, 4, 5, 7,
			4, 6, 7, 6, 8, 12, 8, 9, 10, 8, 10, 12,
			9, 10, 11, 9, 11, 15, 10, 12, 13, 11, 14, 15,
		},
	},
}

// Letters returns the glyphs J, D, T and II.
func Letters() []Letter {
	out := make([]Letter, 0, len(glyphs))
	for _, g := range glyphs {
		vertices, err := Interleave(LayoutPos2Color, g.positions, g.colors)
		if err != nil {
			panic("assets: bad glyph " + g.name + ": " + err.Error())
		}
		out = append(out, Letter{
			Glyph: g.name,
			Mesh: MeshData{
				Layout:   LayoutPos2Color,
				Vertices: vertices,
				Indices:  append([]uint32(nil), g.indices...),
			},
		})
	}
	return out
}

// TriangleData returns the red, green and blue triangle in LayoutPosColor.
func TriangleData() MeshData {
	vertices, _ := Interleave(LayoutPosColor,
		[]float32{-0.5, -0.5, 0, 0, 0.5, 0, 0.5, -0.5, 0},
		[]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
	)
	return MeshData{Layout: LayoutPosColor, Vertices: vertices}
}
