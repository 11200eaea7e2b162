// Package cube builds vertex and texture-coordinate data for unit cubes.
// Everything here is pure; the GL upload happens elsewhere.
package cube

// Triangle vertices of a unit cube centered on the origin, two triangles per
// face. Face order: front, back, left, right, top, bottom.
var vertices = []float32{
	// Front face
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5,
	-0.5, 0.5, -0.5,
	0.5, 0.5, -0.5,
	-0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,
	0.5, -0.5, -0.5,

	// Left face
	-0.5, -0.5, -0.5,
	-0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5,
	-0.5, -0.5, -0.5,
	-0.5, 0.5, 0.5,
	-0.5, 0.5, -0.5,

	// Right face
	0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,
	0.5, 0.5, 0.5,
	0.5, -0.5, -0.5,
	0.5, 0.5, 0.5,
	0.5, -0.5, 0.5,

	// Top face
	-0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, -0.5,
	0.5, 0.5, 0.5,
	0.5, 0.5, -0.5,

	// Bottom face
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, -0.5, 0.5,
	-0.5, -0.5, -0.5,
	0.5, -0.5, 0.5,
	-0.5, -0.5, 0.5,
}

// UV index pairs per vertex. Even values select u1/u2 (0/2), odd select v1/v2
// (1/3) out of the {u1, v1, u2, v2} quad returned by TileUV.
var uvIndex = []uint8{
	// Front face
	0, 3,
	2, 3,
	2, 1,
	0, 3,
	2, 1,
	0, 1,

	// Back face
	2, 3,
	2, 1,
	0, 1,
	2, 3,
	0, 1,
	0, 3,

	// Left face
	0, 3,
	2, 3,
	2, 1,
	0, 3,
	2, 1,
	0, 1,

	// Right face
	0, 3,
	0, 1,
	2, 1,
	0, 3,
	2, 1,
	2, 3,

	// Top face
	0, 3,
	0, 1,
	2, 1,
	0, 3,
	2, 1,
	2, 3,

	// Bottom face
	0, 3,
	2, 3,
	2, 1,
	0, 3,
	2, 1,
	0, 1,
}

// VertexCount is the number of vertices emitted per cube.
const VertexCount = 36

// Stride is floats per vertex in the interleaved stream: x, y, z, u, v.
const Stride = 5

// Tile addresses one cell of the square texture atlas grid.
type Tile struct {
	X int
	Y int
}

// FaceTiles maps the three distinct cube faces of a block type onto atlas
// tiles. Sides share one tile.
type FaceTiles struct {
	Top    Tile
	Bottom Tile
	Side   Tile
}

// TileUV returns {u1, v1, u2, v2} for a tile of an m x m atlas.
func TileUV(t Tile, m int) [4]float32 {
	s := 1.0 / float32(m)
	u1 := float32(t.X) * s
	v1 := float32(t.Y) * s
	return [4]float32{u1, v1, u1 + s, v1 + s}
}

// Vertices returns the 36 triangle vertices of a cube of half-extent n
// centered at (x, y, z).
func Vertices(x, y, z, n float32) []float32 {
	out := make([]float32, 0, VertexCount*3)
	for i := 0; i < len(vertices); i += 3 {
		out = append(out,
			vertices[i]*2*n+x,
			vertices[i+1]*2*n+y,
			vertices[i+2]*2*n+z,
		)
	}
	return out
}

// Interleaved builds the x,y,z,u,v stream for one unit cube at (x, y, z)
// textured from an m x m atlas.
func Interleaved(x, y, z float32, tiles FaceTiles, m int) []float32 {
	faceUV := [6][4]float32{
		TileUV(tiles.Side, m),   // front
		TileUV(tiles.Side, m),   // back
		TileUV(tiles.Side, m),   // left
		TileUV(tiles.Side, m),   // right
		TileUV(tiles.Top, m),    // top
		TileUV(tiles.Bottom, m), // bottom
	}

	out := make([]float32, 0, VertexCount*Stride)
	for i := 0; i < len(vertices); i += 3 {
		vert := i / 3
		uv := faceUV[vert/6]
		out = append(out,
			vertices[i]+x,
			vertices[i+1]+y,
			vertices[i+2]+z,
			uv[uvIndex[vert*2]],
			uv[uvIndex[vert*2+1]],
		)
	}
	return out
}
