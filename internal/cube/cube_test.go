package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerticesCenteredWithHalfExtent(t *testing.T) {
	out := Vertices(10, 20, 30, 0.5)
	require.Len(t, out, VertexCount*3)

	for i := 0; i < len(out); i += 3 {
		assert.InDelta(t, 10, out[i], 0.5)
		assert.InDelta(t, 20, out[i+1], 0.5)
		assert.InDelta(t, 30, out[i+2], 0.5)
	}
}

func TestTileUV(t *testing.T) {
	uv := TileUV(Tile{X: 1, Y: 2}, 4)
	assert.Equal(t, [4]float32{0.25, 0.5, 0.5, 0.75}, uv)

	// Corner tiles span the full texture edge.
	assert.Equal(t, [4]float32{0, 0, 0.25, 0.25}, TileUV(Tile{}, 4))
}

func TestInterleavedLayout(t *testing.T) {
	tiles := FaceTiles{Top: Tile{1, 0}, Bottom: Tile{0, 1}, Side: Tile{0, 0}}
	out := Interleaved(3, -2, 7, tiles, 4)
	require.Len(t, out, VertexCount*Stride)

	topUV := TileUV(tiles.Top, 4)
	for i := 0; i < len(out); i += Stride {
		// Positions stay within the unit cube around the block center.
		assert.InDelta(t, 3, out[i], 0.5)
		assert.InDelta(t, -2, out[i+1], 0.5)
		assert.InDelta(t, 7, out[i+2], 0.5)
		// UVs stay inside the atlas.
		assert.GreaterOrEqual(t, out[i+3], float32(0))
		assert.LessOrEqual(t, out[i+3], float32(1))
		assert.GreaterOrEqual(t, out[i+4], float32(0))
		assert.LessOrEqual(t, out[i+4], float32(1))
	}

	// Vertices 24..29 are the top face; their UVs come from the top tile.
	for v := 24; v < 30; v++ {
		u := out[v*Stride+3]
		assert.GreaterOrEqual(t, u, topUV[0])
		assert.LessOrEqual(t, u, topUV[2])
	}
}
