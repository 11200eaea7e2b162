package world

import "blockworld/internal/cube"

// BlockType enumerates the block variants. The zero value means "no block";
// absent cells are never stored.
type BlockType uint8

const (
	Grass BlockType = iota + 1
	Sand
	Brick
	Stone
)

func (t BlockType) String() string {
	switch t {
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	case Brick:
		return "brick"
	case Stone:
		return "stone"
	}
	return "none"
}

// faceTiles fixes each block type's atlas cells once; all blocks of a type
// share the same quads.
var faceTiles = map[BlockType]cube.FaceTiles{
	Grass: {Top: cube.Tile{X: 1, Y: 0}, Bottom: cube.Tile{X: 0, Y: 1}, Side: cube.Tile{X: 0, Y: 0}},
	Sand:  {Top: cube.Tile{X: 1, Y: 1}, Bottom: cube.Tile{X: 1, Y: 1}, Side: cube.Tile{X: 1, Y: 1}},
	Brick: {Top: cube.Tile{X: 2, Y: 0}, Bottom: cube.Tile{X: 2, Y: 0}, Side: cube.Tile{X: 2, Y: 0}},
	Stone: {Top: cube.Tile{X: 2, Y: 1}, Bottom: cube.Tile{X: 2, Y: 1}, Side: cube.Tile{X: 2, Y: 1}},
}

// Tiles returns the atlas faces for a block type.
func (t BlockType) Tiles() cube.FaceTiles {
	return faceTiles[t]
}

// Inventory is the block sequence the player can cycle through when placing.
var Inventory = []BlockType{Brick, Grass, Sand}
