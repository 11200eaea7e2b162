package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pos identifies one voxel cell on the integer grid.
type Pos struct {
	X, Y, Z int
}

func (p Pos) Left() Pos  { return Pos{p.X - 1, p.Y, p.Z} }
func (p Pos) Right() Pos { return Pos{p.X + 1, p.Y, p.Z} }
func (p Pos) Up() Pos    { return Pos{p.X, p.Y + 1, p.Z} }
func (p Pos) Down() Pos  { return Pos{p.X, p.Y - 1, p.Z} }
func (p Pos) Front() Pos { return Pos{p.X, p.Y, p.Z + 1} }
func (p Pos) Back() Pos  { return Pos{p.X, p.Y, p.Z - 1} }

// Neighbors returns the six face-adjacent cells.
func (p Pos) Neighbors() [6]Pos {
	return [6]Pos{p.Left(), p.Right(), p.Up(), p.Down(), p.Front(), p.Back()}
}

// Vec3 is the center of the cell in continuous space.
func (p Pos) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// NearBlock snaps a continuous position to the cell containing it. This is
// the single voxel-rounding rule shared by the hit-tester and the physics
// resolver.
func NearBlock(v mgl32.Vec3) Pos {
	return Pos{
		int(math.Round(float64(v.X()))),
		int(math.Round(float64(v.Y()))),
		int(math.Round(float64(v.Z()))),
	}
}

// Sector keys a fixed-size cubic grouping of cells, the unit of show/hide
// scheduling.
type Sector struct {
	X, Y, Z int
}

// SectorOf returns the sector containing p for the given sector edge size.
func SectorOf(p Pos, size int) Sector {
	return Sector{
		floorDiv(p.X, size),
		floorDiv(p.Y, size),
		floorDiv(p.Z, size),
	}
}

// floorDiv rounds toward negative infinity, so cells at negative coordinates
// land in the right sector.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
