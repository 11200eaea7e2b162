// Package physics integrates player motion and resolves it against the
// voxel grid.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"blockworld/internal/world"
)

// Strafe is the player's movement intent for the current frame. Forward and
// Right are -1, 0 or 1; Up only applies while flying.
type Strafe struct {
	Forward int
	Right   int
	Up      int
}

// Player is the single controllable entity. Position is the eye position;
// the body extends Height voxels downward from the containing cell.
type Player struct {
	Position mgl32.Vec3
	Yaw      float64 // degrees, -90 looks down -z
	Pitch    float64 // degrees, clamped to ±89

	Dy       float32 // vertical speed, blocks/s
	Flying   bool
	Grounded bool
	Sprint   bool
	Strafe   Strafe

	Slot int // index into world.Inventory
}

func NewPlayer(spawn mgl32.Vec3) *Player {
	return &Player{
		Position: spawn,
		Yaw:      -90,
	}
}

// Look applies a yaw/pitch delta in degrees, clamping pitch so the view
// never flips.
func (p *Player) Look(dyaw, dpitch float64) {
	p.Yaw += dyaw
	p.Pitch += dpitch
	if p.Pitch > 89 {
		p.Pitch = 89
	}
	if p.Pitch < -89 {
		p.Pitch = -89
	}
}

// SightVector is the unit vector the player is looking along.
func (p *Player) SightVector() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(float32(p.Yaw)))
	pitch := float64(mgl32.DegToRad(float32(p.Pitch)))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// facing is the horizontal forward vector derived from yaw alone.
func (p *Player) facing() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(float32(p.Yaw)))
	return mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(math.Sin(yaw))}
}

// MotionVector turns the strafe intent into a unit direction in world space.
// Vertical intent only contributes while flying; walking leaves the vertical
// axis to gravity.
func (p *Player) MotionVector() mgl32.Vec3 {
	front := p.facing()
	right := front.Cross(mgl32.Vec3{0, 1, 0})

	var dir mgl32.Vec3
	dir = dir.Add(front.Mul(float32(p.Strafe.Forward)))
	dir = dir.Add(right.Mul(float32(p.Strafe.Right)))
	if p.Flying {
		dir = dir.Add(mgl32.Vec3{0, float32(p.Strafe.Up), 0})
	}
	if dir.Len() == 0 {
		return dir
	}
	return dir.Normalize()
}

// SelectSlot picks an inventory slot, wrapping out-of-range indices.
func (p *Player) SelectSlot(i int) {
	n := len(world.Inventory)
	p.Slot = ((i % n) + n) % n
}

// SelectedBlock is the block type the player would place.
func (p *Player) SelectedBlock() world.BlockType {
	return world.Inventory[p.Slot]
}

// BodyCells returns the voxel cells the player's body occupies, from the eye
// cell downward.
func (p *Player) BodyCells(height int) []world.Pos {
	head := world.NearBlock(p.Position)
	cells := make([]world.Pos, height)
	for i := 0; i < height; i++ {
		cells[i] = world.Pos{X: head.X, Y: head.Y - i, Z: head.Z}
	}
	return cells
}
