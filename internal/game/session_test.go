package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockworld/internal/config"
	"blockworld/internal/physics"
	"blockworld/internal/render"
	"blockworld/internal/world"
)

type noopBatch struct{}

func (noopBatch) Draw()   {}
func (noopBatch) Delete() {}

type noopFactory struct{}

func (noopFactory) Build(world.Pos, world.BlockType) render.Batch { return noopBatch{} }

func testSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.WorldHalfSize = 14
	cfg.HillCount = 0 // a bare plain keeps sight lines predictable
	return NewSession(cfg, noopFactory{})
}

func TestSessionSpawnState(t *testing.T) {
	s := testSession(t)

	assert.NotZero(t, s.World().Len())
	assert.NotZero(t, s.Scheduler().BatchCount(), "spawn sectors are shown before the first frame")
	assert.Equal(t, s.World().ShownLen(), s.Scheduler().BatchCount())
}

func TestOnTickSettlesOnGround(t *testing.T) {
	s := testSession(t)

	for i := 0; i < 60; i++ {
		s.OnTick(1.0 / 60)
	}
	// Floor surface is y=-2, so the eye rests at -2 + player height.
	assert.Equal(t, float32(0), s.Player().Position.Y())
	assert.True(t, s.Player().Grounded)
}

func TestAttackAndPlaceRoundTrip(t *testing.T) {
	s := testSession(t)
	floor := world.Pos{X: 0, Y: -2, Z: 0}
	require.Equal(t, world.Grass, s.World().BlockAt(floor))

	s.Look(0, -89) // look straight down
	s.Attack()
	assert.False(t, s.World().Occupied(floor), "mining removes the grass underfoot")

	// The next placement lands back in the freshly emptied cell, against the
	// sand below it.
	s.Interact()
	assert.Equal(t, world.Brick, s.World().BlockAt(floor))
}

func TestAttackStoneRefused(t *testing.T) {
	s := testSession(t)
	target := world.Pos{X: 0, Y: 0, Z: -3}
	s.World().AddBlock(target, world.Stone, true)

	s.Attack() // default view looks down -z
	assert.Equal(t, world.Stone, s.World().BlockAt(target), "stone cannot be mined")
}

func TestAttackNothingInRange(t *testing.T) {
	s := testSession(t)
	before := s.World().Len()

	s.Look(0, 89) // straight up at open sky
	s.Attack()
	assert.Equal(t, before, s.World().Len())
}

func TestInteractRefusesBodyCell(t *testing.T) {
	s := testSession(t)
	// A block right in front of the face: the cell between it and the eye is
	// the head cell itself.
	s.World().AddBlock(world.Pos{X: 0, Y: 0, Z: -1}, world.Brick, true)

	s.Interact()
	assert.False(t, s.World().Occupied(world.Pos{X: 0, Y: 0, Z: 0}),
		"placement into the player's body must be refused")
}

func TestInteractWithoutTargetIsNoOp(t *testing.T) {
	s := testSession(t)
	before := s.World().Len()

	s.Look(0, 89)
	s.Interact()
	assert.Equal(t, before, s.World().Len())
}

func TestSelectSlotChangesPlacedBlock(t *testing.T) {
	s := testSession(t)
	s.SelectSlot(1)
	assert.Equal(t, world.Inventory[1], s.Player().SelectedBlock())

	s.Look(0, -89)
	s.Attack()
	s.Interact()
	assert.Equal(t, world.Inventory[1], s.World().BlockAt(world.Pos{X: 0, Y: -2, Z: 0}))
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	s := testSession(t)
	s.Jump()
	assert.Zero(t, s.Player().Dy, "not grounded yet, jump input ignored")

	for i := 0; i < 30; i++ {
		s.OnTick(1.0 / 60)
	}
	require.True(t, s.Player().Grounded)
	s.Jump()
	assert.Equal(t, physics.JumpSpeed(s.Config()), s.Player().Dy)
}

func TestToggleFlying(t *testing.T) {
	s := testSession(t)
	require.False(t, s.Player().Flying)
	s.ToggleFlying()
	assert.True(t, s.Player().Flying)
	s.ToggleFlying()
	assert.False(t, s.Player().Flying)
}

func TestStrafeAndSprint(t *testing.T) {
	s := testSession(t)
	s.SetStrafe(1, 0, 0)
	assert.Equal(t, physics.Strafe{Forward: 1}, s.Player().Strafe)
	s.SetSprint(true)
	assert.True(t, s.Player().Sprint)
}
