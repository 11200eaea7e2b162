package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitTestStraightOn(t *testing.T) {
	w := New(8)
	w.AddBlock(Pos{0, 0, 0}, Stone, false)

	hit, prev, ok := w.HitTest(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, 10)
	require.True(t, ok)
	assert.Equal(t, Pos{0, 0, 0}, hit)
	assert.Equal(t, Pos{0, 0, 1}, prev)
}

func TestHitTestOutOfRange(t *testing.T) {
	w := New(8)
	w.AddBlock(Pos{0, 0, 0}, Stone, false)

	_, _, ok := w.HitTest(mgl32.Vec3{0, 0, 20}, mgl32.Vec3{0, 0, -1}, 10)
	assert.False(t, ok)
}

func TestHitTestMiss(t *testing.T) {
	w := New(8)
	w.AddBlock(Pos{0, 0, 0}, Stone, false)

	_, _, ok := w.HitTest(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1}, 10)
	assert.False(t, ok, "looking away from the only block must miss")
}

func TestHitTestFractionalDistance(t *testing.T) {
	w := New(8)
	w.AddBlock(Pos{0, 0, 0}, Stone, false)

	// The march must cover the full 2.5 blocks, not just floor(2.5).
	hit, prev, ok := w.HitTest(mgl32.Vec3{0, 0, 2.4}, mgl32.Vec3{0, 0, -1}, 2.5)
	require.True(t, ok)
	assert.Equal(t, Pos{0, 0, 0}, hit)
	assert.Equal(t, Pos{0, 0, 1}, prev)

	// Still out of reach when the distance genuinely ends short.
	_, _, ok = w.HitTest(mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 0, -1}, 2.5)
	assert.False(t, ok)
}

func TestHitTestZeroDirection(t *testing.T) {
	w := New(8)
	w.AddBlock(Pos{0, 0, 0}, Stone, false)

	_, _, ok := w.HitTest(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 10)
	assert.False(t, ok)
}

func TestHitTestEmptyWorld(t *testing.T) {
	w := New(8)
	_, _, ok := w.HitTest(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, 10)
	assert.False(t, ok)
}

func TestHitTestDiagonal(t *testing.T) {
	w := New(8)
	w.AddBlock(Pos{3, 0, 3}, Brick, false)

	hit, prev, ok := w.HitTest(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 1}, 10)
	require.True(t, ok)
	assert.Equal(t, Pos{3, 0, 3}, hit)
	assert.True(t, !w.Occupied(prev), "placement target must be empty")
	assert.Equal(t, 0, prev.Y)
}

func TestHitTestOriginInsideBlock(t *testing.T) {
	w := New(8)
	w.AddBlock(Pos{0, 0, 0}, Stone, false)

	hit, prev, ok := w.HitTest(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, 10)
	require.True(t, ok)
	assert.Equal(t, Pos{0, 0, 0}, hit)
	assert.Equal(t, hit, prev, "no prior empty cell exists when starting inside a block")
}
