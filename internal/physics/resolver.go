package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"blockworld/internal/config"
	"blockworld/internal/world"
)

// Lookup is the single world query motion resolution needs.
type Lookup interface {
	Occupied(p world.Pos) bool
}

// pad keeps the player's horizontal extent this far inside the cell
// boundary; it is half the gap between the body and a wall face.
const pad = 0.25

// substeps per Update call. Each substep moves the player a fraction of a
// block, so collision checks can't tunnel through a cell.
const substeps = 8

// maxDt caps a single integration slice; a long stall (window drag, debugger)
// must not turn into one huge teleporting step.
const maxDt = 0.2

// Update advances the player by dt seconds: applies strafe intent, gravity
// (unless flying) and terminal velocity, then resolves the new position
// against the voxel grid. It always leaves the player at a valid, finite
// position.
func Update(w Lookup, p *Player, cfg *config.Config, dt float32) {
	for dt > 0 {
		slice := dt
		if slice > maxDt {
			slice = maxDt
		}
		for i := 0; i < substeps; i++ {
			step(w, p, cfg, slice/substeps)
		}
		dt -= slice
	}
}

func step(w Lookup, p *Player, cfg *config.Config, dt float32) {
	speed := cfg.WalkingSpeed
	if p.Flying {
		speed = cfg.FlyingSpeed
	}
	if p.Sprint {
		speed *= cfg.SprintMultiplier
	}

	d := p.MotionVector().Mul(speed * dt)

	if !p.Flying {
		p.Dy -= cfg.Gravity * dt
		if p.Dy < -cfg.TerminalVelocity {
			p.Dy = -cfg.TerminalVelocity
		}
		d[1] += p.Dy * dt
	}

	p.Position, p.Grounded = collide(w, p.Position.Add(d), cfg.PlayerHeight, &p.Dy)
}

// Jump sets the vertical speed needed to reach the configured jump height,
// but only when the player is standing on something. Airborne jump input is
// ignored.
func Jump(p *Player, cfg *config.Config) {
	if !p.Grounded || p.Flying {
		return
	}
	p.Dy = JumpSpeed(cfg)
}

// JumpSpeed is the takeoff speed for the configured jump height:
// v = sqrt(2 g h).
func JumpSpeed(cfg *config.Config) float32 {
	return float32(math.Sqrt(float64(2 * cfg.Gravity * cfg.MaxJumpHeight)))
}

// faces are the six directions a collision can push from; exactly one
// component is non-zero.
var faces = [6]world.Pos{
	{X: -1}, {X: 1},
	{Y: -1}, {Y: 1},
	{Z: -1}, {Z: 1},
}

// collide resolves pos against the grid one axis at a time. For each face the
// body extends past, every body cell (height cells from the eye downward) is
// probed; a solid neighbor clamps that axis back to the cell boundary.
// Horizontal axes keep a pad of clearance. The vertical axis clamps exactly
// onto the boundary and zeroes *dy, so resting on a block is stable: standing
// height is exactly blockY + player height, with no jitter.
func collide(w Lookup, pos mgl32.Vec3, height int, dy *float32) (mgl32.Vec3, bool) {
	p := pos
	np := world.NearBlock(p)
	center := np.Vec3()
	grounded := false

	for _, f := range faces {
		face := [3]int{f.X, f.Y, f.Z}
		for axis := 0; axis < 3; axis++ {
			if face[axis] == 0 {
				continue
			}
			// Penetration of the body past the cell center along this face.
			d := (p[axis] - center[axis]) * float32(face[axis])
			vertical := axis == 1
			if vertical {
				if d <= 0 {
					continue
				}
			} else if d < pad {
				continue
			}
			for h := 0; h < height; h++ {
				op := np
				op.Y -= h
				switch axis {
				case 0:
					op.X += face[axis]
				case 1:
					op.Y += face[axis]
				case 2:
					op.Z += face[axis]
				}
				if !w.Occupied(op) {
					continue
				}
				if vertical {
					p[axis] = center[axis]
					*dy = 0
					if face[axis] == -1 {
						grounded = true
					}
				} else {
					p[axis] = center[axis] + pad*float32(face[axis])
				}
				break
			}
		}
	}
	return p, grounded
}
