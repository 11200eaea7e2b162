// Package game wires the world, the player and the render scheduler into a
// single session driven by an external frame pump.
package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"blockworld/internal/config"
	"blockworld/internal/physics"
	"blockworld/internal/render"
	"blockworld/internal/world"
)

// Session aggregates all mutable game state. There are no package-level
// singletons: the frame pump owns one Session and calls OnTick/input methods
// from a single goroutine.
type Session struct {
	cfg    *config.Config
	world  *world.World
	player *physics.Player
	sched  *render.Scheduler
}

// NewSession generates the world and shows the sectors around the spawn
// point. The returned session is ready for the first OnTick.
func NewSession(cfg *config.Config, factory render.BatchFactory) *Session {
	w := world.New(cfg.SectorSize)
	sched := render.NewScheduler(w, factory, cfg.RenderPad, cfg.MaxOpsPerTick)
	world.Generate(w, cfg)

	s := &Session{
		cfg:    cfg,
		world:  w,
		player: physics.NewPlayer(mgl32.Vec3{0, 0, 0}),
		sched:  sched,
	}
	// Build the initial shown set in one go rather than trickling it
	// through the per-tick budget.
	sched.Update(s.player.Position)
	sched.FlushQueue()
	return s
}

func (s *Session) World() *world.World          { return s.world }
func (s *Session) Player() *physics.Player      { return s.player }
func (s *Session) Scheduler() *render.Scheduler { return s.sched }
func (s *Session) Config() *config.Config       { return s.cfg }

// OnTick advances the simulation by dt seconds: physics first, then sector
// visibility and the deferred batch queue.
func (s *Session) OnTick(dt float32) {
	physics.Update(s.world, s.player, s.cfg, dt)
	s.sched.Update(s.player.Position)
}

// OnDraw submits the aggregate draw batch.
func (s *Session) OnDraw() {
	s.sched.Draw()
}

// Input surface, called by the platform glue.

func (s *Session) ToggleFlying() { s.player.Flying = !s.player.Flying }

func (s *Session) Jump() { physics.Jump(s.player, s.cfg) }

func (s *Session) Look(dyaw, dpitch float64) { s.player.Look(dyaw, dpitch) }

func (s *Session) SetStrafe(forward, right, up int) {
	s.player.Strafe = physics.Strafe{Forward: forward, Right: right, Up: up}
}

func (s *Session) SetSprint(on bool) { s.player.Sprint = on }

func (s *Session) SelectSlot(i int) { s.player.SelectSlot(i) }

// Attack removes the targeted block. Stone is indestructible, so the floor
// and boundary walls cannot be mined away.
func (s *Session) Attack() {
	hit, _, ok := s.world.HitTest(s.player.Position, s.player.SightVector(), s.cfg.HitDistance)
	if !ok || s.world.BlockAt(hit) == world.Stone {
		return
	}
	s.world.RemoveBlock(hit, true)
}

// Interact places the selected block against the targeted face. Placement is
// refused when the target cell is occupied or intersects the player's body.
func (s *Session) Interact() {
	hit, prev, ok := s.world.HitTest(s.player.Position, s.player.SightVector(), s.cfg.HitDistance)
	if !ok || hit == prev || s.world.Occupied(prev) {
		return
	}
	for _, cell := range s.player.BodyCells(s.cfg.PlayerHeight) {
		if cell == prev {
			return
		}
	}
	s.world.AddBlock(prev, s.player.SelectedBlock(), true)
}
