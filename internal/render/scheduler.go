// Package render owns the draw batches for shown blocks and schedules
// sector visibility as the player moves. It never talks to the GPU itself;
// batches come from a BatchFactory so the scheduler runs headless in tests.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"blockworld/internal/world"
)

// Batch is the GPU-resident draw data for one shown block. Delete must be
// called exactly once, on the frame the block leaves the shown set.
type Batch interface {
	Draw()
	Delete()
}

// BatchFactory builds the draw data for one block.
type BatchFactory interface {
	Build(p world.Pos, t world.BlockType) Batch
}

// Scheduler implements world.BlockRenderer. Deferred show/hide work is
// queued and drained at a bounded rate per tick so a sector transition never
// stalls a frame.
type Scheduler struct {
	world   *world.World
	factory BatchFactory

	batches map[world.Pos]Batch
	queue   []func()
	maxOps  int
	pad     int

	sector    world.Sector
	hasSector bool
	visible   map[world.Sector]struct{}
}

func NewScheduler(w *world.World, factory BatchFactory, pad, maxOpsPerTick int) *Scheduler {
	s := &Scheduler{
		world:   w,
		factory: factory,
		batches: make(map[world.Pos]Batch),
		maxOps:  maxOpsPerTick,
		pad:     pad,
		visible: make(map[world.Sector]struct{}),
	}
	w.SetRenderer(s)
	return s
}

// ShowBlock builds the batch for p, now or queued. Showing an already-shown
// block is a no-op, which makes repeated sector shows idempotent.
func (s *Scheduler) ShowBlock(p world.Pos, t world.BlockType, sync bool) {
	if sync {
		s.showNow(p, t)
		return
	}
	s.queue = append(s.queue, func() {
		// The block may have been hidden or removed while queued.
		if s.world.IsShown(p) {
			s.showNow(p, s.world.BlockAt(p))
		}
	})
}

// HideBlock frees the batch for p, now or queued.
func (s *Scheduler) HideBlock(p world.Pos, sync bool) {
	if sync {
		s.hideNow(p)
		return
	}
	s.queue = append(s.queue, func() {
		if !s.world.IsShown(p) {
			s.hideNow(p)
		}
	})
}

func (s *Scheduler) showNow(p world.Pos, t world.BlockType) {
	if _, ok := s.batches[p]; ok {
		return
	}
	s.batches[p] = s.factory.Build(p, t)
}

func (s *Scheduler) hideNow(p world.Pos) {
	b, ok := s.batches[p]
	if !ok {
		return
	}
	delete(s.batches, p)
	b.Delete()
}

// Update runs once per tick: diffs the visible sector set when the player
// crossed a sector boundary and drains a bounded slice of the queue.
func (s *Scheduler) Update(playerPos mgl32.Vec3) {
	sector := s.world.Sector(world.NearBlock(playerPos))
	if !s.hasSector || sector != s.sector {
		s.changeSectors(sector)
		s.sector = sector
		s.hasSector = true
	}
	s.ProcessQueue()
}

// changeSectors shows sectors entering render range and hides those leaving.
// Range is a disc in sector x/z around the player; sector stacks are shown
// whole since world height is shallow.
func (s *Scheduler) changeSectors(center world.Sector) {
	after := make(map[world.Sector]struct{})
	for _, sec := range s.world.Sectors() {
		dx := sec.X - center.X
		dz := sec.Z - center.Z
		if dx*dx+dz*dz <= (s.pad+1)*(s.pad+1) {
			after[sec] = struct{}{}
		}
	}
	for sec := range s.visible {
		if _, ok := after[sec]; !ok {
			s.world.HideSector(sec)
			delete(s.visible, sec)
		}
	}
	for sec := range after {
		if _, ok := s.visible[sec]; !ok {
			s.world.ShowSector(sec)
			s.visible[sec] = struct{}{}
		}
	}
}

// ProcessQueue drains at most maxOps queued operations.
func (s *Scheduler) ProcessQueue() {
	for n := 0; len(s.queue) > 0 && n < s.maxOps; n++ {
		op := s.queue[0]
		s.queue = s.queue[1:]
		op()
	}
}

// FlushQueue drains the whole queue; used once at startup so the world is
// fully visible before the first frame.
func (s *Scheduler) FlushQueue() {
	for len(s.queue) > 0 {
		op := s.queue[0]
		s.queue = s.queue[1:]
		op()
	}
}

// Draw submits every live batch.
func (s *Scheduler) Draw() {
	for _, b := range s.batches {
		b.Draw()
	}
}

// BatchCount reports live batches; exposed for the HUD and tests.
func (s *Scheduler) BatchCount() int { return len(s.batches) }

// QueueLen reports pending deferred operations.
func (s *Scheduler) QueueLen() int { return len(s.queue) }
