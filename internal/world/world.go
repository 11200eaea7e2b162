// Package world owns the sparse voxel map, the derived set of visible
// blocks, and the sector partition used for incremental show/hide.
package world

// BlockRenderer receives show/hide events for exposed blocks. sync means the
// draw data must be built or freed immediately; otherwise the renderer may
// defer the work to its queue. A nil renderer is valid (headless runs and
// tests).
type BlockRenderer interface {
	ShowBlock(p Pos, t BlockType, sync bool)
	HideBlock(p Pos, sync bool)
}

// World is the authoritative spatial index. A position present in blocks is
// solid; absent is air. shown is derived state, always a subset of blocks,
// holding exactly the exposed positions whose sector is visible.
type World struct {
	sectorSize int

	blocks  map[Pos]BlockType
	shown   map[Pos]BlockType
	sectors map[Sector][]Pos
	visible map[Sector]struct{}

	renderer BlockRenderer
}

func New(sectorSize int) *World {
	return &World{
		sectorSize: sectorSize,
		blocks:     make(map[Pos]BlockType),
		shown:      make(map[Pos]BlockType),
		sectors:    make(map[Sector][]Pos),
		visible:    make(map[Sector]struct{}),
	}
}

// SetRenderer attaches the draw-batch owner. Call before any sync edits.
func (w *World) SetRenderer(r BlockRenderer) { w.renderer = r }

func (w *World) Occupied(p Pos) bool {
	_, ok := w.blocks[p]
	return ok
}

// BlockAt returns the type at p, or zero if the cell is air.
func (w *World) BlockAt(p Pos) BlockType { return w.blocks[p] }

func (w *World) IsShown(p Pos) bool {
	_, ok := w.shown[p]
	return ok
}

func (w *World) Len() int      { return len(w.blocks) }
func (w *World) ShownLen() int { return len(w.shown) }

// Sector returns the sector key for a cell.
func (w *World) Sector(p Pos) Sector { return SectorOf(p, w.sectorSize) }

// SectorVisible reports whether s is currently marked visible.
func (w *World) SectorVisible(s Sector) bool {
	_, ok := w.visible[s]
	return ok
}

// Sectors snapshots the keys of every non-empty sector.
func (w *World) Sectors() []Sector {
	out := make([]Sector, 0, len(w.sectors))
	for s := range w.sectors {
		out = append(out, s)
	}
	return out
}

// Exposed reports whether p has at least one empty face-adjacent neighbor.
// Fully enclosed blocks are never drawn; this is what keeps the rendered
// geometry bounded by the visible surface.
func (w *World) Exposed(p Pos) bool {
	for _, n := range p.Neighbors() {
		if !w.Occupied(n) {
			return true
		}
	}
	return false
}

// AddBlock inserts a block, overwriting any block already at p. With sync the
// exposure of p and its neighbors is updated immediately; generators pass
// sync=false and rely on the initial sector show instead.
func (w *World) AddBlock(p Pos, t BlockType, sync bool) {
	if w.Occupied(p) {
		w.RemoveBlock(p, sync)
	}
	w.blocks[p] = t
	s := w.Sector(p)
	w.sectors[s] = append(w.sectors[s], p)
	if sync {
		w.checkNeighbors(p)
	}
}

// RemoveBlock deletes the block at p. Removing an absent cell is a no-op and
// returns false; the frame loop never halts on a stray edit.
func (w *World) RemoveBlock(p Pos, sync bool) bool {
	if !w.Occupied(p) {
		return false
	}
	delete(w.blocks, p)
	w.dropFromSector(p)
	// Keep shown a subset of blocks even for deferred edits.
	if w.IsShown(p) {
		w.hideBlock(p, sync)
	}
	if sync {
		w.checkNeighbors(p)
	}
	return true
}

// checkNeighbors re-evaluates exposure of p and its six neighbors and
// reconciles shown. Any neighbor that lost its last empty side is hidden;
// newly exposed blocks in visible sectors are shown.
func (w *World) checkNeighbors(p Pos) {
	ns := p.Neighbors()
	cells := [7]Pos{p}
	copy(cells[1:], ns[:])
	for _, c := range cells {
		if !w.Occupied(c) {
			continue
		}
		if w.Exposed(c) {
			if !w.IsShown(c) && w.sectorVisible(c) {
				w.showBlock(c, true)
			}
		} else if w.IsShown(c) {
			w.hideBlock(c, true)
		}
	}
}

// ShowSector marks the sector visible and shows its exposed members. Showing
// an already-visible sector is idempotent.
func (w *World) ShowSector(s Sector) {
	w.visible[s] = struct{}{}
	// Iterate a snapshot: showBlock callbacks must not observe a sector
	// slice mid-mutation.
	members := append([]Pos(nil), w.sectors[s]...)
	for _, p := range members {
		if !w.IsShown(p) && w.Exposed(p) {
			w.showBlock(p, false)
		}
	}
}

// HideSector marks the sector hidden and hides all of its shown members.
func (w *World) HideSector(s Sector) {
	delete(w.visible, s)
	members := append([]Pos(nil), w.sectors[s]...)
	for _, p := range members {
		if w.IsShown(p) {
			w.hideBlock(p, false)
		}
	}
}

func (w *World) sectorVisible(p Pos) bool {
	_, ok := w.visible[w.Sector(p)]
	return ok
}

func (w *World) showBlock(p Pos, sync bool) {
	t := w.blocks[p]
	w.shown[p] = t
	if w.renderer != nil {
		w.renderer.ShowBlock(p, t, sync)
	}
}

func (w *World) hideBlock(p Pos, sync bool) {
	delete(w.shown, p)
	if w.renderer != nil {
		w.renderer.HideBlock(p, sync)
	}
}

func (w *World) dropFromSector(p Pos) {
	s := w.Sector(p)
	members := w.sectors[s]
	for i, m := range members {
		if m == p {
			members[i] = members[len(members)-1]
			w.sectors[s] = members[:len(members)-1]
			break
		}
	}
	if len(w.sectors[s]) == 0 {
		delete(w.sectors, s)
	}
}
