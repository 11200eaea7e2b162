package world

import "github.com/go-gl/mathgl/mgl32"

// hitTestSteps is how many ray increments fit in one block edge. Small enough
// that the march cannot skip a cell the ray passes through.
const hitTestSteps = 8

// HitTest marches from origin along direction looking for the first solid
// cell within maxDistance. It returns that cell and the empty cell the ray
// was in just before the hit: the first is the removal target, the second the
// placement target. ok is false when nothing solid is in range or the
// direction is zero-length.
//
// If the origin itself lies inside a solid cell, hit and previous are that
// same cell; placement against it is refused downstream because the cell is
// occupied.
func (w *World) HitTest(origin, direction mgl32.Vec3, maxDistance float32) (hit, previous Pos, ok bool) {
	if direction.Len() == 0 || maxDistance <= 0 {
		return Pos{}, Pos{}, false
	}
	step := direction.Normalize().Mul(1.0 / hitTestSteps)
	point := origin
	hasPrev := false
	for i := 0; i <= int(maxDistance*hitTestSteps); i++ {
		candidate := NearBlock(point)
		if !hasPrev || candidate != previous {
			if w.Occupied(candidate) {
				if !hasPrev {
					previous = candidate
				}
				return candidate, previous, true
			}
			previous = candidate
			hasPrev = true
		}
		point = point.Add(step)
	}
	return Pos{}, Pos{}, false
}
