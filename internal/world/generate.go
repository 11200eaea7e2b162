package world

import (
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"blockworld/internal/config"
)

// Generate fills an empty world according to the configured terrain profile.
// All inserts are deferred (sync=false): the initial shown set is computed in
// bulk by the first sector show, not block by block.
func Generate(w *World, cfg *config.Config) {
	switch cfg.Terrain {
	case "noise":
		generateNoise(w, cfg)
	default:
		generateClassic(w, cfg)
	}
}

// generateClassic builds the reference world: a grass-over-sand plain, a
// stone boundary wall, and a fixed number of layered square-ring hills.
func generateClassic(w *World, cfg *config.Config) {
	n := cfg.WorldHalfSize
	random := rand.New(rand.NewSource(cfg.Seed))

	for x := -n; x <= n; x++ {
		for z := -n; z <= n; z++ {
			w.AddBlock(Pos{x, -2, z}, Grass, false)
			w.AddBlock(Pos{x, -3, z}, Sand, false)
			if x == -n || x == n || z == -n || z == n {
				// Boundary wall.
				for y := -2; y <= cfg.WallHeight; y++ {
					w.AddBlock(Pos{x, y, z}, Stone, false)
				}
			}
		}
	}

	hillTypes := []BlockType{Grass, Sand, Stone}
	o := n - 10
	if o < 1 {
		// No room for hills inside the boundary margin; leave the plain bare.
		return
	}
	for i := 0; i < cfg.HillCount; i++ {
		a := random.Intn(2*o+1) - o // center x
		b := random.Intn(2*o+1) - o // center z
		c := -1                     // base height
		h := random.Intn(6) + 1     // hill height
		s := random.Intn(5) + 4     // base radius
		t := hillTypes[random.Intn(len(hillTypes))]
		for y := c; y < c+h; y++ {
			for x := a - s; x <= a+s; x++ {
				for z := b - s; z <= b+s; z++ {
					if (x-a)*(x-a)+(z-b)*(z-b) > (s+1)*(s+1) {
						continue
					}
					// Keep the spawn area flat.
					if x*x+z*z < 5*5 {
						continue
					}
					if w.Occupied(Pos{x, y, z}) {
						continue
					}
					w.AddBlock(Pos{x, y, z}, t, false)
				}
			}
			s-- // each layer shrinks, forming a stepped pyramid
		}
	}
}

// generateNoise builds rolling terrain from fractal simplex noise: stone
// below, sand near the base, grass on top. The boundary wall is kept so the
// world edge behaves the same in both profiles.
func generateNoise(w *World, cfg *config.Config) {
	n := cfg.WorldHalfSize
	noise := opensimplex.New32(cfg.Seed)

	const (
		scale     = 48.0
		amplitude = 12.0
		octaves   = 4
	)

	for x := -n; x <= n; x++ {
		for z := -n; z <= n; z++ {
			h := fractalNoise(noise, x, z, amplitude, octaves, 2.0, 0.5, scale)
			if h < -2 {
				h = -2 // keep a solid floor even in the deepest valleys
			}
			for y := -3; y <= h; y++ {
				t := Stone
				switch {
				case y == h && h >= 0:
					t = Grass
				case y >= h-2:
					t = Sand
				}
				w.AddBlock(Pos{x, y, z}, t, false)
			}
			if x == -n || x == n || z == -n || z == n {
				top := cfg.WallHeight
				if h > top {
					top = h
				}
				for y := -2; y <= top; y++ {
					w.AddBlock(Pos{x, y, z}, Stone, false)
				}
			}
		}
	}
}

func fractalNoise(noise opensimplex.Noise32, x, z int, amplitude float32, octaves int, lacunarity, persistence, scale float32) int {
	val := float32(0)
	x1 := float32(x)
	z1 := float32(z)
	for i := 0; i < octaves; i++ {
		val += noise.Eval2(x1/scale, z1/scale) * amplitude
		x1 *= lacunarity
		z1 *= lacunarity
		amplitude *= persistence
	}
	return int(val)
}
