package crossing

import (
	"math/rand"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
)

// Animal is a background critter. It never leaves the field: crossing one
// edge puts it back on the other.
type Animal struct {
	Pos   core.Vec
	Dir   Direction
	Color core.Color
}

// AnimalHerd moves the background animals.
type AnimalHerd struct {
	animals []Animal
	speed   float64
	wrapX   float64
}

// NewAnimalHerd scatters cfg.Count animals over the field.
func NewAnimalHerd(cfg config.AnimalConfig, rng *rand.Rand) *AnimalHerd {
	palette := parsePalette(cfg.Colors)
	h := &AnimalHerd{
		animals: make([]Animal, 0, cfg.Count),
		speed:   cfg.Speed,
		wrapX:   cfg.WrapX,
	}

	for range cfg.Count {
		a := Animal{
			Pos: core.Vec{
				X: randRange(rng, cfg.SpawnX),
				Y: randRange(rng, cfg.SpawnY),
			},
			Dir:   DirRight,
			Color: palette[rng.Intn(len(palette))],
		}
		if rng.Intn(2) == 0 {
			a.Dir = DirLeft
		}
		h.animals = append(h.animals, a)
	}

	return h
}

// Move advances every animal and wraps the ones past the edge.
func (h *AnimalHerd) Move() {
	for i := range h.animals {
		a := &h.animals[i]
		a.Pos.X += float64(a.Dir) * h.speed
		if a.Pos.X > h.wrapX {
			a.Pos.X = -h.wrapX
		} else if a.Pos.X < -h.wrapX {
			a.Pos.X = h.wrapX
		}
	}
}

// Animals returns the animals in the herd.
func (h *AnimalHerd) Animals() []Animal {
	return h.animals
}

// randRange returns a whole number in [-limit, limit].
func randRange(rng *rand.Rand, limit float64) float64 {
	n := int(limit)
	if n <= 0 {
		return 0
	}
	return float64(rng.Intn(2*n+1) - n)
}
