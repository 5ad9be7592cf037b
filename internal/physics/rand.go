package physics

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source supplies the randomness used when a body splits. Tests inject a fake to get exact outcomes.
type Source interface {
	// Float32 returns a value in [0, 1).
	Float32() float32
	// Uint24 returns a value in [0, 0xFFFFFF].
	Uint24() uint32
}

type pcgSource struct {
	r *rand.Rand
}

// NewSource returns a Source backed by a PCG generator. Seed 0 seeds from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{r: rand.New(rand.NewSource(seed))}
}

func (s *pcgSource) Float32() float32 {
	return s.r.Float32()
}

func (s *pcgSource) Uint24() uint32 {
	return s.r.Uint32() & 0xFFFFFF
}
