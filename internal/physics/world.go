package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidConfig is returned by NewWorld when the arena, cap, split ratio or seed body cannot produce a sane world.
var ErrInvalidConfig = errors.New("invalid world config")

// World holds the bodies of a bouncing, splitting population inside a fixed rectangular arena.
// Step advances every body by one unit of time; bodies are appended on splits and never removed.
// A World is not safe for concurrent use: the host calls Step and reads it from one goroutine.
type World struct {
	bodies     []Body
	pending    []Body // clones spawned during the current step, appended after the pass
	width      float32
	height     float32
	maxBalls   int
	splitRatio float32
	seed       Body
	rng        Source
	splits     int
	steps      int
}

// maxPrealloc bounds the body slice capacity reserved up front; larger caps grow on demand.
const maxPrealloc = 4096

// Option customizes a World at construction.
type Option func(*World)

// WithSource sets the random source used for split velocity jitter and colors.
func WithSource(src Source) Option {
	return func(w *World) {
		w.rng = src
	}
}

// WithSeedBody replaces the default seed body (arena center, velocity (8,-6), radius 60).
func WithSeedBody(b Body) Option {
	return func(w *World) {
		w.seed = b
	}
}

// NewWorld returns a world of width x height holding at most maxBalls bodies, where each split scales
// the radius by splitRatio. It starts with a single seed body. Parameters are validated up front;
// an arena smaller than the seed body or a ratio outside (0, 1) yields ErrInvalidConfig.
func NewWorld(width, height float32, maxBalls int, splitRatio float32, opts ...Option) (*World, error) {
	w := &World{
		width:      width,
		height:     height,
		maxBalls:   maxBalls,
		splitRatio: splitRatio,
		seed:       NewBody(width/2, height/2, seedVX, seedVY, seedRadius, seedColor),
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	if w.rng == nil {
		w.rng = NewSource(0)
	}
	w.seed.JustSplit = false
	w.bodies = make([]Body, 0, min(maxBalls, maxPrealloc))
	w.Reset()
	return w, nil
}

func (w *World) validate() error {
	switch {
	case !(w.width > 0) || !(w.height > 0) || math32.IsInf(w.width, 0) || math32.IsInf(w.height, 0):
		return fmt.Errorf("%w: arena %gx%g must be positive and finite", ErrInvalidConfig, w.width, w.height)
	case w.maxBalls < 1:
		return fmt.Errorf("%w: max balls %d must be at least 1", ErrInvalidConfig, w.maxBalls)
	case !(w.splitRatio > 0 && w.splitRatio < 1):
		return fmt.Errorf("%w: split ratio %g must be in (0, 1)", ErrInvalidConfig, w.splitRatio)
	case w.seed.Radius < minRadius:
		return fmt.Errorf("%w: seed radius %g is below %g", ErrInvalidConfig, w.seed.Radius, minRadius)
	case 2*w.seed.Radius > math32.Min(w.width, w.height):
		return fmt.Errorf("%w: seed radius %g does not fit arena %gx%g", ErrInvalidConfig, w.seed.Radius, w.width, w.height)
	}
	return nil
}

// Reset drops every body and puts the seed body back. Split and step counters restart at zero.
func (w *World) Reset() {
	w.bodies = append(w.bodies[:0], w.seed)
	w.pending = w.pending[:0]
	w.splits = 0
	w.steps = 0
}

// Step advances the simulation by one unit of time. Only bodies present at the start of the step
// are moved; clones spawned during the step are appended afterwards, in spawn order.
func (w *World) Step() {
	n := len(w.bodies)
	for i := 0; i < n; i++ {
		b := &w.bodies[i]

		cooling := b.JustSplit
		b.JustSplit = false

		b.X += b.VX
		b.Y += b.VY

		hitX := w.bounceX(b)
		hitY := w.bounceY(b)

		if !(hitX || hitY) || cooling || n+len(w.pending) >= w.maxBalls {
			continue
		}

		newRadius := b.Radius * w.splitRatio
		if newRadius < minRadius {
			b.Radius = math32.Max(b.Radius, minRadius)
			continue
		}
		b.Radius = newRadius
		b.JustSplit = true
		w.pending = append(w.pending, w.clone(*b, hitX, hitY))
		w.splits++
	}

	w.bodies = append(w.bodies, w.pending...)
	w.pending = w.pending[:0]
	w.steps++
}

// bounceX clamps b inside the arena on X and points its velocity away from the wall it hit.
func (w *World) bounceX(b *Body) bool {
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX = math32.Abs(b.VX)
		return true
	}
	if b.X+b.Radius > w.width {
		b.X = w.width - b.Radius
		b.VX = -math32.Abs(b.VX)
		return true
	}
	return false
}

// bounceY is bounceX for the Y axis.
func (w *World) bounceY(b *Body) bool {
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = math32.Abs(b.VY)
		return true
	}
	if b.Y+b.Radius > w.height {
		b.Y = w.height - b.Radius
		b.VY = -math32.Abs(b.VY)
		return true
	}
	return false
}

// clone builds the body spawned by a split. Random draws happen in a fixed order:
// speed factor, X-hit jitter, Y-hit jitter, color.
func (w *World) clone(parent Body, hitX, hitY bool) Body {
	c := parent
	factor := 0.8 + w.rng.Float32()*0.4
	c.VX *= factor
	c.VY *= factor
	// Jitter the axis parallel to the wall so the clone leaves at a different angle.
	if hitX {
		c.VY += (w.rng.Float32() - 0.5) * 2
	}
	if hitY {
		c.VX += (w.rng.Float32() - 0.5) * 2
	}
	c.Color = w.rng.Uint24() & 0xFFFFFF
	c.JustSplit = true
	return c
}

// Len returns the current population.
func (w *World) Len() int {
	return len(w.bodies)
}

// At returns a copy of the i-th body in draw order.
func (w *World) At(i int) Body {
	return w.bodies[i]
}

// Bodies returns a copy of all bodies in draw order.
func (w *World) Bodies() []Body {
	out := make([]Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Width returns the arena width.
func (w *World) Width() float32 { return w.width }

// Height returns the arena height.
func (w *World) Height() float32 { return w.height }

// MaxBalls returns the population cap.
func (w *World) MaxBalls() int { return w.maxBalls }

// SplitRatio returns the radius factor applied on each split.
func (w *World) SplitRatio() float32 { return w.splitRatio }

// Splits returns the number of successful splits since construction or the last Reset.
func (w *World) Splits() int { return w.splits }

// Steps returns the number of steps since construction or the last Reset.
func (w *World) Steps() int { return w.steps }
