// Package audio plays a short tone when bodies split. Pitch follows body size: small bodies pop higher.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	popDuration = 40 * time.Millisecond
	basePitch   = 220.0
	maxPitch    = 1760.0
	baseRadius  = 60.0
)

// Player plays split pops. The zero value and a Player whose speaker failed to start are silent.
type Player struct {
	enabled bool
}

// New initializes the speaker. On error the returned Player is still usable and stays silent.
func New() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Enabled reports whether the speaker is running.
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Pop plays one short tone pitched for a body of the given radius.
func (p *Player) Pop(radius float32) {
	if !p.Enabled() {
		return
	}
	sine, err := generators.SineTone(sampleRate, Pitch(radius))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(popDuration), sine))
}

// Close stops the speaker.
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Close()
	p.enabled = false
}

// Pitch maps a radius to a tone frequency: 220 Hz at radius 60, rising with 1/sqrt(radius), clamped to [220, 1760].
func Pitch(radius float32) float64 {
	if radius <= 0 {
		return maxPitch
	}
	f := basePitch * math.Sqrt(baseRadius/float64(radius))
	return math.Min(math.Max(f, basePitch), maxPitch)
}
