// Package session ties one world, its frame buffer and the host services (log, sound, snapshots)
// together so every host drives the simulation the same way.
package session

import (
	"fmt"

	"ball-splitter/internal/audio"
	"ball-splitter/internal/engineconfig"
	"ball-splitter/internal/logger"
	"ball-splitter/internal/physics"
	"ball-splitter/internal/raster"
	"ball-splitter/internal/snapshot"
)

// Session is driven from a single goroutine: Tick then Render, once per frame.
type Session struct {
	Config engineconfig.Config
	World  *physics.World
	Frame  *raster.Frame
	Log    *logger.Logger
	// Sound plays a pop for each frame that had splits. Nil is silent.
	Sound  *audio.Player
	Paused bool

	popWatermark int
	lastSplits   int
}

// New builds the world and a frame matching the arena from cfg.
func New(cfg engineconfig.Config, log *logger.Logger, opts ...physics.Option) (*Session, error) {
	if cfg.Seed != 0 {
		opts = append([]physics.Option{physics.WithSource(physics.NewSource(cfg.Seed))}, opts...)
	}
	world, err := physics.NewWorld(cfg.Width, cfg.Height, cfg.MaxBalls, cfg.SplitRatio, opts...)
	if err != nil {
		return nil, err
	}
	s := &Session{
		Config: cfg,
		World:  world,
		Frame:  raster.NewFrame(int(cfg.Width), int(cfg.Height)),
		Log:    log,
	}
	s.Log.Logf("arena %gx%g, max balls %d, split ratio %g, seed %d", cfg.Width, cfg.Height, cfg.MaxBalls, cfg.SplitRatio, cfg.Seed)
	s.popWatermark = s.Log.Population(0, world.Len(), world.MaxBalls())
	return s, nil
}

// Tick advances the world by one step unless paused.
func (s *Session) Tick() {
	if s.Paused {
		return
	}
	s.Advance()
}

// Advance steps the world once, even when paused.
func (s *Session) Advance() {
	s.World.Step()
	s.popWatermark = s.Log.Population(s.popWatermark, s.World.Len(), s.World.MaxBalls())

	if splits := s.World.Splits(); splits > s.lastSplits {
		s.lastSplits = splits
		// The newest clone has the post-split radius of this step's last split.
		s.Sound.Pop(s.World.At(s.World.Len() - 1).Radius)
	}
}

// Render repaints the frame from the world.
func (s *Session) Render() {
	s.Frame.Render(s.World)
}

// TogglePause flips the paused state and returns it.
func (s *Session) TogglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}

// Reset restores the seed body.
func (s *Session) Reset() {
	s.World.Reset()
	s.lastSplits = 0
	s.popWatermark = 0
	s.Log.Log("reset")
	s.popWatermark = s.Log.Population(0, s.World.Len(), s.World.MaxBalls())
}

// Snapshot renders the current state and saves it as a PNG under the configured snapshot dir.
func (s *Session) Snapshot() (string, error) {
	s.Render()
	path, err := snapshot.Save(s.Config.SnapshotDir, s.World.Steps(), s.Frame)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	s.Log.Logf("snapshot %s", path)
	return path, nil
}
