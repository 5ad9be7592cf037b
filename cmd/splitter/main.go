package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ball-splitter/internal/audio"
	"ball-splitter/internal/debug"
	"ball-splitter/internal/engineconfig"
	"ball-splitter/internal/graphics"
	"ball-splitter/internal/logger"
	"ball-splitter/internal/session"
)

var (
	configPath = flag.String("config", engineconfig.DefaultPath, "YAML config file")
	envPath    = flag.String("env", ".env", "env file with SPLITTER_* overrides")
)

func main() {
	flag.Parse()

	cfg, err := engineconfig.Resolve(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splitter: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogPath)
	sess, err := session.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splitter: %v\n", err)
		os.Exit(1)
	}

	if cfg.Sound {
		player, err := audio.New()
		if err != nil {
			log.Logf("audio disabled: %v", err)
		}
		sess.Sound = player
		defer player.Close()
	}

	dbg := debug.New(sess.World)
	dbg.ShowFPS = cfg.ShowFPS
	dbg.ShowStats = cfg.ShowStats

	// Keys: Space pause, N single step, R reset, S snapshot, F1 FPS, F2 stats. ESC or close button quits.
	update := func() {
		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			dbg.Paused = sess.TogglePause()
		case rl.IsKeyPressed(rl.KeyN) && sess.Paused:
			sess.Advance()
		case rl.IsKeyPressed(rl.KeyR):
			sess.Reset()
		case rl.IsKeyPressed(rl.KeyS):
			if _, err := sess.Snapshot(); err != nil {
				log.Log(err.Error())
			}
		case rl.IsKeyPressed(rl.KeyF1):
			dbg.ShowFPS = !dbg.ShowFPS
		case rl.IsKeyPressed(rl.KeyF2):
			dbg.ShowStats = !dbg.ShowStats
		}
		sess.Tick()
	}

	graphics.Run(graphics.Options{
		Title:     "ball splitter",
		Scale:     cfg.Scale,
		TargetFPS: cfg.TargetFPS,
	}, sess.Frame, update, sess.Render, dbg.Draw)

	// Keep the F1/F2 toggles for the next run.
	if dbg.ShowFPS != cfg.ShowFPS || dbg.ShowStats != cfg.ShowStats {
		if err := engineconfig.SavePrefs(*configPath, dbg.ShowFPS, dbg.ShowStats); err != nil {
			log.Logf("save prefs: %v", err)
		}
	}
}
