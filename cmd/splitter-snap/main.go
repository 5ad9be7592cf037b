// Command splitter-snap runs the simulation headless and writes rendered frames as PNG files.
//
//	splitter-snap -steps 600 -every 100 -out snapshots
//	splitter-snap -steps 600 -compare snapshots/frame-000600.png
//
// With -compare and a fixed seed the run is deterministic, so a mismatch means the
// simulation or rasterizer changed behavior.
package main

import (
	"flag"
	"fmt"
	"os"

	"ball-splitter/internal/engineconfig"
	"ball-splitter/internal/hud"
	"ball-splitter/internal/logger"
	"ball-splitter/internal/session"
	"ball-splitter/internal/snapshot"
)

func main() {
	var (
		configPath = flag.String("config", engineconfig.DefaultPath, "YAML config file")
		envPath    = flag.String("env", ".env", "env file with SPLITTER_* overrides")
		steps      = flag.Int("steps", 600, "number of steps to simulate")
		every      = flag.Int("every", 0, "also write a frame every N steps (0 = only the last)")
		out        = flag.String("out", "", "output directory (default: snapshot_dir from config)")
		seed       = flag.Uint64("seed", 1, "random seed (0 = from the clock)")
		compare    = flag.String("compare", "", "PNG to compare the final frame against instead of writing it")
	)
	flag.Parse()

	if err := run(*configPath, *envPath, *steps, *every, *out, *seed, *compare); err != nil {
		fmt.Fprintf(os.Stderr, "splitter-snap: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, envPath string, steps, every int, out string, seed uint64, compare string) error {
	cfg, err := engineconfig.Resolve(configPath, envPath)
	if err != nil {
		return err
	}
	cfg.Seed = seed
	if out != "" {
		cfg.SnapshotDir = out
	}

	sess, err := session.New(cfg, logger.New(cfg.LogPath))
	if err != nil {
		return err
	}

	for i := 1; i <= steps; i++ {
		sess.Tick()
		if every > 0 && i%every == 0 && i != steps && compare == "" {
			if _, err := sess.Snapshot(); err != nil {
				return err
			}
		}
	}
	fmt.Println(hud.Text(sess.World, false))

	if compare != "" {
		want, err := snapshot.Load(compare)
		if err != nil {
			return err
		}
		sess.Render()
		n, err := snapshot.Diff(sess.Frame, want)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%d pixels differ from %s", n, compare)
		}
		fmt.Printf("matches %s\n", compare)
		return nil
	}

	path, err := sess.Snapshot()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
