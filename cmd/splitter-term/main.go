package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"ball-splitter/internal/audio"
	"ball-splitter/internal/engineconfig"
	"ball-splitter/internal/hud"
	"ball-splitter/internal/logger"
	"ball-splitter/internal/session"
	"ball-splitter/internal/termview"
)

var (
	configPath = flag.String("config", engineconfig.DefaultPath, "YAML config file")
	envPath    = flag.String("env", ".env", "env file with SPLITTER_* overrides")
	sound      = flag.Bool("sound", false, "play a pop on splits (overrides config when set)")
)

type game struct {
	screen tcell.Screen
	view   *termview.View
	sess   *session.Session
}

func main() {
	flag.Parse()

	cfg, err := engineconfig.Resolve(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splitter-term: %v\n", err)
		os.Exit(1)
	}
	if *sound {
		cfg.Sound = true
	}
	log := logger.New(cfg.LogPath)
	sess, err := session.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splitter-term: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "splitter-term: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "splitter-term: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if cfg.Sound {
		// Non-fatal, the simulation runs without sound
		player, err := audio.New()
		if err != nil {
			log.Logf("audio disabled: %v", err)
		}
		sess.Sound = player
		defer player.Close()
	}

	g := &game{screen: screen, view: termview.New(screen), sess: sess}
	g.run(time.Second / time.Duration(cfg.TargetFPS))
}

func (g *game) run(frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.sess.Tick()
			g.draw()
		}
	}
}

func (g *game) draw() {
	g.sess.Render()
	g.view.Status = hud.Text(g.sess.World, g.sess.Paused) + "  q quit  space pause  n step  r reset  s snapshot"
	g.view.Draw(g.sess.Frame)
}

func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			g.sess.TogglePause()
		case 'n':
			if g.sess.Paused {
				g.sess.Advance()
			}
		case 'r':
			g.sess.Reset()
		case 's':
			if _, err := g.sess.Snapshot(); err != nil {
				g.sess.Log.Log(err.Error())
			}
		}
		g.draw()

	case *tcell.EventResize:
		g.screen.Sync()
		g.draw()
	}
	return true
}
