package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ball-splitter/internal/hud"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the on-screen overlays: FPS/memory at the top-right, population stats at the top-left.
type Debug struct {
	ShowFPS   bool
	ShowStats bool
	Paused    bool
	stats     hud.Stats

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns an overlay reading population numbers from stats. All overlays start hidden.
func New(stats hud.Stats) *Debug {
	return &Debug{stats: stats}
}

// Draw renders any enabled overlays. Call after the frame texture is drawn.
// Stats are read every frame since they change every step; FPS and memory text only every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.lastFpsText == ""

	if d.ShowStats && d.stats != nil {
		rl.DrawText(hud.Text(d.stats, d.Paused), padding, padding, fontSize, rl.RayWhite)
	}
	if !d.ShowFPS {
		return
	}

	if update {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		runtime.ReadMemStats(&d.lastMemStats)
		d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range []string{d.lastFpsText, d.lastMemText} {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
