package graphics

import (
	"image/color"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ball-splitter/internal/raster"
)

// Options sizes the window. The window is the arena size multiplied by Scale.
type Options struct {
	Title     string
	Scale     float32
	TargetFPS int
}

// Run opens a window and drives the frame loop until the window is closed (close button or ESC).
// Each frame it calls update (input and simulation step), then render to fill frame, uploads the
// frame to a texture, draws it scaled, and finally calls overlay for 2D text on top.
// The frame is owned by the caller; Run only reads it.
func Run(opts Options, frame *raster.Frame, update, render, overlay func()) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	rl.InitWindow(int32(float32(frame.Width())*scale), int32(float32(frame.Height())*scale), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.TargetFPS))

	// Streaming texture matching the frame; point filtering keeps disc edges hard when scaled.
	img := rl.GenImageColor(frame.Width(), frame.Height(), rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(tex)
	rl.SetTextureFilter(tex, rl.FilterPoint)

	for !rl.WindowShouldClose() {
		update()
		render()
		rl.UpdateTexture(tex, pixels(frame.Pix()))

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTextureEx(tex, rl.NewVector2(0, 0), 0, scale, rl.White)
		overlay()
		rl.EndDrawing()
	}
}

// pixels reinterprets an RGBA byte buffer as colors without copying.
func pixels(buf []byte) []color.RGBA {
	if len(buf) < 4 {
		return nil
	}
	return unsafe.Slice((*color.RGBA)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf)/4)
}
