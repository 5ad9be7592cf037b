// Package raster paints a population of bodies into a flat RGBA buffer: 4 bytes per pixel,
// row-major, top row first. Discs are filled without anti-aliasing.
package raster

import (
	"image"

	"github.com/chewxy/math32"

	"ball-splitter/internal/physics"
)

// Background is the fill color written to every pixel before bodies are drawn.
var Background = [4]byte{26, 26, 26, 255}

// Scene is the read-only view of a simulation the rasterizer needs. *physics.World satisfies it.
type Scene interface {
	Len() int
	At(i int) physics.Body
}

// Render overwrites buf with the background and then every body of s in order, so later bodies
// cover earlier ones. buf is expected to hold width*height*4 bytes; writes past its end are skipped.
func Render(s Scene, buf []byte, width, height int) {
	for i := 0; i+3 < len(buf); i += 4 {
		copy(buf[i:i+4], Background[:])
	}
	for i := 0; i < s.Len(); i++ {
		drawDisc(buf, width, height, s.At(i))
	}
}

// drawDisc fills every pixel whose integer coordinates lie within the body's radius.
func drawDisc(buf []byte, width, height int, b physics.Body) {
	red, green, blue := b.RGB()
	cx, cy, r := b.X, b.Y, b.Radius
	rr := r * r

	xMin := int(math32.Max(cx-r, 0))
	xMax := min(int(math32.Min(cx+r, float32(width))), width)
	yMin := int(math32.Max(cy-r, 0))
	yMax := min(int(math32.Min(cy+r, float32(height))), height)

	for py := yMin; py < yMax; py++ {
		dy := float32(py) - cy
		for px := xMin; px < xMax; px++ {
			dx := float32(px) - cx
			if dx*dx+dy*dy > rr {
				continue
			}
			idx := (py*width + px) * 4
			if idx+3 >= len(buf) {
				continue
			}
			buf[idx] = red
			buf[idx+1] = green
			buf[idx+2] = blue
			buf[idx+3] = 255
		}
	}
}

// Frame is a reusable RGBA buffer sized for one arena. Hosts keep one Frame and render into it every frame.
type Frame struct {
	width, height int
	pix           []byte
}

// NewFrame allocates a frame of width x height pixels.
func NewFrame(width, height int) *Frame {
	return &Frame{width: width, height: height, pix: make([]byte, width*height*4)}
}

// Render repaints the frame from s.
func (f *Frame) Render(s Scene) {
	Render(s, f.pix, f.width, f.height)
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// Pix returns the underlying buffer. It is overwritten by the next Render.
func (f *Frame) Pix() []byte { return f.pix }

// Image wraps the buffer as an *image.RGBA without copying.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.pix,
		Stride: f.width * 4,
		Rect:   image.Rect(0, 0, f.width, f.height),
	}
}
