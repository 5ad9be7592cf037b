package raster

import (
	"bytes"
	"testing"

	"ball-splitter/internal/physics"
)

type bodies []physics.Body

func (b bodies) Len() int              { return len(b) }
func (b bodies) At(i int) physics.Body { return b[i] }

func pixel(buf []byte, width, x, y int) [4]byte {
	i := (y*width + x) * 4
	return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

func TestRenderBackgroundOnly(t *testing.T) {
	const w, h = 8, 6
	buf := make([]byte, w*h*4)
	for i := range buf {
		buf[i] = 0xAB
	}

	Render(bodies{}, buf, w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := pixel(buf, w, x, y); got != Background {
				t.Fatalf("Expected background at (%d,%d), got %v", x, y, got)
			}
		}
	}
}

func TestRenderDiscCoverage(t *testing.T) {
	const w, h = 12, 12
	buf := make([]byte, w*h*4)
	red := [4]byte{0xFF, 0x10, 0x20, 255}

	Render(bodies{physics.NewBody(5, 5, 0, 0, 2, 0xFF1020)}, buf, w, h)

	inside := [][2]int{{5, 5}, {3, 5}, {5, 3}, {4, 4}, {6, 6}}
	for _, p := range inside {
		if got := pixel(buf, w, p[0], p[1]); got != red {
			t.Errorf("Expected body color at %v, got %v", p, got)
		}
	}
	// Corners of the box are outside the circle; the far edge of the box is exclusive.
	outside := [][2]int{{3, 3}, {7, 5}, {5, 7}, {0, 0}, {11, 11}}
	for _, p := range outside {
		if got := pixel(buf, w, p[0], p[1]); got != Background {
			t.Errorf("Expected background at %v, got %v", p, got)
		}
	}
}

func TestRenderLaterBodiesDrawOver(t *testing.T) {
	const w, h = 10, 10
	buf := make([]byte, w*h*4)

	Render(bodies{
		physics.NewBody(5, 5, 0, 0, 3, 0x0000FF),
		physics.NewBody(5, 5, 0, 0, 1, 0x00FF00),
	}, buf, w, h)

	if got := pixel(buf, w, 5, 5); got != [4]byte{0, 0xFF, 0, 255} {
		t.Errorf("Expected green on top at center, got %v", got)
	}
	if got := pixel(buf, w, 3, 5); got != [4]byte{0, 0, 0xFF, 255} {
		t.Errorf("Expected blue ring at (3,5), got %v", got)
	}
}

func TestRenderClipsToBounds(t *testing.T) {
	const w, h = 10, 10
	buf := make([]byte, w*h*4)

	// Centered on the corner: only the inner quadrant is visible.
	Render(bodies{physics.NewBody(0, 0, 0, 0, 4, 0xFFFFFF)}, buf, w, h)

	if got := pixel(buf, w, 0, 0); got != [4]byte{255, 255, 255, 255} {
		t.Errorf("Expected white at origin, got %v", got)
	}
	if got := pixel(buf, w, 5, 0); got != Background {
		t.Errorf("Expected background at (5,0), got %v", got)
	}
}

func TestRenderShortBufferDoesNotPanic(t *testing.T) {
	const w, h = 10, 10
	buf := make([]byte, w*4*5) // half the rows

	Render(bodies{physics.NewBody(5, 5, 0, 0, 5, 0xFFFFFF)}, buf, w, h)

	if got := pixel(buf, w, 5, 4); got != [4]byte{255, 255, 255, 255} {
		t.Errorf("Expected body drawn in the rows that exist, got %v", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	world, err := physics.NewWorld(200, 200, 20, 0.7, physics.WithSource(physics.NewSource(9)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	for world.Len() < 4 {
		world.Step()
	}

	a := NewFrame(200, 200)
	b := NewFrame(200, 200)
	a.Render(world)
	b.Render(world)
	b.Render(world)

	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("Expected identical buffers for unchanged state")
	}
}

func TestFrameImageSharesBuffer(t *testing.T) {
	world, err := physics.NewWorld(200, 200, 10, 0.7)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	f := NewFrame(200, 200)
	f.Render(world)

	img := f.Image()
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("Expected 200x200 image, got %v", img.Bounds())
	}
	c := img.RGBAAt(100, 100)
	if c.R != 0xFF || c.G != 0x44 || c.B != 0x44 || c.A != 255 {
		t.Errorf("Expected seed color at center, got %v", c)
	}
	f.Pix()[0] = 1
	if img.Pix[0] != 1 {
		t.Error("Expected image to share the frame buffer")
	}
}
