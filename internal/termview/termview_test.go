package termview

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"ball-splitter/internal/physics"
	"ball-splitter/internal/raster"
)

type oneBody struct{ b physics.Body }

func (s oneBody) Len() int            { return 1 }
func (s oneBody) At(int) physics.Body { return s.b }

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func cellStyle(top, bottom [3]int32) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(top[0], top[1], top[2])).
		Background(tcell.NewRGBColor(bottom[0], bottom[1], bottom[2]))
}

func TestDrawHalfBlocks(t *testing.T) {
	screen := newScreen(t, 4, 2)
	frame := raster.NewFrame(4, 4)
	frame.Render(oneBody{physics.NewBody(0, 0, 0, 0, 1, 0xFFFFFF)})

	New(screen).Draw(frame)

	bg := [3]int32{26, 26, 26}
	white := [3]int32{255, 255, 255}

	r, _, style, _ := screen.GetContent(0, 0)
	if r != halfBlock {
		t.Errorf("Expected half block, got %q", r)
	}
	if style != cellStyle(white, bg) {
		t.Errorf("Expected white over background at (0,0), got %v", style)
	}
	_, _, style, _ = screen.GetContent(1, 0)
	if style != cellStyle(bg, bg) {
		t.Errorf("Expected background at (1,0), got %v", style)
	}
	_, _, style, _ = screen.GetContent(3, 1)
	if style != cellStyle(bg, bg) {
		t.Errorf("Expected background at (3,1), got %v", style)
	}
}

func TestDrawStatusLine(t *testing.T) {
	screen := newScreen(t, 6, 3)
	frame := raster.NewFrame(6, 4)
	frame.Render(oneBody{physics.NewBody(3, 2, 0, 0, 1, 0xFF0000)})

	v := New(screen)
	v.Status = "n=1"
	v.Draw(frame)

	for i, want := range "n=1   " {
		r, _, style, _ := screen.GetContent(i, 2)
		if r != want {
			t.Errorf("Status col %d: expected %q, got %q", i, want, r)
		}
		if style != statusStyle {
			t.Errorf("Status col %d: expected status style", i)
		}
	}
	if r, _, _, _ := screen.GetContent(0, 1); r != halfBlock {
		t.Errorf("Expected frame above status, got %q", r)
	}
}

func TestDrawTinyScreen(t *testing.T) {
	screen := newScreen(t, 0, 0)
	v := New(screen)
	v.Status = "x"
	v.Draw(raster.NewFrame(4, 4))
}
