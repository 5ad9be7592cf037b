// Package termview shows a rendered frame in a terminal. Each cell is an upper half block whose
// foreground is the top pixel and background the bottom one, so a cell carries two pixel rows.
package termview

import (
	"image"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"ball-splitter/internal/raster"
)

const halfBlock = '▀'

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack)

// View draws frames onto a tcell screen, scaling the arena to whatever size the terminal has.
type View struct {
	screen tcell.Screen
	scaled *image.RGBA
	// Status, when non-empty, is drawn on the last row and the frame gets the rows above it.
	Status string
}

// New returns a View drawing onto screen. The screen must already be initialized.
func New(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Draw scales f to the screen and shows it.
func (v *View) Draw(f *raster.Frame) {
	cols, rows := v.screen.Size()
	frameRows := rows
	if v.Status != "" && rows > 1 {
		frameRows--
	}
	if cols <= 0 || frameRows <= 0 {
		return
	}

	dst := v.target(cols, frameRows*2)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), f.Image(), image.Rect(0, 0, f.Width(), f.Height()), xdraw.Src, nil)

	for y := 0; y < frameRows; y++ {
		for x := 0; x < cols; x++ {
			top := dst.RGBAAt(x, y*2)
			bottom := dst.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	if frameRows < rows {
		v.drawStatus(cols, rows-1)
	}
	v.screen.Show()
}

// target returns the scratch image, reallocating it when the terminal size changed.
func (v *View) target(w, h int) *image.RGBA {
	if v.scaled == nil || v.scaled.Bounds().Dx() != w || v.scaled.Bounds().Dy() != h {
		v.scaled = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return v.scaled
}

func (v *View) drawStatus(cols, row int) {
	x := 0
	for _, r := range v.Status {
		if x >= cols {
			break
		}
		v.screen.SetContent(x, row, r, nil, statusStyle)
		x++
	}
	for ; x < cols; x++ {
		v.screen.SetContent(x, row, ' ', nil, statusStyle)
	}
}
