// Package snapshot writes rendered frames to PNG files and reads them back.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"

	"ball-splitter/internal/raster"
)

// Save writes f to dir as frame-<step>.png and returns the file path. dir is created if needed.
func Save(dir string, step int, f *raster.Frame) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("snapshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%06d.png", step))
	if err := imgio.Save(path, f.Image(), imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return path, nil
}

// Load reads a PNG written by Save.
func Load(path string) (*image.RGBA, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	return clone.AsRGBA(img), nil
}

// Diff counts the pixels that differ between f and img. Sizes must match.
func Diff(f *raster.Frame, img *image.RGBA) (int, error) {
	a := f.Image()
	if a.Bounds().Size() != img.Bounds().Size() {
		return 0, fmt.Errorf("size mismatch: frame %v, image %v", a.Bounds().Size(), img.Bounds().Size())
	}
	n := 0
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if a.RGBAAt(x, y) != img.RGBAAt(img.Bounds().Min.X+x, img.Bounds().Min.Y+y) {
				n++
			}
		}
	}
	return n, nil
}
