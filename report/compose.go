package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// writeGrid composites the sub-charts into a grid with the given column
// count and writes the result as a PNG, creating the output directory if
// it does not exist. Cells are sized to the largest sub-chart; unfilled
// cells stay white.
func writeGrid(path string, images []image.Image, cols int) error {
	if len(images) == 0 {
		return fmt.Errorf("no images to composite")
	}
	cellW, cellH := 0, 0
	for _, img := range images {
		b := img.Bounds()
		if b.Dx() > cellW {
			cellW = b.Dx()
		}
		if b.Dy() > cellH {
			cellH = b.Dy()
		}
	}
	rows := (len(images) + cols - 1) / cols

	canvas := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for i, img := range images {
		x := (i % cols) * cellW
		y := (i / cols) * cellH
		r := image.Rect(x, y, x+cellW, y+cellH)
		draw.Draw(canvas, r, img, img.Bounds().Min, draw.Over)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
