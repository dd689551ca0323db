package textbitmap

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// IntensityGrid is a read-only grid of 8 bit grayscale samples, stored row-major.
type IntensityGrid struct {
	pix  []uint8
	rows int
	cols int
}

// GridFromRows copies rows into a new grid. Every row must have the same,
// non-zero length.
func GridFromRows(rows [][]uint8) (*IntensityGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(rows[0])
	g := &IntensityGrid{
		pix:  make([]uint8, 0, len(rows)*cols),
		rows: len(rows),
		cols: cols,
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d: %w", r, len(row), cols, ErrEmptyInput)
		}
		g.pix = append(g.pix, row...)
	}
	return g, nil
}

// GridFromImage converts img to grayscale and returns its intensity grid.
// The grid's first row is the top of the image, whatever img.Bounds().Min is.
func GridFromImage(img image.Image) (*IntensityGrid, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmptyInput
	}

	// imaging returns an NRGBA with R == G == B, anchored at (0, 0).
	gray := imaging.Grayscale(img)
	g := &IntensityGrid{
		pix:  make([]uint8, bounds.Dx()*bounds.Dy()),
		rows: bounds.Dy(),
		cols: bounds.Dx(),
	}
	for y := 0; y < g.rows; y++ {
		src := gray.Pix[y*gray.Stride:]
		dst := g.pix[y*g.cols : (y+1)*g.cols]
		for x := range dst {
			dst[x] = src[x*4]
		}
	}
	return g, nil
}

// Rows returns the number of rows (the image height).
func (g *IntensityGrid) Rows() int { return g.rows }

// Cols returns the number of columns (the image width).
func (g *IntensityGrid) Cols() int { return g.cols }

// At returns the sample at row r, column c.
func (g *IntensityGrid) At(r, c int) uint8 {
	return g.pix[r*g.cols+c]
}

func (g *IntensityGrid) row(r int) []uint8 {
	return g.pix[r*g.cols : (r+1)*g.cols]
}

func (g *IntensityGrid) empty() bool {
	return g == nil || g.rows == 0 || g.cols == 0
}
