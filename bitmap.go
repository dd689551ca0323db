package textbitmap

import "fmt"

// DefaultThreshold is the intensity above which a pixel becomes a 1.
const DefaultThreshold = 128

// Bitmap is a binary grid that is produced one row at a time. Implementations
// compute a row when it is asked for, so encoding never holds more than one
// row of cells in memory.
type Bitmap interface {
	// Dims returns the number of rows and the number of cells per row.
	Dims() (rows, cols int)
	// Row fills dst, which has length cols, with the 0 or 1 cells of row r.
	Row(r int, dst []byte)
}

type thresholded struct {
	grid      *IntensityGrid
	threshold int
}

// Threshold returns grid binarized against threshold: a cell is 1 when its
// intensity is strictly greater than threshold, else 0. A pixel exactly at the
// threshold is a 0. Any threshold is accepted; values below 0 yield all ones
// and values of 255 or more yield all zeros.
func Threshold(grid *IntensityGrid, threshold int) (Bitmap, error) {
	if grid.empty() {
		return nil, ErrEmptyInput
	}
	return &thresholded{grid: grid, threshold: threshold}, nil
}

func (t *thresholded) Dims() (int, int) {
	return t.grid.Rows(), t.grid.Cols()
}

func (t *thresholded) Row(r int, dst []byte) {
	for c, v := range t.grid.row(r) {
		if int(v) > t.threshold {
			dst[c] = 1
		} else {
			dst[c] = 0
		}
	}
}

type constant struct {
	rows, cols int
	fill       byte
}

// Constant returns a rows x cols bitmap in which every cell is fill.
// The document header of the result is "rows cols", there are rows row lines
// and each of them has cols cells.
func Constant(rows, cols int, fill byte) (Bitmap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimension)
	}
	if fill > 1 {
		return nil, fmt.Errorf("%d: %w", fill, ErrInvalidFill)
	}
	return &constant{rows: rows, cols: cols, fill: fill}, nil
}

func (c *constant) Dims() (int, int) {
	return c.rows, c.cols
}

func (c *constant) Row(_ int, dst []byte) {
	for i := range dst {
		dst[i] = c.fill
	}
}

type inverted struct {
	Bitmap
}

// Invert returns a view of b with every cell flipped.
func Invert(b Bitmap) Bitmap {
	if i, ok := b.(inverted); ok {
		return i.Bitmap
	}
	return inverted{b}
}

func (i inverted) Row(r int, dst []byte) {
	i.Bitmap.Row(r, dst)
	for c := range dst {
		dst[c] ^= 1
	}
}
