package textbitmap

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"strconv"
)

type EncoderOpt func(enc *Encoder)

// WithFinalNewline terminates the last row line with a line feed. By default
// lines are only separated by line feeds and the document ends with the last
// cell of the last row.
func WithFinalNewline() EncoderOpt {
	return func(enc *Encoder) {
		enc.finalNewline = true
	}
}

// Encoder writes bitmaps in the text format:
//
//	<rows> <cols>
//	<cols cells, each 0 or 1, separated by single spaces>   (repeated rows times)
type Encoder struct {
	w            io.Writer
	finalNewline bool
}

// Encode writes b to w with the default options.
func Encode(w io.Writer, b Bitmap) error {
	return NewEncoder(w).Encode(b)
}

// EncodeThresholded writes grid binarized against threshold to w.
func EncodeThresholded(w io.Writer, grid *IntensityGrid, threshold int) error {
	b, err := Threshold(grid, threshold)
	if err != nil {
		return err
	}
	return Encode(w, b)
}

// EncodeConstant writes a rows x cols bitmap of ones to w.
func EncodeConstant(w io.Writer, rows, cols int) error {
	b, err := Constant(rows, cols, 1)
	if err != nil {
		return err
	}
	return Encode(w, b)
}

// Marshal returns the whole document for b. Prefer an Encoder for large bitmaps.
func Marshal(b Bitmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func NewEncoder(w io.Writer, opts ...EncoderOpt) *Encoder {
	enc := Encoder{
		w: w,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

/*
Encode writes the header line followed by one line per row of b, top row first.

Rows are produced and written one at a time through a single line buffer of
2*cols-1 bytes, so a 16000x16000 bitmap is encoded with a few tens of
kilobytes of memory. Only the characters '0', '1', ' ', '\n' and the header's
decimal digits are ever written.
*/
func (enc *Encoder) Encode(b Bitmap) error {
	rows, cols := b.Dims()
	if rows <= 0 || cols <= 0 {
		return ErrEmptyInput
	}

	bw := bufio.NewWriterSize(enc.w, 64*1024)
	if _, err := bw.Write(appendHeader(nil, rows, cols)); err != nil {
		return err
	}

	cells := make([]byte, cols)
	line := make([]byte, 0, 2*cols)
	for r := 0; r < rows; r++ {
		b.Row(r, cells)
		line = append(line[:0], '\n')
		line = appendRow(line, cells)
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	if enc.finalNewline {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Lines returns the document for b as a lazy sequence of lines without line
// terminators: the header, then one line per row. Ranging over it again
// produces the same lines from the start.
func Lines(b Bitmap) iter.Seq[string] {
	return func(yield func(string) bool) {
		rows, cols := b.Dims()
		if rows <= 0 || cols <= 0 {
			return
		}
		if !yield(string(appendHeader(nil, rows, cols))) {
			return
		}
		cells := make([]byte, cols)
		line := make([]byte, 0, 2*cols)
		for r := 0; r < rows; r++ {
			b.Row(r, cells)
			line = appendRow(line[:0], cells)
			if !yield(string(line)) {
				return
			}
		}
	}
}

func appendHeader(dst []byte, rows, cols int) []byte {
	dst = strconv.AppendInt(dst, int64(rows), 10)
	dst = append(dst, ' ')
	return strconv.AppendInt(dst, int64(cols), 10)
}

// appendRow formats cells as "c c c". Any non-zero cell is written as '1'.
func appendRow(dst []byte, cells []byte) []byte {
	for i, c := range cells {
		if i > 0 {
			dst = append(dst, ' ')
		}
		if c != 0 {
			dst = append(dst, '1')
		} else {
			dst = append(dst, '0')
		}
	}
	return dst
}
