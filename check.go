package textbitmap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Header is the first line of a document.
type Header struct {
	Rows int
	Cols int
}

func (h Header) String() string {
	return string(appendHeader(nil, h.Rows, h.Cols))
}

// Check reads a whole document from r and verifies that it is consistent with
// its own header: exactly Rows row lines, each with exactly Cols cells of '0'
// or '1' separated by single spaces. A single line feed after the last row is
// accepted. It does not decode the cells.
func Check(r io.Reader) (Header, error) {
	var h Header

	br := bufio.NewReaderSize(r, 64*1024)
	line, err := readLine(br)
	if err != nil && (err != io.EOF || len(line) == 0) {
		return h, malformed(1, "missing header: %v", err)
	}
	fields := bytes.Fields(line)
	if len(fields) != 2 {
		return h, malformed(1, "header has %d fields, expected 2", len(fields))
	}
	if h.Rows, err = parseExtent(fields[0]); err != nil {
		return h, malformed(1, "rows: %v", err)
	}
	if h.Cols, err = parseExtent(fields[1]); err != nil {
		return h, malformed(1, "cols: %v", err)
	}

	for n := 2; ; n++ {
		line, err = readLine(br)
		if err == io.EOF && len(line) == 0 {
			// Either the document ended on the previous row, or it ended with
			// a single line feed after it.
			if got := n - 2; got != h.Rows {
				return h, malformed(n, "found %d rows, header says %d", got, h.Rows)
			}
			return h, nil
		}
		if err != nil && err != io.EOF {
			return h, err
		}
		if n-1 > h.Rows {
			return h, malformed(n, "more rows than the header's %d", h.Rows)
		}
		if err := checkRow(line, h.Cols); err != nil {
			return h, malformed(n, "%v", err)
		}
	}
}

func checkRow(line []byte, cols int) error {
	if len(line) != 2*cols-1 {
		return fmt.Errorf("row is %d bytes long, expected %d for %d cells", len(line), 2*cols-1, cols)
	}
	for i, c := range line {
		if i%2 == 1 {
			if c != ' ' {
				return fmt.Errorf("byte %d is %q, expected a single space", i+1, c)
			}
			continue
		}
		if c != '0' && c != '1' {
			return fmt.Errorf("cell %d is %q, expected '0' or '1'", i/2+1, c)
		}
	}
	return nil
}

func parseExtent(b []byte) (int, error) {
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative extent %d", n)
	}
	return n, nil
}

// readLine returns the next line without its terminator. A final line without
// a line feed is returned along with io.EOF.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	if err == nil {
		line = line[:len(line)-1]
	}
	return line, err
}

func malformed(line int, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrMalformed)
}
