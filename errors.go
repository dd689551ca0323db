package textbitmap

import "errors"

var (
	// ErrDecode is returned when an image can't be opened or decoded.
	ErrDecode = errors.New("textbitmap: cannot decode image")
	// ErrEmptyInput is returned for a grid with zero rows or zero columns.
	ErrEmptyInput = errors.New("textbitmap: empty intensity grid")
	// ErrInvalidDimension is returned when a constant fill is asked for a non-positive extent.
	ErrInvalidDimension = errors.New("textbitmap: invalid dimension")
	// ErrInvalidFill is returned when a fill value is neither 0 nor 1.
	ErrInvalidFill = errors.New("textbitmap: fill value must be 0 or 1")
	// ErrWrite is returned when a document can't be persisted.
	ErrWrite = errors.New("textbitmap: cannot write bitmap")
	// ErrMalformed is returned by Check for a document that doesn't match its header.
	ErrMalformed = errors.New("textbitmap: malformed bitmap")
)
