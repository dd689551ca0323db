package textbitmap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath derives the document path for an input image: the image's base
// name up to its first dot, with a .txt extension, inside dir.
// OutputPath("/photos/4k.jpg", "out") is "out/4k.txt".
func OutputPath(input, dir string) string {
	name, _, _ := strings.Cut(filepath.Base(input), ".")
	if name == "" {
		name = "bitmap"
	}
	return filepath.Join(dir, name+".txt")
}

// WriteFile encodes b into the file at path. The document is written to a
// temporary file next to path and renamed over it once complete, so path
// either keeps its previous content or holds the whole new document.
func WriteFile(path string, b Bitmap, opts ...EncoderOpt) (err error) {
	if rows, cols := b.Dims(); rows <= 0 || cols <= 0 {
		return ErrEmptyInput
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrWrite)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err := NewEncoder(f, opts...).Encode(b); err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, ErrWrite)
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, ErrWrite)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, ErrWrite)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("%v: %w", err, ErrWrite)
	}
	return nil
}
