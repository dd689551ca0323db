package textbitmap

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Adjustments preprocess an image before it is binarized. The zero value
// leaves the image untouched.
type Adjustments struct {
	// AutoOrient rotates and flips the image as its EXIF orientation tag says.
	// Off by default, so the grid follows the stored pixel layout.
	AutoOrient bool `yaml:"auto_orient"`
	// FitCols and FitRows scale the image down, keeping its aspect ratio, so
	// that it is at most FitCols pixels wide and FitRows pixels high. Zero
	// leaves that axis unbounded. Images are never scaled up.
	FitCols uint `yaml:"fit_cols"`
	FitRows uint `yaml:"fit_rows"`
	// Gamma = 1.0 gives the original image. Less than 1.0 darkens, greater lightens.
	Gamma float64 `yaml:"gamma"`
	// Brightness in the range (-100, 100). 0 gives the original image.
	Brightness float64 `yaml:"brightness"`
	// Contrast in the range (-100, 100). 0 gives the original image.
	Contrast float64 `yaml:"contrast"`
	// Sharpen is the sigma of the sharpening filter. 0 gives the original image.
	Sharpen float64 `yaml:"sharpen"`
	// SigmoidMidpoint must be between 0 and 1; SigmoidFactor = 0 gives the
	// original image.
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"`
	SigmoidFactor   float64 `yaml:"sigmoid_factor"`
}

// Apply returns img with every non-zero adjustment after AutoOrient applied,
// in declaration order. AutoOrient is applied while decoding.
func (a Adjustments) Apply(img image.Image) image.Image {
	if a.FitCols > 0 || a.FitRows > 0 {
		cols, rows := a.FitCols, a.FitRows
		if cols == 0 {
			cols = uint(img.Bounds().Dx())
		}
		if rows == 0 {
			rows = uint(img.Bounds().Dy())
		}
		img = resize.Thumbnail(cols, rows, img, resize.Bilinear)
	}
	if a.Gamma > 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen > 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		midpoint := a.SigmoidMidpoint
		if midpoint == 0 {
			midpoint = 0.5
		}
		img = imaging.AdjustSigmoid(img, midpoint, a.SigmoidFactor)
	}
	return img
}

// Open decodes the image file at path and returns its intensity grid. The
// stored pixel layout is used as is; EXIF orientation is ignored.
func Open(path string) (*IntensityGrid, error) {
	img, err := OpenImage(path, Adjustments{})
	if err != nil {
		return nil, err
	}
	return GridFromImage(img)
}

// OpenImage decodes the image file at path and applies adj to it.
func OpenImage(path string, adj Adjustments) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(adj.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrDecode)
	}
	return adj.Apply(img), nil
}

// DecodeImage is like OpenImage but reads the image from r.
func DecodeImage(r io.Reader, adj Adjustments) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(adj.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrDecode)
	}
	return adj.Apply(img), nil
}
