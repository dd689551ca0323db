package textbitmap

import (
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
)

type dithered struct {
	p *image.Paletted
}

// Dither converts img to black and white with serpentine Floyd-Steinberg
// error diffusion. White pixels become 1 and black pixels 0, which matches
// Threshold's bright-is-one convention.
func Dither(img image.Image) (Bitmap, error) {
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyInput
	}

	// Diffusion runs on intensity only, like Threshold.
	grid, err := GridFromImage(img)
	if err != nil {
		return nil, err
	}
	gray := &image.Gray{
		Pix:    grid.pix,
		Stride: grid.Cols(),
		Rect:   image.Rect(0, 0, grid.Cols(), grid.Rows()),
	}

	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	return &dithered{p: d.DitherPaletted(gray)}, nil
}

func (d *dithered) Dims() (int, int) {
	return d.p.Rect.Dy(), d.p.Rect.Dx()
}

func (d *dithered) Row(r int, dst []byte) {
	origin := d.p.Rect.Min
	for c := range dst {
		// Palette index 1 is white.
		dst[c] = d.p.ColorIndexAt(origin.X+c, origin.Y+r)
	}
}
