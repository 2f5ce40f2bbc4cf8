package colorclass

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// maxDim is the largest width or height Classify accepts. The
// neighborhood scan computes neighbor positions in signed coordinates;
// dimensions beyond this cannot be represented in 32 bits.
const maxDim = 1<<31 - 2

// raster is a bounds-checked pixel accessor over a normalized image.
type raster struct {
	img  *image.NRGBA
	w, h int
}

// newRaster converts an image to a zero-based, non-premultiplied NRGBA
// raster. It fails if the dimensions exceed the coordinate range used
// for neighbor offsets.
func newRaster(img image.Image) (*raster, error) {
	b := img.Bounds()
	if b.Dx() > maxDim || b.Dy() > maxDim {
		return nil, fmt.Errorf("image dimensions %dx%d exceed maximum %d", b.Dx(), b.Dy(), maxDim)
	}
	n := imaging.Clone(img)
	return &raster{img: n, w: n.Rect.Dx(), h: n.Rect.Dy()}, nil
}

// at returns the color at (x, y), or ok=false when the coordinates fall
// outside the image. Coordinates may be negative or overshoot the
// bounds: the neighborhood scan probes one pixel past every edge.
func (r *raster) at(x, y int) (Color, bool) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return Color{}, false
	}
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}, true
}
