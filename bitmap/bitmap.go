// Package bitmap provides black-and-white images in a packed format
// suited to OCR calculations, produced from classified subtitle colors.
package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"github.com/disintegration/imaging"

	"github.com/subtitletools/inkmap/colorclass"
)

// palette renders background as white and ink as black.
var palette = color.Palette{color.White, color.Black}

// Image is a 1-bit-per-pixel image. Bytes of Pix hold up to 8
// horizontally adjacent pixels with the most significant bit leftmost;
// a set bit is ink, a cleared bit is background. Rows are padded to a
// whole byte, unused trailing bits stay zero.
type Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// New returns an all-background bitmap with the given bounds.
func New(r image.Rectangle) *Image {
	stride := (r.Dx() + 7) / 8
	return &Image{
		Pix:    make([]byte, stride*r.Dy()),
		Stride: stride,
		Rect:   r,
	}
}

// pixBitOffset returns the byte index into Pix for the pixel at (x, y)
// and the bit position within that byte (7 for the MSB).
func (p *Image) pixBitOffset(x, y int) (ofs, bit int) {
	ofs = (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/8
	bit = 7 - (x-p.Rect.Min.X)%8
	return
}

// BitAt reports whether the pixel at (x, y) is ink. Out-of-bounds
// pixels are background.
func (p *Image) BitAt(x, y int) bool {
	if !(image.Point{x, y}.In(p.Rect)) {
		return false
	}
	i, b := p.pixBitOffset(x, y)
	return p.Pix[i]>>b&1 != 0
}

// SetBit sets (ink) or clears the pixel at (x, y). Out-of-bounds
// coordinates are ignored.
func (p *Image) SetBit(x, y int, ink bool) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i, b := p.pixBitOffset(x, y)
	if ink {
		p.Pix[i] |= 1 << b
	} else {
		p.Pix[i] &^= 1 << b
	}
}

// InkCount returns the number of ink pixels.
func (p *Image) InkCount() int {
	n := 0
	for _, b := range p.Pix {
		n += bits.OnesCount8(b)
	}
	return n
}

// At returns the color of the pixel at (x, y): black for ink, white
// for background.
func (p *Image) At(x, y int) color.Color {
	if p.BitAt(x, y) {
		return palette[1]
	}
	return palette[0]
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle { return p.Rect }

// ColorModel returns the two-entry black/white palette.
func (p *Image) ColorModel() color.Model { return palette }

// Binarize classifies the colors of an image and renders it as a 1-bit
// bitmap: Opaque glyph ink becomes ink, Transparent and Shadow colors
// become background. The result has zero-based bounds regardless of the
// source bounds.
//
// This is the handoff format for letter separation: shadow and outline
// artifacts are already folded into the background, so ink pixels are
// glyph candidates only.
func Binarize(img image.Image) (*Image, error) {
	roles, err := colorclass.Classify(img)
	if err != nil {
		return nil, fmt.Errorf("binarize: %w", err)
	}

	// The same normalization Classify applies, so pixel values match
	// the classification keys exactly.
	src := imaging.Clone(img)
	out := New(src.Rect)
	for y := 0; y < src.Rect.Dy(); y++ {
		for x := 0; x < src.Rect.Dx(); x++ {
			i := src.PixOffset(x, y)
			c := colorclass.Color{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2], A: src.Pix[i+3]}
			role, ok := roles[c]
			if !ok {
				panic(fmt.Sprintf("bitmap: color %s missing from classification", c.Hex()))
			}
			out.SetBit(x, y, role == colorclass.Opaque)
		}
	}
	return out, nil
}
