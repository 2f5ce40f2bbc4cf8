package bitmap

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// outlineFixture mirrors a rendered subtitle glyph: transparent margin,
// one-pixel near-black outline, mid-gray fill with a near-white patch.
// The outline classifies as shadow, so only the 14x14 fill region
// (including the patch) should binarize to ink.
func outlineFixture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 2; y <= 17; y++ {
		for x := 2; x <= 17; x++ {
			switch {
			case x == 2 || x == 17 || y == 2 || y == 17:
				img.SetNRGBA(x, y, color.NRGBA{0x00, 0x00, 0x00, 0xff})
			case x >= 8 && x < 12 && y >= 8 && y < 12:
				img.SetNRGBA(x, y, color.NRGBA{0xf0, 0xf0, 0xf0, 0xff})
			default:
				img.SetNRGBA(x, y, color.NRGBA{0x99, 0x99, 0x99, 0xff})
			}
		}
	}
	return img
}

func TestBinarize_OutlinedGlyph(t *testing.T) {
	bm, err := Binarize(outlineFixture())
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}

	if got, want := bm.Bounds(), image.Rect(0, 0, 20, 20); got != want {
		t.Fatalf("bounds: got %v, want %v", got, want)
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			want := x >= 3 && x <= 16 && y >= 3 && y <= 16
			if got := bm.BitAt(x, y); got != want {
				t.Errorf("BitAt(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
	if got := bm.InkCount(); got != 196 {
		t.Errorf("InkCount: got %d, want 196", got)
	}
}

func TestBinarize_RejectsOversizedImage(t *testing.T) {
	if _, err := Binarize(hugeImage{}); err == nil {
		t.Fatal("Binarize should fail for dimensions beyond the coordinate range")
	}
}

// hugeImage reports absurd bounds; classification rejects it before any
// pixel is read.
type hugeImage struct{}

func (hugeImage) ColorModel() color.Model { return color.NRGBAModel }
func (hugeImage) Bounds() image.Rectangle { return image.Rect(0, 0, math.MaxInt32, 1) }
func (hugeImage) At(x, y int) color.Color { return color.NRGBA{} }

func TestImage_SetBitRoundTrip(t *testing.T) {
	bm := New(image.Rect(0, 0, 20, 3))

	// A pattern that crosses byte boundaries within a row.
	want := func(x, y int) bool { return (x+y)%3 == 0 }
	for y := 0; y < 3; y++ {
		for x := 0; x < 20; x++ {
			bm.SetBit(x, y, want(x, y))
		}
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 20; x++ {
			if got := bm.BitAt(x, y); got != want(x, y) {
				t.Errorf("BitAt(%d,%d): got %v, want %v", x, y, got, want(x, y))
			}
		}
	}

	// Clearing must work too.
	bm.SetBit(0, 0, false)
	if bm.BitAt(0, 0) {
		t.Error("BitAt(0,0) still set after clearing")
	}
}

func TestImage_OutOfBounds(t *testing.T) {
	bm := New(image.Rect(0, 0, 8, 8))

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 4},
		{"negative y", 4, -1},
		{"x too large", 8, 4},
		{"y too large", 4, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm.SetBit(tt.x, tt.y, true)
			if bm.BitAt(tt.x, tt.y) {
				t.Error("out-of-bounds pixel reads as ink")
			}
			if bm.InkCount() != 0 {
				t.Error("out-of-bounds SetBit modified the bitmap")
			}
		})
	}
}

func TestImage_ImplementsImage(t *testing.T) {
	var _ image.Image = (*Image)(nil)

	bm := New(image.Rect(0, 0, 4, 4))
	bm.SetBit(1, 2, true)

	if got := bm.At(1, 2); got != color.Black {
		t.Errorf("At(1,2): got %v, want black", got)
	}
	if got := bm.At(0, 0); got != color.White {
		t.Errorf("At(0,0): got %v, want white", got)
	}
}

func TestImage_NonZeroOrigin(t *testing.T) {
	bm := New(image.Rect(10, 10, 14, 12))
	bm.SetBit(10, 11, true)
	bm.SetBit(13, 10, true)

	if !bm.BitAt(10, 11) || !bm.BitAt(13, 10) {
		t.Error("bits lost under a non-zero origin")
	}
	if got := bm.InkCount(); got != 2 {
		t.Errorf("InkCount: got %d, want 2", got)
	}
}
