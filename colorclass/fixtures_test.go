package colorclass

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// glyphFixture renders text with a bitmap font onto a transparent
// background, the minimal shape of a decoded subtitle frame.
func glyphFixture(text string, ink color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 120, 24))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 16),
	}
	d.DrawString(text)
	return img
}

func TestClassify_GlyphTextWithoutOutline(t *testing.T) {
	ink := color.NRGBA{0xf0, 0xf0, 0xf0, 0xff}
	roles, err := Classify(glyphFixture("SUBTITLE", ink))
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if len(roles) != 2 {
		t.Fatalf("map size: got %d, want 2 (%v)", len(roles), roles)
	}
	if got := roles[Color{0x00, 0x00, 0x00, 0x00}]; got != Transparent {
		t.Errorf("background: got %s, want %s", got, Transparent)
	}
	// Bare glyph ink on a transparent background borders no other
	// opaque color, so no shadow signal fires.
	if got := roles[Color{0xf0, 0xf0, 0xf0, 0xff}]; got != Opaque {
		t.Errorf("glyph ink: got %s, want %s", got, Opaque)
	}
}
