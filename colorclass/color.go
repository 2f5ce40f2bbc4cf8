package colorclass

import "fmt"

// Role is the semantic classification of a color in a subtitle bitmap.
type Role int

const (
	// Transparent marks colors with any amount of alpha transparency.
	// They are background.
	Transparent Role = iota

	// Shadow marks opaque colors that behave like background: outline
	// or drop-shadow ink that should be excluded from glyph
	// recognition to facilitate letter separation.
	Shadow

	// Opaque marks colors that are candidate glyph ink.
	Opaque
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case Transparent:
		return "transparent"
	case Shadow:
		return "shadow"
	case Opaque:
		return "opaque"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Color is an 8-bit RGBA value used as a classification key.
//
// Alpha is part of the identity: the same RGB with a different alpha is
// a different color. Values are compared for exact equality; no
// quantization or perceptual grouping is applied.
type Color struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
	A uint8 // Alpha/opacity component (0 = fully transparent, 255 = fully opaque)
}

// IsTransparent reports whether the color carries any transparency at
// all, not only full transparency.
func (c Color) IsTransparent() bool {
	return c.A < 0xff
}

// Hex returns the color as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Map assigns a Role to every distinct color of an image.
//
// A Map returned by Classify contains every color appearing in the
// image exactly once. It is owned by the caller and not retained by
// this package.
type Map map[Color]Role

// adjacency counts how many 8-connected neighbors of a color's pixels
// fall into each role, across the whole image. Role ordinals index the
// array; they must not leak outside this type.
type adjacency struct {
	counts [3]int
}

func (a *adjacency) count(r Role) int {
	return a.counts[r]
}

func (a *adjacency) incr(r Role) {
	a.counts[r]++
}

func (a *adjacency) total() int {
	return a.counts[0] + a.counts[1] + a.counts[2]
}

// fraction reports the share of neighbor observations with the given
// role. Tallies are only built for colors that occur as non-transparent
// pixels, so total is at least 1 whenever an entry exists; a zero total
// is a defect.
func (a *adjacency) fraction(r Role) float64 {
	t := a.total()
	if t == 0 {
		panic("colorclass: fraction of an empty adjacency tally")
	}
	return float64(a.count(r)) / float64(t)
}

// opaqueInsideShadow reports whether the color is almost always
// adjacent to opaque pixels, the signature of glyph ink sitting inside
// an outline layer.
func (a *adjacency) opaqueInsideShadow() bool {
	return a.fraction(Opaque) > opaqueInsideShadowThreshold
}

// looksLikeShadow reports whether the color borders both opaque and
// transparent regions substantially, the signature of outline ink
// sandwiched between glyph interior and background.
func (a *adjacency) looksLikeShadow() bool {
	return a.fraction(Opaque) > shadowOpaqueThreshold &&
		a.fraction(Transparent) > shadowTransparentThreshold
}
