package colorclass

import (
	"fmt"
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color in HSL space, useful for eyeballing what a classified
// color looks like.
type HSL struct {
	H int // Hue: 0-360 degrees
	S int // Saturation: 0-100 percent
	L int // Lightness: 0-100 percent
}

// ColorStat describes one distinct color of a classified image.
type ColorStat struct {
	Color      Color   // The exact RGBA value
	Role       Role    // Assigned classification
	Hex        string  // Lowercase "#rrggbb", alpha excluded
	HSL        HSL     // HSL representation of the RGB components
	Count      int     // Number of pixels with this color
	Percentage float64 // Share of all pixels (0-100)
}

// Summary reports the classified colors of an image together with how
// much of the image each covers.
type Summary struct {
	Width  int
	Height int

	// Colors is sorted by descending pixel count; ties break on the
	// RGBA value so the order is deterministic.
	Colors []ColorStat
}

// Summarize classifies an image and reports per-color pixel frequency
// alongside the assigned roles.
//
// This is a diagnostic companion to Classify: a downstream OCR stage
// can use it to pick dominant ink colors, and it makes misbehaving
// fixtures easy to inspect. The classification itself is identical to
// what Classify returns for the same image.
//
// Returns an error under the same conditions as Classify. An empty
// image yields a Summary with no colors.
func Summarize(img image.Image) (*Summary, error) {
	px, err := newRaster(img)
	if err != nil {
		return nil, fmt.Errorf("summarize colors: %w", err)
	}
	roles := seedRoles(px)
	applyShadowHeuristic(roles, tallyAdjacent(px, roles))

	counts := make(map[Color]int, len(roles))
	total := 0
	for y := 0; y < px.h; y++ {
		for x := 0; x < px.w; x++ {
			c, _ := px.at(x, y)
			counts[c]++
			total++
		}
	}

	summary := &Summary{Width: px.w, Height: px.h}
	if total == 0 {
		return summary, nil
	}

	summary.Colors = make([]ColorStat, 0, len(counts))
	for c, n := range counts {
		cf := colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}
		h, s, l := cf.Hsl()
		summary.Colors = append(summary.Colors, ColorStat{
			Color:      c,
			Role:       roles[c],
			Hex:        cf.Hex(),
			HSL:        HSL{H: int(h), S: int(s * 100), L: int(l * 100)},
			Count:      n,
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(summary.Colors, func(i, j int) bool {
		a, b := summary.Colors[i], summary.Colors[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Color.Hex() < b.Color.Hex()
	})

	return summary, nil
}
