package colorclass

import (
	"fmt"
	"image"
)

// Heuristic constants for shadow detection. They are empirically tuned
// against real subtitle renders; change them and previously correct
// classifications will drift.
const (
	// opaqueInsideShadowThreshold is the adjacency share above which a
	// color counts as "surrounded by opaque", i.e. glyph ink sitting
	// inside a shadow layer.
	opaqueInsideShadowThreshold = 0.95

	// shadowOpaqueThreshold and shadowTransparentThreshold are the
	// adjacency shares a color must exceed toward opaque and
	// transparent neighbors, respectively, to be classified as shadow.
	shadowOpaqueThreshold      = 0.33
	shadowTransparentThreshold = 0.33

	// significanceDivisor filters the opaque-inside-shadow check: only
	// colors accounting for at least 1/significanceDivisor of all
	// adjacency observations may set the signal, so rare anti-aliasing
	// colors cannot trigger it.
	significanceDivisor = 4
)

// Classify assigns a Role to every distinct color of an image.
//
// Parameters:
//   - img: A decoded image. Any image.Image is accepted; it is
//     normalized to 8-bit non-premultiplied RGBA before analysis.
//
// Returns:
//   - Map: One entry per distinct color in the image. Colors with any
//     alpha transparency are Transparent; opaque colors are Opaque
//     unless the shadow heuristic reclassifies them as Shadow.
//   - error: Non-nil if the image dimensions exceed the coordinate
//     range of the neighborhood scan. No partial map is returned.
//
// # Shadow Detection
//
// A color is reclassified as Shadow only when two conditions hold.
// First, some significant color (at least a quarter of all adjacency
// observations) must be adjacent to opaque pixels more than 95% of the
// time, which indicates glyph ink sitting inside an outline layer.
// Second, the color itself must border opaque and transparent regions
// each more than 33% of the time, the profile of outline ink between
// glyph interior and background. An image with no outline pattern never
// produces Shadow entries.
//
// # Determinism
//
// Classification is a pure function of the pixel data: calling Classify
// twice on the same image yields identical maps.
func Classify(img image.Image) (Map, error) {
	px, err := newRaster(img)
	if err != nil {
		return nil, fmt.Errorf("classify colors: %w", err)
	}
	roles := seedRoles(px)
	applyShadowHeuristic(roles, tallyAdjacent(px, roles))
	return roles, nil
}

// seedRoles splits colors into Transparent and Opaque by alpha alone.
// First observation wins: a color already present is never reassigned.
func seedRoles(px *raster) Map {
	roles := make(Map)
	for y := 0; y < px.h; y++ {
		for x := 0; x < px.w; x++ {
			c, _ := px.at(x, y)
			if _, seen := roles[c]; seen {
				continue
			}
			if c.IsTransparent() {
				roles[c] = Transparent
			} else {
				roles[c] = Opaque
			}
		}
	}
	return roles
}

// tallyAdjacent builds per-color adjacency counts over the 8-connected
// neighborhood of every non-transparent pixel. Out-of-bounds neighbors
// count as Transparent; same-color neighbors are skipped so a color
// cannot reinforce its own statistics.
func tallyAdjacent(px *raster, roles Map) map[Color]*adjacency {
	adjacent := make(map[Color]*adjacency)
	for c := range roles {
		if !c.IsTransparent() {
			adjacent[c] = &adjacency{}
		}
	}

	for y := 0; y < px.h; y++ {
		for x := 0; x < px.w; x++ {
			c, _ := px.at(x, y)
			if c.IsTransparent() {
				continue
			}
			tally := adjacent[c]
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n, ok := px.at(x+dx, y+dy)
					role := Transparent
					if ok {
						if n == c {
							continue
						}
						r, classified := roles[n]
						if !classified {
							// The seeding pass covers every pixel; a miss here
							// would corrupt shadow detection downstream.
							panic(fmt.Sprintf("colorclass: neighbor color %s missing from classification", n.Hex()))
						}
						role = r
					}
					tally.incr(role)
				}
			}
		}
	}
	return adjacent
}

// applyShadowHeuristic reclassifies shadow colors in place. Colors
// never flagged keep their seeded role.
func applyShadowHeuristic(roles Map, adjacent map[Color]*adjacency) {
	totalAdj := 0
	for _, tally := range adjacent {
		totalAdj += tally.total()
	}

	// The significance cutoff is inclusive: a color sitting exactly at
	// totalAdj/4 observations still sets the signal.
	haveOpaqueInsideShadow := false
	for _, tally := range adjacent {
		if tally.total() >= totalAdj/significanceDivisor && tally.opaqueInsideShadow() {
			haveOpaqueInsideShadow = true
		}
	}
	if !haveOpaqueInsideShadow {
		return
	}

	for c, tally := range adjacent {
		if tally.looksLikeShadow() {
			roles[c] = Shadow
		}
	}
}
