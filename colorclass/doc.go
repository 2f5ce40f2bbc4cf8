// Package colorclass classifies the distinct colors of a rendered
// subtitle bitmap into semantic roles for a downstream OCR stage.
//
// Rendered subtitles typically contain a fully transparent background,
// one or more opaque glyph colors, and often an opaque outline or
// drop-shadow color that visually belongs to the background. This
// package assigns each distinct color one of three roles:
//
//   - Transparent: the color carries any amount of alpha transparency
//   - Shadow: opaque outline/drop-shadow ink that should be treated as
//     background when separating letters
//   - Opaque: candidate glyph ink
//
// Consumers performing letter segmentation or recognition should treat
// Transparent and Shadow uniformly as background.
//
// # Algorithm
//
// Classification is a two-pass pipeline. The first pass splits colors
// into Transparent and Opaque purely by alpha. The second pass tallies,
// for every non-transparent pixel, the roles of its 8-connected
// neighbors, then applies a fixed heuristic: if some dominant opaque
// color is almost always adjacent to other opaque pixels (it appears to
// sit inside a shadow layer), every color bordering both opaque and
// transparent regions substantially is reclassified as Shadow.
//
// # Error Handling
//
// Classify returns an error only for images whose dimensions exceed the
// signed coordinate range used by the neighborhood scan. Internal
// invariant violations (a neighbor color missing from the preliminary
// classification) indicate a logic defect and panic rather than guess.
//
// All functions are pure: no package state, safe for concurrent use on
// different images.
package colorclass
