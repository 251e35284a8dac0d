// Package fontface abstracts over the external glyph rasterizer
// (component C2). Three engines satisfy the Face interface: a
// dependency-free embedded bitmap face, a pure-Go sfnt/vector engine
// for real TrueType/OpenType files, and a cgo FreeType engine built
// only under the "freetype" tag. The orchestrator never branches on
// which one produced a Glyph.
package fontface

import "errors"

// ErrNoGlyph is returned by LoadAndRender when the face has no glyph
// for the requested code point (spec.md §4.2: "NoGlyph" signal).
var ErrNoGlyph = errors.New("fontface: no glyph for code point")

// ErrInvalidPixelSize is returned by SetPixelSize for a non-positive size.
var ErrInvalidPixelSize = errors.New("fontface: pixel size must be positive")

// Glyph is a single rasterized glyph plus its placement metrics,
// matching the data model of spec.md §3.
type Glyph struct {
	CP   rune
	W, H int // coverage bitmap dimensions; either may be 0

	XAdv int // horizontal advance in whole pixels
	XOff int // bitmap left bearing
	YOff int // ascender_px() - bitmap top

	// Coverage holds W*H bytes of 8-bit alpha, row-major, or is nil
	// when W*H == 0.
	Coverage []byte
}

// Face abstracts a font rasterizer configured at one pixel size. All
// glyphs produced by a single Face instance after a given
// SetPixelSize call share one baseline (AscenderPx), satisfying the
// invariant in spec.md §3 that glyphs from the same face+size can be
// composited onto a common baseline.
type Face interface {
	// SetPixelSize configures the nominal glyph size for subsequent
	// LoadAndRender calls.
	SetPixelSize(px int) error

	// LoadAndRender rasterizes cp at the current pixel size. It
	// returns ErrNoGlyph if the face has no glyph for cp.
	LoadAndRender(cp rune) (Glyph, error)

	// AscenderPx returns the shared baseline reference at the
	// current pixel size.
	AscenderPx() int

	// Close releases any resources (file handles, cgo-owned memory)
	// held by the face. It must be safe to call more than once.
	Close() error
}
