// Package atlaserr collects the sentinel errors surfaced by the atlas
// generation pipeline (spec.md §7), so callers can branch on failure
// kind with errors.Is regardless of which stage produced it.
package atlaserr

import "errors"

var (
	// ErrFontUnresolved means the resolver could not open any face
	// for the requested font input and no embedded fallback is
	// configured.
	ErrFontUnresolved = errors.New("atlaserr: font could not be resolved")

	// ErrGlyphLoadFailed wraps a per-code-point rasterizer failure.
	// The orchestrator does not return this to callers directly; it
	// skips the offending code point and continues (spec.md §7).
	ErrGlyphLoadFailed = errors.New("atlaserr: glyph failed to load")

	// ErrPackingOverflow means no bin size up to the hard cap could
	// fit every glyph. Unlike the reference engine, no partial image
	// or descriptor is returned alongside this error.
	ErrPackingOverflow = errors.New("atlaserr: glyphs do not fit within the atlas size cap")

	// ErrCompressionFailure means PNG IDAT compression failed.
	ErrCompressionFailure = errors.New("atlaserr: png compression failed")

	// ErrTransportDecode means a request frame could not be decoded.
	// Only the transport adapter uses this, in its log lines; the core
	// never sees it.
	ErrTransportDecode = errors.New("atlaserr: malformed request frame")
)
