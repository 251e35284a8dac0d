package fontface

// EmbeddedFace is a dependency-free placeholder engine used when no
// real font file can be resolved (the resolver's EmbeddedFallback
// path, SPEC_FULL.md §4.10) and in tests that must not depend on
// filesystem fonts. It has no glyph outlines of its own; it renders
// every printable code point other than space (which gets only an
// advance) as a hollow box at the glyph's design
// cell, following the same convention real font engines use for a
// face's .notdef glyph. Coverage data is synthesized, not looked up
// from a packed bitmap table, but the cell geometry (baseline,
// design height, printable range) follows the layout of a classic
// embedded raster font: one fixed-height design cell, one baseline,
// one contiguous run of representable code points.
//
// This is adapted from the teacher library's binary embedded raster
// font format (height byte, baseline byte, start-char byte, glyph
// table), simplified to a procedural box so no static bitmap table
// needs to ship with the binary.
type EmbeddedFace struct {
	designW, designH int // design-units cell size at the default scale
	designBaseline   int // rows above the baseline, in design units
	startChar        rune
	numChars         int

	scale int // current integer upscale factor, set by SetPixelSize
}

// NewEmbeddedFace returns a box-glyph face covering printable ASCII.
func NewEmbeddedFace() *EmbeddedFace {
	return &EmbeddedFace{
		designW:        5,
		designH:        7,
		designBaseline: 6,
		startChar:      0x20,
		numChars:       0x7F - 0x20, // U+0020..U+007E
		scale:          1,
	}
}

func (f *EmbeddedFace) SetPixelSize(px int) error {
	if px <= 0 {
		return ErrInvalidPixelSize
	}
	f.scale = px / f.designH
	if f.scale < 1 {
		f.scale = 1
	}
	return nil
}

func (f *EmbeddedFace) AscenderPx() int {
	return f.designBaseline * f.scale
}

func (f *EmbeddedFace) Close() error { return nil }

func (f *EmbeddedFace) inRange(cp rune) bool {
	return cp >= f.startChar && cp < f.startChar+rune(f.numChars)
}

func (f *EmbeddedFace) LoadAndRender(cp rune) (Glyph, error) {
	if !f.inRange(cp) {
		return Glyph{}, ErrNoGlyph
	}

	advance := (f.designW + 1) * f.scale

	if cp == ' ' {
		return Glyph{CP: cp, XAdv: advance}, nil
	}

	w := f.designW * f.scale
	h := f.designH * f.scale
	coverage := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			onBorder := x == 0 || y == 0 || x == w-1 || y == h-1
			if onBorder {
				coverage[y*w+x] = 255
			}
		}
	}

	return Glyph{
		CP:       cp,
		W:        w,
		H:        h,
		XAdv:     advance,
		XOff:     0,
		YOff:     f.AscenderPx() - h,
		Coverage: coverage,
	}, nil
}
