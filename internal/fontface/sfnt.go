package fontface

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// SfntFace is the default, pure-Go Face implementation for real
// TrueType/OpenType files. It parses outlines with
// golang.org/x/image/font/sfnt and rasterizes them to 8-bit coverage
// with golang.org/x/image/vector, the same two packages the rest of
// the x/image font stack (font/opentype, font/basicfont's neighbors)
// builds on.
type SfntFace struct {
	font *sfnt.Font
	buf  sfnt.Buffer

	ppem     fixed.Int26_6
	ascender int
}

// NewSfntFaceFromFile opens a TrueType/OpenType file and returns a
// Face over it. sfnt.Parse keeps its own copy of the bytes, so no
// file handle outlives this call.
func NewSfntFaceFromFile(path string) (*SfntFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontface: reading %s: %w", path, err)
	}
	return NewSfntFaceFromBytes(data)
}

// NewSfntFaceFromBytes parses font file bytes already in memory.
func NewSfntFaceFromBytes(data []byte) (*SfntFace, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontface: parsing font data: %w", err)
	}
	return &SfntFace{font: f, ppem: fixed.I(12)}, nil
}

func (f *SfntFace) SetPixelSize(px int) error {
	if px <= 0 {
		return ErrInvalidPixelSize
	}
	f.ppem = fixed.I(px)
	m, err := f.font.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return fmt.Errorf("fontface: reading metrics: %w", err)
	}
	f.ascender = m.Ascent.Ceil()
	return nil
}

func (f *SfntFace) AscenderPx() int { return f.ascender }

func (f *SfntFace) Close() error { return nil }

func (f *SfntFace) LoadAndRender(cp rune) (Glyph, error) {
	idx, err := f.font.GlyphIndex(&f.buf, cp)
	if err != nil {
		return Glyph{}, fmt.Errorf("fontface: glyph index lookup: %w", err)
	}
	if idx == 0 {
		return Glyph{}, ErrNoGlyph
	}

	adv, err := f.font.GlyphAdvance(&f.buf, idx, f.ppem, font.HintingNone)
	if err != nil {
		return Glyph{}, fmt.Errorf("fontface: glyph advance: %w", err)
	}
	xadv := adv.Round()

	segs, err := f.font.LoadGlyph(&f.buf, idx, f.ppem, nil)
	if err != nil {
		return Glyph{}, fmt.Errorf("fontface: loading glyph outline: %w", err)
	}
	if len(segs) == 0 {
		// A glyph with no outline (e.g. space) still has an advance.
		return Glyph{CP: cp, XAdv: xadv}, nil
	}

	minX, minY, maxX, maxY := segmentBounds(segs)
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return Glyph{CP: cp, XAdv: xadv}, nil
	}

	coverage := rasterizeSegments(segs, minX, minY, w, h)

	return Glyph{
		CP:       cp,
		W:        w,
		H:        h,
		XAdv:     xadv,
		XOff:     minX,
		YOff:     f.ascender + minY,
		Coverage: coverage,
	}, nil
}

// segmentBounds computes this glyph's own bounding box in whole
// pixels by scanning every point in segs (including quadratic/cubic
// control points, a safe superset of the curves' actual extent),
// since sfnt.Font exposes only a font-wide union of all glyphs'
// bounds, not a per-glyph one.
func segmentBounds(segs []sfnt.Segment) (minX, minY, maxX, maxY int) {
	first := true
	consider := func(p fixed.Point26_6) {
		x, y := p.X.Floor(), p.Y.Floor()
		xc, yc := p.X.Ceil(), p.Y.Ceil()
		if first {
			minX, maxX = x, xc
			minY, maxY = y, yc
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if xc > maxX {
			maxX = xc
		}
		if y < minY {
			minY = y
		}
		if yc > maxY {
			maxY = yc
		}
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
			consider(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			consider(seg.Args[0])
			consider(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			consider(seg.Args[0])
			consider(seg.Args[1])
			consider(seg.Args[2])
		}
	}
	return
}

// rasterizeSegments draws sfnt.Segments, already at device scale via
// the ppem passed to LoadGlyph, translated so the glyph's bounding
// box origin sits at (0,0), into a w×h 8-bit alpha mask.
func rasterizeSegments(segs []sfnt.Segment, minX, minY, w, h int) []byte {
	z := vector.NewRasterizer(w, h)
	shiftX := float32(minX)
	shiftY := float32(minY)
	toVec := func(p fixed.Point26_6) f32.Vec2 {
		return f32.Vec2{float32(p.X) / 64, float32(p.Y) / 64}
	}
	shift := func(v f32.Vec2) f32.Vec2 {
		return f32.Vec2{v[0] - shiftX, v[1] - shiftY}
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			z.MoveTo(shift(toVec(seg.Args[0])))
		case sfnt.SegmentOpLineTo:
			z.LineTo(shift(toVec(seg.Args[0])))
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(shift(toVec(seg.Args[0])), shift(toVec(seg.Args[1])))
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(shift(toVec(seg.Args[0])), shift(toVec(seg.Args[1])), shift(toVec(seg.Args[2])))
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst.Pix
}
