// Package fontatlas generates bitmap font atlases: given a run of text,
// a font, a target pixel size, and packing parameters, it produces an
// RGBA PNG containing one anti-aliased glyph per distinct code point
// and an AngelCode BMFont text descriptor mapping each code point to
// its rectangle and rendering metrics.
//
// The pipeline is deduplicate code points, rasterize each through a
// pluggable font face, pack the resulting rectangles with MaxRects
// (growing the bin on overflow when requested), composite coverage
// into a canvas, then emit the descriptor and PNG bytes. See
// SPEC_FULL.md for the full component breakdown.
package fontatlas

import (
	"fmt"
	"sort"

	"github.com/fontatlas/fontatlas/internal/atlaserr"
	"github.com/fontatlas/fontatlas/internal/bmfont"
	"github.com/fontatlas/fontatlas/internal/canvas"
	"github.com/fontatlas/fontatlas/internal/codepoints"
	"github.com/fontatlas/fontatlas/internal/config"
	"github.com/fontatlas/fontatlas/internal/fontface"
	"github.com/fontatlas/fontatlas/internal/geom"
	"github.com/fontatlas/fontatlas/internal/packer"
	"github.com/fontatlas/fontatlas/internal/pngenc"
	"github.com/fontatlas/fontatlas/internal/sizer"
)

// Request mirrors spec.md §6's request parameter table. Zero values
// are not defaults; call DefaultRequest for a request pre-filled with
// the documented defaults.
type Request struct {
	Text  string
	Font  string
	Size  int
	Width int

	Padding       int
	Spacing       int
	AutoPack      bool
	PackMode      config.PackMode
	EffectPadding int

	GlobalXAdvance int
	GlobalXOffset  int
	GlobalYOffset  int
}

// DefaultRequest returns a Request pre-filled with spec.md §6's
// documented defaults.
func DefaultRequest() Request {
	return Request{
		Text:     "ABC",
		Font:     "Arial",
		Size:     48,
		Width:    512,
		Padding:  2,
		Spacing:  2,
		PackMode: config.PackPOT,
	}
}

// Response is the pair of output blobs the orchestrator returns per
// spec.md §6: raw PNG bytes and the BMFont descriptor text. The
// transport adapter (cmd/atlasd) is responsible for base64-encoding
// Image before putting it on the wire.
type Response struct {
	Image      []byte
	Descriptor string
}

type placedGlyph struct {
	g    fontface.Glyph
	rect geom.Rect // outer rect returned by the packer (includes padding/effectPadding/spacing)
}

// Generate runs the full pipeline for one request (component C8).
//
// On ErrFontUnresolved it returns an empty, zero-size Response with no
// error, matching spec.md §7 ("non-fatal... empty-but-valid
// response"). On ErrPackingOverflow it returns no image or descriptor
// at all, per the Open Question resolved in SPEC_FULL.md §7.
func Generate(req Request) (Response, error) {
	resolver := fontface.NewResolver()
	defer resolver.Close()
	return generate(req, resolver)
}

// generate is Generate's body, parameterized over the resolver. It is
// unexported, so only code in this package can pass in a resolver;
// Generate (and therefore cmd/atlasd) uses a fresh one per request.
func generate(req Request, resolver *fontface.Resolver) (Response, error) {
	face, displayName, err := resolver.Resolve(req.Font)
	if err != nil {
		return Response{}, nil
	}

	if err := face.SetPixelSize(req.Size); err != nil {
		return Response{}, fmt.Errorf("fontatlas: %w", err)
	}

	cps := codepoints.Unique(req.Text)

	glyphs := make([]fontface.Glyph, 0, len(cps))
	var totalArea int64
	var maxEffectW, maxEffectH int

	p, e, s := req.Padding, req.EffectPadding, req.Spacing
	for _, cp := range cps {
		g, err := face.LoadAndRender(cp)
		if err != nil {
			continue // GlyphLoadFailed: skip, per spec.md §7
		}
		glyphs = append(glyphs, g)

		if g.W == 0 || g.H == 0 {
			continue
		}
		effW := g.W + 2*p + 2*e + s
		effH := g.H + 2*p + 2*e + s
		totalArea += int64(effW) * int64(effH)
		if effW > maxEffectW {
			maxEffectW = effW
		}
		if effH > maxEffectH {
			maxEffectH = effH
		}
	}

	sort.SliceStable(glyphs, func(i, j int) bool {
		return glyphs[i].H > glyphs[j].H
	})

	side := sizer.Initial(req.AutoPack, req.PackMode, req.Width, sizer.Estimate{
		TotalArea:  totalArea,
		MaxEffectW: maxEffectW,
		MaxEffectH: maxEffectH,
	})

	var placed []placedGlyph
	for {
		pk := packer.New(side, side)
		placed = placed[:0]
		ok := true
		for _, g := range glyphs {
			if g.W == 0 || g.H == 0 {
				placed = append(placed, placedGlyph{g: g})
				continue
			}
			r := pk.Insert(g.W+2*p+2*e+s, g.H+2*p+2*e+s)
			if r.Empty() {
				ok = false
				break
			}
			placed = append(placed, placedGlyph{g: g, rect: r})
		}
		if ok {
			break
		}
		if !req.AutoPack {
			return Response{}, atlaserr.ErrPackingOverflow
		}
		next, err := sizer.Grow(req.PackMode, side)
		if err != nil {
			return Response{}, fmt.Errorf("%w: %v", atlaserr.ErrPackingOverflow, err)
		}
		side = next
	}

	cv := canvas.New(side, side)
	chars := make([]bmfont.CharLine, 0, len(placed))
	for _, pg := range placed {
		g := pg.g
		if g.W == 0 || g.H == 0 {
			chars = append(chars, bmfont.CharLine{
				ID:       g.CP,
				XAdvance: g.XAdv + req.GlobalXAdvance,
			})
			continue
		}

		innerX := pg.rect.X + p + e
		innerY := pg.rect.Y + p + e
		cv.Blit(geom.Rect{X: innerX, Y: innerY, W: g.W, H: g.H}, g.W, g.H, g.Coverage)

		chars = append(chars, bmfont.CharLine{
			ID:       g.CP,
			X:        pg.rect.X + p,
			Y:        pg.rect.Y + p,
			Width:    g.W + 2*e,
			Height:   g.H + 2*e,
			XOffset:  g.XOff - e + req.GlobalXOffset,
			YOffset:  g.YOff - e + req.GlobalYOffset,
			XAdvance: g.XAdv + req.GlobalXAdvance,
		})
	}

	descriptor := bmfont.Build(
		bmfont.Info{Face: displayName, Size: req.Size, Padding: req.Padding, Spacing: req.Spacing},
		bmfont.Common{LineHeight: req.Size, ScaleW: side, ScaleH: side},
		chars,
	)

	png, err := pngenc.Encode(cv.Pix, cv.W, cv.H)
	if err != nil {
		return Response{}, fmt.Errorf("%w", atlaserr.ErrCompressionFailure)
	}

	return Response{Image: png, Descriptor: descriptor}, nil
}
