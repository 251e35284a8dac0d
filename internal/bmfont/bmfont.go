// Package bmfont emits the AngelCode BMFont text descriptor
// (component C6): one info/common/page triple plus one char line per
// placed code point, consistent with what the compositor (C5) wrote
// into the atlas image.
package bmfont

import (
	"fmt"
	"strings"
)

// Info mirrors the font-wide "info" line.
type Info struct {
	Face     string
	Size     int
	Padding  int
	Spacing  int
}

// Common mirrors the font-wide "common" line.
type Common struct {
	LineHeight int
	ScaleW     int
	ScaleH     int
}

// CharLine is one glyph's placement and metrics, already adjusted for
// effectPadding and the global x/y offsets per spec.md §4.6.
type CharLine struct {
	ID                                  rune
	X, Y, Width, Height                 int
	XOffset, YOffset, XAdvance          int
}

// Build renders the complete descriptor text: info, common, page,
// "chars count=N", then one char line per entry in chars, in the
// order given (the orchestrator passes them in the same
// sorted-by-height order the compositor used — §5 notes that final
// pixel content, and therefore this listing, is otherwise
// order-independent for distinct code points).
func Build(info Info, common Common, chars []CharLine) string {
	var b strings.Builder

	fmt.Fprintf(&b, "info face=%q size=%d bold=0 italic=0 charset=\"\" unicode=1 stretchH=100 smooth=1 aa=1 padding=%d,%d,%d,%d spacing=%d,%d outline=0\n",
		info.Face, info.Size, info.Padding, info.Padding, info.Padding, info.Padding, info.Spacing, info.Spacing)

	base := float64(common.LineHeight) * 0.8
	fmt.Fprintf(&b, "common lineHeight=%d base=%s scaleW=%d scaleH=%d pages=1 packed=0 alphaChnl=0 redChnl=0 greenChnl=0 blueChnl=0\n",
		common.LineHeight, formatBase(base), common.ScaleW, common.ScaleH)

	b.WriteString("page id=0 file=\"texture.png\"\n")

	fmt.Fprintf(&b, "chars count=%d\n", len(chars))
	for _, c := range chars {
		fmt.Fprintf(&b, "char id=%d x=%d y=%d width=%d height=%d xoffset=%d yoffset=%d xadvance=%d page=0 chnl=15\n",
			c.ID, c.X, c.Y, c.Width, c.Height, c.XOffset, c.YOffset, c.XAdvance)
	}

	return b.String()
}

// formatBase prints base the way the reference engine's stream
// insertion did: at most six significant digits with trailing zeros
// dropped, so 48*0.8 prints as "38.4" rather than the float64's full
// "38.400000000000006", and an integral base prints without a ".0".
func formatBase(v float64) string {
	s := fmt.Sprintf("%.6g", v)
	return s
}
