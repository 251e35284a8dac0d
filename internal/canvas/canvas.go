// Package canvas implements the glyph compositor (component C5): an
// RGBA pixel buffer that glyph coverage is blitted into at
// packer-assigned positions.
package canvas

import "github.com/fontatlas/fontatlas/internal/geom"

// Canvas is a W*H RGBA raster. Its initial state is RGB=(255,255,255),
// A=0 everywhere — the "white-on-transparent" convention of spec.md
// §3, which lets a consumer multiplicatively tint glyphs by changing
// only the draw color, not the atlas contents.
type Canvas struct {
	W, H int
	Pix  []byte // 4*W*H bytes, row-major RGBA
}

// New allocates a canvas of the given dimensions, pre-filled white/transparent.
func New(w, h int) *Canvas {
	pix := make([]byte, 4*w*h)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = 255
		pix[i+1] = 255
		pix[i+2] = 255
		pix[i+3] = 0
	}
	return &Canvas{W: w, H: h, Pix: pix}
}

// set writes an RGBA pixel at (x, y), silently doing nothing if the
// coordinate falls outside the canvas — a defensive bounds check
// against packer bugs, computed in a width wide enough (int) to avoid
// the wraparound spec.md §9 warns about.
func (c *Canvas) set(x, y int, a byte) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	idx := (y*c.W + x) * 4
	if idx < 0 || idx+3 >= len(c.Pix) {
		return
	}
	c.Pix[idx+0] = 255
	c.Pix[idx+1] = 255
	c.Pix[idx+2] = 255
	c.Pix[idx+3] = a
}

// Blit writes an 8-bit coverage bitmap of width gw, height gh into the
// canvas so that coverage pixel (x, y) lands at (rect.X+x, rect.Y+y).
// Zero-coverage samples are skipped (they would be a no-op against
// the canvas's already-transparent background anyway).
func (c *Canvas) Blit(rect geom.Rect, gw, gh int, coverage []byte) {
	for y := 0; y < gh; y++ {
		row := y * gw
		for x := 0; x < gw; x++ {
			a := coverage[row+x]
			if a == 0 {
				continue
			}
			c.set(rect.X+x, rect.Y+y, a)
		}
	}
}
