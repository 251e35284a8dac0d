// Package packer implements the MaxRects bin-packing heuristic used to
// place glyph rectangles inside an atlas (component C3). Placement
// uses Best-Short-Side-Fit scoring with guillotine splitting and
// free-list pruning, exactly as described in spec.md §4.3.
package packer

import "github.com/fontatlas/fontatlas/internal/geom"

// MaxRects places axis-aligned rectangles into a fixed-size bin. It
// holds no state beyond the bin dimensions and the current free-rect
// list, so a fresh instance is created per packing attempt (per
// spec.md §9: packer state must not be shared across requests).
type MaxRects struct {
	binW, binH int
	free       []geom.Rect
}

// New creates a packer and immediately initializes it to a W×H bin.
func New(w, h int) *MaxRects {
	p := &MaxRects{}
	p.Init(w, h)
	return p
}

// Init resets the free list to the single rectangle covering the
// whole bin, discarding any previous placements.
func (p *MaxRects) Init(w, h int) {
	p.binW, p.binH = w, h
	p.free = p.free[:0]
	p.free = append(p.free, geom.Rect{X: 0, Y: 0, W: w, H: h})
}

// Insert places a w×h rectangle using Best-Short-Side-Fit and returns
// its position. The returned rectangle is the zero value if no free
// rectangle in the current list can accommodate the request — the
// packer's only failure signal (spec.md §4.3).
func (p *MaxRects) Insert(w, h int) geom.Rect {
	best := geom.Rect{}
	bestShort, bestLong := -1, -1
	found := false

	for _, f := range p.free {
		if f.W < w || f.H < h {
			continue
		}
		leftoverH := abs(f.W - w)
		leftoverV := abs(f.H - h)
		short := min(leftoverH, leftoverV)
		long := max(leftoverH, leftoverV)

		if !found || short < bestShort || (short == bestShort && long < bestLong) {
			best = geom.Rect{X: f.X, Y: f.Y, W: w, H: h}
			bestShort, bestLong = short, long
			found = true
		}
	}

	if !found {
		return geom.Rect{}
	}

	p.splitAndPrune(best)
	return best
}

// splitAndPrune removes every free rectangle that strictly overlaps
// placed, replaces it with up to four guillotine-clipped residuals,
// then prunes any residual fully contained in another free rectangle.
func (p *MaxRects) splitAndPrune(placed geom.Rect) {
	kept := p.free[:0:0]
	for _, f := range p.free {
		if !f.Intersects(placed) {
			kept = append(kept, f)
			continue
		}
		kept = append(kept, splitFreeNode(f, placed)...)
	}
	p.free = prune(kept)
}

// splitFreeNode guillotine-splits a single free rectangle f against
// the newly placed rectangle, emitting the residual slabs above,
// below, left of, and right of placed that remain within f.
func splitFreeNode(f, placed geom.Rect) []geom.Rect {
	var out []geom.Rect

	if placed.X < f.Right() && placed.Right() > f.X {
		if placed.Y > f.Y && placed.Y < f.Bottom() {
			out = append(out, geom.Rect{X: f.X, Y: f.Y, W: f.W, H: placed.Y - f.Y})
		}
		if placed.Bottom() < f.Bottom() {
			out = append(out, geom.Rect{X: f.X, Y: placed.Bottom(), W: f.W, H: f.Bottom() - placed.Bottom()})
		}
	}

	if placed.Y < f.Bottom() && placed.Bottom() > f.Y {
		if placed.X > f.X && placed.X < f.Right() {
			out = append(out, geom.Rect{X: f.X, Y: f.Y, W: placed.X - f.X, H: f.H})
		}
		if placed.Right() < f.Right() {
			out = append(out, geom.Rect{X: placed.Right(), Y: f.Y, W: f.Right() - placed.Right(), H: f.H})
		}
	}

	return out
}

// prune removes any rectangle fully contained in another, preserving
// the relative order of survivors (insertion order is the packer's
// documented tie-break contract for Best-Short-Side-Fit, so later
// stages must not reorder the free list for any other reason).
func prune(rects []geom.Rect) []geom.Rect {
	dead := make([]bool, len(rects))
	for i := range rects {
		if dead[i] {
			continue
		}
		for j := range rects {
			if i == j || dead[j] {
				continue
			}
			if rects[i].ContainedIn(rects[j]) {
				dead[i] = true
				break
			}
		}
	}
	out := rects[:0]
	for i, r := range rects {
		if !dead[i] {
			out = append(out, r)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
