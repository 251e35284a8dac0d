// Package geom provides the small integer rectangle type shared by the
// packer, sizer, and compositor stages of the atlas pipeline.
package geom

// Rect is an axis-aligned integer rectangle expressed as an origin
// corner plus extent, matching the packer's native representation.
// A placed rectangle always has W > 0 and H > 0; the zero value is
// used as the packer's "no fit" sentinel.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r is the zero-value sentinel rectangle.
func (r Rect) Empty() bool {
	return r.W == 0 && r.H == 0
}

// Right returns the exclusive right edge (X + W).
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge (Y + H).
func (r Rect) Bottom() int { return r.Y + r.H }

// ContainedIn reports whether r lies entirely within other.
func (r Rect) ContainedIn(other Rect) bool {
	return r.X >= other.X && r.Y >= other.Y &&
		r.Right() <= other.Right() && r.Bottom() <= other.Bottom()
}

// Intersects reports whether r and other overlap on both axes with
// strict interior overlap — rectangles that merely share an edge do
// not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}
