package world

// Rect describes a rectangular room by its corner bounds.
// X1/Y1 are the origin, X2/Y2 the origin plus width/height.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a room rectangle from an origin and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{
		X1: x,
		Y1: y,
		X2: x + w,
		Y2: y + h,
	}
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.X1 >= r.X2 || r.Y1 >= r.Y2
}

// Intersects returns true if this rectangle overlaps another, edges included.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
