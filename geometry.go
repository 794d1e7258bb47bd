package menu

// Point is a 2D coordinate in host pixels.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in host pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. Values are immutable once produced;
// layout passes build new rects rather than patching old ones.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p falls inside the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}
