package gfx

// Point is an immutable 2D integer coordinate. The coordinate space has the
// origin in the top left corner with the axes extending right and down; an
// integer coordinate addresses a pixel center.
type Point struct {
	X, Y int32
}

// PointZero is the origin.
var PointZero = Point{}

// Pt is a convenience function to create a Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// WithX returns the point with its x coordinate replaced.
func (p Point) WithX(x int32) Point {
	return Point{X: x, Y: p.Y}
}

// WithY returns the point with its y coordinate replaced.
func (p Point) WithY(y int32) Point {
	return Point{X: p.X, Y: y}
}

// Shift returns the point moved by (dx, dy). The addition wraps around on
// int32 overflow; shifting is on hot paths and does not pay for a range
// check.
func (p Point) Shift(dx, dy int32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Compare orders points by y, then x, so that sorting a slice of points
// yields line-by-line iteration order. It returns -1, 0 or 1.
func (p Point) Compare(q Point) int {
	switch {
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	}
	return 0
}

// Less reports whether p sorts before q in row-major order.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}
