package geometry

import "cmp"

// Point is an integer pixel position.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Min    Point
	Width  int
	Height int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.Min.X && p.X < r.Min.X+r.Width &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.Height
}

// ClampLocal bounds a surface-local point to [0, Width-1] x [0, Height-1].
// The rectangle must not be empty.
func (r Rect) ClampLocal(p Point) Point {
	return Point{
		X: Clamp(p.X, 0, r.Width-1),
		Y: Clamp(p.Y, 0, r.Height-1),
	}
}

// Clamp bounds value to [low, high].
func Clamp[T cmp.Ordered](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// LocalPosition converts a global pointer position into coordinates relative
// to the top-left corner of bounds.
func LocalPosition(bounds Rect, global Point) Point {
	return global.Sub(bounds.Min)
}
