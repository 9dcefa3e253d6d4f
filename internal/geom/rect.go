// Package geom holds the axis-aligned rectangle primitive shared by the
// physics engine, the tile map and the camera.
package geom

// Number is any numeric domain a Rect can be expressed in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect[T Number] struct {
	X, Y, W, H T
}

// Box is the world-space rectangle used by the physics engine.
type Box = Rect[float64]

// Vec is a world-space 2D vector.
type Vec struct {
	X, Y float64
}

// NewRect returns the rectangle (x, y, w, h).
func NewRect[T Number](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect[T]) Right() T { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect[T]) Bottom() T { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect[T]) Center() (T, T) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether the open interiors of r and other overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect[T]) Intersects(other Rect[T]) bool {
	if r.Right() <= other.X || other.Right() <= r.X {
		return false
	}
	if r.Bottom() <= other.Y || other.Bottom() <= r.Y {
		return false
	}
	return true
}

// Translated returns a copy of r offset by (dx, dy).
func (r Rect[T]) Translated(dx, dy T) Rect[T] {
	r.X += dx
	r.Y += dy
	return r
}

// Point is anything with a position in the rectangle's numeric domain.
type Point[T Number] interface {
	X() T
	Y() T
}

// At returns r moved from local space into the space of p.
func At[T Number](r Rect[T], p Point[T]) Rect[T] {
	return r.Translated(p.X(), p.Y())
}
