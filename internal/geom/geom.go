package geom

import (
	"image"
	"math"
)

// Point is a position in screen coordinates. Drag endpoints arrive in
// whatever order the pointer produced them; Normalize puts them in order.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned rectangle with float64 edges. A normalized Rect
// has X0 <= X1 and Y0 <= Y1; the constructors here only produce normalized
// rectangles, so Width and Height are never negative on their output.
type Rect struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// FromSize builds the rectangle anchored at the origin with the given size.
func FromSize(w, h float64) Rect { return Rect{X1: w, Y1: h} }

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Area returns r's area. Zero area means "no selection" to callers.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Union returns the smallest rectangle containing both r and s. An empty
// operand contributes nothing.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, s.X0),
		Y0: math.Min(r.Y0, s.Y0),
		X1: math.Max(r.X1, s.X1),
		Y1: math.Max(r.Y1, s.Y1),
	}
}

// Outset grows r by m on every side. Negative m shrinks it.
func (r Rect) Outset(m float64) Rect {
	return Rect{X0: r.X0 - m, Y0: r.Y0 - m, X1: r.X1 + m, Y1: r.Y1 + m}
}

// Contains reports whether p lies inside r, treating X1/Y1 as exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// ImageRect converts r to integer pixel coordinates. The origin truncates
// after flooring at zero and the size truncates fractional extents, matching
// the clamp contract: a rect already clamped to the source bounds can never
// index outside them.
func (r Rect) ImageRect() image.Rectangle {
	x := int(math.Max(0, r.X0))
	y := int(math.Max(0, r.Y0))
	w := int(r.Width())
	h := int(r.Height())
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return image.Rect(x, y, x+w, y+h)
}

// Normalize returns the axis-aligned rectangle spanned by two arbitrary
// points. It is total and symmetric in its arguments; the result always has
// non-negative width and height.
func Normalize(p0, p1 Point) Rect {
	return Rect{
		X0: math.Min(p0.X, p1.X),
		Y0: math.Min(p0.Y, p1.Y),
		X1: math.Max(p0.X, p1.X),
		Y1: math.Max(p0.Y, p1.Y),
	}
}

// ClampToBounds clips r to [0,w) x [0,h). Each edge clamps independently, so
// a rectangle fully outside the bounds collapses to a zero-area rectangle at
// the nearest clamped corner. The operation is idempotent.
func ClampToBounds(r Rect, w, h float64) Rect {
	return Rect{
		X0: clamp(r.X0, 0, w),
		Y0: clamp(r.Y0, 0, h),
		X1: clamp(r.X1, 0, w),
		Y1: clamp(r.Y1, 0, h),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
