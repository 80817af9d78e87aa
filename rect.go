package dragdrop

import "gioui.org/f32"

// Rectangle is an axis aligned rectangle in container coordinates. It contains
// the points with Min.X <= X < Max.X and Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max f32.Point
}

// Rect returns the rectangle spanning the two corners, in any order.
func Rect(x0, y0, x1, y1 float32) Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rectangle{Min: f32.Pt(x0, y0), Max: f32.Pt(x1, y1)}
}

// Dx returns the width.
func (r Rectangle) Dx() float32 { return r.Max.X - r.Min.X }

// Dy returns the height.
func (r Rectangle) Dy() float32 { return r.Max.Y - r.Min.Y }

// Size returns the width and height.
func (r Rectangle) Size() f32.Point { return f32.Pt(r.Dx(), r.Dy()) }

// Center returns the middle point.
func (r Rectangle) Center() f32.Point { return r.Min.Add(r.Max).Mul(0.5) }

// Empty reports whether the rectangle contains no point.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies inside the rectangle.
func (r Rectangle) Contains(p f32.Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Encloses reports whether s lies entirely inside r.
func (r Rectangle) Encloses(s Rectangle) bool {
	return r.Min.X <= s.Min.X && r.Min.Y <= s.Min.Y &&
		s.Max.X <= r.Max.X && s.Max.Y <= r.Max.Y
}

// Intersect returns the largest rectangle inside both r and s,
// or the zero rectangle when they do not overlap.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if r.Empty() {
		return Rectangle{}
	}
	return r
}

// Add translates the rectangle by p.
func (r Rectangle) Add(p f32.Point) Rectangle {
	return Rectangle{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}
