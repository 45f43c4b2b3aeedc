package sim

import "github.com/chewxy/math32"

// Vec2 is a 2D vector in world units (meters). Value type; all methods return
// new vectors instead of mutating.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// DistanceTo returns the distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float32 {
	return v.Sub(o).Length()
}
