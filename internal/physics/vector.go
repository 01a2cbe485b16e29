package physics

import "math"

// World bounds. Every axis runs from WorldMin to WorldMax and wraps around.
const (
	WorldMin = -1.0
	WorldMax = 1.0
)

// Vec2 is a 2D point or vector in normalized world coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// FromAngle returns the unit vector pointing at theta radians
// (0 = +X, counter-clockwise positive).
func FromAngle(theta float64) Vec2 {
	return Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
}

// Wrap applies toroidal wraparound. A coordinate past one edge is moved onto
// the opposite edge; coordinates inside the bounds are returned untouched.
func Wrap(v Vec2) Vec2 {
	v.X = wrapAxis(v.X)
	v.Y = wrapAxis(v.Y)
	return v
}

func wrapAxis(c float64) float64 {
	if c > WorldMax {
		return WorldMin
	}
	if c < WorldMin {
		return WorldMax
	}
	return c
}

// InBounds reports whether v lies inside the world on both axes.
func InBounds(v Vec2) bool {
	return v.X >= WorldMin && v.X <= WorldMax && v.Y >= WorldMin && v.Y <= WorldMax
}
