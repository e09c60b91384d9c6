// Package geometry provides the 2D point and vector arithmetic used by the
// physics simulation and the rendering collaborators.
package geometry

import "math"

// Point is a position in graph space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector shares the representation of Point but carries velocity or force
// semantics. The zero value is the zero vector.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the translation of p by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector pointing from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Clamp restricts both coordinates of p into [0, bound].
func (p Point) Clamp(bound float64) Point {
	return Point{
		X: math.Max(0, math.Min(bound, p.X)),
		Y: math.Max(0, math.Min(bound, p.Y)),
	}
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference of v and w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Neg returns v with both components negated.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Mag returns the magnitude of v.
func (v Vector) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// BreakDown decomposes v into its magnitude and unit direction. The zero
// vector decomposes into magnitude 0 and the zero direction; callers dividing
// by the magnitude must check it first, but the direction itself is always
// safe to use.
func (v Vector) BreakDown() (float64, Vector) {
	mag := v.Mag()
	if mag == 0 {
		return 0, Vector{}
	}
	return mag, Vector{X: v.X / mag, Y: v.Y / mag}
}
