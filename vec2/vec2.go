// Package vec2 implements a 2D vector value type for simulation code.
//
// Pure operations use value receivers and return new vectors. The in-place
// variants (NormalizeInPlace, RotateInPlace, TrimInPlace) mutate the receiver
// and return it, so they can be chained or used on hot paths without copies.
package vec2

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector. The zero value is the origin.
type Vector2 struct {
	X, Y float64
}

// Zero is a shared instance of the origin vector. It is read-only by
// convention: calling an in-place method on it changes it for every holder.
var Zero = &Vector2{}

func New(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// Clone returns an independent copy.
func (v Vector2) Clone() Vector2 { return v }

// Unpack returns both components.
func (v Vector2) Unpack() (float64, float64) { return v.X, v.Y }

func (v Vector2) String() string { return fmt.Sprintf("(%g,%g)", v.X, v.Y) }

func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Permul is the componentwise product.
func (v Vector2) Permul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }

func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Div divides both components by s. There is no zero guard: s == 0 yields
// Inf or NaN components per IEEE semantics.
func (v Vector2) Div(s float64) Vector2 { return Vector2{v.X / s, v.Y / s} }

func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross is the 2D cross product scalar (signed area).
func (v Vector2) Cross(o Vector2) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vector2) Eq(o Vector2) bool { return v.X == o.X && v.Y == o.Y }

// Lt orders lexicographically: by X, then by Y.
func (v Vector2) Lt(o Vector2) bool { return v.X < o.X || (v.X == o.X && v.Y < o.Y) }

// Le holds iff both components compare <=. Note this is a componentwise
// partial order, not the reflexive closure of Lt: for v=(1,2), o=(2,1)
// neither v.Le(o) nor o.Le(v) holds.
func (v Vector2) Le(o Vector2) bool { return v.X <= o.X && v.Y <= o.Y }

// Len2 is the squared magnitude.
func (v Vector2) Len2() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vector2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

func (v Vector2) Dist(o Vector2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (v Vector2) Dist2(o Vector2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// NormalizeInPlace scales the vector to unit length. A zero vector is left
// unchanged.
func (v *Vector2) NormalizeInPlace() *Vector2 {
	l := v.Len()
	if l > 0 {
		v.X /= l
		v.Y /= l
	}
	return v
}

// Normalized returns a unit-length copy; the zero vector stays zero.
func (v Vector2) Normalized() Vector2 {
	c := v.Clone()
	c.NormalizeInPlace()
	return c
}

// RotateInPlace rotates by phi radians, counter-clockwise for y pointing up.
func (v *Vector2) RotateInPlace(phi float64) *Vector2 {
	c, s := math.Cos(phi), math.Sin(phi)
	x := v.X
	v.X = c*x - s*v.Y
	v.Y = s*x + c*v.Y
	return v
}

func (v Vector2) Rotated(phi float64) Vector2 {
	c := v.Clone()
	c.RotateInPlace(phi)
	return c
}

// Perpendicular returns the vector rotated a quarter turn counter-clockwise.
func (v Vector2) Perpendicular() Vector2 { return Vector2{-v.Y, v.X} }

// ProjectOn returns the projection of v onto o.
func (v Vector2) ProjectOn(o Vector2) Vector2 {
	s := v.Dot(o) / o.Len2()
	return Vector2{s * o.X, s * o.Y}
}

// MirrorOn reflects v across the axis o.
func (v Vector2) MirrorOn(o Vector2) Vector2 {
	s := 2 * v.Dot(o) / o.Len2()
	return Vector2{s*o.X - v.X, s*o.Y - v.Y}
}

// TrimInPlace clamps the magnitude to maxLen. A vector already within the
// limit keeps its exact components. There is no guard for the zero vector:
// with maxLen == 0 the scale factor is NaN and both components become NaN.
func (v *Vector2) TrimInPlace(maxLen float64) *Vector2 {
	s := maxLen * maxLen / v.Len2()
	if s > 1 {
		s = 1
	} else {
		s = math.Sqrt(s)
	}
	v.X *= s
	v.Y *= s
	return v
}

func (v Vector2) Trimmed(maxLen float64) Vector2 {
	c := v.Clone()
	c.TrimInPlace(maxLen)
	return c
}

// AngleTo returns the signed angle from other to v, or the absolute angle of
// v when called without an argument.
func (v Vector2) AngleTo(other ...Vector2) float64 {
	if len(other) > 0 {
		o := other[0]
		return math.Atan2(v.Y, v.X) - math.Atan2(o.Y, o.X)
	}
	return math.Atan2(v.Y, v.X)
}
