package geom

import (
	"fmt"
	"image"
	"math"
)

// Vector is a 2D displacement.
type Vector struct {
	DX, DY float64
}

// Point is a 2D position.
type Point struct {
	X, Y float64
}

func V(dx, dy float64) Vector { return Vector{DX: dx, DY: dy} }
func Pt(x, y float64) Point   { return Point{X: x, Y: y} }

func (v Vector) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.DX, v.DY) }
func (p Point) String() string  { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Between returns the vector that moves from to to.
func Between(from, to Point) Vector {
	return Vector{DX: to.X - from.X, DY: to.Y - from.Y}
}

func (v Vector) IsZero() bool { return v.DX == 0 && v.DY == 0 }

// IsNaN reports whether at least one component is NaN.
func (v Vector) IsNaN() bool { return math.IsNaN(v.DX) || math.IsNaN(v.DY) }

// IsInf reports whether at least one component is infinite.
func (v Vector) IsInf() bool { return math.IsInf(v.DX, 0) || math.IsInf(v.DY, 0) }

func (v Vector) Neg() Vector { return Vector{DX: -v.DX, DY: -v.DY} }

// Cross returns the z component of the 3D cross product of v and w.
// It is positive when w lies counter-clockwise of v.
func (v Vector) Cross(w Vector) float64 { return v.DX*w.DY - v.DY*w.DX }

// Pixel rounds p to the nearest integer pixel coordinate.
func (p Point) Pixel() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}
