package geom

import "math"

// snapEpsilon is the magnitude below which rotated components are forced to 0.
const snapEpsilon = 1e-5

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.DX*v.DX + v.DY*v.DY)
}

// Normalized clamps the length of v to maxLength. Vectors already within the
// bound are returned unchanged.
func (v Vector) Normalized(maxLength float64) Vector {
	length := v.Magnitude()
	if length > maxLength {
		return Vector{DX: v.DX / length * maxLength, DY: v.DY / length * maxLength}
	}
	return v
}

func (v Vector) Add(w Vector) Vector { return Vector{DX: v.DX + w.DX, DY: v.DY + w.DY} }
func (v Vector) Sub(w Vector) Vector { return Vector{DX: v.DX - w.DX, DY: v.DY - w.DY} }

// Translate moves p by v.
func (v Vector) Translate(p Point) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// DisplaceBack moves p by the negation of v.
func (v Vector) DisplaceBack(p Point) Point {
	return Point{X: p.X - v.DX, Y: p.Y - v.DY}
}

func (p Point) Translate(v Vector) Point    { return v.Translate(p) }
func (p Point) DisplaceBack(v Vector) Point { return v.DisplaceBack(p) }

func (v Vector) Scale(k float64) Vector { return Vector{DX: v.DX * k, DY: v.DY * k} }

// Scale is v.Scale(k) with the scalar first.
func Scale(k float64, v Vector) Vector { return v.Scale(k) }

// RotatedByDegrees rotates v counter-clockwise (y-up) by degrees.
func (v Vector) RotatedByDegrees(degrees float64) Vector {
	return v.RotatedByRadians(degrees * math.Pi / 180)
}

// RotatedByRadians rotates v counter-clockwise (y-up) by radians.
// Components that end up within 1e-5 of zero are set to exactly 0.
func (v Vector) RotatedByRadians(radians float64) Vector {
	sin, cos := math.Sincos(radians)

	dx := v.DX*cos - v.DY*sin
	dy := v.DX*sin + v.DY*cos

	if math.Abs(dx) < snapEpsilon {
		dx = 0
	}
	if math.Abs(dy) < snapEpsilon {
		dy = 0
	}
	return Vector{DX: dx, DY: dy}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) float64 { return a.DX*b.DX + a.DY*b.DY }

func (v Vector) Dot(w Vector) float64 { return Dot(v, w) }

// Reflected mirrors v across normal. normal must already be unit length;
// it is not normalized here.
func (v Vector) Reflected(normal Vector) Vector {
	d := 2 * Dot(v, normal)
	return Vector{DX: v.DX - d*normal.DX, DY: v.DY - d*normal.DY}
}

// Project returns the component of a along onto. The order matters.
// Projecting onto the zero vector yields NaN components.
func Project(a, onto Vector) Vector {
	return onto.Scale(Dot(a, onto) / Dot(onto, onto))
}

// AngleBetween returns the unsigned angle between a and b in radians, in [0, π].
// It is NaN when either vector has zero length.
func AngleBetween(a, b Vector) float64 {
	return math.Acos(Dot(a, b) / (a.Magnitude() * b.Magnitude()))
}
