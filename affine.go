package geom

import "math"

// Affine is a 2D affine transform, stored as the six coefficients of the
// augmented 3x3 matrix
//
//	| a  b  0 |
//	| c  d  0 |
//	| e  f  1 |
//
// applied to a row vector [x y 1], matching the convention already used by
// TranslatePts/RotatePts/ScalePts in pt.go (point as row vector, matrix on
// the right).
type Affine struct {
	a, b, c, d, e, f float64
}

// AffineIdentity is the identity transform.
var AffineIdentity = Affine{a: 1, d: 1}

// NewAffine builds an Affine from its six coefficients.
func NewAffine(a, b, c, d, e, f float64) Affine {
	return Affine{a: a, b: b, c: c, d: d, e: e, f: f}
}

// AffineTranslate builds a pure translation.
func AffineTranslate(v Vector) Affine {
	i, j := v.Units()
	return Affine{a: 1, d: 1, e: float64(i), f: float64(j)}
}

// AffineScale builds a pure scale about the origin.
func AffineScale(sx, sy float64) Affine {
	return Affine{a: sx, d: sy}
}

// AffineRotate builds a pure rotation about the origin, anti-clockwise.
func AffineRotate(theta Radians) Affine {
	s, c := math.Sin(float64(theta)), math.Cos(float64(theta))
	return Affine{a: c, b: s, c: -s, d: c}
}

// Coefficients returns the six raw matrix coefficients a,b,c,d,e,f.
func (m Affine) Coefficients() (a, b, c, d, e, f float64) {
	return m.a, m.b, m.c, m.d, m.e, m.f
}

// TransformPt applies the transform to a point.
func (m Affine) TransformPt(p Pt) Pt {
	x, y := p.X(), p.Y()
	nx := float64(x)*m.a + float64(y)*m.c + m.e
	ny := float64(x)*m.b + float64(y)*m.d + m.f
	return PtXy(Length(nx), Length(ny))
}

// TransformVector applies the linear part of the transform to a vector,
// ignoring translation.
func (m Affine) TransformVector(v Vector) Vector {
	i, j := v.Units()
	ni := float64(i)*m.a + float64(j)*m.c
	nj := float64(i)*m.b + float64(j)*m.d
	return VectorIj(Length(ni), Length(nj))
}

// Multiply composes two transforms: (p * a) * b == p * (a.Multiply(b)).
func (a Affine) Multiply(b Affine) Affine {
	return Affine{
		a: a.a*b.a + a.b*b.c,
		b: a.a*b.b + a.b*b.d,
		c: a.c*b.a + a.d*b.c,
		d: a.c*b.b + a.d*b.d,
		e: a.e*b.a + a.f*b.c + b.e,
		f: a.e*b.b + a.f*b.d + b.f,
	}
}

// Determinant returns the determinant of the linear part.
func (m Affine) Determinant() float64 {
	return m.a*m.d - m.b*m.c
}

// IsSingular reports whether the transform is not invertible.
func (m Affine) IsSingular() bool {
	return IsZero(Length(m.Determinant()))
}

// Inverse returns the inverse transform and whether one exists.
func (m Affine) Inverse() (Affine, bool) {
	det := m.Determinant()
	if IsZero(Length(det)) {
		return AffineIdentity, false
	}
	inv := 1 / det
	a := m.d * inv
	b := -m.b * inv
	c := -m.c * inv
	d := m.a * inv
	e := -(m.e*a + m.f*c)
	f := -(m.e*b + m.f*d)
	return Affine{a: a, b: b, c: c, d: d, e: e, f: f}, true
}

// IsIdentity reports whether the transform has no effect, within tolerance.
func (m Affine) IsIdentity() bool {
	return IsEqual(Length(m.a), 1) && IsEqual(Length(m.b), 0) &&
		IsEqual(Length(m.c), 0) && IsEqual(Length(m.d), 1) &&
		IsEqual(Length(m.e), 0) && IsEqual(Length(m.f), 0)
}

// PreservesAreaSign reports whether the transform is orientation preserving.
func (m Affine) PreservesAreaSign() bool { return m.Determinant() > 0 }
