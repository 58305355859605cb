package geom

// Fragment is satisfied by any scalar function of a single parameter that
// can be evaluated pointwise: ScalarBezier and SBasis both qualify, and D2
// lifts either one into a planar curve fragment sharing a common domain.
type Fragment interface {
	ValueAt(t float64) float64
}

// D2 is a planar fragment built from two same-kind scalar fragments sharing
// a parameter domain: x(t) = X.ValueAt(t), y(t) = Y.ValueAt(t). It is the
// generic planar lift the curve hierarchy is built on, matching the
// parametric/Cartesian split used throughout the scalar layer.
type D2[T Fragment] struct {
	X, Y T
}

// NewD2 pairs two fragments of the same kind into a planar fragment.
func NewD2[T Fragment](x, y T) D2[T] {
	return D2[T]{X: x, Y: y}
}

// PointAt evaluates the planar fragment at t.
func (d D2[T]) PointAt(t float64) Pt {
	return PtXy(Length(d.X.ValueAt(t)), Length(d.Y.ValueAt(t)))
}

// BoundsFastD2 returns the fast (convex-hull) bounding rectangle of a
// Bernstein-form planar fragment.
func BoundsFastD2(d D2[ScalarBezier]) Rect {
	xlo, xhi := d.X.BoundsFast()
	ylo, yhi := d.Y.BoundsFast()
	return RectFromIntervals(IntervalMinMax(xlo, xhi), IntervalMinMax(ylo, yhi))
}

// BoundsExactD2 returns the tight bounding rectangle of a Bernstein-form
// planar fragment.
func BoundsExactD2(d D2[ScalarBezier]) Rect {
	xlo, xhi := d.X.BoundsExact()
	ylo, yhi := d.Y.BoundsExact()
	return RectFromIntervals(IntervalMinMax(xlo, xhi), IntervalMinMax(ylo, yhi))
}

// PortionD2 restricts a Bernstein-form planar fragment to [t0, t1].
func PortionD2(d D2[ScalarBezier], t0, t1 float64) D2[ScalarBezier] {
	return NewD2(d.X.Portion(t0, t1), d.Y.Portion(t0, t1))
}

// DerivativeD2 differentiates a Bernstein-form planar fragment component-wise.
func DerivativeD2(d D2[ScalarBezier]) D2[ScalarBezier] {
	return NewD2(d.X.Derivative(), d.Y.Derivative())
}

// ReversedD2 reverses the parameterization of a Bernstein-form planar
// fragment.
func ReversedD2(d D2[ScalarBezier]) D2[ScalarBezier] {
	return NewD2(d.X.Reversed(), d.Y.Reversed())
}

// ToSBasisD2 converts a Bernstein-form planar fragment to symmetric power
// basis, component-wise.
func ToSBasisD2(d D2[ScalarBezier]) D2[SBasis] {
	return NewD2(SBasisFromBezier(d.X), SBasisFromBezier(d.Y))
}
