package geom

import "math"

// curveKind tags which payload a Curve value carries. Dispatch is a switch
// on this tag rather than interface-per-type virtual calls, matching the
// tagged-union shape the path/pathvector/sweep layers are built around.
type curveKind uint8

const (
	curveKindLine curveKind = iota
	curveKindQuadratic
	curveKindCubic
	curveKindEllipticalArc
	curveKindSBasis
)

// Curve is the contract every concrete planar curve segment satisfies: a
// function of t in [0,1] with exact endpoints, derivatives, subdivision,
// bounds, roots, length, and nearest-point query. LineSegment,
// QuadraticBezier, CubicBezier, EllipticalArc, and SBasisCurve all build one.
type Curve struct {
	kind curveKind

	lp0, lp1 Pt

	quad QuadraticBezier
	cube CubicBezier
	arc  EllipticalArc
	sb   SBasisCurve
}

// LineSegment is a degree-1 curve between two points.
type LineSegment struct {
	P0, P1 Pt
}

// QuadraticBezier is a degree-2 curve through three control points.
type QuadraticBezier struct {
	P0, P1, P2 Pt
}

// CubicBezier is a degree-3 curve through four control points, backed by
// the teacher's Bezier/Cubic machinery (de Casteljau split, Legendre-Gauss
// length, inflection/loop classification).
type CubicBezier struct {
	b Bezier
}

// SBasisCurve is a general curve carrying an explicit D2[SBasis]; used for
// curves produced by algebraic combination (sums, products, offsetting)
// that don't reduce to a fixed-degree Bezier.
type SBasisCurve struct {
	D D2[SBasis]
}

// NewLineSegment builds a Curve wrapping a line segment.
func NewLineSegment(p0, p1 Pt) Curve {
	return Curve{kind: curveKindLine, lp0: p0, lp1: p1}
}

// NewQuadraticBezier builds a Curve wrapping a quadratic Bezier.
func NewQuadraticBezier(p0, p1, p2 Pt) Curve {
	return Curve{kind: curveKindQuadratic, quad: QuadraticBezier{P0: p0, P1: p1, P2: p2}}
}

// NewCubicBezier builds a Curve wrapping a cubic Bezier.
func NewCubicBezier(p0, p1, p2, p3 Pt) Curve {
	return Curve{kind: curveKindCubic, cube: CubicBezier{b: BezierPt(p0, p1, p2, p3)}}
}

// NewEllipticalArc builds a Curve wrapping an elliptical arc; see
// NewEllipticalArcEndpoint for the SVG 1.1 endpoint parameterization.
func NewEllipticalArc(arc EllipticalArc) Curve {
	return Curve{kind: curveKindEllipticalArc, arc: arc}
}

// NewSBasisCurve builds a Curve wrapping an explicit D2[SBasis].
func NewSBasisCurve(d D2[SBasis]) Curve {
	return Curve{kind: curveKindSBasis, sb: SBasisCurve{D: d}}
}

// Kind reports which concrete variant this Curve wraps, for callers that
// need to special-case a variant (e.g. implicit-closing segment detection).
func (c Curve) Kind() curveKind { return c.kind }

// IsLineSegment reports whether the curve is a line segment.
func (c Curve) IsLineSegment() bool { return c.kind == curveKindLine }

func (c Curve) asD2Bezier() (D2[ScalarBezier], bool) {
	switch c.kind {
	case curveKindLine:
		x0, y0 := c.lp0.Units()
		x1, y1 := c.lp1.Units()
		return NewD2(NewScalarBezier(float64(x0), float64(x1)), NewScalarBezier(float64(y0), float64(y1))), true
	case curveKindQuadratic:
		x0, y0 := c.quad.P0.Units()
		x1, y1 := c.quad.P1.Units()
		x2, y2 := c.quad.P2.Units()
		return NewD2(
			NewScalarBezier(float64(x0), float64(x1), float64(x2)),
			NewScalarBezier(float64(y0), float64(y1), float64(y2)),
		), true
	case curveKindCubic:
		pts := c.cube.b.Points()
		xs := make([]float64, 4)
		ys := make([]float64, 4)
		for i, p := range pts {
			x, y := p.Units()
			xs[i], ys[i] = float64(x), float64(y)
		}
		return NewD2(NewScalarBezier(xs...), NewScalarBezier(ys...)), true
	default:
		return D2[ScalarBezier]{}, false
	}
}

// InitialPoint returns the curve's exact starting point.
func (c Curve) InitialPoint() Pt {
	switch c.kind {
	case curveKindLine:
		return c.lp0
	case curveKindQuadratic:
		return c.quad.P0
	case curveKindCubic:
		return c.cube.b.Points()[0]
	case curveKindEllipticalArc:
		return c.arc.PointAt(0)
	case curveKindSBasis:
		return c.sb.D.PointAt(0)
	}
	return PtNaN
}

// FinalPoint returns the curve's exact ending point.
func (c Curve) FinalPoint() Pt {
	switch c.kind {
	case curveKindLine:
		return c.lp1
	case curveKindQuadratic:
		return c.quad.P2
	case curveKindCubic:
		return c.cube.b.Points()[3]
	case curveKindEllipticalArc:
		return c.arc.PointAt(1)
	case curveKindSBasis:
		return c.sb.D.PointAt(1)
	}
	return PtNaN
}

// PointAt evaluates the curve at t.
func (c Curve) PointAt(t float64) Pt {
	if c.kind == curveKindCubic {
		return c.cube.b.PtAtT(t)
	}
	if d2, ok := c.asD2Bezier(); ok {
		return d2.PointAt(t)
	}
	if c.kind == curveKindEllipticalArc {
		return c.arc.PointAt(t)
	}
	return c.sb.D.PointAt(t)
}

// ValueAt evaluates a single dimension (0=x, 1=y) at t.
func (c Curve) ValueAt(t float64, dim int) float64 {
	p := c.PointAt(t)
	x, y := p.Units()
	if dim == 0 {
		return float64(x)
	}
	return float64(y)
}

// PointAndDerivatives returns the position and n derivatives at t,
// component-wise; derivatives beyond the curve's degree are zero.
func (c Curve) PointAndDerivatives(t float64, n int) []Pt {
	out := make([]Pt, n+1)
	if c.kind == curveKindEllipticalArc {
		out[0] = c.arc.PointAt(t)
		tan := c.arc.TangentAt(t)
		if n >= 1 {
			out[1] = PtOrig.Add(tan)
		}
		for i := 2; i <= n; i++ {
			out[i] = PtOrig
		}
		return out
	}
	d2, ok := c.asD2Bezier()
	if !ok {
		d2 = toBezierD2(c.sb.D)
	}
	xs := d2.X.ValueAndDerivatives(t, n)
	ys := d2.Y.ValueAndDerivatives(t, n)
	for i := 0; i <= n; i++ {
		out[i] = PtXy(Length(xs[i]), Length(ys[i]))
	}
	return out
}

// helper to bridge an SBasis D2 back to Bezier form for the generic
// derivative path above.
func toBezierD2(d D2[SBasis]) D2[ScalarBezier] {
	return NewD2(d.X.ToBezier(), d.Y.ToBezier())
}

// Derivative returns a curve representing d/dt of this curve; its concrete
// kind may differ (a cubic's derivative is a quadratic).
func (c Curve) Derivative() Curve {
	if c.kind == curveKindEllipticalArc {
		// The derivative of an elliptical arc is represented in SBasis form
		// since it isn't itself an ellipse.
		return NewSBasisCurve(ToSBasisD2(DerivativeD2(toBezierD2(ToSBasisD2WithOrder(c)))))
	}
	d2, _ := c.asD2Bezier()
	dd := DerivativeD2(d2)
	return curveFromD2(dd)
}

// ToSBasisD2WithOrder samples an elliptical arc into a high-order Bezier
// approximation before converting to SBasis, since its derivative has no
// closed Bezier form.
func ToSBasisD2WithOrder(c Curve) D2[SBasis] {
	const samples = 8
	xs := make([]float64, samples+1)
	ys := make([]float64, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		p := c.PointAt(t)
		x, y := p.Units()
		xs[i], ys[i] = float64(x), float64(y)
	}
	return NewD2(SBasisFromBezier(NewScalarBezier(xs...)), SBasisFromBezier(NewScalarBezier(ys...)))
}

func curveFromD2(d D2[ScalarBezier]) Curve {
	switch d.X.Order() {
	case 0, 1:
		return NewLineSegment(d.PointAt(0), d.PointAt(1))
	case 2:
		xc, yc := d.X.Coefficients(), d.Y.Coefficients()
		return NewQuadraticBezier(
			PtXy(Length(xc[0]), Length(yc[0])),
			PtXy(Length(xc[1]), Length(yc[1])),
			PtXy(Length(xc[2]), Length(yc[2])),
		)
	case 3:
		xc, yc := d.X.Coefficients(), d.Y.Coefficients()
		return NewCubicBezier(
			PtXy(Length(xc[0]), Length(yc[0])),
			PtXy(Length(xc[1]), Length(yc[1])),
			PtXy(Length(xc[2]), Length(yc[2])),
			PtXy(Length(xc[3]), Length(yc[3])),
		)
	default:
		return NewSBasisCurve(ToSBasisD2(d))
	}
}

// Subdivide splits the curve at t into two curves of the same concrete kind
// where that's representable (elliptical arcs resolve new sweep flags).
func (c Curve) Subdivide(t float64) (Curve, Curve) {
	switch c.kind {
	case curveKindEllipticalArc:
		left, right := c.arc.Subdivide(t)
		return NewEllipticalArc(left), NewEllipticalArc(right)
	case curveKindCubic:
		left, right := c.cube.b.SplitAtT(t)
		return Curve{kind: curveKindCubic, cube: CubicBezier{b: left}},
			Curve{kind: curveKindCubic, cube: CubicBezier{b: right}}
	default:
		d2, _ := c.asD2Bezier()
		lx, rx := d2.X.Subdivide(t)
		ly, ry := d2.Y.Subdivide(t)
		return curveFromD2(NewD2(lx, ly)), curveFromD2(NewD2(rx, ry))
	}
}

// Portion restricts the curve to [t0, t1].
func (c Curve) Portion(t0, t1 float64) Curve {
	if c.kind == curveKindEllipticalArc {
		return NewEllipticalArc(c.arc.Portion(t0, t1))
	}
	d2, _ := c.asD2Bezier()
	return curveFromD2(PortionD2(d2, t0, t1))
}

// Reverse returns the curve reparameterized t -> 1-t.
func (c Curve) Reverse() Curve {
	switch c.kind {
	case curveKindEllipticalArc:
		return NewEllipticalArc(c.arc.Reversed())
	case curveKindSBasis:
		return NewSBasisCurve(ToSBasisD2(ReversedD2(toBezierD2(c.sb.D))))
	default:
		d2, _ := c.asD2Bezier()
		return curveFromD2(ReversedD2(d2))
	}
}

// Transformed applies an affine transform, closed-form for lines and
// control-point transforms for Beziers; elliptical arcs go through
// EllipticalArc.Transformed, and SBasis curves transform their coefficient
// representation pointwise.
func (c Curve) Transformed(m Affine) Curve {
	switch c.kind {
	case curveKindLine:
		return NewLineSegment(m.TransformPt(c.lp0), m.TransformPt(c.lp1))
	case curveKindQuadratic:
		return NewQuadraticBezier(m.TransformPt(c.quad.P0), m.TransformPt(c.quad.P1), m.TransformPt(c.quad.P2))
	case curveKindCubic:
		pts := c.cube.b.Points()
		return NewCubicBezier(m.TransformPt(pts[0]), m.TransformPt(pts[1]), m.TransformPt(pts[2]), m.TransformPt(pts[3]))
	case curveKindEllipticalArc:
		return NewEllipticalArc(c.arc.Transformed(m))
	default:
		xc, yc := c.sb.D.X.ToBezier(), c.sb.D.Y.ToBezier()
		xcc, ycc := xc.Coefficients(), yc.Coefficients()
		nx := make([]float64, len(xcc))
		ny := make([]float64, len(ycc))
		for i := range xcc {
			p := m.TransformPt(PtXy(Length(xcc[i]), Length(ycc[i])))
			x, y := p.Units()
			nx[i], ny[i] = float64(x), float64(y)
		}
		return NewSBasisCurve(NewD2(SBasisFromBezier(NewScalarBezier(nx...)), SBasisFromBezier(NewScalarBezier(ny...))))
	}
}

// BoundsFast returns the fast (convex hull) bounding rectangle.
func (c Curve) BoundsFast() Rect {
	if c.kind == curveKindEllipticalArc {
		return c.arc.BoundsFast()
	}
	d2, _ := c.asD2Bezier()
	if c.kind == curveKindSBasis {
		d2 = toBezierD2(c.sb.D)
	}
	return BoundsFastD2(d2)
}

// BoundsExact returns the tight bounding rectangle.
func (c Curve) BoundsExact() Rect {
	switch c.kind {
	case curveKindEllipticalArc:
		return c.arc.BoundsFast()
	case curveKindCubic:
		return RectFromRectangle(c.cube.b.BoundingBox())
	}
	d2, _ := c.asD2Bezier()
	if c.kind == curveKindSBasis {
		d2 = toBezierD2(c.sb.D)
	}
	return BoundsExactD2(d2)
}

// BoundsLocal returns the bounding rectangle over [t0, t1].
func (c Curve) BoundsLocal(t0, t1 float64) Rect {
	return c.Portion(t0, t1).BoundsFast()
}

// Roots returns the times in [0,1] where dimension dim equals v.
func (c Curve) Roots(v float64, dim int) []float64 {
	var d2 D2[ScalarBezier]
	if c.kind == curveKindEllipticalArc {
		d2 = toBezierD2(ToSBasisD2WithOrder(c))
	} else if bd2, ok := c.asD2Bezier(); ok {
		d2 = bd2
	} else {
		d2 = toBezierD2(c.sb.D)
	}
	var b ScalarBezier
	if dim == 0 {
		b = d2.X
	} else {
		b = d2.Y
	}
	shifted := b.Sub(NewScalarBezier(v))
	return shifted.Roots()
}

// Length computes the arc length to the given absolute tolerance. Line
// segments are exact; cubics reuse the teacher's Legendre-Gauss quadrature;
// other kinds fall back to adaptive subdivision against the tolerance.
func (c Curve) Length(tolerance Length) Length {
	switch c.kind {
	case curveKindLine:
		return c.lp0.VectorTo(c.lp1).Magnitude()
	case curveKindCubic:
		return c.cube.b.Length()
	default:
		return adaptiveLength(c, 0, 1, tolerance)
	}
}

func adaptiveLength(c Curve, t0, t1 float64, tol Length) Length {
	p0, p1 := c.PointAt(t0), c.PointAt(t1)
	chord := p0.VectorTo(p1).Magnitude()
	mid := (t0 + t1) / 2
	pm := c.PointAt(mid)
	two := p0.VectorTo(pm).Magnitude() + pm.VectorTo(p1).Magnitude()
	if two-chord < tol || t1-t0 < 1e-10 {
		return two
	}
	return adaptiveLength(c, t0, mid, tol/2) + adaptiveLength(c, mid, t1, tol/2)
}

// NearestTime returns the time in [from, to] minimizing distance to point.
func (c Curve) NearestTime(point Pt, from, to float64) float64 {
	const samples = 32
	best := from
	bestD := math.Inf(1)
	for i := 0; i <= samples; i++ {
		t := from + (to-from)*float64(i)/float64(samples)
		d := float64(point.VectorTo(c.PointAt(t)).Magnitude())
		if d < bestD {
			bestD = d
			best = t
		}
	}
	// Refine via golden-section search around the best sample.
	step := (to - from) / samples
	lo, hi := math.Max(from, best-step), math.Min(to, best+step)
	for iter := 0; iter < 40; iter++ {
		m1 := lo + (hi-lo)*0.382
		m2 := lo + (hi-lo)*0.618
		d1 := float64(point.VectorTo(c.PointAt(m1)).Magnitude())
		d2 := float64(point.VectorTo(c.PointAt(m2)).Magnitude())
		if d1 < d2 {
			hi = m2
		} else {
			lo = m1
		}
	}
	return (lo + hi) / 2
}

// DegreesOfFreedom returns twice the control-point count, used by the
// least-squares fitting helpers to size their normal-equations system.
func (c Curve) DegreesOfFreedom() int {
	switch c.kind {
	case curveKindLine:
		return 4
	case curveKindQuadratic:
		return 6
	case curveKindCubic:
		return 8
	case curveKindEllipticalArc:
		return 10
	default:
		return 2 * c.sb.D.X.ToBezier().Size()
	}
}

// ApproxLength estimates arc length as the sum of \c steps chord segments.
// Cubics reuse Bezier.ApproxLength directly; other kinds sample PointAt.
// Cheaper than Length when only a rough estimate is needed (e.g. picking a
// subdivision count before an exact pass).
func (c Curve) ApproxLength(steps int) Length {
	if c.kind == curveKindCubic {
		return c.cube.b.ApproxLength(steps)
	}
	prev := c.PointAt(0)
	var sum Length
	for h := 1; h <= steps; h++ {
		t := float64(h) / float64(steps)
		curr := c.PointAt(t)
		sum += prev.VectorTo(curr).Magnitude()
		prev = curr
	}
	return sum
}

// ClassifyBezier reports the canonical shape (plain, looped, cusped,
// inflected) of a cubic curve. Only curveKindCubic has a meaningful
// classification; every other kind reports BEZIER_CURVE_TYPE_PLAIN since
// lines, quadratics, arcs, and general SBasis curves don't loop or cusp in
// the sense the cubic canonical-form analysis captures.
func (c Curve) ClassifyBezier() BezierCurveType {
	if c.kind != curveKindCubic {
		return BEZIER_CURVE_TYPE_PLAIN
	}
	return c.cube.b.CurveType()
}

// InflectionTimes returns the times in [0,1] where a cubic's curvature
// changes sign. Other curve kinds have no inflection points and return nil:
// lines and quadratics are convex by construction, and arcs have constant
// curvature sign.
func (c Curve) InflectionTimes() []float64 {
	if c.kind != curveKindCubic {
		return nil
	}
	return c.cube.b.InflectionPts()
}

// AxisRoots returns the times where the curve crosses the x axis and the y
// axis respectively. Cubics delegate to Bezier's closed-form cubic roots;
// other kinds fall back to the generic Roots(0, dim) search.
func (c Curve) AxisRoots() (xroots, yroots []float64) {
	if c.kind == curveKindCubic {
		return c.cube.b.Roots()
	}
	return c.Roots(0, 0), c.Roots(0, 1)
}

// TangentAt returns the tangent and normal vectors at t. Cubics use the
// closed-form cubic derivative; other kinds derive the tangent from the
// curve's own Derivative.
func (c Curve) TangentAt(t float64) (Vector, Vector) {
	if c.kind == curveKindCubic {
		return c.cube.b.TangentAtT(t)
	}
	d := c.PointAndDerivatives(t, 1)
	tangent := PtOrig.VectorTo(d[1])
	i, j := tangent.Units()
	normal := VectorIj(-j, i)
	return tangent, normal
}

// String returns a human-readable representation of the curve. Cubics
// delegate to Bezier's Geogebra-pasteable form; other kinds print their
// control points.
func (c Curve) String() string {
	switch c.kind {
	case curveKindLine:
		return "Line[ " + c.lp0.String() + ", " + c.lp1.String() + " ]"
	case curveKindQuadratic:
		return "Quadratic[ " + c.quad.P0.String() + ", " + c.quad.P1.String() + ", " + c.quad.P2.String() + " ]"
	case curveKindCubic:
		return c.cube.b.String()
	case curveKindEllipticalArc:
		return "EllipticalArc[ " + c.arc.PointAt(0).String() + " -> " + c.arc.PointAt(1).String() + " ]"
	default:
		return "SBasisCurve[ ... ]"
	}
}
