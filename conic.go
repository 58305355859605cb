package geom

import "math"

// XAx is an implicit conic section A*x^2 + B*x*y + C*y^2 + D*x + E*y + F = 0.
type XAx struct {
	A, B, C, D, E, F float64
}

// XAxFromCircle builds the implicit conic for a circle, for use as a test
// fixture and as the common case fed to Clip.
func XAxFromCircle(c Circle) XAx {
	cx, cy := c.c.XY()
	r := c.r
	return XAx{
		A: 1, B: 0, C: 1,
		D: float64(-2 * cx),
		E: float64(-2 * cy),
		F: float64(cx*cx + cy*cy - r*r),
	}
}

// ValueAt evaluates the implicit conic equation at a point; zero means the
// point lies exactly on the conic.
func (x XAx) ValueAt(p Pt) float64 {
	px, py := p.XY()
	fx, fy := float64(px), float64(py)
	return x.A*fx*fx + x.B*fx*fy + x.C*fy*fy + x.D*fx + x.E*fy + x.F
}

// Discriminant classifies the conic: negative is an ellipse (or circle),
// zero a parabola, positive a hyperbola.
func (x XAx) Discriminant() float64 { return x.B*x.B - 4*x.A*x.C }

// IsDegenerate reports whether the conic collapses (all quadratic
// coefficients vanish, or the matrix of the full quadratic form is
// singular), which makes it NotRepresentable as a genuine conic arc.
func (x XAx) IsDegenerate() bool {
	if IsZero(Length(x.A)) && IsZero(Length(x.B)) && IsZero(Length(x.C)) {
		return true
	}
	det := x.A*(x.C*x.F-x.E*x.E/4) - x.B/2*(x.B/2*x.F-x.E*x.D/4) + x.D/2*(x.B/2*x.E/2-x.C*x.D/2)
	return IsZero(Length(det))
}

// RatQuad is a rational quadratic Bezier arc: P0, P2 endpoints, P1 the
// control point, W the weight on P1 (W=1 recovers an ordinary quadratic
// Bezier).
type RatQuad struct {
	P0, P1, P2 Pt
	W          float64
}

// PointAt evaluates the rational quadratic at t.
func (q RatQuad) PointAt(t float64) Pt {
	b0 := (1 - t) * (1 - t)
	b1 := 2 * (1 - t) * t * q.W
	b2 := t * t
	denom := b0 + b1 + b2
	x0, y0 := q.P0.XY()
	x1, y1 := q.P1.XY()
	x2, y2 := q.P2.XY()
	x := (b0*float64(x0) + b1*float64(x1) + b2*float64(x2)) / denom
	y := (b0*float64(y0) + b1*float64(y1) + b2*float64(y2)) / denom
	return PtXy(Length(x), Length(y))
}

// Clip intersects the conic xax with the boundary of rectangle r, returning
// the RatQuad arcs that approximate the conic inside the rectangle and the
// raw edge-crossing points used to build them. It recurses to depth levels
// or until an arc's chord is within lengthTol of its midpoint sagitta,
// matching the teacher's IntersectionRectangleLine edge-clip idiom
// generalized from a line to a general conic (edge intersections use the
// same Quadratic.Roots closed form the teacher already has in equations.go).
func Clip(xax XAx, r Rect, depth int, lengthTol Length) ([]RatQuad, []Pt) {
	if xax.IsDegenerate() {
		return nil, nil
	}
	crossings := edgeCrossings(xax, r)
	if len(crossings) < 2 {
		return enclosedConicChain(xax, r, depth, lengthTol), crossings
	}

	var arcs []RatQuad
	for i := 0; i+1 < len(crossings); i += 2 {
		arc, ok := fitRatQuad(xax, crossings[i], crossings[i+1])
		if !ok {
			continue
		}
		if depth <= 0 || arcFlatEnough(arc, lengthTol) {
			arcs = append(arcs, arc)
			continue
		}
		mid := r.Midpoint()
		quads := []Rect{
			RectFromIntervals(IntervalMinMax(r.X.Min(), mid.X().float()), IntervalMinMax(r.Y.Min(), mid.Y().float())),
			RectFromIntervals(IntervalMinMax(mid.X().float(), r.X.Max()), IntervalMinMax(r.Y.Min(), mid.Y().float())),
			RectFromIntervals(IntervalMinMax(r.X.Min(), mid.X().float()), IntervalMinMax(mid.Y().float(), r.Y.Max())),
			RectFromIntervals(IntervalMinMax(mid.X().float(), r.X.Max()), IntervalMinMax(mid.Y().float(), r.Y.Max())),
		}
		for _, q := range quads {
			subArcs, _ := Clip(xax, q, depth-1, lengthTol)
			arcs = append(arcs, subArcs...)
		}
	}
	return arcs, crossings
}

// float exposes Length's underlying float64 for the quadrant split above.
func (l Length) float() float64 { return float64(l) }

// conicCenter returns the algebraic center of a central conic, the point
// where the implicit form's gradient vanishes (2Ax+By+D=0, Bx+2Cy+E=0).
func conicCenter(xax XAx) (Pt, bool) {
	denom := 4*xax.A*xax.C - xax.B*xax.B
	if IsZero(Length(denom)) {
		return PtOrig, false
	}
	cx := (xax.B*xax.E - 2*xax.C*xax.D) / denom
	cy := (xax.B*xax.D - 2*xax.A*xax.E) / denom
	return PtXy(Length(cx), Length(cy)), true
}

// conicPointAtAngle samples a bounded conic at the angle theta measured
// from its own center. Shifting the implicit form to be centered at the
// conic's center makes its linear terms vanish, so the radius along any
// direction solves a one-variable quadratic: Value(center + r*(c,s)) =
// f0 + r^2*(A*c^2 + B*c*s + C*s^2), with f0 = Value(center).
func conicPointAtAngle(xax XAx, center Pt, f0, theta float64) (Pt, bool) {
	c, s := math.Cos(theta), math.Sin(theta)
	q := xax.A*c*c + xax.B*c*s + xax.C*s*s
	if IsZero(Length(q)) {
		return PtOrig, false
	}
	v := -f0 / q
	if v < 0 {
		return PtOrig, false
	}
	r := math.Sqrt(v)
	cx, cy := center.XY()
	return PtXy(cx+Length(r*c), cy+Length(r*s)), true
}

// enclosedConicChain handles Clip's zero-crossing case. A bounded conic
// (ellipse) with no edge crossings either lies entirely inside r, in which
// case the whole closed loop needs to be emitted, or doesn't meet r at
// all, in which case there's nothing to emit; distinguished by sampling
// the conic's center and its four cardinal points and checking all of
// them land inside r.
func enclosedConicChain(xax XAx, r Rect, depth int, lengthTol Length) []RatQuad {
	if xax.Discriminant() >= 0 {
		return nil
	}
	center, ok := conicCenter(xax)
	if !ok || !r.Contains(center) {
		return nil
	}
	f0 := xax.ValueAt(center)
	if f0 >= 0 {
		return nil
	}
	for _, theta := range [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		p, ok := conicPointAtAngle(xax, center, f0, theta)
		if !ok || !r.Contains(p) {
			return nil
		}
	}
	// Split the loop in half before recursing rather than handing
	// subdivideConicAngle the full [0, 2*Pi] span directly: at theta=0 and
	// theta=2*Pi it samples the same point, which would hand fitRatQuad a
	// degenerate zero-length pair on its very first call.
	left := subdivideConicAngle(xax, center, f0, 0, math.Pi, depth-1, lengthTol)
	right := subdivideConicAngle(xax, center, f0, math.Pi, 2*math.Pi, depth-1, lengthTol)
	return append(left, right...)
}

// subdivideConicAngle recursively bisects the angular range [a0, a1]
// around center into RatQuad arcs, the same insert-a-midpoint-and-recurse
// strategy Clip uses for a rectangle-bounded pair, generalized from a
// chord bisection to an angle bisection since there's no rectangle edge to
// anchor the split on. Terminates at depth 0 or once the arc is flat to
// lengthTol, matching §4.9's dual stopping conditions.
func subdivideConicAngle(xax XAx, center Pt, f0, a0, a1 float64, depth int, lengthTol Length) []RatQuad {
	p0, ok0 := conicPointAtAngle(xax, center, f0, a0)
	p1, ok1 := conicPointAtAngle(xax, center, f0, a1)
	if !ok0 || !ok1 {
		return nil
	}
	arc, ok := fitRatQuad(xax, p0, p1)
	if !ok {
		return nil
	}
	if depth <= 0 || arcFlatEnough(arc, lengthTol) {
		return []RatQuad{arc}
	}
	mid := (a0 + a1) / 2
	left := subdivideConicAngle(xax, center, f0, a0, mid, depth-1, lengthTol)
	right := subdivideConicAngle(xax, center, f0, mid, a1, depth-1, lengthTol)
	return append(left, right...)
}

// edgeCrossings solves the conic against each of the rectangle's four
// edges using the closed-form quadratic roots already in equations.go,
// returning the points found in perimeter order.
func edgeCrossings(xax XAx, r Rect) []Pt {
	min, max := r.MinPt(), r.MaxPt()
	corners := []Pt{
		PtXy(min.X(), min.Y()),
		PtXy(max.X(), min.Y()),
		PtXy(max.X(), max.Y()),
		PtXy(min.X(), max.Y()),
	}
	var out []Pt
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		out = append(out, edgeConicRoots(xax, a, b)...)
	}
	return out
}

// edgeConicRoots substitutes the edge's parametric line x(t)=a+t(b-a) into
// the conic, producing a scalar quadratic in t and solving it in closed
// form.
func edgeConicRoots(xax XAx, a, b Pt) []Pt {
	ax, ay := a.XY()
	bx, by := b.XY()
	A2, B1, C0 := lineConicParams(xax, a, b)
	roots := solveLineConic(A2, B1, C0)

	var out []Pt
	for _, t := range roots {
		if t >= 0 && t <= 1 {
			out = append(out, PtXy(ax+Length(t)*(bx-ax), ay+Length(t)*(by-ay)))
		}
	}
	return out
}

// lineConicParams substitutes the parametric line x(t) = a + t*(b-a) into
// the conic, returning the coefficients of the resulting scalar quadratic
// A2*t^2 + B1*t + C0 = 0.
func lineConicParams(xax XAx, a, b Pt) (A2, B1, C0 float64) {
	ax, ay := a.XY()
	bx, by := b.XY()
	dx, dy := float64(bx-ax), float64(by-ay)
	fax, fay := float64(ax), float64(ay)

	A2 = xax.A*dx*dx + xax.B*dx*dy + xax.C*dy*dy
	B1 = 2*xax.A*fax*dx + xax.B*(fax*dy+fay*dx) + 2*xax.C*fay*dy + xax.D*dx + xax.E*dy
	C0 = xax.A*fax*fax + xax.B*fax*fay + xax.C*fay*fay + xax.D*fax + xax.E*fay + xax.F
	return
}

// solveLineConic solves A2*t^2 + B1*t + C0 = 0, falling back to the linear
// case when the line is tangent to the conic's quadratic part (A2 == 0).
func solveLineConic(A2, B1, C0 float64) []float64 {
	if IsZero(Length(A2)) {
		if !IsZero(Length(B1)) {
			return []float64{-C0 / B1}
		}
		return nil
	}
	return QuadraticAbc(A2, B1, C0).Roots()
}

// fitRatQuad builds the rational quadratic Bezier arc of the conic between
// two boundary crossing points, choosing the control point by the
// tangent-intersection strategy with a perpendicular-bisector fallback when
// the two endpoint tangents are parallel (per §4.9 step 2), and a plain
// midpoint as the last resort if even the bisector doesn't meet the conic.
func fitRatQuad(xax XAx, p0, p1 Pt) (RatQuad, bool) {
	t0 := conicTangent(xax, p0)
	t1 := conicTangent(xax, p1)

	ctrl, ok := tangentIntersection(p0, t0, p1, t1)
	if !ok {
		ctrl, ok = perpendicularBisectorControl(xax, p0, p1)
		if !ok {
			ctrl = midpoint(p0, p1)
		}
	}

	w := ratQuadWeight(xax, p0, ctrl, p1)
	return RatQuad{P0: p0, P1: ctrl, P2: p1, W: w}, true
}

// perpendicularBisectorControl is §4.9's fallback pairing strategy: the
// intersection of the conic with the perpendicular bisector of p0-p1,
// used when the endpoint tangents are parallel or coincide and
// tangentIntersection has nothing to solve. Of the (up to two) crossings,
// it keeps the one nearest the chord midpoint.
func perpendicularBisectorControl(xax XAx, p0, p1 Pt) (Pt, bool) {
	mid := midpoint(p0, p1)
	chord := p0.VectorTo(p1)
	ci, cj := chord.Units()
	ni, nj := -cj, ci
	if IsZero(Length(ni)) && IsZero(Length(nj)) {
		return mid, false
	}

	a := mid
	b := PtXy(mid.X()+ni, mid.Y()+nj)
	roots := solveLineConic(lineConicParams(xax, a, b))
	if len(roots) == 0 {
		return mid, false
	}

	ax, ay := a.XY()
	best := PtXy(ax+Length(roots[0])*ni, ay+Length(roots[0])*nj)
	bestD := mid.VectorTo(best).Magnitude()
	for _, t := range roots[1:] {
		cand := PtXy(ax+Length(t)*ni, ay+Length(t)*nj)
		if d := mid.VectorTo(cand).Magnitude(); d < bestD {
			best, bestD = cand, d
		}
	}
	return best, true
}

// conicTangent returns the tangent direction of the conic at a point on it
// (the gradient of the implicit form, rotated 90 degrees).
func conicTangent(xax XAx, p Pt) Vector {
	x, y := p.XY()
	fx := float64(x)
	fy := float64(y)
	gx := 2*xax.A*fx + xax.B*fy + xax.D
	gy := xax.B*fx + 2*xax.C*fy + xax.E
	return VectorIj(Length(-gy), Length(gx)).Normalize()
}

func tangentIntersection(p0 Pt, t0 Vector, p1 Pt, t1 Vector) (Pt, bool) {
	l0 := LineFromVector(p0, t0)
	l1 := LineFromVector(p1, t1)
	pts := IntersectionLineLine(l0, l1)
	if len(pts) == 0 {
		return PtOrig, false
	}
	return pts[0], true
}

// ratQuadWeight recovers the weight that makes the rational quadratic
// through p0, ctrl, p1 pass through the conic's midpoint sagitta exactly,
// sampling the conic at the chord midpoint parameter t=0.5.
func ratQuadWeight(xax XAx, p0, ctrl, p1 Pt) float64 {
	// The unweighted (w=1) quadratic's midpoint is (p0 + 2*ctrl + p1)/4.
	// Solve for w such that this point, pulled toward ctrl, lands on the
	// conic: standard 2geom rational-quadratic-through-conic recovery.
	mx := (float64(p0.X()) + float64(p1.X())) / 2
	my := (float64(p0.Y()) + float64(p1.Y())) / 2
	cm := PtXy(Length(mx), Length(my))
	v := cm.VectorTo(ctrl)
	if v.Magnitude() == 0 {
		return 1
	}
	// Binary search for w in (0, 50) such that the rational midpoint lies
	// on the conic, since the implicit substitution is otherwise a messy
	// closed form; robust and adequate for clipping purposes.
	lo, hi := 0.01, 50.0
	f := func(w float64) float64 {
		q := RatQuad{P0: p0, P1: ctrl, P2: p1, W: w}
		return xax.ValueAt(q.PointAt(0.5))
	}
	flo, fhi := f(lo), f(hi)
	if (flo < 0) == (fhi < 0) {
		return 1
	}
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func arcFlatEnough(q RatQuad, tol Length) bool {
	mid := q.PointAt(0.5)
	chordMid := midpoint(q.P0, q.P2)
	sagitta := chordMid.VectorTo(mid).Magnitude()
	return sagitta < tol
}
