package geom

import "math"

// PathTime locates a point along a Path: the index of the curve it falls
// on, plus that curve's local parameter.
type PathTime struct {
	CurveIndex int
	T          float64
}

// Path is an ordered list of curves, stitched end-to-start within
// stitchTolerance, optionally closed. A closed path has an implicit closing
// LineSegment from the last curve's end back to the first curve's start
// whenever that gap is non-zero; Size/SizeClosed/SizeDefault distinguish
// counting it.
type Path struct {
	curves           []Curve
	closed           bool
	stitchTolerance  Length
}

// defaultStitchTolerance matches the kernel's general equality tolerance
// (length.go's equalEpsilon), since stitching is just an equality check
// between consecutive endpoints.
const defaultStitchTolerance = Length(equalEpsilon)

// NewPath builds an open path from curves, checking that each curve's end
// meets the next one's start within tolerance.
func NewPath(curves ...Curve) (Path, error) {
	return newPath(curves, false, defaultStitchTolerance)
}

// NewClosedPath builds a closed path from curves.
func NewClosedPath(curves ...Curve) (Path, error) {
	return newPath(curves, true, defaultStitchTolerance)
}

func newPath(curves []Curve, closed bool, tol Length) (Path, error) {
	for i := 1; i < len(curves); i++ {
		if !withinTolerance(curves[i-1].FinalPoint(), curves[i].InitialPoint(), tol) {
			return Path{}, newError(RangeError, "curve %d does not stitch to curve %d within tolerance", i-1, i)
		}
	}
	cp := make([]Curve, len(curves))
	copy(cp, curves)
	return Path{curves: cp, closed: closed, stitchTolerance: tol}, nil
}

func withinTolerance(a, b Pt, tol Length) bool {
	return a.VectorTo(b).Magnitude() <= tol
}

// closingSegment returns the implicit closing LineSegment and whether it
// has non-zero length.
func (p Path) closingSegment() (LineSegment, bool) {
	if len(p.curves) == 0 {
		return LineSegment{}, false
	}
	last := p.curves[len(p.curves)-1].FinalPoint()
	first := p.curves[0].InitialPoint()
	if withinTolerance(last, first, p.stitchTolerance) {
		return LineSegment{}, false
	}
	return LineSegment{P0: last, P1: first}, true
}

// Size returns the number of explicit curves, excluding any implicit
// zero-length closing segment.
func (p Path) Size() int { return len(p.curves) }

// SizeClosed returns the number of curves including the implicit closing
// segment, when the path is closed and that segment has non-zero length.
func (p Path) SizeClosed() int {
	n := len(p.curves)
	if p.closed {
		if _, has := p.closingSegment(); has {
			n++
		}
	}
	return n
}

// SizeDefault is SizeClosed() when the path is closed, else Size().
func (p Path) SizeDefault() int {
	if p.closed {
		return p.SizeClosed()
	}
	return p.Size()
}

// IsClosed reports whether the path is closed.
func (p Path) IsClosed() bool { return p.closed }

// CurveAt returns the curve at index i, synthesizing the implicit closing
// segment at index Size() when present.
func (p Path) CurveAt(i int) Curve {
	if i < len(p.curves) {
		return p.curves[i]
	}
	closing, _ := p.closingSegment()
	return NewLineSegment(closing.P0, closing.P1)
}

// PointAt evaluates the path at a PathTime.
func (p Path) PointAt(pt PathTime) Pt {
	return p.CurveAt(pt.CurveIndex).PointAt(pt.T)
}

// ValueAt evaluates a single dimension at a PathTime.
func (p Path) ValueAt(pt PathTime, dim int) float64 {
	return p.CurveAt(pt.CurveIndex).ValueAt(pt.T, dim)
}

// BoundsFast returns the union of each curve's fast bounding rectangle.
func (p Path) BoundsFast() OptInterval2D {
	var out OptInterval2D
	n := p.SizeDefault()
	for i := 0; i < n; i++ {
		out = out.unionRect(p.CurveAt(i).BoundsFast())
	}
	return out
}

// BoundsExact returns the union of each curve's tight bounding rectangle.
func (p Path) BoundsExact() OptInterval2D {
	var out OptInterval2D
	n := p.SizeDefault()
	for i := 0; i < n; i++ {
		out = out.unionRect(p.CurveAt(i).BoundsExact())
	}
	return out
}

// OptInterval2D is an optional Rect: the bounds of an empty path are empty.
type OptInterval2D struct {
	x, y   OptInterval
}

func (o OptInterval2D) unionRect(r Rect) OptInterval2D {
	return OptInterval2D{x: o.x.Union(OptIntervalFrom(r.X)), y: o.y.Union(OptIntervalFrom(r.Y))}
}

// Get returns the wrapped Rect and whether it was present.
func (o OptInterval2D) Get() (Rect, bool) {
	x, ok1 := o.x.Get()
	y, ok2 := o.y.Get()
	if !ok1 || !ok2 {
		return Rect{}, false
	}
	return RectFromIntervals(x, y), true
}

// Reversed returns the path with curve order and each curve's
// parameterization reversed; closing semantics are preserved.
func (p Path) Reversed() Path {
	n := p.SizeDefault()
	out := make([]Curve, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = p.CurveAt(i).Reverse()
	}
	return Path{curves: out, closed: p.closed, stitchTolerance: p.stitchTolerance}
}

// NearestTime finds the PathTime minimizing distance to point, searching
// every curve and keeping the global best.
func (p Path) NearestTime(point Pt) PathTime {
	best := PathTime{}
	bestD := math.Inf(1)
	n := p.SizeDefault()
	for i := 0; i < n; i++ {
		c := p.CurveAt(i)
		// Reject curves whose bounding box can't possibly beat the current
		// best, the same bounding-box pruning the teacher's
		// IntersectionRectangleLine relies on.
		if !math.IsInf(bestD, 1) {
			d := c.BoundsFast().DistanceSq(point)
			if math.Sqrt(float64(d)) > bestD {
				continue
			}
		}
		t := c.NearestTime(point, 0, 1)
		d := float64(point.VectorTo(c.PointAt(t)).Magnitude())
		if d < bestD {
			bestD = d
			best = PathTime{CurveIndex: i, T: t}
		}
	}
	return best
}

// Winding returns the signed crossing count of a +x-direction ray from
// point against the path, grounded on the teacher's
// IntersectionLineBezier/IntersectionRectangleLine root-based crossing
// tests: for each curve, solve roots(point.y, Y) and count those whose x
// value exceeds point.x, signed by the curve's local direction of travel.
func (p Path) Winding(point Pt) int {
	_, py := point.Units()
	winding := 0
	n := p.SizeDefault()
	for i := 0; i < n; i++ {
		c := p.CurveAt(i)
		roots := c.Roots(float64(py), 1)
		for _, t := range roots {
			pt := c.PointAt(t)
			x, _ := pt.Units()
			if float64(x) <= float64(point.X()) {
				continue
			}
			deriv := c.Derivative().PointAt(t)
			_, dy := deriv.Units()
			if dy > 0 {
				winding++
			} else if dy < 0 {
				winding--
			}
		}
	}
	return winding
}

// SnapEnds forces every consecutive pair of curve endpoints (and the
// closing gap, if closed) into exact equality, snapping to the midpoint
// whenever the mismatch is within precision. Only line segments and
// quadratic and cubic Beziers are moved; an elliptical arc or SBasis curve
// keeps its endpoint, so a pair involving one is not made exactly equal.
func (p Path) SnapEnds(precision Length) Path {
	n := len(p.curves)
	if n == 0 {
		return p
	}
	out := make([]Curve, n)
	copy(out, p.curves)
	for i := 1; i < n; i++ {
		a, b := out[i-1].FinalPoint(), out[i].InitialPoint()
		if a.VectorTo(b).Magnitude() <= precision && !IsEqualPair(a, b) {
			mid := midpoint(a, b)
			out[i-1] = out[i-1].snapFinal(mid)
			out[i] = out[i].snapInitial(mid)
		}
	}
	if p.closed && n > 0 {
		a, b := out[n-1].FinalPoint(), out[0].InitialPoint()
		if a.VectorTo(b).Magnitude() <= precision && !IsEqualPair(a, b) {
			mid := midpoint(a, b)
			out[n-1] = out[n-1].snapFinal(mid)
			out[0] = out[0].snapInitial(mid)
		}
	}
	return Path{curves: out, closed: p.closed, stitchTolerance: p.stitchTolerance}
}

func midpoint(a, b Pt) Pt {
	ax, ay := a.Units()
	bx, by := b.Units()
	return PtXy((ax+bx)/2, (ay+by)/2)
}

// snapFinal replaces the curve's final endpoint (control points adjusted for
// Bezier kinds); elliptical arcs and SBasis curves are returned unchanged.
func (c Curve) snapFinal(p Pt) Curve {
	switch c.kind {
	case curveKindLine:
		return NewLineSegment(c.lp0, p)
	case curveKindQuadratic:
		return NewQuadraticBezier(c.quad.P0, c.quad.P1, p)
	case curveKindCubic:
		pts := c.cube.b.Points()
		return NewCubicBezier(pts[0], pts[1], pts[2], p)
	default:
		return c
	}
}

func (c Curve) snapInitial(p Pt) Curve {
	switch c.kind {
	case curveKindLine:
		return NewLineSegment(p, c.lp1)
	case curveKindQuadratic:
		return NewQuadraticBezier(p, c.quad.P1, c.quad.P2)
	case curveKindCubic:
		pts := c.cube.b.Points()
		return NewCubicBezier(p, pts[1], pts[2], pts[3])
	default:
		return c
	}
}
