package geom

import "math"

// This file covers rectangle-dominant intersections (grounded on the
// teacher's Rectangle/Segment/Line types) plus the generalized curve- and
// path-level intersection machinery the kernel needs on top of them.
// Line-line, line-bezier, segment-segment, and segment-bezier intersection
// already live on Line/Segment in line.go; this file does not redeclare
// them.

// ClipToRectangleSegment clips a segment against an axis-aligned rectangle
// using Liang-Barsky, returning the clipped sub-segment, or nil if the
// segment misses the rectangle entirely.
func ClipToRectangleSegment(r Rectangle, s Segment) []Segment {
	min, max := r.MinPt(), r.MaxPt()
	x0, y0 := float64(s.Begin().X()), float64(s.Begin().Y())
	x1, y1 := float64(s.End().X()), float64(s.End().Y())
	dx, dy := x1-x0, y1-y0

	tmin, tmax := 0.0, 1.0
	edges := [4]struct{ p, q float64 }{
		{-dx, x0 - float64(min.X())},
		{dx, float64(max.X()) - x0},
		{-dy, y0 - float64(min.Y())},
		{dy, float64(max.Y()) - y0},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return nil
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > tmax {
				return nil
			}
			if t > tmin {
				tmin = t
			}
		} else {
			if t < tmin {
				return nil
			}
			if t < tmax {
				tmax = t
			}
		}
	}
	if tmin > tmax {
		return nil
	}

	clippedBegin := PtXy(Length(x0+tmin*dx), Length(y0+tmin*dy))
	clippedEnd := PtXy(Length(x0+tmax*dx), Length(y0+tmax*dy))
	return []Segment{SegmentPt(clippedBegin, clippedEnd)}
}

// IntersectionRectangleLine returns the points where a line crosses the
// boundary of an axis-aligned rectangle.
func IntersectionRectangleLine(a Rectangle, b Line) []Pt {
	min, max := a.MinPt(), a.MaxPt()

	var s Segment
	switch {
	case b.IsVertical():
		x := b.XForY(0)
		s = SegmentPt(PtXy(x, min.Y()), PtXy(x, max.Y()))
	case b.IsHorizontal():
		y := b.YForX(0)
		s = SegmentPt(PtXy(min.X(), y), PtXy(max.X(), y))
	default:
		ly, lerr := b.YForX(min.X()).OrErr()
		my, merr := b.YForX(max.X()).OrErr()
		if lerr == nil && merr == nil {
			s = SegmentPt(PtXy(min.X(), ly), PtXy(max.X(), my))
		} else {
			lx := b.XForY(min.Y())
			mx := b.XForY(max.Y())
			s = SegmentPt(PtXy(lx, min.Y()), PtXy(mx, max.Y()))
		}
	}
	clipped := ClipToRectangleSegment(a, s)
	if len(clipped) == 0 {
		return nil
	}
	pts := make([]Pt, 0, len(clipped)*2)
	for h := 0; h < len(clipped); h++ {
		pts = append(pts, clipped[h].Points()...)
	}
	return pts
}

// IntersectionRectangleSegment returns the points where a segment crosses
// the boundary of an axis-aligned rectangle.
func IntersectionRectangleSegment(a Rectangle, b Segment) []Pt {
	min, max := a.MinPt(), a.MaxPt()

	clipped := ClipToRectangleSegment(a, b)
	if len(clipped) == 0 {
		return nil
	}
	pts := make([]Pt, 0, len(clipped)*2)
	for h := 0; h < len(clipped); h++ {
		x, y := clipped[h].Begin().XY()
		xequal := IsEqual(x, min.X()) || IsEqual(x, max.X())
		yequal := IsEqual(y, min.Y()) || IsEqual(y, max.Y())
		if xequal || yequal {
			pts = append(pts, clipped[h].Begin())
		}
		x, y = clipped[h].End().XY()
		xequal = IsEqual(x, min.X()) || IsEqual(x, max.X())
		yequal = IsEqual(y, min.Y()) || IsEqual(y, max.Y())
		if xequal || yequal {
			pts = append(pts, clipped[h].End())
		}
	}
	return pts
}

// CurveIntersection is one intersection point between two curves, carrying
// both curves' local times.
type CurveIntersection struct {
	Point  Pt
	TimeA  float64
	TimeB  float64
}

// IntersectionCurveCurve finds all intersections between two curve
// segments within the given absolute precision, by recursive bounding-box
// rejection followed by a line-line (or line-bezier) solve once both
// fragments are nearly linear. This generalizes the teacher's pairwise
// BoundingBox-then-exact-solve idiom (IntersectionLineBezier) from a fixed
// line-times-curve shape to curve-times-curve.
func IntersectionCurveCurve(a, b Curve, precision Length) []CurveIntersection {
	if out, ok := lineCubicShortcut(a, b); ok {
		return out
	}
	if out, ok := lineCubicShortcut(b, a); ok {
		for i := range out {
			out[i].TimeA, out[i].TimeB = out[i].TimeB, out[i].TimeA
		}
		return out
	}
	return intersectCurves(a, 0, 1, b, 0, 1, precision, 0)
}

// lineCubicShortcut takes the exact line-segment/cubic intersection
// (IntersectionSegmentBezier, line.go) rather than recursive bounding-box
// subdivision, whenever one side is a plain line segment and the other a
// cubic Bezier. Returns ok=false when the shapes don't match that case, so
// the caller falls back to the generic recursive solver.
func lineCubicShortcut(a, b Curve) ([]CurveIntersection, bool) {
	if a.kind != curveKindLine || b.kind != curveKindCubic {
		return nil, false
	}
	seg := SegmentPt(a.lp0, a.lp1)
	pts := IntersectionSegmentBezier(seg, b.cube.b)
	if len(pts) == 0 {
		return nil, true
	}
	out := make([]CurveIntersection, 0, len(pts))
	for _, p := range pts {
		ta := segmentParam(a.lp0, a.lp1, p)
		tb := b.NearestTime(p, 0, 1)
		out = append(out, CurveIntersection{Point: p, TimeA: ta, TimeB: tb})
	}
	return out, true
}

const maxCurveIntersectDepth = 40

func intersectCurves(a Curve, a0, a1 float64, b Curve, b0, b1 float64, precision Length, depth int) []CurveIntersection {
	boundsA := a.Portion(a0, a1).BoundsFast()
	boundsB := b.Portion(b0, b1).BoundsFast()
	if !boundsA.Intersects(boundsB) {
		return nil
	}

	flatA := isNearlyLinear(a, a0, a1, precision)
	flatB := isNearlyLinear(b, b0, b1, precision)
	if (flatA && flatB) || depth >= maxCurveIntersectDepth {
		return solveLinearPair(a, a0, a1, b, b0, b1, precision)
	}

	am := (a0 + a1) / 2
	bm := (b0 + b1) / 2
	var out []CurveIntersection
	if !flatA && !flatB {
		out = append(out, intersectCurves(a, a0, am, b, b0, bm, precision, depth+1)...)
		out = append(out, intersectCurves(a, a0, am, b, bm, b1, precision, depth+1)...)
		out = append(out, intersectCurves(a, am, a1, b, b0, bm, precision, depth+1)...)
		out = append(out, intersectCurves(a, am, a1, b, bm, b1, precision, depth+1)...)
	} else if !flatA {
		out = append(out, intersectCurves(a, a0, am, b, b0, b1, precision, depth+1)...)
		out = append(out, intersectCurves(a, am, a1, b, b0, b1, precision, depth+1)...)
	} else {
		out = append(out, intersectCurves(a, a0, a1, b, b0, bm, precision, depth+1)...)
		out = append(out, intersectCurves(a, a0, a1, b, bm, b1, precision, depth+1)...)
	}
	return out
}

func isNearlyLinear(c Curve, t0, t1 float64, precision Length) bool {
	p0, p1 := c.PointAt(t0), c.PointAt(t1)
	mid := c.PointAt((t0 + t1) / 2)
	chordLine := LineFromPt(p0, p1)
	if chordLine.IsUnknown() {
		return true
	}
	a, b, cc := chordLine.Abc()
	x, y := mid.Units()
	denom := float64(a)*float64(a) + float64(b)*float64(b)
	if denom == 0 {
		return true
	}
	dist := math.Abs(float64(a)*float64(x)+float64(b)*float64(y)-float64(cc)) / math.Sqrt(denom)
	return Length(dist) < precision
}

func solveLinearPair(a Curve, a0, a1 float64, b Curve, b0, b1 float64, precision Length) []CurveIntersection {
	pa0, pa1 := a.PointAt(a0), a.PointAt(a1)
	pb0, pb1 := b.PointAt(b0), b.PointAt(b1)
	sa := SegmentPt(pa0, pa1)
	sb := SegmentPt(pb0, pb1)
	pts := IntersectionSegmentSegment(sa, sb)
	if len(pts) == 0 {
		return nil
	}
	p := pts[0]
	ta := a0 + segmentParam(pa0, pa1, p)*(a1-a0)
	tb := b0 + segmentParam(pb0, pb1, p)*(b1-b0)
	return []CurveIntersection{{Point: p, TimeA: ta, TimeB: tb}}
}

func segmentParam(p0, p1, p Pt) float64 {
	dx := float64(p1.X() - p0.X())
	dy := float64(p1.Y() - p0.Y())
	if math.Abs(dx) > math.Abs(dy) {
		if dx == 0 {
			return 0
		}
		return float64(p.X()-p0.X()) / dx
	}
	if dy == 0 {
		return 0
	}
	return float64(p.Y()-p0.Y()) / dy
}
