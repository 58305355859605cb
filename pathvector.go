package geom

import "sort"

// PathVectorTime locates a point within a PathVector: which path, and
// where within that path.
type PathVectorTime struct {
	PathIndex int
	PathTime
}

// PathVector is an ordered collection of independent paths, the top-level
// shape object: an SVG "d" attribute's worth of subpaths, or any other
// multi-contour planar figure.
type PathVector struct {
	Paths []Path
}

// NewPathVector collects paths into a PathVector.
func NewPathVector(paths ...Path) PathVector {
	cp := make([]Path, len(paths))
	copy(cp, paths)
	return PathVector{Paths: cp}
}

// BoundsFast returns the union of every path's fast bounds.
func (pv PathVector) BoundsFast() OptInterval2D {
	var out OptInterval2D
	for _, p := range pv.Paths {
		if r, ok := p.BoundsFast().Get(); ok {
			out = out.unionRect(r)
		}
	}
	return out
}

// BoundsExact returns the union of every path's tight bounds.
func (pv PathVector) BoundsExact() OptInterval2D {
	var out OptInterval2D
	for _, p := range pv.Paths {
		if r, ok := p.BoundsExact().Get(); ok {
			out = out.unionRect(r)
		}
	}
	return out
}

// CurveAt returns the curve located by a PathVectorTime.
func (pv PathVector) CurveAt(t PathVectorTime) Curve {
	return pv.Paths[t.PathIndex].CurveAt(t.CurveIndex)
}

// PointAt evaluates the PathVector at a PathVectorTime.
func (pv PathVector) PointAt(t PathVectorTime) Pt {
	return pv.Paths[t.PathIndex].PointAt(t.PathTime)
}

// Winding sums the winding numbers of every constituent path.
func (pv PathVector) Winding(point Pt) int {
	total := 0
	for _, p := range pv.Paths {
		total += p.Winding(point)
	}
	return total
}

// PathVectorIntersection is one intersection between two PathVectors,
// carrying both sides' PathVectorTime.
type PathVectorIntersection struct {
	Point Pt
	A, B  PathVectorTime
}

// curveLabel pairs a curve with its PathVectorTime origin and which side of
// an Intersect call it came from, so a single combined sweep can prune
// cross-set candidate pairs before any exact curve-curve solve runs.
type curveLabel struct {
	curve Curve
	pvt   PathVectorTime
	side  int
	bx    Rect
}

func (l curveLabel) EntryValue() float64 { return l.bx.X.Min() }
func (l curveLabel) ExitValue() float64  { return l.bx.X.Max() }

func flattenLabeled(pv PathVector, side int) []curveLabel {
	var out []curveLabel
	for pi, p := range pv.Paths {
		n := p.SizeDefault()
		for ci := 0; ci < n; ci++ {
			c := p.CurveAt(ci)
			out = append(out, curveLabel{
				curve: c,
				pvt:   PathVectorTime{PathIndex: pi, PathTime: PathTime{CurveIndex: ci}},
				side:  side,
				bx:    c.BoundsFast(),
			})
		}
	}
	return out
}

// Intersect finds every pairwise intersection between this PathVector and
// other within the given precision. Candidate curve pairs are pruned with
// the sweepline in sweep.go (by X-bounds overlap) before the expensive
// recursive curve-curve solve runs, remapping each curve-local result to
// PathVectorTime and sorting by A's time per the ordering guarantee (total
// order on PathTime, then on PathVectorTime).
func (pv PathVector) Intersect(other PathVector, precision Length) []PathVectorIntersection {
	labels := append(flattenLabeled(pv, 0), flattenLabeled(other, 1)...)
	if len(labels) == 0 {
		return nil
	}
	pairs := CandidatePairs(labels, func(l curveLabel) curveLabel { return l })

	var out []PathVectorIntersection
	for _, pr := range pairs {
		l1, l2 := labels[pr[0]], labels[pr[1]]
		if l1.side == l2.side {
			continue
		}
		a, b := l1, l2
		if a.side == 1 {
			a, b = b, a
		}
		for _, hit := range IntersectionCurveCurve(a.curve, b.curve, precision) {
			out = append(out, PathVectorIntersection{
				Point: hit.Point,
				A:     PathVectorTime{PathIndex: a.pvt.PathIndex, PathTime: PathTime{CurveIndex: a.pvt.CurveIndex, T: hit.TimeA}},
				B:     PathVectorTime{PathIndex: b.pvt.PathIndex, PathTime: PathTime{CurveIndex: b.pvt.CurveIndex, T: hit.TimeB}},
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return lessPathVectorTime(out[i].A, out[j].A)
	})
	return out
}

// lessPathVectorTime imposes the lexicographic total order: path index,
// then curve index, then t.
func lessPathVectorTime(a, b PathVectorTime) bool {
	if a.PathIndex != b.PathIndex {
		return a.PathIndex < b.PathIndex
	}
	if a.CurveIndex != b.CurveIndex {
		return a.CurveIndex < b.CurveIndex
	}
	return a.T < b.T
}
