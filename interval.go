package geom

import "math"

// Interval is a non-empty closed [a, b] with a <= b.
type Interval struct {
	lo, hi float64
}

// IntervalAt creates a degenerate interval [a, a].
func IntervalAt(a float64) Interval { return Interval{lo: a, hi: a} }

// IntervalMinMax creates an interval from two endpoints in either order.
func IntervalMinMax(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{lo: a, hi: b}
}

func (iv Interval) Min() float64 { return iv.lo }
func (iv Interval) Max() float64 { return iv.hi }
func (iv Interval) Extent() float64 { return iv.hi - iv.lo }
func (iv Interval) Middle() float64 { return (iv.lo + iv.hi) / 2 }
func (iv Interval) IsSingular() bool { return iv.lo == iv.hi }

// Contains reports whether v lies in the closed interval.
func (iv Interval) Contains(v float64) bool { return iv.lo <= v && v <= iv.hi }

// InteriorContains reports whether v lies strictly inside the interval.
func (iv Interval) InteriorContains(v float64) bool { return iv.lo < v && v < iv.hi }

// Intersects reports whether the two closed intervals share at least a
// point.
func (a Interval) Intersects(b Interval) bool { return a.lo <= b.hi && b.lo <= a.hi }

// InteriorIntersects reports whether the two intervals' interiors overlap.
func (a Interval) InteriorIntersects(b Interval) bool { return a.lo < b.hi && b.lo < a.hi }

// Union returns the smallest interval containing both operands.
func (a Interval) Union(b Interval) Interval {
	return Interval{lo: math.Min(a.lo, b.lo), hi: math.Max(a.hi, b.hi)}
}

// UnionPt expands the interval to include v.
func (a Interval) UnionPt(v float64) Interval {
	return Interval{lo: math.Min(a.lo, v), hi: math.Max(a.hi, v)}
}

// Intersection returns the overlapping sub-interval and whether one exists.
func (a Interval) Intersection(b Interval) (Interval, bool) {
	lo, hi := math.Max(a.lo, b.lo), math.Min(a.hi, b.hi)
	if lo > hi {
		return Interval{}, false
	}
	return Interval{lo: lo, hi: hi}, true
}

// OptInterval is an interval that may be empty. The zero value is empty.
type OptInterval struct {
	iv     Interval
	hasVal bool
}

// OptIntervalFrom wraps an Interval as present.
func OptIntervalFrom(iv Interval) OptInterval { return OptInterval{iv: iv, hasVal: true} }

func (o OptInterval) IsEmpty() bool { return !o.hasVal }

// Get returns the wrapped interval and whether it was present.
func (o OptInterval) Get() (Interval, bool) { return o.iv, o.hasVal }

// Union combines two optional intervals, treating an empty one as the
// identity: the union with an empty interval is the other operand.
func (a OptInterval) Union(b OptInterval) OptInterval {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return OptInterval{}
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	default:
		return OptIntervalFrom(a.iv.Union(b.iv))
	}
}

// UnionPt expands an optional interval to include v.
func (a OptInterval) UnionPt(v float64) OptInterval {
	if a.IsEmpty() {
		return OptIntervalFrom(IntervalAt(v))
	}
	return OptIntervalFrom(a.iv.UnionPt(v))
}
