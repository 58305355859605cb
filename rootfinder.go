package geom

import "math"

// maxRootDepth is the recursion depth at which the Bernstein root finder
// (§4.2) stops polishing a unique root: from this depth on,
// polishUniqueRoot returns the secant estimate between the interval
// endpoints. Splitting an interval with several sign changes is not
// limited by this depth.
const maxRootDepth = 22

// secantIterCap bounds the Illinois-variant secant polish.
const secantIterCap = 100

// Root is a real root of a Bernstein polynomial together with the
// multiplicity the finder collapsed it from (roots exactly at a subdivision
// point are deflated and reported once, with their multiplicity attached).
type Root struct {
	Value      float64
	Multiplicity int
}

// FindRoots finds the real roots of a Bernstein polynomial b on [0,1],
// reporting them in the [leftT, rightT] coordinate space. depth is the
// current recursion depth and should be 0 for the top-level call; it is
// the workhorse behind ScalarBezier.Roots, BoundsExact, and curve
// intersection.
func FindRoots(b ScalarBezier, leftT, rightT float64, depth int) []Root {
	// Constant polynomials have no roots.
	if b.Order() == 0 {
		return nil
	}

	// Deflate leading zero coefficients: each is a root at leftT.
	var leading []Root
	for b.Order() > 0 && b.At(0) == 0 {
		leading = append(leading, Root{Value: leftT, Multiplicity: 1})
		b = b.Deflate()
	}
	if b.Order() == 0 {
		return leading
	}

	c := b.Coefficients()

	// Linear case: closed form if endpoints have opposite sign.
	if b.Order() == 1 {
		if (c[0] < 0) != (c[1] < 0) && c[0] != 0 {
			t := c[0] / (c[0] - c[1])
			return append(leading, Root{Value: leftT + t*(rightT-leftT), Multiplicity: 1})
		}
		if c[1] == 0 {
			return append(leading, Root{Value: rightT, Multiplicity: 1})
		}
		return leading
	}

	signChanges, lastIsZero := countSignChanges(c)
	if signChanges == 0 && !lastIsZero {
		return leading
	}

	if signChanges <= 1 {
		root := polishUniqueRoot(b, leftT, rightT, depth)
		return append(leading, Root{Value: root, Multiplicity: 1})
	}

	// Multiple crossings: split and recurse.
	var splitT float64
	if depth <= 2 {
		splitT = 0.5
	} else {
		droots := b.Derivative().Roots()
		splitT = 0.5
		best := math.Inf(1)
		for _, r := range droots {
			if r > 0 && r < best {
				best = r
			}
		}
		if !math.IsInf(best, 1) {
			splitT = best
		}
	}

	left, right := b.Subdivide(splitT)
	midT := leftT + splitT*(rightT-leftT)

	var roots []Root
	roots = append(roots, leading...)
	roots = append(roots, FindRoots(left, leftT, midT, depth+1)...)

	// A root exactly at the split point would otherwise be reported by
	// both halves; deflate it from the right branch before recursing.
	if right.At(0) == 0 {
		if len(roots) > 0 && IsEqual(Length(roots[len(roots)-1].Value), Length(midT)) {
			roots[len(roots)-1].Multiplicity++
		} else {
			roots = append(roots, Root{Value: midT, Multiplicity: 1})
		}
		right = right.Deflate()
		if right.Order() == 0 {
			return roots
		}
	}
	roots = append(roots, FindRoots(right, midT, rightT, depth+1)...)
	return roots
}

// countSignChanges counts sign changes in the Bernstein coefficient
// sequence. Zero coefficients don't count; the sign from before them
// carries through. If the last coefficient is exactly zero it counts as a
// crossing.
func countSignChanges(c []float64) (changes int, lastIsZero bool) {
	sign := 0
	for _, v := range c {
		if v > 0 {
			if sign < 0 {
				changes++
			}
			sign = 1
		} else if v < 0 {
			if sign > 0 {
				changes++
			}
			sign = -1
		}
		// v == 0: carry the previous sign forward, as specified.
	}
	lastIsZero = c[len(c)-1] == 0
	if lastIsZero {
		changes++
	}
	return
}

// polishUniqueRoot finds the unique real root of b on [0,1], mapped back
// into [leftT, rightT]. At depth >= maxRootDepth it bottoms out with the
// secant estimate between the endpoints; otherwise it polishes with the
// Illinois-variant secant method.
func polishUniqueRoot(b ScalarBezier, leftT, rightT float64, depth int) float64 {
	f0, f1 := b.ValueAt(0), b.ValueAt(1)
	if depth >= maxRootDepth {
		return secantRoot(0, f0, 1, f1, leftT, rightT)
	}

	s, t := 0.0, 1.0
	fs, ft := f0, f1
	if fs == 0 {
		return leftT
	}
	if ft == 0 {
		return rightT
	}

	side := 0
	for i := 0; i < secantIterCap; i++ {
		r := (fs*t - ft*s) / (fs - ft)
		fr := b.ValueAt(r)
		if fr == 0 || math.Abs(t-s) < 1e-14*(math.Abs(s)+math.Abs(t)) {
			s = r
			break
		}
		if (fr > 0) == (fs > 0) {
			s, fs = r, fr
			if side == -1 {
				ft /= 2
			}
			side = -1
		} else {
			t, ft = r, fr
			if side == 1 {
				fs /= 2
			}
			side = 1
		}
	}
	return leftT + s*(rightT-leftT)
}

func secantRoot(s, fs, t, ft, leftT, rightT float64) float64 {
	if fs == ft {
		return leftT + 0.5*(rightT-leftT)
	}
	r := (fs*t - ft*s) / (fs - ft)
	return leftT + r*(rightT-leftT)
}
