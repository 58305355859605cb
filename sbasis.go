package geom

// LinearPair is one (s, t) term of an SBasis polynomial: the i-th term
// contributes (s*(1-x) + t*x) * (x(1-x))^i.
type LinearPair struct {
	S, T float64
}

// SBasis is a polynomial in the symmetric power basis: a sequence of linear
// pairs such that f(x) = Σ_i (s_i(1-x) + t_i*x) * (x(1-x))^i. Conversion
// to/from ScalarBezier (Bernstein form) is bijective and exact for finite
// coefficients. A zero polynomial is the single pair (0, 0).
type SBasis struct {
	terms []LinearPair
}

// NewSBasis builds an SBasis from its linear pairs.
func NewSBasis(terms ...LinearPair) SBasis {
	if len(terms) == 0 {
		return SBasis{terms: []LinearPair{{0, 0}}}
	}
	cp := make([]LinearPair, len(terms))
	copy(cp, terms)
	return SBasis{terms: cp}
}

// Size returns the number of linear pair terms.
func (s SBasis) Size() int { return len(s.terms) }

// Terms returns the linear pairs. Treat as read-only.
func (s SBasis) Terms() []LinearPair { return s.terms }

// ValueAt evaluates f(x) directly from the symmetric power basis definition.
func (s SBasis) ValueAt(x float64) float64 {
	blossom := x * (1 - x)
	pow := 1.0
	sum := 0.0
	for _, term := range s.terms {
		sum += (term.S*(1-x) + term.T*x) * pow
		pow *= blossom
	}
	return sum
}

// ToBezier converts this SBasis polynomial to Bernstein form. The conversion
// is exact: an SBasis of k+1 terms converts to a Bezier of order 2k+1 (odd)
// by construction, matching the degree of the underlying power-basis
// polynomial once expanded through (x(1-x))^i.
func (s SBasis) ToBezier() ScalarBezier {
	// Build degree-by-degree: each term (s_i(1-x)+t_i x)(x(1-x))^i is a
	// Bezier of order 2i+1 obtained by multiplying the degree-1 Bezier
	// [s_i, t_i] against i copies of the order-2 Bezier representing
	// x(1-x), i.e. Bernstein coefficients [0, 1/2, 0] scaled appropriately.
	xOneMinusX := NewScalarBezier(0, 0, 0)
	// Bernstein form of x(1-x) on [0,1]: x(1-x) is half the basis
	// polynomial 2x(1-x), so its quadratic coefficients are 0, 0.5, 0.
	xOneMinusX = NewScalarBezier(0, 0.5, 0)

	var total ScalarBezier
	haveTotal := false
	for i, term := range s.terms {
		linear := NewScalarBezier(term.S, term.T)
		poly := linear
		for k := 0; k < i; k++ {
			poly = poly.Mul(xOneMinusX)
		}
		if !haveTotal {
			total = poly
			haveTotal = true
		} else {
			total = total.Add(poly)
		}
	}
	if !haveTotal {
		return NewScalarBezier(0)
	}
	return total
}

// SBasisFromBezier converts a Bernstein polynomial to symmetric power basis.
// Even-order inputs are first degree-elevated by one so the conversion has
// an exact odd-degree SBasis representation, matching the convention used
// by ToBezier.
func SBasisFromBezier(b ScalarBezier) SBasis {
	if b.Order()%2 == 0 {
		b = b.ElevateDegree()
	}
	k := (b.Order() - 1) / 2
	terms := make([]LinearPair, k+1)
	remaining := b
	xOneMinusX := NewScalarBezier(0, 0.5, 0)
	for i := 0; i <= k; i++ {
		c := remaining.Coefficients()
		s, t := c[0], c[len(c)-1]
		terms[i] = LinearPair{S: s, T: t}
		linear := NewScalarBezier(s, t).ElevateToDegree(remaining.Order())
		remainder := remaining.Sub(linear)
		if i == k {
			break
		}
		remaining = deflateFactor(remainder, xOneMinusX)
	}
	return NewSBasis(terms...)
}

// deflateFactor divides a Bezier known to be exactly divisible by
// x(1-x) by that factor, returning the quotient in Bernstein form. Used by
// SBasisFromBezier to peel one symmetric-power term at a time.
func deflateFactor(b, factor ScalarBezier) ScalarBezier {
	n := b.Order()
	m := factor.Order()
	if n < m {
		return NewScalarBezier(0)
	}
	qn := n - m
	// Solve for quotient coefficients via the same convolution relation
	// used by Mul, inverted: b_k = Σ C(qn,i)C(m,j)/C(n,k) q_i f_j for
	// i+j=k. Since factor = [0, 0.5, 0] has a zero leading and trailing
	// coefficient, the quotient coefficients can be recovered by forward
	// substitution: q_k is the only new unknown in the relation for
	// b_{k+1}, where it pairs with f_1.
	q := make([]float64, qn+1)
	bc := b.Coefficients()
	fc := factor.Coefficients()
	nCk := func(n, k int) float64 { return binomial(n, k) }
	for k := 0; k <= qn; k++ {
		sum := 0.0
		for i := 0; i < k; i++ {
			j := k + 1 - i
			if j < 0 || j > m {
				continue
			}
			sum += nCk(qn, i) * nCk(m, j) * q[i] * fc[j]
		}
		target := bc[k+1] * nCk(n, k+1)
		coeff := nCk(qn, k) * nCk(m, 1) * fc[1]
		if coeff == 0 {
			q[k] = 0
			continue
		}
		q[k] = (target - sum) / coeff
	}
	return NewScalarBezier(q...)
}
