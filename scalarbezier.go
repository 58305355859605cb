package geom

import "math"

// ScalarBezier is a polynomial of degree n stored as n+1 Bernstein control
// coefficients. It generalizes the teacher's fixed-arity Constant / Linear /
// Quadratic / Cubic family (equations.go) to an arbitrary order, the way
// component A of the kernel requires: bounds, intersection, and the root
// finder all need to raise and lower degree freely.
//
// A zero polynomial is represented as the single coefficient 0.
type ScalarBezier struct {
	c []float64
}

// NewScalarBezier builds a ScalarBezier from its Bernstein control
// coefficients. At least one coefficient is required.
func NewScalarBezier(coeffs ...float64) ScalarBezier {
	if len(coeffs) == 0 {
		return ScalarBezier{c: []float64{0}}
	}
	cp := make([]float64, len(coeffs))
	copy(cp, coeffs)
	return ScalarBezier{c: cp}
}

// Order returns the polynomial's degree (size - 1).
func (b ScalarBezier) Order() int { return len(b.c) - 1 }

// Size returns the number of Bernstein coefficients (order + 1).
func (b ScalarBezier) Size() int { return len(b.c) }

// Coefficients returns the raw Bernstein control values. Treat as read-only.
func (b ScalarBezier) Coefficients() []float64 { return b.c }

// At returns the i-th control coefficient.
func (b ScalarBezier) At(i int) float64 { return b.c[i] }

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}

// ValueAt evaluates the polynomial at t via de Casteljau's algorithm. Exact
// at t=0 and t=1 (returns c[0] / c[n] verbatim).
func (b ScalarBezier) ValueAt(t float64) float64 {
	if t == 0 {
		return b.c[0]
	}
	if t == 1 {
		return b.c[len(b.c)-1]
	}
	work := make([]float64, len(b.c))
	copy(work, b.c)
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = (1-t)*work[i] + t*work[i+1]
		}
	}
	return work[0]
}

// ValueAndDerivatives returns f(t), f'(t), ... f^(n)(t) for n derivatives.
// Derivatives beyond Order() are zero. Implemented by repeated de Casteljau:
// evaluate, then differentiate the remaining coefficients in place.
func (b ScalarBezier) ValueAndDerivatives(t float64, n int) []float64 {
	out := make([]float64, n+1)
	cur := b
	for k := 0; k <= n; k++ {
		out[k] = cur.ValueAt(t)
		if cur.Order() == 0 {
			cur = NewScalarBezier(0)
			continue
		}
		cur = cur.Derivative()
	}
	return out
}

// Subdivide splits the curve at t via de Casteljau, producing two polynomials
// of the same order whose shared endpoint is f(t) exactly.
func (b ScalarBezier) Subdivide(t float64) (left, right ScalarBezier) {
	n := len(b.c)
	tri := make([][]float64, n)
	tri[0] = append([]float64(nil), b.c...)
	for row := 1; row < n; row++ {
		prev := tri[row-1]
		cur := make([]float64, len(prev)-1)
		for i := range cur {
			cur[i] = (1-t)*prev[i] + t*prev[i+1]
		}
		tri[row] = cur
	}
	l := make([]float64, n)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		l[i] = tri[i][0]
		r[i] = tri[n-1-i][len(tri[n-1-i])-1]
	}
	return NewScalarBezier(l...), NewScalarBezier(r...)
}

// Portion extracts the sub-polynomial over [t0, t1]. If t0 > t1 the result is
// reversed. The final coefficient is re-evaluated directly to guard against
// floating point drift across the two splits.
func (b ScalarBezier) Portion(t0, t1 float64) ScalarBezier {
	reversed := t0 > t1
	if reversed {
		t0, t1 = t1, t0
	}
	_, right := b.Subdivide(t0)
	// Re-map t1 into the domain of `right`, which spans [t0, 1].
	var rt1 float64
	if t1 >= 1 {
		rt1 = 1
	} else {
		rt1 = (t1 - t0) / (1 - t0)
	}
	left, _ := right.Subdivide(rt1)
	last := left.Order()
	left.c[last] = b.ValueAt(t1)
	if reversed {
		return left.Reversed()
	}
	return left
}

// Reversed returns the polynomial parameterized t -> 1-t.
func (b ScalarBezier) Reversed() ScalarBezier {
	n := len(b.c)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = b.c[n-1-i]
	}
	return NewScalarBezier(out...)
}

// Derivative returns the order-(n-1) derivative Bezier. An order-0 input
// becomes a constant zero.
func (b ScalarBezier) Derivative() ScalarBezier {
	n := b.Order()
	if n == 0 {
		return NewScalarBezier(0)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(n) * (b.c[i+1] - b.c[i])
	}
	return NewScalarBezier(out...)
}

// Integral returns the order-(n+1) antiderivative with integration constant 0.
func (b ScalarBezier) Integral() ScalarBezier {
	n := b.Order()
	out := make([]float64, n+2)
	out[0] = 0
	sum := 0.0
	for i := 0; i <= n; i++ {
		sum += b.c[i]
		out[i+1] = sum / float64(n+1)
	}
	return NewScalarBezier(out...)
}

// ElevateDegree raises the order by exactly one, preserving the curve shape.
func (b ScalarBezier) ElevateDegree() ScalarBezier {
	n := b.Order()
	out := make([]float64, n+2)
	out[0] = b.c[0]
	out[n+1] = b.c[n]
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n+1)
		out[i] = t*b.c[i-1] + (1-t)*b.c[i]
	}
	return NewScalarBezier(out...)
}

// ElevateToDegree raises the order to m, elevating one step at a time.
func (b ScalarBezier) ElevateToDegree(m int) ScalarBezier {
	cur := b
	for cur.Order() < m {
		cur = cur.ElevateDegree()
	}
	return cur
}

// ReduceDegree lowers the order by one. When the coefficients are not
// exactly representable at the lower degree (the common case), the result is
// an approximation from the two-sided recurrence that meets in the middle:
// the lower half of the coefficients comes from the forward recurrence and
// the upper half from the backward one.
func (b ScalarBezier) ReduceDegree() ScalarBezier {
	n := b.Order()
	if n == 0 {
		return b
	}
	m := n - 1
	fwd := make([]float64, m+1)
	bwd := make([]float64, m+1)
	fwd[0] = b.c[0]
	for i := 1; i <= m; i++ {
		fwd[i] = (float64(n)*b.c[i] - float64(i)*fwd[i-1]) / float64(n-i)
	}
	bwd[m] = b.c[n]
	for i := m - 1; i >= 0; i-- {
		bwd[i] = (float64(n)*b.c[i+1] - float64(n-i-1)*bwd[i+1]) / float64(i+1)
	}
	out := make([]float64, m+1)
	mid := m / 2
	for i := 0; i <= mid; i++ {
		out[i] = fwd[i]
	}
	for i := mid + 1; i <= m; i++ {
		out[i] = bwd[i]
	}
	return NewScalarBezier(out...)
}

// Deflate divides out the root at t=0: the first coefficient must already be
// zero, and the result is f(t)/t, one order lower (used by the root finder
// after a deflated root at t=0).
func (b ScalarBezier) Deflate() ScalarBezier {
	if len(b.c) <= 1 {
		return NewScalarBezier(0)
	}
	n := float64(len(b.c) - 1)
	out := make([]float64, len(b.c)-1)
	for i := range out {
		out[i] = b.c[i+1] * n / float64(i+1)
	}
	return NewScalarBezier(out...)
}

// ForwardDifference returns the k-th forward-difference Bezier: coefficients
// combine binomial-weighted inputs, Δ^k c_0 = Σ_i (-1)^(k-i) C(k,i) c_i.
func (b ScalarBezier) ForwardDifference(k int) ScalarBezier {
	n := b.Order()
	if k < 0 || k > n {
		return NewScalarBezier(0)
	}
	out := make([]float64, n-k+1)
	for j := 0; j <= n-k; j++ {
		sum := 0.0
		for i := 0; i <= k; i++ {
			sign := 1.0
			if (k-i)%2 != 0 {
				sign = -1
			}
			sum += sign * binomial(k, i) * b.c[j+i]
		}
		out[j] = sum
	}
	return NewScalarBezier(out...)
}

// Add sums two Bezier polynomials, elevating the lower degree operand first.
// Never reduces degree automatically.
func (a ScalarBezier) Add(b ScalarBezier) ScalarBezier {
	a, b = matchOrder(a, b)
	out := make([]float64, len(a.c))
	for i := range out {
		out[i] = a.c[i] + b.c[i]
	}
	return NewScalarBezier(out...)
}

// Sub subtracts b from a, elevating the lower degree operand first.
func (a ScalarBezier) Sub(b ScalarBezier) ScalarBezier {
	a, b = matchOrder(a, b)
	out := make([]float64, len(a.c))
	for i := range out {
		out[i] = a.c[i] - b.c[i]
	}
	return NewScalarBezier(out...)
}

func matchOrder(a, b ScalarBezier) (ScalarBezier, ScalarBezier) {
	if a.Order() < b.Order() {
		a = a.ElevateToDegree(b.Order())
	} else if b.Order() < a.Order() {
		b = b.ElevateToDegree(a.Order())
	}
	return a, b
}

// Mul computes the polynomial product. The product of orders m and n has
// order m+n with h_k = Σ_{i+j=k} C(m,i)C(n,j)/C(m+n,k) f_i g_j.
func (a ScalarBezier) Mul(b ScalarBezier) ScalarBezier {
	m, n := a.Order(), b.Order()
	out := make([]float64, m+n+1)
	for k := 0; k <= m+n; k++ {
		sum := 0.0
		lo := 0
		if k-n > 0 {
			lo = k - n
		}
		hi := m
		if k < hi {
			hi = k
		}
		for i := lo; i <= hi; i++ {
			j := k - i
			sum += binomial(m, i) * binomial(n, j) * a.c[i] * b.c[j]
		}
		out[k] = sum / binomial(m+n, k)
	}
	return NewScalarBezier(out...)
}

// Roots returns the real roots of the polynomial in [0,1], sorted ascending.
func (b ScalarBezier) Roots() []float64 {
	roots := FindRoots(b, 0, 1, 0)
	out := make([]float64, len(roots))
	for i, r := range roots {
		out[i] = r.Value
	}
	return out
}

// BoundsFast returns the convex hull of the control coefficients: an
// interval that is a superset of the true range.
func (b ScalarBezier) BoundsFast() (lo, hi float64) {
	lo, hi = b.c[0], b.c[0]
	for _, v := range b.c[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}

// BoundsExact returns the union of the endpoint values with the value at
// every real root of the derivative: the tight range of the polynomial
// over [0,1].
func (b ScalarBezier) BoundsExact() (lo, hi float64) {
	lo, hi = b.ValueAt(0), b.ValueAt(1)
	if lo > hi {
		lo, hi = hi, lo
	}
	if b.Order() > 0 {
		for _, r := range b.Derivative().Roots() {
			v := b.ValueAt(r)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return
}

// BoundsLocal returns BoundsFast(Portion(t0, t1)).
func (b ScalarBezier) BoundsLocal(t0, t1 float64) (lo, hi float64) {
	return b.Portion(t0, t1).BoundsFast()
}

// IsFinite reports whether every coefficient is a finite float.
func (b ScalarBezier) IsFinite() bool {
	for _, v := range b.c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
