// Package hom implements the linear-fractional and bilinear-fractional
// coefficient states that drive every stream transducer in this module.
package hom

import (
	"math/big"

	"github.com/contfrac/reals/pkg/term"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
	ten = big.NewInt(10)
)

// Homographic represents the pending map (a*x + b)/(c*x + d) where x ranges
// over the remainder of the input stream. Coefficients grow without bound;
// they are arbitrary-precision throughout.
type Homographic struct {
	A, B, C, D *big.Int
}

// New returns a homographic state, copying the coefficients.
func New(a, b, c, d *big.Int) *Homographic {
	return &Homographic{
		A: new(big.Int).Set(a),
		B: new(big.Int).Set(b),
		C: new(big.Int).Set(c),
		D: new(big.Int).Set(d),
	}
}

// NewInt returns a homographic state from int64 coefficients.
func NewInt(a, b, c, d int64) *Homographic {
	return &Homographic{
		A: big.NewInt(a),
		B: big.NewInt(b),
		C: big.NewInt(c),
		D: big.NewInt(d),
	}
}

// Identity returns the state (1, 0, 0, 1).
func Identity() *Homographic {
	return NewInt(1, 0, 0, 1)
}

// Ingest substitutes x -> n + m/x and renormalizes.
func (h *Homographic) Ingest(t term.Term) {
	a := new(big.Int).Mul(t.N, h.A)
	a.Add(a, h.B)
	b := new(big.Int).Mul(t.M, h.A)
	c := new(big.Int).Mul(t.N, h.C)
	c.Add(c, h.D)
	d := new(big.Int).Mul(t.M, h.C)
	h.A, h.B, h.C, h.D = a, b, c, d
}

// IngestInf records that the input stream has ended (x -> infinity).
// Returns true when the state has degenerated (c = d = 0), which means the
// output stream is finished as well.
func (h *Homographic) IngestInf() bool {
	h.B = new(big.Int).Set(h.A)
	h.D = new(big.Int).Set(h.C)
	return h.C.Sign() == 0 && h.D.Sign() == 0
}

// Emit factors the term n + m/(...) out of the represented value.
// Returns true when the residual is exhausted (rational input fully
// emitted): post-subtraction a = b = 0.
func (h *Homographic) Emit(t term.Term) bool {
	ra := new(big.Int).Mul(t.N, h.C)
	ra.Sub(h.A, ra)
	rb := new(big.Int).Mul(t.N, h.D)
	rb.Sub(h.B, rb)
	terminated := ra.Sign() == 0 && rb.Sign() == 0
	h.A = new(big.Int).Mul(t.M, h.C)
	h.B = new(big.Int).Mul(t.M, h.D)
	h.C, h.D = ra, rb
	return terminated
}

// EmitDigit factors the decimal digit d out of the represented value and
// scales the residual by 10: (a, b) <- 10*(a - d*c), 10*(b - d*d).
func (h *Homographic) EmitDigit(digit *big.Int) {
	na := new(big.Int).Mul(digit, h.C)
	na.Sub(h.A, na)
	na.Mul(na, ten)
	nb := new(big.Int).Mul(digit, h.D)
	nb.Sub(h.B, nb)
	nb.Mul(nb, ten)
	h.A, h.B = na, nb
}

// EvalInt evaluates the map at the integer n and floors the result.
// ok is false when the denominator vanishes at n.
func (h *Homographic) EvalInt(n *big.Int) (*big.Int, bool) {
	den := new(big.Int).Mul(h.C, n)
	den.Add(den, h.D)
	if den.Sign() == 0 {
		return nil, false
	}
	num := new(big.Int).Mul(h.A, n)
	num.Add(num, h.B)
	return term.FloorDiv(num, den), true
}

// GuessInt returns a nonnegative-denominator starting point for the
// fix-point iteration: the smallest integer of the right sign that makes
// c*x + d positive. ok is false when no such integer exists (c = 0 and
// d <= 0).
func (h *Homographic) GuessInt() (*big.Int, bool) {
	switch h.C.Sign() {
	case 0:
		if h.D.Sign() <= 0 {
			return nil, false
		}
		return big.NewInt(0), true
	case 1:
		g := term.FloorDiv(new(big.Int).Neg(h.D), h.C)
		g.Add(g, one)
		if g.Sign() < 0 {
			g.SetInt64(0)
		}
		return g, true
	default:
		g := new(big.Int).Neg(term.FloorDiv(h.D, h.C))
		g.Sub(g, one)
		if g.Sign() > 0 {
			g.SetInt64(0)
		}
		return g, true
	}
}

// FixPoint returns the integer k with h(k) in [k, k+1), found by bisection
// from GuessInt. ok is false when the iteration cannot start (or starts at
// zero), which the square-root computation treats as stream termination.
func (h *Homographic) FixPoint() (*big.Int, bool) {
	cur, ok := h.GuessInt()
	if !ok || cur.Sign() == 0 {
		return nil, false
	}

	for {
		value, ok := h.EvalInt(cur)
		if !ok {
			panic("hom: fix-point guess hit a pole")
		}
		next := new(big.Int).Add(cur, value)
		next = term.FloorDiv(next, two)

		diff := new(big.Int).Sub(next, cur)
		if diff.Sign() == 0 {
			return cur, true
		}
		if diff.Cmp(one) == 0 {
			// The step cannot tell cur from cur+1; next is the fix-point
			// when the map has not yet dropped below it there.
			if v, ok := h.EvalInt(next); ok && v.Cmp(next) >= 0 {
				return next, true
			}
			return cur, true
		}
		cur = next
	}
}
