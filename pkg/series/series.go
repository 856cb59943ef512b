// Package series provides the generalized-continued-fraction expansions
// behind the transcendental functions and named constants: raw term
// generators whose convergents bracket the target value, renormalized into
// well-formed streams by an algebraic transducer.
package series

import (
	"math/big"

	"github.com/contfrac/reals/pkg/compute"
	"github.com/contfrac/reals/pkg/hom"
	"github.com/contfrac/reals/pkg/term"
)

// piPatience is the ingestion bound used to renormalize the slowly
// converging pi series into canonical simple terms.
const piPatience = 100

// ExpFrac returns the term stream of exp(p/q) for the rational p/q.
// The helper emits (6q, p^2), (10q, p^2), ... stepping by 4q, wrapped in
// the map (2q+p, p^2, 2q-p, p^2).
func ExpFrac(r *big.Rat) compute.Computation {
	p := new(big.Int).Set(r.Num())
	q := new(big.Int).Set(r.Denom())
	p2 := new(big.Int).Mul(p, p)

	m := new(big.Int).Mul(big.NewInt(6), q)
	incr := new(big.Int).Mul(big.NewInt(4), q)
	helper := compute.FromFunc(func() (term.Term, bool) {
		t := term.FromBig(m, p2)
		m.Add(m, incr)
		return t, true
	})

	twoQ := new(big.Int).Lsh(q, 1)
	a := new(big.Int).Add(twoQ, p)
	c := new(big.Int).Sub(twoQ, p)
	return compute.NewAlgebraic(helper, hom.New(a, p2, c, p2))
}

// LogFrac returns the term stream of the natural log of p/q, p/q > 0.
// With d = p - q the helper emits (0, d), then the alternating pairs
// ((2k+1)q, (k+1)d) and (2, (k+1)d) for k = 0, 1, ...
func LogFrac(r *big.Rat) compute.Computation {
	p := new(big.Int).Set(r.Num())
	q := new(big.Int).Set(r.Denom())
	x := new(big.Int).Sub(p, q)

	m := new(big.Int).Set(x)
	n := new(big.Int).Set(q)
	incr := new(big.Int).Lsh(q, 1)
	first := true
	odd := true
	helper := compute.FromFunc(func() (term.Term, bool) {
		if first {
			first = false
			return term.FromBig(big.NewInt(0), x), true
		}
		if odd {
			odd = false
			return term.FromBig(n, m), true
		}
		odd = true
		t := term.FromBig(big.NewInt(2), m)
		m.Add(m, x)
		n.Add(n, incr)
		return t, true
	})
	return compute.NewAlgebraic(helper, hom.Identity())
}

// SinFrac returns the term stream of sin(p/q) for |p/q| < pi/2, where the
// series converges fastest. The helper emits (0, p), (q, p^2 q), then
// (k(k+1)q^2 - p^2, k(k+1)p^2 q^2) for even k.
func SinFrac(r *big.Rat) compute.Computation {
	p := new(big.Int).Set(r.Num())
	q := new(big.Int).Set(r.Denom())
	p2 := new(big.Int).Mul(p, p)
	q2 := new(big.Int).Mul(q, q)
	p2q2 := new(big.Int).Mul(p2, q2)

	i := 0
	k := big.NewInt(2)
	helper := compute.FromFunc(func() (term.Term, bool) {
		switch i {
		case 0:
			i++
			return term.FromBig(big.NewInt(0), p), true
		case 1:
			i++
			return term.FromBig(q, new(big.Int).Mul(p2, q)), true
		}
		coeff := new(big.Int).Add(k, bigOne)
		coeff.Mul(coeff, k)
		a := new(big.Int).Mul(coeff, q2)
		a.Sub(a, p2)
		if a.Sign() <= 0 {
			panic("series: sin argument outside (-pi/2, pi/2)")
		}
		t := term.FromBig(a, new(big.Int).Mul(coeff, p2q2))
		k.Add(k, bigTwo)
		return t, true
	})
	return compute.NewAlgebraic(helper, hom.Identity())
}

// PiGCF returns the raw Euler series for pi:
// 4/(1 + 1/(3 + 4/(5 + 9/(7 + ...)))).
func PiGCF() compute.Computation {
	first := true
	m := big.NewInt(1)
	n := big.NewInt(1)
	return compute.FromFunc(func() (term.Term, bool) {
		if first {
			first = false
			return term.New(0, 4), true
		}
		t := term.FromBig(m, n)
		m.Add(m, bigTwo)
		n.Add(n, m)
		return t, true
	})
}

// Pi returns the canonical term stream of pi: the raw series renormalized
// through an identity transducer with a long patience.
func Pi() compute.Computation {
	return compute.NewAlgebraicPatience(PiGCF(), hom.Identity(), piPatience)
}

// ETerms returns the simple continued fraction of e:
// [2; 1, 2, 1, 1, 4, 1, 1, 6, ...].
func ETerms() compute.Computation {
	first := true
	k := big.NewInt(2)
	phase := 0
	return compute.FromFunc(func() (term.Term, bool) {
		if first {
			first = false
			return term.Simple(2), true
		}
		switch phase {
		case 0, 2:
			phase = (phase + 1) % 3
			return term.Simple(1), true
		default:
			phase = 2
			t := term.SimpleBig(k)
			k.Add(k, bigTwo)
			return t, true
		}
	})
}

// PhiTerms returns the simple continued fraction of the golden ratio:
// all ones.
func PhiTerms() compute.Computation {
	return compute.FromFunc(func() (term.Term, bool) {
		return term.Simple(1), true
	})
}

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)
