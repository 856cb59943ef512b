// Package real wires the stream transducers into an exact real-number
// type: arbitrary-precision values represented by lazy continued-fraction
// streams, with arithmetic, transcendental functions, comparison and
// decimal rendering on top.
package real

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sync"

	apd "github.com/cockroachdb/apd/v3"

	"github.com/contfrac/reals/pkg/compute"
	"github.com/contfrac/reals/pkg/hom"
	"github.com/contfrac/reals/pkg/series"
	"github.com/contfrac/reals/pkg/term"
)

// Domain and construction errors.
var (
	ErrZeroDenominator = errors.New("real: zero denominator")
	ErrNonFiniteFloat  = errors.New("real: non-finite float")
	ErrNegativeSqrt    = errors.New("real: square root of negative value")
	ErrNonPositiveLog  = errors.New("real: logarithm of non-positive value")
)

// Real is an exact real number: a single-pass term iterator plus the
// shared append-only cache that lets any number of consumers read it, each
// at its own cursor. A Real may appear many times in an expression tree;
// every term is computed at most once.
type Real struct {
	src   compute.Computation
	cache *compute.Cache
}

// FromComputation wraps a raw term stream. The stream becomes owned by the
// Real and must not be read elsewhere.
func FromComputation(c compute.Computation) *Real {
	return &Real{src: c, cache: compute.NewCache()}
}

// Compute returns a fresh cursor over the value's term stream.
func (x *Real) Compute() compute.Computation {
	return compute.NewCached(x.src, x.cache)
}

// Cache exposes the shared term cache (diagnostics and tests).
func (x *Real) Cache() *compute.Cache {
	return x.cache
}

// FromTerms returns the real with the given term stream.
func FromTerms(terms []term.Term) *Real {
	return FromComputation(compute.FromSlice(terms))
}

// FromInt64 returns the real n.
func FromInt64(n int64) *Real {
	return FromTerms([]term.Term{term.Simple(n)})
}

// FromInt returns the real n.
func FromInt(n *big.Int) *Real {
	return FromTerms([]term.Term{term.SimpleBig(n)})
}

// FromRat returns the real p/q. The canonical simple continued fraction is
// produced by an algebraic transducer over an empty input with the
// degenerate state (p, p, q, q).
func FromRat(r *big.Rat) *Real {
	return FromComputation(ratStream(r))
}

func ratStream(r *big.Rat) compute.Computation {
	return compute.NewAlgebraic(compute.Empty(),
		hom.New(r.Num(), r.Num(), r.Denom(), r.Denom()))
}

// FromFraction returns the real p/q.
func FromFraction(p, q int64) (*Real, error) {
	if q == 0 {
		return nil, ErrZeroDenominator
	}
	return FromRat(big.NewRat(p, q)), nil
}

// FromFloat returns the real equal to the exact binary value of f.
// Mixing raw floats into arithmetic is refused everywhere else; this is
// the one explicit conversion point.
func FromFloat(f float64) (*Real, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrNonFiniteFloat
	}
	r := new(big.Rat).SetFloat64(f)
	return FromRat(r), nil
}

// FromDecimal returns the real equal to the decimal literal s, e.g.
// "-12.3450" or "1.5e-8". The literal is validated and canonicalized by
// the apd decimal parser, then converted exactly to a rational.
func FromDecimal(s string) (*Real, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("real: parsing decimal %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("real: decimal %q is not finite", s)
	}
	r, ok := new(big.Rat).SetString(d.Text('f'))
	if !ok {
		return nil, fmt.Errorf("real: converting decimal %q", s)
	}
	return FromRat(r), nil
}

// FromSimpleFunc returns the real whose i-th simple term (1-based) is
// f(i). The first value is the integer part; later values must be >= 1.
func FromSimpleFunc(f func(i int) *big.Int) *Real {
	return FromComputation(compute.FromIndexFunc(func(i int) term.Term {
		return term.SimpleBig(f(i))
	}))
}

var (
	eOnce, piOnce, phiOnce sync.Once
	eReal, piReal, phiReal *Real
)

// E returns Euler's number. The returned value is shared: its term cache
// grows with the highest precision any consumer has demanded.
func E() *Real {
	eOnce.Do(func() { eReal = FromComputation(series.ETerms()) })
	return eReal
}

// Pi returns the circle constant, shared like E.
func Pi() *Real {
	piOnce.Do(func() { piReal = FromComputation(series.Pi()) })
	return piReal
}

// Phi returns the golden ratio, shared like E.
func Phi() *Real {
	phiOnce.Do(func() { phiReal = FromComputation(series.PhiTerms()) })
	return phiReal
}

// Approx returns a fresh approximation of x with no terms ingested yet.
func (x *Real) Approx() *compute.Approximation {
	return compute.NewApproximation(x.Compute())
}

// ClosestFloat returns the float64 enclosed by an epsilon-tight bracket
// of x. Diverges only for streams that stall (see Compare).
func (x *Real) ClosestFloat() float64 {
	return x.Approx().ClosestFloat()
}

// BestRationalApproximations returns the first n convergents of x. For a
// rational value the list is truncated at the exact convergent.
func (x *Real) BestRationalApproximations(n int) []*big.Rat {
	a := x.Approx()
	var out []*big.Rat
	for i := 0; i < n; i++ {
		a.Improve(1)
		r := a.AsRat()
		if r == nil {
			continue
		}
		out = append(out, r)
		if a.Terminated() {
			break
		}
	}
	return out
}
