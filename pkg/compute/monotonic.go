package compute

import (
	"math/big"

	"github.com/contfrac/reals/pkg/term"
)

// improveStep is how many argument terms are ingested per refinement of
// the monotone driver's bracket.
const improveStep = 10

// GeneratorFunc builds the term stream of f(r) for a rational argument r.
type GeneratorFunc func(r *big.Rat) Computation

// Monotonic lifts a rational-argument function to a real argument. It
// evaluates f at the lower and upper rational bracket of the argument and
// emits the terms both streams agree on; as long as f is monotone on the
// bracket, agreed terms are correct for f(x). On disagreement the bracket
// is tightened and fresh children are fast-forwarded past the agreed
// prefix.
type Monotonic struct {
	gen    GeneratorFunc
	domain func(lo, hi *big.Rat) bool
	approx *Approximation
	n      int
	lo, hi Computation
}

// NewMonotonic returns the monotone-bracket driver for f over the argument
// stream src.
func NewMonotonic(src Computation, gen GeneratorFunc) *Monotonic {
	return NewMonotonicDomain(src, gen, nil)
}

// NewMonotonicDomain additionally refines the argument bracket until
// domain(lo, hi) holds before ever invoking the generator, e.g. lo > 0 for
// the logarithm. Diverges when the argument never satisfies the domain and
// its stream never ends; panics when the stream ends outside the domain.
func NewMonotonicDomain(src Computation, gen GeneratorFunc, domain func(lo, hi *big.Rat) bool) *Monotonic {
	m := &Monotonic{gen: gen, domain: domain, approx: NewApproximation(src)}
	m.increasePrecision()
	return m
}

func (m *Monotonic) bracket() (*big.Rat, *big.Rat, bool) {
	lo := m.approx.LowerBound()
	hi := m.approx.UpperBound()
	if lo == nil || hi == nil {
		return nil, nil, false
	}
	if m.domain != nil && !m.domain(lo, hi) {
		return nil, nil, false
	}
	return lo, hi, true
}

func (m *Monotonic) increasePrecision() {
	m.approx.Improve(improveStep)
	for {
		lo, hi, ok := m.bracket()
		if ok {
			m.lo = m.gen(lo)
			m.hi = m.gen(hi)
			for i := 0; i < m.n; i++ {
				m.lo.Next()
				m.hi.Next()
			}
			return
		}
		if m.approx.Terminated() {
			panic("compute: monotone argument terminated outside the domain")
		}
		m.approx.Improve(1)
	}
}

func (m *Monotonic) Next() (term.Term, bool) {
	for {
		t1, ok1 := m.lo.Next()
		t2, ok2 := m.hi.Next()

		if ok1 && ok2 && t1.Equal(t2) {
			m.n++
			return t1, true
		}

		if m.approx.Terminated() {
			lo := m.approx.LowerBound()
			hi := m.approx.UpperBound()
			if lo != nil && hi != nil && lo.Cmp(hi) == 0 {
				// The bracket is pinched to a single rational: both
				// children are the same stream, so the only way here is
				// joint exhaustion.
				if !ok1 && !ok2 {
					return term.Term{}, false
				}
				panic("compute: pinched bracket with disagreeing children")
			}
		}
		m.increasePrecision()
	}
}
