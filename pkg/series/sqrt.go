package series

import (
	"math/big"

	"github.com/contfrac/reals/pkg/compute"
	"github.com/contfrac/reals/pkg/hom"
	"github.com/contfrac/reals/pkg/term"
)

// sqrtComputation emits the simple continued fraction of sqrt(n) by
// iterating the fix-point integer of the residual homographic state: at
// each step the current tail x is the fixed point x = h(x) of the state h
// (initially h(x) = n/x), the fix-point k is the next term, and
// ingest(k)+emit(k) advances to the next residual. A vanished fix-point marks termination; callers resolve
// perfect squares before ever constructing this stream.
type sqrtComputation struct {
	state *hom.Homographic
	done  bool
}

// SqrtInt returns the term stream of sqrt(n) for n > 0.
func SqrtInt(n *big.Int) compute.Computation {
	if n.Sign() <= 0 {
		panic("series: SqrtInt requires n > 0")
	}
	zero := new(big.Int)
	one := big.NewInt(1)
	return &sqrtComputation{state: hom.New(zero, n, one, zero)}
}

func (s *sqrtComputation) Next() (term.Term, bool) {
	if s.done {
		return term.Term{}, false
	}
	k, ok := s.state.FixPoint()
	if !ok {
		s.done = true
		return term.Term{}, false
	}
	t := term.SimpleBig(k)
	s.state.Ingest(t)
	s.state.Emit(t)
	return t, true
}

// SqrtRatStream returns the term stream of sqrt(p/q) as the quotient of
// the two integer square roots through one bihomographic transducer.
// Callers resolve perfect-square fractions beforehand.
func SqrtRatStream(p, q *big.Int) compute.Computation {
	return compute.NewQuadratic(SqrtInt(p), SqrtInt(q),
		hom.NewBi(0, 1, 0, 0, 0, 0, 1, 0))
}
