package compute

import (
	"math/big"

	"github.com/contfrac/reals/pkg/hom"
	"github.com/contfrac/reals/pkg/term"
)

// DefaultMaxIngestionsQuadratic bounds the quadratic transducer's patience;
// it is lower than the algebraic bound because each step may ingest from
// both inputs.
const DefaultMaxIngestionsQuadratic = 5

// Quadratic drives an output stream representing
// (a*xy + b*x + c*y + d)/(e*xy + f*x + g*y + h) for the reals x, y produced
// by its two input streams.
type Quadratic struct {
	state         *hom.Bihomographic
	x, y          Computation
	xDone, yDone  bool
	maxIngestions int
	terminated    bool
}

// NewQuadratic returns a quadratic transducer with the default patience.
func NewQuadratic(x, y Computation, state *hom.Bihomographic) *Quadratic {
	return NewQuadraticPatience(x, y, state, DefaultMaxIngestionsQuadratic)
}

// NewQuadraticPatience returns a quadratic transducer with an explicit
// ingestion bound.
func NewQuadraticPatience(x, y Computation, state *hom.Bihomographic, maxIngestions int) *Quadratic {
	return &Quadratic{state: state, x: x, y: y, maxIngestions: maxIngestions}
}

func (q *Quadratic) ingestX() {
	if q.xDone {
		q.terminated = q.state.XIngestInf()
		return
	}
	t, ok := q.x.Next()
	if !ok {
		q.xDone = true
		q.terminated = q.state.XIngestInf()
		return
	}
	q.state.XIngest(t)
}

func (q *Quadratic) ingestY() {
	if q.yDone {
		q.terminated = q.state.YIngestInf()
		return
	}
	t, ok := q.y.Next()
	if !ok {
		q.yDone = true
		q.terminated = q.state.YIngestInf()
		return
	}
	q.state.YIngest(t)
}

// corner denominators of the image of the unit square [1,inf]^2.
func (q *Quadratic) denominators() (d00, d10, d01, d11 *big.Int) {
	s := q.state
	d00 = new(big.Int).Add(s.E, s.F)
	d00.Add(d00, s.G)
	d00.Add(d00, s.H)
	d10 = new(big.Int).Add(s.E, s.F)
	d01 = new(big.Int).Add(s.E, s.G)
	d11 = new(big.Int).Set(s.E)
	return
}

func (q *Quadratic) quotients(d00, d10, d01, d11 *big.Int) (q00, q10, q01, q11 *big.Int) {
	s := q.state
	n00 := new(big.Int).Add(s.A, s.B)
	n00.Add(n00, s.C)
	n00.Add(n00, s.D)
	n10 := new(big.Int).Add(s.A, s.B)
	n01 := new(big.Int).Add(s.A, s.C)
	q00 = term.FloorDiv(n00, d00)
	q10 = term.FloorDiv(n10, d10)
	q01 = term.FloorDiv(n01, d01)
	q11 = term.FloorDiv(s.A, d11)
	return
}

func (q *Quadratic) Next() (term.Term, bool) {
	if q.terminated {
		return term.Term{}, false
	}
	s := q.state
	if s.E.Sign() == 0 && s.F.Sign() == 0 && s.G.Sign() == 0 && s.H.Sign() == 0 {
		panic("compute: degenerate bihomographic state")
	}

	ingestions := 0
	for {
		d00, d10, d01, d11 := q.denominators()
		allNonzero := d00.Sign() != 0 && d10.Sign() != 0 && d01.Sign() != 0 && d11.Sign() != 0

		if ingestions > q.maxIngestions && allNonzero {
			return q.emitFallback(d00, d10, d01, d11)
		}

		var xIngest, yIngest bool
		sameSign := allNonzero &&
			d00.Sign() == d10.Sign() && d00.Sign() == d01.Sign() && d00.Sign() == d11.Sign()

		if !sameSign {
			// A pole crosses the region; narrow it along every axis whose
			// corner denominators disagree.
			xIngest = d00.Sign() != d10.Sign() || d01.Sign() != d11.Sign()
			yIngest = d00.Sign() != d01.Sign() || d10.Sign() != d11.Sign()
			if !xIngest && !yIngest {
				panic("compute: inconsistent denominator signs")
			}
		} else {
			q00, q10, q01, q11 := q.quotients(d00, d10, d01, d11)
			xIngest = q00.Cmp(q10) != 0 || q01.Cmp(q11) != 0
			yIngest = q00.Cmp(q01) != 0 || q10.Cmp(q11) != 0
			if !xIngest && !yIngest {
				t := term.SimpleBig(q00)
				q.terminated = s.Emit(t)
				return t, true
			}
		}

		ingestions++
		if xIngest {
			q.ingestX()
		}
		if yIngest && !q.terminated {
			q.ingestY()
		}
		if q.terminated {
			return term.Term{}, false
		}
	}
}

// emitFallback emits a generalized term spanning the four corner quotients
// once patience is exhausted.
func (q *Quadratic) emitFallback(d00, d10, d01, d11 *big.Int) (term.Term, bool) {
	q00, q10, q01, q11 := q.quotients(d00, d10, d01, d11)
	min, max := q00, q00
	for _, v := range []*big.Int{q10, q01, q11} {
		if v.Cmp(min) < 0 {
			min = v
		}
		if v.Cmp(max) > 0 {
			max = v
		}
	}
	m := new(big.Int).Sub(max, min)
	m.Add(m, bigOne)
	t := term.FromBig(min, m)
	q.terminated = q.state.Emit(t)
	return t, true
}
