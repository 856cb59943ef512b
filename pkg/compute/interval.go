package compute

import (
	"math/big"

	"github.com/contfrac/reals/pkg/hom"
	"github.com/contfrac/reals/pkg/term"
)

// Interval is a pass-through computation: it forwards the terms of its
// source unchanged while maintaining a rational enclosure of the value
// seen so far. Consumers that want both the stream and its brackets read
// through an Interval instead of running a separate Approximation.
type Interval struct {
	src          Computation
	state        *hom.Homographic
	i            int
	lower, upper *big.Rat
	done         bool
}

// NewInterval returns a pass-through enclosure tracker over src.
func NewInterval(src Computation) *Interval {
	return &Interval{src: src, state: hom.Identity()}
}

// Bounds returns the current enclosure; either side is nil until enough
// terms have passed through to define it.
func (iv *Interval) Bounds() (lower, upper *big.Rat) {
	return iv.lower, iv.upper
}

func (iv *Interval) Next() (term.Term, bool) {
	if iv.done {
		return term.Term{}, false
	}
	t, ok := iv.src.Next()
	if !ok {
		iv.state.IngestInf()
		iv.done = true
		if exact := ratFrom(iv.state.A, iv.state.C); exact != nil {
			iv.lower, iv.upper = exact, exact
		}
		return term.Term{}, false
	}
	iv.state.Ingest(t)
	iv.i++

	// The newest convergent a/c and the previous one b/d bracket the value;
	// sides alternate with the term index.
	if iv.i%2 == 1 {
		if r := ratFrom(iv.state.A, iv.state.C); r != nil {
			iv.lower = r
		}
		if r := ratFrom(iv.state.B, iv.state.D); r != nil {
			iv.upper = r
		}
	} else {
		if r := ratFrom(iv.state.B, iv.state.D); r != nil {
			iv.lower = r
		}
		if r := ratFrom(iv.state.A, iv.state.C); r != nil {
			iv.upper = r
		}
	}
	return t, true
}

func ratFrom(p, q *big.Int) *big.Rat {
	if q.Sign() == 0 {
		return nil
	}
	return new(big.Rat).SetFrac(p, q)
}
