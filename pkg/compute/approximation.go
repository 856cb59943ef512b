package compute

import (
	"math/big"

	"github.com/contfrac/reals/pkg/hom"
)

// Approximation ingests a term stream into an identity homographic state
// and derives shrinking rational enclosures of the represented value.
// Consecutive convergents bracket the value on alternating sides, so which
// coefficient pair is the lower bound depends on the ingestion parity.
type Approximation struct {
	state      *hom.Homographic
	src        Computation
	ingestions int
	terminated bool
}

// NewApproximation returns an approximation with no terms ingested yet;
// bounds are undefined until Improve is called.
func NewApproximation(src Computation) *Approximation {
	return &Approximation{state: hom.Identity(), src: src}
}

// Terminated reports whether the source stream has ended (rational value,
// bounds pinched exact).
func (a *Approximation) Terminated() bool {
	return a.terminated
}

// Ingestions returns the number of terms absorbed so far.
func (a *Approximation) Ingestions() int {
	return a.ingestions
}

// Improve ingests up to n further terms.
func (a *Approximation) Improve(n int) {
	for i := 0; i < n; i++ {
		if a.terminated {
			return
		}
		a.ingestions++
		t, ok := a.src.Next()
		if !ok {
			a.state.IngestInf()
			a.terminated = true
			return
		}
		a.state.Ingest(t)
	}
}

// ImproveEpsilon ingests until the bracket width is at most eps.
func (a *Approximation) ImproveEpsilon(eps *big.Rat) {
	for {
		if e := a.Epsilon(); e != nil && e.Cmp(eps) <= 0 {
			return
		}
		if a.terminated {
			return
		}
		a.Improve(1)
	}
}

func (a *Approximation) lower() (*big.Int, *big.Int) {
	if a.ingestions%2 == 1 {
		return a.state.A, a.state.C
	}
	p := new(big.Int).Add(a.state.A, a.state.B)
	q := new(big.Int).Add(a.state.C, a.state.D)
	return p, q
}

func (a *Approximation) upper() (*big.Int, *big.Int) {
	if a.ingestions%2 == 1 {
		p := new(big.Int).Add(a.state.A, a.state.B)
		q := new(big.Int).Add(a.state.C, a.state.D)
		return p, q
	}
	return a.state.A, a.state.C
}

// LowerBound returns the current rational lower bound, or nil when it is
// not yet defined.
func (a *Approximation) LowerBound() *big.Rat {
	if a.ingestions == 0 {
		return nil
	}
	p, q := a.lower()
	if q.Sign() == 0 {
		return nil
	}
	return new(big.Rat).SetFrac(p, q)
}

// UpperBound returns the current rational upper bound, or nil when it is
// not yet defined.
func (a *Approximation) UpperBound() *big.Rat {
	if a.ingestions == 0 {
		return nil
	}
	p, q := a.upper()
	if q.Sign() == 0 {
		return nil
	}
	return new(big.Rat).SetFrac(p, q)
}

// AsRat returns the latest convergent a/c, or nil when undefined.
func (a *Approximation) AsRat() *big.Rat {
	if a.state.C.Sign() == 0 {
		return nil
	}
	return new(big.Rat).SetFrac(a.state.A, a.state.C)
}

// Epsilon returns the bracket width upper - lower, or nil while either
// bound is undefined.
func (a *Approximation) Epsilon() *big.Rat {
	lo := a.LowerBound()
	hi := a.UpperBound()
	if lo == nil || hi == nil {
		return nil
	}
	return new(big.Rat).Sub(hi, lo)
}

// ClosestFloat ingests until both bounds coerce to the same float64 and
// returns it. Diverges when no single float separates the value's
// neighbours, which cannot happen for finite streams.
func (a *Approximation) ClosestFloat() float64 {
	for {
		lo := a.LowerBound()
		hi := a.UpperBound()
		if lo != nil && hi != nil {
			lof, _ := lo.Float64()
			hif, _ := hi.Float64()
			if lof == hif {
				return lof
			}
		}
		if a.terminated {
			// Bounds are pinched; the latest convergent is exact.
			f, _ := a.AsRat().Float64()
			return f
		}
		a.Improve(1)
	}
}
