package compute

import (
	"math/big"

	"github.com/contfrac/reals/pkg/hom"
	"github.com/contfrac/reals/pkg/term"
)

// DefaultMaxIngestions bounds how long the algebraic transducer stays in
// simple mode before it may fall back to a generalized emission.
const DefaultMaxIngestions = 15

// Algebraic drives an output stream representing (a*x + b)/(c*x + d) for
// the real x produced by the input stream.
type Algebraic struct {
	state         *hom.Homographic
	x             Computation
	maxIngestions int
	terminated    bool
	simpleMode    bool
	xDone         bool
}

// NewAlgebraic returns an algebraic transducer with the default patience.
// The state must satisfy (c, d) != (0, 0).
func NewAlgebraic(x Computation, state *hom.Homographic) *Algebraic {
	return NewAlgebraicPatience(x, state, DefaultMaxIngestions)
}

// NewAlgebraicPatience returns an algebraic transducer with an explicit
// simple-mode ingestion bound.
func NewAlgebraicPatience(x Computation, state *hom.Homographic, maxIngestions int) *Algebraic {
	return &Algebraic{
		state:         state,
		x:             x,
		maxIngestions: maxIngestions,
		simpleMode:    true,
	}
}

func (a *Algebraic) ingestX() {
	if a.xDone {
		a.terminated = a.state.IngestInf()
		return
	}
	t, ok := a.x.Next()
	if !ok {
		a.xDone = true
		a.terminated = a.state.IngestInf()
		return
	}
	a.state.Ingest(t)
}

func (a *Algebraic) Next() (term.Term, bool) {
	if a.terminated {
		return term.Term{}, false
	}
	if a.state.C.Sign() == 0 && a.state.D.Sign() == 0 {
		panic("compute: degenerate homographic state")
	}

	ingestions := 0
	for {
		a.simpleMode = a.simpleMode && ingestions <= a.maxIngestions

		// Candidates are only meaningful when the image of [1, inf] does
		// not straddle a pole: c and c+d nonzero and of the same sign.
		cd := new(big.Int).Add(a.state.C, a.state.D)
		if a.state.C.Sign() != 0 && a.state.C.Sign() == cd.Sign() {
			n1 := term.FloorDiv(a.state.A, a.state.C)
			ab := new(big.Int).Add(a.state.A, a.state.B)
			n2 := term.FloorDiv(ab, cd)

			if n1.Cmp(n2) == 0 {
				a.simpleMode = true
				t := term.SimpleBig(n1)
				a.terminated = a.state.Emit(t)
				return t, true
			}
			if !a.simpleMode {
				diff := new(big.Int).Sub(n1, n2)
				if diff.CmpAbs(bigOne) == 0 {
					n, max := n1, n2
					if n1.Cmp(n2) > 0 {
						n, max = n2, n1
					}
					m := new(big.Int).Sub(max, n)
					m.Add(m, bigOne)
					t := term.FromBig(n, m)
					a.terminated = a.state.Emit(t)
					if a.terminated {
						panic("compute: generalized emission terminated the state")
					}
					return t, true
				}
			}
		}

		a.ingestX()
		if a.terminated {
			return term.Term{}, false
		}
		ingestions++
	}
}

var bigOne = big.NewInt(1)
