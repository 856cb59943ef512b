package real

import (
	"math/big"
	"strings"

	"github.com/contfrac/reals/pkg/compute"
	"github.com/contfrac/reals/pkg/hom"
	"github.com/contfrac/reals/pkg/term"
)

// Digits streams the decimal expansion of a real: the first value is the
// floor integer part (possibly negative), every later value is a digit of
// the fractional part in 0..9. A decided digit is final. The stream pads
// zeros once a rational value is exhausted; Exact reports that state.
//
// Deciding a digit may absorb unboundedly many input terms, so a pull can
// diverge on adversarial values (spec: divergence hazard); use Evaluate
// for a bounded surface.
type Digits struct {
	state   *hom.Homographic
	src     compute.Computation
	srcDone bool
	done    bool
}

// NewDigits returns the digit consumer for x.
func NewDigits(x *Real) *Digits {
	return &Digits{state: hom.Identity(), src: x.Compute()}
}

// Exact reports that the value has been fully consumed and every digit
// not yet produced is zero.
func (d *Digits) Exact() bool {
	return d.srcDone && d.state.A.Sign() == 0 && d.state.B.Sign() == 0
}

// Next returns the next value of the expansion. ok is false only when the
// state degenerates entirely (c = d = 0).
func (d *Digits) Next() (*big.Int, bool) {
	if d.done {
		return nil, false
	}
	for {
		if d.state.C.Sign() == 0 && d.state.D.Sign() == 0 {
			d.done = true
			return nil, false
		}

		// Same decision as the algebraic transducer: both integer-part
		// candidates defined, no pole inside the region, candidates equal.
		cd := new(big.Int).Add(d.state.C, d.state.D)
		if d.state.C.Sign() != 0 && d.state.C.Sign() == cd.Sign() {
			n1 := term.FloorDiv(d.state.A, d.state.C)
			ab := new(big.Int).Add(d.state.A, d.state.B)
			n2 := term.FloorDiv(ab, cd)
			if n1.Cmp(n2) == 0 {
				d.state.EmitDigit(n1)
				return n1, true
			}
		}

		if d.srcDone {
			d.state.IngestInf()
			continue
		}
		t, ok := d.src.Next()
		if !ok {
			d.srcDone = true
			d.state.IngestInf()
			continue
		}
		d.state.Ingest(t)
	}
}

// Evaluate renders x as a decimal string with n fractional digits,
// truncated. With round set, 5*10^(-n-1) is added first, giving a
// correctly rounded final digit.
func (x *Real) Evaluate(n int, round bool) string {
	v := x
	if round {
		den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n+1)), nil)
		v = x.AddRat(new(big.Rat).SetFrac(big.NewInt(5), den))
	}

	d := NewDigits(v)
	intPart, ok := d.Next()
	if !ok {
		panic("real: digit stream degenerated before the integer part")
	}
	digits := make([]int, 0, n)
	for len(digits) < n {
		dig, ok := d.Next()
		if !ok {
			break
		}
		digits = append(digits, int(dig.Int64()))
	}
	exact := d.Exact() || d.done
	// A negative value needs to know whether any digit past the cutoff is
	// nonzero: look ahead until one is, or until the expansion ends.
	for intPart.Sign() < 0 && !exact {
		dig, ok := d.Next()
		if !ok {
			exact = true
			break
		}
		if dig.Sign() != 0 {
			break
		}
		exact = d.Exact()
	}
	for len(digits) < n {
		digits = append(digits, 0)
	}

	if intPart.Sign() >= 0 {
		return formatDigits(intPart.String(), digits, n)
	}
	return formatNegative(intPart, digits, n, exact)
}

func formatDigits(intStr string, digits []int, n int) string {
	if n == 0 {
		return intStr
	}
	var b strings.Builder
	b.WriteString(intStr)
	b.WriteByte('.')
	for _, d := range digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// formatNegative converts the floor-based expansion k + 0.d1d2... (k < 0)
// into sign-magnitude decimal. When some digit beyond the cutoff is
// nonzero the magnitude digits are the nines-complement of the fractional
// digits; when the expansion is exact within the cutoff the pending
// borrow resolves against the last nonzero digit.
func formatNegative(intPart *big.Int, digits []int, n int, exact bool) string {
	lastNonzero := -1
	for i, d := range digits {
		if d != 0 {
			lastNonzero = i
		}
	}

	if lastNonzero < 0 && exact {
		// The value is the negative integer -|k| exactly.
		mag := new(big.Int).Neg(intPart)
		return formatDigits("-"+mag.String(), digits, n)
	}

	mag := new(big.Int).Neg(intPart)
	mag.Sub(mag, big.NewInt(1))
	out := make([]int, len(digits))
	if exact {
		for i, d := range digits {
			switch {
			case i < lastNonzero:
				out[i] = 9 - d
			case i == lastNonzero:
				out[i] = 10 - d
			default:
				out[i] = 0
			}
		}
	} else {
		for i, d := range digits {
			out[i] = 9 - d
		}
	}
	return formatDigits("-"+mag.String(), out, n)
}
