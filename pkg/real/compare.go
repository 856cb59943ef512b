package real

import (
	"math/big"

	"github.com/contfrac/reals/pkg/compute"
)

// Ordering is the result of an epsilon-bounded comparison. Equality of
// reals is undecidable in general, so Unknown is a legitimate answer: the
// brackets overlap even though both are tighter than epsilon.
type Ordering int

const (
	Unknown Ordering = iota
	Smaller
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Smaller:
		return "smaller"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// DefaultEpsilon is the comparison cutoff used by the operator wrappers.
var DefaultEpsilon = big.NewRat(1, 100000)

// Compare shrinks brackets of x and y until they are disjoint (ordering
// decided) or both tighter than eps/2 (Unknown).
func Compare(x, y *Real, eps *big.Rat) Ordering {
	xa := compute.NewApproximation(x.Compute())
	ya := compute.NewApproximation(y.Compute())
	xa.Improve(1)
	ya.Improve(1)
	half := new(big.Rat).Mul(eps, big.NewRat(1, 2))

	for {
		xLo, xHi := xa.LowerBound(), xa.UpperBound()
		yLo, yHi := ya.LowerBound(), ya.UpperBound()

		if xHi != nil && yLo != nil && xHi.Cmp(yLo) < 0 {
			return Smaller
		}
		if xLo != nil && yHi != nil && yHi.Cmp(xLo) < 0 {
			return Greater
		}

		xEps := xa.Epsilon()
		yEps := ya.Epsilon()
		if xEps == nil || xEps.Cmp(half) > 0 {
			xa.Improve(1)
		}
		if yEps == nil || yEps.Cmp(half) > 0 {
			ya.Improve(1)
		}
		if xEps != nil && xEps.Cmp(half) <= 0 && yEps != nil && yEps.Cmp(half) <= 0 {
			return Unknown
		}
	}
}

// Lt reports x < y to the default epsilon.
func Lt(x, y *Real) bool { return Compare(x, y, DefaultEpsilon) == Smaller }

// Gt reports x > y to the default epsilon.
func Gt(x, y *Real) bool { return Compare(x, y, DefaultEpsilon) == Greater }

// Eq reports that x and y are indistinguishable at the default epsilon.
// It cannot certify exact equality.
func Eq(x, y *Real) bool { return Compare(x, y, DefaultEpsilon) == Unknown }
