package real

import (
	"math/big"

	"github.com/contfrac/reals/pkg/compute"
	"github.com/contfrac/reals/pkg/series"
)

// Exp returns e^x, lifting the rational exp series through the
// monotone-bracket driver.
func Exp(x *Real) *Real {
	return FromComputation(compute.NewMonotonic(x.Compute(), series.ExpFrac))
}

// ExpRat returns e^(p/q) directly from the series.
func ExpRat(r *big.Rat) *Real {
	return FromComputation(series.ExpFrac(r))
}

// Log returns the natural logarithm of x. The argument bracket is refined
// until it is strictly positive before the series is consulted, so for
// x <= 0 Log blocks when x's stream never ends and panics when it ends
// (a rational x <= 0).
func Log(x *Real) *Real {
	return FromComputation(compute.NewMonotonicDomain(x.Compute(), series.LogFrac,
		func(lo, hi *big.Rat) bool { return lo.Sign() > 0 }))
}

// LogBase returns the base-b logarithm of x as log(x)/log(b), one
// quadratic transducer over the two natural-log streams.
func LogBase(x, b *Real) *Real {
	return Log(x).Div(Log(b))
}

// LogRat returns log(p/q) directly from the series.
func LogRat(r *big.Rat) (*Real, error) {
	if r.Sign() <= 0 {
		return nil, ErrNonPositiveLog
	}
	return FromComputation(series.LogFrac(r)), nil
}

// SqrtInt returns the square root of a nonnegative integer. Perfect
// squares are resolved up front so the fix-point loop only ever runs on
// irrational targets, where its termination sentinel is moot.
func SqrtInt(n *big.Int) (*Real, error) {
	if n.Sign() < 0 {
		return nil, ErrNegativeSqrt
	}
	if n.Sign() == 0 {
		return FromInt64(0), nil
	}
	if root, exact := perfectSqrt(n); exact {
		return FromInt(root), nil
	}
	return FromComputation(series.SqrtInt(n)), nil
}

// SqrtRat returns the square root of a nonnegative rational.
func SqrtRat(r *big.Rat) (*Real, error) {
	if r.Sign() < 0 {
		return nil, ErrNegativeSqrt
	}
	if r.Sign() == 0 {
		return FromInt64(0), nil
	}
	p, q := r.Num(), r.Denom()
	pRoot, pExact := perfectSqrt(p)
	qRoot, qExact := perfectSqrt(q)
	if pExact && qExact {
		return FromRat(new(big.Rat).SetFrac(pRoot, qRoot)), nil
	}
	if q.Cmp(oneInt) == 0 {
		return FromComputation(series.SqrtInt(p)), nil
	}
	return FromComputation(series.SqrtRatStream(p, q)), nil
}

// Sqrt returns the square root of a real x > 0 as exp(log(x)/2).
func Sqrt(x *Real) *Real {
	return Exp(Log(x).MulRat(big.NewRat(1, 2)))
}

func perfectSqrt(n *big.Int) (*big.Int, bool) {
	root := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(root, root)
	return root, sq.Cmp(n) == 0
}

var oneInt = big.NewInt(1)
