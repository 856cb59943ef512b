package real

import (
	"math/big"

	"github.com/contfrac/reals/pkg/compute"
	"github.com/contfrac/reals/pkg/hom"
)

// Binary operators construct a quadratic transducer reading both operands;
// operators with a rational operand need only an algebraic transducer.
// Every operation returns a new lazy Real; nothing is evaluated until a
// consumer pulls terms.

// Neg returns -x.
func (x *Real) Neg() *Real {
	return FromComputation(compute.NewAlgebraic(x.Compute(), hom.NewInt(-1, 0, 0, 1)))
}

// Recip returns 1/x.
func (x *Real) Recip() *Real {
	return FromComputation(compute.NewAlgebraic(x.Compute(), hom.NewInt(0, 1, 1, 0)))
}

// Add returns x + y.
func (x *Real) Add(y *Real) *Real {
	return FromComputation(compute.NewQuadratic(x.Compute(), y.Compute(),
		hom.NewBi(0, 1, 1, 0, 0, 0, 0, 1)))
}

// Sub returns x - y.
func (x *Real) Sub(y *Real) *Real {
	return FromComputation(compute.NewQuadratic(x.Compute(), y.Compute(),
		hom.NewBi(0, 1, -1, 0, 0, 0, 0, 1)))
}

// Mul returns x * y.
func (x *Real) Mul(y *Real) *Real {
	return FromComputation(compute.NewQuadratic(x.Compute(), y.Compute(),
		hom.NewBi(1, 0, 0, 0, 0, 0, 0, 1)))
}

// Div returns x / y. Division by a zero real is a stalling stream, not an
// error; see the comparison caveats.
func (x *Real) Div(y *Real) *Real {
	return FromComputation(compute.NewQuadratic(x.Compute(), y.Compute(),
		hom.NewBi(0, 1, 0, 0, 0, 0, 1, 0)))
}

// AddRat returns x + p/q.
func (x *Real) AddRat(r *big.Rat) *Real {
	p, q := r.Num(), r.Denom()
	return FromComputation(compute.NewAlgebraic(x.Compute(),
		hom.New(q, p, zeroInt, q)))
}

// SubRat returns x - p/q.
func (x *Real) SubRat(r *big.Rat) *Real {
	p := new(big.Int).Neg(r.Num())
	q := r.Denom()
	return FromComputation(compute.NewAlgebraic(x.Compute(),
		hom.New(q, p, zeroInt, q)))
}

// RatSub returns p/q - x.
func RatSub(r *big.Rat, x *Real) *Real {
	negQ := new(big.Int).Neg(r.Denom())
	return FromComputation(compute.NewAlgebraic(x.Compute(),
		hom.New(negQ, r.Num(), zeroInt, r.Denom())))
}

// MulRat returns x * p/q.
func (x *Real) MulRat(r *big.Rat) *Real {
	return FromComputation(compute.NewAlgebraic(x.Compute(),
		hom.New(r.Num(), zeroInt, zeroInt, r.Denom())))
}

// DivRat returns x / (p/q). Panics on a zero rational, like big.Rat.Quo.
func (x *Real) DivRat(r *big.Rat) *Real {
	if r.Sign() == 0 {
		panic("real: division by zero rational")
	}
	return FromComputation(compute.NewAlgebraic(x.Compute(),
		hom.New(r.Denom(), zeroInt, zeroInt, r.Num())))
}

// RatDiv returns (p/q) / x.
func RatDiv(r *big.Rat, x *Real) *Real {
	return FromComputation(compute.NewAlgebraic(x.Compute(),
		hom.New(zeroInt, r.Num(), r.Denom(), zeroInt)))
}

// PowInt returns x^k for an integer exponent, by binary exponentiation.
func (x *Real) PowInt(k int) *Real {
	if k == 0 {
		return FromInt64(1)
	}
	if k < 0 {
		return x.PowInt(-k).Recip()
	}
	result := x
	base := x
	k--
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		k >>= 1
	}
	return result
}

// Pow returns x^y for a real exponent: exp(y * log x). Defined for x > 0.
func (x *Real) Pow(y *Real) *Real {
	return Exp(y.Mul(Log(x)))
}

var zeroInt = big.NewInt(0)
