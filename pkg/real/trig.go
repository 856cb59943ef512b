package real

import (
	"math/big"

	"github.com/contfrac/reals/pkg/compute"
	"github.com/contfrac/reals/pkg/series"
	"github.com/contfrac/reals/pkg/term"
)

// reduceEpsilon is how tightly the argument-reduction quotients are
// approximated before flooring.
var reduceEpsilon = big.NewRat(1, 1000)

// sinMono lifts the sin series through the monotone driver. The series
// only converges on (-pi/2, pi/2) and sin is only monotone there, so the
// argument bracket is refined into (-3/2, 3/2) before the series runs;
// every dispatch below keeps the true argument near (-pi/4, pi/4).
func sinMono(x *Real) *Real {
	return FromComputation(compute.NewMonotonicDomain(x.Compute(), series.SinFrac,
		func(lo, hi *big.Rat) bool {
			return lo.Cmp(big.NewRat(-3, 2)) > 0 && hi.Cmp(big.NewRat(3, 2)) < 0
		}))
}

// cosBracket computes cos(x) from the alternating Taylor series. cos is
// not monotone around 0, so instead of the bracket driver it compares
// consecutive partial sums, which enclose the value on alternating sides;
// terms they agree on are correct.
type cosBracket struct {
	agreed   int
	k        int64 // next factorial step: term' = term * (-x^2)/(k(k+1))
	cur      *Real
	x2       *Real
	lo, hi   *Real
	loC, hiC compute.Computation
}

func newCosBracket(x *Real) *cosBracket {
	c := &cosBracket{k: 1, cur: FromInt64(1)}
	c.x2 = x.Mul(x).Neg()
	c.lo = c.nextTerm()
	c.hi = c.lo.Add(c.nextTerm())
	c.loC = c.lo.Compute()
	c.hiC = c.hi.Compute()
	return c
}

func (c *cosBracket) nextTerm() *Real {
	t := c.cur
	c.cur = c.cur.Mul(c.x2).DivRat(big.NewRat(c.k*(c.k+1), 1))
	c.k += 2
	return t
}

func (c *cosBracket) improve() {
	c.lo = c.hi.Add(c.nextTerm())
	c.hi = c.lo.Add(c.nextTerm())
	c.loC = c.lo.Compute()
	c.hiC = c.hi.Compute()
	for i := 0; i < c.agreed; i++ {
		c.loC.Next()
		c.hiC.Next()
	}
}

func (c *cosBracket) Next() (term.Term, bool) {
	for {
		t1, ok1 := c.loC.Next()
		t2, ok2 := c.hiC.Next()
		if ok1 && ok2 && t1.Equal(t2) {
			c.agreed++
			return t1, true
		}
		if !ok1 && !ok2 {
			// Distinct partial sums cannot exhaust in lockstep after full
			// agreement, so the sums are equal and exact: the series hit
			// the value (x = 0).
			return term.Term{}, false
		}
		c.improve()
	}
}

func cosTaylor(x *Real) *Real {
	return FromComputation(newCosBracket(x))
}

func halfPi() *Real {
	return Pi().MulRat(big.NewRat(1, 2))
}

// floorOfApprox approximates v to the reduction epsilon and floors its
// latest convergent.
func floorOfApprox(v *Real) *big.Int {
	a := v.Approx()
	a.ImproveEpsilon(reduceEpsilon)
	r := a.AsRat()
	for r == nil {
		a.Improve(1)
		r = a.AsRat()
	}
	return term.FloorDiv(r.Num(), r.Denom())
}

// reduce returns x - 2*pi*k with the result inside [-pi, pi] up to the
// reduction epsilon.
func reduce(x *Real) *Real {
	twoPi := Pi().MulRat(big.NewRat(2, 1))
	k := floorOfApprox(x.Div(twoPi).AddRat(big.NewRat(1, 2)))
	if k.Sign() == 0 {
		return x
	}
	shift := new(big.Rat).SetInt(k)
	shift.Mul(shift, big.NewRat(2, 1))
	return x.Sub(Pi().MulRat(shift))
}

// octant places the reduced argument in one of the five dispatch regions
// m = floor(2*xr/pi + 1/2) in {-2, -1, 0, 1, 2}. Near a region boundary
// the coarse approximation may pick either side; both dispatches are
// valid there.
func octant(xr *Real) int64 {
	m := floorOfApprox(xr.Div(Pi()).MulRat(big.NewRat(2, 1)).AddRat(big.NewRat(1, 2)))
	return m.Int64()
}

// Sin returns sin(x).
func Sin(x *Real) *Real {
	xr := reduce(x)
	switch octant(xr) {
	case -2:
		return sinMono(Pi().Add(xr)).Neg()
	case -1:
		return cosTaylor(xr.Add(halfPi())).Neg()
	case 0:
		return sinMono(xr)
	case 1:
		return cosTaylor(xr.Sub(halfPi()))
	case 2:
		return sinMono(Pi().Sub(xr))
	default:
		panic("real: argument reduction out of range")
	}
}

// Cos returns cos(x).
func Cos(x *Real) *Real {
	xr := reduce(x)
	switch octant(xr) {
	case -2:
		return cosTaylor(xr.Add(Pi())).Neg()
	case -1:
		return sinMono(halfPi().Add(xr))
	case 0:
		return cosTaylor(xr)
	case 1:
		return sinMono(halfPi().Sub(xr))
	case 2:
		return cosTaylor(xr.Sub(Pi())).Neg()
	default:
		panic("real: argument reduction out of range")
	}
}

// Tan returns tan(x).
func Tan(x *Real) *Real { return Sin(x).Div(Cos(x)) }

// Cot returns cot(x).
func Cot(x *Real) *Real { return Cos(x).Div(Sin(x)) }

// Sec returns sec(x).
func Sec(x *Real) *Real { return Cos(x).Recip() }

// Csc returns csc(x).
func Csc(x *Real) *Real { return Sin(x).Recip() }

// SinRat returns sin(p/q).
func SinRat(r *big.Rat) *Real { return Sin(FromRat(r)) }

// CosRat returns cos(p/q).
func CosRat(r *big.Rat) *Real { return Cos(FromRat(r)) }

// Sinh returns (e^x - e^-x)/2.
func Sinh(x *Real) *Real {
	return Exp(x).Sub(Exp(x.Neg())).MulRat(big.NewRat(1, 2))
}

// Cosh returns (e^x + e^-x)/2.
func Cosh(x *Real) *Real {
	return Exp(x).Add(Exp(x.Neg())).MulRat(big.NewRat(1, 2))
}

// Tanh returns (e^2x - 1)/(e^2x + 1). The intermediate exponential is a
// single shared Real, so its terms are computed once for both readers.
func Tanh(x *Real) *Real {
	e2 := Exp(x.MulRat(big.NewRat(2, 1)))
	one := big.NewRat(1, 1)
	return e2.SubRat(one).Div(e2.AddRat(one))
}

// Coth returns (e^2x + 1)/(e^2x - 1).
func Coth(x *Real) *Real {
	e2 := Exp(x.MulRat(big.NewRat(2, 1)))
	one := big.NewRat(1, 1)
	return e2.AddRat(one).Div(e2.SubRat(one))
}

// Sech returns 2/(e^x + e^-x).
func Sech(x *Real) *Real {
	return RatDiv(big.NewRat(2, 1), Exp(x).Add(Exp(x.Neg())))
}

// Csch returns 2/(e^x - e^-x).
func Csch(x *Real) *Real {
	return RatDiv(big.NewRat(2, 1), Exp(x).Sub(Exp(x.Neg())))
}
