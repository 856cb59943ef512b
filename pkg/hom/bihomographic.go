package hom

import (
	"math/big"

	"github.com/contfrac/reals/pkg/term"
)

// Bihomographic represents the pending map
// (a*xy + b*x + c*y + d)/(e*xy + f*x + g*y + h) over two input streams.
type Bihomographic struct {
	A, B, C, D, E, F, G, H *big.Int
}

// NewBi returns a bihomographic state from int64 coefficients.
func NewBi(a, b, c, d, e, f, g, h int64) *Bihomographic {
	return &Bihomographic{
		A: big.NewInt(a), B: big.NewInt(b), C: big.NewInt(c), D: big.NewInt(d),
		E: big.NewInt(e), F: big.NewInt(f), G: big.NewInt(g), H: big.NewInt(h),
	}
}

// NewBiBig returns a bihomographic state, copying the coefficients.
func NewBiBig(a, b, c, d, e, f, g, h *big.Int) *Bihomographic {
	return &Bihomographic{
		A: new(big.Int).Set(a), B: new(big.Int).Set(b),
		C: new(big.Int).Set(c), D: new(big.Int).Set(d),
		E: new(big.Int).Set(e), F: new(big.Int).Set(f),
		G: new(big.Int).Set(g), H: new(big.Int).Set(h),
	}
}

// XIngest substitutes x -> n + m/x and renormalizes.
func (s *Bihomographic) XIngest(t term.Term) {
	a := mulAdd(t.N, s.A, s.C)
	b := mulAdd(t.N, s.B, s.D)
	c := new(big.Int).Mul(t.M, s.A)
	d := new(big.Int).Mul(t.M, s.B)
	e := mulAdd(t.N, s.E, s.G)
	f := mulAdd(t.N, s.F, s.H)
	g := new(big.Int).Mul(t.M, s.E)
	h := new(big.Int).Mul(t.M, s.F)
	s.A, s.B, s.C, s.D, s.E, s.F, s.G, s.H = a, b, c, d, e, f, g, h
}

// XIngestInf records the end of the x stream. Returns true when the whole
// denominator row has degenerated.
func (s *Bihomographic) XIngestInf() bool {
	s.C = new(big.Int).Set(s.A)
	s.D = new(big.Int).Set(s.B)
	s.G = new(big.Int).Set(s.E)
	s.H = new(big.Int).Set(s.F)
	return s.E.Sign() == 0 && s.F.Sign() == 0 && s.G.Sign() == 0 && s.H.Sign() == 0
}

// YIngest substitutes y -> n + m/y and renormalizes.
func (s *Bihomographic) YIngest(t term.Term) {
	a := mulAdd(t.N, s.A, s.B)
	b := new(big.Int).Mul(t.M, s.A)
	c := mulAdd(t.N, s.C, s.D)
	d := new(big.Int).Mul(t.M, s.C)
	e := mulAdd(t.N, s.E, s.F)
	f := new(big.Int).Mul(t.M, s.E)
	g := mulAdd(t.N, s.G, s.H)
	h := new(big.Int).Mul(t.M, s.G)
	s.A, s.B, s.C, s.D, s.E, s.F, s.G, s.H = a, b, c, d, e, f, g, h
}

// YIngestInf records the end of the y stream.
func (s *Bihomographic) YIngestInf() bool {
	s.B = new(big.Int).Set(s.A)
	s.D = new(big.Int).Set(s.C)
	s.F = new(big.Int).Set(s.E)
	s.H = new(big.Int).Set(s.G)
	return s.E.Sign() == 0 && s.F.Sign() == 0 && s.G.Sign() == 0 && s.H.Sign() == 0
}

// Emit factors the term n + m/(...) out of the represented value.
// Returns true when the residual numerator row is exhausted.
func (s *Bihomographic) Emit(t term.Term) bool {
	ra := mulSub(s.A, t.N, s.E)
	rb := mulSub(s.B, t.N, s.F)
	rc := mulSub(s.C, t.N, s.G)
	rd := mulSub(s.D, t.N, s.H)
	terminated := ra.Sign() == 0 && rb.Sign() == 0 && rc.Sign() == 0 && rd.Sign() == 0
	s.A = new(big.Int).Mul(t.M, s.E)
	s.B = new(big.Int).Mul(t.M, s.F)
	s.C = new(big.Int).Mul(t.M, s.G)
	s.D = new(big.Int).Mul(t.M, s.H)
	s.E, s.F, s.G, s.H = ra, rb, rc, rd
	return terminated
}

// mulAdd returns n*x + y.
func mulAdd(n, x, y *big.Int) *big.Int {
	r := new(big.Int).Mul(n, x)
	return r.Add(r, y)
}

// mulSub returns x - n*y.
func mulSub(x, n, y *big.Int) *big.Int {
	r := new(big.Int).Mul(n, y)
	return r.Sub(x, r)
}
