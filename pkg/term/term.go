// Package term defines the unit of a continued-fraction stream.
package term

import (
	"fmt"
	"math/big"
)

// Term is one layer of a generalized continued fraction: it contributes
// n + m/(rest of the stream). Simple continued-fraction terms have M == 1.
// Both fields are owned by the term; producers must not reuse the big.Ints
// they hand out.
type Term struct {
	N *big.Int
	M *big.Int
}

// Simple returns the simple term (n, 1).
func Simple(n int64) Term {
	return Term{N: big.NewInt(n), M: big.NewInt(1)}
}

// New returns the generalized term (n, m).
func New(n, m int64) Term {
	return Term{N: big.NewInt(n), M: big.NewInt(m)}
}

// FromBig returns a term copying n and m.
func FromBig(n, m *big.Int) Term {
	return Term{N: new(big.Int).Set(n), M: new(big.Int).Set(m)}
}

// SimpleBig returns the simple term (n, 1), copying n.
func SimpleBig(n *big.Int) Term {
	return Term{N: new(big.Int).Set(n), M: big.NewInt(1)}
}

// IsSimple returns true if the term has denominator-numerator 1.
func (t Term) IsSimple() bool {
	return t.M.Cmp(oneInt) == 0
}

// Equal returns true if both components match.
func (t Term) Equal(o Term) bool {
	return t.N.Cmp(o.N) == 0 && t.M.Cmp(o.M) == 0
}

func (t Term) String() string {
	if t.IsSimple() {
		return t.N.String()
	}
	return fmt.Sprintf("(%s,%s)", t.N, t.M)
}

var oneInt = big.NewInt(1)

// FloorDiv returns floor(a/b). big.Int.Quo truncates toward zero and
// big.Int.Div is Euclidean, neither of which matches the quotient the
// transducer algebra is stated in, so every quotient in this module goes
// through here.
func FloorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, oneInt)
	}
	return q
}
