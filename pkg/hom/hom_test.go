package hom

import (
	"math/big"
	"testing"

	"github.com/contfrac/reals/pkg/term"
)

// TestIngestConvergent checks that ingesting the full simple continued
// fraction of 123/456 into the identity state pins the value down exactly.
func TestIngestConvergent(t *testing.T) {
	h := Identity()
	for _, n := range []int64{0, 3, 1, 2, 2, 2, 2} {
		h.Ingest(term.Simple(n))
	}
	h.IngestInf()

	// a/c and b/d both equal 123/456 now.
	lhs := new(big.Int).Mul(h.A, big.NewInt(456))
	rhs := new(big.Int).Mul(h.C, big.NewInt(123))
	if lhs.Cmp(rhs) != 0 {
		t.Errorf("a/c = %s/%s, want 123/456", h.A, h.C)
	}
}

func TestEmitEuclid(t *testing.T) {
	// State pinned to 7/2: emitting 3 must leave residual 1/(7/2 - 3) = 2.
	h := NewInt(7, 7, 2, 2)
	if h.Emit(term.Simple(3)) {
		t.Fatal("7/2 should not terminate after emitting 3")
	}
	// Now the state represents 2 exactly: a/c = 2.
	v, ok := h.EvalInt(big.NewInt(1))
	if !ok {
		t.Fatal("denominator vanished")
	}
	if v.Int64() != 2 {
		t.Errorf("residual = %s, want 2", v)
	}
	if !h.Emit(term.Simple(2)) {
		t.Error("residual 2 should terminate on emit")
	}
}

func TestEmitDigitQuarter(t *testing.T) {
	// 1/4 as the degenerate state (1, 1, 4, 4).
	h := NewInt(1, 1, 4, 4)
	digits := []int64{0, 2, 5}
	for _, want := range digits {
		n1 := term.FloorDiv(h.A, h.C)
		if n1.Int64() != want {
			t.Fatalf("digit = %s, want %d", n1, want)
		}
		h.EmitDigit(n1)
	}
	if h.A.Sign() != 0 || h.B.Sign() != 0 {
		t.Error("1/4 should be exhausted after 0.25")
	}
}

func TestGuessInt(t *testing.T) {
	tests := []struct {
		name       string
		c, d, want int64
		ok         bool
	}{
		{"zero c positive d", 0, 3, 0, true},
		{"zero c nonpositive d", 0, 0, 0, false},
		{"positive c", 1, 0, 1, true},
		{"positive c negative d", 2, -5, 3, true},
		{"negative c", -1, 3, 0, false}, // guess 0 counts as no start for FixPoint
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewInt(0, 1, tc.c, tc.d)
			g, ok := h.GuessInt()
			if !ok {
				if tc.ok {
					t.Fatalf("GuessInt: no guess, want %d", tc.want)
				}
				return
			}
			if !tc.ok {
				// Zero guesses are rejected by FixPoint, not GuessInt.
				if g.Sign() != 0 {
					t.Fatalf("GuessInt = %s, want rejection", g)
				}
				return
			}
			if g.Int64() != tc.want {
				t.Errorf("GuessInt = %s, want %d", g, tc.want)
			}
		})
	}
}

// TestFixPointSqrt2 walks the first terms of sqrt(2) = [1; 2, 2, ...].
func TestFixPointSqrt2(t *testing.T) {
	h := NewInt(0, 2, 1, 0)
	want := []int64{1, 2, 2, 2}
	for i, w := range want {
		k, ok := h.FixPoint()
		if !ok {
			t.Fatalf("step %d: fix-point vanished", i)
		}
		if k.Int64() != w {
			t.Fatalf("step %d: fix-point = %s, want %d", i, k, w)
		}
		h.Ingest(term.SimpleBig(k))
		h.Emit(term.SimpleBig(k))
	}
}

// TestFixPointPerfectSquare checks the degenerate fix-point sentinel for
// square inputs: sqrt(4) emits 2 and then stops.
func TestFixPointPerfectSquare(t *testing.T) {
	h := NewInt(0, 4, 1, 0)
	k, ok := h.FixPoint()
	if !ok || k.Int64() != 2 {
		t.Fatalf("fix-point = %v (ok=%v), want 2", k, ok)
	}
	h.Ingest(term.SimpleBig(k))
	h.Emit(term.SimpleBig(k))
	if _, ok := h.FixPoint(); ok {
		t.Error("sqrt(4) should terminate after emitting 2")
	}
}

// TestBihomographicProduct drives x*y for x = 3/2, y = 4/3 by hand.
func TestBihomographicProduct(t *testing.T) {
	s := NewBi(1, 0, 0, 0, 0, 0, 0, 1)
	// x = [1; 2] = 3/2
	s.XIngest(term.Simple(1))
	s.XIngest(term.Simple(2))
	s.XIngestInf()
	// y = [1; 3] = 4/3
	s.YIngest(term.Simple(1))
	s.YIngest(term.Simple(3))
	if s.YIngestInf() {
		t.Fatal("state degenerated prematurely")
	}

	// Value is now exactly 2: numerator row = 2 * denominator row.
	num := new(big.Int).Add(s.A, s.B)
	num.Add(num, s.C)
	num.Add(num, s.D)
	den := new(big.Int).Add(s.E, s.F)
	den.Add(den, s.G)
	den.Add(den, s.H)
	den.Mul(den, big.NewInt(2))
	if num.Cmp(den) != 0 {
		t.Errorf("3/2 * 4/3: corner value mismatch (num=%s den/2=%s)", num, den)
	}

	if !s.Emit(term.Simple(2)) {
		t.Error("emitting the exact value should terminate the state")
	}
}
