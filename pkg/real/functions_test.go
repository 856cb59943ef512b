package real

import (
	"math/big"
	"testing"
)

func TestExpRat(t *testing.T) {
	tests := []struct {
		name string
		p, q int64
		want string
	}{
		{"exp(5)", 5, 1, "148.41315910257660342111"},
		{"exp(1)", 1, 1, "2.71828182845904523536"},
		{"exp(3/5)", 3, 5, "1.82211880039050897487"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExpRat(big.NewRat(tc.p, tc.q)).Evaluate(20, false)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExpReal(t *testing.T) {
	got := Exp(Phi()).Evaluate(20, false)
	want := "5.04316564336002865131"
	if got != want {
		t.Errorf("exp(phi) = %q, want %q", got, want)
	}
}

func TestLogRat(t *testing.T) {
	tests := []struct {
		name string
		p, q int64
		want string
	}{
		{"log(101)", 101, 1, "4.61512051684125945088"},
		{"log(1000/3)", 1000, 3, "5.80914299031402736065"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, err := LogRat(big.NewRat(tc.p, tc.q))
			if err != nil {
				t.Fatal(err)
			}
			if got := x.Evaluate(20, false); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}

	if _, err := LogRat(big.NewRat(0, 1)); err == nil {
		t.Error("log(0) should fail")
	}
	if _, err := LogRat(big.NewRat(-1, 2)); err == nil {
		t.Error("log of negative should fail")
	}
}

func TestLogReal(t *testing.T) {
	got := Log(Pi()).Evaluate(20, false)
	want := "1.14472988584940017414"
	if got != want {
		t.Errorf("log(pi) = %q, want %q", got, want)
	}
}

func TestExpLogRoundTrip(t *testing.T) {
	want := Pi().Evaluate(15, false)
	if got := Exp(Log(Pi())).Evaluate(15, false); got != want {
		t.Errorf("exp(log(pi)) = %q, want %q", got, want)
	}
	if got := Log(Exp(Phi())).Evaluate(15, false); got != Phi().Evaluate(15, false) {
		t.Errorf("log(exp(phi)) = %q, want %q", got, Phi().Evaluate(15, false))
	}
}

func TestSqrtInt(t *testing.T) {
	sqrt2, err := SqrtInt(big.NewInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if got := sqrt2.Evaluate(10, false); got != "1.4142135623" {
		t.Errorf("sqrt(2) = %q", got)
	}

	// sqrt(n)*sqrt(n) brackets n.
	eps := big.NewRat(1, 100000)
	bracketsValue(t, sqrt2.Mul(sqrt2), big.NewRat(2, 1), eps)

	// Perfect squares terminate immediately.
	four, err := SqrtInt(big.NewInt(16))
	if err != nil {
		t.Fatal(err)
	}
	c := four.Compute()
	got, ok := c.Next()
	if !ok || got.N.Int64() != 4 {
		t.Fatalf("sqrt(16) first term = %v (ok=%v), want 4", got, ok)
	}
	if _, ok := c.Next(); ok {
		t.Error("sqrt(16) should be a terminating stream")
	}

	if _, err := SqrtInt(big.NewInt(-1)); err == nil {
		t.Error("sqrt of negative should fail")
	}
	zero, err := SqrtInt(big.NewInt(0))
	if err != nil {
		t.Fatal(err)
	}
	if got := zero.Evaluate(0, false); got != "0" {
		t.Errorf("sqrt(0) = %q", got)
	}
}

func TestSqrtRat(t *testing.T) {
	x, err := SqrtRat(big.NewRat(16, 9))
	if err != nil {
		t.Fatal(err)
	}
	fourThirds, _ := FromFraction(4, 3)
	if !Eq(x, fourThirds) {
		t.Error("sqrt(16/9) should equal 4/3 under bracketed equality")
	}

	y, err := SqrtRat(big.NewRat(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if got := y.Evaluate(10, false); got != "0.8164965809" {
		t.Errorf("sqrt(2/3) = %q", got)
	}
}

func TestSqrtReal(t *testing.T) {
	got := Sqrt(FromInt64(2)).Evaluate(10, false)
	if got != "1.4142135623" {
		t.Errorf("exp(log(2)/2) = %q", got)
	}
}

// TestLogBase avoids arguments whose quotient lands exactly on an integer:
// rendering such a value stalls on the boundary digit, the same
// undecidability that makes exact equality unrenderable.
func TestLogBase(t *testing.T) {
	if got := LogBase(FromInt64(10), FromInt64(2)).Evaluate(6, false); got != "3.321928" {
		t.Errorf("log2(10) = %q", got)
	}
	if got := LogBase(FromInt64(100), FromInt64(3)).Evaluate(4, false); got != "4.1918" {
		t.Errorf("log3(100) = %q", got)
	}
}

func TestBestRationalApproximations(t *testing.T) {
	sqrt2, err := SqrtInt(big.NewInt(2))
	if err != nil {
		t.Fatal(err)
	}
	got := sqrt2.BestRationalApproximations(4)
	want := []*big.Rat{
		big.NewRat(1, 1), big.NewRat(3, 2), big.NewRat(7, 5), big.NewRat(17, 12),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d convergents, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Cmp(want[i]) != 0 {
			t.Errorf("convergent %d = %s, want %s", i, got[i], want[i])
		}
	}

	third, _ := FromFraction(1, 3)
	conv := third.BestRationalApproximations(10)
	last := conv[len(conv)-1]
	if last.Cmp(big.NewRat(1, 3)) != 0 {
		t.Errorf("rational convergents should end at the value, got %s", last)
	}
}

func TestPowReal(t *testing.T) {
	got := FromInt64(2).Pow(mustFraction(t, 1, 2)).Evaluate(10, false)
	if got != "1.4142135623" {
		t.Errorf("2^(1/2) = %q", got)
	}
}
