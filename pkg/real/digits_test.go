package real

import (
	"testing"
)

func TestEvaluateRationals(t *testing.T) {
	tests := []struct {
		name  string
		p, q  int64
		n     int
		round bool
		want  string
	}{
		{"fifth", 1, 5, 1, false, "0.2"},
		{"fifth padded", 1, 5, 4, false, "0.2000"},
		{"third", 1, 3, 6, false, "0.333333"},
		{"two thirds truncated", 2, 3, 2, false, "0.66"},
		{"two thirds rounded", 2, 3, 2, true, "0.67"},
		{"quarter rounded up", 1, 4, 1, true, "0.3"},
		{"integer", 7, 1, 0, false, "7"},
		{"integer with digits", 7, 1, 3, false, "7.000"},
		{"seven halves", 7, 2, 2, false, "3.50"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x := mustFraction(t, tc.p, tc.q)
			if got := x.Evaluate(tc.n, tc.round); got != tc.want {
				t.Errorf("Evaluate(%d, %v) = %q, want %q", tc.n, tc.round, got, tc.want)
			}
		})
	}
}

func TestEvaluateNegative(t *testing.T) {
	tests := []struct {
		name  string
		p, q  int64
		n     int
		round bool
		want  string
	}{
		{"neg quarter", -1, 4, 3, false, "-0.250"},
		{"neg third", -1, 3, 3, false, "-0.333"},
		{"neg integer", -2, 1, 2, false, "-2.00"},
		{"neg three halves", -3, 2, 1, false, "-1.5"},
		{"neg seven", -7, 1, 0, false, "-7"},
		{"neg trunc toward zero", -3, 2, 0, false, "-1"},
		{"neg deep borrow", -1, 8, 4, false, "-0.1250"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x := mustFraction(t, tc.p, tc.q)
			if got := x.Evaluate(tc.n, tc.round); got != tc.want {
				t.Errorf("Evaluate(%d, %v) = %q, want %q", tc.n, tc.round, got, tc.want)
			}
		})
	}
}

func TestEvaluateNegativeDecimal(t *testing.T) {
	x, err := FromDecimal("-12.3450")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Evaluate(3, false); got != "-12.345" {
		t.Errorf("got %q, want %q", got, "-12.345")
	}
	if got := x.Evaluate(6, false); got != "-12.345000" {
		t.Errorf("got %q, want %q", got, "-12.345000")
	}
}

func TestEvaluateNegativeIrrational(t *testing.T) {
	// -pi: nines-complement without a resolving borrow.
	if got := Pi().Neg().Evaluate(10, false); got != "-3.1415926535" {
		t.Errorf("-pi = %q", got)
	}
}

func TestDigitsStream(t *testing.T) {
	d := NewDigits(mustFraction(t, 7, 4))
	want := []int64{1, 7, 5}
	for i, w := range want {
		got, ok := d.Next()
		if !ok {
			t.Fatalf("value %d: stream degenerated", i)
		}
		if got.Int64() != w {
			t.Fatalf("value %d = %s, want %d", i, got, w)
		}
	}
	if !d.Exact() {
		t.Error("7/4 should be exact after 1.75")
	}
	// The stream pads zeros beyond exactness.
	got, ok := d.Next()
	if !ok || got.Sign() != 0 {
		t.Errorf("padding value = %v (ok=%v), want 0", got, ok)
	}
}

func TestEvaluateRoundingCarry(t *testing.T) {
	// 0.999 rounded at two digits carries into the integer part.
	x, err := FromDecimal("0.999")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Evaluate(2, true); got != "1.00" {
		t.Errorf("round(0.999, 2) = %q", got)
	}

	// 0.995 rounds half up.
	y, err := FromDecimal("0.995")
	if err != nil {
		t.Fatal(err)
	}
	if got := y.Evaluate(2, true); got != "1.00" {
		t.Errorf("round(0.995, 2) = %q", got)
	}
}

func TestEvaluateHundredDigits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	want := "2.7182818284590452353602874713526624977572470936999595749669676277240766303535475945713821785251664274"
	if got := E().Evaluate(100, false); got != want {
		t.Errorf("e to 100 digits = %q", got)
	}
}

func TestEvaluateRoundNegative(t *testing.T) {
	// Rounding adds 5*10^(-n-1) regardless of sign.
	x := mustFraction(t, -1, 8) // -0.125
	if got := x.Evaluate(2, true); got != "-0.12" {
		t.Errorf("round(-0.125, 2) = %q", got)
	}
}
