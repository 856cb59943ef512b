package expr

import (
	"testing"
)

func TestParseEvaluate(t *testing.T) {
	tests := []struct {
		in     string
		digits int
		want   string
	}{
		{"1/3", 6, "0.333333"},
		{"2 * (1/10)", 1, "0.2"},
		{"pi", 10, "3.1415926535"},
		{"e", 10, "2.7182818284"},
		{"phi", 10, "1.6180339887"},
		{"1 + 2 * 3", 0, "7"},
		{"(1 + 2) * 3", 0, "9"},
		{"-1/4", 3, "-0.250"},
		{"2^10", 0, "1024"},
		{"2^-2", 2, "0.25"},
		{"exp(5)", 10, "148.4131591025"},
		{"sqrt(2)", 10, "1.4142135623"},
		{"sin(1/2)", 10, "0.4794255386"},
		{"cos(1)", 10, "0.5403023058"},
		{"12.25 - 0.25", 2, "12.00"},
		{"tanh(1)", 10, "0.7615941559"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			x, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.in, err)
			}
			if got := x.Evaluate(tc.digits, false); got != tc.want {
				t.Errorf("%s = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"1 +",
		"(1",
		"foo",
		"foo(1)",
		"1..2",
		"2 ** 3",
		"1 2",
	}
	for _, in := range bad {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}
