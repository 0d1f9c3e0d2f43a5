package calc_test

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	calc "github.com/tarnan3751/Scientific-Calculator"
)

func TestEvaluatePrec(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
	}{
		{"num", "1", "1"},
		{"prec", "3+4*2", "11"},
		{"parens", "(3+4)*2", "14"},
		{"pow-left", "2^3^2", "64"},
		{"div", "1/4", "0.25"},
		{"neg", "-5+2", "-3"},
		{"neg-button", "(-1)*5", "-5"},
		{"pow-neg-odd", "(-2)^3", "-8"},
		{"pow-neg-even", "(-2)^2", "4"},
		{"pow-zero", "0^0", "1"},
		{"pow-zero-base", "0^3", "0"},
		{"pow-neg-exp", "2^(-2)", "0.25"},
		{"neg-exp-left", "2^-2", "1"},
		{"pow-one", "2^1", "2"},
		{"pow-one-frac", "0.5^1", "0.5"},
		{"pow-one-neg", "(-3)^1", "-3"},
		{"pow10-one", "10^x(1)", "10"},
		{"pow-neg-one", "4^(-1)", "0.25"},
		{"sqrt", "sqrt(16)", "4"},
		{"pow10", "10^x(3)", "1000"},
		{"exp0", "e^x(0)", "1"},
		{"big", "10^x(30)+1", "1000000000000000000000000000001"},
		{"literal", "0.1+0.2", "0.3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.EvaluatePrec(c.src, 128)
			if err != nil {
				t.Fatalf("%q: evaluation error: %v", c.src, err)
			}
			want, _, err := new(big.Float).SetPrec(128).Parse(c.r, 10)
			if err != nil {
				t.Fatal(err)
			}
			// Allow the last few bits to differ.
			diff := new(big.Float).Sub(r, want)
			diff.Abs(diff)
			tol := new(big.Float).SetMantExp(big.NewFloat(1), -100)
			if want.Sign() != 0 {
				tol.Mul(tol, new(big.Float).Abs(want))
			}
			if diff.Cmp(tol) > 0 {
				t.Errorf("%q: want %s, got %s", c.src, c.r, r.Text('g', 40))
			}
		})
	}
}

// TestEvaluatePrecMatchesFloat checks that the precise evaluator agrees with
// the float64 evaluator to float64 precision.
func TestEvaluatePrecMatchesFloat(t *testing.T) {
	srcs := []string{
		"pi",
		"2*e",
		"ln(10)",
		"log(2)",
		"log(1000)",
		"e^x(2.5)",
		"10^x(0.5)",
		"2^0.5",
		"sqrt(2)",
		"sin(30)",
		"cos(45)+tan(10)",
		"asin(0.5)+acos(0.25)+atan(3)",
		"(1+2)*3^2-sqrt(16)/7",
	}
	for _, src := range srcs {
		f, err := calc.Evaluate(src)
		if err != nil {
			t.Fatalf("%q: float64 error: %v", src, err)
		}
		r, err := calc.EvaluatePrec(src, 0)
		if err != nil {
			t.Fatalf("%q: precise error: %v", src, err)
		}
		if r.Prec() != calc.DefaultPrec {
			t.Errorf("%q: want default precision %d, got %d", src, calc.DefaultPrec, r.Prec())
		}
		g, _ := r.Float64()
		if math.Abs(f-g) > 1e-12*math.Max(1, math.Abs(f)) {
			t.Errorf("%q: float64 %.17g, precise %.17g", src, f, g)
		}
	}
}

func TestEvaluatePrecLargePow(t *testing.T) {
	r, err := calc.EvaluatePrec("2^100000", 64)
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Float).SetMantExp(big.NewFloat(1), 100000)
	diff := new(big.Float).Quo(new(big.Float).Sub(r, want), want)
	if f, _ := diff.Float64(); math.Abs(f) > 1e-10 {
		t.Errorf("want 2^100000, got %s", r.Text('g', 20))
	}
}

// TestEvaluatePrecPowRange checks that powers far outside the exponent range
// of big.Float give infinities and zeros without being computed.
func TestEvaluatePrecPowRange(t *testing.T) {
	cases := []struct {
		src  string
		sign int
		inf  bool
	}{
		{"2^99999999999", 1, true},
		{"(-2)^99999999999", -1, true},
		{"(-2)^99999999998", 1, true},
		{"0.5^99999999999", 0, false},
		{"2^(-99999999999)", 0, false},
		{"10^x(99999999999)", 1, true},
	}
	for _, c := range cases {
		done := make(chan struct{})
		var r *big.Float
		var err error
		go func() {
			r, err = calc.EvaluatePrec(c.src, 64)
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(10 * time.Second):
			t.Fatalf("%q: evaluation did not finish", c.src)
		}
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if r.IsInf() != c.inf || r.Sign() != c.sign {
			t.Errorf("%q: want inf=%t sign=%d, got %v", c.src, c.inf, c.sign, r)
		}
	}
}

func TestEvaluatePrecPi(t *testing.T) {
	const pi45 = "3.141592653589793238462643383279502884197169399"
	r, err := calc.EvaluatePrec("pi", 256)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Text('f', 45); got != pi45 {
		t.Errorf("want %s, got %s", pi45, got)
	}
}

func TestEvaluatePrecErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"char", "2#3", calc.ErrInvalidCharacter},
		{"unclosed", "(2+3", calc.ErrMismatchedParentheses},
		{"unopened", "2+3)", calc.ErrMismatchedParentheses},
		{"empty", "", calc.ErrInvalidExpression},
		{"dangling", "2+", calc.ErrInvalidExpression},
		{"div-zero", "5/0", calc.ErrDivisionByZero},
		{"log-zero", "log(0)", calc.ErrNonPositiveLogarithm},
		{"ln-neg", "ln(-5)", calc.ErrNonPositiveLogarithm},
		{"sqrt-neg", "sqrt(-1)", calc.ErrNegativeSquareRoot},
		{"asin", "asin(2)", calc.ErrDomain},
		{"pow-neg-frac", "(-8)^(1/3)", calc.ErrDomain},
		{"inf-sub", "0^(-1)-0^(-1)", calc.ErrDomain},
		{"bad-number", "1.2.3", calc.ErrInvalidToken},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.EvaluatePrec(c.src, 64)
			if !errors.Is(err, c.err) {
				t.Errorf("%q: want %v, got %v", c.src, c.err, err)
			}
			if r != nil {
				t.Errorf("%q: result %v with error", c.src, r)
			}
		})
	}
}

func TestEvalPostfixPrecHandBuilt(t *testing.T) {
	toks := []calc.Token{
		{Kind: calc.TokenNum, Num: 1.5},
		{Kind: calc.TokenNum, Num: 2},
		{Kind: calc.TokenOp, Op: calc.Mul},
	}
	r, err := calc.EvalPostfixPrec(toks, 64)
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := r.Float64(); f != 3 {
		t.Errorf("want 3, got %v", r)
	}
	toks = []calc.Token{{Kind: calc.TokenNum, Num: math.NaN()}}
	if _, err := calc.EvalPostfixPrec(toks, 64); !errors.Is(err, calc.ErrInvalidToken) {
		t.Errorf("NaN literal: want invalid token, got %v", err)
	}
}
