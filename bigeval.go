package calc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision in bits used by EvalPostfixPrec when given 0.
const DefaultPrec = 64

// EvalPostfixPrec evaluates a postfix token sequence with prec bits of
// precision. Number tokens are reread from their text where they have one,
// and pi and e are computed to the full precision.
//
// Errors are the same as EvalPostfix with one exception: a negative base
// raised to a non-integer power fails with DomainError instead of giving NaN.
// Trigonometric functions are computed in float64.
func EvalPostfixPrec(tokens []Token, prec uint) (r *big.Float, err error) {
	if prec == 0 {
		prec = DefaultPrec
	}
	var cur Token
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		// Arithmetic on infinities can yield NaN, which big.Float reports by
		// panicking.
		if e, ok := p.(error); ok && errors.As(e, &big.ErrNaN{}) {
			r, err = nil, errat(DomainError, cur)
			return
		}
		panic(p)
	}()
	var stack []*big.Float
	pop := func() *big.Float {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return r
	}
	for _, cur = range tokens {
		switch cur.Kind {
		case TokenNum:
			v, ok := bignum(cur, prec)
			if !ok {
				return nil, errat(InvalidToken, cur)
			}
			stack = append(stack, v)
		case TokenOp:
			if len(stack) < 2 {
				return nil, errat(InvalidExpression, cur)
			}
			b := pop()
			a := pop()
			if k := bigop(cur.Op, a, b, prec); k != kindNone {
				return nil, errat(k, cur)
			}
			stack = append(stack, a)
		case TokenFunc:
			if len(stack) < 1 {
				return nil, errat(InvalidExpression, cur)
			}
			a := stack[len(stack)-1]
			if k := bigfn(cur.Fn, a, prec); k != kindNone {
				return nil, errat(k, cur)
			}
		default:
			return nil, errat(InvalidToken, cur)
		}
	}
	if len(stack) != 1 {
		return nil, &Error{Kind: InvalidExpression}
	}
	return stack[0], nil
}

// EvaluatePrec is Evaluate with prec bits of precision.
func EvaluatePrec(src string, prec uint) (*big.Float, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	post, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	return EvalPostfixPrec(post, prec)
}

// bignum creates the value of a number token.
func bignum(tok Token, prec uint) (*big.Float, bool) {
	r := new(big.Float).SetPrec(prec)
	switch tok.Text {
	case "pi":
		bigfloat.Pi(r)
		return r, true
	case "e":
		bigE(r)
		return r, true
	case "":
		// Built by hand.
	default:
		if _, _, err := r.Parse(tok.Text, 10); err == nil {
			return r, true
		}
	}
	if math.IsNaN(tok.Num) {
		return nil, false
	}
	return r.SetFloat64(tok.Num), true
}

// bigE sets out to e.
func bigE(out *big.Float) {
	var one big.Float
	one.SetPrec(out.Prec()).SetInt64(1)
	bigfloat.Exp(out, &one)
}

func bigint(prec uint, x int64) *big.Float {
	return new(big.Float).SetPrec(prec).SetInt64(x)
}

// bigop sets a to a op b.
func bigop(op Op, a, b *big.Float, prec uint) ErrorKind {
	switch op {
	case Add:
		a.Add(a, b)
	case Sub:
		a.Sub(a, b)
	case Mul:
		a.Mul(a, b)
	case Div:
		if b.Sign() == 0 {
			return DivisionByZero
		}
		a.Quo(a, b)
	case Pow:
		r := new(big.Float).SetPrec(prec)
		if k := bigpow(r, a, b, prec); k != kindNone {
			return k
		}
		a.Set(r)
	default:
		return InvalidToken
	}
	return kindNone
}

// bigpow sets z to x^y. Negative bases are allowed with integer exponents.
// z must not be x or y.
func bigpow(z, x, y *big.Float, prec uint) ErrorKind {
	switch {
	case x.IsInf() || y.IsInf():
		a, _ := x.Float64()
		b, _ := y.Float64()
		z.SetFloat64(math.Pow(a, b))
		return kindNone
	case y.Sign() == 0:
		z.SetInt64(1)
		return kindNone
	case x.Sign() == 0:
		if y.Sign() < 0 {
			z.SetInf(false)
		} else {
			z.SetInt64(0)
		}
		return kindNone
	}
	odd := false
	if x.Sign() < 0 {
		if !y.IsInt() {
			return DomainError
		}
		n, _ := y.Int(nil)
		odd = n.Bit(0) == 1
	}
	ax := new(big.Float).SetPrec(prec).Abs(x)
	switch powrange(ax, y) {
	case 1:
		z.SetInf(odd)
	case -1:
		z.SetInt64(0)
		if odd {
			z.Neg(z)
		}
	default:
		// Pow may return a new value rather than z.
		z.Set(bigfloat.Pow(z, ax, y))
		if odd {
			z.Neg(z)
		}
	}
	return kindNone
}

// powrange reports whether x^y, x > 0, has a binary exponent above big.MaxExp
// (1) or below big.MinExp (-1). Such powers overflow or underflow, and
// computing them takes time proportional to their size.
func powrange(x, y *big.Float) int {
	var m big.Float
	e := x.MantExp(&m)
	mf, _ := m.Float64()
	yf, _ := y.Float64()
	est := yf * (float64(e) + math.Log2(mf))
	switch {
	case math.IsNaN(est):
		return 0
	case est > big.MaxExp:
		return 1
	case est < big.MinExp:
		return -1
	}
	return 0
}

// bigfn sets x to f(x). Infinite arguments go through float64.
func bigfn(f Fn, x *big.Float, prec uint) ErrorKind {
	if x.IsInf() {
		return floatfn(f, x)
	}
	switch f {
	case Log10:
		if x.Sign() <= 0 {
			return NonPositiveLogarithm
		}
		ln10 := bigfloat.Log(new(big.Float).SetPrec(prec), bigint(prec, 10))
		r := bigfloat.Log(new(big.Float).SetPrec(prec), x)
		x.Quo(r, ln10)
	case Ln:
		if x.Sign() <= 0 {
			return NonPositiveLogarithm
		}
		x.Set(bigfloat.Log(new(big.Float).SetPrec(prec), x))
	case Sqrt:
		if x.Sign() < 0 {
			return NegativeSquareRoot
		}
		x.Set(new(big.Float).SetPrec(prec).Sqrt(x))
	case Pow10:
		r := new(big.Float).SetPrec(prec)
		if k := bigpow(r, bigint(prec, 10), x, prec); k != kindNone {
			return k
		}
		x.Set(r)
	case Exp:
		x.Set(bigfloat.Exp(new(big.Float).SetPrec(prec), x))
	default:
		return floatfn(f, x)
	}
	return kindNone
}

// floatfn sets x to f(x) computed in float64.
func floatfn(f Fn, x *big.Float) ErrorKind {
	v, _ := x.Float64()
	r, k := f.eval(v)
	if k != kindNone {
		return k
	}
	x.SetFloat64(r)
	return kindNone
}
