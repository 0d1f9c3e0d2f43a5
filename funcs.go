package calc

import (
	"math"
	"strconv"
)

// Fn is a unary function.
type Fn int8

const (
	FnNone Fn = iota
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Log10
	Ln
	Sqrt
	Pow10
	Exp
)

type fninfo struct {
	// name is how the function is written in expressions and postfix.
	name string
	// inverse is the function shown on the same button in inverse mode.
	inverse Fn
	// base is whether the function is shown outside inverse mode.
	base bool
}

var fninfos = [...]fninfo{
	Sin:   {"sin", Asin, true},
	Cos:   {"cos", Acos, true},
	Tan:   {"tan", Atan, true},
	Asin:  {"asin", Sin, false},
	Acos:  {"acos", Cos, false},
	Atan:  {"atan", Tan, false},
	Log10: {"log", Pow10, true},
	Ln:    {"ln", Exp, true},
	Sqrt:  {"sqrt", FnNone, true},
	Pow10: {"10^x", Log10, false},
	Exp:   {"e^x", Ln, false},
}

func (f Fn) valid() bool {
	return f > FnNone && int(f) < len(fninfos)
}

func (f Fn) String() string {
	if !f.valid() {
		return "Fn(" + strconv.Itoa(int(f)) + ")"
	}
	return fninfos[f].name
}

// fnnamed gets the function spelled name, or FnNone.
func fnnamed(name string) Fn {
	for _, kw := range keywords {
		if kw.text == name {
			return kw.fn
		}
	}
	return FnNone
}

// IsFunctionName reports whether name is the exact spelling of a function,
// e.g. "sin" or "10^x".
func IsFunctionName(name string) bool {
	return fnnamed(name) != FnNone
}

// FunctionDisplayName gives the label of the button holding f. In inverse
// mode, buttons show the inverse of their base function where one exists:
// sin becomes asin, log becomes 10^x, ln becomes e^x. f may name either
// side of a pair.
func FunctionDisplayName(f Fn, inverse bool) string {
	if !f.valid() {
		return ""
	}
	info := fninfos[f]
	if info.base != inverse || info.inverse == FnNone {
		return info.name
	}
	return fninfos[info.inverse].name
}

// ToggledLabel gives the label a button currently labeled label should show
// when inverse mode is or is not active. Labels that are not functions are
// returned unchanged.
func ToggledLabel(label string, inverse bool) string {
	f := fnnamed(label)
	if f == FnNone {
		return label
	}
	return FunctionDisplayName(f, inverse)
}

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi
)

// eval applies f to x. Trigonometric functions take degrees and inverse
// trigonometric functions return degrees. If x is outside f's domain, the
// returned kind says why.
func (f Fn) eval(x float64) (float64, ErrorKind) {
	switch f {
	case Sin:
		return math.Sin(x * radians), kindNone
	case Cos:
		return math.Cos(x * radians), kindNone
	case Tan:
		return math.Tan(x * radians), kindNone
	case Asin:
		if x < -1 || x > 1 {
			return 0, DomainError
		}
		return math.Asin(x) * degrees, kindNone
	case Acos:
		if x < -1 || x > 1 {
			return 0, DomainError
		}
		return math.Acos(x) * degrees, kindNone
	case Atan:
		return math.Atan(x) * degrees, kindNone
	case Log10:
		if x <= 0 {
			return 0, NonPositiveLogarithm
		}
		return math.Log10(x), kindNone
	case Ln:
		if x <= 0 {
			return 0, NonPositiveLogarithm
		}
		return math.Log(x), kindNone
	case Sqrt:
		if x < 0 {
			return 0, NegativeSquareRoot
		}
		return math.Sqrt(x), kindNone
	case Pow10:
		return math.Pow(10, x), kindNone
	case Exp:
		return math.Exp(x), kindNone
	default:
		return 0, InvalidToken
	}
}

// eval applies o to a and b, in that order.
func (o Op) eval(a, b float64) (float64, ErrorKind) {
	switch o {
	case Add:
		return a + b, kindNone
	case Sub:
		return a - b, kindNone
	case Mul:
		return a * b, kindNone
	case Div:
		if b == 0 {
			return 0, DivisionByZero
		}
		return a / b, kindNone
	case Pow:
		// A negative base with a fractional exponent gives NaN, which is
		// returned as the value.
		return math.Pow(a, b), kindNone
	default:
		return 0, InvalidToken
	}
}
