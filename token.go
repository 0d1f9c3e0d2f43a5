package calc

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Token is one lexical element of an expression. The same type carries both
// infix sequences produced by Tokenize and postfix sequences produced by
// ToPostfix.
type Token struct {
	// Kind selects which of Num, Op, and Fn is meaningful.
	Kind TokenKind
	// Num is the value of a TokenNum.
	Num float64
	// Op is the operator of a TokenOp.
	Op Op
	// Fn is the function of a TokenFunc.
	Fn Fn
	// Text is the source text of the token, e.g. "3.5", "pi", or "asin".
	Text string
	// Pos is the rune column at which the token starts, counting from 1.
	// Tokens built by hand may leave it 0.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.word() + "@" + strconv.Itoa(t.Pos)
}

// TokenKind identifies the variant of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a number literal or named constant.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenFunc is a unary function.
	TokenFunc
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

var tokenkindnames = [...]string{
	TokenNone:  "None",
	TokenNum:   "Num",
	TokenOp:    "Op",
	TokenFunc:  "Func",
	TokenOpen:  "Open",
	TokenClose: "Close",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenkindnames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenkindnames[k]
}

// Op is a binary operator.
type Op int8

const (
	OpNone Op = iota
	Add
	Sub
	Mul
	Div
	Pow
)

// Operators contains the runes which are binary operators, indexed by Op-1.
const Operators = "+-*/^"

func (o Op) String() string {
	if o <= OpNone || int(o) > len(Operators) {
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
	return Operators[o-1 : o]
}

// prec is the binding strength of the operator. Higher binds tighter.
// Anything that is not an operator has precedence 0.
func (o Op) prec() int {
	switch o {
	case Add, Sub:
		return 2
	case Mul, Div:
		return 3
	case Pow:
		return 4
	default:
		return 0
	}
}

// opfor gets the operator for a rune, or OpNone.
func opfor(r rune) Op {
	k := strings.IndexRune(Operators, r)
	if k < 0 {
		return OpNone
	}
	return Op(k + 1)
}

// word is the postfix spelling of the token.
func (t Token) word() string {
	switch t.Kind {
	case TokenNum:
		if t.Text != "" {
			return t.Text
		}
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenOp:
		return t.Op.String()
	case TokenFunc:
		return t.Fn.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	default:
		return "$"
	}
}

// FormatPostfix renders a token sequence as space-separated words, e.g.
// "3 4 2 * +". The result can be read back with ParsePostfix.
func FormatPostfix(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.word())
	}
	return b.String()
}

// ParsePostfix reads the space-separated form written by FormatPostfix. Any
// word that is not a number, constant, operator, function name, or
// parenthesis fails with InvalidToken. Parentheses are accepted so that the
// evaluator can reject them.
func ParsePostfix(src string) ([]Token, error) {
	var tokens []Token
	col := 1
	for len(src) > 0 {
		r, sz := utf8.DecodeRuneInString(src)
		if isSpace(r) {
			src = src[sz:]
			col++
			continue
		}
		end := strings.IndexFunc(src, isSpace)
		if end < 0 {
			end = len(src)
		}
		w := src[:end]
		tok, err := postfixword(w, col)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		src = src[end:]
		col += utf8.RuneCountInString(w)
	}
	return tokens, nil
}

func postfixword(w string, col int) (Token, error) {
	tok := Token{Text: w, Pos: col}
	if fn := fnnamed(w); fn != FnNone {
		tok.Kind, tok.Fn = TokenFunc, fn
		return tok, nil
	}
	switch w {
	case "(":
		tok.Kind = TokenOpen
		return tok, nil
	case ")":
		tok.Kind = TokenClose
		return tok, nil
	case "pi":
		tok.Kind, tok.Num = TokenNum, math.Pi
		return tok, nil
	case "e":
		tok.Kind, tok.Num = TokenNum, math.E
		return tok, nil
	}
	if len(w) == 1 {
		if op := opfor(rune(w[0])); op != OpNone {
			tok.Kind, tok.Op = TokenOp, op
			return tok, nil
		}
	}
	// Computed values may be negative or use exponents, but words like "Inf"
	// and "NaN" are not numbers here.
	c := w[0]
	if c == '-' || c == '+' {
		// Single-rune operators were handled above.
		c = w[1]
	}
	if !isDigit(rune(c)) && c != '.' {
		return tok, errat(InvalidToken, tok)
	}
	v, err := strconv.ParseFloat(w, 64)
	if err != nil && !isRange(err) {
		return tok, errat(InvalidToken, tok)
	}
	tok.Kind, tok.Num = TokenNum, v
	return tok, nil
}
