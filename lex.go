package calc

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// keywords are the function names in the order the lexer tries them. Names
// which contain other names come first, so that asin is never read as a
// followed by sin and e^x is never read as the constant e.
var keywords = []struct {
	text string
	fn   Fn
}{
	{"asin", Asin},
	{"acos", Acos},
	{"atan", Atan},
	{"10^x", Pow10},
	{"e^x", Exp},
	{"sin", Sin},
	{"cos", Cos},
	{"tan", Tan},
	{"log", Log10},
	{"ln", Ln},
	{"sqrt", Sqrt},
}

type lexer struct {
	src string
	// off is the byte offset of the next rune in src.
	off int
	// col is the rune column of the next rune, starting at 1.
	col int
	// prefix is whether the next token begins an operand, i.e. it is at the
	// start of input or follows an open paren, operator, or function.
	prefix bool
	// p is a pushed token, returned by the next call to next.
	p Token
}

func lex(src string) *lexer {
	return &lexer{src: src, col: 1, prefix: true}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok Token) {
	if l.p.Kind != TokenNone {
		panic("calc: double push")
	}
	l.p = tok
}

// rest is the unscanned input.
func (l *lexer) rest() string {
	return l.src[l.off:]
}

// advance consumes n bytes of input spanning k runes.
func (l *lexer) advance(n, k int) {
	l.off += n
	l.col += k
}

// next scans the next token from the input. At the end of input, the error
// is io.EOF.
func (l *lexer) next() (tok Token, err error) {
	if l.p.Kind != TokenNone {
		tok, l.p = l.p, Token{}
	} else if tok, err = l.scan(); err != nil {
		return tok, err
	}
	l.prefix = tok.Kind == TokenOpen || tok.Kind == TokenOp || tok.Kind == TokenFunc
	return tok, nil
}

// scan reads one token from the input.
func (l *lexer) scan() (Token, error) {
	for {
		s := l.rest()
		if s == "" {
			return Token{}, io.EOF
		}
		tok := Token{Pos: l.col}
		r, sz := utf8.DecodeRuneInString(s)
		if isSpace(r) {
			l.advance(sz, 1)
			continue
		}
		for _, kw := range keywords {
			if strings.HasPrefix(s, kw.text) {
				tok.Kind, tok.Fn, tok.Text = TokenFunc, kw.fn, kw.text
				l.advance(len(kw.text), utf8.RuneCountInString(kw.text))
				return tok, nil
			}
		}
		switch {
		case strings.HasPrefix(s, "pi"):
			tok.Kind, tok.Num, tok.Text = TokenNum, math.Pi, "pi"
			l.advance(2, 2)
			return tok, nil
		case r == 'e' && l.standalone(sz):
			tok.Kind, tok.Num, tok.Text = TokenNum, math.E, "e"
			l.advance(1, 1)
			return tok, nil
		case isDigit(r), r == '.':
			return l.scanNum(tok)
		case r == '(':
			tok.Kind, tok.Text = TokenOpen, "("
		case r == ')':
			tok.Kind, tok.Text = TokenClose, ")"
		case r == '-' && l.prefix:
			// A minus that starts an operand negates it the same way the
			// calculator's negation button does, by writing (-1)*.
			l.advance(sz, 1)
			l.push(Token{Kind: TokenOp, Op: Mul, Text: "-", Pos: tok.Pos})
			tok.Kind, tok.Num, tok.Text = TokenNum, -1, "-1"
			return tok, nil
		default:
			op := opfor(r)
			if op == OpNone {
				// Consume the rune so that the column of whatever follows is
				// still right.
				l.advance(sz, 1)
				tok.Text = string(r)
				return tok, errat(InvalidCharacter, tok)
			}
			tok.Kind, tok.Op, tok.Text = TokenOp, op, string(r)
		}
		l.advance(sz, 1)
		return tok, nil
	}
}

// standalone reports whether the sz-byte rune at the current offset is a
// whole word, i.e. it has no letter, digit, or underscore on either side.
func (l *lexer) standalone(sz int) bool {
	if l.off > 0 {
		r, _ := utf8.DecodeLastRuneInString(l.src[:l.off])
		if isWord(r) {
			return false
		}
	}
	if l.off+sz < len(l.src) {
		r, _ := utf8.DecodeRuneInString(l.src[l.off+sz:])
		if isWord(r) {
			return false
		}
	}
	return true
}

// scanNum scans a run of digits and dots. The number ends early where 10^x
// begins, so 210^x is 2 followed by the function.
func (l *lexer) scanNum(tok Token) (Token, error) {
	s := l.rest()
	n := 0
	for n < len(s) && (isDigit(rune(s[n])) || s[n] == '.') {
		if n > 0 && strings.HasPrefix(s[n:], "10^x") {
			break
		}
		n++
	}
	tok.Text = s[:n]
	l.advance(n, n)
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil && !isRange(err) {
		return tok, errat(InvalidToken, tok)
	}
	tok.Kind, tok.Num = TokenNum, v
	return tok, nil
}

// Tokenize scans an infix expression into tokens. Function names and the
// constants pi and e are recognized in place; e is a constant only as a
// whole word. A minus at the start of an operand becomes -1 followed by *,
// so -2^2 is -4. Whitespace separates tokens and is otherwise ignored.
func Tokenize(src string) ([]Token, error) {
	scan := lex(src)
	var tokens []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokens, nil
			}
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isRange reports whether err from strconv.ParseFloat only means the value
// overflowed to an infinity or underflowed to zero, both of which are usable.
func isRange(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}
