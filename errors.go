package calc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies a failure to evaluate an expression.
type ErrorKind int8

const (
	kindNone ErrorKind = iota
	// InvalidCharacter is a rune the tokenizer does not recognize.
	InvalidCharacter
	// MismatchedParentheses is a close paren with no open paren or an open
	// paren that is never closed.
	MismatchedParentheses
	// InvalidExpression is an operator or function without enough operands,
	// or an expression that does not reduce to exactly one value.
	InvalidExpression
	// DivisionByZero is a division with a zero divisor.
	DivisionByZero
	// NonPositiveLogarithm is log or ln of a number that is not positive.
	NonPositiveLogarithm
	// NegativeSquareRoot is sqrt of a negative number.
	NegativeSquareRoot
	// DomainError is asin or acos outside [-1, 1].
	DomainError
	// InvalidToken is a malformed number or postfix word.
	InvalidToken
)

var kindnames = [...]string{
	kindNone:              "none",
	InvalidCharacter:      "invalid character",
	MismatchedParentheses: "mismatched parentheses",
	InvalidExpression:     "invalid expression",
	DivisionByZero:        "division by zero",
	NonPositiveLogarithm:  "logarithm of non-positive number",
	NegativeSquareRoot:    "square root of negative number",
	DomainError:           "argument outside domain",
	InvalidToken:          "invalid token",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Error is the error type returned by every stage of the engine. It
// implements InputError.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Col is the rune column of the token that caused the error, starting
	// at 1. It is 0 when no single token is responsible.
	Col int
	// Text is the offending token or function, if any.
	Text string
}

func (err *Error) Error() string {
	msg := err.Kind.String()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

// Is reports whether target is an *Error of the same kind. This lets callers
// use the sentinels with errors.Is.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

func (err *Error) Pos() int {
	return err.Col
}

// Sentinels for errors.Is. Only Kind is compared.
var (
	ErrInvalidCharacter      = &Error{Kind: InvalidCharacter}
	ErrMismatchedParentheses = &Error{Kind: MismatchedParentheses}
	ErrInvalidExpression     = &Error{Kind: InvalidExpression}
	ErrDivisionByZero        = &Error{Kind: DivisionByZero}
	ErrNonPositiveLogarithm  = &Error{Kind: NonPositiveLogarithm}
	ErrNegativeSquareRoot    = &Error{Kind: NegativeSquareRoot}
	ErrDomain                = &Error{Kind: DomainError}
	ErrInvalidToken          = &Error{Kind: InvalidToken}
)

// KindOf returns the kind of an engine error, or 0 if err is nil or did not
// come from the engine.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return kindNone
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*Error)(nil)

func errat(kind ErrorKind, tok Token) error {
	return &Error{Kind: kind, Col: tok.Pos, Text: tok.Text}
}
