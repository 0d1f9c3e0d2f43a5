// Package calc implements the expression engine of a scientific calculator.
//
// An expression is infix arithmetic over decimal numbers with + - * / ^,
// parentheses, the constants pi and e, and the unary functions sin, cos, tan,
// asin, acos, atan, log, ln, sqrt, 10^x, and e^x. Trigonometric functions
// work in degrees. A minus that begins an operand is read the way the
// calculator's negation button writes it, as (-1)*, so "-2^2" is -4. All
// operators are left-associative, so "2^3^2" is 64.
//
// Evaluation is a pipeline of three stages which may also be used on their
// own: Tokenize, ToPostfix, and EvalPostfix. Evaluate runs all three.
// EvaluatePrec runs the same pipeline with arbitrary-precision arithmetic.
// Nothing is retained between calls, so all functions are safe for
// concurrent use.
package calc
