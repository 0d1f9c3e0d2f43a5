package calc

// EvalPostfix evaluates a postfix token sequence as produced by ToPostfix.
// The sequence must reduce to exactly one value. Parentheses and other
// tokens that cannot appear in postfix fail with InvalidToken.
func EvalPostfix(tokens []Token) (float64, error) {
	stack := make([]float64, 0, len(tokens)/2+1)
	pop := func() float64 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return r
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, tok.Num)
		case TokenOp:
			if len(stack) < 2 {
				return 0, errat(InvalidExpression, tok)
			}
			b := pop()
			a := pop()
			r, k := tok.Op.eval(a, b)
			if k != kindNone {
				return 0, errat(k, tok)
			}
			stack = append(stack, r)
		case TokenFunc:
			if len(stack) < 1 {
				return 0, errat(InvalidExpression, tok)
			}
			r, k := tok.Fn.eval(pop())
			if k != kindNone {
				return 0, errat(k, tok)
			}
			stack = append(stack, r)
		default:
			return 0, errat(InvalidToken, tok)
		}
	}
	if len(stack) != 1 {
		return 0, &Error{Kind: InvalidExpression}
	}
	return stack[0], nil
}

// Evaluate tokenizes, converts, and evaluates an infix expression, stopping
// at the first error.
func Evaluate(src string) (float64, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	post, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(post)
}
