package calc

// ToPostfix converts an infix token sequence into postfix order.
//
// Operators of equal precedence are always popped before the new one is
// pushed, so every operator is left-associative, including ^: 2^3^2 is
// (2^3)^2. A function stays on the stack until the close paren of the
// group that follows it, so sin(30)+1 applies sin to 30 alone.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	top := func() *Token {
		if len(stack) == 0 {
			return nil
		}
		return &stack[len(stack)-1]
	}
	pop := func() Token {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return t
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenFunc, TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for t := top(); t != nil && t.Kind != TokenOpen; t = top() {
				out = append(out, pop())
			}
			if len(stack) == 0 {
				return nil, errat(MismatchedParentheses, tok)
			}
			pop()
			if t := top(); t != nil && t.Kind == TokenFunc {
				out = append(out, pop())
			}
		case TokenOp:
			p := tok.Op.prec()
			if p == 0 {
				return nil, errat(InvalidToken, tok)
			}
			for t := top(); t != nil && t.Kind == TokenOp && t.Op.prec() >= p; t = top() {
				out = append(out, pop())
			}
			stack = append(stack, tok)
		default:
			return nil, errat(InvalidToken, tok)
		}
	}
	for len(stack) > 0 {
		t := pop()
		if t.Kind == TokenOpen || t.Kind == TokenClose {
			return nil, errat(MismatchedParentheses, t)
		}
		out = append(out, t)
	}
	return out, nil
}
