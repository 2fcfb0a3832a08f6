package main

import "math"

// operandStack is the bounded stack used while evaluating a postfix
// expression.
type operandStack struct {
	items []float64
	limit int
}

func (s *operandStack) reset() { s.items = s.items[:0] }

func (s *operandStack) empty() bool { return len(s.items) == 0 }

func (s *operandStack) push(n float64) error {
	if s.limit > 0 && len(s.items) >= s.limit {
		return errStackOverflow
	}
	s.items = append(s.items, n)
	return nil
}

func (s *operandStack) pop() (float64, error) {
	i := len(s.items) - 1
	if i < 0 {
		return 0, errStackUnderflow
	}
	n := s.items[i]
	s.items = s.items[:i]
	return n, nil
}

func (in *Interp) push(n float64) { in.haltif(in.stack.push(n)) }

func (in *Interp) pop() float64 {
	n, err := in.stack.pop()
	in.haltif(err)
	return n
}

func isOperator(tok string) bool {
	switch tok {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

// applyOperator computes a op b. Only the integer truncation of a divisor is
// checked against zero, so dividing by 0.5 is also a division by zero.
func applyOperator(op string, a, b float64) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if math.Trunc(b) == 0 {
			return 0, errDivideByZero
		}
		return a / b, nil
	}
	return 0, nil
}

// postfix checks that every token up to the closing ")" is an operator or an
// operand, leaving the cursor on the ")".
func (in *Interp) postfix() {
	for tok := in.tokens.current(); tok != ")"; tok = in.tokens.current() {
		if _, isRef := in.ref(tok); !isRef && !isOperator(tok) && !isNumber(tok) {
			in.parseErrorf("SET", "invalid postfix items")
		}
		in.tokens.advance()
	}
}

// evalPostfix evaluates the expression under the cursor into dest, consuming
// the closing ")". Colour operands are assigned straight to dest without
// touching the stack. The expression result, if any, becomes dest's number.
func (in *Interp) evalPostfix(dest *variable) {
	in.stack.reset()
	for tok := in.tokens.current(); tok != ")"; tok = in.tokens.current() {
		switch name, isRef := in.ref(tok); {
		case isRef:
			if v, inUse := in.vars.lookup(name); inUse {
				if c, isColour := v.colour(); isColour {
					dest.value = colour(c)
				} else {
					in.push(v.number())
				}
			}

		case isOperator(tok):
			b, a := in.pop(), in.pop()
			n, err := applyOperator(tok, a, b)
			in.haltif(err)
			in.logf("=", "%v %v %v = %v", a, tok, b, n)
			in.push(n)

		default:
			n, _ := parseNumber(tok)
			in.push(n)
		}
		in.tokens.advance()
	}
	in.tokens.advance()

	if !in.stack.empty() {
		dest.value = number(in.pop())
	}
}
