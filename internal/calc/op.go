package calc

import "fmt"

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Op is a binary arithmetic operator.
type Op int

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		panic("unknown op")
	}
}

// precedes tells whether op binds tighter than + and -.
func (op Op) precedes() bool {
	return op == OpMul || op == OpDiv
}

// apply computes x op y. Division by exactly zero is a math error.
func (op Op) apply(x, y float64) (float64, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpDiv:
		if y == 0 {
			return 0, fmt.Errorf("%w: division by zero", MathError)
		}
		return x / y, nil
	default:
		panic("unknown op")
	}
}

// parseOp returns the operator for ch.
func parseOp(ch byte) (Op, bool) {
	switch ch {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	}
	return 0, false
}
