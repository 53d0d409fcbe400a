package calc

import "errors"

const (
	// SyntaxError is a malformed expression: misplaced operators, a bad number,
	// a wrong operator/number ratio or an empty submission.
	SyntaxError Error = iota + 1
	// MathError is division by zero or a result that overflowed to Inf or NaN.
	MathError
)

// Error is the kind of a calculator failure. Its message is the text shown
// on the display.
type Error int

func (e Error) Error() string {
	switch e {
	case SyntaxError:
		return "Syntax Error"
	case MathError:
		return "Math Error"
	default:
		return "Error"
	}
}

// display converts err to the string shown to the user.
func display(err error) string {
	var kind Error
	if errors.As(err, &kind) {
		return kind.Error()
	}
	return SyntaxError.Error()
}
