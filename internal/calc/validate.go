package calc

import "math"

// IsOperator tells whether ch is one of + - * /.
func IsOperator(ch byte) bool {
	_, ok := parseOp(ch)
	return ok
}

// isUnaryMinus tells whether the character at i is a minus sign belonging to
// the number that follows it.
func isUnaryMinus(text string, i int) bool {
	return text[i] == '-' && (i == 0 || IsOperator(text[i-1]))
}

// HasConsecutiveOperators reports whether text contains two adjacent operators.
// A single unary minus directly after a binary operator is allowed, so "5*-3"
// is fine but "5*+3" and "5*--3" are not.
func HasConsecutiveOperators(text string) bool {
	for i := 1; i < len(text); i++ {
		if !IsOperator(text[i-1]) || !IsOperator(text[i]) {
			continue
		}
		if text[i] == '-' && !isUnaryMinus(text, i-1) {
			continue
		}
		return true
	}
	return false
}

// HasValidOperatorNumberRatio tells whether there is exactly one operator
// fewer than numbers.
func HasValidOperatorNumberRatio(numbers []float64, operators []Op) bool {
	return len(operators) == len(numbers)-1
}

// IsResultInvalid tells whether x overflowed or is not a number.
func IsResultInvalid(x float64) bool {
	return math.IsInf(x, 0) || math.IsNaN(x)
}
