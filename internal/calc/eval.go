package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tokenize splits expr into numbers and the binary operators between them.
// A minus sign at the start of expr or right after another operator is part
// of the following number.
func Tokenize(expr string) (numbers []float64, operators []Op, err error) {
	var num strings.Builder
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case isUnaryMinus(expr, i):
			num.WriteByte(c)
		case c >= '0' && c <= '9', c == '.':
			num.WriteByte(c)
		case IsOperator(c):
			x, err := parseNumber(num.String())
			if err != nil {
				return nil, nil, err
			}
			op, _ := parseOp(c)
			numbers = append(numbers, x)
			operators = append(operators, op)
			num.Reset()
		default:
			return nil, nil, fmt.Errorf("%w: unexpected character %q", SyntaxError, c)
		}
	}
	if num.Len() > 0 {
		x, err := parseNumber(num.String())
		if err != nil {
			return nil, nil, err
		}
		numbers = append(numbers, x)
	}
	return numbers, operators, nil
}

// parseNumber reads a single operand.
func parseNumber(s string) (float64, error) {
	if s == "" || s == "-" {
		return 0, fmt.Errorf("%w: missing operand", SyntaxError)
	}
	x, err := strconv.ParseFloat(s, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %q out of range", MathError, s)
	case err != nil:
		return 0, fmt.Errorf("%w: bad number %q", SyntaxError, s)
	}
	return x, nil
}

// Evaluate computes the expression formed by numbers and operators, applying
// * and / before + and -. The input slices are not modified.
func Evaluate(numbers []float64, operators []Op) (float64, error) {
	if len(numbers) == 0 || !HasValidOperatorNumberRatio(numbers, operators) {
		return 0, fmt.Errorf("%w: %d numbers, %d operators", SyntaxError, len(numbers), len(operators))
	}
	nums := append([]float64(nil), numbers...)
	ops := append([]Op(nil), operators...)

	// Collapse * and / into their left operand.
	for i := 0; i < len(ops); {
		if !ops[i].precedes() {
			i++
			continue
		}
		x, err := ops[i].apply(nums[i], nums[i+1])
		if err != nil {
			return 0, err
		}
		nums[i] = x
		nums = append(nums[:i+1], nums[i+2:]...)
		ops = append(ops[:i], ops[i+1:]...)
	}

	result := nums[0]
	for i, op := range ops {
		result, _ = op.apply(result, nums[i+1])
	}
	if IsResultInvalid(result) {
		return 0, fmt.Errorf("%w: result overflow", MathError)
	}
	return result, nil
}

// FormatResult formats x with three decimals. Negative zero prints as zero.
func FormatResult(x float64) string {
	s := strconv.FormatFloat(x, 'f', 3, 64)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}

// ToggleSign negates the number in s and formats it. Zero stays zero.
func ToggleSign(s string) (string, error) {
	x, err := parseNumber(s)
	if err != nil {
		return "", err
	}
	if x != 0 {
		x = -x
	}
	return FormatResult(x), nil
}
