// Package calc implements the expression engine behind the calculator buttons.
//
// An Engine accumulates button input into an expression such as "3+5*2",
// evaluates it with the usual precedence of * and / over + and -, and keeps
// the last answer for recall. Every call returns the string to display.
//
// An Engine is not safe for concurrent use.
package calc

import "strings"

// Button labels with special meaning.
const (
	KeyEquals = "="
	KeyClear  = "C"
	KeyDelete = "DEL"
	KeySign   = "+/-"
	KeyAnswer = "Ans"
)

// Engine is the calculator state of one session. The zero value is an empty
// calculator with no stored answer.
type Engine struct {
	input     string
	answer    string
	hasAnswer bool
	evaluated bool
}

// Submit processes one button press and returns the new display text.
func (e *Engine) Submit(token string) string {
	switch token {
	case KeyEquals:
		return e.evaluate()
	case KeyClear:
		e.Reset()
		return e.input
	case KeyDelete:
		e.rubout()
		return e.input
	case KeySign:
		return e.flipSign()
	case KeyAnswer:
		return e.recall()
	default:
		return e.insert(token)
	}
}

// Text returns the current expression.
func (e *Engine) Text() string {
	return e.input
}

// Answer returns the last computed result, if any.
func (e *Engine) Answer() (string, bool) {
	return e.answer, e.hasAnswer
}

// Reset clears the calculator, including the stored answer.
func (e *Engine) Reset() {
	e.answer, e.hasAnswer = "", false
	e.clearInput()
}

// clearInput drops the expression but keeps the stored answer.
func (e *Engine) clearInput() {
	e.input = ""
	e.evaluated = false
}

// rubout removes the last input character.
func (e *Engine) rubout() {
	if len(e.input) > 0 {
		e.input = e.input[:len(e.input)-1]
	}
}

// evaluate computes the current expression.
func (e *Engine) evaluate() string {
	e.evaluated = true
	result, err := e.compute()
	if err != nil {
		e.clearInput()
		return display(err)
	}
	e.answer, e.hasAnswer = FormatResult(result), true
	return e.input + " = " + e.answer
}

func (e *Engine) compute() (float64, error) {
	if e.input == "" || HasConsecutiveOperators(e.input) {
		return 0, SyntaxError
	}
	numbers, operators, err := Tokenize(e.input)
	if err != nil {
		return 0, err
	}
	return Evaluate(numbers, operators)
}

// flipSign negates the last number of the expression, or the stored answer
// right after evaluation.
func (e *Engine) flipSign() string {
	if e.evaluated {
		toggled, err := ToggleSign(e.answer)
		if err != nil {
			return SyntaxError.Error()
		}
		e.answer = toggled
		e.input = toggled
		e.evaluated = false
		return e.input
	}

	start := lastOperand(e.input)
	toggled, err := ToggleSign(e.input[start:])
	if err != nil {
		return SyntaxError.Error()
	}
	input := e.input[:start] + toggled
	if HasConsecutiveOperators(input) {
		return SyntaxError.Error()
	}
	e.input = input
	return e.input
}

// lastOperand returns the offset of the number following the last binary
// operator in s. A unary minus belongs to the number.
func lastOperand(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if IsOperator(s[i]) && !isUnaryMinus(s, i) {
			return i + 1
		}
	}
	return 0
}

// recall inserts the stored answer.
func (e *Engine) recall() string {
	if !e.hasAnswer {
		return e.input
	}
	if e.evaluated {
		e.input = e.answer
		e.evaluated = false
		return e.input
	}
	e.appendText(e.answer)
	return e.input
}

// insert processes a digit, decimal point or operator.
func (e *Engine) insert(token string) string {
	if !isInputToken(token) {
		return e.input
	}
	if e.evaluated {
		e.evaluated = false
		if IsOperator(token[0]) && e.hasAnswer {
			e.input = e.answer
		} else {
			e.input = ""
		}
	}
	e.appendText(token)
	return e.input
}

// appendText adds s to the expression unless that would put two operators
// next to each other.
func (e *Engine) appendText(s string) {
	if HasConsecutiveOperators(e.input + s) {
		return
	}
	e.input += s
}

// isInputToken tells whether token is a single digit, '.' or operator.
func isInputToken(token string) bool {
	if len(token) != 1 {
		return false
	}
	c := token[0]
	return c >= '0' && c <= '9' || c == '.' || IsOperator(c)
}

// Enter types expr one character at a time, as if from the keypad.
func (e *Engine) Enter(expr string) string {
	out := e.input
	for _, c := range strings.TrimSpace(expr) {
		if c == ' ' {
			continue
		}
		out = e.Submit(string(c))
	}
	return out
}
