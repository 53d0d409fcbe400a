package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineInput(t *testing.T) {
	var e Engine
	// input integer
	press(&e, "1", "2", "3")
	check(t, &e, "123")
	// redo last digit
	e.Submit(KeyDelete)
	e.Submit("4")
	check(t, &e, "124")
	// decimal point and operators
	press(&e, ".", "6", "+", "2")
	check(t, &e, "124.6+2")
	// rubout
	press(&e, KeyDelete, KeyDelete)
	check(t, &e, "124.6")
}

func TestEngineIgnoresUnknownTokens(t *testing.T) {
	var e Engine
	press(&e, "1", "a", "12", "%", "")
	check(t, &e, "1")
}

func TestEngineEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"2+3*4", "2+3*4 = 14.000"},
		{"7", "7 = 7.000"},
		{"10/4", "10/4 = 2.500"},
		{"1-6/3*2", "1-6/3*2 = -3.000"},
		{"-5+2", "-5+2 = -3.000"},
		{"5*-2", "5*-2 = -10.000"},
		{"5--3", "5--3 = 8.000"},
		{"1/3", "1/3 = 0.333"},
		{".5+.5", ".5+.5 = 1.000"},
		{"1.0005", "1.0005 = 1.000"},
		{"5/0", "Math Error"},
		{"1+5/0*2", "Math Error"},
		{"3+", "Syntax Error"},
		{"3..4", "Syntax Error"},
		{"3.1.4+1", "Syntax Error"},
		{"+5", "Syntax Error"},
		{"*", "Syntax Error"},
		{"-", "Syntax Error"},
		{".", "Syntax Error"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			var e Engine
			e.Enter(tt.expr)
			assert.Equal(t, tt.want, e.Submit(KeyEquals))
		})
	}
}

func TestEngineEmptySubmission(t *testing.T) {
	var e Engine
	assert.Equal(t, "Syntax Error", e.Submit(KeyEquals))
	check(t, &e, "")
}

func TestEngineErrorClearsInput(t *testing.T) {
	var e Engine
	e.Enter("2*3")
	e.Submit(KeyEquals)
	e.Enter("5/0")
	assert.Equal(t, "Math Error", e.Submit(KeyEquals))
	check(t, &e, "")
	// the next digit starts over rather than continuing a stale expression
	assert.Equal(t, "4", e.Submit("4"))

	// the previous answer is still available
	ans, ok := e.Answer()
	assert.True(t, ok)
	assert.Equal(t, "6.000", ans)
}

func TestEngineRefusesConsecutiveOperators(t *testing.T) {
	var e Engine
	e.Enter("5++*3")
	check(t, &e, "5+3")

	e.Submit(KeyClear)
	e.Enter("5*--3")
	check(t, &e, "5*-3")

	e.Submit(KeyClear)
	e.Enter("--5")
	check(t, &e, "-5")
}

func TestEngineClear(t *testing.T) {
	var e Engine
	e.Enter("2+2")
	e.Submit(KeyEquals)
	e.Enter("+1")
	assert.Equal(t, "", e.Submit(KeyClear))
	assert.Equal(t, "", e.Submit(KeyClear))
	check(t, &e, "")
	_, ok := e.Answer()
	assert.False(t, ok)
	assert.Equal(t, Engine{}, e)
}

func TestEngineDeleteEmpty(t *testing.T) {
	var e Engine
	assert.Equal(t, "", e.Submit(KeyDelete))
	assert.Equal(t, "", e.Submit(KeyDelete))
	assert.Equal(t, Engine{}, e)
}

func TestEngineAfterEvaluate(t *testing.T) {
	var e Engine
	e.Enter("2+3")
	assert.Equal(t, "2+3 = 5.000", e.Submit(KeyEquals))

	// a digit starts a new expression
	assert.Equal(t, "7", e.Submit("7"))

	e.Submit(KeyClear)
	e.Enter("2+3")
	e.Submit(KeyEquals)
	// an operator continues from the answer
	assert.Equal(t, "5.000*", e.Submit("*"))
	assert.Equal(t, "5.000*2", e.Submit("2"))
	assert.Equal(t, "5.000*2 = 10.000", e.Submit(KeyEquals))

	// Ans replaces the finished expression with the answer
	assert.Equal(t, "10.000", e.Submit(KeyAnswer))
	assert.Equal(t, "10.000+", e.Submit("+"))
	assert.Equal(t, "10.000+10.000", e.Submit(KeyAnswer))
	assert.Equal(t, "10.000+10.000 = 20.000", e.Submit(KeyEquals))
}

func TestEngineRepeatEquals(t *testing.T) {
	var e Engine
	e.Enter("6/4")
	assert.Equal(t, "6/4 = 1.500", e.Submit(KeyEquals))
	assert.Equal(t, "6/4 = 1.500", e.Submit(KeyEquals))
}

func TestEngineAnswerWithoutResult(t *testing.T) {
	var e Engine
	assert.Equal(t, "", e.Submit(KeyAnswer))
	e.Enter("3+")
	assert.Equal(t, "3+", e.Submit(KeyAnswer))
}

func TestEngineFlipSign(t *testing.T) {
	var e Engine
	e.Submit("5")
	assert.Equal(t, "-5.000", e.Submit(KeySign))
	assert.Equal(t, "-5.000 = -5.000", e.Submit(KeyEquals))

	e.Submit(KeyClear)
	e.Submit("5")
	e.Submit(KeySign)
	assert.Equal(t, "5.000", e.Submit(KeySign))

	e.Submit(KeyClear)
	e.Enter("5-3")
	assert.Equal(t, "5--3.000", e.Submit(KeySign))
	assert.Equal(t, "5--3.000 = 8.000", e.Submit(KeyEquals))

	e.Submit(KeyClear)
	e.Enter("5*-3")
	assert.Equal(t, "5*3.000", e.Submit(KeySign))

	e.Submit(KeyClear)
	e.Submit("0")
	assert.Equal(t, "0.000", e.Submit(KeySign))
}

func TestEngineFlipSignError(t *testing.T) {
	var e Engine
	assert.Equal(t, "Syntax Error", e.Submit(KeySign))

	e.Enter("3+")
	assert.Equal(t, "Syntax Error", e.Submit(KeySign))
	check(t, &e, "3+")

	e.Submit(KeyClear)
	e.Enter("3..4")
	assert.Equal(t, "Syntax Error", e.Submit(KeySign))
	check(t, &e, "3..4")
}

func TestEngineFlipSignAfterEvaluate(t *testing.T) {
	var e Engine
	e.Enter("2*4")
	e.Submit(KeyEquals)
	assert.Equal(t, "-8.000", e.Submit(KeySign))
	ans, _ := e.Answer()
	assert.Equal(t, "-8.000", ans)
	assert.Equal(t, "-8.000+", e.Submit("+"))
	e.Submit("1")
	assert.Equal(t, "-8.000+1 = -7.000", e.Submit(KeyEquals))
}

func check(t *testing.T, e *Engine, text string) {
	t.Helper()
	if e.Text() != text {
		t.Fatalf("wrong text\n  got: %q\n want: %q\nstate: %+v", e.Text(), text, *e)
	}
}

// press submits tokens in order and returns the last display text.
func press(e *Engine, tokens ...string) string {
	var out string
	for _, t := range tokens {
		out = e.Submit(t)
	}
	return out
}
