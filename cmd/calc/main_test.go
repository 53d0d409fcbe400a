package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestPressCmd(t *testing.T) {
	out, err := run(t, "", "press", "5", "+/-", "=")
	require.NoError(t, err)
	assert.Equal(t, "5\n-5.000\n-5.000 = -5.000\n", out)
}

func TestPressCmdEcho(t *testing.T) {
	out, err := run(t, "", "press", "--echo", "1", "DEL")
	require.NoError(t, err)
	assert.Equal(t, "1    1\nDEL  \n", out)
}

func TestEvalCmd(t *testing.T) {
	out, err := run(t, "", "eval", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "2+3*4 = 14.000\n", out)

	out, err = run(t, "", "eval", "2", "*", "3")
	require.NoError(t, err)
	assert.Equal(t, "2*3 = 6.000\n", out)

	out, err = run(t, "", "eval", "--", "-2*-3")
	require.NoError(t, err)
	assert.Equal(t, "-2*-3 = 6.000\n", out)
}

func TestEvalCmdError(t *testing.T) {
	_, err := run(t, "", "eval", "5/0")
	assert.EqualError(t, err, "Math Error: 5/0")

	_, err = run(t, "", "eval", "3+")
	assert.EqualError(t, err, "Syntax Error: 3+")
}

func TestReplCmd(t *testing.T) {
	input := "2+3\n=\n*2\n=\n\nAns\nC\n7\n"
	out, err := run(t, input, "repl")
	require.NoError(t, err)
	want := strings.Join([]string{
		"2+3",
		"2+3 = 5.000",
		"5.000*2",
		"5.000*2 = 10.000",
		"10.000",
		"",
		"7",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}
