// Command calc drives the calculator engine from a terminal or as an MCP server.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/server"
	"github.com/fjl/giocalc/internal/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "calc",
		Short:        "Four-function calculator",
		Version:      server.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if !verbose {
				log.SetOutput(io.Discard)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	root.AddCommand(newPressCmd(), newEvalCmd(), newReplCmd(), newMCPCmd())
	return root
}

func newPressCmd() *cobra.Command {
	var echo bool
	cmd := &cobra.Command{
		Use:   "press TOKEN...",
		Short: "Press buttons in order and print the display after each",
		Long:  "Press buttons in order. Buttons are 0-9 . + - * / = C DEL +/- Ans.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var e calc.Engine
			out := cmd.OutOrStdout()
			for _, tok := range args {
				display := e.Submit(tok)
				if echo {
					fmt.Fprintf(out, "%-4s %s\n", tok, display)
				} else {
					fmt.Fprintln(out, display)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&echo, "echo", false, "print each button before the display")
	return cmd
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Evaluate an expression such as 2+3*4",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var e calc.Engine
			expr := strings.Join(args, "")
			e.Enter(expr)
			display := e.Submit(calc.KeyEquals)
			if _, ok := e.Answer(); !ok {
				return fmt.Errorf("%s: %s", display, expr)
			}
			fmt.Fprintln(cmd.OutOrStdout(), display)
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read buttons or expressions from stdin, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// repl feeds each input line to a single engine. A line that is a button
// label is pressed as is, anything else is typed character by character.
func repl(in io.Reader, out io.Writer) error {
	var (
		e       calc.Engine
		scanner = bufio.NewScanner(in)
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var display string
		if isButton(line) {
			display = e.Submit(line)
		} else {
			display = e.Enter(line)
		}
		fmt.Fprintln(out, display)
	}
	return scanner.Err()
}

func isButton(s string) bool {
	switch s {
	case calc.KeyEquals, calc.KeyClear, calc.KeyDelete, calc.KeySign, calc.KeyAnswer:
		return true
	}
	return false
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve calculator sessions as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.NewCalcServer(session.NewRegistry())
			return srv.ServeStdio()
		},
	}
}
