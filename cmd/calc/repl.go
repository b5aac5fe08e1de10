package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	xterm "golang.org/x/term"

	"calculus"
	"calculus/exprparse"
	"calculus/kernel"
	"calculus/term"
)

// REPL is a read-eval-print loop over the expression grammar exprparse
// reads: readline in interactive mode, a line scanner otherwise, each
// line a complete single-line expression.
type REPL struct {
	ops    map[string]*calculus.Op
	input  io.Reader
	output io.Writer
	prompt string
}

// NewREPL returns a REPL reading from stdin and writing to stdout.
func NewREPL() *REPL {
	return &REPL{
		ops:    calculus.Register(),
		input:  os.Stdin,
		output: os.Stdout,
		prompt: "calc> ",
	}
}

func (r *REPL) isInteractive() bool {
	if r.input == os.Stdin {
		return xterm.IsTerminal(int(os.Stdin.Fd()))
	}
	return false
}

// Run starts the loop, picking readline or a plain scanner depending on
// whether stdin is a terminal.
func (r *REPL) Run() error {
	if r.isInteractive() {
		return r.runInteractive()
	}
	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		r.processLine(line)
	}
	return scanner.Err()
}

func (r *REPL) runInteractive() error {
	rl := readline.NewInstance()
	rl.SetPrompt(r.prompt)
	for {
		line, err := rl.Readline()
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":exit" {
			return nil
		}
		r.processLine(line)
	}
}

// processLine parses one expression and, if its head is a registered
// operation name, evaluates it through calculus.Call; any other
// expression is echoed back in its already-simplified term form.
func (r *REPL) processLine(line string) {
	parsed, err := exprparse.Parse(line)
	if err != nil {
		fmt.Fprintf(r.output, "parse error: %v\n", err)
		return
	}
	result := parsed
	if parsed.Group == term.FN {
		if _, ok := r.ops[parsed.Fname]; ok {
			result, err = calculus.Call(r.ops, parsed.Fname, parsed.Args)
			if err != nil {
				if kernel.IsGaveUp(err) {
					fmt.Fprintf(r.output, "no result: %v\n", err)
					return
				}
				fmt.Fprintf(r.output, "error: %v\n", err)
				return
			}
		}
	}
	fmt.Fprintf(r.output, "%s\n", result)
}
