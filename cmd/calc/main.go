// Command calc is a small REPL over the symbolic calculus engine's
// external operations (diff, integrate, defint, limit, sum, product, S,
// C).
package main

import (
	"fmt"
	"os"
)

func main() {
	repl := NewREPL()
	if err := repl.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "calc: %v\n", err)
		os.Exit(1)
	}
}
