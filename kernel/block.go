package kernel

import "log"

// Mode is the ambient evaluation mode. Block sets it for the duration of a
// thunk and CurrentMode reports it; the arithmetic in this package does not
// read it.
type Mode int

const (
	// ModeExact is the default: every operation stays on exact math/big.Rat
	// arithmetic, never silently drops to a float.
	ModeExact Mode = iota
	// ModeNumeric marks a float64 evaluation in progress; sum/product's
	// bulk-count fallback sets it around its Build-compiled loop.
	ModeNumeric
)

var currentMode = ModeExact

// CurrentMode reports the mode in effect for the caller's dynamic extent.
func CurrentMode() Mode { return currentMode }

// Block runs thunk with the ambient mode set to mode, restoring the
// previous mode on return (including on panic, via defer), matching the
// teacher's scoped-context push/pop discipline (core/context.go).
func Block(mode Mode, thunk func() (interface{}, error)) (interface{}, error) {
	prev := currentMode
	currentMode = mode
	defer func() { currentMode = prev }()
	return thunk()
}

// Warn logs a non-fatal diagnostic via plain log.Printf (see DESIGN.md
// for why this concern stays on the standard library).
func Warn(msg string) {
	log.Printf("kernel: %s", msg)
}
