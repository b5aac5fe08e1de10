// Package sumprod evaluates finite symbolic sums and products over integer
// index ranges: numeric-bounds expansion by direct accumulation, a bulk
// numeric fallback for wide ranges, and a symbolic placeholder otherwise.
package sumprod

import (
	"calculus/kernel"
	"calculus/term"
)

// wideRangeThreshold is the point at which accumulating exact-rational
// terms one index at a time is abandoned in favor of a float64 reduction.
const wideRangeThreshold = 200

// Sum evaluates sum_{index=start}^{end} f.
func Sum(f *term.Term, index string, start, end *term.Term) (*term.Term, error) {
	return accumulate(f, index, start, end, true)
}

// Product evaluates product_{index=start}^{end} f.
func Product(f *term.Term, index string, start, end *term.Term) (*term.Term, error) {
	return accumulate(f, index, start, end, false)
}

func accumulate(f *term.Term, index string, start, end *term.Term, isSum bool) (*term.Term, error) {
	if !isPlainSymbol(index) {
		return nil, kernel.ErrIndexNotSymbol
	}
	if start.Group != term.N || start.IsInfinity {
		return placeholder(isSum, f, index, start, end), nil
	}

	// Intentional asymmetry (see DESIGN.md): Sum reads the end bound's
	// numeric value directly; Product reads it through Multiplier(),
	// which only agrees with the direct value for a bare numeric term
	// (PowR == 1). The two diverge for a term.Term that carries a
	// nontrivial power on its numeric end bound.
	var endVal term.Rational
	if isSum {
		if end.Group != term.N || end.IsInfinity {
			return placeholder(isSum, f, index, start, end), nil
		}
		endVal = end.Mult
	} else {
		if end.Group != term.N || end.IsInfinity {
			return placeholder(isSum, f, index, start, end), nil
		}
		endVal = end.Multiplier()
	}

	startVal := start.Mult
	if !startVal.IsInt() || !endVal.IsInt() {
		return placeholder(isSum, f, index, start, end), nil
	}
	lo, hi := startVal.Int64(), endVal.Int64()
	if hi < lo {
		if isSum {
			return term.NewInt(0), nil
		}
		return term.NewInt(1), nil
	}
	if hi-lo >= wideRangeThreshold {
		return accumulateNumeric(f, index, lo, hi, isSum)
	}

	acc := identity(isSum)
	for i := lo; i <= hi; i++ {
		term_i := kernel.Simplify(f.SubVar(index, term.NewInt(i)))
		if isSum {
			acc = kernel.Add(acc, term_i)
		} else {
			acc = kernel.Multiply(acc, term_i)
		}
	}
	return acc, nil
}

// accumulateNumeric handles the `|end-start| >= 200` case by compiling f to
// a float64 evaluator and reducing over the integer range in ModeNumeric.
func accumulateNumeric(f *term.Term, index string, lo, hi int64, isSum bool) (*term.Term, error) {
	result, err := kernel.Block(kernel.ModeNumeric, func() (interface{}, error) {
		fn, err := kernel.Build(f, index)
		if err != nil {
			return nil, err
		}
		acc := 0.0
		if !isSum {
			acc = 1.0
		}
		for i := lo; i <= hi; i++ {
			v := fn(float64(i))
			if isSum {
				acc += v
			} else {
				acc *= v
			}
		}
		return acc, nil
	})
	if err != nil {
		return nil, err
	}
	return term.NewNumber(term.RatFloat(result.(float64))), nil
}

func identity(isSum bool) *term.Term {
	if isSum {
		return term.NewInt(0)
	}
	return term.NewInt(1)
}

func placeholder(isSum bool, f *term.Term, index string, start, end *term.Term) *term.Term {
	name := "product"
	if isSum {
		name = "sum"
	}
	return term.NewFunction(name, f, term.NewSymbol(index), start, end)
}

// isPlainSymbol reports whether name is usable as a bound index variable:
// non-empty and starting with a letter or underscore, the same shape
// term.NewSymbol names use elsewhere in this module.
func isPlainSymbol(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
