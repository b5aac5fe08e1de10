// Package differentiate implements symbolic differentiation: the
// chain/product/sum/power rules plus the closed-form derivative table in
// table.go.
package differentiate

import (
	"fmt"

	"calculus/kernel"
	"calculus/term"
)

// Diff returns the nth derivative of t with respect to wrt (n == 1 for a
// first derivative; n <= 0 returns t unchanged).
func Diff(t *term.Term, wrt string, n int) (*term.Term, error) {
	if n <= 0 {
		return t.Clone(), nil
	}
	d, err := diffOnce(t, wrt)
	if err != nil {
		return nil, err
	}
	d = kernel.Simplify(d)
	if n == 1 {
		return d, nil
	}
	return Diff(d, wrt, n-1)
}

func diffOnce(t *term.Term, wrt string) (*term.Term, error) {
	if t == nil {
		return term.NewInt(0), nil
	}
	if !t.Contains(wrt, true) {
		return term.NewInt(0), nil
	}
	if t.Group == term.FN && t.Fname == "sqrt" {
		t = term.UnwrapSqrt(t)
	}

	// Generalized power rule + chain rule for any composite or function
	// term raised to a power other than 1 (EX's exponent is handled
	// separately, as a Term rather than a Rational).
	if t.Group != term.EX && !t.PowR.IsOne() {
		return diffPowerOfBase(t, wrt)
	}

	switch t.Group {
	case term.N, term.P:
		return term.NewInt(0), nil
	case term.S:
		return diffSymbol(t, wrt), nil
	case term.CP, term.PL:
		return diffSum(t, wrt)
	case term.CB:
		return diffProduct(t, wrt)
	case term.FN:
		return diffFunction(t, wrt)
	case term.EX:
		return diffExponent(t, wrt)
	default:
		return nil, fmt.Errorf("differentiate: unsupported group %s", t.Group)
	}
}

func diffSymbol(t *term.Term, wrt string) *term.Term {
	if t.Val != wrt {
		return term.NewInt(0)
	}
	coeff := t.Mult.Mul(t.PowR)
	newPow := t.PowR.Sub(term.One())
	if newPow.IsZero() {
		return term.NewNumber(coeff)
	}
	result := term.NewSymbolPow(wrt, newPow)
	result.Mult = coeff
	return result
}

// diffPowerOfBase handles t = Mult * base^p (p != 1, base any composite or
// function term) via the power rule composed with the chain rule:
// d/dx[base^p] = p * base^(p-1) * base'.
func diffPowerOfBase(t *term.Term, wrt string) (*term.Term, error) {
	p := t.PowR
	bareBase := t.Clone()
	bareBase.Mult = term.One()
	bareBase.PowR = term.One()
	baseDeriv, err := diffOnce(bareBase, wrt)
	if err != nil {
		return nil, err
	}
	reduced := kernel.Pow(bareBase, p.Sub(term.One()))
	outer := kernel.Multiply(term.NewNumber(t.Mult.Mul(p)), reduced)
	return kernel.Multiply(outer, baseDeriv), nil
}

func diffSum(t *term.Term, wrt string) (*term.Term, error) {
	acc := term.NewInt(0)
	for _, c := range t.Children {
		scaled := c.Clone()
		scaled.Mult = scaled.Mult.Mul(t.Mult)
		d, err := diffOnce(scaled, wrt)
		if err != nil {
			return nil, err
		}
		acc = kernel.Add(acc, d)
	}
	return acc, nil
}

func diffProduct(t *term.Term, wrt string) (*term.Term, error) {
	n := len(t.Children)
	acc := term.NewInt(0)
	for i := 0; i < n; i++ {
		di, err := diffOnce(t.Children[i], wrt)
		if err != nil {
			return nil, err
		}
		rest := make([]*term.Term, 0, n-1)
		for j, f := range t.Children {
			if j != i {
				rest = append(rest, f.Clone())
			}
		}
		var restTerm *term.Term
		switch len(rest) {
		case 0:
			restTerm = term.NewInt(1)
		case 1:
			restTerm = rest[0]
		default:
			restTerm = term.NewCB(rest...)
		}
		acc = kernel.Add(acc, kernel.Multiply(di, restTerm))
	}
	return kernel.Multiply(term.NewNumber(t.Mult), acc), nil
}

func diffFunction(t *term.Term, wrt string) (*term.Term, error) {
	if len(t.Args) == 0 {
		return term.NewInt(0), nil
	}
	switch t.Fname {
	case term.PARENTHESIS:
		inner, err := diffOnce(t.Args[0], wrt)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(term.NewNumber(t.Mult), inner), nil
	case "atan2":
		if len(t.Args) == 2 {
			y, x := t.Args[0], t.Args[1]
			yD, err := diffOnce(y, wrt)
			if err != nil {
				return nil, err
			}
			xD, err := diffOnce(x, wrt)
			if err != nil {
				return nil, err
			}
			num := kernel.Subtract(kernel.Multiply(x, yD), kernel.Multiply(y, xD))
			den := kernel.Add(sq(x), sq(y))
			return kernel.Multiply(term.NewNumber(t.Mult), quot(num, den)), nil
		}
	}

	rule, ok := unaryDerivTable[t.Fname]
	if !ok {
		// Unrecognized functions fall back to differentiating just the
		// argument, dropping the outer function entirely.
		argDeriv, err := diffOnce(t.Args[0], wrt)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(term.NewNumber(t.Mult), argDeriv), nil
	}
	argDeriv, err := diffOnce(t.Args[0], wrt)
	if err != nil {
		return nil, err
	}
	outer := rule(t.Args[0])
	return kernel.Multiply(term.NewNumber(t.Mult), kernel.Multiply(outer, argDeriv)), nil
}

// diffExponent differentiates base^exponent via logarithmic
// differentiation, d/dx[f^g] = f^g * (g' * ln(f) + g * f'/f), which
// reduces correctly to the plain power rule when g' == 0 and to the plain
// exponential rule when f' == 0.
func diffExponent(t *term.Term, wrt string) (*term.Term, error) {
	base, exp := t.BaseT, t.PowT
	baseDeriv, err := diffOnce(base, wrt)
	if err != nil {
		return nil, err
	}
	expDeriv, err := diffOnce(exp, wrt)
	if err != nil {
		return nil, err
	}
	bare := t.Clone()
	bare.Mult = term.One()
	lnBase := term.NewFunction(term.LOG, base)
	if base.IsE() && base.Mult.IsOne() {
		lnBase = term.NewInt(1)
	}
	term1 := kernel.Multiply(expDeriv, lnBase)
	term2 := kernel.Multiply(exp, quot(baseDeriv, base))
	inner := kernel.Add(term1, term2)
	result := kernel.Multiply(bare, inner)
	return kernel.Multiply(term.NewNumber(t.Mult), result), nil
}
