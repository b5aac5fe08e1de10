// Package calculus is the external interface of the symbolic calculus
// engine: it binds the seven operations (differentiation, sum, product,
// indefinite and definite integration, limits, and the Fresnel integrals)
// to name and arity.
package calculus

import (
	"fmt"

	"calculus/defint"
	"calculus/differentiate"
	"calculus/fresnel"
	"calculus/guard"
	"calculus/integrate"
	"calculus/kernel"
	"calculus/limit"
	"calculus/sumprod"
	"calculus/term"
)

// Op is one registered external operation: a name, an inclusive arity
// range, and the Go implementation that adapts a flat argument list to
// its package's native signature.
type Op struct {
	Name     string
	MinArity int
	MaxArity int
	Call     func(args []*term.Term) (*term.Term, error)
}

// Register returns every external operation, keyed by name. There is no
// pattern-based overload dispatch here, just fixed operations with
// optional trailing arguments.
func Register() map[string]*Op {
	ops := []*Op{
		{Name: "diff", MinArity: 1, MaxArity: 3, Call: callDiff},
		{Name: "sum", MinArity: 4, MaxArity: 4, Call: callSum},
		{Name: "product", MinArity: 4, MaxArity: 4, Call: callProduct},
		{Name: "integrate", MinArity: 1, MaxArity: 2, Call: callIntegrate},
		{Name: "defint", MinArity: 3, MaxArity: 4, Call: callDefint},
		{Name: "limit", MinArity: 3, MaxArity: 4, Call: callLimit},
		{Name: "S", MinArity: 1, MaxArity: 1, Call: callFresnelS},
		{Name: "C", MinArity: 1, MaxArity: 1, Call: callFresnelC},
	}
	out := make(map[string]*Op, len(ops))
	for _, op := range ops {
		out[op.Name] = op
	}
	return out
}

// Call dispatches a registered operation by name, checking arity before
// calling through, and clears the u-substitution dummy-variable counter between
// independent top-level calls per guard.ClearU's documented contract.
func Call(ops map[string]*Op, name string, args []*term.Term) (*term.Term, error) {
	op, ok := ops[name]
	if !ok {
		return nil, fmt.Errorf("calculus: unknown operation %q", name)
	}
	if len(args) < op.MinArity || len(args) > op.MaxArity {
		return nil, fmt.Errorf("calculus: %s expects %d-%d arguments, got %d", name, op.MinArity, op.MaxArity, len(args))
	}
	defer guard.ClearU()
	return op.Call(args)
}

func callDiff(args []*term.Term) (*term.Term, error) {
	expr := args[0]
	wrt, err := symbolArgOrDefault(args, 1, expr)
	if err != nil {
		return nil, err
	}
	n := 1
	if len(args) >= 3 {
		if args[2].Group != term.N || !args[2].Mult.IsInt() {
			return nil, kernel.ErrIndexNotSymbol
		}
		n = int(args[2].Mult.Int64())
	}
	return differentiate.Diff(expr, wrt, n)
}

func callIntegrate(args []*term.Term) (*term.Term, error) {
	expr := args[0]
	dt, err := symbolArgOrDefault(args, 1, expr)
	if err != nil {
		return nil, err
	}
	return integrate.Integrate(expr, dt)
}

func callDefint(args []*term.Term) (*term.Term, error) {
	expr, from, to := args[0], args[1], args[2]
	dx, err := symbolArgOrDefault(args, 3, expr)
	if err != nil {
		return nil, err
	}
	return defint.Defint(expr, from, to, dx)
}

func callLimit(args []*term.Term) (*term.Term, error) {
	expr, x, c := args[0], args[1], args[2]
	if x.Group != term.S {
		return nil, kernel.ErrIndexNotSymbol
	}
	depth := 0
	if len(args) >= 4 {
		if args[3].Group != term.N || !args[3].Mult.IsInt() {
			return nil, kernel.ErrIndexNotSymbol
		}
		depth = int(args[3].Mult.Int64())
	}
	return limit.Limit(expr, x.Val, c, depth)
}

func callSum(args []*term.Term) (*term.Term, error) {
	f, index, start, end := args[0], args[1], args[2], args[3]
	if index.Group != term.S {
		return nil, kernel.ErrIndexNotSymbol
	}
	return sumprod.Sum(f, index.Val, start, end)
}

func callProduct(args []*term.Term) (*term.Term, error) {
	f, index, start, end := args[0], args[1], args[2], args[3]
	if index.Group != term.S {
		return nil, kernel.ErrIndexNotSymbol
	}
	return sumprod.Product(f, index.Val, start, end)
}

func callFresnelS(args []*term.Term) (*term.Term, error) {
	return fresnel.S(args[0])
}

func callFresnelC(args []*term.Term) (*term.Term, error) {
	return fresnel.C(args[0])
}

// symbolArgOrDefault reads the variable-name argument at position i when
// present, or infers it from fallback's sole free variable when omitted:
// every operation that takes an optional trailing variable name falls
// back to "the one variable this expression depends on" rather than a
// fixed default like "x", since a bare numeric or multi-variable
// expression has no such unambiguous default.
func symbolArgOrDefault(args []*term.Term, i int, fallback *term.Term) (string, error) {
	if i < len(args) {
		if args[i].Group != term.S {
			return "", kernel.ErrIndexNotSymbol
		}
		return args[i].Val, nil
	}
	vars := variables(fallback)
	if len(vars) != 1 {
		return "", fmt.Errorf("calculus: cannot infer a variable from %s (found %d free variables); pass one explicitly", fallback, len(vars))
	}
	return vars[0], nil
}

// variables returns the distinct symbol names fallback depends on, in
// first-seen order.
func variables(t *term.Term) []string {
	seen := map[string]bool{}
	var order []string
	var walk func(*term.Term)
	walk = func(n *term.Term) {
		if n == nil {
			return
		}
		switch n.Group {
		case term.S:
			if !seen[n.Val] {
				seen[n.Val] = true
				order = append(order, n.Val)
			}
		case term.EX:
			walk(n.BaseT)
			walk(n.PowT)
		case term.FN:
			for _, a := range n.Args {
				walk(a)
			}
		case term.CP, term.PL, term.CB:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(t)
	return order
}
