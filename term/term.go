package term

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical function names consulted by the rewriting strategies. Kept
// here, not in a config file, since these never vary across a process
// and every strategy needs them at compile time.
const (
	LOG         = "log"
	LOG10       = "log10"
	PARENTHESIS = "parens"
	FACTORIAL   = "factorial"
)

// Term is the discriminated algebraic term every rewriting strategy
// operates on. Treat values returned from constructors and from kernel
// operations as immutable by convention: callers that intend to mutate
// must Clone first.
type Term struct {
	Group Group
	Mult  Rational

	// Val carries the symbol name (group S), the numeric base of a surd
	// (group P), or is unused otherwise.
	Val string

	// PowR is the rational power for groups S, P, FN, CP, PL, CB. PowT is
	// the term-valued exponent for group EX (mutually exclusive with PowR).
	PowR Rational
	PowT *Term

	// BaseT is the base of an EX term (itself an arbitrary sub-term).
	BaseT *Term

	// Fname/Args hold a function application (group FN).
	Fname string
	Args  []*Term

	// Children holds the addends (CP, PL) or factors (CB) of a composite
	// term, in deterministic order. Symbols() derives a fingerprint-keyed
	// map from this slice on demand.
	Children []*Term

	// PrevGroup records the group this term had before a normalizing
	// rewrite (e.g. sqrt-unwrap); informational only.
	PrevGroup Group

	IsInfinity bool
	// InfSign is -1, 0 (both directions / unsigned), or +1.
	InfSign int

	fp    string
	fpSet bool
}

// ---- constructors ----

// NewNumber builds a group-N term with value r.
func NewNumber(r Rational) *Term {
	return &Term{Group: N, Mult: r, PowR: One()}
}

func NewInt(n int64) *Term { return NewNumber(RatInt(n)) }

// NewSymbol builds a group-S term: name raised to power 1 with multiplier 1.
func NewSymbol(name string) *Term {
	return &Term{Group: S, Mult: One(), Val: name, PowR: One()}
}

// NewSymbolPow builds name^pow.
func NewSymbolPow(name string, pow Rational) *Term {
	return &Term{Group: S, Mult: One(), Val: name, PowR: pow}
}

// NewPrimePower builds a surd baseVal^pow (e.g. NewPrimePower("2", 1/2) is
// sqrt(2)).
func NewPrimePower(baseVal string, pow Rational) *Term {
	return &Term{Group: P, Mult: One(), Val: baseVal, PowR: pow}
}

// NewFunction builds fname(args...) raised to the first power.
func NewFunction(fname string, args ...*Term) *Term {
	return &Term{Group: FN, Mult: One(), Fname: fname, Args: args, PowR: One()}
}

// NewEX builds base^exponent where exponent contains a variable.
func NewEX(base, exponent *Term) *Term {
	return &Term{Group: EX, Mult: One(), BaseT: base, PowT: exponent, PowR: One()}
}

// NewCP builds a composite polynomial (sum) from addends.
func NewCP(children ...*Term) *Term {
	return &Term{Group: CP, Mult: One(), PowR: One(), Children: children}
}

// NewPL builds a polynomial-like sum sharing a base name.
func NewPL(baseVal string, children ...*Term) *Term {
	return &Term{Group: PL, Mult: One(), Val: baseVal, PowR: One(), Children: children}
}

// NewCB builds a combination (product) from factors.
func NewCB(children ...*Term) *Term {
	return &Term{Group: CB, Mult: One(), PowR: One(), Children: children}
}

// Infinity builds the signed-infinity term; sign is -1, 0, or +1.
func Infinity(sign int) *Term {
	return &Term{Group: N, Mult: One(), PowR: One(), IsInfinity: true, InfSign: sign}
}

// ---- accessors ----

func (t *Term) Multiplier() Rational { return t.Mult }

// Power returns the rational power and, for group EX, the term-valued
// exponent (nil otherwise).
func (t *Term) Power() (Rational, *Term) {
	if t.Group == EX {
		return Zero(), t.PowT
	}
	return t.PowR, nil
}

// Symbols derives a fingerprint -> child map from Children. Only
// meaningful for CP, PL, CB.
func (t *Term) Symbols() map[string]*Term {
	m := make(map[string]*Term, len(t.Children))
	for _, c := range t.Children {
		m[c.Fingerprint()] = c
	}
	return m
}

// ---- clone ----

// Clone deep-copies t. Strategies must clone before mutating a subterm
// that may be shared with the caller.
func (t *Term) Clone() *Term {
	if t == nil {
		return nil
	}
	c := *t
	if t.BaseT != nil {
		c.BaseT = t.BaseT.Clone()
	}
	if t.PowT != nil {
		c.PowT = t.PowT.Clone()
	}
	if t.Args != nil {
		c.Args = make([]*Term, len(t.Args))
		for i, a := range t.Args {
			c.Args[i] = a.Clone()
		}
	}
	if t.Children != nil {
		c.Children = make([]*Term, len(t.Children))
		for i, ch := range t.Children {
			c.Children[i] = ch.Clone()
		}
	}
	c.fpSet = false
	c.fp = ""
	return &c
}

// ---- equality / ordering ----

// Equals reports structural equality (same fingerprint).
func (t *Term) Equals(o *Term) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Fingerprint() == o.Fingerprint()
}

// LessThan orders terms for deterministic factor/addend sorting: by
// group, then by power descending, then by fingerprint descending.
func (t *Term) LessThan(o *Term) bool {
	if t.Group != o.Group {
		return t.Group > o.Group // descending group
	}
	tp, _ := t.Power()
	op, _ := o.Power()
	if !tp.Equal(op) {
		return tp.Greater(op) // descending power
	}
	return t.Fingerprint() > o.Fingerprint() // descending lexicographic
}

func (t *Term) GreaterThan(o *Term) bool {
	return o.LessThan(t)
}

// SortFactors sorts a factor/addend slice in place per LessThan.
func SortFactors(ts []*Term) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].LessThan(ts[j]) })
}

// ---- string / text ----

func (t *Term) String() string {
	if t == nil {
		return "<nil>"
	}
	body := t.bodyString()
	if !t.Mult.IsOne() && !t.IsInfinity {
		if t.Mult.IsNegOne() {
			return "-" + body
		}
		return t.Mult.String() + "*" + body
	}
	return body
}

func (t *Term) bodyString() string {
	switch t.Group {
	case N:
		if t.IsInfinity {
			switch t.InfSign {
			case -1:
				return "-Infinity"
			case 1:
				return "Infinity"
			default:
				return "ComplexInfinity"
			}
		}
		return t.Mult.String()
	case S:
		return withPower(t.Val, t.PowR)
	case P:
		return withPower("["+t.Val+"]", t.PowR)
	case FN:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		call := t.Fname + "(" + strings.Join(args, ", ") + ")"
		return withPower(call, t.PowR)
	case EX:
		return t.BaseT.String() + "^(" + t.PowT.String() + ")"
	case CP, PL:
		parts := make([]string, len(t.Children))
		for i, c := range t.Children {
			parts[i] = c.String()
		}
		sum := "(" + strings.Join(parts, " + ") + ")"
		return withPower(sum, t.PowR)
	case CB:
		parts := make([]string, len(t.Children))
		for i, c := range t.Children {
			parts[i] = c.String()
		}
		prod := strings.Join(parts, "*")
		return withPower(prod, t.PowR)
	default:
		return "?"
	}
}

func withPower(base string, p Rational) string {
	if p.IsOne() {
		return base
	}
	return fmt.Sprintf("%s^(%s)", base, p.String())
}

// Text is an alias for String kept for callers that expect a `text()`
// style accessor name.
func (t *Term) Text() string { return t.String() }
