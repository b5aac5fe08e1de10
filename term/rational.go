// Package term implements the algebraic term representation described in
// the calculus engine's data model: a discriminated, immutable-by-convention
// tree with exact rational coefficients and exponents.
package term

import (
	"math/big"
)

// Rational is an exact rational number, num/den with den > 0. It wraps
// math/big.Rat so the module stays pure Go and portable; see DESIGN.md.
type Rational struct {
	r *big.Rat
}

func ratOf(r *big.Rat) Rational {
	return Rational{r: r}
}

func (r Rational) big() *big.Rat {
	if r.r == nil {
		return new(big.Rat)
	}
	return r.r
}

// RatInt builds the integer rational n/1.
func RatInt(n int64) Rational {
	return ratOf(new(big.Rat).SetInt64(n))
}

// RatFrac builds the rational num/den, den != 0.
func RatFrac(num, den int64) Rational {
	if den == 0 {
		panic("term: RatFrac with zero denominator")
	}
	return ratOf(new(big.Rat).SetFrac64(num, den))
}

// RatFloat approximates f as an exact rational (used only at the numeric
// kernel boundary, never inside the symbolic rewriting rules).
func RatFloat(f float64) Rational {
	r := new(big.Rat)
	r.SetFloat64(f)
	return ratOf(r)
}

// Zero and One are the additive/multiplicative identities.
func Zero() Rational { return RatInt(0) }
func One() Rational  { return RatInt(1) }
func MinusOne() Rational { return RatInt(-1) }

func (r Rational) Add(o Rational) Rational {
	return ratOf(new(big.Rat).Add(r.big(), o.big()))
}

func (r Rational) Sub(o Rational) Rational {
	return ratOf(new(big.Rat).Sub(r.big(), o.big()))
}

func (r Rational) Mul(o Rational) Rational {
	return ratOf(new(big.Rat).Mul(r.big(), o.big()))
}

// Div panics on division by a zero rational; callers in the kernel package
// must check IsZero first and surface kernel.ErrDivisionByZero instead.
func (r Rational) Div(o Rational) Rational {
	return ratOf(new(big.Rat).Quo(r.big(), o.big()))
}

func (r Rational) Neg() Rational {
	return ratOf(new(big.Rat).Neg(r.big()))
}

// Invert returns 1/r.
func (r Rational) Invert() Rational {
	return ratOf(new(big.Rat).Inv(r.big()))
}

func (r Rational) IsZero() bool { return r.big().Sign() == 0 }
func (r Rational) IsOne() bool  { return r.big().Cmp(big.NewRat(1, 1)) == 0 }
func (r Rational) IsNegOne() bool { return r.big().Cmp(big.NewRat(-1, 1)) == 0 }

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool {
	return r.big().IsInt()
}

func (r Rational) Sign() int { return r.big().Sign() }

func (r Rational) Less(o Rational) bool    { return r.big().Cmp(o.big()) < 0 }
func (r Rational) Greater(o Rational) bool { return r.big().Cmp(o.big()) > 0 }
func (r Rational) Equal(o Rational) bool   { return r.big().Cmp(o.big()) == 0 }

// Int64 truncates towards zero; only safe for values known to be integral
// and machine-sized (loop bounds, small exponents).
func (r Rational) Int64() int64 {
	n := new(big.Int).Quo(r.big().Num(), r.big().Denom())
	return n.Int64()
}

func (r Rational) Num() *big.Int { return new(big.Int).Set(r.big().Num()) }
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.big().Denom()) }

func (r Rational) Float64() float64 {
	f, _ := r.big().Float64()
	return f
}

func (r Rational) String() string {
	return r.big().RatString()
}

func (r Rational) Abs() Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}
