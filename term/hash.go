package term

import (
	"sort"
	"strings"
)

// UpdateHash recomputes t's structural fingerprint. Callers must invoke
// this after any mutation through an identity-preserving operation so
// later equality checks stay consistent; Clone clears the cached
// fingerprint so it is lazily recomputed by Fingerprint().
func (t *Term) UpdateHash() {
	t.fp = t.computeFingerprint()
	t.fpSet = true
}

// Fingerprint returns the cached fingerprint, computing it first if stale.
func (t *Term) Fingerprint() string {
	if !t.fpSet {
		t.UpdateHash()
	}
	return t.fp
}

func (t *Term) computeFingerprint() string {
	var b strings.Builder
	b.WriteString(t.Group.String())
	b.WriteByte(':')
	switch t.Group {
	case N:
		if t.IsInfinity {
			b.WriteString("inf")
			b.WriteByte(':')
			switch t.InfSign {
			case -1:
				b.WriteString("-")
			case 1:
				b.WriteString("+")
			default:
				b.WriteString("0")
			}
		} else {
			b.WriteString(t.Mult.String())
		}
	case S, P:
		b.WriteString(t.Val)
		b.WriteByte('^')
		b.WriteString(t.PowR.String())
	case FN:
		b.WriteString(t.Fname)
		b.WriteByte('(')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(a.Fingerprint())
		}
		b.WriteByte(')')
		b.WriteByte('^')
		b.WriteString(t.PowR.String())
	case EX:
		b.WriteString(t.BaseT.Fingerprint())
		b.WriteString("^[")
		b.WriteString(t.PowT.Fingerprint())
		b.WriteByte(']')
	case CP, PL:
		fps := childFingerprints(t.Children)
		sort.Strings(fps)
		b.WriteString(strings.Join(fps, "+"))
		b.WriteByte('^')
		b.WriteString(t.PowR.String())
	case CB:
		fps := childFingerprints(t.Children)
		sort.Strings(fps)
		b.WriteString(strings.Join(fps, "*"))
		b.WriteByte('^')
		b.WriteString(t.PowR.String())
	}
	if !t.Mult.IsOne() && t.Group != N {
		b.WriteString("#m=")
		b.WriteString(t.Mult.String())
	}
	return b.String()
}

func childFingerprints(children []*Term) []string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.Fingerprint()
	}
	return out
}

// BareFingerprint is the fingerprint ignoring the global multiplier; the
// arithmetic kernel uses it to decide whether two terms are "like terms"
// that should merge under addition (CP) or exponent-combination (CB/PL).
func (t *Term) BareFingerprint() string {
	saved := t.Mult
	t.Mult = One()
	t.fpSet = false
	fp := t.Fingerprint()
	t.Mult = saved
	t.fpSet = false
	return fp
}
