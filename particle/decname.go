package particle

import "strings"

// The decay-file name grammar used by event generators:
//
//	[anti-]name[']..._state_family[(mass)][*][charge]
//
// It differs from the PDG style in three ways: the antiparticle marker
// is a leading "anti-" prefix, family and state qualifiers are
// underscore-separated instead of parenthesized, and the charge token
// may be omitted. Primes after the bare name are significant.
//
// A handful of historical names do not fit the grammar at all; those
// are resolved through a literal override table before parsing.

// decLiterals maps irregular decay-file names directly to the
// canonical table name they stand for.
var decLiterals = map[string]string{
	"f_0":     "f(0)(980)",
	"f'_0":    "f(0)(1370)",
	"sigma_0": "f(0)(500)",
	"K_S0":    "K(S)0",
	"K_L0":    "K(L)0",
	"J/psi":   "J/psi(1S)",
	"Jpsi":    "J/psi(1S)",
	"Upsilon": "Upsilon(1S)",
	"chi_b0":  "chi(b0)(1P)",
	"chi_b1":  "chi(b1)(1P)",
	"chi_b2":  "chi(b2)(1P)",
	"chi_c0":  "chi(c0)(1P)",
	"chi_c1":  "chi(c1)(1P)",
	"chi_c2":  "chi(c2)(1P)",
}

// decReplacements rewrites bare resonance stems into their
// mass-qualified table names. Applied in order, and only after both
// the literal table and grammar matching have failed.
var decReplacements = []struct{ old, new string }{
	{"K*", "K*(892)"},
	{"rho", "rho(770)"},
	{"omega", "omega(782)"},
	{"Delta", "Delta(1232)"},
}

// parseDecName parses a decay-file style name.
func parseDecName(input string) (nameMatch, bool) {
	var m nameMatch
	s := input

	if strings.HasPrefix(s, "anti-") {
		m.bar = true
		s = strings.TrimPrefix(s, "anti-")
	}

	// Optional charge token.
	switch {
	case strings.HasSuffix(s, "--"), strings.HasSuffix(s, "++"):
		m.charge = s[len(s)-2:]
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "+"), strings.HasSuffix(s, "-"), strings.HasSuffix(s, "0"):
		m.charge = s[len(s)-1:]
		s = s[:len(s)-1]
	}

	if strings.HasSuffix(s, "*") {
		m.star = true
		s = strings.TrimSuffix(s, "*")
	}

	if inner, rest, ok := trimParenGroup(s, allDigits); ok {
		m.mass = inner
		s = rest
	}

	// Underscore-separated family, then state.
	if i := strings.LastIndex(s, "_"); i > 0 {
		seg := s[i+1:]
		if seg != "" && strings.ContainsRune("udsctbemna", rune(seg[0])) && isWord(seg) {
			m.family = seg
			s = s[:i]
		}
	}
	if i := strings.LastIndex(s, "_"); i > 0 {
		if seg := s[i+1:]; allDigits(seg) {
			m.state = seg
			s = s[:i]
		}
	}

	for strings.HasSuffix(s, "'") {
		m.prime += "'"
		s = strings.TrimSuffix(s, "'")
	}

	if !isAlpha(s) {
		return nameMatch{}, false
	}
	m.name = s
	return m, true
}
