package particle

import "strings"

// The PDG-style name grammar:
//
//	name[(family)][(state)][*][(mass)][bar|~]charge
//
// family is a quark-flavour letter run in parentheses ("s", "c"...),
// state is a numeric J indicator (recognized only when a mass group
// follows), an asterisk marks orbital excitation, a parenthesized
// number disambiguates resonances by mass, a trailing bar or tilde
// marks the antiparticle, and the terminating charge token (0, +, ++,
// -, --) is mandatory.
//
// Parsing runs right to left, suffix by suffix, producing the same
// structured match for both grammars.

// nameMatch is the structured result of parsing a particle name.
type nameMatch struct {
	name   string
	family string
	state  string
	prime  string
	star   bool
	mass   string
	bar    bool
	charge string // "" when the grammar allows omission
}

// parsePDGName parses a PDG-style name. ok=false means the input does
// not fit the grammar; callers fall back to plain table matching.
func parsePDGName(input string) (nameMatch, bool) {
	var m nameMatch
	s := input

	// Mandatory charge token, longest first.
	switch {
	case strings.HasSuffix(s, "--"), strings.HasSuffix(s, "++"):
		m.charge = s[len(s)-2:]
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "+"), strings.HasSuffix(s, "-"), strings.HasSuffix(s, "0"):
		m.charge = s[len(s)-1:]
		s = s[:len(s)-1]
	default:
		return nameMatch{}, false
	}

	// Optional antiparticle marker.
	switch {
	case strings.HasSuffix(s, "bar"):
		m.bar = true
		s = strings.TrimSuffix(s, "bar")
	case strings.HasSuffix(s, "~"):
		m.bar = true
		s = strings.TrimSuffix(s, "~")
	}

	// Optional mass qualifier.
	if inner, rest, ok := trimParenGroup(s, allDigits); ok {
		m.mass = inner
		s = rest
	}

	// Optional excitation star.
	if strings.HasSuffix(s, "*") {
		m.star = true
		s = strings.TrimSuffix(s, "*")
	}

	// A numeric state group is recognized only in front of a mass
	// group; a lone parenthesized number is always a mass.
	if m.mass != "" {
		if inner, rest, ok := trimParenGroup(s, allDigits); ok {
			m.state = inner
			s = rest
		}
	}

	// Optional flavour family.
	if inner, rest, ok := trimParenGroup(s, isFamilyToken); ok {
		m.family = strings.Trim(inner, "_")
		s = rest
	}

	if s == "" || !isWord(s) {
		return nameMatch{}, false
	}
	m.name = s
	return m, true
}

// trimParenGroup strips a trailing parenthesized group whose content
// satisfies accept. The content must itself be parenthesis-free and a
// non-empty name must remain in front of the group.
func trimParenGroup(s string, accept func(string) bool) (inner, rest string, ok bool) {
	if !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	i := strings.LastIndex(s[:len(s)-1], "(")
	if i <= 0 {
		return "", "", false
	}
	inner = s[i+1 : len(s)-1]
	if inner == "" || strings.ContainsAny(inner, "()") || !accept(inner) {
		return "", "", false
	}
	return inner, s[:i], true
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// isFamilyToken recognizes a quark-flavour family group: a light or
// heavy flavour letter followed by word characters.
func isFamilyToken(s string) bool {
	if !strings.ContainsRune("udsctb", rune(s[0])) {
		return false
	}
	return isWord(s)
}

func isWord(s string) bool {
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return len(s) > 0
}

func isAlpha(s string) bool {
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
