package particle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hepkit/pdg/internal/log"
)

// Name lookups. Both grammars funnel their structured match through
// fromMatch, which turns it into a registry search: the qualifiers
// reassemble into a substring of the display name, the state digit
// constrains J, the charge token constrains the charge, and the
// antiparticle marker restricts the sign. Results come back in
// canonical table order, so an ambiguous query is stable.

// FromString returns the single best record for a PDG-style name.
// An ambiguous name resolves to the canonically first match.
func (r *Registry) FromString(name string) (Particle, error) {
	vals := r.FromStringList(name)
	if len(vals) == 0 {
		return Particle{}, fmt.Errorf("%w: name %q", ErrNotFound, name)
	}
	return vals[0], nil
}

// FromStringList returns every record matching a PDG-style name, in
// canonical order. Lookups are memoized until the table changes.
func (r *Registry) FromStringList(name string) []Particle {
	r.ensureLoaded()
	return r.searches.GetOrCompute("pdg:"+name, func() []Particle {
		return r.fromStringList(name)
	})
}

func (r *Registry) fromStringList(name string) []Particle {
	sign := AnySign
	short := name
	if strings.Contains(name, "~") {
		short = strings.ReplaceAll(name, "~", "")
		sign = AntiparticlesOnly
	}

	// Exact display-name match wins outright; it covers names the
	// grammar cannot express, like "J/psi(1S)".
	if vals := r.FindAll(Search{Sign: sign, Criteria: Criteria{FieldName: Literal(name)}}); len(vals) > 0 {
		return vals
	}
	if vals := r.FindAll(Search{Sign: sign, Criteria: Criteria{FieldPDGName: Literal(short)}}); len(vals) > 0 {
		return vals
	}

	m, ok := parsePDGName(short)
	if !ok {
		log.Debug(log.CatSearch, "name outside grammar", "name", name)
		return nil
	}
	if sign == AntiparticlesOnly {
		m.bar = true
	}
	return r.fromMatch(m)
}

// FromDec returns the single best record for a decay-file name.
func (r *Registry) FromDec(name string) (Particle, error) {
	vals := r.FromDecList(name)
	if len(vals) == 0 {
		return Particle{}, fmt.Errorf("%w: dec name %q", ErrNotFound, name)
	}
	return vals[0], nil
}

// FromDecList returns every record matching a decay-file name, in
// canonical order. Irregular names resolve through the literal table,
// regular ones through the grammar, and as a last resort known
// resonance stems are rewritten to their mass-qualified forms.
func (r *Registry) FromDecList(name string) []Particle {
	r.ensureLoaded()
	return r.searches.GetOrCompute("dec:"+name, func() []Particle {
		return r.fromDecList(name)
	})
}

func (r *Registry) fromDecList(name string) []Particle {
	bare := strings.TrimPrefix(name, "anti-")
	if lit, ok := decLiterals[bare]; ok {
		if bare != name {
			lit += "~"
		}
		return r.fromStringList(lit)
	}

	if m, ok := parseDecName(name); ok {
		if vals := r.fromMatch(m); len(vals) > 0 {
			return vals
		}
	} else if vals := r.fromStringList(name); len(vals) > 0 {
		// Some decay files carry PDG-style names verbatim.
		return vals
	}

	replaced := name
	for _, rp := range decReplacements {
		replaced = strings.ReplaceAll(replaced, rp.old, rp.new)
	}
	if replaced == name {
		return nil
	}
	log.Debug(log.CatSearch, "dec name rewritten", "from", name, "to", replaced)
	return r.fromStringList(replaced)
}

// fromMatch runs the shared candidate search for a structured name
// match.
func (r *Registry) fromMatch(m nameMatch) []Particle {
	sign := AnySign
	switch {
	case m.bar:
		sign = AntiparticlesOnly
	case m.charge == "0":
		sign = ParticlesOnly
	}

	name := m.name
	if m.family != "" {
		name += "(" + m.family + ")"
	}
	if m.state != "" {
		name += "(" + m.state + ")"
	}
	name += m.prime
	if m.star {
		name += "*"
	}
	maxname := name
	if m.mass != "" {
		maxname = name + "(" + m.mass + ")"
	}

	crit := Criteria{}
	if m.state != "" {
		if j, err := strconv.ParseFloat(m.state, 64); err == nil {
			crit[FieldJ] = Literal(j)
		}
	}
	if m.charge != "" {
		if tc, ok := chargeFromToken[m.charge]; ok {
			crit[FieldThreeCharge] = Literal(tc)
		}
	}

	search := func(sub string) []Particle {
		c := Criteria{FieldName: ContainsName(sub)}
		for k, v := range crit {
			c[k] = v
		}
		return r.FindAll(Search{Sign: sign, Criteria: c})
	}

	vals := search(maxname)
	if len(vals) == 0 && maxname != name {
		vals = search(name)
	}
	// A mass qualifier disambiguates leftover multi-matches through
	// the latex name, where the mass always appears.
	if len(vals) > 1 && m.mass != "" {
		kept := vals[:0:0]
		for _, p := range vals {
			if strings.Contains(p.LatexName, m.mass) {
				kept = append(kept, p)
			}
		}
		vals = kept
	}
	return vals
}
