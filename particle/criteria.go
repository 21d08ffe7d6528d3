package particle

import "strings"

// Search criteria for Registry.FindAll and Registry.Iter. Attribute
// constraints are a tagged variant: a literal compared for equality,
// or a predicate applied to the attribute value. Constraints are
// ANDed; the first failing one rejects the candidate.

// Sign restricts a search to particles or antiparticles by identifier
// sign.
type Sign int

const (
	AnySign Sign = iota
	ParticlesOnly
	AntiparticlesOnly
)

// Field names a Particle attribute usable in a search constraint.
type Field int

const (
	FieldName Field = iota // computed display name
	FieldPDGName
	FieldThreeCharge
	FieldJ
	FieldMass
	FieldQuarks
	FieldLatexName
	FieldStatus
)

// attrOf extracts the attribute value for a field. ok=false flags an
// attribute undefined for this record; no constraint matches it.
func attrOf(p Particle, f Field) (any, bool) {
	switch f {
	case FieldName:
		return p.Name(), true
	case FieldPDGName:
		return p.PDGName, true
	case FieldThreeCharge:
		tc, ok := p.ThreeCharge()
		return float64(tc), ok
	case FieldJ:
		j, ok := p.J()
		return j, ok
	case FieldMass:
		if p.Mass == nil {
			return nil, false
		}
		return *p.Mass, true
	case FieldQuarks:
		return p.Quarks, true
	case FieldLatexName:
		return p.LatexName, true
	case FieldStatus:
		return float64(p.Status), true
	}
	return nil, false
}

// Constraint restricts one attribute of a candidate record.
type Constraint struct {
	lit  any
	pred func(any) bool
}

// Literal builds an equality constraint. Numeric values compare as
// float64 so that exact int/float spellings are interchangeable.
func Literal(v any) Constraint {
	return Constraint{lit: normalize(v)}
}

// Predicate builds a constraint from a function applied to the
// attribute value. A panic inside the predicate counts as "does not
// match": probing properties undefined for some records is expected.
func Predicate(fn func(any) bool) Constraint {
	return Constraint{pred: fn}
}

// ContainsName is a convenience predicate constraint matching string
// attributes by substring.
func ContainsName(sub string) Constraint {
	return Predicate(func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		return strings.Contains(s, sub)
	})
}

// matches evaluates the constraint on an attribute value.
func (c Constraint) matches(v any, ok bool) (result bool) {
	if !ok {
		return false
	}
	if c.pred != nil {
		defer func() {
			if recover() != nil {
				result = false
			}
		}()
		return c.pred(v)
	}
	return normalize(v) == c.lit
}

// normalize widens numeric values to float64 for equality comparison.
func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case Charge:
		return float64(n)
	case Status:
		return float64(n)
	case float64:
		return n
	}
	return v
}

// Criteria maps fields to their constraints.
type Criteria map[Field]Constraint

// Search bundles the three filter layers of a table query: an optional
// identifier-sign restriction, an optional record predicate, and named
// attribute constraints.
type Search struct {
	Sign Sign

	// Filter receives each candidate record. A panic inside the filter,
	// like a predicate panic, rejects only that candidate.
	Filter func(Particle) bool

	Criteria Criteria
}

// accepts evaluates the full search against one candidate.
func (s Search) accepts(p Particle) bool {
	switch s.Sign {
	case ParticlesOnly:
		if p.ID < 0 {
			return false
		}
	case AntiparticlesOnly:
		if p.ID > 0 {
			return false
		}
	}
	if s.Filter != nil && !safeFilter(s.Filter, p) {
		return false
	}
	for field, c := range s.Criteria {
		v, ok := attrOf(p, field)
		if !c.matches(v, ok) {
			return false
		}
	}
	return true
}

func safeFilter(fn func(Particle) bool, p Particle) (result bool) {
	defer func() {
		if recover() != nil {
			result = false
		}
	}()
	return fn(p)
}
