package particle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralNormalization(t *testing.T) {
	tests := []struct {
		desc string
		lit  any
		attr any
		want bool
	}{
		{"int against float attribute", 3, float64(3), true},
		{"charge code against float attribute", Charge(3), float64(3), true},
		{"status code against float attribute", StatusCommon, float64(0), true},
		{"float against float attribute", 0.5, 0.5, true},
		{"string equality", "pi", "pi", true},
		{"string mismatch", "pi", "K", false},
		{"numeric mismatch", 3, float64(-3), false},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			c := Literal(tt.lit)
			assert.Equal(t, tt.want, c.matches(tt.attr, true))
		})
	}
}

func TestPredicatePanicIsNonMatch(t *testing.T) {
	c := Predicate(func(v any) bool {
		return v.(string) == "pi" // panics on non-string attributes
	})
	assert.True(t, c.matches("pi", true))
	assert.False(t, c.matches(float64(3), true), "a panicking predicate rejects the candidate")
}

func TestContainsName(t *testing.T) {
	c := ContainsName("psi")
	assert.True(t, c.matches("J/psi(1S)", true))
	assert.False(t, c.matches("Upsilon(1S)", false), "undefined attribute never matches")
	assert.False(t, c.matches(443, true), "non-string attribute never matches")
}

func TestUndefinedAttributeNeverMatches(t *testing.T) {
	// A record without a tabulated mass matches no mass constraint,
	// not even an always-true predicate.
	massless := `ID,Mass,MassUpper,MassLower,Width,WidthUpper,WidthLower,I,G,P,C,Anti,Charge,Rank,Status,Name,Quarks,Latex
211,-1,-1,-1,-1,-1,-1,1,-1,-1,5,2,3,0,0,pi,uD,\pi^{+}
`
	reg := New()
	require.NoError(t, reg.Load(strings.NewReader(massless), "massless.csv", false))

	found := reg.FindAll(Search{Criteria: Criteria{
		FieldMass: Predicate(func(any) bool { return true }),
	}})
	assert.Empty(t, found)

	// Nuclei carry no spin quantum number.
	full := New()
	deuteron := get(t, full, 1000010020)
	assert.False(t, Search{Criteria: Criteria{
		FieldJ: Predicate(func(any) bool { return true }),
	}}.accepts(deuteron))
}

func TestSearchSign(t *testing.T) {
	reg := New()

	s := Search{Sign: AntiparticlesOnly, Criteria: Criteria{FieldPDGName: Literal("pi")}}
	for _, p := range reg.FindAll(s) {
		assert.Negative(t, int(p.ID))
	}

	s.Sign = ParticlesOnly
	for _, p := range reg.FindAll(s) {
		assert.Positive(t, int(p.ID))
	}
}

func TestSearchFilterPanicRejectsCandidate(t *testing.T) {
	reg := New()

	// Dereferencing Width panics on records without a measured width,
	// such as the quarks; those candidates are dropped instead of
	// aborting the search.
	found := reg.FindAll(Search{Filter: func(p Particle) bool {
		return *p.Width > 2000
	}})
	require.NotEmpty(t, found)
	for _, p := range found {
		require.NotNil(t, p.Width)
		assert.Greater(t, *p.Width, 2000.0)
	}
}
