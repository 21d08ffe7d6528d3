package particle

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hepkit/pdg/pdgid"
)

func get(t *testing.T, reg *Registry, id pdgid.PDGID) Particle {
	t.Helper()
	p, err := reg.FromPDGID(id)
	require.NoError(t, err)
	return p
}

func TestParticle_Name(t *testing.T) {
	reg := New()

	tests := []struct {
		id   pdgid.PDGID
		name string
	}{
		{211, "pi+"},
		{-211, "pi-"},
		{111, "pi0"},
		{130, "K(L)0"},
		{311, "K0"},
		{-311, "K~0"},
		{321, "K+"},
		{-321, "K-"},
		{443, "J/psi(1S)"},
		{223, "omega(782)"},
		{9010221, "f(0)(980)"},
		{2212, "p"},
		{-2212, "p~"},
		{2112, "n"},
		{-2112, "n~"},
		{3122, "Lambda"},
		{-3122, "Lambda~"},
		{3222, "Sigma+"},
		{3212, "Sigma0"},
		{-3222, "Sigma~-"},
		{2224, "Delta(1232)++"},
		{-2224, "Delta(1232)~--"},
		{4122, "Lambda(c)+"},
		{5122, "Lambda(b)0"},
		{11, "e-"},
		{-11, "e+"},
		{12, "nu(e)"},
		{23, "Z0"},
		{25, "H0"},
		{1000010020, "H2"},
		{-1000010020, "H2~"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, get(t, reg, tt.id).Name())
		})
	}
}

func TestParticle_ChargeDelegation(t *testing.T) {
	reg := New()

	q, ok := get(t, reg, 2).Charge()
	require.True(t, ok)
	assert.InDelta(t, 2.0/3, q, 1e-12)

	// Nuclei take the charge from the identifier, not the table code.
	tc, ok := get(t, reg, 1000020040).ThreeCharge()
	require.True(t, ok)
	assert.Equal(t, 6, tc)
}

func TestParticle_Lifetime(t *testing.T) {
	reg := New()

	tau, ok := get(t, reg, 211).Lifetime()
	require.True(t, ok)
	assert.InDelta(t, 26.03, tau, 0.05, "charged pion lifetime in ns")

	ctau, ok := get(t, reg, 211).Ctau()
	require.True(t, ok)
	assert.InDelta(t, 7804, ctau, 20, "charged pion ctau in mm")

	tau, ok = get(t, reg, 11).Lifetime()
	require.True(t, ok)
	assert.True(t, math.IsInf(tau, 1), "stable particles live forever")

	_, ok = get(t, reg, 311).Lifetime()
	assert.False(t, ok, "no width measurement, no lifetime")
}

func TestParticle_SpinType(t *testing.T) {
	reg := New()

	assert.Equal(t, SpinTypePseudoScalar, get(t, reg, 211).SpinTypeOf())
	assert.Equal(t, SpinTypeVector, get(t, reg, 443).SpinTypeOf())
	assert.Equal(t, SpinTypeScalar, get(t, reg, 9010221).SpinTypeOf())
	assert.Equal(t, SpinTypeTensor, get(t, reg, 225).SpinTypeOf())
	assert.Equal(t, SpinTypeAxial, get(t, reg, 20443).SpinTypeOf())
	assert.Equal(t, SpinTypeNonDefined, get(t, reg, 2212).SpinTypeOf(), "fermions have no spin type")
}

func TestParticle_SelfConjugation(t *testing.T) {
	reg := New()

	assert.True(t, get(t, reg, 111).IsSelfConjugate())
	assert.False(t, get(t, reg, 211).IsSelfConjugate())
	assert.True(t, get(t, reg, -3122).IsNameBarred())
	assert.False(t, get(t, reg, -211).IsNameBarred())
}

func TestParticle_IsUnflavouredMeson(t *testing.T) {
	reg := New()

	assert.True(t, get(t, reg, 111).IsUnflavouredMeson())
	assert.True(t, get(t, reg, 443).IsUnflavouredMeson(), "quarkonia count")
	assert.True(t, get(t, reg, 333).IsUnflavouredMeson(), "the phi has net strangeness zero")
	assert.False(t, get(t, reg, 321).IsUnflavouredMeson())
	assert.False(t, get(t, reg, 310).IsUnflavouredMeson())
	assert.False(t, get(t, reg, 411).IsUnflavouredMeson())
	assert.False(t, get(t, reg, 2212).IsUnflavouredMeson())
}

func TestParticle_Describe(t *testing.T) {
	reg := New()

	out := get(t, reg, 211).Describe()
	assert.Contains(t, out, "Name: pi+")
	assert.Contains(t, out, "ID: 211")
	assert.Contains(t, out, "Lifetime")
	assert.Contains(t, out, "Quarks: uD")

	out = get(t, reg, 443).Describe()
	assert.Contains(t, out, "Name: J/psi(1S)")
	assert.Contains(t, out, "Width")
	assert.Contains(t, out, "SpinType: Vector")
}

func TestParticle_String(t *testing.T) {
	reg := New()
	s := get(t, reg, 211).String()
	assert.True(t, strings.HasPrefix(s, `<Particle: name="pi+"`), s)
}
