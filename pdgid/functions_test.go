package pdgid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		id    PDGID
		valid bool
	}{
		{"charged pion", 211, true},
		{"negative muon", 13, true},
		{"antimuon", -13, true},
		{"proton", 2212, true},
		{"J/psi", 443, true},
		{"KL", 130, true},
		{"deuteron", 1000010020, true},
		{"antideuteron", -1000010020, true},
		{"neutralino", 1000022, true},
		{"gluino R-hadron", 1000993, true},
		{"pentaquark", 9221132, true},
		{"generator code", 998, true},
		{"zero", 0, false},
		{"empty quark digits", 1000000, false},
		{"antiparticle of self-conjugate meson", -111, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.id.IsValid())
		})
	}
}

func TestDigit(t *testing.T) {
	assert.Equal(t, 7, digit(7, Nj))
	assert.Equal(t, 0, digit(7, Nq3), "positions past the digit length read as zero")
	assert.Equal(t, 1, digit(211, Nj))
	assert.Equal(t, 2, digit(211, Nq2))
	assert.Equal(t, 0, digit(211, Nq1))
	assert.Equal(t, 2, digit(-211, Nq2), "the sign is ignored")
	assert.Equal(t, 1, digit(1000010020, N10))
}

func TestDigitPastLengthIsZero(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(-9999999, 9999999).Draw(rt, "id")
		id := PDGID(n)
		for loc := N8; loc <= N10; loc++ {
			assert.Zero(rt, digit(id, loc), "%d has no digit at position %d", n, loc)
		}
	})
}

func TestClassPredicates(t *testing.T) {
	assert.True(t, PDGID(5).IsQuark())
	assert.False(t, PDGID(9).IsQuark())
	assert.True(t, PDGID(-13).IsLepton())
	assert.False(t, PDGID(22).IsLepton())

	assert.True(t, PDGID(211).IsMeson())
	assert.True(t, PDGID(130).IsMeson())
	assert.True(t, PDGID(310).IsMeson())
	assert.False(t, PDGID(2212).IsMeson())

	assert.True(t, PDGID(2212).IsBaryon())
	assert.True(t, PDGID(-3122).IsBaryon())
	assert.False(t, PDGID(443).IsBaryon())

	assert.True(t, PDGID(211).IsHadron())
	assert.True(t, PDGID(2112).IsHadron())
	assert.False(t, PDGID(11).IsHadron())

	assert.True(t, PDGID(2101).IsDiquark())
	assert.False(t, PDGID(211).IsDiquark())

	assert.True(t, PDGID(1000010020).IsNucleus())
	assert.True(t, PDGID(2212).IsNucleus(), "proton counts as an A=1 nucleus")
	assert.False(t, PDGID(3122).IsNucleus())

	// The proton and neutron under their 10-digit nucleus codes stay
	// baryons and hadrons despite the extra bits.
	assert.True(t, PDGID(1000010010).IsNucleus())
	assert.True(t, PDGID(1000010010).IsBaryon())
	assert.True(t, PDGID(1000010010).IsHadron())
	assert.True(t, PDGID(1000000010).IsBaryon())

	assert.True(t, PDGID(1000022).IsSUSY())
	assert.True(t, PDGID(1000993).IsRhadron())
	assert.True(t, PDGID(9221132).IsPentaquark())
	assert.True(t, PDGID(998).IsGeneratorSpecific())
	assert.True(t, PDGID(51).IsSpecialParticle())
}

func TestThreeCharge(t *testing.T) {
	tests := []struct {
		name   string
		id     PDGID
		charge int
	}{
		{"down quark", 1, -1},
		{"up quark", 2, 2},
		{"electron", 11, -3},
		{"positron", -11, 3},
		{"photon", 22, 0},
		{"W boson", 24, 3},
		{"charged pion", 211, 3},
		{"negative pion", -211, -3},
		{"neutral pion", 111, 0},
		{"charged kaon", 321, 3},
		{"KL", 130, 0},
		{"proton", 2212, 3},
		{"antiproton", -2212, -3},
		{"Delta++", 2224, 6},
		{"Omega-", 3334, -3},
		{"deuteron", 1000010020, 3},
		{"alpha", 1000020040, 6},
		{"down diquark", 1103, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, ok := tt.id.ThreeCharge()
			require.True(t, ok)
			assert.Equal(t, tt.charge, tc)
		})
	}

	_, ok := PDGID(0).ThreeCharge()
	assert.False(t, ok, "invalid identifiers have no charge")
}

func TestCharge(t *testing.T) {
	q, ok := PDGID(2).Charge()
	require.True(t, ok)
	assert.InDelta(t, 2.0/3, q, 1e-12)

	q, ok = PDGID(-211).Charge()
	require.True(t, ok)
	assert.Equal(t, -1.0, q)
}

func TestSpinQuantumNumbers(t *testing.T) {
	j := func(id PDGID) float64 {
		v, ok := id.J()
		require.True(t, ok, "J of %d", int(id))
		return v
	}

	assert.Equal(t, 0.5, j(11), "leptons are spin 1/2")
	assert.Equal(t, 0.5, j(2), "quarks are spin 1/2")
	assert.Equal(t, 1.0, j(22), "the photon is spin 1")
	assert.Equal(t, 0.0, j(211))
	assert.Equal(t, 1.0, j(443))
	assert.Equal(t, 1.5, j(2224))
	assert.Equal(t, 0.5, j(2212), "the proton nucleus code keeps spin 1/2")
	assert.Equal(t, 0.0, j(130), "KL spin is special-cased")
	assert.Equal(t, 0.0, j(310), "KS spin is special-cased")

	_, ok := PDGID(1000010020).J()
	assert.False(t, ok, "nuclei beyond A=1 carry no spin in the code")
}

func TestSAndL(t *testing.T) {
	s, ok := PDGID(211).S()
	require.True(t, ok)
	assert.Equal(t, 0, s)

	s, ok = PDGID(443).S()
	require.True(t, ok)
	assert.Equal(t, 1, s)

	l, ok := PDGID(211).L()
	require.True(t, ok)
	assert.Equal(t, 0, l)

	l, ok = PDGID(10441).L()
	require.True(t, ok)
	assert.Equal(t, 1, l, "chi_c0 is a P-wave state")

	_, ok = PDGID(2212).S()
	assert.False(t, ok, "S is meson-only")
	_, ok = PDGID(2212).L()
	assert.False(t, ok, "L is meson-only")
}

func TestNucleusAZ(t *testing.T) {
	tests := []struct {
		name string
		id   PDGID
		a, z int
	}{
		{"proton", 2212, 1, 1},
		{"antiproton", -2212, 1, -1},
		{"neutron", 2112, 1, 0},
		{"hydrogen nucleus code", 1000010010, 1, 1},
		{"neutron nucleus code", 1000000010, 1, 0},
		{"deuteron", 1000010020, 2, 1},
		{"triton", 1000010030, 3, 1},
		{"He4", 1000020040, 4, 2},
		{"antideuteron", -1000010020, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := tt.id.A()
			require.True(t, ok)
			assert.Equal(t, tt.a, a)
			z, ok := tt.id.Z()
			require.True(t, ok)
			assert.Equal(t, tt.z, z)
		})
	}

	_, ok := PDGID(211).A()
	assert.False(t, ok)
}

func TestQuarkContent(t *testing.T) {
	pi := PDGID(211)
	assert.True(t, pi.HasDown())
	assert.True(t, pi.HasUp())
	assert.False(t, pi.HasStrange())

	jpsi := PDGID(443)
	assert.True(t, jpsi.HasCharm())
	assert.False(t, jpsi.HasBottom())

	proton := PDGID(2212)
	assert.True(t, proton.HasUp())
	assert.True(t, proton.HasDown())

	assert.False(t, PDGID(11).HasDown(), "fundamental particles have no quark content")
	assert.True(t, PDGID(1000010020).HasUp(), "nuclei contain up and down quarks")
	assert.False(t, PDGID(1000010020).HasStrange(), "no hyperons in a plain deuteron")
}

func TestHasFundamentalAnti(t *testing.T) {
	assert.True(t, PDGID(11).HasFundamentalAnti())
	assert.True(t, PDGID(24).HasFundamentalAnti())
	assert.False(t, PDGID(22).HasFundamentalAnti())
	assert.False(t, PDGID(23).HasFundamentalAnti())
	assert.False(t, PDGID(211).HasFundamentalAnti(), "composite particles are out of scope")
}

func TestThreeChargeAntisymmetry(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 10000000).Draw(rt, "id")
		id := PDGID(n)
		tc, ok := id.ThreeCharge()
		anti, antiOK := (-id).ThreeCharge()
		if ok && antiOK {
			assert.Equal(rt, -tc, anti, "charge must flip sign under conjugation for %d", n)
		}
	})
}

func TestMesonBaryonDisjoint(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(-10000000, 10000000).Draw(rt, "id")
		id := PDGID(n)
		if id.IsMeson() {
			assert.False(rt, id.IsBaryon(), "%d decodes as both meson and baryon", n)
		}
	})
}

func TestJSpinConsistency(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 10000).Draw(rt, "id")
		id := PDGID(n)
		js, ok := id.JSpin()
		if !ok {
			return
		}
		j, jok := id.J()
		require.True(rt, jok)
		assert.Equal(rt, float64(js-1)/2, j)
	})
}
