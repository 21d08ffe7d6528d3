package converters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hepkit/pdg/pdgid"
)

func TestPythiaRoundTrip(t *testing.T) {
	b := Pythia()
	require.Positive(t, b.Len())

	v, err := b.FromPDGID(211)
	require.NoError(t, err)
	assert.Equal(t, 211, v, "pythia uses PDG identifiers directly")

	id, err := b.ToPDGID(v)
	require.NoError(t, err)
	assert.Equal(t, pdgid.PDGID(211), id)
}

func TestGeant3(t *testing.T) {
	tests := []struct {
		id   pdgid.PDGID
		code int
	}{
		{22, 1},    // gamma
		{-11, 2},   // positron
		{11, 3},    // electron
		{13, 6},    // muon
		{2212, 14}, // proton
	}
	for _, tt := range tests {
		v, err := Geant3ID(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.code, v)

		id, err := Geant3().ToPDGID(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.id, id)
	}
}

func TestCorsika7Nuclei(t *testing.T) {
	v, err := Corsika7ID(1000010020)
	require.NoError(t, err)
	assert.Equal(t, 201, v, "nuclei encode as A*100+Z")
}

func TestEvtGenNames(t *testing.T) {
	name, err := EvtGenName(-511)
	require.NoError(t, err)
	assert.Equal(t, "anti-B0", name)

	id, err := EvtGen().ToPDGID("K_L0")
	require.NoError(t, err)
	assert.Equal(t, pdgid.PDGID(130), id)

	id, err = EvtGen().ToPDGID("deuteron")
	require.NoError(t, err)
	assert.Equal(t, pdgid.PDGID(1000010020), id)
}

func TestLHCbNames(t *testing.T) {
	name, err := LHCbName(-313)
	require.NoError(t, err)
	assert.Equal(t, "K*(892)~0", name)

	id, err := LHCb().ToPDGID("K*(892)+")
	require.NoError(t, err)
	assert.Equal(t, pdgid.PDGID(323), id)
}

func TestMatchingIDNotFound(t *testing.T) {
	_, err := Geant3ID(9000111)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMatchingIDNotFound)

	_, err = EvtGen().ToPDGID("no-such-particle")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMatchingIDNotFound)
}

func TestNewBiMapReverseDuplicates(t *testing.T) {
	const table = `PDGID,CODE
2112,13
-2112,13
`
	b, err := newBiMap("test", strings.NewReader(table), parseInt)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())

	id, err := b.ToPDGID(13)
	require.NoError(t, err)
	assert.Equal(t, pdgid.PDGID(2112), id, "the first row wins in the reverse direction")
}

func TestNewBiMapErrors(t *testing.T) {
	_, err := newBiMap("test", strings.NewReader(""), parseInt)
	require.Error(t, err)

	_, err = newBiMap("test", strings.NewReader("PDGID,CODE\nxyz,1\n"), parseInt)
	require.Error(t, err)

	_, err = newBiMap("test", strings.NewReader("PDGID,CODE\n11,abc\n"), parseInt)
	require.Error(t, err)
}
