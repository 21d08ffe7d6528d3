package converters

import (
	"fmt"
	"sync"

	"github.com/hepkit/pdg/data"
	"github.com/hepkit/pdg/pdgid"
)

// Bundled tables load once, on first use. The CSV data is compiled in,
// so a parse failure is a programming error and panics.

var (
	pythiaOnce  sync.Once
	pythiaMap   *BiMap[int]
	geant3Once  sync.Once
	geant3Map   *BiMap[int]
	corsikaOnce sync.Once
	corsikaMap  *BiMap[int]
	evtGenOnce  sync.Once
	evtGenMap   *BiMap[string]
	lhcbOnce    sync.Once
	lhcbMap     *BiMap[string]
)

func mustBiMap[T comparable](b *BiMap[T], err error) *BiMap[T] {
	if err != nil {
		panic(fmt.Sprintf("loading bundled conversion table: %v", err))
	}
	return b
}

// Pythia returns the mapping to Pythia particle codes.
func Pythia() *BiMap[int] {
	pythiaOnce.Do(func() {
		pythiaMap = mustBiMap(newBiMap("pythia", data.PythiaTable(), parseInt))
	})
	return pythiaMap
}

// Geant3 returns the mapping to Geant3 tracking codes.
func Geant3() *BiMap[int] {
	geant3Once.Do(func() {
		geant3Map = mustBiMap(newBiMap("geant3", data.Geant3Table(), parseInt))
	})
	return geant3Map
}

// Corsika7 returns the mapping to Corsika7 particle codes.
func Corsika7() *BiMap[int] {
	corsikaOnce.Do(func() {
		corsikaMap = mustBiMap(newBiMap("corsika7", data.Corsika7Table(), parseInt))
	})
	return corsikaMap
}

// EvtGen returns the mapping to EvtGen particle names.
func EvtGen() *BiMap[string] {
	evtGenOnce.Do(func() {
		evtGenMap = mustBiMap(newBiMap("evtgen", data.EvtGenTable(), parseString))
	})
	return evtGenMap
}

// LHCb returns the mapping to LHCb particle names.
func LHCb() *BiMap[string] {
	lhcbOnce.Do(func() {
		lhcbMap = mustBiMap(newBiMap("lhcb", data.LHCbTable(), parseString))
	})
	return lhcbMap
}

// PythiaID converts a PDG identifier to a Pythia code.
func PythiaID(id pdgid.PDGID) (int, error) { return Pythia().FromPDGID(id) }

// Geant3ID converts a PDG identifier to a Geant3 code.
func Geant3ID(id pdgid.PDGID) (int, error) { return Geant3().FromPDGID(id) }

// Corsika7ID converts a PDG identifier to a Corsika7 code.
func Corsika7ID(id pdgid.PDGID) (int, error) { return Corsika7().FromPDGID(id) }

// EvtGenName converts a PDG identifier to an EvtGen name.
func EvtGenName(id pdgid.PDGID) (string, error) { return EvtGen().FromPDGID(id) }

// LHCbName converts a PDG identifier to an LHCb name.
func LHCbName(id pdgid.PDGID) (string, error) { return LHCb().FromPDGID(id) }
