package particle

import (
	"github.com/hepkit/pdg/converters"
	"github.com/hepkit/pdg/pdgid"
)

// evtGenID resolves an EvtGen decay-file name to a PDG identifier.
func evtGenID(name string) (pdgid.PDGID, error) {
	return converters.EvtGen().ToPDGID(name)
}

// EvtGenName returns the particle's EvtGen name, when one exists.
func (p Particle) EvtGenName() (string, error) {
	return converters.EvtGenName(p.ID)
}
