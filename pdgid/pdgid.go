// Package pdgid decodes Particle Data Group particle identifiers.
//
// A PDG ID is a signed integer of the form +/- N Nr Nl Nq1 Nq2 Nq3 Nj
// read in base 10, with optional extra digits beyond the 7th for
// non-standard particles such as nuclei and Q-balls. The sign selects
// particle versus antiparticle; the magnitude alone determines the
// classification. Everything in this package is pure digit arithmetic:
// no I/O, no shared state.
//
// Property extractors return a (value, ok) pair. ok=false means the
// property is unknown or not applicable for the identifier; callers
// must never treat it as zero.
package pdgid

import "strconv"

// PDGID is a signed particle identifier following the PDG numbering
// scheme.
type PDGID int

func (p PDGID) String() string {
	return strconv.Itoa(int(p))
}

// Abs returns the identifier magnitude.
func (p PDGID) Abs() PDGID {
	if p < 0 {
		return -p
	}
	return p
}
