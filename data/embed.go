// Package data bundles the reference tables compiled into the module:
// the particle and nuclei tables plus the identifier conversion tables
// for other particle-physics programs.
package data

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed particles.csv
var particlesCSV []byte

//go:embed nuclei.csv
var nucleiCSV []byte

//go:embed pdgid_to_pythiaid.csv
var pythiaCSV []byte

//go:embed pdgid_to_geant3id.csv
var geant3CSV []byte

//go:embed pdgid_to_corsika7id.csv
var corsika7CSV []byte

//go:embed pdgid_to_evtgenname.csv
var evtGenCSV []byte

//go:embed pdgid_to_lhcbname.csv
var lhcbCSV []byte

// Particles returns the bundled particle table.
func Particles() io.Reader { return bytes.NewReader(particlesCSV) }

// Nuclei returns the bundled nuclei table.
func Nuclei() io.Reader { return bytes.NewReader(nucleiCSV) }

// PythiaTable returns the PDG-to-Pythia identifier table.
func PythiaTable() io.Reader { return bytes.NewReader(pythiaCSV) }

// Geant3Table returns the PDG-to-Geant3 identifier table.
func Geant3Table() io.Reader { return bytes.NewReader(geant3CSV) }

// Corsika7Table returns the PDG-to-Corsika7 identifier table.
func Corsika7Table() io.Reader { return bytes.NewReader(corsika7CSV) }

// EvtGenTable returns the PDG-to-EvtGen name table.
func EvtGenTable() io.Reader { return bytes.NewReader(evtGenCSV) }

// LHCbTable returns the PDG-to-LHCb name table.
func LHCbTable() io.Reader { return bytes.NewReader(lhcbCSV) }
