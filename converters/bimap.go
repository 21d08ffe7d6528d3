// Package converters maps PDG identifiers to and from the particle
// numbering schemes of other programs: Pythia, Geant3, Corsika7, and
// the EvtGen and LHCb naming conventions. Each scheme is a bidirectional
// table loaded from bundled CSV data on first use.
package converters

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hepkit/pdg/internal/log"
	"github.com/hepkit/pdg/pdgid"
)

// ErrMatchingIDNotFound reports a value with no counterpart in the
// target scheme. Not every PDG identifier exists in every scheme, and
// vice versa.
var ErrMatchingIDNotFound = errors.New("matching identifier not found")

// BiMap is a bidirectional mapping between PDG identifiers and the
// identifiers of another scheme. When several PDG identifiers share a
// foreign value, the first table row wins in the reverse direction.
type BiMap[T comparable] struct {
	name string
	to   map[pdgid.PDGID]T
	from map[T]pdgid.PDGID
}

// ToPDGID converts a foreign identifier to its PDG counterpart.
func (b *BiMap[T]) ToPDGID(v T) (pdgid.PDGID, error) {
	id, ok := b.from[v]
	if !ok {
		return 0, fmt.Errorf("%w: %s value %v", ErrMatchingIDNotFound, b.name, v)
	}
	return id, nil
}

// FromPDGID converts a PDG identifier to the foreign scheme.
func (b *BiMap[T]) FromPDGID(id pdgid.PDGID) (T, error) {
	v, ok := b.to[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: no %s value for PDG ID %d", ErrMatchingIDNotFound, b.name, int(id))
	}
	return v, nil
}

// Len returns the number of mapped pairs.
func (b *BiMap[T]) Len() int { return len(b.to) }

// newBiMap reads a two-column CSV table, PDG identifier first. Lines
// starting with '#' are comments.
func newBiMap[T comparable](name string, rd io.Reader, parse func(string) (T, error)) (*BiMap[T], error) {
	cr := csv.NewReader(rd)
	cr.Comment = '#'
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s table: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading %s table: no header", name)
	}
	b := &BiMap[T]{
		name: name,
		to:   make(map[pdgid.PDGID]T, len(rows)-1),
		from: make(map[T]pdgid.PDGID, len(rows)-1),
	}
	for _, row := range rows[1:] {
		if len(row) != 2 {
			return nil, fmt.Errorf("reading %s table: want 2 columns, got %d", name, len(row))
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s table: bad PDG ID %q: %w", name, row[0], err)
		}
		v, err := parse(row[1])
		if err != nil {
			return nil, fmt.Errorf("reading %s table: bad value %q: %w", name, row[1], err)
		}
		b.to[pdgid.PDGID(id)] = v
		if _, dup := b.from[v]; !dup {
			b.from[v] = pdgid.PDGID(id)
		}
	}
	log.Debug(log.CatConvert, "conversion table loaded", "name", name, "pairs", b.Len())
	return b, nil
}

func parseInt(s string) (int, error) { return strconv.Atoi(s) }

func parseString(s string) (string, error) { return s, nil }
