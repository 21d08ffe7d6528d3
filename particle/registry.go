package particle

import (
	"fmt"
	"io"
	"iter"
	"os"
	"sort"

	"github.com/hepkit/pdg/data"
	"github.com/hepkit/pdg/internal/cache"
	"github.com/hepkit/pdg/internal/log"
	"github.com/hepkit/pdg/pdgid"
)

// Registry owns the loaded particle table: an ordered sequence of
// records plus a hash index keyed by identifier. It has two states,
// unloaded and loaded; every query transitions unloaded to loaded by
// an implicit default load. Queries on a loaded table are safe for
// concurrent readers; loads are not, and must be serialized by the
// caller (load once at startup).
type Registry struct {
	records map[pdgid.PDGID]Particle
	table   []Particle // canonical order
	names   []string   // names of loaded sources

	searches *cache.Cache[[]Particle]
}

// New creates an unloaded registry.
func New() *Registry {
	return &Registry{
		searches: cache.New[[]Particle]("name-search", cache.DefaultExpiration, cache.DefaultCleanupInterval),
	}
}

// Loaded reports whether a table has been loaded.
func (r *Registry) Loaded() bool { return r.records != nil }

// TableNames returns the names of the loaded sources, triggering the
// default load if none happened yet.
func (r *Registry) TableNames() []string {
	r.ensureLoaded()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// ensureLoaded performs the implicit default load on first use.
func (r *Registry) ensureLoaded() {
	if r.Loaded() {
		return
	}
	if err := r.LoadDefault(); err != nil {
		// The bundled tables are compiled in; failing to parse them is
		// a programming error, not a runtime condition.
		panic(fmt.Sprintf("loading bundled particle tables: %v", err))
	}
}

// LoadDefault replaces the table with the bundled reference data:
// the particle table plus the nuclei table.
func (r *Registry) LoadDefault() error {
	if err := r.Load(data.Particles(), "particles.csv", false); err != nil {
		return err
	}
	return r.Load(data.Nuclei(), "nuclei.csv", true)
}

// LoadFile loads a CSV table from disk.
func (r *Registry) LoadFile(path string, appendTable bool) error {
	f, err := os.Open(path) //nolint:gosec // G304: path is a user-chosen table file
	if err != nil {
		return fmt.Errorf("opening table %s: %w", path, err)
	}
	defer f.Close()
	return r.Load(f, path, appendTable)
}

// Load parses a CSV table from rd. With appendTable the rows merge
// into the current table, later rows overriding earlier ones for the
// same identifier; as a special case an append onto an unloaded
// registry loads the default table first. Without appendTable the
// table is replaced wholesale. Malformed rows are skipped. A load
// that fails leaves the registry exactly as it was: the table is
// parsed in full before any state is touched.
func (r *Registry) Load(rd io.Reader, name string, appendTable bool) error {
	if appendTable && !r.Loaded() {
		if err := r.LoadDefault(); err != nil {
			return err
		}
	}

	records, skipped, err := parseTable(rd)
	if err != nil {
		return fmt.Errorf("loading table %s: %w", name, err)
	}

	if !appendTable {
		r.records = make(map[pdgid.PDGID]Particle, len(records))
		r.names = nil
	}
	for _, p := range records {
		r.records[p.ID] = p
	}
	r.names = append(r.names, name)
	r.rebuild()
	log.Info(log.CatTable, "table loaded", "name", name, "rows", len(records), "skipped", skipped, "total", len(r.table))
	return nil
}

// rebuild refreshes the canonical-order slice and drops memoized
// searches.
func (r *Registry) rebuild() {
	r.table = make([]Particle, 0, len(r.records))
	for _, p := range r.records {
		r.table = append(r.table, p)
	}
	sort.Slice(r.table, func(i, j int) bool {
		return r.table[i].sortKey() < r.table[j].sortKey()
	})
	r.searches.Flush()
}

// All returns every loaded record in canonical order.
func (r *Registry) All() []Particle {
	r.ensureLoaded()
	out := make([]Particle, len(r.table))
	copy(out, r.table)
	return out
}

// FromPDGID returns the record for an identifier. The identifier is
// validated before the table is consulted: ErrInvalidID and
// ErrNotFound are distinct conditions.
func (r *Registry) FromPDGID(id pdgid.PDGID) (Particle, error) {
	if !id.IsValid() {
		return Particle{}, fmt.Errorf("%w: %d", ErrInvalidID, int(id))
	}
	r.ensureLoaded()
	p, ok := r.records[id]
	if !ok {
		return Particle{}, fmt.Errorf("%w: PDG ID %d", ErrNotFound, int(id))
	}
	return p, nil
}

// Iter lazily yields the records matching a search, in canonical table
// order.
func (r *Registry) Iter(s Search) iter.Seq[Particle] {
	r.ensureLoaded()
	return func(yield func(Particle) bool) {
		for _, p := range r.table {
			if !s.accepts(p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// FindAll materializes the records matching a search, in canonical
// table order.
func (r *Registry) FindAll(s Search) []Particle {
	var out []Particle
	for p := range r.Iter(s) {
		out = append(out, p)
	}
	return out
}

// Find returns the first record matching a search, or ErrNotFound.
func (r *Registry) Find(s Search) (Particle, error) {
	for p := range r.Iter(s) {
		return p, nil
	}
	return Particle{}, ErrNotFound
}

// Invert returns the antiparticle of a record: the record at the
// negated identifier when the inversion policy calls for a distinct
// partner, the record itself otherwise (self-conjugate particles and
// neutral charge-inverted ones). A charge-inverted record whose
// charge is unknown is treated as charged, not neutral.
func (r *Registry) Invert(p Particle) (Particle, error) {
	tc, ok := p.ThreeCharge()
	if p.AntiFlag == InvBarred || (p.AntiFlag == InvChargeInv && (!ok || tc != 0)) {
		return r.FromPDGID(-p.ID)
	}
	return p, nil
}

// FromEvtGenName returns the record for an EvtGen particle name, as
// used in .dec decay files. A failed EvtGen-name mapping surfaces as
// converters.ErrMatchingIDNotFound.
func (r *Registry) FromEvtGenName(name string) (Particle, error) {
	id, err := evtGenID(name)
	if err != nil {
		return Particle{}, err
	}
	return r.FromPDGID(id)
}
