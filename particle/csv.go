package particle

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hepkit/pdg/internal/log"
	"github.com/hepkit/pdg/pdgid"
)

// Reference tables are CSV files with a header row and '#' comment
// lines. A malformed row is a local failure: it is skipped, logged,
// and the load continues, because reference data is occasionally
// imperfect.

// tableColumns lists the mandatory header fields of a particle table.
var tableColumns = []string{
	"ID", "Mass", "MassUpper", "MassLower",
	"Width", "WidthUpper", "WidthLower",
	"I", "G", "P", "C", "Anti", "Charge", "Rank", "Status",
	"Name", "Quarks", "Latex",
}

// parseTable reads particle records from a CSV table. It returns the
// parsed records and the number of rows skipped as malformed.
func parseTable(r io.Reader) ([]Particle, int, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading table header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, want := range tableColumns {
		if _, ok := col[want]; !ok {
			return nil, 0, fmt.Errorf("table header missing column %q", want)
		}
	}

	var (
		records []Particle
		skipped int
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			log.Warn(log.CatTable, "skipping unreadable row", "error", err)
			continue
		}
		p, err := parseRow(row, col)
		if err != nil {
			skipped++
			log.Warn(log.CatTable, "skipping malformed row", "error", err)
			continue
		}
		records = append(records, p)
	}
	return records, skipped, nil
}

func parseRow(row []string, col map[string]int) (Particle, error) {
	field := func(name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	id, err := strconv.Atoi(field("ID"))
	if err != nil {
		return Particle{}, fmt.Errorf("bad ID %q: %w", field("ID"), err)
	}

	mass, err := parseMeasurement(field("Mass"))
	if err != nil {
		return Particle{}, err
	}
	massUpper, err := parseMeasurement(field("MassUpper"))
	if err != nil {
		return Particle{}, err
	}
	massLower, err := parseMeasurement(field("MassLower"))
	if err != nil {
		return Particle{}, err
	}
	width, err := parseMeasurement(field("Width"))
	if err != nil {
		return Particle{}, err
	}
	widthUpper, err := parseMeasurement(field("WidthUpper"))
	if err != nil {
		return Particle{}, err
	}
	widthLower, err := parseMeasurement(field("WidthLower"))
	if err != nil {
		return Particle{}, err
	}

	g, err := strconv.Atoi(field("G"))
	if err != nil {
		return Particle{}, fmt.Errorf("bad G %q: %w", field("G"), err)
	}
	pp, err := strconv.Atoi(field("P"))
	if err != nil {
		return Particle{}, fmt.Errorf("bad P %q: %w", field("P"), err)
	}
	c, err := strconv.Atoi(field("C"))
	if err != nil {
		return Particle{}, fmt.Errorf("bad C %q: %w", field("C"), err)
	}
	anti, err := strconv.Atoi(field("Anti"))
	if err != nil {
		return Particle{}, fmt.Errorf("bad Anti %q: %w", field("Anti"), err)
	}
	charge, err := strconv.Atoi(field("Charge"))
	if err != nil {
		return Particle{}, fmt.Errorf("bad Charge %q: %w", field("Charge"), err)
	}
	rank, err := strconv.Atoi(field("Rank"))
	if err != nil {
		return Particle{}, fmt.Errorf("bad Rank %q: %w", field("Rank"), err)
	}
	status, err := strconv.Atoi(field("Status"))
	if err != nil {
		return Particle{}, fmt.Errorf("bad Status %q: %w", field("Status"), err)
	}

	return Particle{
		ID:         pdgid.PDGID(id),
		PDGName:    field("Name"),
		Mass:       mass,
		MassUpper:  massUpper,
		MassLower:  massLower,
		Width:      width,
		WidthUpper: widthUpper,
		WidthLower: widthLower,
		ChargeCode: Charge(charge),
		Isospin:    parseIsospin(field("I")),
		G:          parseParity(g),
		P:          parseParity(pp),
		C:          parseParity(c),
		AntiFlag:   Inv(anti),
		Rank:       rank,
		Status:     Status(status),
		Quarks:     field("Quarks"),
		LatexName:  field("Latex"),
	}, nil
}

// parseMeasurement converts a numeric table field. Negative values
// mark measurements absent from the reference data.
func parseMeasurement(s string) (*float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("bad measurement %q: %w", s, err)
	}
	if v < 0 {
		return nil, nil
	}
	return &v, nil
}

// parseIsospin converts the isospin column. Anything outside the
// recognized spellings means "unknown".
func parseIsospin(s string) *float64 {
	var v float64
	switch s {
	case "0":
		v = 0
	case "1/2":
		v = 0.5
	case "1":
		v = 1
	case "3/2":
		v = 1.5
	default:
		return nil
	}
	return &v
}
