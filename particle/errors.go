package particle

import "errors"

// Registry errors
var (
	// ErrNotFound flags a syntactically valid identifier or well-formed
	// name with no corresponding record in the loaded table(s). A normal
	// outcome of search, not a programming error.
	ErrNotFound = errors.New("particle not found in table")

	// ErrInvalidID flags an identifier that does not satisfy any
	// recognized PDG classification. Raised eagerly by identifier
	// lookups before the table is consulted.
	ErrInvalidID = errors.New("invalid PDG ID")
)
