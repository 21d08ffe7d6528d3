package pdgid

// Location indexes a digit in the PDG numbering scheme, whose format is
// +/- N Nr Nl Nq1 Nq2 Nq3 Nj read in base 10. Position 1 is the
// right-most digit.
type Location int

const (
	Nj Location = iota + 1
	Nq3
	Nq2
	Nq1
	Nl
	Nr
	N
	N8
	N9
	N10
)

// digit returns the decimal digit of abs(id) at the given location.
// Locations past the end of the number yield 0.
func digit(id PDGID, loc Location) int {
	n := abs(id)
	for i := Location(1); i < loc; i++ {
		n /= 10
	}
	if n == 0 {
		return 0
	}
	return n % 10
}

// extraBits returns everything beyond the 7th digit, i.e. anything
// outside the standard PDG numbering scheme.
func extraBits(id PDGID) int {
	return abs(id) / 10000000
}

// fundamentalID returns the quantum-number part of the identifier when
// digits Nq1 and Nq2 are zero, which marks a fundamental particle.
// Identifiers up to 100 are returned as-is (internal generator codes
// occupy 81-100). Zero means "not fundamental".
func fundamentalID(id PDGID) int {
	if extraBits(id) > 0 {
		return 0
	}
	if digit(id, Nq2) == 0 && digit(id, Nq1) == 0 {
		return abs(id) % 10000
	}
	if abs(id) <= 100 {
		return abs(id)
	}
	return 0
}

func abs(id PDGID) int {
	if id < 0 {
		return -int(id)
	}
	return int(id)
}
