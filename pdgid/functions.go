package pdgid

// Classification predicates and property extractors, following the
// HepPID/HepPDT conventions for the PDG numbering scheme.

// IsValid reports whether the identifier matches at least one
// recognized classification. The proton and neutron are valid both as
// baryons and, under their 10-digit codes, as nuclei.
func (p PDGID) IsValid() bool {
	if extraBits(p) > 0 {
		return p.IsNucleus() || p.IsQball()
	}
	if fundamentalID(p) > 0 {
		return true
	}
	switch {
	case p.IsMeson(), p.IsBaryon(), p.IsDiquark(), p.IsPentaquark():
		return true
	case p.IsRhadron(), p.IsDyon(), p.IsSUSY():
		return true
	case p.IsTechnicolor(), p.IsCompositeQuarkOrLepton():
		return true
	case p.IsGeneratorSpecific(), p.IsSpecialParticle():
		return true
	}
	return false
}

// IsQuark reports a fundamental quark, including 4th-generation codes.
func (p PDGID) IsQuark() bool {
	fid := fundamentalID(p)
	return fid >= 1 && fid <= 8
}

// IsLepton reports a fundamental lepton.
func (p PDGID) IsLepton() bool {
	if extraBits(p) > 0 {
		return false
	}
	fid := fundamentalID(p)
	return fid >= 11 && fid <= 18
}

// IsHadron reports a meson, baryon or pentaquark. The proton and
// neutron under their nucleus codes count as hadrons.
func (p PDGID) IsHadron() bool {
	// Nucleus codes for p/n carry extra bits, so check them first.
	if a := abs(p); a == 1000000010 || a == 1000010010 {
		return true
	}
	if extraBits(p) > 0 {
		return false
	}
	return p.IsMeson() || p.IsBaryon() || p.IsPentaquark()
}

// IsMeson reports a meson.
func (p PDGID) IsMeson() bool {
	if extraBits(p) > 0 {
		return false
	}
	a := abs(p)
	if a <= 100 {
		return false
	}
	if fid := fundamentalID(p); fid > 0 && fid <= 100 {
		return false
	}
	switch a {
	case 130, 210, 310, 150, 350, 510, 530:
		return true
	}
	if p == 110 || p == 990 || p == 9990 {
		// Reggeon, pomeron, odderon
		return true
	}
	if digit(p, Nj) > 0 && digit(p, Nq3) > 0 && digit(p, Nq2) > 0 && digit(p, Nq1) == 0 {
		// Illegal antiparticles: self-conjugate flavour content has no
		// negative code.
		if digit(p, Nq3) == digit(p, Nq2) && p < 0 {
			return false
		}
		return true
	}
	return false
}

// IsBaryon reports a baryon.
func (p PDGID) IsBaryon() bool {
	a := abs(p)
	if a <= 100 {
		return false
	}
	// Proton and neutron as nuclei: checked before the extra-bits cut.
	if a == 1000000010 || a == 1000010010 {
		return true
	}
	if extraBits(p) > 0 {
		return false
	}
	if fid := fundamentalID(p); fid > 0 && fid <= 100 {
		return false
	}
	if a == 2110 || a == 2210 {
		return true
	}
	return digit(p, Nj) > 0 && digit(p, Nq3) > 0 && digit(p, Nq2) > 0 && digit(p, Nq1) > 0
}

// IsDiquark reports a diquark state.
func (p PDGID) IsDiquark() bool {
	if extraBits(p) > 0 {
		return false
	}
	if abs(p) <= 100 {
		return false
	}
	if fid := fundamentalID(p); fid > 0 && fid <= 100 {
		return false
	}
	return digit(p, Nj) > 0 && digit(p, Nq3) == 0 && digit(p, Nq2) > 0 && digit(p, Nq1) > 0
}

// IsNucleus reports a nucleus. Ion numbers are +/- 10LZZZAAAI: AAA is
// the total baryon number A, ZZZ the total charge Z, L the number of
// strange quarks and I the isomer level, I=0 being the ground state.
// The proton and neutron also count as A=1 nuclei.
func (p PDGID) IsNucleus() bool {
	if a := abs(p); a == 2112 || a == 2212 {
		return true
	}
	if digit(p, N10) == 1 && digit(p, N9) == 0 {
		// The charge can never exceed the baryon number.
		a, aok := p.A()
		z, zok := p.Z()
		if aok && zok && a >= absInt(z) {
			return true
		}
	}
	return false
}

// IsPentaquark reports a pentaquark, coded +/- 9 Nr Nl Nq1 Nq2 Nq3 Nj
// with Nr >= Nl >= Nq1 >= Nq2 and Nq3 the antiquark.
func (p PDGID) IsPentaquark() bool {
	if extraBits(p) > 0 {
		return false
	}
	if digit(p, N) != 9 {
		return false
	}
	if digit(p, Nr) == 9 || digit(p, Nr) == 0 {
		return false
	}
	if digit(p, Nj) == 9 || digit(p, Nl) == 0 {
		return false
	}
	if digit(p, Nq1) == 0 || digit(p, Nq2) == 0 || digit(p, Nq3) == 0 || digit(p, Nj) == 0 {
		return false
	}
	if digit(p, Nq2) > digit(p, Nq1) {
		return false
	}
	if digit(p, Nq1) > digit(p, Nl) {
		return false
	}
	if digit(p, Nl) > digit(p, Nr) {
		return false
	}
	return true
}

// IsRhadron reports an R-hadron, coded 10abcdj, 100abcj or 1000abj
// where a is a SUSY particle and the rest are quarks or gluons.
func (p PDGID) IsRhadron() bool {
	if extraBits(p) > 0 {
		return false
	}
	if digit(p, N) != 1 || digit(p, Nr) != 0 {
		return false
	}
	if p.IsSUSY() {
		return false
	}
	// All R-hadrons have at least 3 core digits.
	if digit(p, Nq2) == 0 || digit(p, Nq3) == 0 || digit(p, Nj) == 0 {
		return false
	}
	return true
}

// IsQball reports a Q-ball or any exotic particle with electric charge
// beyond the qqq scheme, coded +/- 100XXXY0 where XXX.Y is the charge.
func (p PDGID) IsQball() bool {
	if extraBits(p) != 1 {
		return false
	}
	if digit(p, N) != 0 || digit(p, Nr) != 0 {
		return false
	}
	if (abs(p)/10)%10000 == 0 {
		return false
	}
	return digit(p, Nj) == 0
}

// IsDyon reports a magnetic monopole. Codes 411xyz0 carry agreeing
// magnetic and electric charge signs, 412xyz0 disagreeing ones, with
// xyz units of electric charge.
func (p PDGID) IsDyon() bool {
	if extraBits(p) > 0 {
		return false
	}
	if digit(p, N) != 4 || digit(p, Nr) != 1 {
		return false
	}
	if digit(p, Nl) != 1 && digit(p, Nl) != 2 {
		return false
	}
	if digit(p, Nq3) == 0 {
		return false
	}
	return digit(p, Nj) == 0
}

// IsSUSY reports a fundamental supersymmetric particle (N = 1 or 2).
func (p PDGID) IsSUSY() bool {
	if extraBits(p) > 0 {
		return false
	}
	if digit(p, N) != 1 && digit(p, N) != 2 {
		return false
	}
	if digit(p, Nr) != 0 {
		return false
	}
	return fundamentalID(p) != 0
}

// IsTechnicolor reports a technicolor state (N = 3).
func (p PDGID) IsTechnicolor() bool {
	if extraBits(p) > 0 {
		return false
	}
	return digit(p, N) == 3
}

// IsCompositeQuarkOrLepton reports an excited (composite) quark or
// lepton (N = 4, Nr = 0).
func (p PDGID) IsCompositeQuarkOrLepton() bool {
	if extraBits(p) > 0 {
		return false
	}
	if fundamentalID(p) == 0 {
		return false
	}
	return digit(p, N) == 4 && digit(p, Nr) == 0
}

// IsGeneratorSpecific reports ID ranges reserved for event-generator
// bookkeeping particles.
func (p PDGID) IsGeneratorSpecific() bool {
	a := abs(p)
	switch {
	case a >= 81 && a <= 100:
		return true
	case a >= 901 && a <= 930:
		return true
	case a >= 998 && a <= 999:
		return true
	case a >= 1901 && a <= 1930:
		return true
	case a >= 2901 && a <= 2930:
		return true
	case a >= 3901 && a <= 3930:
		return true
	}
	// Photon emitted in parton showers, geantino
	return a == 20022 || a == 480000000
}

// IsSpecialParticle reports the graviton, the DM particles and the
// reggeon family, plus everything generator-specific.
func (p PDGID) IsSpecialParticle() bool {
	switch abs(p) {
	case 39, 41, 42, 51, 52, 53, 54, 55, 110, 990, 9990:
		return true
	}
	return p.IsGeneratorSpecific()
}

// ch100 tabulates three times the charge for the fundamental codes
// 1-100 of the numbering scheme.
var ch100 = [100]int{
	-1, 2, -1, 2, -1, 2, -1, 2, 0, 0,
	-3, 0, -3, 0, -3, 0, -3, 0, 0, 0,
	0, 0, 0, 3, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 3, 0, 0, 3, 0, 0, 0,
	0, -1, 0, 0, 0, 0, 0, 0, 0, 0,
	6, 3, 6, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// ThreeCharge returns three times the electric charge, which keeps
// fractional quark charges integral. For Q-balls the value is in
// units of 1/10 of the positron charge.
func (p PDGID) ThreeCharge() (int, bool) {
	if !p.IsValid() {
		return 0, false
	}

	a := abs(p)
	q1 := digit(p, Nq1)
	q2 := digit(p, Nq2)
	q3 := digit(p, Nq3)
	fid := fundamentalID(p)

	var charge int
	switch {
	case extraBits(p) > 0:
		if p.IsNucleus() {
			z, _ := p.Z()
			return 3 * z, true
		}
		if p.IsQball() {
			charge = 3 * ((a / 10) % 10000)
		} else {
			// Extra bits exist only for Q-balls and nuclei.
			return 0, false
		}
	case p.IsDyon():
		charge = 3 * ((a / 10) % 1000)
		// Electric charge sign disagrees with the magnetic one.
		if digit(p, Nl) == 2 {
			charge = -charge
		}
	case fid > 0 && fid <= 100:
		charge = ch100[fid-1]
		switch a {
		case 1000017, 1000018, 1000034, 1000052, 1000053, 1000054:
			charge = 0
		case 5100061, 5100062:
			charge = 6
		}
	case digit(p, Nj) == 0:
		// KL, KS, or undefined
		return 0, true
	case q1 == 0 || (p.IsRhadron() && q1 == 9):
		// Mesons
		if q2 == 3 || q2 == 5 {
			charge = ch100[q3-1] - ch100[q2-1]
		} else {
			charge = ch100[q2-1] - ch100[q3-1]
		}
	case q3 == 0:
		// Diquarks
		charge = ch100[q2-1] + ch100[q1-1]
	case p.IsBaryon() || (p.IsRhadron() && digit(p, Nl) == 9):
		charge = ch100[q3-1] + ch100[q2-1] + ch100[q1-1]
	default:
		return 0, false
	}

	if charge == 0 {
		return 0, true
	}
	if p < 0 {
		charge = -charge
	}
	return charge, true
}

// Charge returns the electric charge in units of the positron charge.
func (p PDGID) Charge() (float64, bool) {
	tc, ok := p.ThreeCharge()
	if !ok {
		return 0, false
	}
	if p.IsQball() {
		return float64(tc) / 30, true
	}
	return float64(tc) / 3, true
}

// JSpin returns the total spin as 2J+1.
func (p PDGID) JSpin() (int, bool) {
	if !p.IsValid() {
		return 0, false
	}
	if fid := fundamentalID(p); fid > 0 {
		switch {
		case fid < 7:
			return 2, true // 4th-generation quarks not dealt with
		case fid == 9:
			return 3, true
		case fid > 10 && fid < 17:
			return 2, true // 4th-generation leptons not dealt with
		case fid > 20 && fid < 25:
			return 3, true
		}
		return 0, false
	}
	if a := abs(p); a == 1000000010 || a == 1000010010 {
		return 2, true // neutron, proton
	}
	if extraBits(p) > 0 {
		return 0, false
	}
	if p == 130 || p == 310 {
		return 1, true // special cases of the KL and KS
	}
	return abs(p) % 10, true
}

// J returns the total angular momentum.
func (p PDGID) J() (float64, bool) {
	js, ok := p.JSpin()
	if !ok {
		return 0, false
	}
	return float64(js-1) / 2, true
}

// S returns the spin quantum number S. It is defined for mesons only,
// and not for the experimentally unconfirmed N=9 code band.
func (p PDGID) S() (int, bool) {
	if !p.IsMeson() || !p.IsValid() {
		return 0, false
	}
	nl := (abs(p) / 10000) % 10
	js := abs(p) % 10
	if (abs(p)/1000000)%10 == 9 {
		return 0, false // no knowledge so far
	}
	switch {
	case nl == 0 && js >= 3:
		return 1, true
	case nl == 0 && js == 1:
		return 0, true
	case nl == 1 && js >= 3:
		return 0, true
	case nl == 2 && js >= 3:
		return 1, true
	case nl == 1 && js == 1:
		return 1, true
	case nl == 3 && js >= 3:
		return 1, true
	}
	return 0, true
}

// SSpin returns the spin S as 2S+1, under the same conditions as S.
func (p PDGID) SSpin() (int, bool) {
	s, ok := p.S()
	if !ok {
		return 0, false
	}
	return 2*s + 1, true
}

// L returns the orbital angular momentum quantum number. It is defined
// for mesons only, and not for the N=9 code band. The pairing of the
// nl sub-digit with the terminal spin digit reproduces the published
// spectroscopic-state table of the numbering scheme.
func (p PDGID) L() (int, bool) {
	if !p.IsMeson() || !p.IsValid() {
		return 0, false
	}
	nl := (abs(p) / 10000) % 10
	js := abs(p) % 10
	if (abs(p)/1000000)%10 == 9 {
		return 0, false // no knowledge so far
	}
	switch nl {
	case 0:
		switch js {
		case 1, 3:
			return 0, true
		case 5:
			return 1, true
		case 7:
			return 2, true
		case 9:
			return 3, true
		}
	case 1:
		switch js {
		case 1, 3:
			return 1, true
		case 5:
			return 2, true
		case 7:
			return 3, true
		case 9:
			return 4, true
		}
	case 2:
		switch js {
		case 3:
			return 1, true
		case 5:
			return 2, true
		case 7:
			return 3, true
		case 9:
			return 4, true
		}
	case 3:
		switch js {
		case 3:
			return 2, true
		case 5:
			return 3, true
		case 7:
			return 4, true
		case 9:
			return 5, true
		}
	}
	return 0, true
}

// LSpin returns the orbital angular momentum as 2L+1, under the same
// conditions as L.
func (p PDGID) LSpin() (int, bool) {
	l, ok := p.L()
	if !ok {
		return 0, false
	}
	return 2*l + 1, true
}

// A returns the baryon (mass) number for a nucleus. The proton and
// neutron count as A=1 nuclei.
func (p PDGID) A() (int, bool) {
	if a := abs(p); a == 2112 || a == 2212 {
		return 1, true
	}
	if digit(p, N10) != 1 || digit(p, N9) != 0 {
		return 0, false
	}
	return (abs(p) / 10) % 1000, true
}

// Z returns the total charge (atomic) number for a nucleus, with the
// sign of the identifier.
func (p PDGID) Z() (int, bool) {
	switch abs(p) {
	case 2212:
		return sign(p), true
	case 2112:
		return 0, true
	}
	if digit(p, N10) != 1 || digit(p, N9) != 0 {
		return 0, false
	}
	return ((abs(p) / 10000) % 1000) * sign(p), true
}

// HasDown reports a down-quark constituent.
func (p PDGID) HasDown() bool { return p.hasQuark(1) }

// HasUp reports an up-quark constituent.
func (p PDGID) HasUp() bool { return p.hasQuark(2) }

// HasStrange reports a strange-quark constituent.
func (p PDGID) HasStrange() bool { return p.hasQuark(3) }

// HasCharm reports a charm-quark constituent.
func (p PDGID) HasCharm() bool { return p.hasQuark(4) }

// HasBottom reports a bottom-quark constituent.
func (p PDGID) HasBottom() bool { return p.hasQuark(5) }

// HasTop reports a top-quark constituent.
func (p PDGID) HasTop() bool { return p.hasQuark(6) }

func (p PDGID) hasQuark(q int) bool {
	// Nuclei can contain strange quarks (hypernuclei); the N8 digit
	// counts them. This must run before the extra-bits cut.
	if p.IsNucleus() {
		if q == 1 || q == 2 {
			return true // nuclei by construction contain up and down quarks
		}
		if q == 3 && p != 2112 && p != 2212 {
			return digit(p, N8) > 0
		}
	}
	if extraBits(p) > 0 {
		return false
	}
	if fundamentalID(p) > 0 {
		return false
	}
	if p.IsDyon() {
		return false
	}
	if p.IsRhadron() {
		// Scan the core digits, skipping the squark or gluino slot.
		iz := Location(7)
		for loc := Location(6); loc > 1; loc-- {
			switch {
			case digit(p, loc) == 0:
				iz = loc
			case loc == iz-1:
				// ignore the SUSY partner digit
			case digit(p, loc) == q:
				return true
			}
		}
		return false
	}
	if digit(p, Nq3) == q || digit(p, Nq2) == q || digit(p, Nq1) == q {
		return true
	}
	if p.IsPentaquark() && (digit(p, Nl) == q || digit(p, Nr) == q) {
		return true
	}
	return false
}

// HasFundamentalAnti reports whether a fundamental particle has a
// distinct antiparticle under the numbering scheme.
func (p PDGID) HasFundamentalAnti() bool {
	fid := fundamentalID(p)
	// Generator-defined codes always pair up.
	if fid >= 80 && fid <= 100 {
		return true
	}
	if fid >= 1 && fid < 80 && p.Abs().IsValid() {
		switch fid {
		case 21, 22, 23, 25, 32, 33, 35, 36, 39, 41:
			return false // self-conjugate
		}
		return true
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(p PDGID) int {
	if p < 0 {
		return -1
	}
	return 1
}
