// Package particle provides the in-memory PDG particle table: an
// immutable Particle record, a Registry owning loaded records with
// point, filtered and name-based lookups, and the derived display
// properties of the original PDG data files.
package particle

import (
	"fmt"
	"strings"

	"github.com/hepkit/pdg/pdgid"
)

// Particle holds the measured properties of a single particle, one
// record per signed identifier. Records are value objects; nothing
// mutates them after load. Masses and widths are in MeV; nil pointers
// mark values absent from the reference data.
type Particle struct {
	ID      pdgid.PDGID
	PDGName string // name stem as in the PDG data file, without charge

	Mass      *float64
	MassUpper *float64
	MassLower *float64

	Width      *float64
	WidthUpper *float64
	WidthLower *float64

	// ChargeCode is the tabulated three-charge. The table stores it
	// rather than deriving it from the identifier so that user-defined
	// particles stay representable.
	ChargeCode Charge

	Isospin *float64
	G, P, C Parity

	AntiFlag Inv
	Rank     int // number of baryon stars, 0-4
	Status   Status

	Quarks    string // quark content; capital letters are anti-quarks
	LatexName string
}

// ThreeCharge returns three times the electric charge. Nuclei derive
// it from the identifier; everything else reads the tabulated code.
func (p Particle) ThreeCharge() (int, bool) {
	if p.ID.IsNucleus() {
		return p.ID.ThreeCharge()
	}
	if p.ChargeCode == ChargeUnknown {
		return 0, false
	}
	return int(p.ChargeCode), true
}

// Charge returns the electric charge in units of the positron charge.
func (p Particle) Charge() (float64, bool) {
	tc, ok := p.ThreeCharge()
	if !ok {
		return 0, false
	}
	return float64(tc) / 3, true
}

// J returns the total angular momentum encoded in the identifier.
func (p Particle) J() (float64, bool) { return p.ID.J() }

// L returns the orbital angular momentum encoded in the identifier
// (mesons only).
func (p Particle) L() (int, bool) { return p.ID.L() }

// S returns the spin quantum number encoded in the identifier (mesons
// only).
func (p Particle) S() (int, bool) { return p.ID.S() }

// Lifetime returns the particle lifetime in nanoseconds, derived from
// the measured width. ok=false when the width is unknown.
func (p Particle) Lifetime() (float64, bool) {
	if p.Width == nil {
		return 0, false
	}
	tau, err := WidthToLifetime(*p.Width)
	if err != nil {
		return 0, false
	}
	return tau, true
}

// Ctau returns c times the lifetime, in millimeters. ok=false when the
// width is unknown.
func (p Particle) Ctau() (float64, bool) {
	tau, ok := p.Lifetime()
	if !ok {
		return 0, false
	}
	return speedOfLightMMPerNs * tau, true
}

// IsSelfConjugate reports whether the particle is its own
// antiparticle.
func (p Particle) IsSelfConjugate() bool { return p.AntiFlag == InvSame }

// IsNameBarred reports an antiparticle whose display name carries a
// bar.
func (p Particle) IsNameBarred() bool { return p.ID < 0 && p.AntiFlag == InvBarred }

// SpinTypeOf returns the boson spin type derived from (J, P).
// SpinTypeNonDefined is returned for fermions and undecodable spins.
func (p Particle) SpinTypeOf() SpinType {
	js, ok := p.ID.JSpin()
	if !ok {
		return SpinTypeNonDefined
	}
	// Fermions: 2J+1 is even.
	if js%2 == 0 {
		return SpinTypeNonDefined
	}
	j, _ := p.J()
	if j == 0 || j == 1 || j == 2 {
		idx := int(j)
		switch p.P {
		case ParityPlus:
			return [3]SpinType{SpinTypeScalar, SpinTypeAxial, SpinTypeTensor}[idx]
		case ParityMinus:
			return [3]SpinType{SpinTypePseudoScalar, SpinTypeVector, SpinTypePseudoTensor}[idx]
		}
	}
	return SpinTypeUnknown
}

// IsUnflavouredMeson reports a light non-strange meson or a
// quarkonium: a meson with no net flavour quantum number.
func (p Particle) IsUnflavouredMeson() bool {
	id := p.ID
	if !id.IsMeson() {
		return false
	}
	// Heavy flavour: unflavoured iff self-conjugate (quarkonium).
	if id.HasCharm() || id.HasBottom() || id.HasTop() {
		return p.IsSelfConjugate()
	}
	// Special case of the KS and KL
	if a := id.Abs(); a == 130 || a == 310 {
		return false
	}
	// I=1 light mesons have no s-sbar component.
	if nq3(id) == 1 && !id.HasStrange() {
		return true
	}
	// I=0 light mesons carry an s-sbar component with net S=0.
	if tc, ok := p.ThreeCharge(); ok && tc == 0 && (nq3(id) == 2 || nq3(id) == 3) {
		return true
	}
	return false
}

// Name returns the display name: stem, a tilde for barred
// antiparticles, and the charge when it is part of the name.
func (p Particle) Name() string {
	var sb strings.Builder
	sb.WriteString(p.PDGName)
	if p.AntiFlag == InvBarred && p.ID < 0 {
		sb.WriteString("~")
	}
	if p.chargeInName() {
		sb.WriteString(p.chargeString())
	}
	return sb.String()
}

// HTMLName returns the display name rendered as HTML.
func (p Particle) HTMLName() string { return LatexToHTMLName(p.LatexName) }

// ProgrammaticNameOf returns a name safe to use as a variable name.
func (p Particle) ProgrammaticNameOf() string { return ProgrammaticName(p.Name()) }

// chargeInName assesses whether the charge is part of the display
// name, following the PDG naming conventions.
func (p Particle) chargeInName() bool {
	if p.AntiFlag == InvChargeInv {
		return true
	}
	switch p.ID {
	case 23, 25, 111, 130, 310, 311, -311:
		return true // the Z0, H0, pi0, KL0, KS0, K0 and K0bar
	}
	if p.ID.IsDiquark() {
		return false
	}
	if a := p.ID.Abs(); a == 2212 || a == 2112 {
		return false // proton and neutron
	}
	if p.ID.Abs() < 19 {
		return false // quarks and neutrinos
	}
	if _, known := p.ThreeCharge(); !known {
		return false
	}
	if p.IsSelfConjugate() {
		if p.ID.Abs() < 25 {
			return false // gauge bosons
		}
		// Quarkonia and the eta/h/omega/phi/f families never show the
		// 0 charge.
		for _, stem := range []string{"eta", "h(", "h'(", "omega", "phi", "f", "f'"} {
			if strings.Contains(p.PDGName, stem) {
				return false
			}
		}
		if p.ID.HasStrange() || p.ID.HasCharm() || p.ID.HasBottom() || p.ID.HasTop() {
			return false
		}
		return true // light unflavoured mesons
	}
	// Lambda baryons: isospin zero with strange but no heavy flavour.
	if p.ID.IsBaryon() &&
		nq2(p.ID) == 1 &&
		p.Isospin != nil && *p.Isospin == 0 &&
		p.ID.HasStrange() &&
		!(p.ID.HasCharm() || p.ID.HasBottom() || p.ID.HasTop()) {
		return false
	}
	if p.ID.IsNucleus() {
		return false
	}
	return true
}

// chargeString renders the charge suffix of the display name.
func (p Particle) chargeString() string {
	if p.ChargeCode == ChargeUnknown && !p.ID.IsNucleus() {
		return "None"
	}
	if p.ID.IsNucleus() {
		q, ok := p.ID.Charge()
		if !ok {
			return "None"
		}
		return trimFloat(q)
	}
	return p.ChargeCode.String()
}

// massString renders the mass with uncertainties, or "None" when
// unmeasured.
func (p Particle) massString() string {
	if p.Mass == nil {
		return "None"
	}
	return StrWithUnc(*p.Mass, p.MassUpper, p.MassLower) + " MeV"
}

// widthOrLifetimeString prefers the lifetime for narrow states and the
// width otherwise. Absent width errors flag an experimental upper
// limit.
func (p Particle) widthOrLifetimeString() string {
	switch {
	case p.Width == nil:
		return "Width = None"
	case *p.Width == 0:
		return "Width = 0.0 MeV"
	case p.WidthLower == nil || p.WidthUpper == nil:
		return fmt.Sprintf("Width < %g MeV", *p.Width)
	case *p.Width < 0.05:
		tau, _ := p.Lifetime()
		lo, _ := WidthToLifetime(*p.Width - *p.WidthLower)
		eUp := lo - tau
		if *p.WidthLower == *p.WidthUpper {
			return fmt.Sprintf("Lifetime = %s ns", StrWithUnc(tau, &eUp, &eUp))
		}
		hi, _ := WidthToLifetime(*p.Width + *p.WidthUpper)
		eLo := tau - hi
		return fmt.Sprintf("Lifetime = %s ns", StrWithUnc(tau, &eUp, &eLo))
	default:
		return fmt.Sprintf("Width = %s MeV", StrWithUnc(*p.Width, p.WidthUpper, p.WidthLower))
	}
}

// Describe renders a high-density multi-line summary of the particle
// properties.
func (p Particle) Describe() string {
	if p.ID == 0 {
		return "Name: Unknown"
	}
	jStr := "None"
	if j, ok := p.J(); ok {
		jStr = trimFloat(j)
	}
	iStr := "None"
	if p.Isospin != nil {
		iStr = trimFloat(*p.Isospin)
	}
	latex := "?"
	if p.LatexName != "" {
		latex = "$" + p.LatexName + "$"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %-14s ID: %-12d Latex: %s\n", p.Name(), int(p.ID), latex)
	fmt.Fprintf(&sb, "Mass  = %s\n", p.massString())
	fmt.Fprintf(&sb, "%s\n", p.widthOrLifetimeString())
	fmt.Fprintf(&sb, "Q (charge)        = %-6s  J (total angular) = %-7s  P (space parity) = %s\n",
		p.chargeString(), jStr, p.P)
	fmt.Fprintf(&sb, "C (charge parity) = %-6s  I (isospin)       = %-7s  G (G-parity)     = %s\n",
		p.C, iStr, p.G)
	if st := p.SpinTypeOf(); st != SpinTypeUnknown && st != SpinTypeNonDefined {
		fmt.Fprintf(&sb, "    SpinType: %s\n", st)
	}
	if p.Quarks != "" {
		fmt.Fprintf(&sb, "    Quarks: %s\n", p.Quarks)
	}
	return sb.String()
}

func (p Particle) String() string {
	return fmt.Sprintf("<Particle: name=%q, pdgid=%d, mass=%s>", p.Name(), int(p.ID), p.massString())
}

// sortKey orders particles by distance from +0.25 on the identifier
// axis, which places each particle immediately before its
// antiparticle.
func (p Particle) sortKey() int {
	k := 4*int(p.ID) - 1
	if k < 0 {
		return -k
	}
	return k
}

func nq2(id pdgid.PDGID) int {
	return (int(id.Abs()) / 100) % 10
}

func nq3(id pdgid.PDGID) int {
	return (int(id.Abs()) / 10) % 10
}
