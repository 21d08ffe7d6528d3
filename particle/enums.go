package particle

// Enums characterising particle properties as coded in the reference
// tables: charge, parity, inversion policy, experimental status.

// SpinType represents the spin type of bosons, derived from (J, P).
// SpinTypeNonDefined is used for non-bosons.
type SpinType int

const (
	SpinTypeScalar       SpinType = 1  // (0, +)
	SpinTypePseudoScalar SpinType = -1 // (0, -)
	SpinTypeVector       SpinType = 2  // (1, -)
	SpinTypeAxial        SpinType = -2 // (1, +)
	SpinTypeTensor       SpinType = 3  // (2, +)
	SpinTypePseudoTensor SpinType = -3 // (2, -)
	SpinTypeUnknown      SpinType = 0
	SpinTypeNonDefined   SpinType = 5
)

func (s SpinType) String() string {
	switch s {
	case SpinTypeScalar:
		return "Scalar"
	case SpinTypePseudoScalar:
		return "PseudoScalar"
	case SpinTypeVector:
		return "Vector"
	case SpinTypeAxial:
		return "Axial"
	case SpinTypeTensor:
		return "Tensor"
	case SpinTypePseudoTensor:
		return "PseudoTensor"
	case SpinTypeNonDefined:
		return "NonDefined"
	default:
		return "Unknown"
	}
}

// Parity is a parity quantum number (G, P or C). The table code 5
// marks an unknown or irrelevant parity.
type Parity int

const (
	ParityPlus    Parity = 1
	ParityMinus   Parity = -1
	ParityUnknown Parity = 5
)

func (p Parity) String() string {
	switch p {
	case ParityPlus:
		return "+"
	case ParityMinus:
		return "-"
	default:
		return "None"
	}
}

// parseParity maps the integer table code to a Parity, tolerating
// anything unrecognized as unknown.
func parseParity(code int) Parity {
	switch code {
	case 1:
		return ParityPlus
	case -1:
		return ParityMinus
	default:
		return ParityUnknown
	}
}

// Charge is the particle charge times three, as coded in the tables.
// Quark charges stay integral that way. The code 50 marks an unknown
// charge.
type Charge int

const (
	ChargePP      Charge = 6
	ChargeP43     Charge = 4 // +4/3
	ChargeP       Charge = 3
	ChargeP23     Charge = 2 // +2/3
	ChargeP13     Charge = 1 // +1/3
	ChargeO       Charge = 0
	ChargeM13     Charge = -1 // -1/3
	ChargeM23     Charge = -2 // -2/3
	ChargeM       Charge = -3
	ChargeM43     Charge = -4 // -4/3
	ChargeMM      Charge = -6
	ChargeUnknown Charge = 50
)

func (c Charge) String() string {
	switch c {
	case ChargePP:
		return "++"
	case ChargeP43:
		return "+4/3"
	case ChargeP:
		return "+"
	case ChargeP23:
		return "+2/3"
	case ChargeP13:
		return "+1/3"
	case ChargeO:
		return "0"
	case ChargeM13:
		return "-1/3"
	case ChargeM23:
		return "-2/3"
	case ChargeM:
		return "-"
	case ChargeM43:
		return "-4/3"
	case ChargeMM:
		return "--"
	default:
		return "None"
	}
}

// chargeFromToken maps a charge token from a particle name to its
// three-charge value.
var chargeFromToken = map[string]Charge{
	"++":   ChargePP,
	"+4/3": ChargeP43,
	"+":    ChargeP,
	"+2/3": ChargeP23,
	"+1/3": ChargeP13,
	"0":    ChargeO,
	"-1/3": ChargeM13,
	"-2/3": ChargeM23,
	"-":    ChargeM,
	"-4/3": ChargeM43,
	"--":   ChargeMM,
}

// Inv defines what happens to the display name when a particle is
// inverted into its antiparticle.
type Inv int

const (
	// InvSame marks a self-conjugate particle, e.g. the pi0.
	InvSame Inv = 0
	// InvBarred marks an antiparticle denoted with a bar, e.g. the
	// antiproton. The charge may or may not be part of the name.
	InvBarred Inv = 1
	// InvChargeInv marks an antiparticle obtained by a change of
	// charge, e.g. pi+ versus pi-.
	InvChargeInv Inv = 2
)

func (i Inv) String() string {
	switch i {
	case InvBarred:
		return "Barred"
	case InvChargeInv:
		return "ChargeInv"
	default:
		return "Same"
	}
}

// Status is the PDG experimental-confidence category of a particle.
type Status int

const (
	// StatusCommon: established particle in the RPP Summary Table.
	StatusCommon Status = 0
	// StatusRare: well established but omitted from the Summary Tables
	// to save space.
	StatusRare Status = 1
	// StatusUnsure: omitted from the Summary Tables because not well
	// established.
	StatusUnsure Status = 2
	// StatusFurther: the "Further mesons" special case of the RPP,
	// states needing confirmation.
	StatusFurther Status = 3
	// StatusNotInPDT: non-standard and exotic particles not in the PDT.
	StatusNotInPDT Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusCommon:
		return "Common"
	case StatusRare:
		return "Rare"
	case StatusUnsure:
		return "Unsure"
	case StatusFurther:
		return "Further"
	default:
		return "NotInPDT"
	}
}
