package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hepkit/pdg/pdgid"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <pdgid>...",
	Short: "Decode the properties encoded in PDG identifiers",
	Long: `Decode PDG identifiers by digit arithmetic alone, without a table
lookup: particle class, charge, spin quantum numbers and quark content.

Examples:
  pdg decode 211
  pdg decode -- -13 443 1000010020`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("not a PDG identifier: %q", arg)
			}
			if i > 0 {
				cmd.Println()
			}
			printDecoded(cmd, pdgid.PDGID(n))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func printDecoded(cmd *cobra.Command, id pdgid.PDGID) {
	cmd.Println(headerStyle.Render(fmt.Sprintf("PDG ID %d", int(id))))
	cmd.Printf("  valid:   %v\n", id.IsValid())
	cmd.Printf("  class:   %s\n", className(id))

	if tc, ok := id.ThreeCharge(); ok {
		q, _ := id.Charge()
		cmd.Printf("  charge:  %g (3Q = %d)\n", q, tc)
	} else {
		cmd.Println("  charge:  undefined")
	}
	if j, ok := id.J(); ok {
		cmd.Printf("  J:       %g\n", j)
	}
	if s, ok := id.S(); ok {
		cmd.Printf("  S:       %d\n", s)
	}
	if l, ok := id.L(); ok {
		cmd.Printf("  L:       %d\n", l)
	}
	if id.IsNucleus() {
		if a, ok := id.A(); ok {
			cmd.Printf("  A:       %d\n", a)
		}
		if z, ok := id.Z(); ok {
			cmd.Printf("  Z:       %d\n", z)
		}
	}
	if id.IsHadron() {
		cmd.Printf("  quarks:  %s\n", quarkFlags(id))
	}
}

func className(id pdgid.PDGID) string {
	switch {
	case id.IsQuark():
		return "quark"
	case id.IsLepton():
		return "lepton"
	case id.IsPentaquark():
		return "pentaquark"
	case id.IsMeson():
		return "meson"
	case id.IsNucleus() && !id.IsBaryon():
		return "nucleus"
	case id.IsBaryon():
		return "baryon"
	case id.IsDiquark():
		return "diquark"
	case id.IsRhadron():
		return "R-hadron"
	case id.IsQball():
		return "Q-ball"
	case id.IsDyon():
		return "dyon"
	case id.IsSUSY():
		return "SUSY partner"
	case id.IsTechnicolor():
		return "technicolor"
	case id.IsCompositeQuarkOrLepton():
		return "composite quark or lepton"
	case id.IsGeneratorSpecific():
		return "generator-specific"
	case id.IsSpecialParticle():
		return "special"
	case id.IsValid():
		return "boson or other fundamental"
	default:
		return "unknown"
	}
}

func quarkFlags(id pdgid.PDGID) string {
	out := ""
	for _, f := range []struct {
		label string
		has   func() bool
	}{
		{"d", id.HasDown},
		{"u", id.HasUp},
		{"s", id.HasStrange},
		{"c", id.HasCharm},
		{"b", id.HasBottom},
		{"t", id.HasTop},
	} {
		if f.has() {
			out += f.label
		}
	}
	if out == "" {
		return "none"
	}
	return out
}
