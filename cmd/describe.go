package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hepkit/pdg/particle"
	"github.com/hepkit/pdg/pdgid"
)

var (
	describeDec    bool
	describeEvtGen bool
)

var describeCmd = &cobra.Command{
	Use:   "describe <name-or-id>...",
	Short: "Describe particles from the reference table",
	Long: `Look up particles by PDG-style name or numeric identifier and print
their table properties. With --dec the names are parsed as decay-file
names, with --evtgen as EvtGen names.

Examples:
  pdg describe pi+ "K*(892)0"
  pdg describe 443
  pdg describe --dec anti-B_s0
  pdg describe --evtgen J/psi`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		for i, arg := range args {
			p, err := lookupOne(reg, arg)
			if err != nil {
				return err
			}
			if i > 0 {
				cmd.Println()
			}
			cmd.Print(renderDescription(p))
		}
		return nil
	},
}

func init() {
	describeCmd.Flags().BoolVar(&describeDec, "dec", false, "parse names with the decay-file grammar")
	describeCmd.Flags().BoolVar(&describeEvtGen, "evtgen", false, "treat names as EvtGen names")
	describeCmd.MarkFlagsMutuallyExclusive("dec", "evtgen")
	rootCmd.AddCommand(describeCmd)
}

func lookupOne(reg *particle.Registry, arg string) (particle.Particle, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return reg.FromPDGID(pdgid.PDGID(n))
	}
	switch {
	case describeDec:
		return reg.FromDec(arg)
	case describeEvtGen:
		return reg.FromEvtGenName(arg)
	default:
		return reg.FromString(arg)
	}
}
