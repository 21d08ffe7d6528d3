package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hepkit/pdg/particle"
)

var (
	searchName     string
	searchPDGName  string
	searchQuarks   string
	searchCharge   float64
	searchJ        float64
	searchStatus   int
	searchAnti     bool
	searchParticle bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the particle table by properties",
	Long: `Search the loaded particle table. Criteria combine with AND logic;
results print in canonical table order.

Examples:
  # All spin-0 particles with charge +1
  pdg search --j 0 --charge 1

  # Everything whose name mentions a K*
  pdg search --name "K*"

  # Antiparticles with uds quark content
  pdg search --quarks UDS --anti`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		crit := particle.Criteria{}
		if cmd.Flags().Changed("name") {
			crit[particle.FieldName] = particle.ContainsName(searchName)
		}
		if cmd.Flags().Changed("pdg-name") {
			crit[particle.FieldPDGName] = particle.Literal(searchPDGName)
		}
		if cmd.Flags().Changed("quarks") {
			crit[particle.FieldQuarks] = particle.Literal(searchQuarks)
		}
		if cmd.Flags().Changed("charge") {
			crit[particle.FieldThreeCharge] = particle.Literal(searchCharge * 3)
		}
		if cmd.Flags().Changed("j") {
			crit[particle.FieldJ] = particle.Literal(searchJ)
		}
		if cmd.Flags().Changed("status") {
			crit[particle.FieldStatus] = particle.Literal(searchStatus)
		}

		sign := particle.AnySign
		switch {
		case searchAnti:
			sign = particle.AntiparticlesOnly
		case searchParticle:
			sign = particle.ParticlesOnly
		}

		results := reg.FindAll(particle.Search{Sign: sign, Criteria: crit})
		if len(results) == 0 {
			cmd.Println(errStyle.Render("no matches"))
			return nil
		}
		cmd.Println(renderHeader())
		for _, p := range results {
			cmd.Println(renderRow(p))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchName, "name", "", "substring of the display name")
	searchCmd.Flags().StringVar(&searchPDGName, "pdg-name", "", "exact PDG name")
	searchCmd.Flags().StringVar(&searchQuarks, "quarks", "", "exact quark content")
	searchCmd.Flags().Float64Var(&searchCharge, "charge", 0, "electric charge")
	searchCmd.Flags().Float64Var(&searchJ, "j", 0, "total spin J")
	searchCmd.Flags().IntVar(&searchStatus, "status", 0, "PDG status code")
	searchCmd.Flags().BoolVar(&searchAnti, "anti", false, "antiparticles only")
	searchCmd.Flags().BoolVar(&searchParticle, "particles", false, "particles only")
	searchCmd.MarkFlagsMutuallyExclusive("anti", "particles")
	rootCmd.AddCommand(searchCmd)
}
