package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hepkit/pdg/converters"
	"github.com/hepkit/pdg/pdgid"
)

var convertFrom bool

var convertCmd = &cobra.Command{
	Use:   "convert <scheme> <value>...",
	Short: "Convert identifiers between numbering schemes",
	Long: `Convert PDG identifiers to another scheme, or back with --from.
Supported schemes: pythia, geant3, corsika7, evtgen, lhcb.

Examples:
  pdg convert geant3 211 2212
  pdg convert --from evtgen anti-B0
  pdg convert lhcb 443`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scheme, values := args[0], args[1:]
		for _, v := range values {
			out, err := convertOne(scheme, v, convertFrom)
			if err != nil {
				return err
			}
			cmd.Printf("%s\t%s\n", v, out)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&convertFrom, "from", false, "convert foreign values to PDG identifiers")
	rootCmd.AddCommand(convertCmd)
}

func convertOne(scheme, value string, reverse bool) (string, error) {
	if reverse {
		id, err := toPDGID(scheme, value)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(id)), nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return "", fmt.Errorf("not a PDG identifier: %q", value)
	}
	id := pdgid.PDGID(n)
	switch scheme {
	case "pythia":
		v, err := converters.PythiaID(id)
		return strconv.Itoa(v), err
	case "geant3":
		v, err := converters.Geant3ID(id)
		return strconv.Itoa(v), err
	case "corsika7":
		v, err := converters.Corsika7ID(id)
		return strconv.Itoa(v), err
	case "evtgen":
		return converters.EvtGenName(id)
	case "lhcb":
		return converters.LHCbName(id)
	default:
		return "", fmt.Errorf("unknown scheme %q", scheme)
	}
}

func toPDGID(scheme, value string) (pdgid.PDGID, error) {
	switch scheme {
	case "pythia", "geant3", "corsika7":
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("not a %s identifier: %q", scheme, value)
		}
		switch scheme {
		case "pythia":
			return converters.Pythia().ToPDGID(n)
		case "geant3":
			return converters.Geant3().ToPDGID(n)
		default:
			return converters.Corsika7().ToPDGID(n)
		}
	case "evtgen":
		return converters.EvtGen().ToPDGID(value)
	case "lhcb":
		return converters.LHCb().ToPDGID(value)
	default:
		return 0, fmt.Errorf("unknown scheme %q", scheme)
	}
}
