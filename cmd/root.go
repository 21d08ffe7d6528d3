// Package cmd implements the pdg command line interface.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hepkit/pdg/internal/config"
	"github.com/hepkit/pdg/internal/log"
	"github.com/hepkit/pdg/particle"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "pdg",
	Short:   "Particle data lookups from the command line",
	Long: `Look up particles by PDG identifier or name, decode identifier
properties, search the particle table and convert identifiers between
the numbering schemes of common particle-physics programs.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/pdg/config.yaml)")
	rootCmd.PersistentFlags().StringP("table", "t", "",
		"path to a CSV particle table")
	rootCmd.PersistentFlags().Bool("replace", false,
		"replace the bundled tables instead of appending to them")
	rootCmd.PersistentFlags().String("log-level", "",
		"enable logging at the given level (debug, info, warn, error)")

	_ = viper.BindPFlag("table.path", rootCmd.PersistentFlags().Lookup("table"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("table.append", defaults.Table.Append)
	viper.SetDefault("log.enabled", defaults.Log.Enabled)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.file", defaults.Log.File)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.Debounce)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .pdg/config.yaml (current directory)
		// 2. ~/.config/pdg/config.yaml (user config)
		if _, err := os.Stat(".pdg/config.yaml"); err == nil {
			viper.SetConfigFile(".pdg/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "pdg"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config files are fine, the defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn(log.CatCLI, "unreadable config file", "error", err)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if lvl := viper.GetString("log.level"); lvl != "" && rootCmd.PersistentFlags().Changed("log-level") {
		cfg.Log.Enabled = true
		cfg.Log.Level = lvl
	}
	if cfg.Log.Enabled {
		if _, err := log.Init(cfg.Log.File); err == nil {
			log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
		}
	}
}

// loadRegistry builds the registry the subcommands query, honoring the
// table flags and config.
func loadRegistry(cmd *cobra.Command) (*particle.Registry, error) {
	reg := particle.New()
	if cfg.Table.Path == "" {
		return reg, nil
	}
	appendTable := cfg.Table.Append
	if replace, _ := cmd.Flags().GetBool("replace"); replace {
		appendTable = false
	}
	if err := reg.LoadFile(cfg.Table.Path, appendTable); err != nil {
		return nil, err
	}
	return reg, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
