package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hepkit/pdg/internal/log"
	"github.com/hepkit/pdg/internal/watcher"
	"github.com/hepkit/pdg/particle"
)

var tableWatch bool

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the loaded particle table",
	Long: `Print every record of the loaded particle table in canonical order.
With --watch and a user table (-t), the table is reloaded and reprinted
whenever the file changes, until interrupted.

Examples:
  pdg table
  pdg table -t my_particles.csv --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		printTable(cmd, reg)

		if !tableWatch && !cfg.Watch.Enabled {
			return nil
		}
		if cfg.Table.Path == "" {
			return fmt.Errorf("--watch needs a user table, pass one with --table")
		}
		return watchTable(cmd, reg)
	},
}

func init() {
	tableCmd.Flags().BoolVar(&tableWatch, "watch", false, "reload and reprint when the table file changes")
	rootCmd.AddCommand(tableCmd)
}

func printTable(cmd *cobra.Command, reg *particle.Registry) {
	cmd.Println(renderHeader())
	for _, p := range reg.All() {
		cmd.Println(renderRow(p))
	}
	cmd.Println(labelStyle.Render(fmt.Sprintf("%d records from %v", len(reg.All()), reg.TableNames())))
}

func watchTable(cmd *cobra.Command, reg *particle.Registry) error {
	wcfg := watcher.DefaultConfig(cfg.Table.Path)
	if cfg.Watch.Debounce > 0 {
		wcfg.DebounceDur = cfg.Watch.DebounceDuration()
	}
	w, err := watcher.New(wcfg)
	if err != nil {
		return fmt.Errorf("watching %s: %w", cfg.Table.Path, err)
	}
	changes, err := w.Start()
	if err != nil {
		return fmt.Errorf("watching %s: %w", cfg.Table.Path, err)
	}
	defer func() { _ = w.Stop() }()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	for {
		select {
		case <-interrupt:
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if err := reg.LoadFile(cfg.Table.Path, cfg.Table.Append); err != nil {
				log.ErrorErr(log.CatWatch, "table reload failed", err)
				cmd.Println(errStyle.Render(fmt.Sprintf("reload failed: %v", err)))
				continue
			}
			printTable(cmd, reg)
		}
	}
}
