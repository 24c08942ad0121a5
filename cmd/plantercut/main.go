// PlanterCut - Planter Box Cut List Planner
//
// Plans the cut list and assembly drawing for a slatted planter box built
// from stock planks. Runs as a command line tool, an HTTP service or a
// desktop application.
//
// Build:
//   go build -o plantercut ./cmd/plantercut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o plantercut.exe ./cmd/plantercut
//   GOOS=darwin  GOARCH=amd64 go build -o plantercut-darwin ./cmd/plantercut
//
// Using fyne-cross (recommended for packaging the desktop app):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PlanterCut/internal/config"
	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/project"
	"github.com/piwi3910/PlanterCut/internal/share"
)

var (
	version = "1.0.0"

	configFlag string
	shareFlag  string
	presetFlag string
	stockFlag  string

	// env holds the process settings loaded before every command.
	env *config.Config

	rootCmd = &cobra.Command{
		Use:           "plantercut",
		Short:         "PlanterCut - plan the cut list and assembly drawing for a planter box",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			env = cfg
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of plantercut",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("plantercut version %s\n", version)
		},
	}
)

// loadPlanterConfig resolves the planter configuration a command works on.
// In order of precedence: --config, --share, --preset, PLANTERCUT_CONFIG_PATH,
// then the built-in default. --stock applies a catalog entry on top.
func loadPlanterConfig() (model.PlanterConfig, error) {
	cfg, err := baseConfig()
	if err != nil {
		return cfg, err
	}
	if stockFlag != "" {
		cat, err := project.LoadStockCatalog(project.DefaultStockPath())
		if err != nil {
			return cfg, fmt.Errorf("failed to load stock catalog: %w", err)
		}
		stock := cat.FindByName(stockFlag)
		if stock == nil {
			return cfg, fmt.Errorf("unknown stock %q (see the stock catalog in %s)", stockFlag, project.DefaultStockPath())
		}
		stock.Apply(&cfg)
	}
	return cfg, nil
}

func baseConfig() (model.PlanterConfig, error) {
	switch {
	case configFlag != "":
		return project.LoadConfig(configFlag)
	case shareFlag != "":
		return share.FromLink(shareFlag, model.DefaultConfig())
	case presetFlag != "":
		store, err := project.LoadPresets(project.DefaultPresetPath())
		if err != nil {
			return model.PlanterConfig{}, fmt.Errorf("failed to load presets: %w", err)
		}
		p := store.FindByName(presetFlag)
		if p == nil {
			p = store.FindByID(presetFlag)
		}
		if p == nil {
			return model.PlanterConfig{}, fmt.Errorf("unknown preset %q", presetFlag)
		}
		return p.ToConfig(), nil
	case env != nil && env.ConfigPath != "":
		return project.LoadConfig(env.ConfigPath)
	}
	return model.DefaultConfig(), nil
}

// addConfigFlags registers the flags that select the planter configuration.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "Planter config file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&shareFlag, "share", "", "Open the configuration carried by a share link")
	cmd.Flags().StringVar(&presetFlag, "preset", "", "Use a saved preset, by name or ID")
	cmd.Flags().StringVar(&stockFlag, "stock", "", "Use a stock catalog entry, by name")
	cmd.MarkFlagsMutuallyExclusive("config", "share", "preset")
}

func init() {
	for _, cmd := range []*cobra.Command{planCmd, diagramCmd, exportCmd, shareCmd, guiCmd, presetsSaveCmd} {
		addConfigFlags(cmd)
	}

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
