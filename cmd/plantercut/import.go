package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PlanterCut/internal/importer"
	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/project"
)

var (
	importOutputFlag string

	importCmd = &cobra.Command{
		Use:   "import FILE",
		Short: "Build a planter config from a CSV/Excel settings sheet or a DXF footprint",
		Long: `Read settings from a two-column sheet (setting, value) in CSV or Excel
format, or take the interior length and width from the bounding box of a
DXF drawing. Settings not in the file keep their default values. The
result is printed as YAML, or saved with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			base := model.DefaultConfig()

			var cfg model.PlanterConfig
			switch strings.ToLower(filepath.Ext(path)) {
			case ".dxf":
				fp, err := importer.ImportFootprintDXF(path)
				if err != nil {
					return err
				}
				for _, w := range fp.Warnings {
					slog.Warn("footprint import", "file", path, "warning", w)
				}
				cfg = base
				fp.Apply(&cfg)
			case ".xlsx", ".xlsm":
				res := importer.ImportExcel(path, base)
				if err := reportImport(path, res); err != nil {
					return err
				}
				cfg = res.Config
			default:
				res := importer.ImportCSV(path, base)
				if err := reportImport(path, res); err != nil {
					return err
				}
				cfg = res.Config
			}

			if importOutputFlag == "" {
				data, err := project.MarshalConfig(cfg, project.FormatYAML)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := project.SaveConfig(importOutputFlag, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", importOutputFlag)
			return nil
		},
	}

	backupCmd = &cobra.Command{
		Use:   "backup",
		Short: "Back up or restore preferences, presets and the stock catalog",
	}

	backupExportCmd = &cobra.Command{
		Use:   "export FILE",
		Short: "Write all application data to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return err
			}
			presets, err := project.LoadPresets(project.DefaultPresetPath())
			if err != nil {
				return err
			}
			stock, err := project.LoadStockCatalog(project.DefaultStockPath())
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], appCfg, presets, stock); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", args[0])
			return nil
		},
	}

	backupImportCmd = &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all application data with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
				return err
			}
			if err := project.SavePresets(project.DefaultPresetPath(), backup.Presets); err != nil {
				return err
			}
			if err := project.SaveStockCatalog(project.DefaultStockPath(), backup.Stock); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored backup from %s (%d presets, %d stock entries)\n",
				backup.CreatedAt, len(backup.Presets.Presets), len(backup.Stock.Stocks))
			return nil
		},
	}
)

func init() {
	importCmd.Flags().StringVarP(&importOutputFlag, "output", "o", "", "Save the config to a .json/.yaml file instead of printing it")

	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}

// reportImport logs import warnings and turns import errors into one error.
func reportImport(path string, res importer.ImportResult) error {
	for _, w := range res.Warnings {
		slog.Warn("settings import", "file", path, "warning", w)
	}
	if len(res.Errors) > 0 {
		return errors.New(strings.Join(res.Errors, "; "))
	}
	slog.Info("settings imported", "file", path, "settings", len(res.Applied))
	return nil
}
