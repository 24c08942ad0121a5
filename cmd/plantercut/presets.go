package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/project"
)

var (
	descriptionFlag string

	presetsCmd = &cobra.Command{
		Use:   "presets",
		Short: "Manage saved planter presets",
	}

	presetsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadPresets(project.DefaultPresetPath())
			if err != nil {
				return err
			}
			if len(store.Presets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No presets saved.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSTOCK\tBOX\tDESCRIPTION")
			for _, p := range store.Presets {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, stockSummary(p.Config), boxSummary(p.Config), p.Description)
			}
			return tw.Flush()
		},
	}

	presetsSaveCmd = &cobra.Command{
		Use:   "save NAME",
		Short: "Save a planter configuration as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadPlanterConfig()
			if err != nil {
				return err
			}
			path := project.DefaultPresetPath()
			store, err := project.LoadPresets(path)
			if err != nil {
				return err
			}
			if existing := store.FindByName(args[0]); existing != nil {
				store.Remove(existing.ID)
			}
			p := model.NewPreset(args[0], descriptionFlag, cfg)
			store.Add(p)
			if err := project.SavePresets(path, store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved preset %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	presetsDeleteCmd = &cobra.Command{
		Use:   "delete NAME|ID",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := project.DefaultPresetPath()
			store, err := project.LoadPresets(path)
			if err != nil {
				return err
			}
			p := store.FindByName(args[0])
			if p == nil {
				p = store.FindByID(args[0])
			}
			if p == nil {
				return fmt.Errorf("unknown preset %q", args[0])
			}
			name := p.Name
			store.Remove(p.ID)
			if err := project.SavePresets(path, store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted preset %s\n", name)
			return nil
		},
	}
)

func init() {
	presetsSaveCmd.Flags().StringVarP(&descriptionFlag, "description", "d", "", "Preset description")

	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsSaveCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)
}

func stockSummary(cfg model.PlanterConfig) string {
	return fmt.Sprintf("%s x %s", model.FormatInches(cfg.PlankLength), model.FormatInches(cfg.PlankWidth))
}

func boxSummary(cfg model.PlanterConfig) string {
	if cfg.Box == nil {
		return "-"
	}
	b := cfg.Box
	return fmt.Sprintf("%s x %s x %s", model.FormatInches(b.InteriorLength), model.FormatInches(b.InteriorWidth), model.FormatInches(b.Height))
}
