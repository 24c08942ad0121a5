package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/ui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the desktop application",
	RunE: func(cmd *cobra.Command, args []string) error {
		var initial *model.PlanterConfig
		if configFlag != "" || shareFlag != "" || presetFlag != "" || stockFlag != "" || env.ConfigPath != "" {
			cfg, err := loadPlanterConfig()
			if err != nil {
				return err
			}
			initial = &cfg
		}

		application := app.NewWithID("com.piwi3910.plantercut")
		window := application.NewWindow("PlanterCut - Planter Box Cut List Planner")

		appUI := ui.NewApp(application, window, initial, env.ShareBaseURL)
		appUI.SetupMenus() // Setup the native menu bar
		window.SetContent(appUI.Build())
		window.Resize(fyne.NewSize(1280, 800))
		window.CenterOnScreen()
		window.ShowAndRun()
		return nil
	},
}
