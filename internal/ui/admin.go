package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlanterCut/internal/importer"
	"github.com/piwi3910/PlanterCut/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.appConfig

	// Helper to create a length entry bound to a pointer
	inchEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%g", *val))
		e.OnChanged = func(text string) {
			if v, err := importer.ParseInches(text); err == nil {
				*val = v
			}
		}
		return e
	}

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.2f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil && v >= 0 {
				*val = v
			}
		}
		return e
	}

	// Theme selector
	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Plank Length (in)", inchEntry(&cfg.DefaultPlankLength)),
		widget.NewFormItem("Default Plank Width (in)", inchEntry(&cfg.DefaultPlankWidth)),
		widget.NewFormItem("Default Thickness (in)", inchEntry(&cfg.DefaultPlankThickness)),
		widget.NewFormItem("Default Kerf (in)", inchEntry(&cfg.DefaultKerf)),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Price per Plank", floatEntry(&cfg.PricePerPlank)),
		widget.NewFormItem("Waste Allowance (%)", floatEntry(&cfg.WastePercent)),
		widget.NewFormItem("Min Offcut Length (in)", inchEntry(&cfg.MinOffcutLength)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			a.appConfig = cfg
			a.theme.SetPreference(cfg.Theme)
			a.app.Settings().SetTheme(a.theme)
			a.recompute()
			if err := a.saveAppConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 550))
	d.Show()
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.appConfig, a.presets, a.stock); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("plantercut-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your settings, presets and stock catalog.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					path := reader.URI().Path()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.appConfig = backup.Config
					a.presets = backup.Presets
					a.stock = backup.Stock
					if err := a.saveAll(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported data: %w", err), a.window)
						return
					}
					a.theme.SetPreference(a.appConfig.Theme)
					a.app.Settings().SetTheme(a.theme)
					a.SetupMenus()
					a.refreshForm()
					a.recompute()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings, presets and the stock catalog to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveAppConfig persists the current preferences to disk.
func (a *App) saveAppConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.appConfig)
}

// saveAll persists preferences, presets and the stock catalog.
func (a *App) saveAll() error {
	if err := a.saveAppConfig(); err != nil {
		return err
	}
	if err := project.SavePresets(project.DefaultPresetPath(), a.presets); err != nil {
		return err
	}
	return project.SaveStockCatalog(project.DefaultStockPath(), a.stock)
}
