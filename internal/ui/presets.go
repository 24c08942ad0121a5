package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/project"
)

// showSavePresetDialog stores the current configuration as a named preset.
// Saving under an existing name overwrites that preset.
func (a *App) showSavePresetDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.config.Title)
	descEntry := widget.NewMultiLineEntry()
	descEntry.SetPlaceHolder("Optional description")

	dialog.ShowForm("Save as Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			if nameEntry.Text == "" {
				dialog.ShowError(fmt.Errorf("preset name is required"), a.window)
				return
			}
			if existing := a.presets.FindByName(nameEntry.Text); existing != nil {
				existing.Description = descEntry.Text
				existing.Config = a.config.Clone()
				existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			} else {
				a.presets.Add(model.NewPreset(nameEntry.Text, descEntry.Text, a.config))
			}
			a.savePresets()
		},
		a.window,
	)
}

// showPresetsDialog lists saved presets for loading or deletion.
func (a *App) showPresetsDialog() {
	list := container.NewVBox()
	var d dialog.Dialog
	var refresh func()

	refresh = func() {
		list.RemoveAll()
		if len(a.presets.Presets) == 0 {
			list.Add(widget.NewLabel("No presets saved yet. Use Tools > Save as Preset."))
			return
		}
		for _, p := range a.presets.Presets {
			preset := p
			info := preset.Name
			if preset.Description != "" {
				info += "\n" + preset.Description
			}
			label := widget.NewLabel(info)
			label.Wrapping = fyne.TextWrapWord

			load := widget.NewButtonWithIcon("Load", theme.DocumentIcon(), func() {
				a.setConfig(preset.ToConfig(), "Load Preset")
				a.projectPath = ""
				d.Hide()
			})
			remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				dialog.ShowConfirm("Delete Preset",
					fmt.Sprintf("Delete preset %q?", preset.Name),
					func(ok bool) {
						if !ok {
							return
						}
						a.presets.Remove(preset.ID)
						a.savePresets()
						refresh()
					}, a.window)
			})
			list.Add(container.NewBorder(nil, nil, nil, container.NewHBox(load, remove), label))
			list.Add(widget.NewSeparator())
		}
	}
	refresh()

	d = dialog.NewCustom("Presets", "Close", container.NewVScroll(list), a.window)
	d.Resize(fyne.NewSize(500, 420))
	d.Show()
}

// savePresets persists the preset store to disk.
func (a *App) savePresets() {
	if err := project.SavePresets(project.DefaultPresetPath(), a.presets); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save presets: %w", err), a.window)
	}
}
