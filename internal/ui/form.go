package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlanterCut/internal/importer"
	"github.com/piwi3910/PlanterCut/internal/model"
)

// refreshForm rebuilds the configuration panel from a.config. It is called
// when the whole configuration is replaced, not on every keystroke, so the
// focused entry keeps its cursor while typing.
func (a *App) refreshForm() {
	if a.formContainer == nil {
		return
	}
	a.formContainer.RemoveAll()
	a.formContainer.Add(container.NewVBox(
		a.buildStockCard(),
		a.buildBoxCard(),
	))
	a.formContainer.Refresh()
}

func (a *App) buildStockCard() fyne.CanvasObject {
	title := widget.NewEntry()
	title.SetText(a.config.Title)
	title.OnChanged = func(s string) {
		a.mutate("Change Title", func(cfg *model.PlanterConfig) { cfg.Title = s })
	}

	stockSelect := widget.NewSelect(a.stock.Names(), func(name string) {
		preset := a.stock.FindByName(name)
		if preset == nil {
			return
		}
		cfg := a.config.Clone()
		preset.Apply(&cfg)
		a.setConfig(cfg, "Select Stock")
	})
	stockSelect.PlaceHolder = "Pick from catalog..."

	spare := widget.NewEntry()
	spare.SetText(strconv.Itoa(a.config.SparePlanks))
	spare.OnChanged = func(s string) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return
		}
		a.mutate("Change Spare Planks", func(cfg *model.PlanterConfig) { cfg.SparePlanks = n })
	}

	form := widget.NewForm(
		widget.NewFormItem("Title", title),
		widget.NewFormItem("Stock", stockSelect),
		widget.NewFormItem("Plank Length", a.inchEntry("Change Plank Length", a.config.PlankLength,
			func(cfg *model.PlanterConfig, v float64) { cfg.PlankLength = v })),
		widget.NewFormItem("Plank Width", a.inchEntry("Change Plank Width", a.config.PlankWidth,
			func(cfg *model.PlanterConfig, v float64) { cfg.PlankWidth = v })),
		widget.NewFormItem("Thickness", a.inchEntry("Change Thickness", a.config.PlankThickness,
			func(cfg *model.PlanterConfig, v float64) { cfg.PlankThickness = v })),
		widget.NewFormItem("Kerf", a.inchEntry("Change Kerf", a.config.Kerf,
			func(cfg *model.PlanterConfig, v float64) { cfg.Kerf = v })),
		widget.NewFormItem("Spare Planks", spare),
	)
	return widget.NewCard("Stock", "", form)
}

func (a *App) buildBoxCard() fyne.CanvasObject {
	if a.config.Box == nil {
		add := widget.NewButton("Add Box", func() {
			cfg := a.config.Clone()
			cfg.Box = model.DefaultConfig().Box
			a.setConfig(cfg, "Add Box")
		})
		return widget.NewCard("Box", "No box dimensions yet", add)
	}
	box := a.config.Box

	boxEntry := func(label string, v float64, set func(b *model.BoxConfig, v float64)) *widget.Entry {
		return a.inchEntry(label, v, func(cfg *model.PlanterConfig, v float64) {
			if cfg.Box != nil {
				set(cfg.Box, v)
			}
		})
	}

	rimWidth := boxEntry("Change Rim Width", box.TopRimWidth, func(b *model.BoxConfig, v float64) { b.TopRimWidth = v })
	if !box.HasTopRim {
		rimWidth.Disable()
	}
	hasRim := widget.NewCheck("", nil)
	hasRim.SetChecked(box.HasTopRim)
	hasRim.OnChanged = func(on bool) {
		if on {
			rimWidth.Enable()
		} else {
			rimWidth.Disable()
		}
		a.mutate("Toggle Top Rim", func(cfg *model.PlanterConfig) { cfg.Box.HasTopRim = on })
	}

	slats := widget.NewEntry()
	slats.SetPlaceHolder("auto")
	if box.BottomSlats != nil {
		slats.SetText(strconv.Itoa(*box.BottomSlats))
	}
	slats.OnChanged = func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			a.mutate("Change Bottom Slats", func(cfg *model.PlanterConfig) { cfg.Box.BottomSlats = nil })
			return
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return
		}
		a.mutate("Change Bottom Slats", func(cfg *model.PlanterConfig) { cfg.Box.BottomSlats = model.IntPtr(n) })
	}

	form := widget.NewForm(
		widget.NewFormItem("Interior Length", boxEntry("Change Interior Length", box.InteriorLength,
			func(b *model.BoxConfig, v float64) { b.InteriorLength = v })),
		widget.NewFormItem("Interior Width", boxEntry("Change Interior Width", box.InteriorWidth,
			func(b *model.BoxConfig, v float64) { b.InteriorWidth = v })),
		widget.NewFormItem("Height", boxEntry("Change Height", box.Height,
			func(b *model.BoxConfig, v float64) { b.Height = v })),
		widget.NewFormItem("Leg Width", boxEntry("Change Leg Width", box.LegWidth,
			func(b *model.BoxConfig, v float64) { b.LegWidth = v })),
		widget.NewFormItem("Leg Gap", boxEntry("Change Leg Gap", box.LegGap,
			func(b *model.BoxConfig, v float64) { b.LegGap = v })),
		widget.NewFormItem("Top Rim", hasRim),
		widget.NewFormItem("Rim Width", rimWidth),
		widget.NewFormItem("Bottom Slats", slats),
	)

	remove := widget.NewButton("Remove Box", func() {
		cfg := a.config.Clone()
		cfg.Box = nil
		a.setConfig(cfg, "Remove Box")
	})
	return widget.NewCard("Box", "Interior dimensions", container.NewVBox(form, remove))
}

// inchEntry creates an entry for a length in inches. Fractions such as
// 5 1/2 are accepted; text that does not parse leaves the config alone.
func (a *App) inchEntry(label string, value float64, set func(cfg *model.PlanterConfig, v float64)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(model.FormatNumber(value))
	e.Validator = func(s string) error {
		_, err := importer.ParseInches(s)
		return err
	}
	e.OnChanged = func(s string) {
		v, err := importer.ParseInches(s)
		if err != nil {
			return
		}
		a.mutate(label, func(cfg *model.PlanterConfig) { set(cfg, v) })
	}
	return e
}
