package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlanterCut/internal/engine"
	"github.com/piwi3910/PlanterCut/internal/model"
)

// refreshCompare lays out the current box on alternative stock and lists
// the results side by side.
func (a *App) refreshCompare() {
	if a.compareContainer == nil {
		return
	}
	a.compareContainer.RemoveAll()
	defer a.compareContainer.Refresh()

	if a.config.Box == nil {
		a.compareContainer.Add(widget.NewLabel("Add box dimensions to compare stock."))
		return
	}

	results := engine.CompareScenarios(engine.BuildDefaultScenarios(a.config.StockConfig), a.config)
	a.compareContainer.Add(container.NewVScroll(buildCompareTable(results, a.applyScenario)))
}

// applyScenario switches the project to the stock of a compared scenario.
func (a *App) applyScenario(s engine.ComparisonScenario) {
	cfg := a.config.Clone()
	cfg.StockConfig = s.Stock
	a.setConfig(cfg, "Use "+s.Name)
	a.tabs.SelectIndex(0)
}

func buildCompareTable(results []engine.ComparisonResult, apply func(engine.ComparisonScenario)) fyne.CanvasObject {
	bold := fyne.TextStyle{Bold: true}
	grid := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Stock", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Planks", fyne.TextAlignTrailing, bold),
		widget.NewLabelWithStyle("Offcuts", fyne.TextAlignTrailing, bold),
		widget.NewLabelWithStyle("Efficiency", fyne.TextAlignTrailing, bold),
		widget.NewLabel(""),
	)

	for _, r := range results {
		scenario := r.Scenario
		stock := fmt.Sprintf("%s x %s, kerf %s",
			model.FormatInches(scenario.Stock.PlankLength),
			model.FormatInches(scenario.Stock.PlankWidth),
			model.FormatInches(scenario.Stock.Kerf))

		grid.Add(widget.NewLabel(scenario.Name))
		grid.Add(widget.NewLabel(stock))
		if r.Err != nil || !r.Layout.Computed() {
			msg := "incomplete"
			switch {
			case errors.Is(r.Err, engine.ErrTooManyPieces):
				msg = "too many pieces"
			case r.Err != nil:
				msg = "does not fit"
			}
			grid.Add(widget.NewLabelWithStyle(msg, fyne.TextAlignTrailing, fyne.TextStyle{Italic: true}))
			grid.Add(widget.NewLabel(""))
			grid.Add(widget.NewLabel(""))
			grid.Add(widget.NewLabel(""))
			continue
		}
		grid.Add(widget.NewLabelWithStyle(fmt.Sprintf("%d", r.PlanksUsed), fyne.TextAlignTrailing, fyne.TextStyle{}))
		grid.Add(widget.NewLabelWithStyle(model.FormatInches(r.OffcutLength), fyne.TextAlignTrailing, fyne.TextStyle{}))
		grid.Add(widget.NewLabelWithStyle(fmt.Sprintf("%.1f%%", r.Efficiency), fyne.TextAlignTrailing, fyne.TextStyle{}))
		grid.Add(widget.NewButton("Use", func() { apply(scenario) }))
	}

	return widget.NewCard("Stock Comparison", "Planks needed for this box on other stock", grid)
}
