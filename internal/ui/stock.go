package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlanterCut/internal/importer"
	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/project"
)

// ─── Stock Catalog Dialog ──────────────────────────────────

func (a *App) showStockCatalogDialog() {
	stockList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		stockList.RemoveAll()

		if len(a.stock.Stocks) == 0 {
			stockList.Add(widget.NewLabel("No stock presets defined."))
			return
		}

		bold := fyne.TextStyle{Bold: true}
		header := container.NewGridWithColumns(8,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Length", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Thickness", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Kerf", fyne.TextAlignLeading, bold),
			widget.NewLabel(""),
			widget.NewLabel(""),
			widget.NewLabel(""),
		)
		stockList.Add(header)
		stockList.Add(widget.NewSeparator())

		for i := range a.stock.Stocks {
			idx := i
			s := a.stock.Stocks[idx]
			row := container.NewGridWithColumns(8,
				widget.NewLabel(s.Name),
				widget.NewLabel(model.FormatInches(s.PlankLength)),
				widget.NewLabel(model.FormatInches(s.PlankWidth)),
				widget.NewLabel(model.FormatInches(s.PlankThickness)),
				widget.NewLabel(model.FormatInches(s.Kerf)),
				widget.NewButton("Use", func() {
					cfg := a.config.Clone()
					a.stock.Stocks[idx].Apply(&cfg)
					a.setConfig(cfg, "Use "+a.stock.Stocks[idx].Name)
				}),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showStockPresetDialog(idx, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.stock.Stocks = append(a.stock.Stocks[:idx], a.stock.Stocks[idx+1:]...)
					a.saveStockCatalog()
					refreshList()
				}),
			)
			stockList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Stock", theme.ContentAddIcon(), func() {
		a.showStockPresetDialog(-1, refreshList)
	})

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importStockCatalog(refreshList)
	})

	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportStockCatalog()
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn)

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(stockList),
	)

	d := dialog.NewCustom("Stock Catalog", "Close", content, a.window)
	d.Resize(fyne.NewSize(760, 500))
	d.Show()
}

// showStockPresetDialog edits the preset at idx, or adds a new one built
// from the current project stock when idx is negative.
func (a *App) showStockPresetDialog(idx int, onDone func()) {
	title := "Edit Stock"
	confirm := "Save"
	s := model.StockPreset{Name: "New Stock", StockConfig: a.config.StockConfig}
	if idx < 0 {
		title, confirm = "Add Stock", "Add"
	} else {
		s = a.stock.Stocks[idx]
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(s.Name)
	lengthEntry := widget.NewEntry()
	lengthEntry.SetText(model.FormatNumber(s.PlankLength))
	widthEntry := widget.NewEntry()
	widthEntry.SetText(model.FormatNumber(s.PlankWidth))
	thicknessEntry := widget.NewEntry()
	thicknessEntry.SetText(model.FormatNumber(s.PlankThickness))
	kerfEntry := widget.NewEntry()
	kerfEntry.SetText(model.FormatNumber(s.Kerf))

	form := dialog.NewForm(title, confirm, "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Length (in)", lengthEntry),
			widget.NewFormItem("Width (in)", widthEntry),
			widget.NewFormItem("Thickness (in)", thicknessEntry),
			widget.NewFormItem("Kerf (in)", kerfEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			l, errL := importer.ParseInches(lengthEntry.Text)
			w, errW := importer.ParseInches(widthEntry.Text)
			th, _ := importer.ParseInches(thicknessEntry.Text)
			k, errK := importer.ParseInches(kerfEntry.Text)
			if errL != nil || errW != nil || errK != nil || l <= 0 || w <= 0 || k < 0 {
				dialog.ShowError(fmt.Errorf("length and width must be > 0 and kerf must not be negative"), a.window)
				return
			}
			if nameEntry.Text == "" {
				dialog.ShowError(fmt.Errorf("name is required"), a.window)
				return
			}

			preset := model.NewStockPreset(nameEntry.Text, l, w, th, k)
			if idx < 0 {
				a.stock.Stocks = append(a.stock.Stocks, preset)
			} else {
				a.stock.Stocks[idx] = preset
			}
			a.saveStockCatalog()
			a.refreshForm()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 380))
	form.Show()
}

// ─── Import / Export ───────────────────────────────────────

func (a *App) importStockCatalog(onDone func()) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, err := project.ImportStockCatalog(reader.URI().Path(), a.stock)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.stock = merged
		a.saveStockCatalog()
		a.refreshForm()
		onDone()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Catalog now contains %d stock presets.", len(a.stock.Stocks)),
			a.window)
	}, a.window)
}

func (a *App) exportStockCatalog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := project.SaveStockCatalog(writer.URI().Path(), a.stock); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Stock catalog exported to %s", writer.URI().Path()),
				a.window)
		}
	}, a.window)
	d.SetFileName("stock.json")
	d.Show()
}

// saveStockCatalog persists the catalog to disk.
func (a *App) saveStockCatalog() {
	if err := project.SaveStockCatalog(project.DefaultStockPath(), a.stock); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save stock catalog: %w", err), a.window)
	}
}
