package ui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlanterCut/internal/export"
	"github.com/piwi3910/PlanterCut/internal/importer"
	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/share"
)

type exportKind int

const (
	exportPDF exportKind = iota
	exportDXF
	exportXLSX
	exportSVG
)

var exportExtensions = map[exportKind]string{
	exportPDF:  ".pdf",
	exportDXF:  ".dxf",
	exportXLSX: ".xlsx",
	exportSVG:  ".svg",
}

// exportFile asks for a destination and writes the current plan in the
// given format.
func (a *App) exportFile(kind exportKind) {
	if a.layoutErr != nil {
		dialog.ShowError(a.layoutErr, a.window)
		return
	}
	if !a.layout.Computed() {
		dialog.ShowError(export.ErrNothingToExport, a.window)
		return
	}

	ext := exportExtensions[kind]
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()

		switch kind {
		case exportPDF:
			link, linkErr := share.Link(a.shareBaseURL, a.config)
			if linkErr != nil {
				link = ""
			}
			err = export.ExportPDF(path, a.layout, a.scene, link)
		case exportDXF:
			err = export.ExportDXF(path, a.layout)
		case exportXLSX:
			err = export.ExportXLSX(path, a.layout)
		case exportSVG:
			if a.sceneErr != nil {
				err = a.sceneErr
				break
			}
			err = export.WriteSVG(writer, a.scene)
		}
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved %s", path), a.window)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	name := fileStem(a.config.Title)
	if name == "" {
		name = "planter"
	}
	d.SetFileName(name + ext)
	d.Show()
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importCSV() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.applyImport(importer.ImportCSV(reader.URI().Path(), a.config))
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".tsv", ".txt"}))
	d.Show()
}

func (a *App) importExcel() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.applyImport(importer.ImportExcel(reader.URI().Path(), a.config))
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx", ".xlsm"}))
	d.Show()
}

// applyImport replaces the configuration with an import result and reports
// what was read. Nothing changes when the import produced errors.
func (a *App) applyImport(res importer.ImportResult) {
	if len(res.Errors) > 0 {
		dialog.ShowError(errors.New(strings.Join(res.Errors, "\n")), a.window)
		return
	}
	a.setConfig(res.Config, "Import Settings")

	msg := fmt.Sprintf("Imported %d settings.", len(res.Applied))
	if len(res.Warnings) > 0 {
		msg += "\n\nWarnings:\n" + strings.Join(res.Warnings, "\n")
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

func (a *App) importFootprint() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		fp, err := importer.ImportFootprintDXF(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		cfg := a.config.Clone()
		fp.Apply(&cfg)
		a.setConfig(cfg, "Import Footprint")

		msg := fmt.Sprintf("Interior set to %s x %s.", model.FormatInches(fp.Length), model.FormatInches(fp.Width))
		if len(fp.Warnings) > 0 {
			msg += "\n\n" + strings.Join(fp.Warnings, "\n")
		}
		dialog.ShowInformation("Footprint Imported", msg, a.window)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".dxf"}))
	d.Show()
}

// ─── Share ─────────────────────────────────────────────────

// showShareDialog shows the share link of the current configuration with
// its QR code, and accepts a pasted link to open.
func (a *App) showShareDialog() {
	link, err := share.Link(a.shareBaseURL, a.config)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	linkEntry := widget.NewEntry()
	linkEntry.SetText(link)

	copyBtn := widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), func() {
		a.window.Clipboard().SetContent(link)
		a.statusLabel.SetText("Share link copied")
	})

	var qr fyne.CanvasObject = widget.NewLabel("QR code unavailable")
	if png, err := share.QRCode(link, share.DefaultQRSize); err == nil {
		img := canvas.NewImageFromResource(fyne.NewStaticResource("share.png", png))
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(200, 200))
		qr = img
	}

	saveQR := widget.NewButtonWithIcon("Save QR...", theme.DocumentSaveIcon(), func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			writer.Close()
			if err := share.WriteQRCode(link, share.DefaultQRSize, writer.URI().Path()); err != nil {
				dialog.ShowError(err, a.window)
			}
		}, a.window)
		d.SetFileName(fileStem(a.config.Title) + "-qr.png")
		d.Show()
	})

	openEntry := widget.NewEntry()
	openEntry.SetPlaceHolder("Paste a share link to open it")
	openBtn := widget.NewButton("Open", func() {
		cfg, err := share.FromLink(strings.TrimSpace(openEntry.Text), a.newConfig())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.setConfig(cfg, "Open Share Link")
		a.projectPath = ""
	})

	content := container.NewVBox(
		widget.NewLabel("Anyone with this link can open the plan:"),
		container.NewBorder(nil, nil, nil, copyBtn, linkEntry),
		container.NewCenter(qr),
		container.NewCenter(saveQR),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, openBtn, openEntry),
	)
	d := dialog.NewCustom("Share Plan", "Close", content, a.window)
	d.Resize(fyne.NewSize(520, 480))
	d.Show()
}
