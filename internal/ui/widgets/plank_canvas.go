package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// Part colors, indexed by part category in display order.
var partColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
}

var (
	woodColor   = color.NRGBA{R: 210, G: 180, B: 140, A: 255}
	spareColor  = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	borderColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	pieceBorder = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

// ColorForSymbol returns the display color of the part category with the
// given symbol, or the spare color for anything else.
func ColorForSymbol(symbol string) color.NRGBA {
	for i, k := range model.PartKeys {
		if k.Symbol() == symbol {
			return partColors[i%len(partColors)]
		}
	}
	return spareColor
}

// PlankCanvas renders one plank of a layout to scale: pieces, kerf gaps,
// spares, and the strips of a ripped plank.
type PlankCanvas struct {
	widget.BaseWidget
	plank    model.Plank
	stock    model.StockConfig
	maxWidth float32
}

func NewPlankCanvas(plank model.Plank, stock model.StockConfig, maxW float32) *PlankCanvas {
	pc := &PlankCanvas{
		plank:    plank,
		stock:    stock,
		maxWidth: maxW,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *PlankCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newPlankCanvasRenderer(pc)
}

// scale returns device units per inch.
func (pc *PlankCanvas) scale() float32 {
	if pc.stock.PlankLength <= 0 {
		return 1
	}
	return pc.maxWidth / float32(pc.stock.PlankLength)
}

type plankCanvasRenderer struct {
	pc      *PlankCanvas
	objects []fyne.CanvasObject
}

func newPlankCanvasRenderer(pc *PlankCanvas) *plankCanvasRenderer {
	r := &plankCanvasRenderer{pc: pc}
	r.rebuild()
	return r
}

func (r *plankCanvasRenderer) rebuild() {
	r.objects = nil

	p := r.pc.plank
	stock := r.pc.stock
	scale := r.pc.scale()
	canvasW := float32(stock.PlankLength) * scale
	canvasH := float32(stock.PlankWidth) * scale

	bg := canvas.NewRectangle(woodColor)
	if p.Type == model.PlankSpare {
		bg.FillColor = spareColor
	}
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, bg)

	switch p.Type {
	case model.PlankRipped:
		stripH := float32(p.RipWidth) * scale
		for i, s := range p.Strips {
			r.drawRow(s.Cuts, float32(i)*stripH, stripH, scale)
		}
	case model.PlankNormal:
		rowH := canvasH
		if p.RipWidth > 0 {
			rowH = float32(p.RipWidth) * scale
		}
		r.drawRow(p.Cuts, 0, rowH, scale)
	default:
		label := canvas.NewText("spare plank", color.Black)
		label.TextSize = 10
		label.Move(fyne.NewPos(4, 2))
		r.objects = append(r.objects, label)
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = borderColor
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, border)
}

// drawRow lays out one run of cuts from the left edge, leaving a kerf gap
// between pieces.
func (r *plankCanvasRenderer) drawRow(cuts []model.Cut, y, h, scale float32) {
	x := float32(0)
	kerf := float32(r.pc.stock.Kerf) * scale
	for _, c := range cuts {
		w := float32(c.Length) * scale
		if c.Spare {
			if w > 0 {
				spare := canvas.NewRectangle(spareColor)
				spare.Resize(fyne.NewSize(w, h))
				spare.Move(fyne.NewPos(x, y))
				r.objects = append(r.objects, spare)
			}
			continue
		}

		col := ColorForSymbol(c.Label)
		for i := 0; i < c.Pieces(); i++ {
			piece := canvas.NewRectangle(col)
			piece.StrokeColor = pieceBorder
			piece.StrokeWidth = 1
			piece.Resize(fyne.NewSize(w, h))
			piece.Move(fyne.NewPos(x, y))
			r.objects = append(r.objects, piece)

			// Label (only if big enough)
			if w > 40 && h > 12 {
				label := canvas.NewText(fmt.Sprintf("%s %s", c.Label, model.FormatInches(c.Length)), color.Black)
				label.TextSize = 10
				label.Move(fyne.NewPos(x+3, y+1))
				r.objects = append(r.objects, label)
			}
			x += w + kerf
		}
	}
}

func (r *plankCanvasRenderer) Layout(size fyne.Size)        {}
func (r *plankCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *plankCanvasRenderer) Destroy()                     {}
func (r *plankCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *plankCanvasRenderer) MinSize() fyne.Size {
	scale := r.pc.scale()
	return fyne.NewSize(float32(r.pc.stock.PlankLength)*scale, float32(r.pc.stock.PlankWidth)*scale)
}

// plankHeader names a plank and how it is ripped.
func plankHeader(p model.Plank) string {
	switch p.Type {
	case model.PlankSpare:
		return p.Label + ": spare"
	case model.PlankRipped:
		return fmt.Sprintf("%s (ripped to %s, %d strips)", p.Label, model.FormatInches(p.RipWidth), len(p.Strips))
	}
	if p.RipWidth > 0 {
		return fmt.Sprintf("%s (rip to %s)", p.Label, model.FormatInches(p.RipWidth))
	}
	return p.Label
}

// RenderPlanks creates a scrollable list of every plank in the layout with
// the legend and purchasing summary underneath.
func RenderPlanks(layout model.Layout, pricePerPlank, wastePercent float64) fyne.CanvasObject {
	if !layout.Computed() {
		return widget.NewLabel("Configuration incomplete. Fill in the stock and box dimensions.")
	}

	var items []fyne.CanvasObject
	for _, p := range layout.Planks {
		header := widget.NewLabel(plankHeader(p))
		header.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, header, NewPlankCanvas(p, layout.StockConfig, 720))
	}

	items = append(items, widget.NewSeparator())
	legendHeader := widget.NewLabel("Legend:")
	legendHeader.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, legendHeader)
	for _, item := range layout.Legend {
		items = append(items, widget.NewLabel(item.Symbol+" "+item.Description))
	}

	est := model.CalculatePurchaseEstimate(layout, pricePerPlank, wastePercent)
	summaryText := fmt.Sprintf(
		"Total: %d planks (%d with %.0f%% waste allowance), %.2f board feet, %.1f%% efficiency",
		est.PlanksNeeded, est.PlanksWithWaste, wastePercent, est.TotalBoardFeet, est.Efficiency(),
	)
	if pricePerPlank > 0 {
		summaryText += fmt.Sprintf(" | Estimated cost: %.2f", est.EstimatedCost)
	}
	summary := widget.NewLabel(summaryText)
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	offcuts := model.DetectOffcuts(layout, model.DefaultMinOffcutLength)
	if len(offcuts) > 0 {
		items = append(items, widget.NewLabel(fmt.Sprintf(
			"Reusable offcuts: %d pieces, %s total", len(offcuts), model.FormatInches(model.TotalOffcutLength(offcuts)),
		)))
	}

	return container.NewVScroll(container.NewVBox(items...))
}
