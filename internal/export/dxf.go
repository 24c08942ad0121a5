package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// DXF layer names.
const (
	layerPlanks = "PLANKS"
	layerCuts   = "CUTS"
	layerRips   = "RIPS"
	layerLabels = "LABELS"
)

// dxfPlankGap is the vertical space between planks in the drawing, in inches.
const dxfPlankGap = 2.0

// dxfTextHeight is the label height in inches.
const dxfTextHeight = 0.75

// ExportDXF writes a 1:1 drawing of the cut list in inches, one plank
// outline per plank stacked top to bottom, with crosscut lines on the CUTS
// layer and rip lines on the RIPS layer.
func ExportDXF(path string, layout model.Layout) error {
	if !layout.Computed() || len(layout.Planks) == 0 {
		return ErrNothingToExport
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name string
		cl   color.ColorNumber
	}{
		{layerPlanks, color.White},
		{layerCuts, color.Red},
		{layerRips, color.Blue},
		{layerLabels, color.Green},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.cl, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	w := &dxfWriter{d: d}
	for i, p := range layout.Planks {
		top := -float64(i) * (layout.PlankWidth + dxfPlankGap)
		w.plank(p, layout.StockConfig, top)
	}
	if w.err != nil {
		return fmt.Errorf("failed to draw cut list: %w", w.err)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write dxf: %w", err)
	}
	return nil
}

// dxfWriter keeps the first drawing error so the geometry code stays linear.
type dxfWriter struct {
	d   *drawing.Drawing
	err error
}

func (w *dxfWriter) layer(name string) {
	if w.err == nil {
		w.err = w.d.ChangeLayer(name)
	}
}

func (w *dxfWriter) line(x1, y1, x2, y2 float64) {
	if w.err == nil {
		_, w.err = w.d.Line(x1, y1, 0, x2, y2, 0)
	}
}

func (w *dxfWriter) text(s string, x, y float64) {
	if w.err == nil {
		_, w.err = w.d.Text(s, x, y, 0, dxfTextHeight)
	}
}

func (w *dxfWriter) rect(x, y, width, height float64) {
	w.line(x, y, x+width, y)
	w.line(x+width, y, x+width, y+height)
	w.line(x+width, y+height, x, y+height)
	w.line(x, y+height, x, y)
}

// plank draws one plank whose top edge sits at y = top.
func (w *dxfWriter) plank(p model.Plank, stock model.StockConfig, top float64) {
	bottom := top - stock.PlankWidth

	w.layer(layerPlanks)
	w.rect(0, bottom, stock.PlankLength, stock.PlankWidth)
	w.layer(layerLabels)
	w.text(p.Label, -12, bottom+stock.PlankWidth/2)

	switch p.Type {
	case model.PlankRipped:
		for i, s := range p.Strips {
			stripTop := top - float64(i)*p.RipWidth
			stripBottom := stripTop - p.RipWidth
			if stripBottom > bottom {
				w.layer(layerRips)
				w.line(0, stripBottom, stock.PlankLength, stripBottom)
			}
			w.row(s.Cuts, stock, stripBottom, stripTop)
		}
	case model.PlankNormal:
		w.row(p.Cuts, stock, bottom, top)
		if p.RipWidth > 0 && p.RipWidth < stock.PlankWidth {
			w.layer(layerRips)
			w.line(0, top-p.RipWidth, stock.PlankLength, top-p.RipWidth)
		}
	}
}

// row draws the crosscut after every piece of a strip spanning y0..y1.
func (w *dxfWriter) row(cuts []model.Cut, stock model.StockConfig, y0, y1 float64) {
	x := 0.0
	for _, c := range cuts {
		if c.Spare {
			continue
		}
		for i := 0; i < c.Pieces(); i++ {
			end := x + c.Length
			if end < stock.PlankLength {
				w.layer(layerCuts)
				w.line(end, y0, end, y1)
			}
			w.layer(layerLabels)
			w.text(plainSymbol(c.Label), x+c.Length/2, y0+(y1-y0)/2)
			x = end + stock.Kerf
		}
	}
}
