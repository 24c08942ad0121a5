package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/PlanterCut/internal/diagram"
	"github.com/piwi3910/PlanterCut/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	labelColumn  = 22.0 // plank label to the left of each bar
	rowHeight    = 7.0  // bar height of a normal plank
	stripHeight  = 4.0  // bar height of one strip of a ripped plank
	plankSpacing = 3.0
	qrSize       = 30.0
)

// ExportPDF generates a printable cut list: the legend and one bar per
// plank, followed by a page with the assembly drawing. When shareLink is
// set, a QR code of it is printed on the first page.
func ExportPDF(path string, layout model.Layout, scene diagram.Scene, shareLink string) error {
	if !layout.Computed() {
		return ErrNothingToExport
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	y := renderHeader(pdf, tr, layout)

	if shareLink != "" {
		if err := drawShareQR(pdf, shareLink); err != nil {
			return err
		}
	}

	y = renderLegend(pdf, tr, layout, y)
	y = renderSummary(pdf, layout, y)
	renderPlanks(pdf, tr, layout, y+4)

	if len(scene.Sections) > 0 {
		pdf.AddPage()
		renderScene(pdf, tr, scene)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// renderHeader draws the page title and returns the y position below it.
func renderHeader(pdf *fpdf.Fpdf, tr func(string) string, layout model.Layout) float64 {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight-qrSize, headerHeight, tr(cutListTitle(layout)), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+headerHeight, pageWidth-marginRight-qrSize-5, marginTop+headerHeight)
	return marginTop + headerHeight + 3
}

// drawShareQR places a QR code of the share link in the top right corner.
func drawShareQR(pdf *fpdf.Fpdf, link string) error {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("share_qr", opts, bytes.NewReader(png))
	x := pageWidth - marginRight - qrSize
	pdf.ImageOptions("share_qr", x, marginTop, qrSize, qrSize, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(x, marginTop+qrSize)
	pdf.CellFormat(qrSize, 3, "Scan to open this plan", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

func renderLegend(pdf *fpdf.Fpdf, tr func(string) string, layout model.Layout, y float64) float64 {
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range layout.Legend {
		col := colorForSymbol(item.Symbol)
		if item.Symbol != "📦" {
			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.Rect(marginLeft, y+1, 3, 3, "F")
		}
		pdf.SetXY(marginLeft+5, y)
		text := item.Description
		if s := plainSymbol(item.Symbol); s != "" {
			text = s + "  " + text
		}
		pdf.CellFormat(200, 5, tr(text), "", 0, "L", false, 0, "")
		y += 5
	}
	return y + 2
}

// renderSummary prints the purchasing totals below the legend.
func renderSummary(pdf *fpdf.Fpdf, layout model.Layout, y float64) float64 {
	est := model.CalculatePurchaseEstimate(layout, 0, 0)
	offcuts := model.DetectOffcuts(layout, model.DefaultMinOffcutLength)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(marginLeft, y)
	stats := fmt.Sprintf("Planks: %d | Board feet: %.2f | Efficiency: %.1f%% | Reusable offcuts: %d (%s)",
		est.PlanksNeeded, est.TotalBoardFeet, est.Efficiency(), len(offcuts),
		model.FormatInches(model.TotalOffcutLength(offcuts)))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return y + 6
}

// plankHeight returns the bar height a plank needs on the page.
func plankHeight(p model.Plank) float64 {
	if p.Type == model.PlankRipped && len(p.Strips) > 0 {
		return float64(len(p.Strips)) * stripHeight
	}
	return rowHeight
}

// renderPlanks draws every plank as a bar scaled to the page width, adding
// pages as needed.
func renderPlanks(pdf *fpdf.Fpdf, tr func(string) string, layout model.Layout, y float64) {
	drawWidth := pageWidth - marginLeft - marginRight - labelColumn
	scale := drawWidth / layout.PlankLength
	barX := marginLeft + labelColumn

	for _, p := range layout.Planks {
		h := plankHeight(p)
		if y+h > pageHeight-marginBottom {
			pdf.AddPage()
			y = marginTop
		}

		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(labelColumn-2, math.Min(h, rowHeight), p.Label, "", 0, "L", false, 0, "")
		if p.RipWidth > 0 {
			pdf.SetFont("Helvetica", "I", 6)
			pdf.SetXY(marginLeft, y+math.Min(h, rowHeight)-1)
			pdf.CellFormat(labelColumn-2, 3, tr("rip "+model.FormatInches(p.RipWidth)), "", 0, "L", false, 0, "")
		}

		switch p.Type {
		case model.PlankSpare:
			drawSegment(pdf, barX, y, layout.PlankLength*scale, h, spareColor, "spare plank")
		case model.PlankRipped:
			for i, s := range p.Strips {
				drawRow(pdf, tr, s.Cuts, barX, y+float64(i)*stripHeight, stripHeight, scale, layout.Kerf)
			}
		default:
			drawRow(pdf, tr, p.Cuts, barX, y, h, scale, layout.Kerf)
		}

		// Plank outline
		pdf.SetDrawColor(60, 60, 60)
		pdf.SetLineWidth(0.4)
		pdf.Rect(barX, y, layout.PlankLength*scale, h, "D")

		y += h + plankSpacing
	}
}

// drawRow draws one run of cuts left to right, leaving a kerf gap between
// pieces.
func drawRow(pdf *fpdf.Fpdf, tr func(string) string, cuts []model.Cut, x, y, h, scale, kerf float64) {
	for _, c := range cuts {
		if c.Spare {
			if c.Length > 0 {
				drawSegment(pdf, x, y, c.Length*scale, h, spareColor, "")
			}
			continue
		}
		col := colorForSymbol(c.Label)
		for i := 0; i < c.Pieces(); i++ {
			text := plainSymbol(c.Label) + " " + model.FormatInches(c.Length)
			drawSegment(pdf, x, y, c.Length*scale, h, col, tr(text))
			x += (c.Length + kerf) * scale
		}
	}
}

func drawSegment(pdf *fpdf.Fpdf, x, y, w, h float64, col partColor, text string) {
	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x, y, w, h, "FD")

	if text == "" {
		return
	}
	pdf.SetFont("Helvetica", "", math.Min(7, h*2))
	if tw := pdf.GetStringWidth(text); tw < w-1 {
		pdf.SetXY(x+(w-tw)/2, y)
		pdf.CellFormat(tw, h, text, "", 0, "C", false, 0, "")
	}
}

// renderScene draws the assembly drawing scaled to fit the page.
func renderScene(pdf *fpdf.Fpdf, tr func(string) string, scene diagram.Scene) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Assembly Diagram", "", 0, "C", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - marginTop - headerHeight - marginBottom
	s := math.Min(drawWidth/scene.Width, drawHeight/scene.Height)
	ox := marginLeft + (drawWidth-scene.Width*s)/2
	oy := marginTop + headerHeight

	for _, sec := range scene.Sections {
		for _, el := range sec.Elements {
			switch el.Kind {
			case diagram.KindRect:
				drawSceneRect(pdf, el, ox, oy, s)
			case diagram.KindText:
				col, ok := parseHexColor(el.Fill)
				if !ok {
					col = partColor{}
				}
				style := ""
				if el.Weight == "bold" {
					style = "B"
				}
				pdf.SetTextColor(col.R, col.G, col.B)
				pdf.SetFont("Helvetica", style, 10)
				pdf.SetFontUnitSize(el.FontSize * s)
				pdf.Text(ox+el.X*s, oy+el.Y*s, tr(plainSymbol(el.Content)))
			}
		}
	}
	pdf.SetTextColor(0, 0, 0)
}

func drawSceneRect(pdf *fpdf.Fpdf, el diagram.Element, ox, oy, s float64) {
	style := ""
	if fill, ok := parseHexColor(el.Fill); ok {
		pdf.SetFillColor(fill.R, fill.G, fill.B)
		style += "F"
	}
	if stroke, ok := parseHexColor(el.Stroke); ok {
		pdf.SetDrawColor(stroke.R, stroke.G, stroke.B)
		style += "D"
	}
	if style == "" {
		return
	}

	width := el.StrokeWidth
	if width == 0 {
		width = 2
	}
	pdf.SetLineWidth(width * s)
	dash := parseDash(el.Dash)
	for i := range dash {
		dash[i] *= s
	}
	if len(dash) > 0 {
		pdf.SetDashPattern(dash, 0)
	}
	pdf.Rect(ox+el.X*s, oy+el.Y*s, el.Width*s, el.Height*s, style)
	if len(dash) > 0 {
		pdf.SetDashPattern([]float64{}, 0)
	}
}
