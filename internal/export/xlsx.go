package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// Sheet names of the cut list workbook.
const (
	sheetPlanks  = "Planks"
	sheetParts   = "Parts"
	sheetSummary = "Summary"
)

// ExportXLSX writes the cut list as a workbook with a Planks sheet (one row
// per plank), a Parts sheet (one row per part category) and a Summary sheet.
func ExportXLSX(path string, layout model.Layout) error {
	if !layout.Computed() {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetPlanks); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	for _, name := range []string{sheetParts, sheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	writers := []func(*excelize.File, model.Layout, int) error{writePlanksSheet, writePartsSheet, writeSummarySheet}
	for _, write := range writers {
		if err := write(f, layout, bold); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// writeRows fills a sheet from A1 down, styling the first row as a header.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}

func writePlanksSheet(f *excelize.File, layout model.Layout, bold int) error {
	rows := [][]interface{}{{"Plank", "Type", "Rip Width (in)", "Cuts", "Spare (in)"}}
	for _, p := range layout.Planks {
		var ripWidth interface{}
		if p.RipWidth > 0 {
			ripWidth = p.RipWidth
		}

		cuts := ""
		spare := 0.0
		for i, row := range p.Rows() {
			if i > 0 {
				cuts += " / "
			}
			cuts += cutSummary(row)
			for _, c := range row {
				if c.Spare {
					spare += c.Length
				}
			}
		}
		if p.Type == model.PlankSpare {
			spare = layout.PlankLength
		}
		rows = append(rows, []interface{}{p.Label, string(p.Type), ripWidth, cuts, spare})
	}

	if err := writeRows(f, sheetPlanks, rows, bold); err != nil {
		return err
	}
	return f.SetColWidth(sheetPlanks, "D", "D", 60)
}

func writePartsSheet(f *excelize.File, layout model.Layout, bold int) error {
	rows := [][]interface{}{{"Symbol", "Part", "Count", "Length (in)", "Width (in)"}}
	layout.Parts.Each(func(k model.PartKey, p model.Part) {
		if p.Count > 0 {
			rows = append(rows, []interface{}{p.Symbol, k.Humanize(), p.Count, p.Length, p.Width})
		}
	})
	if err := writeRows(f, sheetParts, rows, bold); err != nil {
		return err
	}
	return f.SetColWidth(sheetParts, "B", "B", 22)
}

func writeSummarySheet(f *excelize.File, layout model.Layout, bold int) error {
	est := model.CalculatePurchaseEstimate(layout, 0, 0)
	offcuts := model.DetectOffcuts(layout, model.DefaultMinOffcutLength)

	rows := [][]interface{}{
		{"Item", "Value"},
		{"Title", layout.Title},
		{"Total planks", layout.TotalPlanks},
		{"Plank length (in)", layout.PlankLength},
		{"Plank width (in)", layout.PlankWidth},
		{"Kerf (in)", layout.Kerf},
		{"Board feet", est.TotalBoardFeet},
		{"Efficiency (%)", est.Efficiency()},
		{"Reusable offcuts", len(offcuts)},
	}
	for _, item := range layout.Legend {
		if item.Symbol == "📦" {
			rows = append(rows, []interface{}{"Capacity", item.Description})
		}
	}
	if err := writeRows(f, sheetSummary, rows, bold); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "A", "B", 24)
}
