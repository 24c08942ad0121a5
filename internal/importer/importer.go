// Package importer reads planter configurations from spreadsheets and box
// footprints from DXF drawings. Spreadsheet import supports automatic
// delimiter detection and case-insensitive setting names.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Config   model.PlanterConfig
	Applied  []string // Canonical names of the settings that were read
	Errors   []string
	Warnings []string
}

// ColumnMapping maps the setting-name and value columns to their indices.
type ColumnMapping struct {
	Setting int
	Value   int
}

// Canonical setting names, matching the JSON field names of the config.
const (
	fieldTitle          = "title"
	fieldPlankLength    = "plankLength"
	fieldPlankWidth     = "plankWidth"
	fieldPlankThickness = "plankThickness"
	fieldKerf           = "kerf"
	fieldSparePlanks    = "sparePlanks"
	fieldInteriorLength = "interiorLength"
	fieldInteriorWidth  = "interiorWidth"
	fieldHeight         = "height"
	fieldLegWidth       = "legWidth"
	fieldLegGap         = "legGap"
	fieldHasTopRim      = "hasTopRim"
	fieldTopRimWidth    = "topRimWidth"
	fieldBottomSlats    = "bottomSlats"
)

// headerAliases maps the column roles to their accepted header names (all lowercase).
var headerAliases = map[string][]string{
	"setting": {"setting", "field", "key", "name", "parameter", "property"},
	"value":   {"value", "val", "amount", "inches", "size"},
}

// settingAliases maps canonical setting names to accepted spellings.
// Lookups normalize case, spaces, dashes and underscores first.
var settingAliases = map[string][]string{
	fieldTitle:          {"title", "project", "projectname"},
	fieldPlankLength:    {"planklength", "stocklength", "boardlength"},
	fieldPlankWidth:     {"plankwidth", "stockwidth", "boardwidth"},
	fieldPlankThickness: {"plankthickness", "stockthickness", "boardthickness", "thickness"},
	fieldKerf:           {"kerf", "bladekerf", "sawkerf", "kerfwidth"},
	fieldSparePlanks:    {"spareplanks", "spares", "extraplanks"},
	fieldInteriorLength: {"interiorlength", "innerlength", "boxlength"},
	fieldInteriorWidth:  {"interiorwidth", "innerwidth", "boxwidth"},
	fieldHeight:         {"height", "boxheight", "depth"},
	fieldLegWidth:       {"legwidth", "leg"},
	fieldLegGap:         {"leggap", "gap", "elevation", "clearance"},
	fieldHasTopRim:      {"hastoprim", "toprim", "rim"},
	fieldTopRimWidth:    {"toprimwidth", "rimwidth"},
	fieldBottomSlats:    {"bottomslats", "slats", "slatcount"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping (setting, value) and false otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Setting: -1, Value: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "setting":
					if mapping.Setting == -1 {
						mapping.Setting = i
					}
				case "value":
					if mapping.Value == -1 {
						mapping.Value = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Setting: 0, Value: 1}, false
	}
	return mapping, true
}

// CanonicalSetting resolves a spreadsheet setting name to its canonical
// field name.
func CanonicalSetting(name string) (string, bool) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	for field, aliases := range settingAliases {
		for _, alias := range aliases {
			if key == alias {
				return field, true
			}
		}
	}
	return "", false
}

// ParseInches parses a measurement such as 5.5, 5 1/2, 5-1/2" or 3/4in.
func ParseInches(s string) (float64, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSuffix(v, "in")
	v = strings.TrimSuffix(v, "\"")
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, fmt.Errorf("empty measurement")
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f, nil
	}

	whole, frac := "0", v
	if i := strings.IndexAny(v, " -"); i > 0 {
		whole, frac = v[:i], strings.TrimSpace(v[i+1:])
	}
	num, den, ok := strings.Cut(frac, "/")
	if !ok {
		return 0, fmt.Errorf("invalid measurement %q", s)
	}
	w, err := strconv.Atoi(whole)
	if err != nil {
		return 0, fmt.Errorf("invalid measurement %q", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return 0, fmt.Errorf("invalid measurement %q", s)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil || d == 0 {
		return 0, fmt.Errorf("invalid measurement %q", s)
	}
	return float64(w) + float64(n)/float64(d), nil
}

// parseBool accepts the usual spreadsheet spellings of yes and no.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "t", "1", "on", "x":
		return true, true
	case "no", "n", "false", "f", "0", "off", "", "-":
		return false, true
	}
	return false, false
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ensureBox returns cfg.Box, creating it from the default box when missing.
func ensureBox(cfg *model.PlanterConfig) *model.BoxConfig {
	if cfg.Box == nil {
		box := *model.DefaultConfig().Box
		cfg.Box = &box
	}
	return cfg.Box
}

// applySetting writes one value into cfg. It returns an error message for
// values that cannot be parsed.
func applySetting(cfg *model.PlanterConfig, field, value, rowLabel string) string {
	switch field {
	case fieldTitle:
		cfg.Title = value
		return ""
	case fieldHasTopRim:
		b, ok := parseBool(value)
		if !ok {
			return fmt.Sprintf("%s: Invalid yes/no value '%s'", rowLabel, value)
		}
		ensureBox(cfg).HasTopRim = b
		return ""
	case fieldSparePlanks, fieldBottomSlats:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Sprintf("%s: Invalid count '%s'", rowLabel, value)
		}
		if field == fieldSparePlanks {
			cfg.SparePlanks = n
		} else {
			ensureBox(cfg).BottomSlats = model.IntPtr(n)
		}
		return ""
	}

	f, err := ParseInches(value)
	if err != nil {
		return fmt.Sprintf("%s: Invalid measurement '%s'", rowLabel, value)
	}
	switch field {
	case fieldPlankLength:
		cfg.PlankLength = f
	case fieldPlankWidth:
		cfg.PlankWidth = f
	case fieldPlankThickness:
		cfg.PlankThickness = f
	case fieldKerf:
		cfg.Kerf = f
	case fieldInteriorLength:
		ensureBox(cfg).InteriorLength = f
	case fieldInteriorWidth:
		ensureBox(cfg).InteriorWidth = f
	case fieldHeight:
		ensureBox(cfg).Height = f
	case fieldLegWidth:
		ensureBox(cfg).LegWidth = f
	case fieldLegGap:
		ensureBox(cfg).LegGap = f
	case fieldTopRimWidth:
		ensureBox(cfg).TopRimWidth = f
	}
	return ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports a configuration from a two-column CSV file of setting
// names and values, layered over base. It automatically detects the
// delimiter and an optional header row.
func ImportCSV(path string, base model.PlanterConfig) ImportResult {
	result := ImportResult{Config: base.Clone()}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, base, "Line", warnings)
}

// ImportCSVFromReader imports a configuration from a CSV reader with a
// specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, base model.PlanterConfig) ImportResult {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return ImportResult{
			Config: base.Clone(),
			Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)},
		}
	}

	return importFromRows(records, base, "Line", nil)
}

// ImportExcel imports a configuration from the first sheet of an Excel
// (.xlsx) workbook.
func ImportExcel(path string, base model.PlanterConfig) ImportResult {
	result := ImportResult{Config: base.Clone()}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, base, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, base model.PlanterConfig, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Config:   base.Clone(),
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Setting == -1 {
			missing = append(missing, "Setting")
		}
		if mapping.Value == -1 {
			missing = append(missing, "Value")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	seen := make(map[string]bool)
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		name := getCell(row, mapping.Setting)
		field, ok := CanonicalSetting(name)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Unknown setting '%s', ignored", rowLabel, name))
			continue
		}
		value := getCell(row, mapping.Value)
		if value == "" && field != fieldTitle {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing value for %s", rowLabel, field))
			continue
		}
		if msg := applySetting(&result.Config, field, value, rowLabel); msg != "" {
			result.Errors = append(result.Errors, msg)
			continue
		}
		if seen[field] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s set more than once, last value wins", rowLabel, field))
		} else {
			result.Applied = append(result.Applied, field)
		}
		seen[field] = true
	}

	if len(result.Applied) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No settings found")
	}
	return result
}
