package importer

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Setting,Value\nPlank Length,72\nKerf,0.125\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Setting;Value\nPlank Length;72\nKerf;0,125\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Setting\tValue\nPlank Length\t72\nKerf\t0.125\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Setting|Value\nPlank Length|72\nKerf|0.125\n")
	if got := DetectCSVDelimiter(data); got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Setting", "Value"})
	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Setting != 0 || mapping.Value != 1 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Notes", "VALUE", " Key "})
	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Setting != 2 || mapping.Value != 1 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Plank Length", "72"})
	if isHeader {
		t.Error("expected no header")
	}
	if mapping.Setting != 0 || mapping.Value != 1 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── Value Parsing Tests ───────────────────────────────────

func TestCanonicalSetting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Plank Length", "plankLength"},
		{"plank_width", "plankWidth"},
		{"Blade-Kerf", "kerf"},
		{"interiorLength", "interiorLength"},
		{"Top Rim", "hasTopRim"},
		{"Rim Width", "topRimWidth"},
		{"slats", "bottomSlats"},
	}
	for _, tt := range tests {
		got, ok := CanonicalSetting(tt.in)
		if !ok || got != tt.want {
			t.Errorf("CanonicalSetting(%q) = %q, %v; want %q", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := CanonicalSetting("colour"); ok {
		t.Error("expected unknown setting to be rejected")
	}
}

func TestParseInches(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5.5", 5.5},
		{"72", 72},
		{`5 1/2"`, 5.5},
		{"5-1/2", 5.5},
		{"3/4in", 0.75},
		{" 1/8 ", 0.125},
	}
	for _, tt := range tests {
		got, err := ParseInches(tt.in)
		if err != nil {
			t.Errorf("ParseInches(%q) returned error: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseInches(%q) = %f, want %f", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "abc", "1/0", "5 x/2"} {
		if _, err := ParseInches(bad); err == nil {
			t.Errorf("ParseInches(%q) should fail", bad)
		}
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Setting,Value\nTitle,Herb Box\nPlank Length,96\nPlank Width,5 1/2\nKerf,1/8\nInterior Length,24\nInterior Width,12\nHeight,12\nLeg Width,1.5\nLeg Gap,0\nTop Rim,no\nSpare Planks,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',', model.PlanterConfig{})

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	cfg := result.Config
	if cfg.Title != "Herb Box" {
		t.Errorf("expected title Herb Box, got %q", cfg.Title)
	}
	if cfg.PlankLength != 96 || cfg.PlankWidth != 5.5 || cfg.Kerf != 0.125 {
		t.Errorf("unexpected stock %+v", cfg.StockConfig)
	}
	if cfg.Box == nil {
		t.Fatal("expected a box")
	}
	if cfg.Box.InteriorLength != 24 || cfg.Box.InteriorWidth != 12 || cfg.Box.Height != 12 {
		t.Errorf("unexpected box %+v", *cfg.Box)
	}
	if cfg.Box.HasTopRim {
		t.Error("expected rim to be off")
	}
	if cfg.SparePlanks != 1 {
		t.Errorf("expected 1 spare plank, got %d", cfg.SparePlanks)
	}
	if len(result.Applied) != 11 {
		t.Errorf("expected 11 applied settings, got %d", len(result.Applied))
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Plank Length,120\nBottom Slats,5\n"
	base := model.DefaultConfig()
	result := ImportCSVFromReader(strings.NewReader(data), ',', base)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Config.PlankLength != 120 {
		t.Errorf("expected plank length 120, got %f", result.Config.PlankLength)
	}
	if result.Config.Box.BottomSlats == nil || *result.Config.Box.BottomSlats != 5 {
		t.Error("expected 5 bottom slats")
	}
	// Untouched values come from the base.
	if result.Config.Box.Height != base.Box.Height {
		t.Errorf("expected base height %f, got %f", base.Box.Height, result.Config.Box.Height)
	}
	// The base itself is not modified.
	if base.Box.BottomSlats != nil {
		t.Error("base config was modified")
	}
}

func TestImportCSVFromReader_UnknownSetting(t *testing.T) {
	data := "Kerf,0.1\nColour,red\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',', model.DefaultConfig())

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Unknown setting 'Colour'") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unknown setting warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_InvalidValues(t *testing.T) {
	data := "Plank Length,long\nSpare Planks,-1\nTop Rim,maybe\nKerf,\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',', model.DefaultConfig())

	if len(result.Errors) != 4 {
		t.Errorf("expected 4 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if result.Config.PlankLength != model.DefaultConfig().PlankLength {
		t.Error("invalid value should leave the base value in place")
	}
}

func TestImportCSVFromReader_DuplicateSetting(t *testing.T) {
	data := "Kerf,0.1\nKerf,0.2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',', model.DefaultConfig())

	if result.Config.Kerf != 0.2 {
		t.Errorf("expected last value to win, got %f", result.Config.Kerf)
	}
	if len(result.Applied) != 1 {
		t.Errorf("expected 1 applied setting, got %d", len(result.Applied))
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	data := "Setting,Notes\nKerf,thin\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',', model.DefaultConfig())

	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing Value column")
	}
	if !strings.Contains(result.Errors[0], "Value") {
		t.Errorf("expected error to mention Value, got %q", result.Errors[0])
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',', model.DefaultConfig())
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSVFromReader_OnlyHeaders(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Setting,Value\n"), ',', model.DefaultConfig())
	if len(result.Errors) == 0 {
		t.Error("expected error when no settings are present")
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planter.csv")
	if err := os.WriteFile(path, []byte("Setting;Value\nPlank Length;96\nInterior Width;10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path, model.DefaultConfig())
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Config.PlankLength != 96 {
		t.Errorf("expected plank length 96, got %f", result.Config.PlankLength)
	}
	if result.Config.Box.InteriorWidth != 10 {
		t.Errorf("expected interior width 10, got %f", result.Config.Box.InteriorWidth)
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "semicolon") {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "missing.csv"), model.DefaultConfig())
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	result := ImportCSV(path, model.DefaultConfig())
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planter.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Setting", "Value"},
		{"Title", "Patio Planter"},
		{"Plank Length", 96},
		{"Interior Length", 36},
		{"Top Rim", "yes"},
		{"Rim Width", 3.5},
	})

	result := ImportExcel(path, model.PlanterConfig{})
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Config.Title != "Patio Planter" {
		t.Errorf("expected title Patio Planter, got %q", result.Config.Title)
	}
	if result.Config.PlankLength != 96 {
		t.Errorf("expected plank length 96, got %f", result.Config.PlankLength)
	}
	if result.Config.Box == nil || !result.Config.Box.HasTopRim || result.Config.Box.TopRimWidth != 3.5 {
		t.Errorf("unexpected box %+v", result.Config.Box)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "missing.xlsx"), model.DefaultConfig())
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
