package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/PlanterCut/internal/model"
)

func TestSaveAndLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planter.json")
	cfg := model.DefaultConfig()
	cfg.SparePlanks = 2

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Title != cfg.Title {
		t.Errorf("expected title %q, got %q", cfg.Title, loaded.Title)
	}
	if loaded.PlankLength != cfg.PlankLength || loaded.Kerf != cfg.Kerf {
		t.Errorf("stock mismatch: got %+v", loaded.StockConfig)
	}
	if loaded.Box == nil {
		t.Fatal("expected box to be loaded")
	}
	if loaded.Box.Height != cfg.Box.Height {
		t.Errorf("expected height %f, got %f", cfg.Box.Height, loaded.Box.Height)
	}
	if loaded.SparePlanks != 2 {
		t.Errorf("expected 2 spare planks, got %d", loaded.SparePlanks)
	}
}

func TestSaveAndLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "planter.yaml")
	cfg := model.DefaultConfig()
	cfg.Box.BottomSlats = model.IntPtr(4)

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.PlankWidth != cfg.PlankWidth {
		t.Errorf("expected plank width %f, got %f", cfg.PlankWidth, loaded.PlankWidth)
	}
	if loaded.Box == nil || loaded.Box.BottomSlats == nil {
		t.Fatal("expected box with bottom slats")
	}
	if *loaded.Box.BottomSlats != 4 {
		t.Errorf("expected 4 bottom slats, got %d", *loaded.Box.BottomSlats)
	}
}

func TestLoadConfigYAMLWithoutBox(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.yml")
	data := []byte("title: Stock only\nplankLength: 96\nplankWidth: 5.5\nplankThickness: 0.75\nkerf: 0.125\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Box != nil {
		t.Errorf("expected nil box, got %+v", cfg.Box)
	}
	if cfg.PlankLength != 96 {
		t.Errorf("expected plank length 96, got %f", cfg.PlankLength)
	}
}

func TestLoadConfigUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planter.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if err := SaveConfig(path, model.DefaultConfig()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat on save, got %v", err)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planter.json")
	if err := os.WriteFile(path, []byte("{bad"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"a.JSON", FormatJSON},
		{"a.yaml", FormatYAML},
		{"dir/a.yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if err != nil {
			t.Errorf("FormatFor(%q) returned error: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFor(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestMarshalConfigYAMLParsesBack(t *testing.T) {
	cfg := model.DefaultConfig()
	data, err := MarshalConfig(cfg, FormatYAML)
	if err != nil {
		t.Fatalf("MarshalConfig failed: %v", err)
	}
	if !strings.Contains(string(data), "plankLength: 72") {
		t.Errorf("expected inline stock fields in YAML, got:\n%s", data)
	}
	parsed, err := ParseConfig(data, FormatYAML)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if parsed.Box == nil || parsed.Box.InteriorLength != cfg.Box.InteriorLength {
		t.Errorf("expected box to survive, got %+v", parsed.Box)
	}
}

func TestMarshalConfigUnsupportedFormat(t *testing.T) {
	if _, err := MarshalConfig(model.DefaultConfig(), Format("toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
