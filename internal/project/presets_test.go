package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PlanterCut/internal/model"
)

func TestSaveAndLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")

	store := model.NewPresetStore()
	store.Add(model.NewPreset("Herb box", "small", model.DefaultConfig()))
	store.Add(model.NewPreset("Tall box", "", model.DefaultConfig()))

	if err := SavePresets(path, store); err != nil {
		t.Fatalf("SavePresets failed: %v", err)
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if len(loaded.Presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(loaded.Presets))
	}
	if loaded.Presets[0].Name != "Herb box" {
		t.Errorf("expected first preset Herb box, got %s", loaded.Presets[0].Name)
	}
	if loaded.Presets[0].Config.Box == nil {
		t.Error("expected preset config box to survive round trip")
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	store, err := LoadPresets(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.Presets == nil || len(store.Presets) != 0 {
		t.Errorf("expected empty non-nil store, got %+v", store.Presets)
	}
}

func TestLoadPresetsNullList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte(`{"presets":null}`), 0644); err != nil {
		t.Fatal(err)
	}
	store, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if store.Presets == nil {
		t.Error("Presets should not be nil after loading")
	}
}

func TestLoadPresetsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte("[[["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPresets(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
