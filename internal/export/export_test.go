package export

import (
	"testing"

	"github.com/piwi3910/PlanterCut/internal/diagram"
	"github.com/piwi3910/PlanterCut/internal/engine"
	"github.com/piwi3910/PlanterCut/internal/model"
)

// buildTestLayout computes the default planter with a spare plank, so the
// layout holds normal, ripped and spare planks.
func buildTestLayout(t *testing.T) model.Layout {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.SparePlanks = 1
	layout, err := engine.ComputeLayout(cfg)
	if err != nil {
		t.Fatalf("ComputeLayout returned error: %v", err)
	}
	return layout
}

func buildTestScene(t *testing.T, layout model.Layout) diagram.Scene {
	t.Helper()
	scene, err := diagram.Compose(layout)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	return scene
}

func TestParseHexColor(t *testing.T) {
	c, ok := parseHexColor("#ffe5b4")
	if !ok || c != (partColor{R: 255, G: 229, B: 180}) {
		t.Errorf("unexpected color %+v (ok=%v)", c, ok)
	}
	c, ok = parseHexColor("#444")
	if !ok || c != (partColor{R: 68, G: 68, B: 68}) {
		t.Errorf("unexpected short color %+v (ok=%v)", c, ok)
	}
	if _, ok := parseHexColor("none"); ok {
		t.Error("none should not parse")
	}
}

func TestPlainSymbol(t *testing.T) {
	if got := plainSymbol("①"); got != "1" {
		t.Errorf("expected 1, got %q", got)
	}
	if got := plainSymbol("📦"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestColorForSymbol(t *testing.T) {
	if colorForSymbol("①") != partColors[0] {
		t.Error("expected first color for ①")
	}
	if colorForSymbol("spare") != spareColor {
		t.Error("expected spare color for unknown symbol")
	}
}

func TestParseDash(t *testing.T) {
	got := parseDash("6, 4,x")
	if len(got) != 2 || got[0] != 6 || got[1] != 4 {
		t.Errorf("unexpected dash %v", got)
	}
}

func TestCutListTitle(t *testing.T) {
	layout := buildTestLayout(t)
	want := `Cedar Planter Cutlist (9 Planks @ 72" × 5.5")`
	if got := cutListTitle(layout); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCutSummary(t *testing.T) {
	row := []model.Cut{
		{Length: 24, Label: "①", Count: 3},
		{Length: 23.75, Label: "spare", Spare: true},
	}
	want := `① 24" ×3 | spare 23 3/4"`
	if got := cutSummary(row); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
