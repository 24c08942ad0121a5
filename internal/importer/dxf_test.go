package importer

import (
	"path/filepath"
	"testing"

	"github.com/yofu/dxf"

	"github.com/piwi3910/PlanterCut/internal/model"
)

func writeRectDXF(t *testing.T, w, h float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "footprint.dxf")

	d := dxf.NewDrawing()
	corners := [][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			t.Fatalf("failed to add line: %v", err)
		}
	}
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("failed to save DXF: %v", err)
	}
	return path
}

func TestImportFootprintDXF_Rectangle(t *testing.T) {
	path := writeRectDXF(t, 14, 30)

	fp, err := ImportFootprintDXF(path)
	if err != nil {
		t.Fatalf("ImportFootprintDXF failed: %v", err)
	}
	if fp.Length != 30 || fp.Width != 14 {
		t.Errorf("expected 30 x 14, got %f x %f", fp.Length, fp.Width)
	}
}

func TestFootprintApply(t *testing.T) {
	fp := Footprint{Length: 40, Width: 16}

	cfg := model.PlanterConfig{}
	fp.Apply(&cfg)
	if cfg.Box == nil {
		t.Fatal("expected a box to be created")
	}
	if cfg.Box.InteriorLength != 40 || cfg.Box.InteriorWidth != 16 {
		t.Errorf("unexpected box %+v", *cfg.Box)
	}
	if cfg.Box.Height != model.DefaultConfig().Box.Height {
		t.Errorf("expected default height, got %f", cfg.Box.Height)
	}
}

func TestImportFootprintDXF_FileNotFound(t *testing.T) {
	if _, err := ImportFootprintDXF(filepath.Join(t.TempDir(), "missing.dxf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImportFootprintDXF_Degenerate(t *testing.T) {
	path := writeRectDXF(t, 10, 0)
	if _, err := ImportFootprintDXF(path); err == nil {
		t.Error("expected error for degenerate footprint")
	}
}
