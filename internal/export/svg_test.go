package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/piwi3910/PlanterCut/internal/diagram"
)

func TestWriteSVG(t *testing.T) {
	layout := buildTestLayout(t)
	scene := buildTestScene(t, layout)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene); err != nil {
		t.Fatalf("WriteSVG returned error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `viewBox="0 0 2800 1360"`) {
		t.Error("expected view box scaled by precision")
	}
	for _, want := range []string{"Front Panel Assembly", "Top Rim Corner (Top View)", "①", "stroke-dasharray:24,16"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("expected closed svg document")
	}

	// First front panel at (60, 50), 30" wide.
	if !strings.Contains(out, `x="240" y="200" width="600"`) {
		t.Error("expected first panel rect at scaled coordinates")
	}
}

func TestWriteSVG_EmptyScene(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, diagram.Scene{})
	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVG_WriteError(t *testing.T) {
	scene := buildTestScene(t, buildTestLayout(t))
	if err := WriteSVG(failingWriter{}, scene); err == nil {
		t.Fatal("expected write error")
	}
}
