// Package export renders planter layouts and assembly drawings to files:
// SVG, PDF, DXF, Excel and plain terminal text.
package export

import (
	"errors"
	"strconv"
	"strings"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// ErrNothingToExport is returned for layouts that have not been computed
// and for empty scenes.
var ErrNothingToExport = errors.New("nothing to export")

// partColor represents an RGB color for a cut piece.
type partColor struct {
	R, G, B int
}

// partColors mirrors the color scheme used in the UI plank list, indexed
// by part category in display order.
var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

var spareColor = partColor{R: 220, G: 220, B: 220}

// colorForSymbol returns the color of the part category with the given symbol.
func colorForSymbol(symbol string) partColor {
	for i, k := range model.PartKeys {
		if k.Symbol() == symbol {
			return partColors[i%len(partColors)]
		}
	}
	return spareColor
}

// plainSymbols maps the circled numerals to digits for outputs limited to
// Latin-1 fonts (PDF core fonts, DXF text).
var plainSymbols = strings.NewReplacer(
	"①", "1", "②", "2", "③", "3", "④", "4", "⑤", "5", "⑥", "6", "📦", "",
)

func plainSymbol(s string) string {
	return plainSymbols.Replace(s)
}

// parseHexColor parses #rgb and #rrggbb colors. "none" and anything else
// unparseable report false.
func parseHexColor(s string) (partColor, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return partColor{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return partColor{}, false
	}
	return partColor{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, true
}

// parseDash parses an SVG dash array such as "6,4". Invalid entries are skipped.
func parseDash(dash string) []float64 {
	var out []float64
	for _, f := range strings.Split(dash, ",") {
		if v, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// cutListTitle is the heading used on every cut list output.
func cutListTitle(layout model.Layout) string {
	title := layout.Title
	if title == "" {
		title = "Planter"
	}
	return title + " Cutlist (" + strconv.Itoa(layout.TotalPlanks) + " Planks @ " +
		model.FormatNumber(layout.PlankLength) + "\" × " + model.FormatNumber(layout.PlankWidth) + "\")"
}

// cutSummary renders one row of cuts as text, e.g. `① 24" ×3 | spare 23 3/4"`.
func cutSummary(row []model.Cut) string {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		if c.Spare {
			parts = append(parts, "spare "+model.FormatInches(c.Length))
			continue
		}
		s := c.Label + " " + model.FormatInches(c.Length)
		if c.Pieces() > 1 {
			s += " ×" + strconv.Itoa(c.Pieces())
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " | ")
}
