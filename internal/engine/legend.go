package engine

import (
	"fmt"

	"github.com/piwi3910/PlanterCut/internal/model"
)

const (
	cubicInchesPerFoot = 1728.0
	gallonsPerFoot     = 7.48
	capacitySymbol     = "📦"
)

// buildLegend describes every instantiated part category, then the box capacity.
func buildLegend(parts model.Parts, box model.BoxConfig, slatGap float64) []model.LegendItem {
	var legend []model.LegendItem
	parts.Each(func(k model.PartKey, p model.Part) {
		if p.Count <= 0 {
			return
		}
		desc := fmt.Sprintf("%s (%dx): %s\" × %s\"",
			k.Humanize(), p.Count, model.FormatNumber(p.Length), model.FormatNumber(p.Width))
		if k == model.PartBottomSlat && slatGap > 0 {
			desc += fmt.Sprintf(" (%.2f\" gap remaining)", slatGap)
		}
		legend = append(legend, model.LegendItem{Symbol: p.Symbol, Description: desc})
	})

	ft3 := box.Volume() / cubicInchesPerFoot
	legend = append(legend, model.LegendItem{
		Symbol:      capacitySymbol,
		Description: fmt.Sprintf("Capacity: %.2f ft³ (%.1f gallons)", ft3, ft3*gallonsPerFoot),
	})
	return legend
}
