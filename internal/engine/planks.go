package engine

import (
	"fmt"

	"github.com/piwi3910/PlanterCut/internal/model"
)

const spareLabel = "spare"

// buildPlanks turns cut patterns into labelled physical planks, numbered
// Plank 1..N in pattern order.
func buildPlanks(patterns []model.CutPattern, parts model.Parts, stock model.StockConfig) []model.Plank {
	var planks []model.Plank
	num := 1
	for _, pattern := range patterns {
		for i := 0; i < pattern.Planks; i++ {
			label := fmt.Sprintf("Plank %d", num)
			num++

			part, ok := parts.Get(pattern.Part)
			if pattern.Spare || !ok {
				planks = append(planks, model.Plank{Label: label, Type: model.PlankSpare})
				continue
			}

			var plank model.Plank
			switch {
			case part.Width < stock.PlankWidth && pattern.Part.StripRipped():
				plank = rippedPlank(part, pattern.Count, stock)
			case part.Width < stock.PlankWidth:
				plank = normalPlank(part, pattern.Count, stock)
				plank.RipWidth = part.Width
			default:
				plank = normalPlank(part, pattern.Count, stock)
			}
			plank.Label = label
			planks = append(planks, plank)
		}
	}
	return planks
}

// spareLength is what is left of a run after n pieces and the kerfs between them.
func spareLength(runLength, partLength, kerf float64, n int) float64 {
	return runLength - float64(n)*partLength - kerf*float64(max(0, n-1))
}

func normalPlank(part model.Part, count int, stock model.StockConfig) model.Plank {
	return model.Plank{
		Type: model.PlankNormal,
		Cuts: []model.Cut{
			{Length: part.Length, Label: part.Symbol, Count: count},
			{Length: spareLength(stock.PlankLength, part.Length, stock.Kerf, count), Label: spareLabel, Spare: true},
		},
	}
}

// rippedPlank splits count pieces over as many strips as needed, each strip
// filled before the next.
func rippedPlank(part model.Part, count int, stock model.StockConfig) model.Plank {
	perStrip := piecesPerStrip(stock.PlankLength, part.Length, stock.Kerf)
	ripLabel := fmt.Sprintf("rip to %s\"", model.FormatNumber(part.Width))

	var strips []model.Strip
	for remaining := count; remaining > 0 && perStrip > 0; {
		n := min(perStrip, remaining)
		strips = append(strips, model.Strip{
			RipLabel: ripLabel,
			Cuts: []model.Cut{
				{Length: part.Length, Label: part.Symbol, Count: n},
				{Length: spareLength(stock.PlankLength, part.Length, stock.Kerf, n), Label: spareLabel, Spare: true},
			},
		})
		remaining -= n
	}

	return model.Plank{
		Type:     model.PlankRipped,
		RipWidth: part.Width,
		Strips:   strips,
	}
}
