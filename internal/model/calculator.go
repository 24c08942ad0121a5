package model

import "math"

// PurchaseEstimate holds the results of a lumber purchasing calculation.
type PurchaseEstimate struct {
	PlanksNeeded      int     `json:"planks_needed"`     // Planks on the cut list
	PlanksWithWaste   int     `json:"planks_with_waste"` // Recommended planks including waste factor
	BoardFeetPerPlank float64 `json:"board_feet_per_plank"`
	TotalBoardFeet    float64 `json:"total_board_feet"` // Board feet of the recommended planks
	WastePercent      float64 `json:"waste_percent"`    // Waste factor applied (e.g., 10 for 10%)
	PricePerPlank     float64 `json:"price_per_plank"`
	EstimatedCost     float64 `json:"estimated_cost"`
	UsedLength        float64 `json:"used_length"`  // inches of plank that ends up in parts
	TotalLength       float64 `json:"total_length"` // inches of plank rows on the cut list
}

// cubicInchesPerBoardFoot is 12" x 12" x 1".
const cubicInchesPerBoardFoot = 144.0

// Efficiency returns the share of bought plank length that ends up in parts,
// as a percentage. Ripped planks count each strip's length.
func (e PurchaseEstimate) Efficiency() float64 {
	if e.TotalLength == 0 {
		return 0
	}
	return (e.UsedLength / e.TotalLength) * 100.0
}

// CalculatePurchaseEstimate computes how many planks to buy for a layout.
// It returns the zero estimate for a layout the planner could not compute.
func CalculatePurchaseEstimate(layout Layout, pricePerPlank, wastePercent float64) PurchaseEstimate {
	if !layout.Computed() {
		return PurchaseEstimate{WastePercent: wastePercent, PricePerPlank: pricePerPlank}
	}

	bf := layout.PlankLength * layout.PlankWidth * layout.PlankThickness / cubicInchesPerBoardFoot

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := int(math.Ceil(float64(layout.TotalPlanks) * wasteFactor))
	if withWaste < layout.TotalPlanks {
		withWaste = layout.TotalPlanks
	}

	var used, total float64
	for _, p := range layout.Planks {
		rows := p.Rows()
		if len(rows) == 0 {
			total += layout.PlankLength
			continue
		}
		for _, row := range rows {
			total += layout.PlankLength
			for _, c := range row {
				if !c.Spare {
					used += c.Length * float64(c.Pieces())
				}
			}
		}
	}

	return PurchaseEstimate{
		PlanksNeeded:      layout.TotalPlanks,
		PlanksWithWaste:   withWaste,
		BoardFeetPerPlank: bf,
		TotalBoardFeet:    bf * float64(withWaste),
		WastePercent:      wastePercent,
		PricePerPlank:     pricePerPlank,
		EstimatedCost:     float64(withWaste) * pricePerPlank,
		UsedLength:        used,
		TotalLength:       total,
	}
}
