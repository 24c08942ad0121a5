package model

import (
	"math"
	"testing"
)

// sampleLayout is a hand-built three plank cut list: one normal plank, one
// plank ripped into two strips and one whole spare.
func sampleLayout() Layout {
	return Layout{
		PlanterConfig: PlanterConfig{
			StockConfig: StockConfig{PlankLength: 96, PlankWidth: 5.5, PlankThickness: 0.75, Kerf: 0.125},
			Box:         &BoxConfig{InteriorLength: 24, InteriorWidth: 12, Height: 12, LegWidth: 1.5},
		},
		Parts:       &Parts{},
		TotalPlanks: 3,
		Planks: []Plank{
			{
				Label: "Plank 1",
				Type:  PlankNormal,
				Cuts: []Cut{
					{Length: 24, Label: "①", Count: 3},
					{Length: 23.75, Label: "spare", Spare: true},
				},
			},
			{
				Label:    "Plank 2",
				Type:     PlankRipped,
				RipWidth: 1.5,
				Strips: []Strip{
					{RipLabel: `rip to 1.5"`, Cuts: []Cut{{Length: 14, Label: "③"}, {Length: 81.875, Label: "spare", Spare: true}}},
					{RipLabel: `rip to 1.5"`, Cuts: []Cut{{Length: 14, Label: "③"}, {Length: 81.875, Label: "spare", Spare: true}}},
				},
			},
			{Label: "Plank 3", Type: PlankSpare},
		},
	}
}

func TestCalculatePurchaseEstimateBasic(t *testing.T) {
	est := CalculatePurchaseEstimate(sampleLayout(), 8.0, 10)

	if est.PlanksNeeded != 3 {
		t.Errorf("expected 3 planks needed, got %d", est.PlanksNeeded)
	}
	if est.PlanksWithWaste != 4 {
		t.Errorf("expected 4 planks with 10%% waste, got %d", est.PlanksWithWaste)
	}
	if math.Abs(est.BoardFeetPerPlank-2.75) > 1e-9 {
		t.Errorf("expected 2.75 board feet per plank, got %f", est.BoardFeetPerPlank)
	}
	if math.Abs(est.TotalBoardFeet-11) > 1e-9 {
		t.Errorf("expected 11 board feet total, got %f", est.TotalBoardFeet)
	}
	if est.EstimatedCost != 32 {
		t.Errorf("expected cost 32, got %f", est.EstimatedCost)
	}
	if est.UsedLength != 100 {
		t.Errorf("expected 100 inches used, got %f", est.UsedLength)
	}
	if est.TotalLength != 384 {
		t.Errorf("expected 384 inches total, got %f", est.TotalLength)
	}
	if eff := est.Efficiency(); math.Abs(eff-100.0/384*100) > 1e-9 {
		t.Errorf("unexpected efficiency %f", eff)
	}
}

func TestCalculatePurchaseEstimateNoWaste(t *testing.T) {
	est := CalculatePurchaseEstimate(sampleLayout(), 0, 0)
	if est.PlanksWithWaste != est.PlanksNeeded {
		t.Errorf("expected no extra planks, got %d vs %d", est.PlanksWithWaste, est.PlanksNeeded)
	}
	if est.EstimatedCost != 0 {
		t.Errorf("expected zero cost without price, got %f", est.EstimatedCost)
	}
}

func TestCalculatePurchaseEstimateUncomputed(t *testing.T) {
	est := CalculatePurchaseEstimate(Layout{}, 5, 10)
	if est.PlanksNeeded != 0 || est.TotalLength != 0 {
		t.Errorf("expected zero estimate, got %+v", est)
	}
	if est.Efficiency() != 0 {
		t.Error("expected zero efficiency for empty estimate")
	}
}
