package engine

import (
	"fmt"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// ComparisonScenario defines a named stock choice to compare.
type ComparisonScenario struct {
	Name  string
	Stock model.StockConfig
}

// ComparisonResult holds the layout and computed statistics for a single
// scenario. Err is set when the box cannot be cut from the scenario's stock.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Layout       model.Layout
	PlanksUsed   int
	OffcutLength float64 // inches of reusable spare
	Efficiency   float64 // percent of plank length ending up in parts
	Err          error
}

// CompareScenarios computes a layout for each scenario with the box of cfg
// and returns the results in scenario order. This enables side-by-side
// comparison of different stock (plank length, kerf).
func CompareScenarios(scenarios []ComparisonScenario, cfg model.PlanterConfig) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		c := cfg.Clone()
		c.StockConfig = scenario.Stock

		layout, err := ComputeLayout(c)
		res := ComparisonResult{Scenario: scenario, Layout: layout, Err: err}
		if err == nil && layout.Computed() {
			est := model.CalculatePurchaseEstimate(layout, 0, 0)
			res.PlanksUsed = layout.TotalPlanks
			res.OffcutLength = model.TotalOffcutLength(model.DetectOffcuts(layout, model.DefaultMinOffcutLength))
			res.Efficiency = est.Efficiency()
		}
		results = append(results, res)
	}

	return results
}

// alternativePlankLengths are the common retail board lengths, in inches.
var alternativePlankLengths = []float64{72, 96, 120}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current stock, varying plank length and kerf to show what-if alternatives.
func BuildDefaultScenarios(base model.StockConfig) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:  "Current Stock",
			Stock: base,
		},
	}

	for _, l := range alternativePlankLengths {
		if l == base.PlankLength {
			continue
		}
		alt := base
		alt.PlankLength = l
		scenarios = append(scenarios, ComparisonScenario{
			Name:  fmt.Sprintf("%s planks", model.FormatInches(l)),
			Stock: alt,
		})
	}

	// Thinner blade
	if base.Kerf > 0 {
		thin := base
		thin.Kerf = base.Kerf * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:  fmt.Sprintf("Kerf %s (half)", model.FormatInches(thin.Kerf)),
			Stock: thin,
		})
	}

	return scenarios
}
