package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleConfig is a 24x12x12 box without rim, cut from 8' 1x6 stock.
func exampleConfig() model.PlanterConfig {
	return model.PlanterConfig{
		Title: "Example",
		StockConfig: model.StockConfig{
			PlankLength:    96,
			PlankWidth:     5.5,
			PlankThickness: 0.75,
			Kerf:           0.125,
		},
		Box: &model.BoxConfig{
			InteriorLength: 24,
			InteriorWidth:  12,
			Height:         12,
			LegWidth:       1.5,
			LegGap:         0,
			BottomSlats:    model.IntPtr(3),
		},
	}
}

// assertLayoutInvariants checks the properties every computed layout holds.
func assertLayoutInvariants(t *testing.T, layout model.Layout) {
	t.Helper()
	require.True(t, layout.Computed())

	sum := 0
	for _, p := range layout.CutPatterns {
		sum += p.Planks
		if p.Spare {
			continue
		}
		part, ok := layout.Parts.Get(p.Part)
		require.True(t, ok, "pattern for unknown part %s", p.Part)
		assert.Greater(t, p.Count, 0)

		run := p.Count
		if p.Ripped {
			run = min(p.Count, piecesPerStrip(layout.PlankLength, part.Length, layout.Kerf))
		}
		used := float64(run)*part.Length + layout.Kerf*float64(run-1)
		assert.LessOrEqual(t, used, layout.PlankLength, "overcut on %s", p.Part)
	}
	assert.Equal(t, sum, layout.TotalPlanks)
	require.Len(t, layout.Planks, layout.TotalPlanks)

	for i, p := range layout.Planks {
		assert.Equal(t, fmt.Sprintf("Plank %d", i+1), p.Label)
		for _, row := range p.Rows() {
			for _, c := range row {
				if c.Spare {
					assert.GreaterOrEqual(t, c.Length, 0.0, "negative spare on %s", p.Label)
				}
			}
		}
	}

	last := layout.Legend[len(layout.Legend)-1]
	assert.Equal(t, "📦", last.Symbol)
}

func TestComputeLayout_Example(t *testing.T) {
	layout, err := ComputeLayout(exampleConfig())
	require.NoError(t, err)
	assertLayoutInvariants(t, layout)

	assert.Equal(t, 2, layout.PanelRows)
	assert.Equal(t, 4, layout.Parts.SidePanelLength.Count)
	assert.Equal(t, 4, layout.Parts.SidePanelWidth.Count)
	assert.Equal(t, 8, layout.Parts.Leg.Count)
	assert.Equal(t, 12.0, layout.Parts.Leg.Length)
	assert.Equal(t, 3, layout.Parts.BottomSlat.Count)
	assert.False(t, layout.Parts.Rim.Present)

	expected := []model.CutPattern{
		{Part: model.PartSidePanelLength, Count: 3, Planks: 1},
		{Part: model.PartSidePanelLength, Count: 1, Planks: 1},
		{Part: model.PartSidePanelWidth, Count: 4, Planks: 1},
		{Part: model.PartLeg, Count: 8, Planks: 1, Ripped: true},
		{Part: model.PartBottomSlat, Count: 3, Planks: 1},
	}
	assert.Equal(t, expected, layout.CutPatterns)
	assert.Equal(t, 5, layout.TotalPlanks)
}

func TestComputeLayout_ExamplePlanks(t *testing.T) {
	layout, err := ComputeLayout(exampleConfig())
	require.NoError(t, err)

	p1 := layout.Planks[0]
	assert.Equal(t, model.PlankNormal, p1.Type)
	assert.Equal(t, []model.Cut{
		{Length: 24, Label: "①", Count: 3},
		{Length: 23.75, Label: "spare", Spare: true},
	}, p1.Cuts)
	assert.Zero(t, p1.RipWidth)

	p3 := layout.Planks[2]
	assert.Equal(t, 47.625, p3.Cuts[1].Length)

	legs := layout.Planks[3]
	assert.Equal(t, model.PlankRipped, legs.Type)
	assert.Equal(t, 1.5, legs.RipWidth)
	require.Len(t, legs.Strips, 2)
	assert.Equal(t, `rip to 1.5"`, legs.Strips[0].RipLabel)
	assert.Equal(t, []model.Cut{
		{Length: 12, Label: "③", Count: 7},
		{Length: 11.25, Label: "spare", Spare: true},
	}, legs.Strips[0].Cuts)
	assert.Equal(t, []model.Cut{
		{Length: 12, Label: "③", Count: 1},
		{Length: 84, Label: "spare", Spare: true},
	}, legs.Strips[1].Cuts)
}

func TestComputeLayout_ExampleLegend(t *testing.T) {
	layout, err := ComputeLayout(exampleConfig())
	require.NoError(t, err)

	assert.Equal(t, []model.LegendItem{
		{Symbol: "①", Description: `side Panel Length (4x): 24" × 5.5"`},
		{Symbol: "②", Description: `side Panel Width (4x): 12" × 5.5"`},
		{Symbol: "③", Description: `leg (8x): 12" × 1.5"`},
		{Symbol: "④", Description: `bottom Slat (3x): 24" × 5.5"`},
		{Symbol: "📦", Description: "Capacity: 2.00 ft³ (15.0 gallons)"},
	}, layout.Legend)
}

func TestComputeLayout_TopRimAddsTwoCategories(t *testing.T) {
	without, err := ComputeLayout(exampleConfig())
	require.NoError(t, err)

	cfg := exampleConfig()
	cfg.Box.HasTopRim = true
	cfg.Box.TopRimWidth = 1
	with, err := ComputeLayout(cfg)
	require.NoError(t, err)
	assertLayoutInvariants(t, with)

	count := func(l model.Layout) int {
		n := 0
		l.Parts.Each(func(model.PartKey, model.Part) { n++ })
		return n
	}
	assert.Equal(t, count(without)+2, count(with))

	require.True(t, with.Parts.Rim.Present)
	assert.Equal(t, model.Part{Length: 27, Width: 1, Count: 2, Symbol: "⑤"}, with.Parts.Rim.Length)
	assert.Equal(t, model.Part{Length: 15, Width: 1, Count: 2, Symbol: "⑥"}, with.Parts.Rim.Width)

	tail := with.CutPatterns[len(with.CutPatterns)-2:]
	assert.Equal(t, []model.CutPattern{
		{Part: model.PartTopRimLength, Count: 2, Planks: 1, Ripped: true},
		{Part: model.PartTopRimWidth, Count: 2, Planks: 1, Ripped: true},
	}, tail)

	rim := with.Planks[5]
	assert.Equal(t, model.PlankRipped, rim.Type)
	require.Len(t, rim.Strips, 1)
	assert.Equal(t, 41.875, rim.Strips[0].Cuts[1].Length)
	assert.Len(t, with.Legend, len(without.Legend)+2)
}

func TestComputeLayout_DerivedSlatsNegativeGap(t *testing.T) {
	cfg := exampleConfig()
	cfg.Box.BottomSlats = nil

	layout, err := ComputeLayout(cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, layout.BottomSlats)
	assert.Equal(t, 3, layout.Parts.BottomSlat.Count)
	assert.InDelta(t, -4.5, layout.BottomSlatGap, 1e-9)
	for _, item := range layout.Legend {
		assert.NotContains(t, item.Description, "gap remaining")
	}
}

func TestComputeLayout_PositiveGapInLegend(t *testing.T) {
	cfg := exampleConfig()
	cfg.Box.BottomSlats = model.IntPtr(2)

	layout, err := ComputeLayout(cfg)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, layout.BottomSlatGap, 1e-9)
	assert.Equal(t, `bottom Slat (2x): 24" × 5.5" (1.00" gap remaining)`, layout.Legend[3].Description)
}

func TestComputeLayout_Deterministic(t *testing.T) {
	cfg := model.DefaultConfig()
	a, err := ComputeLayout(cfg)
	require.NoError(t, err)
	b, err := ComputeLayout(cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assertLayoutInvariants(t, a)
}

func TestComputeLayout_InputNotMutated(t *testing.T) {
	cfg := exampleConfig()
	before := cfg.Clone()

	layout, err := ComputeLayout(cfg)
	require.NoError(t, err)
	layout.Box.Height = 99

	assert.Equal(t, before, cfg)
}

func TestComputeLayout_InvalidInputReturnsConfig(t *testing.T) {
	cases := map[string]func(*model.PlanterConfig){
		"zero plank length":   func(c *model.PlanterConfig) { c.PlankLength = 0 },
		"zero plank width":    func(c *model.PlanterConfig) { c.PlankWidth = 0 },
		"missing box":         func(c *model.PlanterConfig) { c.Box = nil },
		"negative kerf":       func(c *model.PlanterConfig) { c.Kerf = -1 },
		"zero height":         func(c *model.PlanterConfig) { c.Box.Height = 0 },
		"zero leg width":      func(c *model.PlanterConfig) { c.Box.LegWidth = 0 },
		"rim without width":   func(c *model.PlanterConfig) { c.Box.HasTopRim = true; c.Box.TopRimWidth = 0 },
		"negative slat count": func(c *model.PlanterConfig) { c.Box.BottomSlats = model.IntPtr(-1) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := exampleConfig()
			mutate(&cfg)

			layout, err := ComputeLayout(cfg)
			require.NoError(t, err)
			assert.False(t, layout.Computed())
			assert.Equal(t, cfg, layout.PlanterConfig)
			assert.Empty(t, layout.Planks)
			assert.Empty(t, layout.Legend)
		})
	}
}

func TestComputeLayout_PartLongerThanPlank(t *testing.T) {
	cfg := exampleConfig()
	cfg.Box.InteriorLength = 100

	layout, err := ComputeLayout(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPartExceedsStock))
	assert.Contains(t, err.Error(), "side Panel Length")
	assert.False(t, layout.Computed())
}

func TestComputeLayout_RimWiderThanPlank(t *testing.T) {
	cfg := exampleConfig()
	cfg.Box.HasTopRim = true
	cfg.Box.TopRimWidth = 6

	_, err := ComputeLayout(cfg)
	assert.ErrorIs(t, err, ErrPartExceedsStock)
}

func TestComputeLayout_ShortBoxHasNoSidePanels(t *testing.T) {
	cfg := exampleConfig()
	cfg.Box.Height = 5

	layout, err := ComputeLayout(cfg)
	require.NoError(t, err)
	assertLayoutInvariants(t, layout)

	assert.Equal(t, 0, layout.PanelRows)
	for _, p := range layout.CutPatterns {
		assert.NotEqual(t, model.PartSidePanelLength, p.Part)
		assert.NotEqual(t, model.PartSidePanelWidth, p.Part)
	}
	assert.Equal(t, "③", layout.Legend[0].Symbol)
}

func TestComputeLayout_SparePlanks(t *testing.T) {
	cfg := exampleConfig()
	cfg.SparePlanks = 2

	layout, err := ComputeLayout(cfg)
	require.NoError(t, err)
	assertLayoutInvariants(t, layout)

	assert.Equal(t, 7, layout.TotalPlanks)
	assert.Equal(t, model.PlankSpare, layout.Planks[5].Type)
	assert.Equal(t, model.PlankSpare, layout.Planks[6].Type)
	assert.Equal(t, "Plank 7", layout.Planks[6].Label)
}

func TestComputeLayout_DefaultConfig(t *testing.T) {
	layout, err := ComputeLayout(model.DefaultConfig())
	require.NoError(t, err)
	assertLayoutInvariants(t, layout)

	assert.Equal(t, 2, layout.PanelRows)
	assert.True(t, layout.Parts.Rim.Present)
	assert.Equal(t, 8, layout.TotalPlanks)
}

func TestComputeLayout_CountLimits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *model.PlanterConfig)
	}{
		{"explicit slats", func(cfg *model.PlanterConfig) { cfg.Box.BottomSlats = model.IntPtr(3_000_000) }},
		{"spare planks", func(cfg *model.PlanterConfig) { cfg.SparePlanks = 3_000_000 }},
		{"panel rows", func(cfg *model.PlanterConfig) { cfg.Box.Height = 1e9 }},
		{"derived slats", func(cfg *model.PlanterConfig) { cfg.Box.InteriorWidth = 1e300 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := exampleConfig()
			tt.mutate(&cfg)

			layout, err := ComputeLayout(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTooManyPieces)
			assert.False(t, layout.Computed())
			assert.Empty(t, layout.Planks)
		})
	}
}

func TestComputeLayout_AtCountLimit(t *testing.T) {
	cfg := exampleConfig()
	cfg.Box.BottomSlats = model.IntPtr(maxPieces)
	cfg.SparePlanks = maxPieces

	layout, err := ComputeLayout(cfg)
	require.NoError(t, err)
	assert.Equal(t, maxPieces, layout.Parts.BottomSlat.Count)
}

func TestComputeLayout_HugeDimensionsInError(t *testing.T) {
	cfg := exampleConfig()
	cfg.Box.InteriorLength = 1e300

	_, err := ComputeLayout(cfg)
	require.ErrorIs(t, err, ErrPartExceedsStock)
	assert.Contains(t, err.Error(), "1e+300")
	assert.Less(t, len(err.Error()), 200)
}
