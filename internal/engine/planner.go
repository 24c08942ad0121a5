package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// legCount is two legs per corner, one under each wall end.
const legCount = 8

// rimCount is the number of rim pieces per run.
const rimCount = 2

// ComputeLayout derives the bill of parts for cfg, packs it onto stock
// planks and builds the cut list and legend.
//
// A config that cannot be laid out yet (no box, non-positive dimensions,
// negative kerf) comes back as an uncomputed Layout with a nil error.
// A part that does not fit on the stock at all yields ErrPartExceedsStock.
// Part counts or spare planks above maxPieces yield ErrTooManyPieces.
func ComputeLayout(cfg model.PlanterConfig) (model.Layout, error) {
	cfg = cfg.Clone()
	if !computable(cfg) {
		return model.Layout{PlanterConfig: cfg}, nil
	}
	if err := checkCounts(cfg); err != nil {
		return model.Layout{PlanterConfig: cfg}, err
	}
	box := *cfg.Box

	panelRows := int(math.Floor(box.Height / cfg.PlankWidth))
	slats := int(math.Ceil(box.InteriorWidth / cfg.PlankWidth))
	if box.BottomSlats != nil {
		slats = *box.BottomSlats
	}
	slatGap := box.InteriorWidth - float64(slats)*cfg.PlankWidth

	parts := deriveParts(box, cfg.StockConfig, panelRows, slats)

	var patterns []model.CutPattern
	var err error
	parts.Each(func(k model.PartKey, p model.Part) {
		if err != nil {
			return
		}
		var ps []model.CutPattern
		ps, err = Pack(k, p, cfg.StockConfig, strategyFor(k))
		patterns = append(patterns, ps...)
	})
	if err != nil {
		return model.Layout{PlanterConfig: cfg}, fmt.Errorf("failed to pack parts: %w", err)
	}
	for i := 0; i < cfg.SparePlanks; i++ {
		patterns = append(patterns, model.CutPattern{Planks: 1, Spare: true})
	}

	total := 0
	for _, p := range patterns {
		total += p.Planks
	}

	return model.Layout{
		PlanterConfig: cfg,
		PanelRows:     panelRows,
		BottomSlats:   slats,
		BottomSlatGap: slatGap,
		Parts:         &parts,
		CutPatterns:   patterns,
		TotalPlanks:   total,
		Planks:        buildPlanks(patterns, parts, cfg.StockConfig),
		Legend:        buildLegend(parts, box, slatGap),
	}, nil
}

func computable(cfg model.PlanterConfig) bool {
	if cfg.Box == nil || cfg.PlankLength <= 0 || cfg.PlankWidth <= 0 || cfg.Kerf < 0 {
		return false
	}
	b := cfg.Box
	if b.InteriorLength <= 0 || b.InteriorWidth <= 0 || b.Height <= 0 || b.LegWidth <= 0 || b.LegGap < 0 {
		return false
	}
	if b.HasTopRim && b.TopRimWidth <= 0 {
		return false
	}
	if b.BottomSlats != nil && *b.BottomSlats < 0 {
		return false
	}
	return true
}

// checkCounts rejects configs whose derived counts exceed maxPieces. It
// works on floats so absurd dimensions are caught before int conversion.
func checkCounts(cfg model.PlanterConfig) error {
	box := cfg.Box
	rows := math.Floor(box.Height / cfg.PlankWidth)
	if rows*2 > maxPieces {
		return fmt.Errorf("%g panel rows, limit %d pieces per side: %w", rows, maxPieces, ErrTooManyPieces)
	}
	slats := math.Ceil(box.InteriorWidth / cfg.PlankWidth)
	if box.BottomSlats != nil {
		slats = float64(*box.BottomSlats)
	}
	if slats > maxPieces {
		return fmt.Errorf("%g bottom slats, limit %d: %w", slats, maxPieces, ErrTooManyPieces)
	}
	if cfg.SparePlanks > maxPieces {
		return fmt.Errorf("%d spare planks, limit %d: %w", cfg.SparePlanks, maxPieces, ErrTooManyPieces)
	}
	return nil
}

func deriveParts(box model.BoxConfig, stock model.StockConfig, panelRows, slats int) model.Parts {
	parts := model.Parts{
		SidePanelLength: model.Part{
			Length: box.InteriorLength,
			Width:  stock.PlankWidth,
			Count:  panelRows * 2,
			Symbol: model.PartSidePanelLength.Symbol(),
		},
		SidePanelWidth: model.Part{
			Length: box.InteriorWidth,
			Width:  stock.PlankWidth,
			Count:  panelRows * 2,
			Symbol: model.PartSidePanelWidth.Symbol(),
		},
		Leg: model.Part{
			Length: box.Height + box.LegGap,
			Width:  box.LegWidth,
			Count:  legCount,
			Symbol: model.PartLeg.Symbol(),
		},
		BottomSlat: model.Part{
			Length: box.InteriorLength,
			Width:  stock.PlankWidth,
			Count:  slats,
			Symbol: model.PartBottomSlat.Symbol(),
		},
	}

	if box.HasTopRim {
		parts.Rim = model.RimParts{
			Present: true,
			Length: model.Part{
				Length: box.InteriorLength + 2*box.LegWidth,
				Width:  box.TopRimWidth,
				Count:  rimCount,
				Symbol: model.PartTopRimLength.Symbol(),
			},
			Width: model.Part{
				Length: box.InteriorWidth + 2*box.LegWidth,
				Width:  box.TopRimWidth,
				Count:  rimCount,
				Symbol: model.PartTopRimWidth.Symbol(),
			},
		}
	}
	return parts
}
