package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// ErrPartExceedsStock is returned when not even one piece of a part fits
// on a stock plank.
var ErrPartExceedsStock = errors.New("part does not fit on stock plank")

// ErrTooManyPieces is returned when a part count or the number of spare
// planks exceeds maxPieces.
var ErrTooManyPieces = errors.New("too many pieces")

// maxPieces bounds every part count and the spare planks of one layout.
const maxPieces = 1000

// RipStrategy selects how pieces are laid out across the plank width.
type RipStrategy int

const (
	// RipNone cuts pieces end to end along the full plank width.
	RipNone RipStrategy = iota
	// RipStrips rips the plank into strips of the part width first and
	// cuts pieces end to end along every strip.
	RipStrips
)

func (s RipStrategy) String() string {
	if s == RipStrips {
		return "strips"
	}
	return "none"
}

// strategyFor returns the rip strategy used for a part category.
func strategyFor(k model.PartKey) RipStrategy {
	if k.StripRipped() {
		return RipStrips
	}
	return RipNone
}

// piecesPerStrip returns how many pieces of partLength fit end to end on
// one run of plankLength. n pieces need n-1 kerfs.
func piecesPerStrip(plankLength, partLength, kerf float64) int {
	n := math.Floor((plankLength + kerf) / (partLength + kerf))
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// Pack greedily assigns count pieces of a part to stock planks, filling
// each plank to capacity before starting the next. Every returned pattern
// covers exactly one plank.
func Pack(key model.PartKey, part model.Part, stock model.StockConfig, strategy RipStrategy) ([]model.CutPattern, error) {
	if part.Count <= 0 {
		return nil, nil
	}

	if part.Count > maxPieces {
		return nil, fmt.Errorf("%s: %d pieces, limit %d: %w", key.Humanize(), part.Count, maxPieces, ErrTooManyPieces)
	}

	// Capacity is computed in floats and capped at the piece count so huge
	// stock cannot overflow the int conversion.
	capacity := math.Floor((stock.PlankLength + stock.Kerf) / (part.Length + stock.Kerf))
	if strategy == RipStrips {
		capacity *= math.Floor(stock.PlankWidth / part.Width)
	}
	if !(capacity >= 1) {
		return nil, fmt.Errorf("%s %g\" x %g\" on %g\" x %g\" plank: %w",
			key.Humanize(), part.Length, part.Width, stock.PlankLength, stock.PlankWidth,
			ErrPartExceedsStock)
	}
	perPlank := int(math.Min(capacity, float64(part.Count)))

	units := (part.Count + perPlank - 1) / perPlank
	patterns := make([]model.CutPattern, 0, units)
	remaining := part.Count
	for i := 0; i < units; i++ {
		n := min(perPlank, remaining)
		patterns = append(patterns, model.CutPattern{
			Part:   key,
			Count:  n,
			Planks: 1,
			Ripped: strategy == RipStrips,
		})
		remaining -= n
	}
	return patterns, nil
}
