package model

import "sort"

// Offcut is a spare segment long enough to be worth keeping for another
// project or for re-cutting a botched piece.
type Offcut struct {
	PlankLabel string  `json:"plank_label"` // Which plank it comes from
	Row        int     `json:"row"`         // Strip index on a ripped plank, 0 otherwise
	Length     float64 `json:"length"`      // inches
	Width      float64 `json:"width"`       // inches
}

// DefaultMinOffcutLength is the shortest spare (in inches) reported as an
// offcut. Anything shorter is waste.
const DefaultMinOffcutLength = 6.0

// DetectOffcuts collects the spare segments of a layout that are at least
// minLength long, longest first. Whole spare planks count as offcuts of
// full plank length. Ties keep cut-list order.
func DetectOffcuts(layout Layout, minLength float64) []Offcut {
	var offcuts []Offcut
	for _, p := range layout.Planks {
		switch p.Type {
		case PlankSpare:
			if layout.PlankLength >= minLength {
				offcuts = append(offcuts, Offcut{
					PlankLabel: p.Label,
					Length:     layout.PlankLength,
					Width:      layout.PlankWidth,
				})
			}
		case PlankRipped:
			for i, s := range p.Strips {
				for _, c := range s.Cuts {
					if c.Spare && c.Length >= minLength {
						offcuts = append(offcuts, Offcut{
							PlankLabel: p.Label,
							Row:        i,
							Length:     c.Length,
							Width:      p.RipWidth,
						})
					}
				}
			}
		default:
			width := layout.PlankWidth
			if p.RipWidth > 0 {
				width = p.RipWidth
			}
			for _, c := range p.Cuts {
				if c.Spare && c.Length >= minLength {
					offcuts = append(offcuts, Offcut{
						PlankLabel: p.Label,
						Length:     c.Length,
						Width:      width,
					})
				}
			}
		}
	}

	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Length > offcuts[j].Length
	})
	return offcuts
}

// TotalOffcutLength returns the summed length of all offcuts in inches.
func TotalOffcutLength(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Length
	}
	return total
}
