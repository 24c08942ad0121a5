package model

import (
	"strings"
	"unicode"
)

// PartKey identifies one category of identical pieces in the planter box.
type PartKey string

const (
	PartSidePanelLength PartKey = "sidePanelLength" // Wall courses along the interior length
	PartSidePanelWidth  PartKey = "sidePanelWidth"  // Wall courses along the interior width
	PartLeg             PartKey = "leg"             // Corner legs, two per corner
	PartBottomSlat      PartKey = "bottomSlat"      // Floor slats running lengthwise
	PartTopRimLength    PartKey = "topRimLength"    // Rim pieces over the length walls
	PartTopRimWidth     PartKey = "topRimWidth"     // Rim pieces over the width walls
)

// PartKeys lists every category in display order.
var PartKeys = []PartKey{
	PartSidePanelLength,
	PartSidePanelWidth,
	PartLeg,
	PartBottomSlat,
	PartTopRimLength,
	PartTopRimWidth,
}

// Symbol returns the circled numeral used for the category on cut lists
// and diagrams.
func (k PartKey) Symbol() string {
	switch k {
	case PartSidePanelLength:
		return "①"
	case PartSidePanelWidth:
		return "②"
	case PartLeg:
		return "③"
	case PartBottomSlat:
		return "④"
	case PartTopRimLength:
		return "⑤"
	case PartTopRimWidth:
		return "⑥"
	default:
		return "?"
	}
}

// Humanize splits the camel-case key on capitals, e.g. "side Panel Length".
func (k PartKey) Humanize() string {
	var b strings.Builder
	for _, r := range string(k) {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// StripRipped reports whether the category is cut from ripped strips
// stacked across the plank width when narrower than the stock.
func (k PartKey) StripRipped() bool {
	return k == PartLeg || k == PartTopRimLength || k == PartTopRimWidth
}

// Part is a named category of identical pieces.
type Part struct {
	Length float64 `json:"length"` // inches
	Width  float64 `json:"width"`  // inches
	Count  int     `json:"count"`
	Symbol string  `json:"symbol"`
}

// RimParts holds the two top rim categories. Present is false when the box
// has no rim, in which case Length and Width are zero values.
type RimParts struct {
	Present bool `json:"present"`
	Length  Part `json:"length"`
	Width   Part `json:"width"`
}

// Parts is the bill of parts derived from a box configuration.
type Parts struct {
	SidePanelLength Part     `json:"sidePanelLength"`
	SidePanelWidth  Part     `json:"sidePanelWidth"`
	Leg             Part     `json:"leg"`
	BottomSlat      Part     `json:"bottomSlat"`
	Rim             RimParts `json:"rim"`
}

// Get returns the part for a key. The second result is false for rim keys
// when the rim is absent and for unknown keys.
func (p Parts) Get(k PartKey) (Part, bool) {
	switch k {
	case PartSidePanelLength:
		return p.SidePanelLength, true
	case PartSidePanelWidth:
		return p.SidePanelWidth, true
	case PartLeg:
		return p.Leg, true
	case PartBottomSlat:
		return p.BottomSlat, true
	case PartTopRimLength:
		return p.Rim.Length, p.Rim.Present
	case PartTopRimWidth:
		return p.Rim.Width, p.Rim.Present
	}
	return Part{}, false
}

// Each calls fn for every present category in display order.
func (p Parts) Each(fn func(PartKey, Part)) {
	for _, k := range PartKeys {
		if part, ok := p.Get(k); ok {
			fn(k, part)
		}
	}
}

// CutPattern assigns a number of pieces of one category to one stock plank.
type CutPattern struct {
	Part   PartKey `json:"part,omitempty"`
	Count  int     `json:"count,omitempty"`
	Planks int     `json:"planks"`
	Ripped bool    `json:"ripped,omitempty"`
	Spare  bool    `json:"spare,omitempty"`
}

// PlankType selects how a plank is drawn on the cut list.
type PlankType string

const (
	PlankNormal PlankType = "normal"
	PlankRipped PlankType = "ripped"
	PlankSpare  PlankType = "spare"
)

// Cut is a run of same-length pieces, or the spare segment after them.
type Cut struct {
	Length   float64 `json:"length"`
	Label    string  `json:"label"`
	Count    int     `json:"count,omitempty"`
	Spare    bool    `json:"spare,omitempty"`
	RipLabel string  `json:"ripLabel,omitempty"`
}

// Pieces returns how many physical segments the cut represents.
func (c Cut) Pieces() int {
	if c.Count < 1 {
		return 1
	}
	return c.Count
}

// Strip is one lengthwise slice of a ripped plank.
type Strip struct {
	RipLabel string `json:"ripLabel"`
	Cuts     []Cut  `json:"cuts"`
}

// Plank is one physical stock board after layout.
type Plank struct {
	Label    string    `json:"label"`
	Type     PlankType `json:"type"`
	Cuts     []Cut     `json:"cuts,omitempty"`
	Strips   []Strip   `json:"strips,omitempty"`
	RipWidth float64   `json:"ripWidth,omitempty"`
}

// Rows returns the rows of cuts on the plank: the strips of a ripped plank,
// the single row of a normal plank, or nothing for a spare plank.
func (p Plank) Rows() [][]Cut {
	switch p.Type {
	case PlankRipped:
		rows := make([][]Cut, 0, len(p.Strips))
		for _, s := range p.Strips {
			rows = append(rows, s.Cuts)
		}
		return rows
	case PlankNormal:
		return [][]Cut{p.Cuts}
	default:
		return nil
	}
}

// LegendItem is one line of the cut-list legend.
type LegendItem struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// Layout is a planter configuration expanded with everything the planner
// derives from it. A Layout whose Parts is nil was not computable.
type Layout struct {
	PlanterConfig
	PanelRows     int          `json:"panelRows,omitempty"`
	BottomSlats   int          `json:"bottomSlats,omitempty"` // resolved slat count
	BottomSlatGap float64      `json:"bottomSlatGap,omitempty"`
	Parts         *Parts       `json:"parts,omitempty"`
	CutPatterns   []CutPattern `json:"cutPatterns,omitempty"`
	TotalPlanks   int          `json:"totalPlanks,omitempty"`
	Planks        []Plank      `json:"planks,omitempty"`
	Legend        []LegendItem `json:"legend,omitempty"`
}

// Computed reports whether the planner derived parts for the layout.
func (l Layout) Computed() bool {
	return l.Parts != nil
}
