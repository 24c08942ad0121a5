package model

// BoxConfig holds the user-specified planter geometry, in inches.
type BoxConfig struct {
	InteriorLength float64 `json:"interiorLength" yaml:"interiorLength"`
	InteriorWidth  float64 `json:"interiorWidth" yaml:"interiorWidth"`
	Height         float64 `json:"height" yaml:"height"`
	LegWidth       float64 `json:"legWidth" yaml:"legWidth"`
	LegGap         float64 `json:"legGap" yaml:"legGap"` // Elevation below the box, added to leg length
	HasTopRim      bool    `json:"hasTopRim" yaml:"hasTopRim"`
	TopRimWidth    float64 `json:"topRimWidth" yaml:"topRimWidth"`
	BottomSlats    *int    `json:"bottomSlats,omitempty" yaml:"bottomSlats,omitempty"` // nil = derive from interior width
}

// Volume returns the interior volume in cubic inches.
func (b BoxConfig) Volume() float64 {
	return b.InteriorLength * b.InteriorWidth * b.Height
}

// StockConfig describes the lumber the box is cut from.
type StockConfig struct {
	PlankLength    float64 `json:"plankLength" yaml:"plankLength"`
	PlankWidth     float64 `json:"plankWidth" yaml:"plankWidth"`
	PlankThickness float64 `json:"plankThickness" yaml:"plankThickness"` // cosmetic only
	Kerf           float64 `json:"kerf" yaml:"kerf"`                     // material lost per cut
}

// PlanterConfig is the flat record edited by the user: a title, the stock,
// and the box. A nil Box means the configuration is not complete yet.
type PlanterConfig struct {
	Title       string `json:"title" yaml:"title"`
	StockConfig `yaml:",inline"`
	Box         *BoxConfig `json:"box,omitempty" yaml:"box,omitempty"`
	SparePlanks int        `json:"sparePlanks" yaml:"sparePlanks"` // Whole spare planks appended to the cut list
}

// Clone returns a copy that shares no pointers with c.
func (c PlanterConfig) Clone() PlanterConfig {
	out := c
	if c.Box != nil {
		box := *c.Box
		if c.Box.BottomSlats != nil {
			n := *c.Box.BottomSlats
			box.BottomSlats = &n
		}
		out.Box = &box
	}
	return out
}

// IntPtr returns a pointer to n, for optional config fields.
func IntPtr(n int) *int {
	return &n
}

// DefaultConfig returns the configuration a new project starts from:
// a cedar planter cut from 6' fence pickets.
func DefaultConfig() PlanterConfig {
	return PlanterConfig{
		Title: "Cedar Planter",
		StockConfig: StockConfig{
			PlankLength:    72,
			PlankWidth:     5.5,
			PlankThickness: 0.625,
			Kerf:           0.125,
		},
		Box: &BoxConfig{
			InteriorLength: 30,
			InteriorWidth:  14,
			Height:         11,
			LegWidth:       1.5,
			LegGap:         2,
			HasTopRim:      true,
			TopRimWidth:    2.75,
		},
		SparePlanks: 0,
	}
}
