package model

// StockPreset is a named lumber size offered in stock pickers.
type StockPreset struct {
	Name string `json:"name" yaml:"name"`
	StockConfig
}

// NewStockPreset creates a stock preset for a nominal board.
func NewStockPreset(name string, length, width, thickness, kerf float64) StockPreset {
	return StockPreset{
		Name: name,
		StockConfig: StockConfig{
			PlankLength:    length,
			PlankWidth:     width,
			PlankThickness: thickness,
			Kerf:           kerf,
		},
	}
}

// StockCatalog lists the lumber sizes the user can pick from.
type StockCatalog struct {
	Stocks []StockPreset `json:"stocks"`
}

// DefaultStockCatalog returns common dimensional lumber and fence pickets,
// in actual (not nominal) inches, with a standard 1/8" blade kerf.
func DefaultStockCatalog() StockCatalog {
	return StockCatalog{
		Stocks: []StockPreset{
			NewStockPreset("Cedar picket 5/8x5-1/2x6'", 72, 5.5, 0.625, 0.125),
			NewStockPreset("1x6x6'", 72, 5.5, 0.75, 0.125),
			NewStockPreset("1x6x8'", 96, 5.5, 0.75, 0.125),
			NewStockPreset("1x8x8'", 96, 7.25, 0.75, 0.125),
			NewStockPreset("1x10x8'", 96, 9.25, 0.75, 0.125),
			NewStockPreset("1x12x8'", 96, 11.25, 0.75, 0.125),
			NewStockPreset("2x6x8'", 96, 5.5, 1.5, 0.125),
			NewStockPreset("2x8x10'", 120, 7.25, 1.5, 0.125),
		},
	}
}

// Names returns the preset names for UI dropdowns.
func (c *StockCatalog) Names() []string {
	names := make([]string, len(c.Stocks))
	for i, s := range c.Stocks {
		names[i] = s.Name
	}
	return names
}

// FindByName returns a pointer to the first stock preset with the given name, or nil.
func (c *StockCatalog) FindByName(name string) *StockPreset {
	for i := range c.Stocks {
		if c.Stocks[i].Name == name {
			return &c.Stocks[i]
		}
	}
	return nil
}

// Apply copies the preset's stock dimensions into cfg, keeping the box.
func (s StockPreset) Apply(cfg *PlanterConfig) {
	cfg.StockConfig = s.StockConfig
}
