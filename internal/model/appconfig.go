package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default stock applied to new projects
	DefaultPlankLength    float64 `json:"default_plank_length"`
	DefaultPlankWidth     float64 `json:"default_plank_width"`
	DefaultPlankThickness float64 `json:"default_plank_thickness"`
	DefaultKerf           float64 `json:"default_kerf"`

	// Purchasing
	PricePerPlank   float64 `json:"price_per_plank"`
	WastePercent    float64 `json:"waste_percent"`
	MinOffcutLength float64 `json:"min_offcut_length"` // inches

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the stock of DefaultConfig().
func DefaultAppConfig() AppConfig {
	defaults := DefaultConfig()
	return AppConfig{
		DefaultPlankLength:    defaults.PlankLength,
		DefaultPlankWidth:     defaults.PlankWidth,
		DefaultPlankThickness: defaults.PlankThickness,
		DefaultKerf:           defaults.Kerf,
		PricePerPlank:         0,
		WastePercent:          10,
		MinOffcutLength:       DefaultMinOffcutLength,
		RecentProjects:        []string{},
		Theme:                 "system",
	}
}

// ApplyToConfig copies the default stock from AppConfig into a PlanterConfig.
// This is used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToConfig(cfg *PlanterConfig) {
	cfg.PlankLength = c.DefaultPlankLength
	cfg.PlankWidth = c.DefaultPlankWidth
	cfg.PlankThickness = c.DefaultPlankThickness
	cfg.Kerf = c.DefaultKerf
}

// maxRecentProjects bounds the recent-files list.
const maxRecentProjects = 10

// AddRecent moves path to the front of the recent-files list.
func (c *AppConfig) AddRecent(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
