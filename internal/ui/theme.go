// Package ui provides the PlanterCut desktop viewer.
//
// This file defines a compact Fyne theme for a dense layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PlanterCutTheme wraps the default Fyne theme with compact sizing and a
// fixed light/dark variant chosen in preferences.
type PlanterCutTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool
}

// NewPlanterCutTheme creates a theme that follows the system variant.
func NewPlanterCutTheme() *PlanterCutTheme {
	return &PlanterCutTheme{
		base:   theme.DefaultTheme(),
		system: true,
	}
}

// ThemeForPreference maps the AppConfig theme name ("light", "dark",
// "system") to a theme.
func ThemeForPreference(name string) *PlanterCutTheme {
	t := NewPlanterCutTheme()
	t.SetPreference(name)
	return t
}

// SetPreference updates the variant from an AppConfig theme name.
func (t *PlanterCutTheme) SetPreference(name string) {
	switch name {
	case "light":
		t.variant, t.system = theme.VariantLight, false
	case "dark":
		t.variant, t.system = theme.VariantDark, false
	default:
		t.system = true
	}
}

// Color delegates to the base theme, forcing the stored variant unless the
// theme follows the system.
func (t *PlanterCutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.system {
		return t.base.Color(name, variant)
	}
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *PlanterCutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *PlanterCutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *PlanterCutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
