package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestThemeForPreference(t *testing.T) {
	dark := ThemeForPreference("dark")
	if dark.system || dark.variant != theme.VariantDark {
		t.Errorf("expected fixed dark variant, got system=%v variant=%v", dark.system, dark.variant)
	}

	light := ThemeForPreference("light")
	if light.system || light.variant != theme.VariantLight {
		t.Errorf("expected fixed light variant, got system=%v variant=%v", light.system, light.variant)
	}

	sys := ThemeForPreference("system")
	if !sys.system {
		t.Error("expected system theme to follow the system variant")
	}
}

func TestThemeCompactSizes(t *testing.T) {
	th := NewPlanterCutTheme()
	if got := th.Size(theme.SizeNameText); got != 12 {
		t.Errorf("expected text size 12, got %f", got)
	}
	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("expected padding 3, got %f", got)
	}
}
