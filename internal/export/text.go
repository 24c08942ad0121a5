package export

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/piwi3910/PlanterCut/internal/model"
)

var (
	textTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#7d5a3a", Dark: "#d2a56d"})

	textLegendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

	textPlankStyle = lipgloss.NewStyle().
			Bold(true).
			Width(10)

	textRipStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"})

	textSpareStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})

	textMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
)

// RenderText formats the cut list of a layout for the terminal: title,
// legend and one line per plank (one per strip on ripped planks).
func RenderText(layout model.Layout) string {
	if !layout.Computed() {
		return textMutedStyle.Render("Configuration incomplete: set box and stock dimensions.") + "\n"
	}

	var b strings.Builder
	b.WriteString(textTitleStyle.Render(cutListTitle(layout)))
	b.WriteString("\n\n")

	for _, item := range layout.Legend {
		b.WriteString(textLegendStyle.Render(item.Symbol + " " + item.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	indent := strings.Repeat(" ", 10)
	for _, p := range layout.Planks {
		switch p.Type {
		case model.PlankSpare:
			b.WriteString(textPlankStyle.Render(p.Label))
			b.WriteString(textSpareStyle.Render("spare plank"))
			b.WriteString("\n")
		case model.PlankRipped:
			b.WriteString(textPlankStyle.Render(p.Label))
			b.WriteString(textRipStyle.Render("rip to " + model.FormatInches(p.RipWidth)))
			b.WriteString("\n")
			for _, s := range p.Strips {
				b.WriteString(indent)
				b.WriteString(renderRow(s.Cuts))
				b.WriteString("\n")
			}
		default:
			b.WriteString(textPlankStyle.Render(p.Label))
			b.WriteString(renderRow(p.Cuts))
			if p.RipWidth > 0 {
				b.WriteString(" ")
				b.WriteString(textRipStyle.Render("(rip to " + model.FormatInches(p.RipWidth) + ")"))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderRow(row []model.Cut) string {
	var used, spare []model.Cut
	for _, c := range row {
		if c.Spare {
			spare = append(spare, c)
		} else {
			used = append(used, c)
		}
	}
	out := cutSummary(used)
	if len(spare) > 0 {
		out += " | " + textSpareStyle.Render(cutSummary(spare))
	}
	return out
}
