package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles the page and the CLI render with.
type Theme struct {
	Name      string
	Heading   lipgloss.Style
	Paragraph lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Border    lipgloss.Border
	BorderFg  lipgloss.TerminalColor
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// ThemeByName returns classic, neon or mono. Unknown names fall back to classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:      "neon",
			Heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Paragraph: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Border:    lipgloss.RoundedBorder(),
			BorderFg:  lipgloss.Color("13"),
		}
	case "mono":
		return Theme{
			Name:      "mono",
			Heading:   lipgloss.NewStyle(),
			Paragraph: lipgloss.NewStyle(),
			Muted:     lipgloss.NewStyle(),
			Success:   lipgloss.NewStyle(),
			Error:     lipgloss.NewStyle(),
			Border:    asciiBorder,
			BorderFg:  lipgloss.NoColor{},
		}
	default:
		return Theme{
			Name:      "classic",
			Heading:   lipgloss.NewStyle().Bold(true),
			Paragraph: lipgloss.NewStyle(),
			Muted:     lipgloss.NewStyle().Faint(true),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Border:    lipgloss.RoundedBorder(),
			BorderFg:  lipgloss.Color("8"),
		}
	}
}

// Panel draws inner inside a padded box using the theme's border.
func (t Theme) Panel(inner string) string {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderFg).
		Padding(0, 1).
		Render(inner)
}
