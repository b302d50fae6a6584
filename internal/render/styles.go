// Package render draws dashboard view-models as styled terminal text.
//
// Nothing here computes statistics: every number arrives precomputed in a
// dashboard page and is only formatted.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Farm palette.
var (
	LightForeground = lipgloss.Color("#1f2d1a")
	LightPrimary    = lipgloss.Color("#2e7d32")
	LightAccent     = lipgloss.Color("#8bc34a")
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#c8d6c0")

	DarkForeground = lipgloss.Color("#eef2ea")
	DarkPrimary    = lipgloss.Color("#8bc34a")
	DarkAccent     = lipgloss.Color("#4caf50")
	DarkMuted      = lipgloss.Color("#9ca3af")
	DarkBorder     = lipgloss.Color("#3b4a36")

	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#43a047")
	Warning     = lipgloss.Color("#ffb300")
	Info        = lipgloss.Color("#1e88e5")
)

// Theme is a color scheme.
type Theme struct {
	Name       string
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
}

// LightTheme returns the scheme for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the scheme for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
	}
}

// ThemeFor resolves a configured theme name. "auto" (or empty) inspects
// colorfgbg, the value of $COLORFGBG ("fg;bg"): background indexes 0-6 and
// 8 are dark.
func ThemeFor(name, colorfgbg string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	}

	parts := strings.Split(colorfgbg, ";")
	if len(parts) >= 2 {
		bg, err := strconv.Atoi(parts[len(parts)-1])
		if err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}

	return LightTheme()
}

// Styles holds the styled components used by page renderers.
type Styles struct {
	Theme Theme

	renderer *lipgloss.Renderer

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Card      lipgloss.Style
	CardLabel lipgloss.Style
	CardValue lipgloss.Style
	Divider   lipgloss.Style
	Badge     lipgloss.Style
}

// NewStyles creates styles for theme bound to the color profile of w.
// Writers that are not terminals get plain text.
func NewStyles(w io.Writer, theme Theme) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Theme:    theme,
		renderer: r,

		Title: r.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: r.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: r.NewStyle().
			Foreground(theme.Foreground),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Bold: r.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: r.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: r.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: r.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: r.NewStyle().
			Foreground(Info),

		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		CardLabel: r.NewStyle().
			Foreground(theme.Muted),

		CardValue: r.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Divider: r.NewStyle().
			Foreground(theme.Border),

		Badge: r.NewStyle().
			Foreground(theme.Accent).
			Bold(true),
	}
}

// Progress returns a bar of width cells in the theme's accent color. It
// draws with the color profile of the styles' writer and prints no
// percentage.
func (s Styles) Progress(width int) progress.Model {
	r := s.renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	bar := progress.New(
		progress.WithSolidFill(string(s.Theme.Accent)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
		progress.WithColorProfile(r.ColorProfile()),
	)
	bar.EmptyColor = string(s.Theme.Border)

	return bar
}
