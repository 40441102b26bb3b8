package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmolina/ritmo/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// FeelingPill returns a colored label for a post-completion feeling.
func FeelingPill(f domain.Feeling) string {
	switch f {
	case domain.FeelingExcellent:
		return StyleGreen.Render("● excellent")
	case domain.FeelingGood:
		return StyleGreen.Render("○ good")
	case domain.FeelingNeutral:
		return StyleYellow.Render("○ neutral")
	case domain.FeelingTired:
		return StyleYellow.Render("● tired")
	case domain.FeelingFrustrated:
		return StyleRed.Render("● frustrated")
	default:
		return StyleDim.Render("○ unrated")
	}
}

// TrendArrow returns a colored direction indicator for a trend label.
func TrendArrow(label domain.TrendLabel) string {
	switch label {
	case domain.TrendImproving:
		return StyleGreen.Render("↑ improving")
	case domain.TrendDeclining:
		return StyleRed.Render("↓ declining")
	default:
		return StyleDim.Render("→ stable")
	}
}

// BlockTypeBadge returns a styled label for the block type.
func BlockTypeBadge(t domain.BlockType) string {
	if t == domain.BlockProfundo {
		return StylePurple.Render("▲ profundo")
	}
	return StyleBlue.Render("△ ligero")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
