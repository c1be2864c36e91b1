package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/charmbracelet/lipgloss"
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
	ColorBg     = lipgloss.Color("#282828")
	ColorHeader = lipgloss.Color("#fe8019")
)

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

	// StyleActive marks a pressed toggle or the active tab.
	StyleActive = lipgloss.NewStyle().Foreground(ColorBg).Background(ColorHeader).Bold(true).Padding(0, 1)
	// StyleInactive is the resting state of toggles and tabs.
	StyleInactive = lipgloss.NewStyle().Foreground(ColorFg).Padding(0, 1)
	// StyleDisabled renders controls that cannot be activated.
	StyleDisabled = lipgloss.NewStyle().Foreground(ColorDim).Padding(0, 1)
)

// BadgeColor returns the style for a badge severity.
func BadgeColor(sev domain.BadgeSeverity) lipgloss.Style {
	switch sev {
	case domain.BadgeSuccess:
		return StyleGreen
	case domain.BadgeWarning:
		return StyleYellow
	case domain.BadgeInfo:
		return StyleBlue
	default:
		return StyleDim
	}
}

// BadgePill renders text as a status badge, e.g. "● Approved".
func BadgePill(text string, sev domain.BadgeSeverity) string {
	marker := "●"
	switch sev {
	case domain.BadgeWarning:
		marker = "▲"
	case domain.BadgeInfo:
		marker = "○"
	}
	return BadgeColor(sev).Render(marker + " " + text)
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
