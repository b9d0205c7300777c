package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/domain"
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

// RiskColor returns the style for a timeline risk level.
func RiskColor(risk domain.RiskLevel) lipgloss.Style {
	switch risk {
	case domain.RiskExtreme, domain.RiskHigh:
		return StyleRed
	case domain.RiskMedium:
		return StyleYellow
	case domain.RiskLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RiskIndicator returns a colored indicator such as "● HIGH RISK".
func RiskIndicator(risk domain.RiskLevel) string {
	if risk == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	label := fmt.Sprintf("● %s RISK", strings.ToUpper(string(risk)))
	return RiskColor(risk).Render(label)
}

// ComplexityColor maps a complexity level onto the palette.
func ComplexityColor(level domain.ComplexityLevel) lipgloss.Style {
	switch level {
	case domain.ComplexityExtreme:
		return StyleRed
	case domain.ComplexityHigh:
		return StyleYellow
	case domain.ComplexityMedium:
		return StyleBlue
	default:
		return StyleGreen
	}
}

// SeverityBadge returns a short colored label for an issue severity.
func SeverityBadge(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return StyleRed.Render("✖ critical")
	case domain.SeverityWarning:
		return StyleYellow.Render("▲ warning")
	default:
		return StyleBlue.Render("● info")
	}
}

// PriorityBadge returns a colored priority label.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityMustHave:
		return StyleGreen.Render(string(p))
	case domain.PriorityShouldHave:
		return StyleBlue.Render(string(p))
	case domain.PriorityNiceToHave:
		return StyleYellow.Render(string(p))
	default:
		return StyleDim.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
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

// Check renders a green check or a red cross.
func Check(ok bool) string {
	if ok {
		return StyleGreen.Render("✔")
	}
	return StyleRed.Render("✖")
}
