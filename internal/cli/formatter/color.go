package formatter

import (
	"fmt"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ReadinessIndicator renders a coloured status dot such as "● READY".
func ReadinessIndicator(status domain.ReadinessStatus) string {
	switch status {
	case domain.ReadinessReady:
		return StyleGreen.Render("● READY")
	case domain.ReadinessFatigued:
		return StyleYellow.Render("● FATIGUED")
	case domain.ReadinessNeedsRest:
		return StyleRed.Render("● NEEDS REST")
	default:
		return StyleDim.Render("● " + string(status))
	}
}

// PhaseBadge colours the training phase; taper is the most urgent.
func PhaseBadge(p domain.Phase) string {
	switch p {
	case domain.PhaseTaper:
		return StyleRed.Render("▼ TAPER")
	case domain.PhaseSharpen:
		return StyleYellow.Render("◆ SHARPEN")
	case domain.PhaseBuild:
		return StyleGreen.Render("▲ BUILD")
	default:
		return StyleDim.Render(string(p))
	}
}

func IntensityStyle(i domain.Intensity) lipgloss.Style {
	switch i {
	case domain.IntensityHard:
		return StyleRed
	case domain.IntensityModerate:
		return StyleYellow
	case domain.IntensityEasy:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SessionTypeLabel renders "Pool", "Open water" or "Rest".
func SessionTypeLabel(t domain.SessionType) string {
	switch t {
	case domain.SessionPool:
		return StyleBlue.Render("Pool")
	case domain.SessionOpenWater:
		return StyleAqua.Render("Open water")
	case domain.SessionRest:
		return StyleDim.Render("Rest")
	default:
		return StyleDim.Render(string(t))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
