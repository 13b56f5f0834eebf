package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Well-being theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconLeaf    = "🌿"
	IconSparkle = "✨"
	IconGame    = "🎮"
	IconQuiz    = "📝"
	IconTimer   = "⏱️"
	IconStreak  = "🔥"
	IconBadge   = "🏅"
	IconPledge  = "🤝"
	IconStar    = "⭐"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconCheck   = "✅"
	IconBulb    = "💡"
)

var (
	cPrimary = lipgloss.Color("36")  // teal
	cAccent  = lipgloss.Color("141") // violet
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeNewRecord = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("NEW BEST")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// BandText colors a quiz band the way the result card does.
func BandText(band string) string {
	switch strings.ToLower(band) {
	case "excellent":
		return Good.Render(band)
	case "good":
		return Warn.Render(band)
	default:
		return Bad.Render(band)
	}
}

// Stars renders a 1-5 rating as filled and hollow stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
