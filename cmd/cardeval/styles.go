package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/cardeval/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(11)

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	plainStyle = lipgloss.NewStyle().
			Padding(0, 1)

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// renderCards formats cards for display, coloring hearts and diamonds red.
func renderCards(f poker.Format, cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = f.Format(c)
		if c.Suit() == poker.Hearts || c.Suit() == poker.Diamonds {
			parts[i] = redSuitStyle.Render(parts[i])
		}
	}
	if f == poker.TitleWords || f == poker.LowerWords {
		return strings.Join(parts, ", ")
	}
	return strings.Join(parts, " ")
}

func rankNames(ranks []poker.Rank) string {
	if len(ranks) == 0 {
		return "-"
	}
	names := make([]string, len(ranks))
	for i, r := range ranks {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}
