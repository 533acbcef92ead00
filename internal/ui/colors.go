package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = newTheme()

// theme holds one style per quiz state the player can show.
type theme struct {
	prompt  lipgloss.Style // question text and headings
	status  lipgloss.Style // progress line and loading
	correct lipgloss.Style
	wrong   lipgloss.Style // wrong guesses and fetch errors
	answer  lipgloss.Style
	notice  lipgloss.Style // exhausted category
}

func newTheme() theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return theme{
		prompt:  fg("#7D56F4").Bold(true).MarginBottom(1),
		status:  fg("#626262").Italic(true),
		correct: fg("#04B575").Bold(true),
		wrong:   fg("#FF0000").Bold(true),
		answer:  fg("#FFFFFF").Bold(true),
		notice:  fg("#FFA500"),
	}
}

func (t theme) verdict(correct bool) string {
	if correct {
		return t.correct.Render("✓ Correct!")
	}
	return t.wrong.Render("✗ Not quite.")
}
