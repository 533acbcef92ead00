package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/fyyur/internal/ui"
	"github.com/urfave/cli/v3"
)

// Play launches the terminal quiz player against a trivia API.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	c := r.apiClient(cmd)

	model := ui.NewModel(ctx, c, r.config.Trivia.QuestionsPerPlay)
	if id := cmd.Int("category"); id >= 0 {
		model = model.WithCategory(int64(id))
	}

	// Log output would corrupt the TUI.
	r.logger.SetOutput(io.Discard)

	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	if err := model.Err(); err != nil {
		return err
	}

	score, asked := model.Score()
	return r.writePlain("Final score: %d/%d\n", score, asked)
}
