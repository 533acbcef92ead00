package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/fyyur/internal/formatter"
	"github.com/desertthunder/fyyur/internal/projection"
	"github.com/desertthunder/fyyur/internal/repositories"
	"github.com/desertthunder/fyyur/internal/services"
	"github.com/urfave/cli/v3"
)

// ExportShows writes every show in the requested format.
func (r *Runner) ExportShows(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	var shows []projection.ShowListing
	err = repositories.Transact(ctx, db, func(st *repositories.Store) error {
		var err error
		shows, err = services.NewDirectory(r.now).Shows(ctx, st)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to load shows: %w", err)
	}

	data, err := formatter.Shows(format, shows)
	if err != nil {
		return err
	}

	r.logger.Info("exporting shows", "count", len(shows), "format", format)
	return r.emit(cmd, data, "shows", format)
}

// ExportQuestions writes trivia questions, optionally limited to one category.
func (r *Runner) ExportQuestions(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	var criteria map[string]any
	if id := cmd.Int("category"); id > 0 {
		criteria = map[string]any{"category_id": int64(id)}
	}

	var (
		questions  []projection.Question
		categories projection.Categories
	)
	err = repositories.Transact(ctx, db, func(st *repositories.Store) error {
		cats, err := st.Categories.List(ctx, nil)
		if err != nil {
			return err
		}
		list, err := st.Questions.List(ctx, criteria)
		if err != nil {
			return err
		}
		categories = projection.CategoryMap(cats)
		questions = projection.TriviaList(list)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load questions: %w", err)
	}

	data, err := formatter.Questions(format, questions, categories)
	if err != nil {
		return err
	}

	r.logger.Info("exporting questions", "count", len(questions), "format", format)
	return r.emit(cmd, data, "questions", format)
}

// emit prints data, or writes it to --output (or a default file name with --save).
func (r *Runner) emit(cmd *cli.Command, data []byte, name string, format formatter.Format) error {
	output := cmd.String("output")
	if output == "" && !cmd.Bool("save") {
		if _, err := r.output.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	path, err := formatter.WriteExport(data, output, name, format)
	if err != nil {
		return err
	}

	r.logger.Info("export written", "path", path)
	return r.writePlain("✓ Exported %s to %s\n", name, path)
}
