package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/fyyur/internal/repositories"
	"github.com/desertthunder/fyyur/internal/shared"
	"github.com/desertthunder/fyyur/internal/tasks"
	"github.com/urfave/cli/v3"
)

// SetupDatabase writes the example config when none exists, then initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	if r.configPath != "" {
		if _, err := os.Stat(r.configPath); err != nil {
			r.logger.Info("config file not found, creating from template", "path", r.configPath)
			if err := shared.CreateConfigFile(r.configPath); err != nil {
				r.logger.Warn("failed to create config file, using defaults", "error", err)
			} else {
				r.logger.Info("config file created", "path", r.configPath)
			}
		}
	}

	r.logger.Info("initializing database", "path", r.config.Database.Path)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	version, err := shared.CurrentVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	return r.writePlain("✓ Database ready at schema version %d\n", version)
}

// SetupRollback rolls back the latest applied migration.
func (r *Runner) SetupRollback(ctx context.Context, cmd *cli.Command) error {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	before, err := shared.CurrentVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	r.logger.Info("rolling back migration", "version", before)
	if err := shared.RollbackMigration(db); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	after, err := shared.CurrentVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	return r.writePlain("✓ Rolled back from version %d to %d\n", before, after)
}

// SetupSeed fills an empty database with demo data in one transaction.
func (r *Runner) SetupSeed(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Debug(update.Message, "phase", update.Phase)
		}
	}()

	var result *tasks.SeedResult
	err = repositories.Transact(ctx, db, func(st *repositories.Store) error {
		var err error
		result, err = tasks.NewSeeder(r.now).Run(ctx, st, progress)
		return err
	})
	close(progress)
	<-done

	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	r.logger.Info("seed complete",
		"categories", result.Categories, "questions", result.Questions,
		"venues", result.Venues, "artists", result.Artists, "shows", result.Shows)

	r.writePlainHeader("Seed Summary")
	r.writePlain("Categories: %d\nQuestions:  %d\nVenues:     %d\nArtists:    %d\nShows:      %d\n",
		result.Categories, result.Questions, result.Venues, result.Artists, result.Shows)
	for _, section := range result.Skipped {
		r.writePlain("Skipped %s (already populated)\n", section)
	}
	return nil
}
