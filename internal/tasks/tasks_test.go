package tasks

import (
	"context"
	"slices"
	"testing"

	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/repositories"
	tu "github.com/desertthunder/fyyur/internal/testing"
)

func TestSeeder(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds Empty Database", func(t *testing.T) {
		db := tu.SetupTestDB(t)
		seeder := NewSeeder(tu.Clock(tu.Ref))
		progress := make(chan ProgressUpdate, 100)

		var result *SeedResult
		err := repositories.Transact(ctx, db, func(st *repositories.Store) error {
			var err error
			result, err = seeder.Run(ctx, st, progress)
			return err
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		close(progress)

		if result.Categories != 6 || result.Venues != 3 || result.Artists != 3 || result.Shows != 5 {
			t.Errorf("unexpected counts: %+v", result)
		}
		if result.Questions != len(demoQuestions()) {
			t.Errorf("expected %d questions, got %d", len(demoQuestions()), result.Questions)
		}
		if len(result.Skipped) != 0 {
			t.Errorf("expected nothing skipped, got %v", result.Skipped)
		}

		var updates []ProgressUpdate
		for u := range progress {
			updates = append(updates, u)
		}
		total := result.Categories + result.Questions + result.Venues + result.Artists + result.Shows
		if len(updates) != total {
			t.Errorf("expected %d progress updates, got %d", total, len(updates))
		}
		if updates[0].Phase != SeedCategories || updates[0].Message != "[1/6] Science" {
			t.Errorf("unexpected first update: %+v", updates[0])
		}
		if last := updates[len(updates)-1]; last.Phase != SeedShows || last.Step != last.Total {
			t.Errorf("unexpected last update: %+v", last)
		}

		st := repositories.NewStore(db)
		venues, err := st.Venues.List(ctx, map[string]any{"city": "San Francisco", "state": "CA"})
		if err != nil {
			t.Fatalf("failed to list venues: %v", err)
		}
		if len(venues) != 2 {
			t.Errorf("expected 2 San Francisco venues, got %d", len(venues))
		}

		hop := slices.IndexFunc(venues, func(v *models.Venue) bool { return v.Name == "The Musical Hop" })
		if hop < 0 {
			t.Fatal("expected The Musical Hop to be seeded")
		}
		if len(venues[hop].Genres) != 5 || venues[hop].Genres[0] != "Jazz" {
			t.Errorf("expected ordered genres, got %v", venues[hop].Genres)
		}

		shows, err := st.Shows.List(ctx, nil)
		if err != nil {
			t.Fatalf("failed to list shows: %v", err)
		}
		upcoming := 0
		for _, s := range shows {
			if !s.StartTime.Before(tu.Ref) {
				upcoming++
			}
		}
		if upcoming != 3 {
			t.Errorf("expected 3 upcoming shows relative to the clock, got %d", upcoming)
		}
	})

	t.Run("Questions Reference Their Categories", func(t *testing.T) {
		db := tu.SetupTestDB(t)
		st := repositories.NewStore(db)

		if _, err := NewSeeder(nil).Run(ctx, st, nil); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		categories, err := st.Categories.List(ctx, nil)
		if err != nil {
			t.Fatalf("failed to list categories: %v", err)
		}
		for _, c := range categories {
			questions, err := st.Questions.List(ctx, map[string]any{"category_id": c.ID})
			if err != nil {
				t.Fatalf("failed to list questions: %v", err)
			}
			if len(questions) < 2 {
				t.Errorf("expected at least 2 questions in %s, got %d", c.Type, len(questions))
			}
		}
	})

	t.Run("Second Run Skips Populated Sections", func(t *testing.T) {
		db := tu.SetupTestDB(t)
		st := repositories.NewStore(db)
		seeder := NewSeeder(tu.Clock(tu.Ref))

		if _, err := seeder.Run(ctx, st, nil); err != nil {
			t.Fatalf("first seed failed: %v", err)
		}

		progress := make(chan ProgressUpdate, 10)
		result, err := seeder.Run(ctx, st, progress)
		if err != nil {
			t.Fatalf("second seed failed: %v", err)
		}
		close(progress)

		if result.Categories+result.Questions+result.Venues+result.Artists+result.Shows != 0 {
			t.Errorf("expected nothing created, got %+v", result)
		}
		if !slices.Equal(result.Skipped, []string{"trivia", "directory"}) {
			t.Errorf("expected both sections skipped, got %v", result.Skipped)
		}
		for u := range progress {
			if u.Phase != SeedSkipped {
				t.Errorf("expected only skip updates, got %s", u.Phase)
			}
		}

		categories, _ := st.Categories.List(ctx, nil)
		if len(categories) != 6 {
			t.Errorf("expected 6 categories after two runs, got %d", len(categories))
		}
	})

	t.Run("Full Channel Does Not Block", func(t *testing.T) {
		db := tu.SetupTestDB(t)
		progress := make(chan ProgressUpdate, 1)

		if _, err := NewSeeder(nil).Run(ctx, repositories.NewStore(db), progress); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if len(progress) != 1 {
			t.Errorf("expected the single buffered update, got %d", len(progress))
		}
	})

	t.Run("Failure Rolls Back", func(t *testing.T) {
		db := tu.SetupTestDB(t)
		canceled, cancel := context.WithCancel(ctx)

		err := repositories.Transact(ctx, db, func(st *repositories.Store) error {
			cancel()
			_, err := NewSeeder(nil).Run(canceled, st, nil)
			return err
		})
		if err == nil {
			t.Fatal("expected error from canceled context")
		}

		categories, err := repositories.NewStore(db).Categories.List(ctx, nil)
		if err != nil {
			t.Fatalf("failed to list categories: %v", err)
		}
		if len(categories) != 0 {
			t.Errorf("expected no categories after rollback, got %d", len(categories))
		}
	})
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{SeedCategories, "seed_categories"},
		{SeedQuestions, "seed_questions"},
		{SeedVenues, "seed_venues"},
		{SeedArtists, "seed_artists"},
		{SeedShows, "seed_shows"},
		{SeedSkipped, "seed_skipped"},
		{Phase(99), ""},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
