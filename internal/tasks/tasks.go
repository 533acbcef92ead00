// package tasks implements maintenance operations such as demo data seeding.
//
// Operations emit progress updates via channels for non-blocking status reporting to CLI layers.
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/repositories"
)

// SeedResult counts the rows a seeding run created.
type SeedResult struct {
	Categories int
	Questions  int
	Venues     int
	Artists    int
	Shows      int
	Skipped    []string // Sections left alone because they already held data
}

// Seeder inserts demo data. Show times are placed around the clock's current instant.
type Seeder struct {
	now func() time.Time
}

// NewSeeder creates a Seeder. A nil clock uses [time.Now].
func NewSeeder(now func() time.Time) *Seeder {
	if now == nil {
		now = time.Now
	}
	return &Seeder{now: now}
}

// sendProgress sends a progress update through the channel without blocking.
func (s *Seeder) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run seeds trivia data and directory data into st.
func (s *Seeder) Run(ctx context.Context, st *repositories.Store, progress chan<- ProgressUpdate) (*SeedResult, error) {
	result := &SeedResult{}

	if err := s.seedTrivia(ctx, st, progress, result); err != nil {
		return result, err
	}
	if err := s.seedDirectory(ctx, st, progress, result); err != nil {
		return result, err
	}
	return result, nil
}

func (s *Seeder) seedTrivia(ctx context.Context, st *repositories.Store, progress chan<- ProgressUpdate, result *SeedResult) error {
	existing, err := st.Categories.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to check categories: %w", err)
	}
	if len(existing) > 0 {
		result.Skipped = append(result.Skipped, "trivia")
		s.sendProgress(progress, skippedUpdate("trivia", len(existing)))
		return nil
	}

	ids := make(map[string]int64)
	categories := demoCategories()
	for i, c := range categories {
		if err := st.Categories.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Type, err)
		}
		ids[c.Type] = c.ID
		result.Categories++
		s.sendProgress(progress, createdUpdate(SeedCategories, i+1, len(categories), c.Type, c))
	}

	questions := demoQuestions()
	for i, dq := range questions {
		q := &models.Question{
			Question:   dq.question,
			Answer:     dq.answer,
			CategoryID: ids[dq.category],
			Difficulty: dq.difficulty,
		}
		if err := st.Questions.Create(ctx, q); err != nil {
			return fmt.Errorf("failed to seed question %q: %w", q.Question, err)
		}
		result.Questions++
		s.sendProgress(progress, createdUpdate(SeedQuestions, i+1, len(questions), q.Question, q))
	}
	return nil
}

func (s *Seeder) seedDirectory(ctx context.Context, st *repositories.Store, progress chan<- ProgressUpdate, result *SeedResult) error {
	existing, err := st.Venues.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to check venues: %w", err)
	}
	if len(existing) > 0 {
		result.Skipped = append(result.Skipped, "directory")
		s.sendProgress(progress, skippedUpdate("directory", len(existing)))
		return nil
	}

	venues := demoVenues()
	for i, v := range venues {
		if err := st.Venues.Create(ctx, v); err != nil {
			return fmt.Errorf("failed to seed venue %q: %w", v.Name, err)
		}
		result.Venues++
		s.sendProgress(progress, createdUpdate(SeedVenues, i+1, len(venues), v.Name, v))
	}

	artists := demoArtists()
	for i, a := range artists {
		if err := st.Artists.Create(ctx, a); err != nil {
			return fmt.Errorf("failed to seed artist %q: %w", a.Name, err)
		}
		result.Artists++
		s.sendProgress(progress, createdUpdate(SeedArtists, i+1, len(artists), a.Name, a))
	}

	shows := demoShows(s.now())
	for i, ds := range shows {
		show := &models.Show{
			VenueID:   venues[ds.venue].ID,
			ArtistID:  artists[ds.artist].ID,
			StartTime: ds.start,
		}
		if err := st.Shows.Create(ctx, show); err != nil {
			return fmt.Errorf("failed to seed show: %w", err)
		}
		result.Shows++
		label := fmt.Sprintf("%s at %s", artists[ds.artist].Name, venues[ds.venue].Name)
		s.sendProgress(progress, createdUpdate(SeedShows, i+1, len(shows), label, show))
	}
	return nil
}
