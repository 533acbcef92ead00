package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/shared"
)

func TestVenueRepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		t.Run("ValidationError", func(t *testing.T) {
			repo := NewVenueRepository(setupTestDB(t))

			err := repo.Create(ctx, newVenue("", "San Francisco", "CA"))
			if !errors.Is(err, shared.ErrValidationFailed) {
				t.Fatalf("expected validation error for empty name, got %v", err)
			}
		})

		t.Run("InvalidLink", func(t *testing.T) {
			repo := NewVenueRepository(setupTestDB(t))
			venue := newVenue("The Musical Hop", "San Francisco", "CA")
			venue.FacebookLink = "not a url"

			if err := repo.Create(ctx, venue); !errors.Is(err, shared.ErrValidationFailed) {
				t.Fatalf("expected validation error for bad link, got %v", err)
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := NewVenueRepository(setupTestDB(t))

			if _, err := repo.Get(ctx, 999); !errors.Is(err, shared.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := NewVenueRepository(setupTestDB(t))
			venue := newVenue("Ghost", "Nowhere", "NA")
			venue.ID = 42

			if err := repo.Update(ctx, venue); !errors.Is(err, shared.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := NewVenueRepository(setupTestDB(t))

			if err := repo.Delete(ctx, 42); !errors.Is(err, shared.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})

		t.Run("Twice", func(t *testing.T) {
			repo := NewVenueRepository(setupTestDB(t))
			venue := mustCreate(t, repo.Create, newVenue("Park Square", "San Francisco", "CA"))

			if err := repo.Delete(ctx, venue.ID); err != nil {
				t.Fatalf("failed to delete venue: %v", err)
			}

			if err := repo.Delete(ctx, venue.ID); !errors.Is(err, shared.ErrNotFound) {
				t.Fatalf("expected ErrNotFound on second delete, got %v", err)
			}
		})
	})
}

func TestArtistRepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidationError", func(t *testing.T) {
		repo := NewArtistRepository(setupTestDB(t))
		artist := newArtist("Guns N Petals")
		artist.State = ""

		if err := repo.Create(ctx, artist); !errors.Is(err, shared.ErrValidationFailed) {
			t.Fatalf("expected validation error for missing state, got %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := NewArtistRepository(setupTestDB(t))

		if _, err := repo.Get(ctx, 7); !errors.Is(err, shared.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestShowRepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownVenue", func(t *testing.T) {
		st := NewStore(setupTestDB(t))
		artist := mustCreate(t, st.Artists.Create, newArtist("Guns N Petals"))

		err := st.Shows.Create(ctx, &models.Show{VenueID: 99, ArtistID: artist.ID, StartTime: time.Now()})
		if !errors.Is(err, shared.ErrConstraintViolation) {
			t.Fatalf("expected constraint violation, got %v", err)
		}
	})

	t.Run("MissingStart", func(t *testing.T) {
		st := NewStore(setupTestDB(t))

		err := st.Shows.Create(ctx, &models.Show{VenueID: 1, ArtistID: 1})
		if !errors.Is(err, shared.ErrValidationFailed) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		st := NewStore(setupTestDB(t))

		if err := st.Shows.Delete(ctx, 3); !errors.Is(err, shared.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestTriviaRepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("DuplicateCategory", func(t *testing.T) {
		repo := NewCategoryRepository(setupTestDB(t))
		mustCreate(t, repo.Create, &models.Category{Type: "Science"})

		err := repo.Create(ctx, &models.Category{Type: "Science"})
		if !errors.Is(err, shared.ErrConstraintViolation) {
			t.Fatalf("expected constraint violation, got %v", err)
		}
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		repo := NewQuestionRepository(setupTestDB(t))

		err := repo.Create(ctx, &models.Question{Question: "Q?", Answer: "A", CategoryID: 12, Difficulty: 1})
		if !errors.Is(err, shared.ErrConstraintViolation) {
			t.Fatalf("expected constraint violation, got %v", err)
		}
	})

	t.Run("DifficultyOutOfRange", func(t *testing.T) {
		repo := NewQuestionRepository(setupTestDB(t))

		err := repo.Create(ctx, &models.Question{Question: "Q?", Answer: "A", CategoryID: 1, Difficulty: 6})
		if !errors.Is(err, shared.ErrValidationFailed) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("CategoryInUse", func(t *testing.T) {
		st := NewStore(setupTestDB(t))
		science := mustCreate(t, st.Categories.Create, &models.Category{Type: "Science"})
		mustCreate(t, st.Questions.Create, &models.Question{Question: "Q?", Answer: "A", CategoryID: science.ID, Difficulty: 2})

		if err := st.Categories.Delete(ctx, science.ID); !errors.Is(err, shared.ErrConstraintViolation) {
			t.Fatalf("expected constraint violation, got %v", err)
		}
	})

	t.Run("QuestionNotFound", func(t *testing.T) {
		repo := NewQuestionRepository(setupTestDB(t))

		if err := repo.Delete(ctx, 1000); !errors.Is(err, shared.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
