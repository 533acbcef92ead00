package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	SeedCategories Phase = iota
	SeedQuestions
	SeedVenues
	SeedArtists
	SeedShows
	SeedSkipped
)

func (p Phase) String() string {
	switch p {
	case SeedCategories:
		return "seed_categories"
	case SeedQuestions:
		return "seed_questions"
	case SeedVenues:
		return "seed_venues"
	case SeedArtists:
		return "seed_artists"
	case SeedShows:
		return "seed_shows"
	case SeedSkipped:
		return "seed_skipped"
	default:
		return ""
	}
}

func createdUpdate(phase Phase, step, total int, label string, data any) ProgressUpdate {
	return ProgressUpdate{
		Phase:   phase,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s", step, total, label),
		Data:    data,
	}
}

func skippedUpdate(section string, existing int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SeedSkipped,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Skipping %s: %d rows already present", section, existing),
	}
}
