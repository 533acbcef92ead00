package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/fyyur/internal/models"
)

var _ models.Repository[*models.Show] = (*ShowRepository)(nil)

const showSelect = `
	SELECT
		s.id, s.venue_id, s.artist_id, s.start_time,
		v.name, v.image_link, a.name, a.image_link
	FROM shows s
	JOIN venues v  ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id
`

// ShowRepository implements models.Repository[*models.Show].
//
// Reads join the venue and artist so listings carry display names and images.
type ShowRepository struct {
	db DBTX
}

// NewShowRepository creates a new ShowRepository with the given database connection
func NewShowRepository(db DBTX) *ShowRepository {
	return &ShowRepository{db: db}
}

// Create inserts a new show. Unknown venue or artist IDs fail the foreign key check.
func (r *ShowRepository) Create(ctx context.Context, show *models.Show) error {
	if err := show.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`,
		show.VenueID, show.ArtistID, show.StartTime.UTC(),
	)
	if err != nil {
		return translate(err, "failed to insert show")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read show id: %w", err)
	}
	show.ID = id

	return nil
}

// Get retrieves a show by ID with its venue and artist display fields
func (r *ShowRepository) Get(ctx context.Context, id int64) (*models.Show, error) {
	show, err := scanShow(r.db.QueryRowContext(ctx, showSelect+` WHERE s.id = ?`, id))
	if err != nil {
		return nil, translate(err, "show %d", id)
	}
	return show, nil
}

// Update overwrites the venue, artist and start time of an existing show
func (r *ShowRepository) Update(ctx context.Context, show *models.Show) error {
	if err := show.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE shows SET venue_id = ?, artist_id = ?, start_time = ? WHERE id = ?`,
		show.VenueID, show.ArtistID, show.StartTime.UTC(), show.ID,
	)
	if err != nil {
		return translate(err, "failed to update show")
	}
	return requireAffected(result, "show", show.ID)
}

// Delete removes a show by ID
func (r *ShowRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shows WHERE id = ?`, id)
	if err != nil {
		return translate(err, "failed to delete show")
	}
	return requireAffected(result, "show", id)
}

// List retrieves all shows matching the given criteria ("venue_id", "artist_id"), ordered by start time
func (r *ShowRepository) List(ctx context.Context, criteria map[string]any) ([]*models.Show, error) {
	query := showSelect + ` WHERE 1 = 1`
	args := []any{}

	if venueID, ok := criteriaID(criteria, "venue_id"); ok {
		query += " AND s.venue_id = ?"
		args = append(args, venueID)
	}

	if artistID, ok := criteriaID(criteria, "artist_id"); ok {
		query += " AND s.artist_id = ?"
		args = append(args, artistID)
	}

	query += " ORDER BY s.start_time ASC, s.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "failed to query shows")
	}
	defer rows.Close()

	var shows []*models.Show
	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		shows = append(shows, show)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return shows, nil
}

func scanShow(row scanner) (*models.Show, error) {
	var (
		s     models.Show
		start time.Time
	)
	err := row.Scan(
		&s.ID, &s.VenueID, &s.ArtistID, &start,
		&s.VenueName, &s.VenueImageLink, &s.ArtistName, &s.ArtistImageLink,
	)
	if err != nil {
		return nil, err
	}
	s.StartTime = start.UTC()
	return &s, nil
}
