package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/fyyur/internal/models"
)

var _ models.Repository[*models.Venue] = (*VenueRepository)(nil)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
	website_link, seeking_talent, seeking_description`

// VenueRepository implements models.Repository[*models.Venue].
type VenueRepository struct {
	db DBTX
}

// NewVenueRepository creates a new VenueRepository with the given database connection
func NewVenueRepository(db DBTX) *VenueRepository {
	return &VenueRepository{db: db}
}

// Create inserts a new venue and its genres and assigns the generated ID
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	venue.Genres = models.NormalizeGenres(venue.Genres)
	if err := venue.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO venues (
			name, city, state, address, phone, image_link, facebook_link,
			website_link, seeking_talent, seeking_description
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
	)
	if err != nil {
		return translate(err, "failed to insert venue")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read venue id: %w", err)
	}
	venue.ID = id

	return venueGenres.replace(ctx, r.db, id, venue.Genres)
}

// Get retrieves a venue by ID
func (r *VenueRepository) Get(ctx context.Context, id int64) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`

	venue, err := scanVenue(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "venue %d", id)
	}

	genres, err := venueGenres.load(ctx, r.db, []int64{id})
	if err != nil {
		return nil, err
	}
	venue.Genres = nonNil(genres[id])

	return venue, nil
}

// Update overwrites every field of an existing venue, genres included
func (r *VenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	venue.Genres = models.NormalizeGenres(venue.Genres)
	if err := venue.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE venues
		SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
			facebook_link = ?, website_link = ?, seeking_talent = ?, seeking_description = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
		venue.ID,
	)
	if err != nil {
		return translate(err, "failed to update venue")
	}

	if err := requireAffected(result, "venue", venue.ID); err != nil {
		return err
	}

	return venueGenres.replace(ctx, r.db, venue.ID, venue.Genres)
}

// Delete removes a venue by ID; its genres and shows cascade
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return translate(err, "failed to delete venue")
	}
	return requireAffected(result, "venue", id)
}

// List retrieves all venues matching the given criteria ("city", "state"), ordered by state, city and name
func (r *VenueRepository) List(ctx context.Context, criteria map[string]any) ([]*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE 1 = 1`
	args := []any{}

	if city, ok := criteriaString(criteria, "city"); ok {
		query += " AND city = ?"
		args = append(args, city)
	}

	if state, ok := criteriaString(criteria, "state"); ok {
		query += " AND state = ?"
		args = append(args, state)
	}

	query += " ORDER BY state ASC, city ASC, name ASC, id ASC"

	venues, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
	}

	genres, err := venueGenres.load(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for _, v := range venues {
		v.Genres = nonNil(genres[v.ID])
	}

	return venues, nil
}

// query collects every row before returning so the caller can issue follow-up queries on the same transaction.
func (r *VenueRepository) query(ctx context.Context, query string, args ...any) ([]*models.Venue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "failed to query venues")
	}
	defer rows.Close()

	var venues []*models.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return venues, nil
}

func scanVenue(row scanner) (*models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// scanner is implemented by both [sql.Row] and [sql.Rows].
type scanner interface {
	Scan(dest ...any) error
}

var (
	_ scanner = (*sql.Row)(nil)
	_ scanner = (*sql.Rows)(nil)
)

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
