package repositories

import (
	"context"
	"fmt"

	"github.com/desertthunder/fyyur/internal/models"
)

var _ models.Repository[*models.Artist] = (*ArtistRepository)(nil)

const artistColumns = `id, name, city, state, phone, image_link, facebook_link,
	website, seeking_venue, seeking_description`

// ArtistRepository implements models.Repository[*models.Artist].
type ArtistRepository struct {
	db DBTX
}

// NewArtistRepository creates a new ArtistRepository with the given database connection
func NewArtistRepository(db DBTX) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Create inserts a new artist and its genres and assigns the generated ID
func (r *ArtistRepository) Create(ctx context.Context, artist *models.Artist) error {
	artist.Genres = models.NormalizeGenres(artist.Genres)
	if err := artist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO artists (
			name, city, state, phone, image_link, facebook_link,
			website, seeking_venue, seeking_description
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.ImageLink,
		artist.FacebookLink,
		artist.Website,
		artist.SeekingVenue,
		artist.SeekingDescription,
	)
	if err != nil {
		return translate(err, "failed to insert artist")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read artist id: %w", err)
	}
	artist.ID = id

	return artistGenres.replace(ctx, r.db, id, artist.Genres)
}

// Get retrieves an artist by ID
func (r *ArtistRepository) Get(ctx context.Context, id int64) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`

	artist, err := scanArtist(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "artist %d", id)
	}

	genres, err := artistGenres.load(ctx, r.db, []int64{id})
	if err != nil {
		return nil, err
	}
	artist.Genres = nonNil(genres[id])

	return artist, nil
}

// Update overwrites every field of an existing artist, genres included
func (r *ArtistRepository) Update(ctx context.Context, artist *models.Artist) error {
	artist.Genres = models.NormalizeGenres(artist.Genres)
	if err := artist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, image_link = ?, facebook_link = ?,
			website = ?, seeking_venue = ?, seeking_description = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.ImageLink,
		artist.FacebookLink,
		artist.Website,
		artist.SeekingVenue,
		artist.SeekingDescription,
		artist.ID,
	)
	if err != nil {
		return translate(err, "failed to update artist")
	}

	if err := requireAffected(result, "artist", artist.ID); err != nil {
		return err
	}

	return artistGenres.replace(ctx, r.db, artist.ID, artist.Genres)
}

// Delete removes an artist by ID; its genres and shows cascade
func (r *ArtistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
	if err != nil {
		return translate(err, "failed to delete artist")
	}
	return requireAffected(result, "artist", id)
}

// List retrieves all artists matching the given criteria ("city", "state"), ordered by name
func (r *ArtistRepository) List(ctx context.Context, criteria map[string]any) ([]*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE 1 = 1`
	args := []any{}

	if city, ok := criteriaString(criteria, "city"); ok {
		query += " AND city = ?"
		args = append(args, city)
	}

	if state, ok := criteriaString(criteria, "state"); ok {
		query += " AND state = ?"
		args = append(args, state)
	}

	query += " ORDER BY name ASC, id ASC"

	artists, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(artists))
	for i, a := range artists {
		ids[i] = a.ID
	}

	genres, err := artistGenres.load(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range artists {
		a.Genres = nonNil(genres[a.ID])
	}

	return artists, nil
}

func (r *ArtistRepository) query(ctx context.Context, query string, args ...any) ([]*models.Artist, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "failed to query artists")
	}
	defer rows.Close()

	var artists []*models.Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, artist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return artists, nil
}

func scanArtist(row scanner) (*models.Artist, error) {
	var a models.Artist
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
