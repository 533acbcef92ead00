package services

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/projection"
	"github.com/desertthunder/fyyur/internal/query"
	"github.com/desertthunder/fyyur/internal/repositories"
)

// Directory serves the venue, artist and show operations of the Fyyur site.
type Directory struct {
	now func() time.Time
}

// NewDirectory creates a Directory whose clock is now, or [time.Now] when now is nil.
func NewDirectory(now func() time.Time) *Directory {
	if now == nil {
		now = time.Now
	}
	return &Directory{now: now}
}

// Areas lists venues grouped by city and state with their upcoming show counts.
func (d *Directory) Areas(ctx context.Context, st *repositories.Store) ([]projection.Area, error) {
	venues, err := st.Venues.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	counts, err := d.upcoming(ctx, st, func(s *models.Show) int64 { return s.VenueID })
	if err != nil {
		return nil, err
	}
	return projection.Areas(venues, counts), nil
}

// SearchVenues matches venue names against term.
func (d *Directory) SearchVenues(ctx context.Context, st *repositories.Store, term string) (projection.SearchResult, error) {
	venues, err := st.Venues.List(ctx, nil)
	if err != nil {
		return projection.SearchResult{}, err
	}

	counts, err := d.upcoming(ctx, st, func(s *models.Show) int64 { return s.VenueID })
	if err != nil {
		return projection.SearchResult{}, err
	}

	matches := query.Search(venues, term, func(v *models.Venue) string { return v.Name })
	data := make([]projection.Summary, 0, len(matches))
	for _, v := range matches {
		data = append(data, projection.Summarize(v.ID, v.Name, counts[v.ID]))
	}
	return projection.Search(data), nil
}

// Venue builds a venue page with its shows split around the current time.
func (d *Directory) Venue(ctx context.Context, st *repositories.Store, id int64) (projection.VenueDetail, error) {
	venue, err := st.Venues.Get(ctx, id)
	if err != nil {
		return projection.VenueDetail{}, err
	}

	shows, err := st.Shows.List(ctx, map[string]any{"venue_id": id})
	if err != nil {
		return projection.VenueDetail{}, err
	}

	past, upcoming := query.Partition(shows, d.now())
	return projection.Venue(venue, past, upcoming), nil
}

// FindVenue returns the stored venue, for prefilling the edit form.
func (d *Directory) FindVenue(ctx context.Context, st *repositories.Store, id int64) (*models.Venue, error) {
	return st.Venues.Get(ctx, id)
}

func (d *Directory) CreateVenue(ctx context.Context, st *repositories.Store, venue *models.Venue) error {
	return st.Venues.Create(ctx, venue)
}

func (d *Directory) UpdateVenue(ctx context.Context, st *repositories.Store, venue *models.Venue) error {
	return st.Venues.Update(ctx, venue)
}

// DeleteVenue removes a venue and, through the cascade, its shows.
func (d *Directory) DeleteVenue(ctx context.Context, st *repositories.Store, id int64) error {
	return st.Venues.Delete(ctx, id)
}

// Artists lists every artist by name.
func (d *Directory) Artists(ctx context.Context, st *repositories.Store) ([]projection.ArtistSummary, error) {
	artists, err := st.Artists.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return projection.Artists(artists), nil
}

// SearchArtists matches artist names against term.
func (d *Directory) SearchArtists(ctx context.Context, st *repositories.Store, term string) (projection.SearchResult, error) {
	artists, err := st.Artists.List(ctx, nil)
	if err != nil {
		return projection.SearchResult{}, err
	}

	counts, err := d.upcoming(ctx, st, func(s *models.Show) int64 { return s.ArtistID })
	if err != nil {
		return projection.SearchResult{}, err
	}

	matches := query.Search(artists, term, func(a *models.Artist) string { return a.Name })
	data := make([]projection.Summary, 0, len(matches))
	for _, a := range matches {
		data = append(data, projection.Summarize(a.ID, a.Name, counts[a.ID]))
	}
	return projection.Search(data), nil
}

// Artist builds an artist page with its shows split around the current time.
func (d *Directory) Artist(ctx context.Context, st *repositories.Store, id int64) (projection.ArtistDetail, error) {
	artist, err := st.Artists.Get(ctx, id)
	if err != nil {
		return projection.ArtistDetail{}, err
	}

	shows, err := st.Shows.List(ctx, map[string]any{"artist_id": id})
	if err != nil {
		return projection.ArtistDetail{}, err
	}

	past, upcoming := query.Partition(shows, d.now())
	return projection.Artist(artist, past, upcoming), nil
}

// FindArtist returns the stored artist, for prefilling the edit form.
func (d *Directory) FindArtist(ctx context.Context, st *repositories.Store, id int64) (*models.Artist, error) {
	return st.Artists.Get(ctx, id)
}

func (d *Directory) CreateArtist(ctx context.Context, st *repositories.Store, artist *models.Artist) error {
	return st.Artists.Create(ctx, artist)
}

func (d *Directory) UpdateArtist(ctx context.Context, st *repositories.Store, artist *models.Artist) error {
	return st.Artists.Update(ctx, artist)
}

// DeleteArtist removes an artist and, through the cascade, its shows.
func (d *Directory) DeleteArtist(ctx context.Context, st *repositories.Store, id int64) error {
	return st.Artists.Delete(ctx, id)
}

// Shows lists every show by start time.
func (d *Directory) Shows(ctx context.Context, st *repositories.Store) ([]projection.ShowListing, error) {
	shows, err := st.Shows.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return projection.Shows(shows), nil
}

// CreateShow books a show. The venue and artist must already exist.
func (d *Directory) CreateShow(ctx context.Context, st *repositories.Store, show *models.Show) error {
	if err := show.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, err := st.Venues.Get(ctx, show.VenueID); err != nil {
		return mustExist(err, "venue", show.VenueID)
	}
	if _, err := st.Artists.Get(ctx, show.ArtistID); err != nil {
		return mustExist(err, "artist", show.ArtistID)
	}

	return st.Shows.Create(ctx, show)
}

// upcoming counts shows at or after the current time, keyed by owner.
func (d *Directory) upcoming(ctx context.Context, st *repositories.Store, owner func(*models.Show) int64) (map[int64]int, error) {
	shows, err := st.Shows.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	_, upcoming := query.Partition(shows, d.now())
	counts := make(map[int64]int, len(upcoming))
	for _, s := range upcoming {
		counts[owner(s)]++
	}
	return counts, nil
}
