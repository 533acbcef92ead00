// package projection maps models onto the shapes rendered by the HTML pages and the JSON API.
//
// Projections are pure. Optional text becomes "" and every list is non-nil, so templates and
// JSON clients never see null where a list is expected.
package projection

import (
	"time"

	"github.com/desertthunder/fyyur/internal/models"
)

// Summary is a venue or artist in a listing or search result.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues of one city.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// SearchResult is the payload of a venue or artist search.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// ArtistSummary is an entry of the artist index.
type ArtistSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtistAppearance is a show as seen from its venue.
type ArtistAppearance struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueAppearance is a show as seen from its artist.
type VenueAppearance struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// VenueDetail is the venue page.
type VenueDetail struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	Genres             []string           `json:"genres"`
	Address            string             `json:"address"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Phone              string             `json:"phone"`
	Website            string             `json:"website"`
	FacebookLink       string             `json:"facebook_link"`
	SeekingTalent      bool               `json:"seeking_talent"`
	SeekingDescription string             `json:"seeking_description"`
	ImageLink          string             `json:"image_link"`
	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

// ArtistDetail is the artist page.
type ArtistDetail struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Genres             []string          `json:"genres"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	Website            string            `json:"website"`
	FacebookLink       string            `json:"facebook_link"`
	SeekingVenue       bool              `json:"seeking_venue"`
	SeekingDescription string            `json:"seeking_description"`
	ImageLink          string            `json:"image_link"`
	PastShows          []VenueAppearance `json:"past_shows"`
	UpcomingShows      []VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// ShowListing is a row of the show index.
type ShowListing struct {
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Question is a trivia question as served by the API.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Categories maps category IDs to their type labels.
type Categories map[int64]string

// Summarize builds a listing entry.
func Summarize(id int64, name string, upcoming int) Summary {
	return Summary{ID: id, Name: name, NumUpcomingShows: upcoming}
}

// Search wraps matches in a SearchResult.
func Search(matches []Summary) SearchResult {
	if matches == nil {
		matches = []Summary{}
	}
	return SearchResult{Count: len(matches), Data: matches}
}

// Areas groups venues by (city, state) in order of first appearance.
// upcoming holds the number of upcoming shows per venue ID.
func Areas(venues []*models.Venue, upcoming map[int64]int) []Area {
	areas := []Area{}
	index := make(map[[2]string]int)

	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []Summary{}})
		}
		areas[i].Venues = append(areas[i].Venues, Summarize(v.ID, v.Name, upcoming[v.ID]))
	}
	return areas
}

// Artists builds the artist index.
func Artists(artists []*models.Artist) []ArtistSummary {
	out := make([]ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistSummary{ID: a.ID, Name: a.Name})
	}
	return out
}

// Venue builds the venue page from a venue and its already partitioned shows.
func Venue(v *models.Venue, past, upcoming []*models.Show) VenueDetail {
	return VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genres(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          artistAppearances(past),
		UpcomingShows:      artistAppearances(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

// Artist builds the artist page from an artist and its already partitioned shows.
func Artist(a *models.Artist, past, upcoming []*models.Show) ArtistDetail {
	return ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genres(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          venueAppearances(past),
		UpcomingShows:      venueAppearances(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

// Shows builds the show index.
func Shows(shows []*models.Show) []ShowListing {
	out := make([]ShowListing, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowListing{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime,
		})
	}
	return out
}

// Trivia converts a question.
func Trivia(q *models.Question) Question {
	return Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// TriviaList converts questions, keeping order.
func TriviaList(questions []*models.Question) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, Trivia(q))
	}
	return out
}

// CategoryMap builds the id to type lookup.
func CategoryMap(categories []*models.Category) Categories {
	out := make(Categories, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

func genres(g []string) []string {
	if g == nil {
		return []string{}
	}
	return g
}

func artistAppearances(shows []*models.Show) []ArtistAppearance {
	out := make([]ArtistAppearance, 0, len(shows))
	for _, s := range shows {
		out = append(out, ArtistAppearance{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime,
		})
	}
	return out
}

func venueAppearances(shows []*models.Show) []VenueAppearance {
	out := make([]VenueAppearance, 0, len(shows))
	for _, s := range shows {
		out = append(out, VenueAppearance{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartTime,
		})
	}
	return out
}
