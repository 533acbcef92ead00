package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/shared"
)

// Genres offered by the venue and artist forms.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
	"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

// States offered by the venue and artist forms.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID",
	"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH", "NJ", "NM",
	"NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA",
	"RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// startTimeLayouts are the accepted show start time formats, tried in order.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// field returns the trimmed form value for key.
func field(form url.Values, key string) string {
	return strings.TrimSpace(form.Get(key))
}

// checked reports whether a checkbox was submitted as on.
func checked(form url.Values, key string) bool {
	switch strings.ToLower(field(form, key)) {
	case "y", "yes", "on", "true", "1":
		return true
	default:
		return false
	}
}

// populateVenue overwrites every editable field of v from the form.
func populateVenue(v *models.Venue, form url.Values) {
	v.Name = field(form, "name")
	v.City = field(form, "city")
	v.State = field(form, "state")
	v.Address = field(form, "address")
	v.Phone = field(form, "phone")
	v.ImageLink = field(form, "image_link")
	v.FacebookLink = field(form, "facebook_link")
	v.WebsiteLink = field(form, "website_link")
	v.SeekingTalent = checked(form, "seeking_talent")
	v.SeekingDescription = field(form, "seeking_description")
	v.Genres = models.NormalizeGenres(form["genres"])
}

// populateArtist overwrites every editable field of a from the form.
func populateArtist(a *models.Artist, form url.Values) {
	a.Name = field(form, "name")
	a.City = field(form, "city")
	a.State = field(form, "state")
	a.Phone = field(form, "phone")
	a.ImageLink = field(form, "image_link")
	a.FacebookLink = field(form, "facebook_link")
	a.Website = field(form, "website_link")
	a.SeekingVenue = checked(form, "seeking_venue")
	a.SeekingDescription = field(form, "seeking_description")
	a.Genres = models.NormalizeGenres(form["genres"])
}

// populateShow fills s from the form. Unparsable IDs or times are [shared.ErrValidationFailed],
// with whatever did parse left on s for re-rendering.
func populateShow(s *models.Show, form url.Values) error {
	var problems []string

	if id, err := strconv.ParseInt(field(form, "venue_id"), 10, 64); err == nil {
		s.VenueID = id
	} else {
		problems = append(problems, "venue_id must be a number")
	}

	if id, err := strconv.ParseInt(field(form, "artist_id"), 10, 64); err == nil {
		s.ArtistID = id
	} else {
		problems = append(problems, "artist_id must be a number")
	}

	if start, err := parseStartTime(field(form, "start_time")); err == nil {
		s.StartTime = start
	} else {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", shared.ErrValidationFailed, strings.Join(problems, "; "))
	}
	return nil
}

// parseStartTime reads a start time in any of [startTimeLayouts]. Times without a zone are UTC.
func parseStartTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("start_time is required")
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("start_time %q is not a date and time", raw)
}
