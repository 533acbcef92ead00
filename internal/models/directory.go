package models

import (
	"time"
)

var (
	_ Model = (*Venue)(nil)
	_ Model = (*Artist)(nil)
	_ Model = (*Show)(nil)
)

// Venue is a place that hosts shows.
type Venue struct {
	ID                 int64
	Name               string `validate:"required"`
	City               string `validate:"required"`
	State              string `validate:"required"`
	Address            string
	Phone              string
	ImageLink          string `validate:"omitempty,url"`
	FacebookLink       string `validate:"omitempty,url"`
	WebsiteLink        string `validate:"omitempty,url"`
	SeekingTalent      bool
	SeekingDescription string
	Genres             []string
}

func (v *Venue) Key() int64      { return v.ID }
func (v *Venue) Validate() error { return check(v) }

// Artist is a performer that plays shows at venues.
type Artist struct {
	ID                 int64
	Name               string `validate:"required"`
	City               string `validate:"required"`
	State              string `validate:"required"`
	Phone              string
	ImageLink          string `validate:"omitempty,url"`
	FacebookLink       string `validate:"omitempty,url"`
	Website            string `validate:"omitempty,url"`
	SeekingVenue       bool
	SeekingDescription string
	Genres             []string
}

func (a *Artist) Key() int64      { return a.ID }
func (a *Artist) Validate() error { return check(a) }

// Show books one artist at one venue at a point in time.
//
// The Venue* and Artist* display fields are populated on reads and ignored on writes.
type Show struct {
	ID        int64
	VenueID   int64     `validate:"gt=0"`
	ArtistID  int64     `validate:"gt=0"`
	StartTime time.Time `validate:"required"`

	VenueName       string
	VenueImageLink  string
	ArtistName      string
	ArtistImageLink string
}

func (s *Show) Key() int64      { return s.ID }
func (s *Show) Validate() error { return check(s) }

// Start returns the show's scheduled instant.
func (s *Show) Start() time.Time { return s.StartTime }
