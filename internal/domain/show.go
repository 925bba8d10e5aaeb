package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Show is a scheduled booking of one artist at one venue.
// swagger:model Show
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// NewShow returns a new Show. ID is set by the repository on create.
func NewShow(artistID, venueID int64, window Interval) *Show {
	return &Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: window.Start,
		EndTime:   window.End,
	}
}

// Interval returns the booked time range of the show.
func (s *Show) Interval() Interval {
	return NewInterval(s.StartTime, s.EndTime)
}

// showJSON is the wire form of Show. Times are naive and use TimestampLayout.
type showJSON struct {
	ID        int64  `json:"id"`
	ArtistID  int64  `json:"artist_id"`
	VenueID   int64  `json:"venue_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (s Show) MarshalJSON() ([]byte, error) {
	return json.Marshal(showJSON{
		ID:        s.ID,
		ArtistID:  s.ArtistID,
		VenueID:   s.VenueID,
		StartTime: FormatTimestamp(s.StartTime),
		EndTime:   FormatTimestamp(s.EndTime),
	})
}

func (s *Show) UnmarshalJSON(data []byte) error {
	var v showJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	window, err := ParseInterval(v.StartTime, v.EndTime)
	if err != nil {
		return err
	}
	*s = Show{ID: v.ID, ArtistID: v.ArtistID, VenueID: v.VenueID, StartTime: window.Start, EndTime: window.End}
	return nil
}

// ShowForm is the raw show booking input. Values are parsed by the booking workflow.
// swagger:model ShowForm
type ShowForm struct {
	ArtistID  string `json:"artist_id"`
	VenueID   string `json:"venue_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ShowListing is a show joined with its artist and venue.
// swagger:model ShowListing
type ShowListing struct {
	ID              int64     `json:"id"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
}

// ShowView is the show listing view model with formatted times.
// swagger:model ShowView
type ShowView struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

// ShowRepository defines storage for shows.
type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	ListByArtistID(ctx context.Context, artistID int64) ([]*Show, error)
	// ListAll returns every show joined with its artist and venue, by start time.
	ListAll(ctx context.Context) ([]*ShowListing, error)
	ListByVenueWithDetails(ctx context.Context, venueID int64) ([]*ShowListing, error)
	ListByArtistWithDetails(ctx context.Context, artistID int64) ([]*ShowListing, error)
	// CountUpcomingByVenue counts shows starting at or after now, keyed by venue id.
	CountUpcomingByVenue(ctx context.Context, venueIDs []int64, now time.Time) (map[int64]int, error)
	// CountUpcomingByArtist counts shows starting at or after now, keyed by artist id.
	CountUpcomingByArtist(ctx context.Context, artistIDs []int64, now time.Time) (map[int64]int, error)
}

// ShowService lists shows.
type ShowService interface {
	List(ctx context.Context) ([]*ShowView, error)
}
