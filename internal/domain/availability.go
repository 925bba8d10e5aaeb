package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Availability is a time range during which an artist declares itself bookable.
// swagger:model Availability
type Availability struct {
	ID       int64     `json:"id"`
	ArtistID int64     `json:"artist_id"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
}

// NewAvailability returns a new Availability. ID is set by the repository on create.
func NewAvailability(artistID int64, window Interval) *Availability {
	return &Availability{
		ArtistID: artistID,
		StartAt:  window.Start,
		EndAt:    window.End,
	}
}

// Interval returns the declared time range.
func (a *Availability) Interval() Interval {
	return NewInterval(a.StartAt, a.EndAt)
}

type availabilityJSON struct {
	ID       int64  `json:"id"`
	ArtistID int64  `json:"artist_id"`
	StartAt  string `json:"start_at"`
	EndAt    string `json:"end_at"`
}

// MarshalJSON renders the window bounds with TimestampLayout, like every view model.
func (a Availability) MarshalJSON() ([]byte, error) {
	return json.Marshal(availabilityJSON{
		ID:       a.ID,
		ArtistID: a.ArtistID,
		StartAt:  FormatTimestamp(a.StartAt),
		EndAt:    FormatTimestamp(a.EndAt),
	})
}

func (a *Availability) UnmarshalJSON(data []byte) error {
	var v availabilityJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	window, err := ParseInterval(v.StartAt, v.EndAt)
	if err != nil {
		return err
	}
	*a = Availability{ID: v.ID, ArtistID: v.ArtistID, StartAt: window.Start, EndAt: window.End}
	return nil
}

// AvailabilityForm is the raw availability input. Values are parsed by the booking workflow.
// swagger:model AvailabilityForm
type AvailabilityForm struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// AvailabilityRepository defines storage for availability windows.
type AvailabilityRepository interface {
	Create(ctx context.Context, availability *Availability) error
	// ListByArtistID returns the artist's windows ordered by start.
	ListByArtistID(ctx context.Context, artistID int64) ([]*Availability, error)
}
