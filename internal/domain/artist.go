package domain

import "context"

// Artist is a performer who can be booked into shows.
// swagger:model Artist
type Artist struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Phone              string `json:"phone"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	WebsiteLink        string `json:"website_link"`
	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`
}

// ArtistForm carries the editable fields of an artist as submitted by a client.
// swagger:model ArtistForm
type ArtistForm struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

// Validate implements the delivery layer Validator.
func (f ArtistForm) Validate() []string {
	var errs []string
	if f.Name == "" {
		errs = append(errs, "name is required")
	}
	if f.City == "" {
		errs = append(errs, "city is required")
	}
	if f.State == "" {
		errs = append(errs, "state is required")
	}
	return errs
}

// Apply copies the form fields onto a. Genres are stored separately.
func (f ArtistForm) Apply(a *Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.WebsiteLink = f.WebsiteLink
	a.SeekingVenue = f.SeekingVenue
	a.SeekingDescription = f.SeekingDescription
}

// NewArtistForm builds the prefilled edit form of a.
func NewArtistForm(a *Artist, genres []string) *ArtistForm {
	return &ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		Genres:             genres,
	}
}

// ArtistShow is a show as seen from an artist page.
type ArtistShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// AvailabilityWindow is an availability row as shown on an artist page.
type AvailabilityWindow struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// ArtistDetail is the artist page view model.
// swagger:model ArtistDetail
type ArtistDetail struct {
	ID                 int64                 `json:"id"`
	Name               string                `json:"name"`
	Genres             []string              `json:"genres"`
	City               string                `json:"city"`
	State              string                `json:"state"`
	Phone              string                `json:"phone"`
	Website            string                `json:"website"`
	FacebookLink       string                `json:"facebook_link"`
	SeekingVenue       bool                  `json:"seeking_venue"`
	SeekingDescription string                `json:"seeking_description"`
	ImageLink          string                `json:"image_link"`
	PastShows          []*ArtistShow         `json:"past_shows"`
	UpcomingShows      []*ArtistShow         `json:"upcoming_shows"`
	AvailabilityList   []*AvailabilityWindow `json:"availability_list"`
	PastShowsCount     int                   `json:"past_shows_count"`
	UpcomingShowsCount int                   `json:"upcoming_shows_count"`
}

// ArtistRepository defines storage for artists.
type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	Update(ctx context.Context, artist *Artist) error
	// Delete removes the artist together with its shows, availability windows and genre links.
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Artist, error)
	// LockForBooking loads the artist and holds a row lock on it until the
	// surrounding transaction ends. Bookings of one artist are serialized through it.
	LockForBooking(ctx context.Context, id int64) (*Artist, error)
	// ListAll returns every artist ordered by id.
	ListAll(ctx context.Context) ([]*Artist, error)
	// ListRecent returns the most recently created artists, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Artist, error)
	Search(ctx context.Context, q SearchQuery) ([]*Artist, error)
}

// ArtistService defines artist browsing and management.
type ArtistService interface {
	List(ctx context.Context) ([]*ListingItem, error)
	ListRecent(ctx context.Context, limit int) ([]*ListingItem, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
	GetDetail(ctx context.Context, id int64) (*ArtistDetail, error)
	GetForm(ctx context.Context, id int64) (*ArtistForm, error)
	Create(ctx context.Context, form ArtistForm) (*Artist, error)
	Update(ctx context.Context, id int64, form ArtistForm) (*Artist, error)
	Delete(ctx context.Context, id int64) error
}
