package domain

import "context"

// Venue is a place that hosts shows.
// swagger:model Venue
type Venue struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	WebsiteLink        string `json:"website_link"`
	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`
}

// VenueForm carries the editable fields of a venue as submitted by a client.
// swagger:model VenueForm
type VenueForm struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

// Validate implements the delivery layer Validator.
func (f VenueForm) Validate() []string {
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

// Apply copies the form fields onto v. Genres are stored separately.
func (f VenueForm) Apply(v *Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.WebsiteLink = f.WebsiteLink
	v.SeekingTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}

// NewVenueForm builds the prefilled edit form of v.
func NewVenueForm(v *Venue, genres []string) *VenueForm {
	return &VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		Genres:             genres,
	}
}

// VenueArea groups the venues of one (city, state) pair.
// swagger:model VenueArea
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []*ListingItem `json:"venues"`
}

// VenueShow is a show as seen from a venue page.
type VenueShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueDetail is the venue page view model.
// swagger:model VenueDetail
type VenueDetail struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingTalent      bool         `json:"seeking_talent"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []*VenueShow `json:"past_shows"`
	UpcomingShows      []*VenueShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// VenueRepository defines storage for venues.
type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	Update(ctx context.Context, venue *Venue) error
	// Delete removes the venue together with its shows and genre links.
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Venue, error)
	// ListAll returns every venue ordered by state, city, then id.
	ListAll(ctx context.Context) ([]*Venue, error)
	// ListRecent returns the most recently created venues, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Venue, error)
	Search(ctx context.Context, q SearchQuery) ([]*Venue, error)
}

// VenueService defines venue browsing and management.
type VenueService interface {
	ListByArea(ctx context.Context) ([]*VenueArea, error)
	ListRecent(ctx context.Context, limit int) ([]*ListingItem, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
	GetDetail(ctx context.Context, id int64) (*VenueDetail, error)
	GetForm(ctx context.Context, id int64) (*VenueForm, error)
	Create(ctx context.Context, form VenueForm) (*Venue, error)
	Update(ctx context.Context, id int64, form VenueForm) (*Venue, error)
	Delete(ctx context.Context, id int64) error
}
