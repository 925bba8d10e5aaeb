package domain

import "context"

// Repositories bundles the repositories bound to one connection or transaction.
type Repositories struct {
	Venues       VenueRepository
	Artists      ArtistRepository
	Genres       GenreRepository
	Shows        ShowRepository
	Availability AvailabilityRepository
}

// UnitOfWork runs fn inside a single transaction. The transaction commits when
// fn returns nil and rolls back otherwise; fn's error is returned unchanged.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
