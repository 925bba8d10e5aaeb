package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyyur/internal/domain"
)

type venueService struct {
	venueRepo      domain.VenueRepository
	showRepo       domain.ShowRepository
	genreRepo      domain.GenreRepository
	uow            domain.UnitOfWork
	contextTimeout time.Duration
	now            func() time.Time
}

// NewVenueService returns a VenueService. Reads go through the repositories;
// writes that touch more than one table run in a unit of work.
func NewVenueService(
	venueRepo domain.VenueRepository,
	showRepo domain.ShowRepository,
	genreRepo domain.GenreRepository,
	uow domain.UnitOfWork,
	timeout time.Duration,
) domain.VenueService {
	return &venueService{
		venueRepo:      venueRepo,
		showRepo:       showRepo,
		genreRepo:      genreRepo,
		uow:            uow,
		contextTimeout: timeout,
		now:            naiveNow,
	}
}

// ListByArea returns venues grouped by (city, state), areas in the order the
// repository lists them.
func (s *venueService) ListByArea(ctx context.Context) ([]*domain.VenueArea, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.venueRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	counts, err := s.showRepo.CountUpcomingByVenue(ctx, venueIDs(venues), s.now())
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}

	type areaKey struct{ city, state string }
	areas := make([]*domain.VenueArea, 0)
	byKey := make(map[areaKey]*domain.VenueArea)
	for _, v := range venues {
		key := areaKey{v.City, v.State}
		area, ok := byKey[key]
		if !ok {
			area = &domain.VenueArea{City: v.City, State: v.State, Venues: []*domain.ListingItem{}}
			byKey[key] = area
			areas = append(areas, area)
		}
		area.Venues = append(area.Venues, &domain.ListingItem{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas, nil
}

func (s *venueService) ListRecent(ctx context.Context, limit int) ([]*domain.ListingItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.venueRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent venues: %w", err)
	}
	items := make([]*domain.ListingItem, 0, len(venues))
	for _, v := range venues {
		items = append(items, &domain.ListingItem{ID: v.ID, Name: v.Name, City: v.City, State: v.State})
	}
	return items, nil
}

func (s *venueService) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.venueRepo.Search(ctx, domain.ParseSearchTerm(term))
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	counts, err := s.showRepo.CountUpcomingByVenue(ctx, venueIDs(venues), s.now())
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}

	data := make([]*domain.ListingItem, 0, len(venues))
	for _, v := range venues {
		data = append(data, &domain.ListingItem{
			ID:               v.ID,
			Name:             v.Name,
			City:             v.City,
			State:            v.State,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return &domain.SearchResult{SearchTerm: term, Count: len(data), Data: data}, nil
}

func (s *venueService) GetDetail(ctx context.Context, id int64) (*domain.VenueDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	genres, err := s.genreRepo.ListByVenueID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list venue genres: %w", err)
	}
	shows, err := s.showRepo.ListByVenueWithDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list venue shows: %w", err)
	}

	detail := &domain.VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             domain.GenreNames(genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.WebsiteLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          []*domain.VenueShow{},
		UpcomingShows:      []*domain.VenueShow{},
	}
	now := s.now()
	for _, sh := range shows {
		vs := &domain.VenueShow{
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       domain.FormatTimestamp(sh.StartTime),
		}
		if sh.StartTime.Before(now) {
			detail.PastShows = append(detail.PastShows, vs)
		} else {
			detail.UpcomingShows = append(detail.UpcomingShows, vs)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

func (s *venueService) GetForm(ctx context.Context, id int64) (*domain.VenueForm, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	genres, err := s.genreRepo.ListByVenueID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list venue genres: %w", err)
	}
	return domain.NewVenueForm(venue, domain.GenreNames(genres)), nil
}

func (s *venueService) Create(ctx context.Context, form domain.VenueForm) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venue := &domain.Venue{}
	form.Apply(venue)
	err := s.uow.WithinTx(ctx, func(repos domain.Repositories) error {
		genres, err := repos.Genres.ResolveNames(ctx, form.Genres)
		if err != nil {
			return err
		}
		if err := repos.Venues.Create(ctx, venue); err != nil {
			return fmt.Errorf("create venue: %w", err)
		}
		return repos.Genres.SetVenueGenres(ctx, venue.ID, domain.GenreIDs(genres))
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// Update replaces every field and the genre set of the venue.
func (s *venueService) Update(ctx context.Context, id int64, form domain.VenueForm) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var venue *domain.Venue
	err := s.uow.WithinTx(ctx, func(repos domain.Repositories) error {
		v, err := repos.Venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		genres, err := repos.Genres.ResolveNames(ctx, form.Genres)
		if err != nil {
			return err
		}
		form.Apply(v)
		if err := repos.Venues.Update(ctx, v); err != nil {
			return fmt.Errorf("update venue: %w", err)
		}
		if err := repos.Genres.SetVenueGenres(ctx, id, domain.GenreIDs(genres)); err != nil {
			return err
		}
		venue = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// Delete removes the venue and, with it, its shows and genre links.
func (s *venueService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.uow.WithinTx(ctx, func(repos domain.Repositories) error {
		return repos.Venues.Delete(ctx, id)
	})
}

func venueIDs(venues []*domain.Venue) []int64 {
	ids := make([]int64, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	return ids
}
