package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyyur/internal/domain"
)

type artistService struct {
	artistRepo       domain.ArtistRepository
	showRepo         domain.ShowRepository
	genreRepo        domain.GenreRepository
	availabilityRepo domain.AvailabilityRepository
	uow              domain.UnitOfWork
	contextTimeout   time.Duration
	now              func() time.Time
}

func NewArtistService(
	artistRepo domain.ArtistRepository,
	showRepo domain.ShowRepository,
	genreRepo domain.GenreRepository,
	availabilityRepo domain.AvailabilityRepository,
	uow domain.UnitOfWork,
	timeout time.Duration,
) domain.ArtistService {
	return &artistService{
		artistRepo:       artistRepo,
		showRepo:         showRepo,
		genreRepo:        genreRepo,
		availabilityRepo: availabilityRepo,
		uow:              uow,
		contextTimeout:   timeout,
		now:              naiveNow,
	}
}

func (s *artistService) List(ctx context.Context) ([]*domain.ListingItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artists, err := s.artistRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	items := make([]*domain.ListingItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, &domain.ListingItem{ID: a.ID, Name: a.Name})
	}
	return items, nil
}

func (s *artistService) ListRecent(ctx context.Context, limit int) ([]*domain.ListingItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artists, err := s.artistRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent artists: %w", err)
	}
	items := make([]*domain.ListingItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, &domain.ListingItem{ID: a.ID, Name: a.Name, City: a.City, State: a.State})
	}
	return items, nil
}

func (s *artistService) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artists, err := s.artistRepo.Search(ctx, domain.ParseSearchTerm(term))
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	ids := make([]int64, 0, len(artists))
	for _, a := range artists {
		ids = append(ids, a.ID)
	}
	counts, err := s.showRepo.CountUpcomingByArtist(ctx, ids, s.now())
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}

	data := make([]*domain.ListingItem, 0, len(artists))
	for _, a := range artists {
		data = append(data, &domain.ListingItem{
			ID:               a.ID,
			Name:             a.Name,
			City:             a.City,
			State:            a.State,
			NumUpcomingShows: counts[a.ID],
		})
	}
	return &domain.SearchResult{SearchTerm: term, Count: len(data), Data: data}, nil
}

func (s *artistService) GetDetail(ctx context.Context, id int64) (*domain.ArtistDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	genres, err := s.genreRepo.ListByArtistID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list artist genres: %w", err)
	}
	shows, err := s.showRepo.ListByArtistWithDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list artist shows: %w", err)
	}
	windows, err := s.availabilityRepo.ListByArtistID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list artist availability: %w", err)
	}

	detail := &domain.ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             domain.GenreNames(genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.WebsiteLink,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          []*domain.ArtistShow{},
		UpcomingShows:      []*domain.ArtistShow{},
		AvailabilityList:   make([]*domain.AvailabilityWindow, 0, len(windows)),
	}
	for _, w := range windows {
		detail.AvailabilityList = append(detail.AvailabilityList, &domain.AvailabilityWindow{
			StartAt: domain.FormatTimestamp(w.StartAt),
			EndAt:   domain.FormatTimestamp(w.EndAt),
		})
	}
	now := s.now()
	for _, sh := range shows {
		as := &domain.ArtistShow{
			VenueID:        sh.VenueID,
			VenueName:      sh.VenueName,
			VenueImageLink: sh.VenueImageLink,
			StartTime:      domain.FormatTimestamp(sh.StartTime),
		}
		if sh.StartTime.Before(now) {
			detail.PastShows = append(detail.PastShows, as)
		} else {
			detail.UpcomingShows = append(detail.UpcomingShows, as)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

func (s *artistService) GetForm(ctx context.Context, id int64) (*domain.ArtistForm, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	genres, err := s.genreRepo.ListByArtistID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list artist genres: %w", err)
	}
	return domain.NewArtistForm(artist, domain.GenreNames(genres)), nil
}

func (s *artistService) Create(ctx context.Context, form domain.ArtistForm) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artist := &domain.Artist{}
	form.Apply(artist)
	err := s.uow.WithinTx(ctx, func(repos domain.Repositories) error {
		genres, err := repos.Genres.ResolveNames(ctx, form.Genres)
		if err != nil {
			return err
		}
		if err := repos.Artists.Create(ctx, artist); err != nil {
			return fmt.Errorf("create artist: %w", err)
		}
		return repos.Genres.SetArtistGenres(ctx, artist.ID, domain.GenreIDs(genres))
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

// Update replaces every field and the genre set of the artist. The artist row
// is locked so an edit does not interleave with a booking for the same artist.
func (s *artistService) Update(ctx context.Context, id int64, form domain.ArtistForm) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var artist *domain.Artist
	err := s.uow.WithinTx(ctx, func(repos domain.Repositories) error {
		a, err := repos.Artists.LockForBooking(ctx, id)
		if err != nil {
			return err
		}
		genres, err := repos.Genres.ResolveNames(ctx, form.Genres)
		if err != nil {
			return err
		}
		form.Apply(a)
		if err := repos.Artists.Update(ctx, a); err != nil {
			return fmt.Errorf("update artist: %w", err)
		}
		if err := repos.Genres.SetArtistGenres(ctx, id, domain.GenreIDs(genres)); err != nil {
			return err
		}
		artist = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

// Delete removes the artist with its shows, availability windows and genre links.
func (s *artistService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.uow.WithinTx(ctx, func(repos domain.Repositories) error {
		return repos.Artists.Delete(ctx, id)
	})
}
