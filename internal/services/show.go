package services

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/domain"
)

type showService struct {
	showRepo       domain.ShowRepository
	contextTimeout time.Duration
}

func NewShowService(showRepo domain.ShowRepository, timeout time.Duration) domain.ShowService {
	return &showService{showRepo: showRepo, contextTimeout: timeout}
}

// List returns every show with its artist and venue, ordered by start time.
func (s *showService) List(ctx context.Context) ([]*domain.ShowView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	listings, err := s.showRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	views := make([]*domain.ShowView, 0, len(listings))
	for _, l := range listings {
		views = append(views, &domain.ShowView{
			VenueID:         l.VenueID,
			VenueName:       l.VenueName,
			ArtistID:        l.ArtistID,
			ArtistName:      l.ArtistName,
			ArtistImageLink: l.ArtistImageLink,
			StartTime:       domain.FormatTimestamp(l.StartTime),
			EndTime:         domain.FormatTimestamp(l.EndTime),
		})
	}
	return views, nil
}
