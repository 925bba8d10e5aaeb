package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fyyur/internal/domain"
)

type bookingService struct {
	uow            domain.UnitOfWork
	emailService   domain.EmailService
	notifyTo       string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService returns the show and availability booking workflows.
// Each workflow runs in one transaction that starts by locking the artist row.
// When notifyTo is set, every booked show is announced to that address.
func NewBookingService(
	uow domain.UnitOfWork,
	emailService domain.EmailService,
	notifyTo string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		uow:            uow,
		emailService:   emailService,
		notifyTo:       notifyTo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateShow books a show. The artist and venue are resolved before the
// availability check, so an unknown artist is a not_found rejection rather
// than outside_availability.
func (s *bookingService) CreateShow(ctx context.Context, form domain.ShowForm) (*domain.BookingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artistID, err := parseID("artist_id", form.ArtistID)
	if err != nil {
		return nil, domain.NewBookingError(domain.BookingParseError, domain.MsgShowNotListed, err)
	}
	venueID, err := parseID("venue_id", form.VenueID)
	if err != nil {
		return nil, domain.NewBookingError(domain.BookingParseError, domain.MsgShowNotListed, err)
	}
	window, err := domain.ParseInterval(form.StartTime, form.EndTime)
	if err != nil {
		return nil, domain.NewBookingError(domain.BookingParseError, domain.MsgShowNotListed, err)
	}
	if !window.Ordered() {
		return nil, domain.NewBookingError(domain.BookingInvalidOrder, domain.MsgInvalidOrder, domain.ErrOrdering)
	}

	var (
		show   *domain.Show
		artist *domain.Artist
		venue  *domain.Venue
	)
	err = s.uow.WithinTx(ctx, func(repos domain.Repositories) error {
		var err error
		artist, err = repos.Artists.LockForBooking(ctx, artistID)
		if err != nil {
			return notFoundOr(err, domain.MsgShowNotListed, "artist", artistID)
		}
		venue, err = repos.Venues.GetByID(ctx, venueID)
		if err != nil {
			return notFoundOr(err, domain.MsgShowNotListed, "venue", venueID)
		}

		available, err := findContainingAvailability(ctx, repos.Availability, artistID, window)
		if err != nil {
			return err
		}
		if available == nil {
			return domain.NewBookingError(domain.BookingOutsideAvailability, domain.MsgOutsideAvailability, domain.ErrContainment)
		}
		collides, err := showCollides(ctx, repos.Shows, artistID, window)
		if err != nil {
			return err
		}
		if collides {
			return domain.NewBookingError(domain.BookingColliding, domain.MsgShowCollision, domain.ErrCollision)
		}

		show = domain.NewShow(artistID, venueID, window)
		if err := repos.Shows.Create(ctx, show); err != nil {
			return notFoundOr(err, domain.MsgShowNotListed, "venue", venueID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyShowBooked(ctx, show, artist, venue)
	return &domain.BookingResult{
		Message:  domain.MsgShowListed,
		Redirect: domain.LandingRedirect,
		Show:     show,
	}, nil
}

func (s *bookingService) CreateAvailability(ctx context.Context, artistID int64, form domain.AvailabilityForm) (*domain.BookingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	window, err := domain.ParseInterval(form.StartAt, form.EndAt)
	if err != nil {
		return nil, domain.NewBookingError(domain.BookingParseError, domain.MsgAvailabilityNotListed, err)
	}
	if !window.Ordered() {
		return nil, domain.NewBookingError(domain.BookingInvalidOrder, domain.MsgInvalidOrder, domain.ErrOrdering)
	}

	var availability *domain.Availability
	err = s.uow.WithinTx(ctx, func(repos domain.Repositories) error {
		if _, err := repos.Artists.LockForBooking(ctx, artistID); err != nil {
			return notFoundOr(err, domain.MsgAvailabilityNotListed, "artist", artistID)
		}
		overlaps, err := availabilityOverlaps(ctx, repos.Availability, artistID, window)
		if err != nil {
			return err
		}
		if overlaps {
			return domain.NewBookingError(domain.BookingColliding, domain.MsgAvailabilityCollision, domain.ErrCollision)
		}
		availability = domain.NewAvailability(artistID, window)
		if err := repos.Availability.Create(ctx, availability); err != nil {
			return notFoundOr(err, domain.MsgAvailabilityNotListed, "artist", artistID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &domain.BookingResult{
		Message:      domain.MsgAvailabilityListed,
		Redirect:     domain.LandingRedirect,
		Availability: availability,
	}, nil
}

// notifyShowBooked mails the booking notification. Failures are logged only;
// the show is already committed.
func (s *bookingService) notifyShowBooked(ctx context.Context, show *domain.Show, artist *domain.Artist, venue *domain.Venue) {
	if s.notifyTo == "" || s.emailService == nil {
		return
	}
	err := s.emailService.SendShowBooked(ctx, &domain.ShowBookedEmailData{
		To:         s.notifyTo,
		ShowID:     show.ID,
		ArtistName: artist.Name,
		VenueName:  venue.Name,
		VenueCity:  venue.City,
		StartTime:  domain.FormatTimestamp(show.StartTime),
		EndTime:    domain.FormatTimestamp(show.EndTime),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "show booked notification failed", "show_id", show.ID, "err", err)
	}
}

// findContainingAvailability returns a window of the artist that contains
// the requested interval, or nil when none does.
func findContainingAvailability(ctx context.Context, repo domain.AvailabilityRepository, artistID int64, window domain.Interval) (*domain.Availability, error) {
	windows, err := repo.ListByArtistID(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	for _, a := range windows {
		if a.Interval().Contains(window) {
			return a, nil
		}
	}
	return nil, nil
}

// showCollides reports whether any show of the artist overlaps window.
func showCollides(ctx context.Context, repo domain.ShowRepository, artistID int64, window domain.Interval) (bool, error) {
	shows, err := repo.ListByArtistID(ctx, artistID)
	if err != nil {
		return false, fmt.Errorf("list shows: %w", err)
	}
	booked := make([]domain.Interval, 0, len(shows))
	for _, sh := range shows {
		booked = append(booked, sh.Interval())
	}
	return domain.OverlapsAny(window, booked), nil
}

// availabilityOverlaps reports whether any availability window of the artist overlaps window.
func availabilityOverlaps(ctx context.Context, repo domain.AvailabilityRepository, artistID int64, window domain.Interval) (bool, error) {
	windows, err := repo.ListByArtistID(ctx, artistID)
	if err != nil {
		return false, fmt.Errorf("list availability: %w", err)
	}
	existing := make([]domain.Interval, 0, len(windows))
	for _, a := range windows {
		existing = append(existing, a.Interval())
	}
	return domain.OverlapsAny(window, existing), nil
}

func parseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrParse, field, raw)
	}
	return id, nil
}

// notFoundOr turns a missing row into a BookingNotFound rejection and wraps anything else.
func notFoundOr(err error, message, what string, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewBookingError(domain.BookingNotFound, message, fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound))
	}
	return fmt.Errorf("%s %d: %w", what, id, err)
}
