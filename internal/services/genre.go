package services

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/domain"
)

type genreService struct {
	genreRepo      domain.GenreRepository
	contextTimeout time.Duration
}

// NewGenreService returns a GenreService backed by genreRepo.
func NewGenreService(genreRepo domain.GenreRepository, timeout time.Duration) domain.GenreService {
	return &genreService{genreRepo: genreRepo, contextTimeout: timeout}
}

// Seed inserts the default genres that are not present yet. Safe to call on every start.
func (s *genreService) Seed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.genreRepo.EnsureNames(ctx, domain.DefaultGenres); err != nil {
		return fmt.Errorf("seed genres: %w", err)
	}
	return nil
}

func (s *genreService) List(ctx context.Context) ([]*domain.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	genres, err := s.genreRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}
