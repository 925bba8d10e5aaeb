package postgres

import (
	"context"

	"fyyur/internal/domain"
)

type availabilityRepository struct {
	DB DBTX
}

// NewAvailabilityRepository returns a domain.AvailabilityRepository implemented with Postgres.
func NewAvailabilityRepository(db DBTX) domain.AvailabilityRepository {
	return &availabilityRepository{DB: db}
}

func (r *availabilityRepository) Create(ctx context.Context, a *domain.Availability) error {
	query := `
		INSERT INTO "Availability" (artist_id, start_at, end_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, a.ArtistID, a.StartAt, a.EndAt).Scan(&a.ID); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *availabilityRepository) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.Availability, error) {
	query := `
		SELECT id, artist_id, start_at, end_at
		FROM "Availability"
		WHERE artist_id = $1
		ORDER BY start_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	windows := make([]*domain.Availability, 0)
	for rows.Next() {
		a := &domain.Availability{}
		if err := rows.Scan(&a.ID, &a.ArtistID, &a.StartAt, &a.EndAt); err != nil {
			return nil, err
		}
		windows = append(windows, a)
	}
	return windows, rows.Err()
}
