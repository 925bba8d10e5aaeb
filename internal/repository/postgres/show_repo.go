package postgres

import (
	"context"
	"time"

	"fyyur/internal/domain"

	"github.com/lib/pq"
)

const showListingQuery = `
	SELECT s.id, s.artist_id, a.name, a.image_link, s.venue_id, v.name, v.image_link, s.start_time, s.end_time
	FROM "Show" s
	INNER JOIN "Artist" a ON a.id = s.artist_id
	INNER JOIN "Venue" v ON v.id = s.venue_id
`

type showRepository struct {
	DB DBTX
}

// NewShowRepository returns a domain.ShowRepository implemented with Postgres.
func NewShowRepository(db DBTX) domain.ShowRepository {
	return &showRepository{DB: db}
}

func (r *showRepository) Create(ctx context.Context, s *domain.Show) error {
	query := `
		INSERT INTO "Show" (artist_id, venue_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.ArtistID, s.VenueID, s.StartTime, s.EndTime).Scan(&s.ID)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *showRepository) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.Show, error) {
	query := `
		SELECT id, artist_id, venue_id, start_time, end_time
		FROM "Show"
		WHERE artist_id = $1
		ORDER BY start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]*domain.Show, 0)
	for rows.Next() {
		s := &domain.Show{}
		if err := rows.Scan(&s.ID, &s.ArtistID, &s.VenueID, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		shows = append(shows, s)
	}
	return shows, rows.Err()
}

func (r *showRepository) ListAll(ctx context.Context) ([]*domain.ShowListing, error) {
	return r.listings(ctx, showListingQuery+` ORDER BY s.start_time, s.id`)
}

func (r *showRepository) ListByVenueWithDetails(ctx context.Context, venueID int64) ([]*domain.ShowListing, error) {
	return r.listings(ctx, showListingQuery+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

func (r *showRepository) ListByArtistWithDetails(ctx context.Context, artistID int64) ([]*domain.ShowListing, error) {
	return r.listings(ctx, showListingQuery+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

func (r *showRepository) CountUpcomingByVenue(ctx context.Context, venueIDs []int64, now time.Time) (map[int64]int, error) {
	return r.countUpcoming(ctx,
		`SELECT venue_id, COUNT(*) FROM "Show" WHERE venue_id = ANY($1) AND start_time >= $2 GROUP BY venue_id`,
		venueIDs, now)
}

func (r *showRepository) CountUpcomingByArtist(ctx context.Context, artistIDs []int64, now time.Time) (map[int64]int, error) {
	return r.countUpcoming(ctx,
		`SELECT artist_id, COUNT(*) FROM "Show" WHERE artist_id = ANY($1) AND start_time >= $2 GROUP BY artist_id`,
		artistIDs, now)
}

func (r *showRepository) countUpcoming(ctx context.Context, query string, ids []int64, now time.Time) (map[int64]int, error) {
	counts := make(map[int64]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids), now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

func (r *showRepository) listings(ctx context.Context, query string, args ...any) ([]*domain.ShowListing, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.ShowListing, 0)
	for rows.Next() {
		l := &domain.ShowListing{}
		if err := rows.Scan(&l.ID, &l.ArtistID, &l.ArtistName, &l.ArtistImageLink,
			&l.VenueID, &l.VenueName, &l.VenueImageLink, &l.StartTime, &l.EndTime); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
