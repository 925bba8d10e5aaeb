package postgres

import (
	"context"
	"fmt"
	"strings"

	"fyyur/internal/domain"

	"github.com/lib/pq"
)

type genreRepository struct {
	DB DBTX
}

// NewGenreRepository returns a domain.GenreRepository implemented with Postgres.
func NewGenreRepository(db DBTX) domain.GenreRepository {
	return &genreRepository{DB: db}
}

func (r *genreRepository) EnsureNames(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO "Genre" (name) SELECT unnest($1::text[]) ON CONFLICT (name) DO NOTHING`,
		pq.Array(names))
	return err
}

func (r *genreRepository) ListAll(ctx context.Context) ([]*domain.Genre, error) {
	return r.list(ctx, `SELECT id, name FROM "Genre" ORDER BY name`)
}

func (r *genreRepository) ResolveNames(ctx context.Context, names []string) ([]*domain.Genre, error) {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}
	if len(unique) == 0 {
		return []*domain.Genre{}, nil
	}

	found, err := r.list(ctx, `SELECT id, name FROM "Genre" WHERE name = ANY($1)`, pq.Array(unique))
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*domain.Genre, len(found))
	for _, g := range found {
		byName[g.Name] = g
	}

	out := make([]*domain.Genre, 0, len(unique))
	var missing []string
	for _, n := range unique {
		g, ok := byName[n]
		if !ok {
			missing = append(missing, n)
			continue
		}
		out = append(out, g)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownGenre, strings.Join(missing, ", "))
	}
	return out, nil
}

func (r *genreRepository) ListByVenueID(ctx context.Context, venueID int64) ([]*domain.Genre, error) {
	return r.list(ctx,
		`SELECT g.id, g.name FROM "Genre" g
		 JOIN venue_genres_map m ON m.genre_id = g.id
		 WHERE m.venue_id = $1
		 ORDER BY g.name`, venueID)
}

func (r *genreRepository) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.Genre, error) {
	return r.list(ctx,
		`SELECT g.id, g.name FROM "Genre" g
		 JOIN artist_genres_map m ON m.genre_id = g.id
		 WHERE m.artist_id = $1
		 ORDER BY g.name`, artistID)
}

func (r *genreRepository) SetVenueGenres(ctx context.Context, venueID int64, genreIDs []int64) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM venue_genres_map WHERE venue_id = $1`, venueID); err != nil {
		return err
	}
	for _, genreID := range genreIDs {
		if _, err := r.DB.ExecContext(ctx,
			`INSERT INTO venue_genres_map (venue_id, genre_id) VALUES ($1, $2) ON CONFLICT (venue_id, genre_id) DO NOTHING`,
			venueID, genreID); err != nil {
			return mapWriteError(err)
		}
	}
	return nil
}

func (r *genreRepository) SetArtistGenres(ctx context.Context, artistID int64, genreIDs []int64) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM artist_genres_map WHERE artist_id = $1`, artistID); err != nil {
		return err
	}
	for _, genreID := range genreIDs {
		if _, err := r.DB.ExecContext(ctx,
			`INSERT INTO artist_genres_map (artist_id, genre_id) VALUES ($1, $2) ON CONFLICT (artist_id, genre_id) DO NOTHING`,
			artistID, genreID); err != nil {
			return mapWriteError(err)
		}
	}
	return nil
}

func (r *genreRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Genre, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]*domain.Genre, 0)
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}
