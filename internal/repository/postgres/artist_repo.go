package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/domain"
)

const artistColumns = `id, name, city, state, phone, image_link, facebook_link, website_link, seeking_venue, seeking_description`

type artistRepository struct {
	DB DBTX
}

// NewArtistRepository returns a domain.ArtistRepository implemented with Postgres.
func NewArtistRepository(db DBTX) domain.ArtistRepository {
	return &artistRepository{DB: db}
}

func scanArtist(s rowScanner) (*domain.Artist, error) {
	a := &domain.Artist{}
	err := s.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := `
		INSERT INTO "Artist" (name, city, state, phone, image_link, facebook_link, website_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, a.Name, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription).Scan(&a.ID)
}

func (r *artistRepository) Update(ctx context.Context, a *domain.Artist) error {
	query := `
		UPDATE "Artist"
		SET name = $2, city = $3, state = $4, phone = $5, image_link = $6,
		    facebook_link = $7, website_link = $8, seeking_venue = $9, seeking_description = $10
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, a.ID, a.Name, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	for _, q := range []string{
		`DELETE FROM "Show" WHERE artist_id = $1`,
		`DELETE FROM "Availability" WHERE artist_id = $1`,
		`DELETE FROM artist_genres_map WHERE artist_id = $1`,
	} {
		if _, err := r.DB.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	result, err := r.DB.ExecContext(ctx, `DELETE FROM "Artist" WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *artistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	return r.get(ctx, `SELECT `+artistColumns+` FROM "Artist" WHERE id = $1`, id)
}

func (r *artistRepository) LockForBooking(ctx context.Context, id int64) (*domain.Artist, error) {
	return r.get(ctx, `SELECT `+artistColumns+` FROM "Artist" WHERE id = $1 FOR UPDATE`, id)
}

func (r *artistRepository) ListAll(ctx context.Context) ([]*domain.Artist, error) {
	return r.list(ctx, `SELECT `+artistColumns+` FROM "Artist" ORDER BY id`)
}

func (r *artistRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Artist, error) {
	return r.list(ctx, `SELECT `+artistColumns+` FROM "Artist" ORDER BY id DESC LIMIT $1`, limit)
}

func (r *artistRepository) Search(ctx context.Context, q domain.SearchQuery) ([]*domain.Artist, error) {
	if q.ByArea {
		return r.list(ctx,
			`SELECT `+artistColumns+` FROM "Artist"
			 WHERE city ILIKE $1 AND state ILIKE $2
			 ORDER BY id`,
			containsPattern(q.City), containsPattern(q.State))
	}
	return r.list(ctx,
		`SELECT `+artistColumns+` FROM "Artist"
		 WHERE name ILIKE $1 OR state ILIKE $1 OR city ILIKE $1
		 ORDER BY id`,
		containsPattern(q.Term))
}

func (r *artistRepository) get(ctx context.Context, query string, id int64) (*domain.Artist, error) {
	a, err := scanArtist(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *artistRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Artist, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}
