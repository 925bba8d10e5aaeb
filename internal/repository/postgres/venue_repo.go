package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/domain"
)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link, website_link, seeking_talent, seeking_description`

type venueRepository struct {
	DB DBTX
}

// NewVenueRepository returns a domain.VenueRepository implemented with Postgres.
func NewVenueRepository(db DBTX) domain.VenueRepository {
	return &venueRepository{DB: db}
}

func scanVenue(s rowScanner) (*domain.Venue, error) {
	v := &domain.Venue{}
	err := s.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO "Venue" (name, city, state, address, phone, image_link, facebook_link, website_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, v.Name, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription).Scan(&v.ID)
}

func (r *venueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `
		UPDATE "Venue"
		SET name = $2, city = $3, state = $4, address = $5, phone = $6, image_link = $7,
		    facebook_link = $8, website_link = $9, seeking_talent = $10, seeking_description = $11
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, v.ID, v.Name, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM "Show" WHERE venue_id = $1`, id); err != nil {
		return err
	}
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM venue_genres_map WHERE venue_id = $1`, id); err != nil {
		return err
	}
	result, err := r.DB.ExecContext(ctx, `DELETE FROM "Venue" WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *venueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	v, err := scanVenue(r.DB.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM "Venue" WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) ListAll(ctx context.Context) ([]*domain.Venue, error) {
	return r.list(ctx, `SELECT `+venueColumns+` FROM "Venue" ORDER BY state, city, id`)
}

func (r *venueRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Venue, error) {
	return r.list(ctx, `SELECT `+venueColumns+` FROM "Venue" ORDER BY id DESC LIMIT $1`, limit)
}

func (r *venueRepository) Search(ctx context.Context, q domain.SearchQuery) ([]*domain.Venue, error) {
	if q.ByArea {
		return r.list(ctx,
			`SELECT `+venueColumns+` FROM "Venue"
			 WHERE city ILIKE $1 AND state ILIKE $2
			 ORDER BY id`,
			containsPattern(q.City), containsPattern(q.State))
	}
	return r.list(ctx,
		`SELECT `+venueColumns+` FROM "Venue"
		 WHERE name ILIKE $1 OR state ILIKE $1 OR city ILIKE $1
		 ORDER BY id`,
		containsPattern(q.Term))
}

func (r *venueRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Venue, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}
