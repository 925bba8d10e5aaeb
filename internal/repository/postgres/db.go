package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fyyur/internal/domain"

	"github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so every repository can run
// standalone or inside a unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// NewRepositories binds every repository to db.
func NewRepositories(db DBTX) domain.Repositories {
	return domain.Repositories{
		Venues:       NewVenueRepository(db),
		Artists:      NewArtistRepository(db),
		Genres:       NewGenreRepository(db),
		Shows:        NewShowRepository(db),
		Availability: NewAvailabilityRepository(db),
	}
}

type unitOfWork struct {
	DB *sql.DB
}

// NewUnitOfWork returns a domain.UnitOfWork backed by database/sql transactions.
func NewUnitOfWork(db *sql.DB) domain.UnitOfWork {
	return &unitOfWork{DB: db}
}

func (u *unitOfWork) WithinTx(ctx context.Context, fn func(repos domain.Repositories) error) (err error) {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(NewRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns an ILIKE pattern matching s literally anywhere in a value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Postgres error codes mapped to domain errors.
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// mapWriteError translates constraint violations into domain errors.
func mapWriteError(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) {
		switch perr.Code {
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, perr.Detail)
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, perr.Detail)
		}
	}
	return err
}

// expectOneRow returns domain.ErrNotFound when an UPDATE or DELETE touched nothing.
func expectOneRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
