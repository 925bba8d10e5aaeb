package postgres

import (
	"context"
	"testing"

	"fyyur/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGenreRepository_EnsureNames(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewGenreRepository(db)

	// Nothing to insert, no round trip.
	require.NoError(t, repo.EnsureNames(context.Background(), nil))

	mock.ExpectExec(`INSERT INTO "Genre" \(name\) SELECT unnest`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 19))
	require.NoError(t, repo.EnsureNames(context.Background(), domain.DefaultGenres))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreRepository_ResolveNames(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     []string
		rows      *sqlmock.Rows
		wantNames []string
		wantErr   error
	}{
		{
			name:      "resolves in request order and drops duplicates",
			input:     []string{"Jazz", "Blues", "Jazz"},
			rows:      sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(2), "Blues").AddRow(int64(9), "Jazz"),
			wantNames: []string{"Jazz", "Blues"},
		},
		{
			name:    "unknown genre",
			input:   []string{"Jazz", "Polka"},
			rows:    sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(9), "Jazz"),
			wantErr: domain.ErrUnknownGenre,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(`WHERE name = ANY\(\$1\)`).WithArgs(sqlmock.AnyArg()).WillReturnRows(tt.rows)

			genres, err := NewGenreRepository(db).ResolveNames(ctx, tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Contains(t, err.Error(), "Polka")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantNames, domain.GenreNames(genres))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("empty input", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		genres, err := NewGenreRepository(db).ResolveNames(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, genres)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGenreRepository_SetVenueGenres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM venue_genres_map WHERE venue_id = \$1`).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO venue_genres_map`).WithArgs(int64(1), int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO venue_genres_map`).WithArgs(int64(1), int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewGenreRepository(db).SetVenueGenres(context.Background(), 1, []int64{2, 9}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreRepository_ListByArtistID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`JOIN artist_genres_map m ON m.genre_id = g.id`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(15), "Rock n Roll"))

	genres, err := NewGenreRepository(db).ListByArtistID(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, []string{"Rock n Roll"}, domain.GenreNames(genres))
	require.NoError(t, mock.ExpectationsWereMet())
}
