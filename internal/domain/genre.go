package domain

import "context"

// Genre is a named musical category attachable to venues and artists.
// swagger:model Genre
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DefaultGenres is the vocabulary seeded at startup.
var DefaultGenres = []string{
	"Alternative", "Blues", "Classical", "Country",
	"Electronic", "Folk", "Funk", "Hip-Hop",
	"Heavy Metal", "Instrumental", "Jazz", "Musical Theatre",
	"Pop", "Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

// GenreNames returns the names of genres in order.
func GenreNames(genres []*Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

// GenreIDs returns the ids of genres in order.
func GenreIDs(genres []*Genre) []int64 {
	ids := make([]int64, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// GenreRepository defines storage for the genre vocabulary and the venue/artist genre links.
type GenreRepository interface {
	// EnsureNames inserts any of names not yet present. Existing genres are left untouched.
	EnsureNames(ctx context.Context, names []string) error
	ListAll(ctx context.Context) ([]*Genre, error)
	// ResolveNames returns the genres with the given names, in the order given.
	// Returns an error wrapping ErrUnknownGenre if any name is missing.
	ResolveNames(ctx context.Context, names []string) ([]*Genre, error)
	ListByVenueID(ctx context.Context, venueID int64) ([]*Genre, error)
	ListByArtistID(ctx context.Context, artistID int64) ([]*Genre, error)
	// SetVenueGenres replaces all genre links of the venue.
	SetVenueGenres(ctx context.Context, venueID int64, genreIDs []int64) error
	// SetArtistGenres replaces all genre links of the artist.
	SetArtistGenres(ctx context.Context, artistID int64, genreIDs []int64) error
}

// GenreService seeds and lists the genre vocabulary.
type GenreService interface {
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]*Genre, error)
}
