package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyyur/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeVenueService implements domain.VenueService for handler tests.
type fakeVenueService struct {
	err          error
	areas        []*domain.VenueArea
	recent       []*domain.ListingItem
	searchResult *domain.SearchResult
	detail       *domain.VenueDetail
	form         *domain.VenueForm
	venue        *domain.Venue
	lastID       int64
	lastTerm     string
	lastForm     domain.VenueForm
	lastLimit    int
}

func (f *fakeVenueService) ListByArea(_ context.Context) ([]*domain.VenueArea, error) {
	return f.areas, f.err
}

func (f *fakeVenueService) ListRecent(_ context.Context, limit int) ([]*domain.ListingItem, error) {
	f.lastLimit = limit
	return f.recent, f.err
}

func (f *fakeVenueService) Search(_ context.Context, term string) (*domain.SearchResult, error) {
	f.lastTerm = term
	return f.searchResult, f.err
}

func (f *fakeVenueService) GetDetail(_ context.Context, id int64) (*domain.VenueDetail, error) {
	f.lastID = id
	return f.detail, f.err
}

func (f *fakeVenueService) GetForm(_ context.Context, id int64) (*domain.VenueForm, error) {
	f.lastID = id
	return f.form, f.err
}

func (f *fakeVenueService) Create(_ context.Context, form domain.VenueForm) (*domain.Venue, error) {
	f.lastForm = form
	return f.venue, f.err
}

func (f *fakeVenueService) Update(_ context.Context, id int64, form domain.VenueForm) (*domain.Venue, error) {
	f.lastID = id
	f.lastForm = form
	return f.venue, f.err
}

func (f *fakeVenueService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// fakeArtistService implements domain.ArtistService for handler tests.
type fakeArtistService struct {
	err          error
	items        []*domain.ListingItem
	searchResult *domain.SearchResult
	detail       *domain.ArtistDetail
	form         *domain.ArtistForm
	artist       *domain.Artist
	lastID       int64
	lastTerm     string
	lastForm     domain.ArtistForm
	lastLimit    int
}

func (f *fakeArtistService) List(_ context.Context) ([]*domain.ListingItem, error) {
	return f.items, f.err
}

func (f *fakeArtistService) ListRecent(_ context.Context, limit int) ([]*domain.ListingItem, error) {
	f.lastLimit = limit
	return f.items, f.err
}

func (f *fakeArtistService) Search(_ context.Context, term string) (*domain.SearchResult, error) {
	f.lastTerm = term
	return f.searchResult, f.err
}

func (f *fakeArtistService) GetDetail(_ context.Context, id int64) (*domain.ArtistDetail, error) {
	f.lastID = id
	return f.detail, f.err
}

func (f *fakeArtistService) GetForm(_ context.Context, id int64) (*domain.ArtistForm, error) {
	f.lastID = id
	return f.form, f.err
}

func (f *fakeArtistService) Create(_ context.Context, form domain.ArtistForm) (*domain.Artist, error) {
	f.lastForm = form
	return f.artist, f.err
}

func (f *fakeArtistService) Update(_ context.Context, id int64, form domain.ArtistForm) (*domain.Artist, error) {
	f.lastID = id
	f.lastForm = form
	return f.artist, f.err
}

func (f *fakeArtistService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// fakeShowService implements domain.ShowService for handler tests.
type fakeShowService struct {
	err   error
	shows []*domain.ShowView
}

func (f *fakeShowService) List(_ context.Context) ([]*domain.ShowView, error) {
	return f.shows, f.err
}

// fakeGenreService implements domain.GenreService for handler tests.
type fakeGenreService struct {
	err    error
	genres []*domain.Genre
}

func (f *fakeGenreService) Seed(_ context.Context) error { return f.err }

func (f *fakeGenreService) List(_ context.Context) ([]*domain.Genre, error) {
	return f.genres, f.err
}

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	err                  error
	result               *domain.BookingResult
	lastShowForm         domain.ShowForm
	lastArtistID         int64
	lastAvailabilityForm domain.AvailabilityForm
}

func (f *fakeBookingService) CreateShow(_ context.Context, form domain.ShowForm) (*domain.BookingResult, error) {
	f.lastShowForm = form
	return f.result, f.err
}

func (f *fakeBookingService) CreateAvailability(_ context.Context, artistID int64, form domain.AvailabilityForm) (*domain.BookingResult, error) {
	f.lastArtistID = artistID
	f.lastAvailabilityForm = form
	return f.result, f.err
}

// envelope mirrors helpers.APIResponse with raw data for assertions.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

// decodeData unmarshals the envelope data into dest.
func decodeData(t *testing.T, env envelope, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dest))
}
