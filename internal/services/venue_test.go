package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyyur/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = mustTime("2030-06-01 12:00:00")

func newTestVenueService(store *memStore) (*venueService, *fakeUnitOfWork) {
	uow := &fakeUnitOfWork{store: store}
	repos := store.repos()
	svc := NewVenueService(repos.Venues, repos.Shows, repos.Genres, uow, time.Second).(*venueService)
	svc.now = func() time.Time { return fixedNow }
	return svc, uow
}

func TestVenueService_ListByArea(t *testing.T) {
	store := newMemStore()
	hop := store.addVenue("The Musical Hop", "San Francisco", "CA")
	dueling := store.addVenue("The Dueling Pianos Bar", "New York", "NY")
	park := store.addVenue("Park Square Live Music & Coffee", "San Francisco", "CA")
	artist := store.addArtist("Guns N Petals", "San Francisco", "CA")
	store.addShow(artist.ID, hop.ID, "2035-04-01 20:00:00", "2035-04-01 22:00:00")
	store.addShow(artist.ID, hop.ID, "2035-04-08 20:00:00", "2035-04-08 22:00:00")
	store.addShow(artist.ID, park.ID, "2019-06-15 23:00:00", "2019-06-15 23:30:00")

	svc, _ := newTestVenueService(store)
	areas, err := svc.ListByArea(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 2)

	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "CA", areas[0].State)
	require.Len(t, areas[0].Venues, 2)
	assert.Equal(t, hop.ID, areas[0].Venues[0].ID)
	assert.Equal(t, 2, areas[0].Venues[0].NumUpcomingShows)
	assert.Equal(t, park.ID, areas[0].Venues[1].ID)
	assert.Equal(t, 0, areas[0].Venues[1].NumUpcomingShows)

	assert.Equal(t, "New York", areas[1].City)
	require.Len(t, areas[1].Venues, 1)
	assert.Equal(t, dueling.ID, areas[1].Venues[0].ID)
}

func TestVenueService_Search(t *testing.T) {
	store := newMemStore()
	hop := store.addVenue("The Musical Hop", "San Francisco", "CA")
	store.addVenue("Park Square Live Music & Coffee", "San Francisco", "CA")
	store.addVenue("Boston Hall", "Boston", "MA")
	store.addVenue("Maine Street Club", "Portland", "ME")
	artist := store.addArtist("Guns N Petals", "San Francisco", "CA")
	store.addShow(artist.ID, hop.ID, "2035-04-01 20:00:00", "2035-04-01 22:00:00")

	svc, _ := newTestVenueService(store)
	ctx := context.Background()

	tests := []struct {
		term      string
		wantNames []string
	}{
		{term: "Hop", wantNames: []string{"The Musical Hop"}},
		{term: "hop", wantNames: []string{"The Musical Hop"}},
		{term: "Music", wantNames: []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{term: "Boston, MA", wantNames: []string{"Boston Hall"}},
		{term: "Portland, MA", wantNames: []string{}},
		{term: "zzz", wantNames: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			res, err := svc.Search(ctx, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.term, res.SearchTerm)
			assert.Equal(t, len(tt.wantNames), res.Count)
			names := make([]string, 0, len(res.Data))
			for _, item := range res.Data {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}

	res, err := svc.Search(ctx, "Hop")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Data[0].NumUpcomingShows)
	assert.Equal(t, "San Francisco", res.Data[0].City)
}

func TestVenueService_GetDetail(t *testing.T) {
	store := newMemStore()
	hop := store.addVenue("The Musical Hop", "San Francisco", "CA")
	artist := store.addArtist("Guns N Petals", "San Francisco", "CA")
	store.genres = []*domain.Genre{{ID: 100, Name: "Jazz"}, {ID: 101, Name: "Classical"}}
	store.venueGenres[hop.ID] = []int64{100, 101}
	store.addShow(artist.ID, hop.ID, "2019-05-21 21:30:00", "2019-05-21 23:00:00")
	store.addShow(artist.ID, hop.ID, "2035-04-01 20:00:00", "2035-04-01 22:00:00")
	store.addShow(artist.ID, hop.ID, "2030-06-01 12:00:00", "2030-06-01 13:00:00")

	svc, _ := newTestVenueService(store)

	detail, err := svc.GetDetail(context.Background(), hop.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Classical", "Jazz"}, detail.Genres)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, "2019-05-21 21:30:00", detail.PastShows[0].StartTime)
	// A show starting exactly now counts as upcoming.
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	assert.Equal(t, "2030-06-01 12:00:00", detail.UpcomingShows[0].StartTime)
	assert.Equal(t, "Guns N Petals", detail.UpcomingShows[0].ArtistName)

	_, err = svc.GetDetail(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVenueService_GetDetail_Idempotent(t *testing.T) {
	store := newMemStore()
	hop := store.addVenue("The Musical Hop", "San Francisco", "CA")
	svc, _ := newTestVenueService(store)

	first, err := svc.GetDetail(context.Background(), hop.ID)
	require.NoError(t, err)
	second, err := svc.GetDetail(context.Background(), hop.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotNil(t, first.PastShows)
	assert.NotNil(t, first.UpcomingShows)
}

func TestVenueService_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, (&fakeGenreRepo{store}).EnsureNames(ctx, domain.DefaultGenres))
	svc, uow := newTestVenueService(store)

	form := domain.VenueForm{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz", "Reggae"},
	}
	venue, err := svc.Create(ctx, form)
	require.NoError(t, err)
	assert.NotZero(t, venue.ID)
	assert.Equal(t, 1, uow.calls)

	got, err := svc.GetForm(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "1015 Folsom Street", got.Address)
	assert.ElementsMatch(t, []string{"Jazz", "Reggae"}, got.Genres)

	form.Address = "1016 Folsom Street"
	form.Genres = []string{"Blues"}
	updated, err := svc.Update(ctx, venue.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", updated.Name)
	assert.Equal(t, "1016 Folsom Street", updated.Address)
	got, err = svc.GetForm(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blues"}, got.Genres)

	artist := store.addArtist("Guns N Petals", "San Francisco", "CA")
	store.addShow(artist.ID, venue.ID, "2035-04-01 20:00:00", "2035-04-01 22:00:00")
	require.NoError(t, svc.Delete(ctx, venue.ID))
	assert.Empty(t, store.shows)
	_, err = svc.GetDetail(ctx, venue.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, venue.ID), domain.ErrNotFound)
	_, err = svc.Update(ctx, venue.ID, form)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVenueService_Create_UnknownGenreRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, (&fakeGenreRepo{store}).EnsureNames(ctx, []string{"Jazz"}))
	svc, _ := newTestVenueService(store)

	_, err := svc.Create(ctx, domain.VenueForm{Name: "X", City: "Y", State: "Z", Genres: []string{"Jazz", "Polka"}})
	assert.ErrorIs(t, err, domain.ErrUnknownGenre)
	assert.Empty(t, store.venues)
}

func TestVenueService_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.listErr = errors.New("db down")
	svc, _ := newTestVenueService(store)

	_, err := svc.ListByArea(context.Background())
	require.ErrorContains(t, err, "list venues")
	_, err = svc.Search(context.Background(), "x")
	require.ErrorContains(t, err, "search venues")
}

func TestVenueService_ListRecent(t *testing.T) {
	store := newMemStore()
	for i := 0; i < 12; i++ {
		store.addVenue("V", "C", "S")
	}
	svc, _ := newTestVenueService(store)

	items, err := svc.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 10)
	assert.Greater(t, items[0].ID, items[9].ID)
}
