package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"fyyur/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// memStore is an in-memory database shared by the fake repositories.
type memStore struct {
	venues       map[int64]*domain.Venue
	artists      map[int64]*domain.Artist
	genres       []*domain.Genre
	venueGenres  map[int64][]int64
	artistGenres map[int64][]int64
	shows        []*domain.Show
	availability []*domain.Availability
	nextID       int64

	// Failure injection.
	listErr       error // returned by every list/count query when set
	showCreateErr error
	locks         *[]int64 // artist ids passed to LockForBooking, shared across transactions
}

func newMemStore() *memStore {
	return &memStore{
		venues:       make(map[int64]*domain.Venue),
		artists:      make(map[int64]*domain.Artist),
		venueGenres:  make(map[int64][]int64),
		artistGenres: make(map[int64][]int64),
		nextID:       1,
		locks:        new([]int64),
	}
}

func (m *memStore) id() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *memStore) clone() *memStore {
	c := *m
	c.venues = make(map[int64]*domain.Venue, len(m.venues))
	for k, v := range m.venues {
		cp := *v
		c.venues[k] = &cp
	}
	c.artists = make(map[int64]*domain.Artist, len(m.artists))
	for k, a := range m.artists {
		cp := *a
		c.artists[k] = &cp
	}
	c.genres = append([]*domain.Genre(nil), m.genres...)
	c.venueGenres = make(map[int64][]int64, len(m.venueGenres))
	for k, ids := range m.venueGenres {
		c.venueGenres[k] = append([]int64(nil), ids...)
	}
	c.artistGenres = make(map[int64][]int64, len(m.artistGenres))
	for k, ids := range m.artistGenres {
		c.artistGenres[k] = append([]int64(nil), ids...)
	}
	c.shows = append([]*domain.Show(nil), m.shows...)
	c.availability = append([]*domain.Availability(nil), m.availability...)
	return &c
}

func (m *memStore) repos() domain.Repositories {
	return domain.Repositories{
		Venues:       &fakeVenueRepo{m},
		Artists:      &fakeArtistRepo{m},
		Genres:       &fakeGenreRepo{m},
		Shows:        &fakeShowRepo{m},
		Availability: &fakeAvailabilityRepo{m},
	}
}

// addVenue, addArtist, addShow and addAvailability seed the store directly.
func (m *memStore) addVenue(name, city, state string) *domain.Venue {
	v := &domain.Venue{ID: m.id(), Name: name, City: city, State: state}
	m.venues[v.ID] = v
	return v
}

func (m *memStore) addArtist(name, city, state string) *domain.Artist {
	a := &domain.Artist{ID: m.id(), Name: name, City: city, State: state}
	m.artists[a.ID] = a
	return a
}

func (m *memStore) addShow(artistID, venueID int64, start, end string) *domain.Show {
	s := domain.NewShow(artistID, venueID, mustInterval(start, end))
	s.ID = m.id()
	m.shows = append(m.shows, s)
	return s
}

func (m *memStore) addAvailability(artistID int64, start, end string) *domain.Availability {
	a := domain.NewAvailability(artistID, mustInterval(start, end))
	a.ID = m.id()
	m.availability = append(m.availability, a)
	return a
}

func mustInterval(start, end string) domain.Interval {
	i, err := domain.ParseInterval(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

func mustTime(s string) time.Time {
	t, err := time.Parse(domain.TimestampLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// fakeUnitOfWork runs fn against a copy of the store and keeps the copy only
// when fn succeeds.
type fakeUnitOfWork struct {
	store *memStore
	calls int
}

func (u *fakeUnitOfWork) WithinTx(ctx context.Context, fn func(repos domain.Repositories) error) error {
	u.calls++
	tx := u.store.clone()
	if err := fn(tx.repos()); err != nil {
		return err
	}
	*u.store = *tx
	return nil
}

func matches(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

type fakeVenueRepo struct{ m *memStore }

func (r *fakeVenueRepo) Create(ctx context.Context, v *domain.Venue) error {
	v.ID = r.m.id()
	cp := *v
	r.m.venues[v.ID] = &cp
	return nil
}

func (r *fakeVenueRepo) Update(ctx context.Context, v *domain.Venue) error {
	if _, ok := r.m.venues[v.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *v
	r.m.venues[v.ID] = &cp
	return nil
}

func (r *fakeVenueRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.m.venues[id]; !ok {
		return domain.ErrNotFound
	}
	kept := r.m.shows[:0:0]
	for _, s := range r.m.shows {
		if s.VenueID != id {
			kept = append(kept, s)
		}
	}
	r.m.shows = kept
	delete(r.m.venueGenres, id)
	delete(r.m.venues, id)
	return nil
}

func (r *fakeVenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	v, ok := r.m.venues[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVenueRepo) sorted(keep func(*domain.Venue) bool, less func(a, b *domain.Venue) bool) []*domain.Venue {
	out := make([]*domain.Venue, 0)
	for _, v := range r.m.venues {
		if keep(v) {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (r *fakeVenueRepo) ListAll(ctx context.Context) ([]*domain.Venue, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	return r.sorted(func(*domain.Venue) bool { return true }, func(a, b *domain.Venue) bool {
		if a.State != b.State {
			return a.State < b.State
		}
		if a.City != b.City {
			return a.City < b.City
		}
		return a.ID < b.ID
	}), nil
}

func (r *fakeVenueRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Venue, error) {
	out := r.sorted(func(*domain.Venue) bool { return true }, func(a, b *domain.Venue) bool { return a.ID > b.ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeVenueRepo) Search(ctx context.Context, q domain.SearchQuery) ([]*domain.Venue, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	return r.sorted(func(v *domain.Venue) bool {
		if q.ByArea {
			return matches(v.City, q.City) && matches(v.State, q.State)
		}
		return matches(v.Name, q.Term) || matches(v.State, q.Term) || matches(v.City, q.Term)
	}, func(a, b *domain.Venue) bool { return a.ID < b.ID }), nil
}

type fakeArtistRepo struct{ m *memStore }

func (r *fakeArtistRepo) Create(ctx context.Context, a *domain.Artist) error {
	a.ID = r.m.id()
	cp := *a
	r.m.artists[a.ID] = &cp
	return nil
}

func (r *fakeArtistRepo) Update(ctx context.Context, a *domain.Artist) error {
	if _, ok := r.m.artists[a.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *a
	r.m.artists[a.ID] = &cp
	return nil
}

func (r *fakeArtistRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.m.artists[id]; !ok {
		return domain.ErrNotFound
	}
	shows := r.m.shows[:0:0]
	for _, s := range r.m.shows {
		if s.ArtistID != id {
			shows = append(shows, s)
		}
	}
	r.m.shows = shows
	windows := r.m.availability[:0:0]
	for _, a := range r.m.availability {
		if a.ArtistID != id {
			windows = append(windows, a)
		}
	}
	r.m.availability = windows
	delete(r.m.artistGenres, id)
	delete(r.m.artists, id)
	return nil
}

func (r *fakeArtistRepo) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	a, ok := r.m.artists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeArtistRepo) LockForBooking(ctx context.Context, id int64) (*domain.Artist, error) {
	*r.m.locks = append(*r.m.locks, id)
	return r.GetByID(ctx, id)
}

func (r *fakeArtistRepo) sorted(keep func(*domain.Artist) bool, desc bool) []*domain.Artist {
	out := make([]*domain.Artist, 0)
	for _, a := range r.m.artists {
		if keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return out[i].ID > out[j].ID
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *fakeArtistRepo) ListAll(ctx context.Context) ([]*domain.Artist, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	return r.sorted(func(*domain.Artist) bool { return true }, false), nil
}

func (r *fakeArtistRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Artist, error) {
	out := r.sorted(func(*domain.Artist) bool { return true }, true)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeArtistRepo) Search(ctx context.Context, q domain.SearchQuery) ([]*domain.Artist, error) {
	return r.sorted(func(a *domain.Artist) bool {
		if q.ByArea {
			return matches(a.City, q.City) && matches(a.State, q.State)
		}
		return matches(a.Name, q.Term) || matches(a.State, q.Term) || matches(a.City, q.Term)
	}, false), nil
}

type fakeGenreRepo struct{ m *memStore }

func (r *fakeGenreRepo) EnsureNames(ctx context.Context, names []string) error {
	for _, n := range names {
		exists := false
		for _, g := range r.m.genres {
			if g.Name == n {
				exists = true
				break
			}
		}
		if !exists {
			r.m.genres = append(r.m.genres, &domain.Genre{ID: r.m.id(), Name: n})
		}
	}
	return nil
}

func (r *fakeGenreRepo) ListAll(ctx context.Context) ([]*domain.Genre, error) {
	out := append([]*domain.Genre(nil), r.m.genres...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeGenreRepo) ResolveNames(ctx context.Context, names []string) ([]*domain.Genre, error) {
	out := make([]*domain.Genre, 0, len(names))
	for _, n := range names {
		var found *domain.Genre
		for _, g := range r.m.genres {
			if g.Name == n {
				found = g
			}
		}
		if found == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownGenre, n)
		}
		out = append(out, found)
	}
	return out, nil
}

func (r *fakeGenreRepo) byIDs(ids []int64) []*domain.Genre {
	out := make([]*domain.Genre, 0, len(ids))
	for _, id := range ids {
		for _, g := range r.m.genres {
			if g.ID == id {
				out = append(out, g)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *fakeGenreRepo) ListByVenueID(ctx context.Context, venueID int64) ([]*domain.Genre, error) {
	return r.byIDs(r.m.venueGenres[venueID]), nil
}

func (r *fakeGenreRepo) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.Genre, error) {
	return r.byIDs(r.m.artistGenres[artistID]), nil
}

func (r *fakeGenreRepo) SetVenueGenres(ctx context.Context, venueID int64, genreIDs []int64) error {
	r.m.venueGenres[venueID] = append([]int64(nil), genreIDs...)
	return nil
}

func (r *fakeGenreRepo) SetArtistGenres(ctx context.Context, artistID int64, genreIDs []int64) error {
	r.m.artistGenres[artistID] = append([]int64(nil), genreIDs...)
	return nil
}

type fakeShowRepo struct{ m *memStore }

func (r *fakeShowRepo) Create(ctx context.Context, s *domain.Show) error {
	if r.m.showCreateErr != nil {
		return r.m.showCreateErr
	}
	s.ID = r.m.id()
	r.m.shows = append(r.m.shows, s)
	return nil
}

func (r *fakeShowRepo) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.Show, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	out := make([]*domain.Show, 0)
	for _, s := range r.m.shows {
		if s.ArtistID == artistID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShowRepo) listings(keep func(*domain.Show) bool) []*domain.ShowListing {
	out := make([]*domain.ShowListing, 0)
	for _, s := range r.m.shows {
		if !keep(s) {
			continue
		}
		a := r.m.artists[s.ArtistID]
		v := r.m.venues[s.VenueID]
		out = append(out, &domain.ShowListing{
			ID: s.ID, ArtistID: a.ID, ArtistName: a.Name, ArtistImageLink: a.ImageLink,
			VenueID: v.ID, VenueName: v.Name, VenueImageLink: v.ImageLink,
			StartTime: s.StartTime, EndTime: s.EndTime,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (r *fakeShowRepo) ListAll(ctx context.Context) ([]*domain.ShowListing, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	return r.listings(func(*domain.Show) bool { return true }), nil
}

func (r *fakeShowRepo) ListByVenueWithDetails(ctx context.Context, venueID int64) ([]*domain.ShowListing, error) {
	return r.listings(func(s *domain.Show) bool { return s.VenueID == venueID }), nil
}

func (r *fakeShowRepo) ListByArtistWithDetails(ctx context.Context, artistID int64) ([]*domain.ShowListing, error) {
	return r.listings(func(s *domain.Show) bool { return s.ArtistID == artistID }), nil
}

func (r *fakeShowRepo) count(ids []int64, now time.Time, owner func(*domain.Show) int64) map[int64]int {
	counts := make(map[int64]int)
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, s := range r.m.shows {
		if want[owner(s)] && !s.StartTime.Before(now) {
			counts[owner(s)]++
		}
	}
	return counts
}

func (r *fakeShowRepo) CountUpcomingByVenue(ctx context.Context, venueIDs []int64, now time.Time) (map[int64]int, error) {
	return r.count(venueIDs, now, func(s *domain.Show) int64 { return s.VenueID }), nil
}

func (r *fakeShowRepo) CountUpcomingByArtist(ctx context.Context, artistIDs []int64, now time.Time) (map[int64]int, error) {
	return r.count(artistIDs, now, func(s *domain.Show) int64 { return s.ArtistID }), nil
}

type fakeAvailabilityRepo struct{ m *memStore }

func (r *fakeAvailabilityRepo) Create(ctx context.Context, a *domain.Availability) error {
	a.ID = r.m.id()
	r.m.availability = append(r.m.availability, a)
	return nil
}

func (r *fakeAvailabilityRepo) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.Availability, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	out := make([]*domain.Availability, 0)
	for _, a := range r.m.availability {
		if a.ArtistID == artistID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out, nil
}

// fakeEmailService records booking notifications.
type fakeEmailService struct {
	sent []*domain.ShowBookedEmailData
	err  error
}

func (f *fakeEmailService) SendShowBooked(ctx context.Context, data *domain.ShowBookedEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakeMailer records sent messages.
type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.name = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}
