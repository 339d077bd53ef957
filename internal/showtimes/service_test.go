package showtimes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cinetix/internal/screens"
	"cinetix/pkg/cache"
	"cinetix/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	showtimes map[uuid.UUID]*Showtime
	screens   map[uuid.UUID]*screens.Screen
	movies    map[uuid.UUID]bool
	booked    map[uuid.UUID][]string
	deleted   []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		showtimes: make(map[uuid.UUID]*Showtime),
		screens:   make(map[uuid.UUID]*screens.Screen),
		movies:    make(map[uuid.UUID]bool),
		booked:    make(map[uuid.UUID][]string),
	}
}

func (f *fakeRepo) addScreen(layout []string) *screens.Screen {
	screen := &screens.Screen{
		ID:         uuid.New(),
		TheatreID:  uuid.New(),
		Name:       "Screen 1",
		SeatLayout: layout,
		TotalSeats: len(layout),
	}
	f.screens[screen.ID] = screen
	return screen
}

func (f *fakeRepo) addShowtime(screen *screens.Screen, price float64) *Showtime {
	showtime := &Showtime{
		ID:        uuid.New(),
		MovieID:   uuid.New(),
		TheatreID: screen.TheatreID,
		ScreenID:  screen.ID,
		ShowDate:  time.Now().AddDate(0, 0, 1),
		StartTime: time.Now().AddDate(0, 0, 1),
		EndTime:   time.Now().AddDate(0, 0, 1).Add(2 * time.Hour),
		Price:     price,
	}
	f.showtimes[showtime.ID] = showtime
	return showtime
}

func (f *fakeRepo) Create(_ context.Context, showtime *Showtime) error {
	showtime.ID = uuid.New()
	f.showtimes[showtime.ID] = showtime
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Showtime, error) {
	showtime, ok := f.showtimes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return showtime, nil
}

func (f *fakeRepo) List(_ context.Context, _ ShowtimeFilters) ([]Showtime, int64, error) {
	var out []Showtime
	for _, showtime := range f.showtimes {
		out = append(out, *showtime)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	showtime, ok := f.showtimes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if price, ok := updates["price"].(float64); ok {
		showtime.Price = price
	}
	if start, ok := updates["start_time"].(time.Time); ok {
		showtime.StartTime = start
	}
	if end, ok := updates["end_time"].(time.Time); ok {
		showtime.EndTime = end
	}
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.showtimes, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) GetScreen(_ context.Context, screenID uuid.UUID) (*screens.Screen, error) {
	screen, ok := f.screens[screenID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return screen, nil
}

func (f *fakeRepo) MovieExists(_ context.Context, movieID uuid.UUID) (bool, error) {
	return f.movies[movieID], nil
}

func (f *fakeRepo) ActiveSeatLabels(_ context.Context, showtimeID uuid.UUID) ([]string, error) {
	return f.booked[showtimeID], nil
}

type fakeHolds struct {
	held map[uuid.UUID][]string
}

func (f *fakeHolds) HeldSeats(_ context.Context, showtimeID uuid.UUID) ([]string, error) {
	return f.held[showtimeID], nil
}

type fakeReleaser struct {
	cancelled map[uuid.UUID]int64
}

func (f *fakeReleaser) CancelActiveForShowtime(_ context.Context, showtimeID uuid.UUID) (int64, error) {
	if f.cancelled == nil {
		f.cancelled = make(map[uuid.UUID]int64)
	}
	f.cancelled[showtimeID] = 2
	return 2, nil
}

// passCache always misses and serves the fetcher result, so tests exercise
// the derivation path directly.
type passCache struct{}

func (passCache) Get(context.Context, string, interface{}) error                { return cache.ErrCacheMiss }
func (passCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (passCache) Delete(context.Context, string) error                          { return nil }
func (passCache) DeletePattern(context.Context, string) error                   { return nil }
func (passCache) Exists(context.Context, string) bool                           { return false }
func (passCache) Ping(context.Context) error                                    { return nil }

func (passCache) GetOrSet(_ context.Context, _ string, _ time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	data, err := fetcher()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func newTestService(repo Repository) Service {
	return NewService(repo, passCache{}, logger.New())
}

func TestGetAvailabilityDerivation(t *testing.T) {
	repo := newFakeRepo()
	screen := repo.addScreen([]string{"A1", "A2", "A3", "B1", "B2", "B3"})
	showtime := repo.addShowtime(screen, 200)

	repo.booked[showtime.ID] = []string{"A1", "A2"}
	holds := &fakeHolds{held: map[uuid.UUID][]string{
		// A2 is booked and held; it must count once, as booked.
		showtime.ID: {"A2", "B1"},
	}}

	svc := newTestService(repo)
	svc.SetHoldReader(holds)

	availability, err := svc.GetAvailability(context.Background(), showtime.ID)
	require.NoError(t, err)

	assert.Equal(t, 6, availability.TotalSeats)
	assert.Equal(t, 2, availability.Booked)
	assert.Equal(t, 1, availability.Held)
	assert.Equal(t, 3, availability.Available)
	assert.ElementsMatch(t, []string{"A1", "A2"}, availability.BookedSeats)
	assert.Equal(t, []string{"B1"}, availability.HeldSeats)
	// The remainder of the seat map, in layout order.
	assert.Equal(t, []string{"A3", "B2", "B3"}, availability.AvailableSeats)
}

func TestGetAvailabilityWithoutHoldReader(t *testing.T) {
	repo := newFakeRepo()
	screen := repo.addScreen([]string{"A1", "A2"})
	showtime := repo.addShowtime(screen, 200)
	repo.booked[showtime.ID] = []string{"A1"}

	svc := newTestService(repo)

	availability, err := svc.GetAvailability(context.Background(), showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, availability.Booked)
	assert.Equal(t, 0, availability.Held)
	assert.Equal(t, 1, availability.Available)
	assert.Equal(t, []string{"A2"}, availability.AvailableSeats)
}

func TestGetAvailabilityNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())
	_, err := svc.GetAvailability(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrShowtimeNotFound)
}

func TestCheckSeats(t *testing.T) {
	repo := newFakeRepo()
	screen := repo.addScreen([]string{"A1", "A2", "A3"})
	showtime := repo.addShowtime(screen, 200)
	repo.booked[showtime.ID] = []string{"A1"}

	svc := newTestService(repo)
	svc.SetHoldReader(&fakeHolds{held: map[uuid.UUID][]string{showtime.ID: {"A2"}}})

	result, err := svc.CheckSeats(context.Background(), showtime.ID, []string{"A1", "A2", "A3"})
	require.NoError(t, err)

	assert.False(t, result.AllAvailable)
	assert.Equal(t, SeatBooked, result.Seats["A1"])
	assert.Equal(t, SeatHeld, result.Seats["A2"])
	assert.Equal(t, SeatAvailable, result.Seats["A3"])

	result, err = svc.CheckSeats(context.Background(), showtime.ID, []string{"A3"})
	require.NoError(t, err)
	assert.True(t, result.AllAvailable)
}

func TestCreateShowtimeValidation(t *testing.T) {
	repo := newFakeRepo()
	screen := repo.addScreen([]string{"A1"})
	movieID := uuid.New()
	repo.movies[movieID] = true
	svc := newTestService(repo)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour)

	_, err := svc.CreateShowtime(ctx, &CreateShowtimeRequest{
		MovieID:   movieID.String(),
		ScreenID:  screen.ID.String(),
		ShowDate:  start,
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
		Price:     200,
	})
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = svc.CreateShowtime(ctx, &CreateShowtimeRequest{
		MovieID:   uuid.New().String(),
		ScreenID:  screen.ID.String(),
		ShowDate:  start,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Price:     200,
	})
	assert.ErrorIs(t, err, ErrMovieNotFound)

	_, err = svc.CreateShowtime(ctx, &CreateShowtimeRequest{
		MovieID:   movieID.String(),
		ScreenID:  uuid.New().String(),
		ShowDate:  start,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Price:     200,
	})
	assert.ErrorIs(t, err, ErrScreenNotFound)

	created, err := svc.CreateShowtime(ctx, &CreateShowtimeRequest{
		MovieID:   movieID.String(),
		ScreenID:  screen.ID.String(),
		ShowDate:  start,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Price:     200,
	})
	require.NoError(t, err)
	// Theatre is derived from the screen, not taken from the request.
	assert.Equal(t, screen.TheatreID, created.TheatreID)
}

func TestDeleteShowtimeCancelsActiveBookings(t *testing.T) {
	repo := newFakeRepo()
	screen := repo.addScreen([]string{"A1", "A2"})
	showtime := repo.addShowtime(screen, 200)

	releaser := &fakeReleaser{}
	svc := newTestService(repo)
	svc.SetBookingReleaser(releaser)

	require.NoError(t, svc.DeleteShowtime(context.Background(), showtime.ID))
	assert.Equal(t, int64(2), releaser.cancelled[showtime.ID])
	assert.Contains(t, repo.deleted, showtime.ID)

	err := svc.DeleteShowtime(context.Background(), showtime.ID)
	assert.ErrorIs(t, err, ErrShowtimeNotFound)
}
