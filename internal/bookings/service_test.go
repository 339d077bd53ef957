package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"cinetix/internal/notifications"
	"cinetix/internal/shared/config"
	"cinetix/pkg/cache"
	"cinetix/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepo is an in-memory stand-in for the Postgres repository. It keeps the
// same contract as the real one: CreateBookingWithSeatCheck serialises writers
// per call under a mutex and either claims every requested seat or rejects
// with a SeatConflictError naming the exact conflicting labels.
type fakeRepo struct {
	mu        sync.Mutex
	bookings  map[uuid.UUID]*Booking
	showtimes map[uuid.UUID]*ShowtimeInfo
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings:  make(map[uuid.UUID]*Booking),
		showtimes: make(map[uuid.UUID]*ShowtimeInfo),
	}
}

func (f *fakeRepo) addShowtime(price float64, layout []string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.showtimes[id] = &ShowtimeInfo{
		ShowtimeID: id,
		ScreenID:   uuid.New(),
		Price:      price,
		SeatLayout: layout,
	}
	return id
}

func (f *fakeRepo) setExpiresAt(id uuid.UUID, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[id].ExpiresAt = &at
}

func (f *fakeRepo) seatActive(showtimeID uuid.UUID, label string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.ShowtimeID != showtimeID {
			continue
		}
		for _, seat := range booking.Seats {
			if seat.SeatLabel == label && seat.Active {
				return true
			}
		}
	}
	return false
}

func (f *fakeRepo) CreateBookingWithSeatCheck(_ context.Context, booking *Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.showtimes[booking.ShowtimeID]; !ok {
		return ErrShowtimeNotFound
	}

	requested := make(map[string]bool, len(booking.Seats))
	for _, seat := range booking.Seats {
		requested[seat.SeatLabel] = true
	}

	var conflicts []string
	for _, existing := range f.bookings {
		if existing.ShowtimeID != booking.ShowtimeID {
			continue
		}
		for _, seat := range existing.Seats {
			if seat.Active && requested[seat.SeatLabel] {
				conflicts = append(conflicts, seat.SeatLabel)
			}
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return &SeatConflictError{Seats: conflicts}
	}

	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	for i := range booking.Seats {
		booking.Seats[i].ID = uuid.New()
		booking.Seats[i].BookingID = booking.ID
	}

	stored := *booking
	stored.Seats = append([]BookingSeat(nil), booking.Seats...)
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *booking
	out.Seats = append([]BookingSeat(nil), booking.Seats...)
	return &out, nil
}

func (f *fakeRepo) List(_ context.Context, query BookingListQuery) ([]Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Booking
	for _, booking := range f.bookings {
		if query.Status != "" && string(booking.PaymentStatus) != query.Status {
			continue
		}
		out = append(out, *booking)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID uuid.UUID, _ BookingListQuery) ([]Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			out = append(out, *booking)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) UpdateStatusAndRelease(_ context.Context, id uuid.UUID, from, to PaymentStatus, cancelledAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if booking.PaymentStatus != from {
		return fmt.Errorf("%w: booking is no longer %s", ErrInvalidTransition, from)
	}
	booking.PaymentStatus = to
	booking.UpdatedAt = time.Now()
	if cancelledAt != nil {
		booking.CancelledAt = cancelledAt
	}
	if ReleasesSeats(to) {
		for i := range booking.Seats {
			booking.Seats[i].Active = false
		}
	}
	return nil
}

func (f *fakeRepo) CancelActiveForShowtime(_ context.Context, showtimeID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cancelled int64
	now := time.Now()
	for _, booking := range f.bookings {
		if booking.ShowtimeID != showtimeID || !booking.PaymentStatus.Active() {
			continue
		}
		booking.PaymentStatus = StatusCancelled
		booking.CancelledAt = &now
		for i := range booking.Seats {
			booking.Seats[i].Active = false
		}
		cancelled++
	}
	return cancelled, nil
}

func (f *fakeRepo) ExpirePending(_ context.Context, now time.Time) ([]Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var expired []Booking
	for _, booking := range f.bookings {
		if booking.PaymentStatus != StatusPending || booking.ExpiresAt == nil || !booking.ExpiresAt.Before(now) {
			continue
		}
		booking.PaymentStatus = StatusFailed
		booking.UpdatedAt = now
		for i := range booking.Seats {
			booking.Seats[i].Active = false
		}
		expired = append(expired, *booking)
	}
	return expired, nil
}

func (f *fakeRepo) GetShowtimeInfo(_ context.Context, showtimeID uuid.UUID) (*ShowtimeInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	info, ok := f.showtimes[showtimeID]
	if !ok {
		return nil, ErrShowtimeNotFound
	}
	return info, nil
}

// noopCache satisfies the cache interface without a Redis connection.
type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) error           { return cache.ErrCacheMiss }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, string) error                     { return nil }
func (noopCache) DeletePattern(context.Context, string) error              { return nil }
func (noopCache) Exists(context.Context, string) bool                      { return false }
func (noopCache) Ping(context.Context) error                               { return nil }

func (noopCache) GetOrSet(_ context.Context, _ string, _ time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
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

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.PendingTTL = 15 * time.Minute
	cfg.Booking.SweepInterval = time.Minute
	cfg.Redis.SeatHoldTTL = 10 * time.Minute
	return cfg
}

func newTestService(repo Repository) Service {
	return NewService(repo, NewHoldStore(nil), noopCache{}, notifications.NewNoopProducer(), testConfig(), logger.New())
}

func smallLayout() []string {
	return []string{"A1", "A2", "A3", "B1", "B2", "B3"}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(250, smallLayout())
	svc := newTestService(repo)
	userID := uuid.New()

	resp, err := svc.CreateBooking(context.Background(), userID, &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1", "A2"},
	})
	require.NoError(t, err)

	assert.Equal(t, string(StatusPending), resp.PaymentStatus)
	assert.Equal(t, 2, resp.SeatCount)
	assert.Equal(t, 500.0, resp.TotalPrice)
	assert.ElementsMatch(t, []string{"A1", "A2"}, resp.Seats)
	assert.Contains(t, resp.BookingRef, "BK-")
	require.NotNil(t, resp.ExpiresAt)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
}

func TestCreateBookingValidation(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(250, smallLayout())
	svc := newTestService(repo)
	userID := uuid.New()
	ctx := context.Background()

	cases := []struct {
		name string
		req  *CreateBookingRequest
	}{
		{"bad showtime id", &CreateBookingRequest{ShowtimeID: "not-a-uuid", Seats: []string{"A1"}}},
		{"no seats", &CreateBookingRequest{ShowtimeID: showtimeID.String(), Seats: []string{}}},
		{"duplicate seats", &CreateBookingRequest{ShowtimeID: showtimeID.String(), Seats: []string{"A1", "A1"}}},
		{"empty label", &CreateBookingRequest{ShowtimeID: showtimeID.String(), Seats: []string{""}}},
		{"seat not in layout", &CreateBookingRequest{ShowtimeID: showtimeID.String(), Seats: []string{"Z9"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(ctx, userID, tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	_, err := svc.CreateBooking(ctx, userID, &CreateBookingRequest{
		ShowtimeID: uuid.New().String(),
		Seats:      []string{"A1"},
	})
	assert.ErrorIs(t, err, ErrShowtimeNotFound)
}

// The conflict error must name exactly the seats that are taken, not the
// whole request, so the client can retry with the rest.
func TestCreateBookingConflictNamesExactSeats(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(100, smallLayout())
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1"},
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1", "A2"},
	})
	var conflict *SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"A1"}, conflict.Seats)

	// A2 was not claimed by the rejected attempt.
	resp, err := svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A2", "A3"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A2", "A3"}, resp.Seats)

	// Everything left can still be booked, then the showtime is full.
	_, err = svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"B1", "B2", "B3"},
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1", "B2"},
	})
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"A1", "B2"}, conflict.Seats)
}

func TestConcurrentDisjointBookingsAllSucceed(t *testing.T) {
	layout := make([]string, 0, 40)
	rows := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for _, row := range rows {
		for n := '1'; n <= '5'; n++ {
			layout = append(layout, row+string(n))
		}
	}

	repo := newFakeRepo()
	showtimeID := repo.addShowtime(100, layout)
	svc := newTestService(repo)

	var wg sync.WaitGroup
	errs := make([]error, len(rows))
	for i, row := range rows {
		wg.Add(1)
		go func(i int, row string) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), uuid.New(), &CreateBookingRequest{
				ShowtimeID: showtimeID.String(),
				Seats:      []string{row + "1", row + "2", row + "3", row + "4", row + "5"},
			})
		}(i, row)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "row %s", rows[i])
	}
}

func TestConcurrentOverlappingBookingsOneWins(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(100, smallLayout())
	svc := newTestService(repo)

	const contenders = 8
	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), uuid.New(), &CreateBookingRequest{
				ShowtimeID: showtimeID.String(),
				Seats:      []string{"B2"},
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var conflict *SeatConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, []string{"B2"}, conflict.Seats)
	}
	assert.Equal(t, 1, winners)
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(200, smallLayout())
	svc := newTestService(repo)
	userID := uuid.New()
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, userID, &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1"},
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(created.ID)

	resp, err := svc.UpdateStatus(ctx, bookingID, userID, false, StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, string(StatusPaid), resp.PaymentStatus)

	// Paid cannot go back or fail.
	_, err = svc.UpdateStatus(ctx, bookingID, userID, false, StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.UpdateStatus(ctx, bookingID, userID, false, StatusFailed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Paid seats stay claimed.
	assert.True(t, repo.seatActive(showtimeID, "A1"))

	resp, err = svc.UpdateStatus(ctx, bookingID, userID, false, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), resp.PaymentStatus)
	assert.NotNil(t, resp.CancelledAt)
	assert.False(t, repo.seatActive(showtimeID, "A1"))

	// Cancelled is terminal.
	_, err = svc.UpdateStatus(ctx, bookingID, userID, false, StatusPaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, bookingID, userID, false, PaymentStatus("confirmed"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusOwnership(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(200, smallLayout())
	svc := newTestService(repo)
	owner := uuid.New()
	stranger := uuid.New()
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, owner, &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1"},
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(created.ID)

	_, err = svc.UpdateStatus(ctx, bookingID, stranger, false, StatusPaid)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetBooking(ctx, bookingID, stranger, false)
	assert.ErrorIs(t, err, ErrForbidden)

	// Admins see and manage everything.
	_, err = svc.GetBooking(ctx, bookingID, stranger, true)
	assert.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, bookingID, stranger, true, StatusPaid)
	assert.NoError(t, err)

	_, err = svc.GetBooking(ctx, uuid.New(), owner, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// staleReadRepo commits a cancel behind the coordinator's back after its
// read, simulating a transition landing between the read and the write.
type staleReadRepo struct {
	*fakeRepo
	raceOnce sync.Once
}

func (r *staleReadRepo) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, err := r.fakeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.raceOnce.Do(func() {
		now := time.Now()
		_ = r.fakeRepo.UpdateStatusAndRelease(ctx, id, StatusPending, StatusCancelled, &now)
	})
	return booking, nil
}

// A settle racing a cancel must not resurrect the booking: whichever
// transition commits second loses on the conditional update.
func TestUpdateStatusConcurrentTransitionLoses(t *testing.T) {
	base := newFakeRepo()
	showtimeID := base.addShowtime(100, smallLayout())
	svc := newTestService(&staleReadRepo{fakeRepo: base})
	userID := uuid.New()
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, userID, &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1"},
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(created.ID)

	// The coordinator reads pending, the racing cancel commits, and the
	// paid write must be rejected instead of overwriting the cancel.
	_, err = svc.UpdateStatus(ctx, bookingID, userID, false, StatusPaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	stored, err := svc.GetBooking(ctx, bookingID, userID, false)
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), stored.PaymentStatus)
	assert.False(t, base.seatActive(showtimeID, "A1"))
}

// Paying for a pending booking past its expiry window must fail and release
// the seats, even if the sweep has not run yet.
func TestUpdateStatusLazyExpiry(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(200, smallLayout())
	svc := newTestService(repo)
	userID := uuid.New()
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, userID, &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1", "A2"},
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(created.ID)
	repo.setExpiresAt(bookingID, time.Now().Add(-time.Minute))

	_, err = svc.UpdateStatus(ctx, bookingID, userID, false, StatusPaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	stored, err := svc.GetBooking(ctx, bookingID, userID, false)
	require.NoError(t, err)
	assert.Equal(t, string(StatusFailed), stored.PaymentStatus)

	// The seats are free again.
	_, err = svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1", "A2"},
	})
	assert.NoError(t, err)
}

func TestCancelBookingReleasesSeats(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(150, smallLayout())
	svc := newTestService(repo)
	userID := uuid.New()
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, userID, &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"B1", "B2"},
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(created.ID)

	resp, err := svc.CancelBooking(ctx, bookingID, userID, false)
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), resp.PaymentStatus)

	// Cancelling twice is rejected.
	_, err = svc.CancelBooking(ctx, bookingID, userID, false)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Someone else can immediately take the seats.
	other, err := svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"B1", "B2"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B1", "B2"}, other.Seats)
}

func TestExpirePendingBookings(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(150, smallLayout())
	svc := newTestService(repo)
	ctx := context.Background()

	stale, err := svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1"},
	})
	require.NoError(t, err)
	repo.setExpiresAt(uuid.MustParse(stale.ID), time.Now().Add(-time.Hour))

	_, err = svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A2"},
	})
	require.NoError(t, err)

	count, err := svc.ExpirePendingBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.False(t, repo.seatActive(showtimeID, "A1"))
	assert.True(t, repo.seatActive(showtimeID, "A2"))

	// Idempotent: nothing left to expire.
	count, err = svc.ExpirePendingBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCancelActiveForShowtime(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(150, smallLayout())
	svc := newTestService(repo)
	ctx := context.Background()

	userA := uuid.New()
	createdA, err := svc.CreateBooking(ctx, userA, &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1"},
	})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, uuid.MustParse(createdA.ID), userA, false, StatusPaid)
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A2"},
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelActiveForShowtime(ctx, showtimeID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cancelled)
	assert.False(t, repo.seatActive(showtimeID, "A1"))
	assert.False(t, repo.seatActive(showtimeID, "A2"))

	cancelled, err = svc.CancelActiveForShowtime(ctx, showtimeID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cancelled)
}

func TestValidateSeatSelection(t *testing.T) {
	assert.NoError(t, validateSeatSelection([]string{"A1", "A2"}))
	assert.ErrorIs(t, validateSeatSelection(nil), ErrValidation)
	assert.ErrorIs(t, validateSeatSelection([]string{}), ErrValidation)
	assert.ErrorIs(t, validateSeatSelection([]string{"A1", "A1"}), ErrValidation)
	assert.ErrorIs(t, validateSeatSelection([]string{"A1", ""}), ErrValidation)
}

func TestSeatConflictErrorShape(t *testing.T) {
	err := &SeatConflictError{Seats: []string{"A1", "B2"}}
	assert.Contains(t, err.Error(), "A1")
	assert.Contains(t, err.Error(), "B2")

	var target *SeatConflictError
	assert.True(t, errors.As(error(err), &target))
}

func TestNewBookingRef(t *testing.T) {
	ref := NewBookingRef()
	assert.Len(t, ref, 13)
	assert.Equal(t, "BK-", ref[:3])
	assert.NotEqual(t, ref, NewBookingRef())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(100, 0))
	assert.Equal(t, 1, CalculateTotalPages(1, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
}
