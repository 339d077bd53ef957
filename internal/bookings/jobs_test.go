package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobProcessorExpiresPendingBookings(t *testing.T) {
	repo := newFakeRepo()
	showtimeID := repo.addShowtime(100, smallLayout())
	svc := newTestService(repo)

	created, err := svc.CreateBooking(context.Background(), uuid.New(), &CreateBookingRequest{
		ShowtimeID: showtimeID.String(),
		Seats:      []string{"A1"},
	})
	require.NoError(t, err)
	repo.setExpiresAt(uuid.MustParse(created.ID), time.Now().Add(-time.Minute))

	jobs := NewJobProcessor(svc, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jobs.Start(ctx)
	defer jobs.Stop()

	assert.Eventually(t, func() bool {
		return !repo.seatActive(showtimeID, "A1")
	}, 2*time.Second, 10*time.Millisecond)
}
