package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPaid, StatusCancelled, true},

		{StatusPending, StatusPending, false},
		{StatusPaid, StatusPaid, false},
		{StatusPaid, StatusPending, false},
		{StatusPaid, StatusFailed, false},
		{StatusFailed, StatusPaid, false},
		{StatusFailed, StatusPending, false},
		{StatusFailed, StatusCancelled, false},
		{StatusCancelled, StatusPaid, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusFailed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestReleasesSeats(t *testing.T) {
	assert.True(t, ReleasesSeats(StatusFailed))
	assert.True(t, ReleasesSeats(StatusCancelled))
	assert.False(t, ReleasesSeats(StatusPending))
	assert.False(t, ReleasesSeats(StatusPaid))
}

func TestPaymentStatusActive(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusPaid.Active())
	assert.False(t, StatusFailed.Active())
	assert.False(t, StatusCancelled.Active())
}

func TestPaymentStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusPaid.Valid())
	assert.True(t, StatusFailed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, PaymentStatus("confirmed").Valid())
	assert.False(t, PaymentStatus("").Valid())
}
