package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRateLimitType(t *testing.T) {
	cases := []struct {
		path string
		want RateLimitType
	}{
		{"/api/v1/admin/bookings", RateLimitTypeAdmin},
		{"/api/v1/admin/showtimes/:id", RateLimitTypeAdmin},
		{"/api/v1/auth/login", RateLimitTypeAuth},
		{"/api/v1/bookings", RateLimitTypeBookingCritical},
		{"/api/v1/bookings/hold", RateLimitTypeBookingCritical},
		{"/api/v1/bookings/:id/cancel", RateLimitTypeBookingCritical},
		{"/api/v1/bookings/:id/status", RateLimitTypeBookingCritical},
		{"/api/v1/users/bookings", RateLimitTypeBookingCritical},
		{"/api/v1/showtimes/:id/seats", RateLimitTypeBooking},
		{"/api/v1/movies/trending", RateLimitTypePublic},
		{"/api/v1/cinemas/:id", RateLimitTypePublic},
		{"/health", RateLimitTypeDefault},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, getRateLimitType(tc.path), tc.path)
	}
}
