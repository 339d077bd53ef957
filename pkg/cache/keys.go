package cache

import (
	"fmt"
	"time"
)

// DefaultTTL applies when a caller has no better expiry policy.
const DefaultTTL = 5 * time.Minute

// Cache key builders. Keeping them in one place makes invalidation
// from the booking coordinator auditable.

// AvailabilityKey is the cached seat availability for a showtime.
func AvailabilityKey(showtimeID string) string {
	return fmt.Sprintf("cinetix:availability:%s", showtimeID)
}

// MovieKey is the cached detail view of a movie.
func MovieKey(movieID string) string {
	return fmt.Sprintf("cinetix:movie:%s", movieID)
}

// TrendingMoviesKey is the cached trending list.
const TrendingMoviesKey = "cinetix:movies:trending"
