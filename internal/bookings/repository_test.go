package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

// The per-showtime serialisation hinges on this query actually carrying a
// row lock; without FOR UPDATE the overlap check is a plain racy read.
func TestLockShowtimeIssuesRowLock(t *testing.T) {
	db := dryRunDB(t)

	var row struct {
		ID uuid.UUID `gorm:"column:id"`
	}
	stmt := lockShowtime(db.Session(&gorm.Session{DryRun: true}), uuid.New(), &row).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Contains(t, sql, "showtimes")
}

// A unique violation from the partial index backstop must surface as a
// seat conflict, not a storage error.
func TestSeatConflictFromDuplicate(t *testing.T) {
	r := &repository{db: dryRunDB(t)}
	ctx := context.Background()

	err := r.seatConflictFromDuplicate(ctx,
		fmt.Errorf("failed to create booking: %w", gorm.ErrDuplicatedKey),
		uuid.New(), []string{"B2", "A1"})

	var conflict *SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"A1", "B2"}, conflict.Seats)

	// Anything else passes through untouched.
	boom := errors.New("connection reset")
	assert.Equal(t, boom, r.seatConflictFromDuplicate(ctx, boom, uuid.New(), []string{"A1"}))
	assert.ErrorIs(t,
		r.seatConflictFromDuplicate(ctx, ErrShowtimeNotFound, uuid.New(), nil),
		ErrShowtimeNotFound)
}
