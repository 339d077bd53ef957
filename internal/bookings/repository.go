package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cinetix/internal/screens"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShowtimeInfo is what the coordinator needs to validate and price a
// reservation: the showtime's price and its screen's frozen seat map.
type ShowtimeInfo struct {
	ShowtimeID uuid.UUID
	ScreenID   uuid.UUID
	Price      float64
	SeatLayout []string
}

type Repository interface {
	// CreateBookingWithSeatCheck is the atomic decision point. It runs one
	// transaction that serialises writers per showtime and either claims
	// every requested seat or none of them.
	CreateBookingWithSeatCheck(ctx context.Context, booking *Booking) error

	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	List(ctx context.Context, query BookingListQuery) ([]Booking, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)

	// UpdateStatusAndRelease applies a status change conditional on the
	// expected current status and, when the target status releases seats,
	// deactivates the booking's seat rows in the same transaction. A
	// concurrent transition that moved the booking first makes this fail
	// with ErrInvalidTransition.
	UpdateStatusAndRelease(ctx context.Context, id uuid.UUID, from, to PaymentStatus, cancelledAt *time.Time) error

	CancelActiveForShowtime(ctx context.Context, showtimeID uuid.UUID) (int64, error)
	ExpirePending(ctx context.Context, now time.Time) ([]Booking, error)

	GetShowtimeInfo(ctx context.Context, showtimeID uuid.UUID) (*ShowtimeInfo, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBookingWithSeatCheck(ctx context.Context, booking *Booking) error {
	labels := booking.SeatLabels()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the showtime row. All writers for this showtime queue
		// here, so the overlap check below reads a settled state.
		var showtime struct {
			ID uuid.UUID `gorm:"column:id"`
		}
		if err := lockShowtime(tx, booking.ShowtimeID, &showtime).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShowtimeNotFound
			}
			return fmt.Errorf("failed to lock showtime: %w", err)
		}

		// 2. Overlap check against active seat rows.
		var conflicts []string
		err := tx.Table("booking_seats").
			Where("showtime_id = ? AND active AND seat_label IN ?", booking.ShowtimeID, labels).
			Order("seat_label ASC").
			Pluck("seat_label", &conflicts).Error
		if err != nil {
			return fmt.Errorf("failed to check seat availability: %w", err)
		}
		if len(conflicts) > 0 {
			return &SeatConflictError{Seats: conflicts}
		}

		// 3. Insert the booking and its seat rows. The partial unique
		// index on (showtime_id, seat_label) WHERE active catches anything
		// that slips past the lock.
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return r.seatConflictFromDuplicate(ctx, err, booking.ShowtimeID, labels)
	}
	return nil
}

// lockShowtime takes the per-showtime write lock (SELECT ... FOR UPDATE).
// Every booking writer for the showtime serialises on this row.
func lockShowtime(tx *gorm.DB, showtimeID uuid.UUID, dest interface{}) *gorm.DB {
	return tx.Table("showtimes").
		Select("id").
		Where("id = ?", showtimeID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(dest)
}

// seatConflictFromDuplicate turns a unique-violation from the partial index
// backstop into a SeatConflictError, so a write that slipped past the row
// lock still reports a conflict instead of a storage error. The aborted
// transaction cannot be queried, so the taken labels are re-read outside it;
// if that read yields nothing the full request is reported.
func (r *repository) seatConflictFromDuplicate(ctx context.Context, err error, showtimeID uuid.UUID, labels []string) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	var conflicts []string
	qErr := r.db.WithContext(ctx).
		Table("booking_seats").
		Where("showtime_id = ? AND active AND seat_label IN ?", showtimeID, labels).
		Order("seat_label ASC").
		Pluck("seat_label", &conflicts).Error
	if qErr != nil || len(conflicts) == 0 {
		conflicts = append([]string(nil), labels...)
		sort.Strings(conflicts)
	}
	return &SeatConflictError{Seats: conflicts}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) List(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&Booking{}), query)
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	base := r.db.WithContext(ctx).Model(&Booking{}).Where("user_id = ?", userID)
	return r.list(ctx, base, query)
}

func (r *repository) list(ctx context.Context, base *gorm.DB, query BookingListQuery) ([]Booking, int64, error) {
	var bookingsList []Booking
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	base = applyFilters(base, query)

	if err := base.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := base.
		Preload("Seats").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookingsList).Error

	return bookingsList, totalCount, err
}

func (r *repository) UpdateStatusAndRelease(ctx context.Context, id uuid.UUID, from, to PaymentStatus, cancelledAt *time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"payment_status": to,
			"updated_at":     time.Now(),
		}
		if cancelledAt != nil {
			updates["cancelled_at"] = *cancelledAt
		}

		// Conditional on the status the caller read. Zero rows means a
		// concurrent transition landed first and the caller's read is stale.
		result := tx.Model(&Booking{}).
			Where("id = ? AND payment_status = ?", id, from).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: booking is no longer %s", ErrInvalidTransition, from)
		}

		if ReleasesSeats(to) {
			err := tx.Model(&BookingSeat{}).
				Where("booking_id = ? AND active", id).
				Update("active", false).Error
			if err != nil {
				return fmt.Errorf("failed to release seats: %w", err)
			}
		}

		return nil
	})
}

// CancelActiveForShowtime cancels every pending and paid booking of a
// showtime and frees their seats, all in one transaction. Used before a
// showtime is deleted.
func (r *repository) CancelActiveForShowtime(ctx context.Context, showtimeID uuid.UUID) (int64, error) {
	var cancelled int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Booking{}).
			Where("showtime_id = ? AND payment_status IN ?", showtimeID,
				[]PaymentStatus{StatusPending, StatusPaid}).
			Updates(map[string]interface{}{
				"payment_status": StatusCancelled,
				"cancelled_at":   time.Now(),
				"updated_at":     time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		cancelled = result.RowsAffected

		return tx.Model(&BookingSeat{}).
			Where("showtime_id = ? AND active", showtimeID).
			Update("active", false).Error
	})
	return cancelled, err
}

// ExpirePending marks pending bookings past their expiry as failed and
// releases their seats. Returns the expired bookings so the caller can
// invalidate caches and publish events.
func (r *repository) ExpirePending(ctx context.Context, now time.Time) ([]Booking, error) {
	var expired []Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("payment_status = ? AND expires_at < ?", StatusPending, now).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Find(&expired).Error
		if err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(expired))
		for i, booking := range expired {
			ids[i] = booking.ID
		}

		// Attach seat rows so callers can report released labels.
		var seatRows []BookingSeat
		if err := tx.Where("booking_id IN ? AND active", ids).Find(&seatRows).Error; err != nil {
			return err
		}
		seatsByBooking := make(map[uuid.UUID][]BookingSeat)
		for _, row := range seatRows {
			seatsByBooking[row.BookingID] = append(seatsByBooking[row.BookingID], row)
		}
		for i := range expired {
			expired[i].Seats = seatsByBooking[expired[i].ID]
		}

		err = tx.Model(&Booking{}).
			Where("id IN ? AND payment_status = ?", ids, StatusPending).
			Updates(map[string]interface{}{
				"payment_status": StatusFailed,
				"updated_at":     now,
			}).Error
		if err != nil {
			return err
		}

		return tx.Model(&BookingSeat{}).
			Where("booking_id IN ? AND active", ids).
			Update("active", false).Error
	})
	if err != nil {
		return nil, err
	}
	return expired, nil
}

func (r *repository) GetShowtimeInfo(ctx context.Context, showtimeID uuid.UUID) (*ShowtimeInfo, error) {
	var showtime struct {
		ID       uuid.UUID `gorm:"column:id"`
		ScreenID uuid.UUID `gorm:"column:screen_id"`
		Price    float64   `gorm:"column:price"`
	}
	err := r.db.WithContext(ctx).
		Table("showtimes").
		Select("id, screen_id, price").
		Where("id = ?", showtimeID).
		First(&showtime).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}

	var screen screens.Screen
	if err := r.db.WithContext(ctx).First(&screen, "id = ?", showtime.ScreenID).Error; err != nil {
		return nil, fmt.Errorf("failed to load screen for showtime: %w", err)
	}

	return &ShowtimeInfo{
		ShowtimeID: showtime.ID,
		ScreenID:   showtime.ScreenID,
		Price:      showtime.Price,
		SeatLayout: screen.SeatLayout,
	}, nil
}

func applyFilters(query *gorm.DB, filters BookingListQuery) *gorm.DB {
	if filters.Status != "" {
		query = query.Where("payment_status = ?", filters.Status)
	}
	if filters.UserID != "" {
		if userID, err := uuid.Parse(filters.UserID); err == nil {
			query = query.Where("user_id = ?", userID)
		}
	}
	if filters.ShowtimeID != "" {
		if showtimeID, err := uuid.Parse(filters.ShowtimeID); err == nil {
			query = query.Where("showtime_id = ?", showtimeID)
		}
	}
	if filters.DateFrom != "" {
		if dateFrom, err := time.Parse("2006-01-02", filters.DateFrom); err == nil {
			query = query.Where("created_at >= ?", dateFrom)
		}
	}
	if filters.DateTo != "" {
		if dateTo, err := time.Parse("2006-01-02", filters.DateTo); err == nil {
			dateTo = dateTo.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
			query = query.Where("created_at <= ?", dateTo)
		}
	}
	return query
}

// CalculateTotalPages is shared by the paginated list responses.
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((totalCount + int64(limit) - 1) / int64(limit))
}
