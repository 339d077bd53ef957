package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinetix/internal/notifications"
	"cinetix/internal/shared/config"
	"cinetix/pkg/cache"
	"cinetix/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the booking coordinator. It validates a reservation request,
// drives the atomic decision point in the repository, and handles the
// best-effort side effects (cache invalidation, events, hold release)
// after the transaction commits.
type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*BookingResponse, error)
	GetBooking(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool) (*BookingResponse, error)
	ListBookings(ctx context.Context, query BookingListQuery) (*PaginatedBookings, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*PaginatedBookings, error)
	UpdateStatus(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool, to PaymentStatus) (*BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool) (*BookingResponse, error)

	HoldSeats(ctx context.Context, userID uuid.UUID, req *HoldSeatsRequest) (*HoldResponse, error)
	ReleaseHold(ctx context.Context, holdID string, userID uuid.UUID) error
	HeldSeats(ctx context.Context, showtimeID uuid.UUID) ([]string, error)

	CancelActiveForShowtime(ctx context.Context, showtimeID uuid.UUID) (int64, error)
	ExpirePendingBookings(ctx context.Context) (int, error)
}

type service struct {
	repo     Repository
	holds    *HoldStore
	cache    cache.Service
	producer notifications.Producer
	config   *config.Config
	log      *logger.Logger
}

func NewService(repo Repository, holds *HoldStore, cacheService cache.Service, producer notifications.Producer, cfg *config.Config, log *logger.Logger) Service {
	return &service{
		repo:     repo,
		holds:    holds,
		cache:    cacheService,
		producer: producer,
		config:   cfg,
		log:      log,
	}
}

func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*BookingResponse, error) {
	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid showtime id", ErrValidation)
	}

	if err := validateSeatSelection(req.Seats); err != nil {
		return nil, err
	}

	info, err := s.repo.GetShowtimeInfo(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	layout := make(map[string]bool, len(info.SeatLayout))
	for _, label := range info.SeatLayout {
		layout[label] = true
	}
	for _, label := range req.Seats {
		if !layout[label] {
			return nil, fmt.Errorf("%w: seat %s is not in the seat map", ErrValidation, label)
		}
	}

	expiresAt := time.Now().Add(s.config.Booking.PendingTTL)
	booking := &Booking{
		BookingRef:    NewBookingRef(),
		UserID:        userID,
		ShowtimeID:    showtimeID,
		SeatCount:     len(req.Seats),
		TotalPrice:    info.Price * float64(len(req.Seats)),
		PaymentStatus: StatusPending,
		ExpiresAt:     &expiresAt,
	}
	for _, label := range req.Seats {
		booking.Seats = append(booking.Seats, BookingSeat{
			ShowtimeID: showtimeID,
			SeatLabel:  label,
			Active:     true,
		})
	}

	// Atomic decision point: all requested seats or none.
	if err := s.repo.CreateBookingWithSeatCheck(ctx, booking); err != nil {
		var conflict *SeatConflictError
		if errors.As(err, &conflict) {
			s.log.LogSeatConflict(ctx, showtimeID.String(), conflict.Seats)
		}
		return nil, err
	}

	// Best-effort side effects after commit.
	s.invalidateAvailability(ctx, showtimeID)
	if err := s.holds.ReleaseSeatLabels(ctx, showtimeID, req.Seats); err != nil {
		s.log.WarnContext(ctx, "failed to release seat holds after booking", "error", err.Error())
	}
	s.publishEvent(ctx, notifications.BookingCreated, booking)
	s.log.LogBookingCreated(ctx, booking.ID.String(), showtimeID.String(), userID.String(), req.Seats)

	return toBookingResponse(booking), nil
}

func (s *service) GetBooking(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool) (*BookingResponse, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && booking.UserID != userID {
		return nil, ErrForbidden
	}
	return toBookingResponse(booking), nil
}

func (s *service) ListBookings(ctx context.Context, query BookingListQuery) (*PaginatedBookings, error) {
	bookingsList, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return paginate(bookingsList, total, query), nil
}

func (s *service) ListUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*PaginatedBookings, error) {
	bookingsList, total, err := s.repo.ListByUser(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	return paginate(bookingsList, total, query), nil
}

// UpdateStatus applies a payment status transition. Only the transitions in
// the table are legal; transitions into failed or cancelled release the
// booking's seats in the same transaction as the status change.
func (s *service) UpdateStatus(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool, to PaymentStatus) (*BookingResponse, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, to)
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && booking.UserID != userID {
		return nil, ErrForbidden
	}

	// Lazy expiry guard: a pending booking past its window is expired
	// here even if the sweep has not caught it yet. Losing the conditional
	// update means the sweep got there first; the outcome is the same.
	if booking.PaymentStatus == StatusPending && booking.ExpiresAt != nil && booking.ExpiresAt.Before(time.Now()) {
		err := s.repo.UpdateStatusAndRelease(ctx, bookingID, StatusPending, StatusFailed, nil)
		switch {
		case err == nil:
			s.invalidateAvailability(ctx, booking.ShowtimeID)
			s.publishEvent(ctx, notifications.BookingExpired, booking)
		case !errors.Is(err, ErrInvalidTransition):
			return nil, err
		}
		return nil, fmt.Errorf("%w: booking expired", ErrInvalidTransition)
	}

	if !CanTransition(booking.PaymentStatus, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.PaymentStatus, to)
	}

	var cancelledAt *time.Time
	if to == StatusCancelled {
		now := time.Now()
		cancelledAt = &now
	}

	// Conditional on the status read above, so a transition that raced us
	// in (payment settling against a cancel, say) cannot be overwritten.
	if err := s.repo.UpdateStatusAndRelease(ctx, bookingID, booking.PaymentStatus, to, cancelledAt); err != nil {
		return nil, err
	}

	if ReleasesSeats(to) {
		s.invalidateAvailability(ctx, booking.ShowtimeID)
	}

	switch to {
	case StatusPaid:
		s.publishEvent(ctx, notifications.BookingPaid, booking)
	case StatusFailed:
		s.publishEvent(ctx, notifications.BookingFailed, booking)
	case StatusCancelled:
		s.publishEvent(ctx, notifications.BookingCancelled, booking)
	}

	return s.GetBooking(ctx, bookingID, userID, isAdmin)
}

// CancelBooking cancels a pending or paid booking and frees its seats.
// Status change and seat deactivation commit together, so there is no
// window where the seats are neither booked nor available.
func (s *service) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool) (*BookingResponse, error) {
	return s.UpdateStatus(ctx, bookingID, userID, isAdmin, StatusCancelled)
}

func (s *service) HoldSeats(ctx context.Context, userID uuid.UUID, req *HoldSeatsRequest) (*HoldResponse, error) {
	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid showtime id", ErrValidation)
	}

	if err := validateSeatSelection(req.Seats); err != nil {
		return nil, err
	}

	info, err := s.repo.GetShowtimeInfo(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	layout := make(map[string]bool, len(info.SeatLayout))
	for _, label := range info.SeatLayout {
		layout[label] = true
	}
	for _, label := range req.Seats {
		if !layout[label] {
			return nil, fmt.Errorf("%w: seat %s is not in the seat map", ErrValidation, label)
		}
	}

	ttl := s.config.Redis.SeatHoldTTL
	holdID, err := s.holds.Hold(ctx, userID, showtimeID, req.Seats, ttl)
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, showtimeID)

	return &HoldResponse{
		HoldID:     holdID,
		ShowtimeID: showtimeID.String(),
		Seats:      req.Seats,
		ExpiresAt:  time.Now().Add(ttl),
	}, nil
}

func (s *service) ReleaseHold(ctx context.Context, holdID string, userID uuid.UUID) error {
	return s.holds.Release(ctx, holdID, userID)
}

// HeldSeats implements the hold reader used by showtime availability.
func (s *service) HeldSeats(ctx context.Context, showtimeID uuid.UUID) ([]string, error) {
	return s.holds.HeldSeats(ctx, showtimeID)
}

// CancelActiveForShowtime cancels all active bookings of a showtime. Called
// by the showtime service before it deletes the showtime.
func (s *service) CancelActiveForShowtime(ctx context.Context, showtimeID uuid.UUID) (int64, error) {
	cancelled, err := s.repo.CancelActiveForShowtime(ctx, showtimeID)
	if err != nil {
		return 0, err
	}
	if cancelled > 0 {
		s.invalidateAvailability(ctx, showtimeID)
	}
	return cancelled, nil
}

// ExpirePendingBookings marks pending bookings past their expiry as failed
// and releases their seats. Run periodically by the job processor.
func (s *service) ExpirePendingBookings(ctx context.Context) (int, error) {
	expired, err := s.repo.ExpirePending(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for i := range expired {
		booking := &expired[i]
		s.invalidateAvailability(ctx, booking.ShowtimeID)
		s.publishEvent(ctx, notifications.BookingExpired, booking)
	}

	s.log.LogExpirySweep(ctx, len(expired))
	return len(expired), nil
}

func (s *service) getBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *service) invalidateAvailability(ctx context.Context, showtimeID uuid.UUID) {
	if err := s.cache.Delete(ctx, cache.AvailabilityKey(showtimeID.String())); err != nil {
		s.log.WarnContext(ctx, "failed to invalidate availability cache",
			"showtime_id", showtimeID.String(), "error", err.Error())
	}
}

func (s *service) publishEvent(ctx context.Context, eventType notifications.EventType, booking *Booking) {
	event := &notifications.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID.String(),
		BookingRef: booking.BookingRef,
		UserID:     booking.UserID.String(),
		ShowtimeID: booking.ShowtimeID.String(),
		Seats:      booking.SeatLabels(),
		TotalPrice: booking.TotalPrice,
		OccurredAt: time.Now(),
	}
	if err := s.producer.PublishBookingEvent(ctx, event); err != nil {
		s.log.WarnContext(ctx, "failed to publish booking event",
			"type", string(eventType), "booking_id", booking.ID.String(), "error", err.Error())
	}
}

func validateSeatSelection(seats []string) error {
	if len(seats) == 0 {
		return fmt.Errorf("%w: at least one seat is required", ErrValidation)
	}
	seen := make(map[string]bool, len(seats))
	for _, label := range seats {
		if label == "" {
			return fmt.Errorf("%w: empty seat label", ErrValidation)
		}
		if seen[label] {
			return fmt.Errorf("%w: duplicate seat %s", ErrValidation, label)
		}
		seen[label] = true
	}
	return nil
}

func paginate(bookingsList []Booking, total int64, query BookingListQuery) *PaginatedBookings {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	responses := make([]BookingResponse, len(bookingsList))
	for i := range bookingsList {
		responses[i] = *toBookingResponse(&bookingsList[i])
	}

	return &PaginatedBookings{
		Bookings:   responses,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(total, query.Limit),
	}
}
