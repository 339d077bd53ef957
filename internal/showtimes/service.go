package showtimes

import (
	"context"
	"errors"
	"time"

	"cinetix/pkg/cache"
	"cinetix/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrScreenNotFound   = errors.New("screen not found")
	ErrInvalidSchedule  = errors.New("end time must be after start time")
)

// Availability is cached briefly; every booking commit, cancel, and expiry
// invalidates the key, so the TTL only bounds staleness on the cold path.
const availabilityTTL = 30 * time.Second

// BookingReleaser cancels the active bookings of a showtime. Implemented by
// the bookings service and injected at wiring time to avoid a package cycle.
type BookingReleaser interface {
	CancelActiveForShowtime(ctx context.Context, showtimeID uuid.UUID) (int64, error)
}

// SeatHoldReader reports seats currently held in Redis for a showtime.
type SeatHoldReader interface {
	HeldSeats(ctx context.Context, showtimeID uuid.UUID) ([]string, error)
}

type Service interface {
	CreateShowtime(ctx context.Context, req *CreateShowtimeRequest) (*Showtime, error)
	GetShowtime(ctx context.Context, id uuid.UUID) (*Showtime, error)
	ListShowtimes(ctx context.Context, filters ShowtimeFilters) (*PaginatedShowtimes, error)
	UpdateShowtime(ctx context.Context, id uuid.UUID, req *UpdateShowtimeRequest) (*Showtime, error)
	DeleteShowtime(ctx context.Context, id uuid.UUID) error

	GetAvailability(ctx context.Context, id uuid.UUID) (*AvailabilityResponse, error)
	CheckSeats(ctx context.Context, id uuid.UUID, seatLabels []string) (*CheckSeatsResponse, error)

	SetBookingReleaser(releaser BookingReleaser)
	SetHoldReader(reader SeatHoldReader)
}

type service struct {
	repo     Repository
	cache    cache.Service
	log      *logger.Logger
	releaser BookingReleaser
	holds    SeatHoldReader
}

func NewService(repo Repository, cacheService cache.Service, log *logger.Logger) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		log:   log,
	}
}

func (s *service) SetBookingReleaser(releaser BookingReleaser) {
	s.releaser = releaser
}

func (s *service) SetHoldReader(reader SeatHoldReader) {
	s.holds = reader
}

func (s *service) CreateShowtime(ctx context.Context, req *CreateShowtimeRequest) (*Showtime, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidSchedule
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, ErrMovieNotFound
	}
	screenID, err := uuid.Parse(req.ScreenID)
	if err != nil {
		return nil, ErrScreenNotFound
	}

	exists, err := s.repo.MovieExists(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMovieNotFound
	}

	screen, err := s.repo.GetScreen(ctx, screenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScreenNotFound
		}
		return nil, err
	}

	showtime := &Showtime{
		MovieID:   movieID,
		TheatreID: screen.TheatreID,
		ScreenID:  screen.ID,
		ShowDate:  req.ShowDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
	}
	if err := s.repo.Create(ctx, showtime); err != nil {
		return nil, err
	}
	return showtime, nil
}

func (s *service) GetShowtime(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	showtime, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return showtime, nil
}

func (s *service) ListShowtimes(ctx context.Context, filters ShowtimeFilters) (*PaginatedShowtimes, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}

	showtimesList, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.Limit) - 1) / int64(filters.Limit))
	return &PaginatedShowtimes{
		Showtimes:  showtimesList,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) UpdateShowtime(ctx context.Context, id uuid.UUID, req *UpdateShowtimeRequest) (*Showtime, error) {
	showtime, err := s.GetShowtime(ctx, id)
	if err != nil {
		return nil, err
	}

	start := showtime.StartTime
	end := showtime.EndTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if !end.After(start) {
		return nil, ErrInvalidSchedule
	}

	updates := make(map[string]interface{})
	if req.ShowDate != nil {
		updates["show_date"] = *req.ShowDate
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.GetShowtime(ctx, id)
}

// DeleteShowtime cancels the showtime's active bookings before removing the
// row, so no ledger entry is left pointing at a missing showtime.
func (s *service) DeleteShowtime(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetShowtime(ctx, id); err != nil {
		return err
	}

	if s.releaser != nil {
		cancelled, err := s.releaser.CancelActiveForShowtime(ctx, id)
		if err != nil {
			return err
		}
		if cancelled > 0 {
			s.log.InfoWithContext(ctx, "cancelled active bookings before showtime delete", map[string]interface{}{
				"showtime_id": id.String(),
				"cancelled":   cancelled,
			})
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.AvailabilityKey(id.String()))
	return nil
}

// GetAvailability derives {total, booked, held, available} for a showtime.
// Served cache-aside from Redis.
func (s *service) GetAvailability(ctx context.Context, id uuid.UUID) (*AvailabilityResponse, error) {
	var availability AvailabilityResponse
	err := s.cache.GetOrSet(ctx, cache.AvailabilityKey(id.String()), availabilityTTL, func() (interface{}, error) {
		return s.deriveAvailability(ctx, id)
	}, &availability)
	if err != nil {
		if errors.Is(err, ErrShowtimeNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &availability, nil
}

func (s *service) deriveAvailability(ctx context.Context, id uuid.UUID) (*AvailabilityResponse, error) {
	showtime, err := s.GetShowtime(ctx, id)
	if err != nil {
		return nil, err
	}

	screen, err := s.repo.GetScreen(ctx, showtime.ScreenID)
	if err != nil {
		return nil, err
	}

	bookedSeats, err := s.repo.ActiveSeatLabels(ctx, id)
	if err != nil {
		return nil, err
	}
	bookedSet := make(map[string]bool, len(bookedSeats))
	for _, label := range bookedSeats {
		bookedSet[label] = true
	}

	// Holds are advisory; a held seat that is also booked counts as booked.
	heldSeats := []string{}
	heldSet := make(map[string]bool)
	if s.holds != nil {
		held, err := s.holds.HeldSeats(ctx, id)
		if err != nil {
			s.log.WarnContext(ctx, "failed to read seat holds", "showtime_id", id.String(), "error", err.Error())
		} else {
			for _, label := range held {
				if !bookedSet[label] {
					heldSeats = append(heldSeats, label)
					heldSet[label] = true
				}
			}
		}
	}

	// What remains of the seat map, in layout order.
	availableSeats := make([]string, 0, screen.TotalSeats)
	for _, label := range screen.SeatLayout {
		if !bookedSet[label] && !heldSet[label] {
			availableSeats = append(availableSeats, label)
		}
	}

	return &AvailabilityResponse{
		ShowtimeID:     id.String(),
		TotalSeats:     screen.TotalSeats,
		Booked:         len(bookedSeats),
		Held:           len(heldSeats),
		Available:      len(availableSeats),
		BookedSeats:    bookedSeats,
		HeldSeats:      heldSeats,
		AvailableSeats: availableSeats,
	}, nil
}

// CheckSeats reports the current status of specific seats. Advisory only;
// the booking transaction is the decision point.
func (s *service) CheckSeats(ctx context.Context, id uuid.UUID, seatLabels []string) (*CheckSeatsResponse, error) {
	availability, err := s.deriveAvailability(ctx, id)
	if err != nil {
		return nil, err
	}

	bookedSet := make(map[string]bool, len(availability.BookedSeats))
	for _, label := range availability.BookedSeats {
		bookedSet[label] = true
	}
	heldSet := make(map[string]bool, len(availability.HeldSeats))
	for _, label := range availability.HeldSeats {
		heldSet[label] = true
	}

	result := &CheckSeatsResponse{
		ShowtimeID:   id.String(),
		AllAvailable: true,
		Seats:        make(map[string]string, len(seatLabels)),
	}
	for _, label := range seatLabels {
		switch {
		case bookedSet[label]:
			result.Seats[label] = SeatBooked
			result.AllAvailable = false
		case heldSet[label]:
			result.Seats[label] = SeatHeld
			result.AllAvailable = false
		default:
			result.Seats[label] = SeatAvailable
		}
	}
	return result, nil
}
