package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrScreenNotFound  = errors.New("screen not found")
	ErrTheatreNotFound = errors.New("theatre not found")
	ErrLayoutFrozen    = errors.New("seat layout is frozen while showtimes reference the screen")
	ErrScreenInUse     = errors.New("screen has showtimes and cannot be deleted")
	ErrInvalidLayout   = errors.New("invalid seat layout")
)

type Service interface {
	CreateScreen(ctx context.Context, req *CreateScreenRequest) (*Screen, error)
	GetScreen(ctx context.Context, id uuid.UUID) (*Screen, error)
	ListScreens(ctx context.Context, filters ScreenFilters) (*PaginatedScreens, error)
	ListSeats(ctx context.Context, id uuid.UUID) (*SeatMapResponse, error)
	UpdateScreen(ctx context.Context, id uuid.UUID, req *UpdateScreenRequest) (*Screen, error)
	DeleteScreen(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateScreen(ctx context.Context, req *CreateScreenRequest) (*Screen, error) {
	theatreID, err := uuid.Parse(req.TheatreID)
	if err != nil {
		return nil, ErrTheatreNotFound
	}

	exists, err := s.repo.TheatreExists(ctx, theatreID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTheatreNotFound
	}

	if err := ValidateLayout(req.SeatLayout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	screen := &Screen{
		TheatreID:  theatreID,
		Name:       req.Name,
		SeatLayout: req.SeatLayout,
		TotalSeats: len(req.SeatLayout),
	}
	if err := s.repo.Create(ctx, screen); err != nil {
		return nil, err
	}
	return screen, nil
}

func (s *service) GetScreen(ctx context.Context, id uuid.UUID) (*Screen, error) {
	screen, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScreenNotFound
		}
		return nil, err
	}
	return screen, nil
}

func (s *service) ListScreens(ctx context.Context, filters ScreenFilters) (*PaginatedScreens, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}

	screens, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.Limit) - 1) / int64(filters.Limit))
	return &PaginatedScreens{
		Screens:    screens,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: totalPages,
	}, nil
}

// ListSeats returns the screen's layout grouped by row, in layout order.
func (s *service) ListSeats(ctx context.Context, id uuid.UUID) (*SeatMapResponse, error) {
	screen, err := s.GetScreen(ctx, id)
	if err != nil {
		return nil, err
	}

	return &SeatMapResponse{
		ScreenID:   screen.ID.String(),
		ScreenName: screen.Name,
		TotalSeats: screen.TotalSeats,
		Rows:       GroupByRow(screen.SeatLayout),
	}, nil
}

func (s *service) UpdateScreen(ctx context.Context, id uuid.UUID, req *UpdateScreenRequest) (*Screen, error) {
	if _, err := s.GetScreen(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.SeatLayout != nil {
		// Layout changes are rejected while showtimes reference the screen
		count, err := s.repo.CountShowtimes(ctx, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrLayoutFrozen
		}

		if err := ValidateLayout(req.SeatLayout); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}

		if err := s.repo.UpdateLayout(ctx, id, req.SeatLayout); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.GetScreen(ctx, id)
}

func (s *service) DeleteScreen(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetScreen(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountShowtimes(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrScreenInUse
	}

	return s.repo.Delete(ctx, id)
}
