package theatres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTheatreNotFound = errors.New("theatre not found")
	ErrCinemaNotFound  = errors.New("cinema not found")
	ErrTheatreInUse    = errors.New("theatre has screens and cannot be deleted")
)

type Service interface {
	CreateTheatre(ctx context.Context, req *CreateTheatreRequest) (*Theatre, error)
	GetTheatre(ctx context.Context, id uuid.UUID) (*Theatre, error)
	ListTheatres(ctx context.Context, filters TheatreFilters) (*PaginatedTheatres, error)
	UpdateTheatre(ctx context.Context, id uuid.UUID, req *UpdateTheatreRequest) (*Theatre, error)
	DeleteTheatre(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTheatre(ctx context.Context, req *CreateTheatreRequest) (*Theatre, error) {
	cinemaID, err := uuid.Parse(req.CinemaID)
	if err != nil {
		return nil, ErrCinemaNotFound
	}

	exists, err := s.repo.CinemaExists(ctx, cinemaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCinemaNotFound
	}

	theatre := &Theatre{
		CinemaID: cinemaID,
		Name:     req.Name,
		Location: req.Location,
	}
	if err := s.repo.Create(ctx, theatre); err != nil {
		return nil, err
	}
	return theatre, nil
}

func (s *service) GetTheatre(ctx context.Context, id uuid.UUID) (*Theatre, error) {
	theatre, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTheatreNotFound
		}
		return nil, err
	}
	return theatre, nil
}

func (s *service) ListTheatres(ctx context.Context, filters TheatreFilters) (*PaginatedTheatres, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}

	theatres, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.Limit) - 1) / int64(filters.Limit))
	return &PaginatedTheatres{
		Theatres:   theatres,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) UpdateTheatre(ctx context.Context, id uuid.UUID, req *UpdateTheatreRequest) (*Theatre, error) {
	if _, err := s.GetTheatre(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.GetTheatre(ctx, id)
}

func (s *service) DeleteTheatre(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTheatre(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountScreens(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTheatreInUse
	}

	return s.repo.Delete(ctx, id)
}
