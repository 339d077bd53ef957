package cinemas

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCinemaNotFound = errors.New("cinema not found")
	ErrCinemaInUse    = errors.New("cinema has theatres and cannot be deleted")
)

type Service interface {
	CreateCinema(ctx context.Context, req *CreateCinemaRequest) (*Cinema, error)
	GetCinema(ctx context.Context, id uuid.UUID) (*Cinema, error)
	ListCinemas(ctx context.Context, filters CinemaFilters) (*PaginatedCinemas, error)
	UpdateCinema(ctx context.Context, id uuid.UUID, req *UpdateCinemaRequest) (*Cinema, error)
	DeleteCinema(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCinema(ctx context.Context, req *CreateCinemaRequest) (*Cinema, error) {
	cinema := &Cinema{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, cinema); err != nil {
		return nil, err
	}
	return cinema, nil
}

func (s *service) GetCinema(ctx context.Context, id uuid.UUID) (*Cinema, error) {
	cinema, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCinemaNotFound
		}
		return nil, err
	}
	return cinema, nil
}

func (s *service) ListCinemas(ctx context.Context, filters CinemaFilters) (*PaginatedCinemas, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}
	return s.repo.List(ctx, filters)
}

func (s *service) UpdateCinema(ctx context.Context, id uuid.UUID, req *UpdateCinemaRequest) (*Cinema, error) {
	if _, err := s.GetCinema(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.GetCinema(ctx, id)
}

func (s *service) DeleteCinema(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCinema(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountTheatres(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCinemaInUse
	}

	return s.repo.Delete(ctx, id)
}
