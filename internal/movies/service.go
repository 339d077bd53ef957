package movies

import (
	"context"
	"errors"

	"cinetix/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrMovieInUse    = errors.New("movie has showtimes and cannot be deleted")
)

const trendingLimit = 10

type Service interface {
	CreateMovie(ctx context.Context, req *CreateMovieRequest) (*Movie, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*Movie, error)
	ListMovies(ctx context.Context, filters MovieFilters) (*PaginatedMovies, error)
	TrendingMovies(ctx context.Context) ([]Movie, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, req *UpdateMovieRequest) (*Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) CreateMovie(ctx context.Context, req *CreateMovieRequest) (*Movie, error) {
	movie := &Movie{
		Title:        req.Title,
		Description:  req.Description,
		Genres:       req.Genres,
		Language:     req.Language,
		DurationMins: req.DurationMins,
		Rating:       req.Rating,
		ReleaseDate:  req.ReleaseDate,
		PosterURL:    req.PosterURL,
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.invalidateTrending(ctx)
	return movie, nil
}

func (s *service) GetMovie(ctx context.Context, id uuid.UUID) (*Movie, error) {
	var movie Movie
	err := s.cache.GetOrSet(ctx, cache.MovieKey(id.String()), cache.DefaultTTL, func() (interface{}, error) {
		m, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return m, nil
	}, &movie)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (s *service) ListMovies(ctx context.Context, filters MovieFilters) (*PaginatedMovies, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}

	moviesList, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.Limit) - 1) / int64(filters.Limit))
	return &PaginatedMovies{
		Movies:     moviesList,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) TrendingMovies(ctx context.Context) ([]Movie, error) {
	var moviesList []Movie
	err := s.cache.GetOrSet(ctx, cache.TrendingMoviesKey, cache.DefaultTTL, func() (interface{}, error) {
		return s.repo.Trending(ctx, trendingLimit)
	}, &moviesList)
	if err != nil {
		return nil, err
	}
	return moviesList, nil
}

func (s *service) UpdateMovie(ctx context.Context, id uuid.UUID, req *UpdateMovieRequest) (*Movie, error) {
	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Genres != nil {
		movie.Genres = req.Genres
	}
	if req.Language != nil {
		movie.Language = *req.Language
	}
	if req.DurationMins != nil {
		movie.DurationMins = *req.DurationMins
	}
	if req.Rating != nil {
		movie.Rating = *req.Rating
	}
	if req.ReleaseDate != nil {
		movie.ReleaseDate = *req.ReleaseDate
	}
	if req.PosterURL != nil {
		movie.PosterURL = *req.PosterURL
	}

	if err := s.repo.Save(ctx, movie); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return movie, nil
}

func (s *service) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	count, err := s.repo.CountShowtimes(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrMovieInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *service) invalidate(ctx context.Context, id uuid.UUID) {
	_ = s.cache.Delete(ctx, cache.MovieKey(id.String()))
	s.invalidateTrending(ctx)
}

func (s *service) invalidateTrending(ctx context.Context) {
	_ = s.cache.Delete(ctx, cache.TrendingMoviesKey)
}
