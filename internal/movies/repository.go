package movies

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, movie *Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*Movie, error)
	List(ctx context.Context, filters MovieFilters) ([]Movie, int64, error)
	Trending(ctx context.Context, limit int) ([]Movie, error)
	Save(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountShowtimes(ctx context.Context, movieID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, movie *Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Movie, error) {
	var movie Movie
	err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *repository) List(ctx context.Context, filters MovieFilters) ([]Movie, int64, error) {
	var moviesList []Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&Movie{})

	if filters.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("title ILIKE ?", pattern)
	}
	if filters.Genre != "" {
		// Genres are stored as a JSON array of strings
		query = query.Where("genres::text ILIKE ?", fmt.Sprintf("%%\"%s\"%%", filters.Genre))
	}
	if filters.Language != "" {
		query = query.Where("language ILIKE ?", filters.Language)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit
	err := query.Order("release_date DESC").Offset(offset).Limit(filters.Limit).Find(&moviesList).Error
	return moviesList, total, err
}

func (r *repository) Trending(ctx context.Context, limit int) ([]Movie, error) {
	var moviesList []Movie
	err := r.db.WithContext(ctx).
		Order("rating DESC, release_date DESC").
		Limit(limit).
		Find(&moviesList).Error
	return moviesList, err
}

func (r *repository) Save(ctx context.Context, movie *Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Movie{}, "id = ?", id).Error
}

func (r *repository) CountShowtimes(ctx context.Context, movieID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("showtimes").Where("movie_id = ?", movieID).Count(&count).Error
	return count, err
}
