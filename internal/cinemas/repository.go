package cinemas

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, cinema *Cinema) error
	GetByID(ctx context.Context, id uuid.UUID) (*Cinema, error)
	List(ctx context.Context, filters CinemaFilters) (*PaginatedCinemas, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountTheatres(ctx context.Context, cinemaID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cinema *Cinema) error {
	return r.db.WithContext(ctx).Create(cinema).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Cinema, error) {
	var cinema Cinema
	err := r.db.WithContext(ctx).First(&cinema, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cinema, nil
}

func (r *repository) List(ctx context.Context, filters CinemaFilters) (*PaginatedCinemas, error) {
	var cinemas []Cinema
	var total int64

	query := r.db.WithContext(ctx).Model(&Cinema{})

	if filters.City != "" {
		query = query.Where("city ILIKE ?", filters.City)
	}
	if filters.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ?", pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (filters.Page - 1) * filters.Limit
	if err := query.Order("name ASC").Offset(offset).Limit(filters.Limit).Find(&cinemas).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.Limit) - 1) / int64(filters.Limit))

	return &PaginatedCinemas{
		Cinemas:    cinemas,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: totalPages,
	}, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Cinema{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Cinema{}, "id = ?", id).Error
}

func (r *repository) CountTheatres(ctx context.Context, cinemaID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("theatres").Where("cinema_id = ?", cinemaID).Count(&count).Error
	return count, err
}
