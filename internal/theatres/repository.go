package theatres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, theatre *Theatre) error
	GetByID(ctx context.Context, id uuid.UUID) (*Theatre, error)
	List(ctx context.Context, filters TheatreFilters) ([]Theatre, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CinemaExists(ctx context.Context, cinemaID uuid.UUID) (bool, error)
	CountScreens(ctx context.Context, theatreID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, theatre *Theatre) error {
	return r.db.WithContext(ctx).Create(theatre).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Theatre, error) {
	var theatre Theatre
	err := r.db.WithContext(ctx).First(&theatre, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &theatre, nil
}

func (r *repository) List(ctx context.Context, filters TheatreFilters) ([]Theatre, int64, error) {
	var theatres []Theatre
	var total int64

	query := r.db.WithContext(ctx).Model(&Theatre{})
	if filters.CinemaID != "" {
		query = query.Where("cinema_id = ?", filters.CinemaID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit
	err := query.Order("name ASC").Offset(offset).Limit(filters.Limit).Find(&theatres).Error
	return theatres, total, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Theatre{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Theatre{}, "id = ?", id).Error
}

func (r *repository) CinemaExists(ctx context.Context, cinemaID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("cinemas").Where("id = ?", cinemaID).Count(&count).Error
	return count > 0, err
}

func (r *repository) CountScreens(ctx context.Context, theatreID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("screens").Where("theatre_id = ?", theatreID).Count(&count).Error
	return count, err
}
