package screens

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, screen *Screen) error
	GetByID(ctx context.Context, id uuid.UUID) (*Screen, error)
	List(ctx context.Context, filters ScreenFilters) ([]Screen, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpdateLayout(ctx context.Context, id uuid.UUID, layout []string) error
	Delete(ctx context.Context, id uuid.UUID) error
	TheatreExists(ctx context.Context, theatreID uuid.UUID) (bool, error)
	CountShowtimes(ctx context.Context, screenID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, screen *Screen) error {
	return r.db.WithContext(ctx).Create(screen).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Screen, error) {
	var screen Screen
	err := r.db.WithContext(ctx).First(&screen, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &screen, nil
}

func (r *repository) List(ctx context.Context, filters ScreenFilters) ([]Screen, int64, error) {
	var screens []Screen
	var total int64

	query := r.db.WithContext(ctx).Model(&Screen{})
	if filters.TheatreID != "" {
		query = query.Where("theatre_id = ?", filters.TheatreID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit
	err := query.Order("name ASC").Offset(offset).Limit(filters.Limit).Find(&screens).Error
	return screens, total, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Screen{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateLayout goes through a struct update so the JSON serializer applies.
func (r *repository) UpdateLayout(ctx context.Context, id uuid.UUID, layout []string) error {
	return r.db.WithContext(ctx).Model(&Screen{}).Where("id = ?", id).
		Updates(Screen{SeatLayout: layout, TotalSeats: len(layout)}).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Screen{}, "id = ?", id).Error
}

func (r *repository) TheatreExists(ctx context.Context, theatreID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("theatres").Where("id = ?", theatreID).Count(&count).Error
	return count > 0, err
}

func (r *repository) CountShowtimes(ctx context.Context, screenID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("showtimes").Where("screen_id = ?", screenID).Count(&count).Error
	return count, err
}
