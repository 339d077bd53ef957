package showtimes

import (
	"context"

	"cinetix/internal/screens"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, showtime *Showtime) error
	GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error)
	List(ctx context.Context, filters ShowtimeFilters) ([]Showtime, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetScreen(ctx context.Context, screenID uuid.UUID) (*screens.Screen, error)
	MovieExists(ctx context.Context, movieID uuid.UUID) (bool, error)
	ActiveSeatLabels(ctx context.Context, showtimeID uuid.UUID) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, showtime *Showtime) error {
	return r.db.WithContext(ctx).Create(showtime).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	var showtime Showtime
	err := r.db.WithContext(ctx).First(&showtime, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &showtime, nil
}

func (r *repository) List(ctx context.Context, filters ShowtimeFilters) ([]Showtime, int64, error) {
	var showtimesList []Showtime
	var total int64

	query := r.db.WithContext(ctx).Model(&Showtime{})
	if filters.MovieID != "" {
		query = query.Where("movie_id = ?", filters.MovieID)
	}
	if filters.TheatreID != "" {
		query = query.Where("theatre_id = ?", filters.TheatreID)
	}
	if filters.ScreenID != "" {
		query = query.Where("screen_id = ?", filters.ScreenID)
	}
	if filters.Date != "" {
		query = query.Where("show_date::date = ?", filters.Date)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit
	err := query.Order("show_date ASC, start_time ASC").Offset(offset).Limit(filters.Limit).Find(&showtimesList).Error
	return showtimesList, total, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Showtime{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Showtime{}, "id = ?", id).Error
}

func (r *repository) GetScreen(ctx context.Context, screenID uuid.UUID) (*screens.Screen, error) {
	var screen screens.Screen
	err := r.db.WithContext(ctx).First(&screen, "id = ?", screenID).Error
	if err != nil {
		return nil, err
	}
	return &screen, nil
}

func (r *repository) MovieExists(ctx context.Context, movieID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("movies").Where("id = ?", movieID).Count(&count).Error
	return count > 0, err
}

// ActiveSeatLabels is the derived booked set for a showtime.
func (r *repository) ActiveSeatLabels(ctx context.Context, showtimeID uuid.UUID) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).
		Table("booking_seats").
		Where("showtime_id = ? AND active", showtimeID).
		Order("seat_label ASC").
		Pluck("seat_label", &labels).Error
	return labels, err
}
