package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"equiprent/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateWithHold inserts the booking and flips the equipment to unavailable
// in one transaction. The flip is conditional on the flag still being true,
// so of two concurrent requests only one can win; the loser gets
// ErrEquipmentHeld.
func (r *BookingRepository) CreateWithHold(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Equipment{}).
			Where("id = ? AND is_available = ?", b.EquipmentID, true).
			Update("is_available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEquipmentHeld
		}
		return tx.Create(b).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Equipment").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Equipment").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var bookings []domain.Booking
	err := q.Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) List(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Equipment").
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var bookings []domain.Booking
	err := q.Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

// SaveWithAvailability persists the booking and the derived equipment
// availability as a unit, so the two can never silently diverge.
func (r *BookingRepository) SaveWithAvailability(ctx context.Context, b *domain.Booking, available bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(b).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Equipment{}).
			Where("id = ?", b.EquipmentID).
			Update("is_available", available).Error
	})
}
