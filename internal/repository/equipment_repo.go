package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equiprent/internal/domain"
)

// ErrEquipmentHeld reports that a conditional availability flip lost the
// race: the equipment was no longer available at write time.
var ErrEquipmentHeld = errors.New("equipment already held")

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) List(ctx context.Context, onlyAvailable bool) ([]domain.Equipment, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}
	var items []domain.Equipment
	err := q.Find(&items).Error
	return items, err
}

// Update persists catalog edits. IsAvailable is deliberately excluded: the
// flag belongs to the booking lifecycle.
func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Model(e).
		Select("name", "description", "rental_price", "category", "image_url",
			"condition", "condition_notes", "penalty_per_day").
		Updates(e).Error
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Equipment{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetAvailability flips the availability flag unconditionally, used by
// status transitions where the target state is known.
func (r *EquipmentRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	return r.db.WithContext(ctx).Model(&domain.Equipment{}).
		Where("id = ?", id).
		Update("is_available", available).Error
}
