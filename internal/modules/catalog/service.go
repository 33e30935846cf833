package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equiprent/internal/domain"
)

type Service struct {
	equipment EquipmentRepository
}

func NewService(equipment EquipmentRepository) *Service {
	return &Service{equipment: equipment}
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	if req.Name == "" || req.RentalPrice == nil || *req.RentalPrice < 0 {
		return nil, ErrValidation
	}

	condition := domain.EquipmentCondition(req.Condition)
	if req.Condition == "" {
		condition = domain.ConditionGood
	}
	if !condition.Valid() {
		return nil, ErrValidation
	}

	category := req.Category
	if category == "" {
		category = "General"
	}

	e := &domain.Equipment{
		Name:           req.Name,
		Description:    req.Description,
		RentalPrice:    *req.RentalPrice,
		Category:       category,
		ImageURL:       req.ImageURL,
		IsAvailable:    true,
		Condition:      condition,
		ConditionNotes: req.ConditionNotes,
		PenaltyPerDay:  req.PenaltyPerDay,
	}

	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, onlyAvailable bool) ([]domain.Equipment, error) {
	return s.equipment.List(ctx, onlyAvailable)
}

// Update applies catalog edits field by field. The availability flag is not
// an edit: it belongs to the booking lifecycle.
func (s *Service) Update(ctx context.Context, id int64, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		e.Name = req.Name
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.RentalPrice != nil {
		if *req.RentalPrice < 0 {
			return nil, ErrValidation
		}
		e.RentalPrice = *req.RentalPrice
	}
	if req.Category != "" {
		e.Category = req.Category
	}
	if req.ImageURL != nil {
		e.ImageURL = *req.ImageURL
	}
	if req.Condition != "" {
		condition := domain.EquipmentCondition(req.Condition)
		if !condition.Valid() {
			return nil, ErrValidation
		}
		e.Condition = condition
	}
	if req.ConditionNotes != nil {
		e.ConditionNotes = *req.ConditionNotes
	}
	if req.PenaltyPerDay != nil {
		if *req.PenaltyPerDay < 0 {
			return nil, ErrValidation
		}
		e.PenaltyPerDay = *req.PenaltyPerDay
	}

	if err := s.equipment.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.equipment.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
