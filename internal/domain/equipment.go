package domain

import "time"

type EquipmentCondition string

const (
	ConditionGood        EquipmentCondition = "Good"
	ConditionDamaged     EquipmentCondition = "Damaged"
	ConditionUnavailable EquipmentCondition = "Unavailable"
)

func (c EquipmentCondition) Valid() bool {
	switch c {
	case ConditionGood, ConditionDamaged, ConditionUnavailable:
		return true
	}
	return false
}

type Equipment struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	// Price per billing day; any fractional day of use rounds up to a full day.
	RentalPrice float64            `json:"rental_price" validate:"required,gte=0"`
	Category    string             `json:"category" gorm:"size:64;default:'General'"`
	ImageURL    string             `json:"image_url,omitempty"`
	// Denormalized: flipped only by the booking lifecycle, never by catalog edits.
	IsAvailable    bool               `json:"is_available" gorm:"default:true"`
	Condition      EquipmentCondition `json:"condition" gorm:"size:16;default:'Good'"`
	ConditionNotes string             `json:"condition_notes,omitempty" gorm:"type:text"`
	PenaltyPerDay  float64            `json:"penalty_per_day" gorm:"default:0"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment" }
