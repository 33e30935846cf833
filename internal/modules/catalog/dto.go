package catalog

type CreateEquipmentRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	RentalPrice    *float64 `json:"rental_price" binding:"required"`
	Category       string   `json:"category"`
	ImageURL       string   `json:"image_url"`
	Condition      string   `json:"condition"`
	ConditionNotes string   `json:"condition_notes"`
	PenaltyPerDay  float64  `json:"penalty_per_day"`
}

// UpdateEquipmentRequest carries catalog edits. Availability is absent on
// purpose: the flag is derived from the booking lifecycle.
type UpdateEquipmentRequest struct {
	Name           string   `json:"name"`
	Description    *string  `json:"description"`
	RentalPrice    *float64 `json:"rental_price"`
	Category       string   `json:"category"`
	ImageURL       *string  `json:"image_url"`
	Condition      string   `json:"condition"`
	ConditionNotes *string  `json:"condition_notes"`
	PenaltyPerDay  *float64 `json:"penalty_per_day"`
}
