package booking

import "equiprent/internal/domain"

type CreateBookingRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
	// Calendar date "2006-01-02"; time of day "15:04", midnight when omitted.
	StartDate  string `json:"start_date" binding:"required"`
	StartTime  string `json:"start_time"`
	RentalType string `json:"rental_type" binding:"required"`
	// Fractional hours in hours mode (1-minute resolution), whole days in
	// days mode. Ignored in days mode when an explicit end is given.
	RentalDuration float64 `json:"rental_duration"`
	EndDate        string  `json:"end_date"`
	EndTime        string  `json:"end_time"`
}

// UpdateBookingRequest carries a status change, a payment-status change, or
// both; both apply atomically against the same booking read.
type UpdateBookingRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// BookingView is a booking plus the penalty currently due, computed on the
// fly so manager and customer views always agree with settlement.
type BookingView struct {
	domain.Booking
	PenaltyDue float64 `json:"penalty_due"`
}
