package domain

import "time"

type BookingStatus string

const (
	BookingBooked   BookingStatus = "Booked"
	BookingRented   BookingStatus = "Rented"
	BookingReturned BookingStatus = "Returned"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingBooked, BookingRented, BookingReturned:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

type RentalType string

const (
	RentalHours RentalType = "hours"
	RentalDays  RentalType = "days"
)

func (t RentalType) Valid() bool {
	return t == RentalHours || t == RentalDays
}

type Booking struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	UserID      int64      `json:"user_id" gorm:"index" validate:"required"`
	EquipmentID int64      `json:"equipment_id" gorm:"index" validate:"required"`
	RentalType  RentalType `json:"rental_type" gorm:"size:8;default:'days'"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	// Fractional hours in hours mode, whole days in days mode.
	RentalDuration float64 `json:"rental_duration"`
	TotalAmount    float64 `json:"total_amount"`
	// Snapshot of the equipment rate at creation; immutable afterwards even if
	// the equipment record is edited.
	PenaltyPerDay float64       `json:"penalty_per_day"`
	Status        BookingStatus `json:"status" gorm:"size:16;default:'Booked'"`
	ReturnedAt    *time.Time    `json:"returned_at,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"size:16;default:'Pending'"`
	PaymentAt     *time.Time    `json:"payment_at,omitempty"`
	// Penalty recorded at return time, kept for auditability.
	PenaltyAmount float64 `json:"penalty_amount"`
	// Penalty billed separately because the base payment had already settled.
	OutstandingAmount float64    `json:"outstanding_amount"`
	PenaltyPaidAt     *time.Time `json:"penalty_paid_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
}

// Active reports whether the booking still occupies its equipment.
func (b *Booking) Active() bool {
	return b.Status != BookingReturned
}
