package booking

import (
	"context"

	"equiprent/internal/domain"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	CreateWithHold(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, status domain.BookingStatus) ([]domain.Booking, error)
	List(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	Save(ctx context.Context, b *domain.Booking) error
	SaveWithAvailability(ctx context.Context, b *domain.Booking, available bool) error
}

// EquipmentReader is the read-only slice of the equipment repository used
// when creating bookings.
type EquipmentReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// EventPublisher fans booking lifecycle events out to connected dashboards.
type EventPublisher interface {
	PublishBookingEvent(event string, b *domain.Booking)
}
