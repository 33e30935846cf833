package stats

import (
	"context"

	"equiprent/internal/domain"
)

type EquipmentReader interface {
	List(ctx context.Context, onlyAvailable bool) ([]domain.Equipment, error)
}

type BookingReader interface {
	List(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
}

type ManagerStats struct {
	EquipmentCount   int            `json:"equipment_count"`
	AvailableCount   int            `json:"available_count"`
	Bookings         map[string]int `json:"bookings"`
	TotalBookings    int            `json:"total_bookings"`
	DamagedCount     int            `json:"damaged_count"`
	UnavailableCount int            `json:"unavailable_count"`
}

type AdminStats struct {
	EquipmentCount  int            `json:"equipment_count"`
	AvailableCount  int            `json:"available_count"`
	BookedCount     int            `json:"booked_count"`
	Bookings        map[string]int `json:"bookings"`
	TotalBookings   int            `json:"total_bookings"`
	TotalRevenue    float64        `json:"total_revenue"`
	PendingPayments int            `json:"pending_payments"`
}

type Service struct {
	equipment EquipmentReader
	bookings  BookingReader
}

func NewService(equipment EquipmentReader, bookings BookingReader) *Service {
	return &Service{equipment: equipment, bookings: bookings}
}

func (s *Service) ManagerStats(ctx context.Context) (*ManagerStats, error) {
	equipment, bookings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	agg := aggregate(equipment, bookings)
	return &ManagerStats{
		EquipmentCount:   agg.equipmentCount,
		AvailableCount:   agg.availableCount,
		Bookings:         agg.byStatus,
		TotalBookings:    agg.totalBookings,
		DamagedCount:     agg.damagedCount,
		UnavailableCount: agg.unavailableCount,
	}, nil
}

func (s *Service) AdminStats(ctx context.Context) (*AdminStats, error) {
	equipment, bookings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	agg := aggregate(equipment, bookings)
	return &AdminStats{
		EquipmentCount:  agg.equipmentCount,
		AvailableCount:  agg.availableCount,
		BookedCount:     agg.equipmentCount - agg.availableCount,
		Bookings:        agg.byStatus,
		TotalBookings:   agg.totalBookings,
		TotalRevenue:    agg.totalRevenue,
		PendingPayments: agg.pendingPayments,
	}, nil
}

func (s *Service) load(ctx context.Context) ([]domain.Equipment, []domain.Booking, error) {
	equipment, err := s.equipment.List(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := s.bookings.List(ctx, "")
	if err != nil {
		return nil, nil, err
	}
	return equipment, bookings, nil
}

type aggregates struct {
	equipmentCount   int
	availableCount   int
	damagedCount     int
	unavailableCount int
	byStatus         map[string]int
	totalBookings    int
	totalRevenue     float64
	pendingPayments  int
}

// aggregate derives every dashboard figure from the current collections in
// one pass each; no caching, no mutation.
func aggregate(equipment []domain.Equipment, bookings []domain.Booking) aggregates {
	agg := aggregates{
		byStatus: map[string]int{
			string(domain.BookingBooked):   0,
			string(domain.BookingRented):   0,
			string(domain.BookingReturned): 0,
		},
	}

	agg.equipmentCount = len(equipment)
	for _, e := range equipment {
		if e.IsAvailable {
			agg.availableCount++
		}
		switch e.Condition {
		case domain.ConditionDamaged:
			agg.damagedCount++
		case domain.ConditionUnavailable:
			agg.unavailableCount++
		}
	}

	agg.totalBookings = len(bookings)
	for _, b := range bookings {
		agg.byStatus[string(b.Status)]++
		switch b.PaymentStatus {
		case domain.PaymentPaid:
			agg.totalRevenue += b.TotalAmount
		default:
			agg.pendingPayments++
		}
	}

	return agg
}
