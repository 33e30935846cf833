package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"equiprent/internal/domain"
)

type MockEquipmentReader struct {
	mock.Mock
}

func (m *MockEquipmentReader) List(ctx context.Context, onlyAvailable bool) ([]domain.Equipment, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) List(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func fixtureEquipment() []domain.Equipment {
	return []domain.Equipment{
		{ID: 1, IsAvailable: true, Condition: domain.ConditionGood},
		{ID: 2, IsAvailable: false, Condition: domain.ConditionGood},
		{ID: 3, IsAvailable: true, Condition: domain.ConditionDamaged},
		{ID: 4, IsAvailable: false, Condition: domain.ConditionUnavailable},
	}
}

func fixtureBookings() []domain.Booking {
	return []domain.Booking{
		{ID: 1, Status: domain.BookingBooked, PaymentStatus: domain.PaymentPending, TotalAmount: 500},
		{ID: 2, Status: domain.BookingRented, PaymentStatus: domain.PaymentPaid, TotalAmount: 1000},
		{ID: 3, Status: domain.BookingReturned, PaymentStatus: domain.PaymentPaid, TotalAmount: 1500},
		{ID: 4, Status: domain.BookingReturned, PaymentStatus: domain.PaymentPending, TotalAmount: 700},
	}
}

func TestManagerStats(t *testing.T) {
	mockEquipment := new(MockEquipmentReader)
	mockBookings := new(MockBookingReader)
	mockEquipment.On("List", mock.Anything, false).Return(fixtureEquipment(), nil)
	mockBookings.On("List", mock.Anything, domain.BookingStatus("")).Return(fixtureBookings(), nil)

	service := NewService(mockEquipment, mockBookings)

	got, err := service.ManagerStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4, got.EquipmentCount)
	assert.Equal(t, 2, got.AvailableCount)
	assert.Equal(t, 1, got.DamagedCount)
	assert.Equal(t, 1, got.UnavailableCount)
	assert.Equal(t, 4, got.TotalBookings)
	assert.Equal(t, map[string]int{"Booked": 1, "Rented": 1, "Returned": 2}, got.Bookings)
}

func TestAdminStats(t *testing.T) {
	mockEquipment := new(MockEquipmentReader)
	mockBookings := new(MockBookingReader)
	mockEquipment.On("List", mock.Anything, false).Return(fixtureEquipment(), nil)
	mockBookings.On("List", mock.Anything, domain.BookingStatus("")).Return(fixtureBookings(), nil)

	service := NewService(mockEquipment, mockBookings)

	got, err := service.AdminStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4, got.EquipmentCount)
	assert.Equal(t, 2, got.AvailableCount)
	assert.Equal(t, 2, got.BookedCount)
	assert.Equal(t, 2500.0, got.TotalRevenue, "only Paid bookings count as revenue")
	assert.Equal(t, 2, got.PendingPayments)
}

func TestStats_EmptyCollections(t *testing.T) {
	mockEquipment := new(MockEquipmentReader)
	mockBookings := new(MockBookingReader)
	mockEquipment.On("List", mock.Anything, false).Return([]domain.Equipment{}, nil)
	mockBookings.On("List", mock.Anything, domain.BookingStatus("")).Return([]domain.Booking{}, nil)

	service := NewService(mockEquipment, mockBookings)

	got, err := service.AdminStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, got.EquipmentCount)
	assert.Equal(t, 0.0, got.TotalRevenue)
	// Every status key is present even with no bookings.
	assert.Equal(t, map[string]int{"Booked": 0, "Rented": 0, "Returned": 0}, got.Bookings)
}

func TestStats_LoadError(t *testing.T) {
	mockEquipment := new(MockEquipmentReader)
	mockBookings := new(MockBookingReader)
	mockEquipment.On("List", mock.Anything, false).Return(nil, errors.New("db down"))

	service := NewService(mockEquipment, mockBookings)

	_, err := service.ManagerStats(context.Background())
	assert.Error(t, err)
}
