package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"equiprent/internal/database"
	"equiprent/internal/domain"
)

func testDB(t *testing.T) (*BookingRepository, *EquipmentRepository, *UserRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))

	return NewBookingRepository(db), NewEquipmentRepository(db), NewUserRepository(db)
}

func seedFixtures(t *testing.T, equipment *EquipmentRepository, users *UserRepository) (*domain.Equipment, *domain.User) {
	t.Helper()
	ctx := context.Background()

	u := &domain.User{Name: "Renter", Email: "renter@example.com", PasswordHash: "x", Role: domain.RoleUser}
	assert.NoError(t, users.Create(ctx, u))

	e := &domain.Equipment{Name: "Jackhammer", RentalPrice: 400, IsAvailable: true, Condition: domain.ConditionGood}
	assert.NoError(t, equipment.Create(ctx, e))

	return e, u
}

func newBookingFor(e *domain.Equipment, u *domain.User) *domain.Booking {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	return &domain.Booking{
		UserID:         u.ID,
		EquipmentID:    e.ID,
		RentalType:     domain.RentalDays,
		StartDate:      start,
		EndDate:        &end,
		RentalDuration: 2,
		TotalAmount:    800,
		Status:         domain.BookingBooked,
		PaymentStatus:  domain.PaymentPending,
	}
}

func TestCreateWithHold(t *testing.T) {
	bookings, equipment, users := testDB(t)
	e, u := seedFixtures(t, equipment, users)
	ctx := context.Background()

	b := newBookingFor(e, u)
	assert.NoError(t, bookings.CreateWithHold(ctx, b))
	assert.NotZero(t, b.ID)

	held, err := equipment.GetByID(ctx, e.ID)
	assert.NoError(t, err)
	assert.False(t, held.IsAvailable, "hold flips availability")

	// A second booking against the held item must lose.
	err = bookings.CreateWithHold(ctx, newBookingFor(e, u))
	assert.ErrorIs(t, err, ErrEquipmentHeld)
}

func TestGetByID_PreloadsRelations(t *testing.T) {
	bookings, equipment, users := testDB(t)
	e, u := seedFixtures(t, equipment, users)
	ctx := context.Background()

	b := newBookingFor(e, u)
	assert.NoError(t, bookings.CreateWithHold(ctx, b))

	got, err := bookings.GetByID(ctx, b.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.User)
	assert.Equal(t, "renter@example.com", got.User.Email)
	assert.NotNil(t, got.Equipment)
	assert.Equal(t, "Jackhammer", got.Equipment.Name)
}

func TestSaveWithAvailability(t *testing.T) {
	bookings, equipment, users := testDB(t)
	e, u := seedFixtures(t, equipment, users)
	ctx := context.Background()

	b := newBookingFor(e, u)
	assert.NoError(t, bookings.CreateWithHold(ctx, b))

	loaded, err := bookings.GetByID(ctx, b.ID)
	assert.NoError(t, err)

	now := time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)
	loaded.Status = domain.BookingReturned
	loaded.ReturnedAt = &now
	assert.NoError(t, bookings.SaveWithAvailability(ctx, loaded, true))

	released, err := equipment.GetByID(ctx, e.ID)
	assert.NoError(t, err)
	assert.True(t, released.IsAvailable)

	reloaded, err := bookings.GetByID(ctx, b.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingReturned, reloaded.Status)
	assert.NotNil(t, reloaded.ReturnedAt)
}

func TestListByUser_FiltersAndOrders(t *testing.T) {
	bookings, equipment, users := testDB(t)
	e, u := seedFixtures(t, equipment, users)
	ctx := context.Background()

	other := &domain.User{Name: "Other", Email: "other@example.com", PasswordHash: "x", Role: domain.RoleUser}
	assert.NoError(t, users.Create(ctx, other))

	first := newBookingFor(e, u)
	assert.NoError(t, bookings.CreateWithHold(ctx, first))

	// Return it so the equipment frees up for the next booking.
	loaded, err := bookings.GetByID(ctx, first.ID)
	assert.NoError(t, err)
	returnedAt := time.Now().UTC()
	loaded.Status = domain.BookingReturned
	loaded.ReturnedAt = &returnedAt
	assert.NoError(t, bookings.SaveWithAvailability(ctx, loaded, true))

	second := newBookingFor(e, other)
	assert.NoError(t, bookings.CreateWithHold(ctx, second))

	mine, err := bookings.ListByUser(ctx, u.ID, "")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	returned, err := bookings.ListByUser(ctx, u.ID, domain.BookingReturned)
	assert.NoError(t, err)
	assert.Len(t, returned, 1)

	booked, err := bookings.ListByUser(ctx, u.ID, domain.BookingBooked)
	assert.NoError(t, err)
	assert.Empty(t, booked)

	all, err := bookings.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEquipmentUpdate_IgnoresAvailability(t *testing.T) {
	_, equipment, users := testDB(t)
	e, _ := seedFixtures(t, equipment, users)
	ctx := context.Background()

	assert.NoError(t, equipment.SetAvailability(ctx, e.ID, false))

	e.Name = "Jackhammer XL"
	e.IsAvailable = true // must not leak through a catalog edit
	assert.NoError(t, equipment.Update(ctx, e))

	got, err := equipment.GetByID(ctx, e.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Jackhammer XL", got.Name)
	assert.False(t, got.IsAvailable)
}
