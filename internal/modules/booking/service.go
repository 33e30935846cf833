package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"equiprent/internal/domain"
	"equiprent/internal/metrics"
	"equiprent/internal/repository"
)

// revertWindow is the grace period during which a status or payment
// transition may be undone.
const revertWindow = 60 * time.Second

type Service struct {
	bookings  BookingRepository
	equipment EquipmentReader
	feed      EventPublisher

	now func() time.Time
}

func NewService(bookings BookingRepository, equipment EquipmentReader, feed EventPublisher) *Service {
	return &Service{
		bookings:  bookings,
		equipment: equipment,
		feed:      feed,
		now:       time.Now,
	}
}

func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if req.EquipmentID == 0 {
		return nil, ErrValidation
	}

	rentalType := domain.RentalType(req.RentalType)
	if !rentalType.Valid() {
		return nil, ErrValidation
	}

	start, err := combineDateTime(req.StartDate, req.StartTime)
	if err != nil {
		return nil, ErrValidation
	}

	var (
		end      time.Time
		days     int64
		duration float64
	)
	switch rentalType {
	case domain.RentalHours:
		if req.RentalDuration <= 0 {
			return nil, ErrValidation
		}
		duration = req.RentalDuration
		end = start.Add(hoursDuration(duration))
		days = billingDaysForHours(duration)

	case domain.RentalDays:
		if req.EndDate != "" {
			end, err = combineDateTime(req.EndDate, req.EndTime)
			if err != nil {
				return nil, ErrValidation
			}
			days = ceilDaysMs(end.Sub(start).Milliseconds())
			if days < 1 {
				return nil, ErrValidation
			}
		} else {
			days = int64(req.RentalDuration)
			if days < 1 {
				days = 1
			}
			end = start.Add(time.Duration(days) * 24 * time.Hour)
		}
		duration = float64(days)
	}

	eq, err := s.equipment.GetByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	if !eq.IsAvailable {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		UserID:         userID,
		EquipmentID:    eq.ID,
		RentalType:     rentalType,
		StartDate:      start,
		EndDate:        &end,
		RentalDuration: duration,
		TotalAmount:    eq.RentalPrice * float64(days),
		PenaltyPerDay:  eq.PenaltyPerDay,
		Status:         domain.BookingBooked,
		PaymentStatus:  domain.PaymentPending,
	}

	if err := s.bookings.CreateWithHold(ctx, b); err != nil {
		if errors.Is(err, repository.ErrEquipmentHeld) || isUniqueViolation(err) {
			return nil, ErrNotAvailable
		}
		metrics.OperationErrorsTotal.WithLabelValues("create_booking").Inc()
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()

	created, err := s.bookings.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	s.publish("booking.created", created)
	return created, nil
}

// UpdateBooking applies a status transition, a payment transition, or both
// against a single read of the booking, then persists the result together
// with the derived equipment availability.
func (s *Service) UpdateBooking(ctx context.Context, bookingID int64, req UpdateBookingRequest) (*domain.Booking, error) {
	if req.Status == "" && req.PaymentStatus == "" {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	var availability *bool
	if req.Status != "" {
		availability, err = s.applyStatus(b, domain.BookingStatus(req.Status))
		if err != nil {
			return nil, err
		}
	}
	if req.PaymentStatus != "" {
		if err := s.applyPayment(b, domain.PaymentStatus(req.PaymentStatus)); err != nil {
			return nil, err
		}
	}

	if availability != nil {
		err = s.bookings.SaveWithAvailability(ctx, b, *availability)
	} else {
		err = s.bookings.Save(ctx, b)
	}
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_booking").Inc()
		return nil, err
	}

	s.publish("booking.updated", b)
	return b, nil
}

// applyStatus mutates the booking in place and returns the equipment
// availability implied by the new status, or nil when unchanged.
func (s *Service) applyStatus(b *domain.Booking, target domain.BookingStatus) (*bool, error) {
	if !target.Valid() {
		return nil, ErrValidation
	}
	if target == b.Status {
		return nil, ErrRedundantStatus
	}

	now := s.now()

	if b.Status == domain.BookingReturned {
		// Reverting a return is allowed only inside the grace window.
		if b.ReturnedAt == nil || now.Sub(*b.ReturnedAt) > revertWindow {
			return nil, ErrRevertWindowClosed
		}
		b.Status = target
		b.ReturnedAt = nil
		return boolPtr(false), nil
	}

	switch {
	case b.Status == domain.BookingBooked && target == domain.BookingRented:
		b.Status = target
		return boolPtr(false), nil

	case target == domain.BookingReturned:
		// Rented→Returned or the direct Booked→Returned.
		b.Status = target
		b.ReturnedAt = &now
		s.assessPenalty(b, now)
		metrics.ReturnsRecordedTotal.Inc()
		return boolPtr(true), nil

	default:
		return nil, ErrInvalidTransition
	}
}

// assessPenalty records the late-return penalty exactly once. Retried
// Returned transitions must not double-charge.
func (s *Service) assessPenalty(b *domain.Booking, now time.Time) {
	if b.PenaltyAmount > 0 {
		return
	}
	penalty := ComputePenalty(b, now)
	if penalty <= 0 {
		return
	}

	if b.PaymentStatus == domain.PaymentPaid {
		// Base payment already settled, bill the penalty separately.
		b.OutstandingAmount += penalty
	} else {
		// Fold into the single pending payment.
		b.TotalAmount += penalty
	}
	b.PenaltyAmount = penalty
	metrics.PenaltiesAssessedTotal.Inc()
}

func (s *Service) applyPayment(b *domain.Booking, target domain.PaymentStatus) error {
	if !target.Valid() {
		return ErrValidation
	}
	if target == b.PaymentStatus {
		return ErrRedundantStatus
	}

	now := s.now()
	if target == domain.PaymentPaid {
		b.PaymentStatus = domain.PaymentPaid
		b.PaymentAt = &now
		return nil
	}

	// Paid→Pending is a revert, bounded by the same grace window.
	if b.PaymentAt == nil || now.Sub(*b.PaymentAt) > revertWindow {
		return ErrRevertWindowClosed
	}
	b.PaymentStatus = domain.PaymentPending
	b.PaymentAt = nil
	return nil
}

// SettlePenalty collects a penalty that was discovered after the base
// payment had already settled.
func (s *Service) SettlePenalty(ctx context.Context, bookingID, actorID int64, actorRole domain.Role) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.UserID != actorID && !actorRole.AtLeast(domain.RoleEquipmentManager) {
		return nil, ErrForbidden
	}
	if b.OutstandingAmount <= 0 {
		return nil, ErrNoOutstanding
	}

	now := s.now()
	b.OutstandingAmount = 0
	b.PenaltyPaidAt = &now

	if err := s.bookings.Save(ctx, b); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("settle_penalty").Inc()
		return nil, err
	}

	s.publish("booking.penalty_settled", b)
	return b, nil
}

func (s *Service) ListUserBookings(ctx context.Context, userID int64, status string) ([]BookingView, error) {
	st, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByUser(ctx, userID, st)
	if err != nil {
		return nil, err
	}
	return s.withPenalties(bookings), nil
}

func (s *Service) ListBookings(ctx context.Context, status string) ([]BookingView, error) {
	st, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.List(ctx, st)
	if err != nil {
		return nil, err
	}
	return s.withPenalties(bookings), nil
}

func (s *Service) withPenalties(bookings []domain.Booking) []BookingView {
	now := s.now()
	out := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		out = append(out, BookingView{
			Booking:    bookings[i],
			PenaltyDue: ComputePenalty(&bookings[i], now),
		})
	}
	return out
}

func (s *Service) publish(event string, b *domain.Booking) {
	if s.feed != nil {
		s.feed.PublishBookingEvent(event, b)
	}
}

func parseStatusFilter(status string) (domain.BookingStatus, error) {
	if status == "" {
		return "", nil
	}
	st := domain.BookingStatus(status)
	if !st.Valid() {
		return "", ErrValidation
	}
	return st, nil
}

// combineDateTime merges a calendar date with an optional time of day,
// missing components defaulting to zero.
func combineDateTime(dateStr, timeStr string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, err
	}
	if timeStr == "" {
		return date, nil
	}
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func boolPtr(v bool) *bool { return &v }
