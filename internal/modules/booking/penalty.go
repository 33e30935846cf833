package booking

import (
	"math"
	"time"

	"equiprent/internal/domain"
)

const dayMs = int64(24 * time.Hour / time.Millisecond)

// ceilDaysMs rounds a span in milliseconds up to whole days. Integer math so
// exact multiples of a day never wobble across the boundary.
func ceilDaysMs(ms int64) int64 {
	if ms <= 0 {
		return 0
	}
	return (ms + dayMs - 1) / dayMs
}

// billingDaysForHours converts an hours-mode duration into billable days:
// any fraction of a day rounds up, floored at one day.
func billingDaysForHours(hours float64) int64 {
	days := int64(math.Ceil(hours / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// hoursDuration converts fractional hours into a time.Duration at 1-minute
// resolution.
func hoursDuration(hours float64) time.Duration {
	return time.Duration(math.Round(hours*60)) * time.Minute
}

// expectedEnd is the agreed return time: the stored end date when present,
// otherwise derived from the start and duration by the same rule used at
// creation.
func expectedEnd(b *domain.Booking) time.Time {
	if b.EndDate != nil {
		return *b.EndDate
	}
	if b.StartDate.IsZero() {
		return time.Time{}
	}
	if b.RentalType == domain.RentalHours {
		return b.StartDate.Add(hoursDuration(b.RentalDuration))
	}
	return b.StartDate.Add(time.Duration(int64(b.RentalDuration)) * 24 * time.Hour)
}

// ComputePenalty returns the late-return penalty due on a booking at the
// given instant. Deterministic given its inputs: the same function backs
// manager views, customer views, and settlement.
func ComputePenalty(b *domain.Booking, now time.Time) float64 {
	if b.PenaltyPerDay <= 0 {
		return 0
	}

	expected := expectedEnd(b)
	if expected.IsZero() {
		return 0
	}

	var actual time.Time
	switch {
	case b.ReturnedAt != nil:
		actual = *b.ReturnedAt
	case b.Status == domain.BookingRented:
		actual = now
	default:
		// Not yet active or returnable, nothing due.
		return 0
	}

	if !actual.After(expected) {
		return 0
	}

	lateDays := ceilDaysMs(actual.Sub(expected).Milliseconds())
	return float64(lateDays) * b.PenaltyPerDay
}
