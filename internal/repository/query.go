package repository

import (
	"time"

	"shareit-backend/internal/domain"
)

// BookingQuery is the store-level form of a booking state filter. Zero
// fields impose no constraint.
type BookingQuery struct {
	Status domain.BookingStatus
	// StartNotAfter keeps bookings with start <= t.
	StartNotAfter *time.Time
	// StartAfter keeps bookings with start > t.
	StartAfter *time.Time
	// EndAfter keeps bookings with end > t.
	EndAfter *time.Time
	// EndNotAfter keeps bookings with end <= t.
	EndNotAfter *time.Time
}

// Matches evaluates the query against a single booking. Stores that filter in
// memory use it; SQL stores translate the same fields into a WHERE clause.
func (q BookingQuery) Matches(b domain.Booking) bool {
	if q.Status != "" && b.Status != q.Status {
		return false
	}
	if q.StartNotAfter != nil && b.Start.After(*q.StartNotAfter) {
		return false
	}
	if q.StartAfter != nil && !b.Start.After(*q.StartAfter) {
		return false
	}
	if q.EndAfter != nil && !b.End.After(*q.EndAfter) {
		return false
	}
	if q.EndNotAfter != nil && b.End.After(*q.EndNotAfter) {
		return false
	}
	return true
}
