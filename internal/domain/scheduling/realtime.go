package scheduling

import (
	"context"

	"github.com/google/uuid"
)

// BookingFinder reads the active booking for one slot key from the
// authoritative store. It returns nil when the slot is free.
type BookingFinder interface {
	FindBooking(ctx context.Context, windowID uuid.UUID, ordinal int) (*Booking, error)
}

type AvailabilityReport struct {
	Available          bool
	ConflictingBooking *Booking
}

// CheckAndReport re-reads the booking state of ref right before a write.
// It narrows the race window but is not an atomicity guarantee.
func CheckAndReport(ctx context.Context, ref SlotRef, lookup BookingFinder) (AvailabilityReport, error) {
	b, err := lookup.FindBooking(ctx, ref.WindowID, ref.Ordinal)
	if err != nil {
		return AvailabilityReport{}, err
	}
	if b == nil || !b.IsActive() {
		return AvailabilityReport{Available: true}, nil
	}
	return AvailabilityReport{Available: false, ConflictingBooking: b}, nil
}
