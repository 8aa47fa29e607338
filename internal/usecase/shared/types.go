package shared

import (
	"context"
	"time"

	"tutor-scheduling/internal/domain/scheduling"

	"github.com/google/uuid"
)

// WindowFilter narrows ListWindows. Empty fields do not filter.
// From/To select windows overlapping [From, To).
type WindowFilter struct {
	WindowIDs        []uuid.UUID
	OwnerIDs         []uuid.UUID
	Subject          *string
	From             *time.Time
	To               *time.Time
	IncludeCancelled bool
}

type WindowSource interface {
	ListWindows(ctx context.Context, filter WindowFilter) ([]scheduling.TimeWindow, error)
	// FindWindow fails with infra.KindNotFound for an unknown id.
	FindWindow(ctx context.Context, id uuid.UUID) (*scheduling.TimeWindow, error)
}

type BookingLookup interface {
	// ListBookings returns the active bookings of the given windows.
	ListBookings(ctx context.Context, windowIDs []uuid.UUID) ([]scheduling.Booking, error)
	// FindBooking returns nil when the slot has no active booking.
	FindBooking(ctx context.Context, windowID uuid.UUID, ordinal int) (*scheduling.Booking, error)
}

type SchedulingPolicy struct {
	Location    *time.Location
	MinLeadTime time.Duration
}

func (p SchedulingPolicy) Loc() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
