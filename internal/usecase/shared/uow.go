package shared

import (
	"context"
	"time"

	"tutor-scheduling/internal/domain/scheduling"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Windows() WindowTxRepository
	Bookings() BookingRepository
}

type WindowTxRepository interface {
	// LockByID holds a share lock on the window row until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*scheduling.TimeWindow, error)
}

type ReserveParams struct {
	WindowID   uuid.UUID
	Ordinal    int
	ReservedBy uuid.UUID
	SessionRef string
	ReservedAt time.Time
}

type BookingRepository interface {
	// Reserve inserts an active booking unless one already holds the slot,
	// in which case it fails with infra.KindConflict.
	Reserve(ctx context.Context, params ReserveParams) (*scheduling.Booking, error)
	// Cancel reports whether an active booking was flipped to cancelled.
	Cancel(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error)
	FindActive(ctx context.Context, windowID uuid.UUID, ordinal int) (*scheduling.Booking, error)
}
