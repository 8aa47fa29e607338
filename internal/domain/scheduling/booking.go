package scheduling

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusReserved  BookingStatus = "reserved"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusReserved, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// Booking is a reservation fact correlated to a slot by (WindowID, Ordinal).
type Booking struct {
	ID          uuid.UUID
	WindowID    uuid.UUID
	Ordinal     int
	ReservedBy  uuid.UUID
	SessionRef  string
	Status      BookingStatus
	ReservedAt  time.Time
	CancelledAt *time.Time
}

func (b Booking) Ref() SlotRef {
	return SlotRef{WindowID: b.WindowID, Ordinal: b.Ordinal}
}

func (b Booking) IsActive() bool {
	return b.Status == BookingStatusReserved
}

// SameRequest reports whether the booking was made by the given party for the given session.
func (b Booking) SameRequest(reservedBy uuid.UUID, sessionRef string) bool {
	return b.ReservedBy == reservedBy && b.SessionRef == sessionRef
}
