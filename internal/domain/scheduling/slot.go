package scheduling

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// SlotLength is the nominal length of a generated slot. The last slot of a
// window may be shorter.
const SlotLength = time.Hour

type BookingState string

const (
	StateFree   BookingState = "free"
	StateBooked BookingState = "booked"
)

func (s BookingState) String() string {
	return string(s)
}

// SlotRef is the correlation key between a virtual slot and its bookings.
type SlotRef struct {
	WindowID uuid.UUID
	Ordinal  int
}

type Slot struct {
	ID       uuid.UUID
	WindowID uuid.UUID
	OwnerID  uuid.UUID
	Ordinal  int
	Start    time.Time
	End      time.Time

	State      BookingState
	BookedBy   *uuid.UUID
	SessionRef *string
	BookingID  *uuid.UUID
	// Conflicted is set when more than one active booking shares the slot.
	Conflicted bool
}

// SlotID derives the identity of a slot from its window and position.
func SlotID(windowID uuid.UUID, ordinal int) uuid.UUID {
	return uuid.NewSHA1(windowID, []byte("slot:"+strconv.Itoa(ordinal)))
}

func (s Slot) Ref() SlotRef {
	return SlotRef{WindowID: s.WindowID, Ordinal: s.Ordinal}
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

func (s Slot) DurationHours() float64 {
	return s.Duration().Hours()
}

func (s Slot) IsBooked() bool {
	return s.State == StateBooked
}

func (s Slot) IsFree() bool {
	return s.State == StateFree
}

// MeetsLeadTime reports whether the slot starts strictly after now+lead.
func (s Slot) MeetsLeadTime(now time.Time, lead time.Duration) bool {
	return s.Start.After(now.Add(lead))
}

func (s Slot) free() Slot {
	s.State = StateFree
	s.BookedBy = nil
	s.SessionRef = nil
	s.BookingID = nil
	s.Conflicted = false
	return s
}
