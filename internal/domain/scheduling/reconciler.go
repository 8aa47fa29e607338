package scheduling

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// IntegrityConflict records more than one active booking on a single slot.
type IntegrityConflict struct {
	Ref      SlotRef
	Bookings []Booking
}

type ReconcileResult struct {
	Slots     []Slot
	Conflicts []IntegrityConflict
	// Orphans are active bookings whose key matches none of the slots.
	Orphans []Booking
}

func (r ReconcileResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Reconcile overlays active bookings onto slots. Cancelled bookings are
// ignored. Existing state on the input slots is discarded first.
func Reconcile(slots []Slot, bookings []Booking) ReconcileResult {
	active := make(map[SlotRef][]Booking)
	for _, b := range bookings {
		if b.IsActive() {
			active[b.Ref()] = append(active[b.Ref()], b)
		}
	}

	result := ReconcileResult{Slots: make([]Slot, len(slots))}
	seen := make(map[SlotRef]bool, len(slots))
	for i, s := range slots {
		s = s.free()
		ref := s.Ref()
		seen[ref] = true

		matches := active[ref]
		switch {
		case len(matches) == 1:
			b := matches[0]
			bookedBy := b.ReservedBy
			sessionRef := b.SessionRef
			bookingID := b.ID
			s.State = StateBooked
			s.BookedBy = &bookedBy
			s.SessionRef = &sessionRef
			s.BookingID = &bookingID
		case len(matches) > 1:
			s.State = StateBooked
			s.Conflicted = true
			result.Conflicts = append(result.Conflicts, IntegrityConflict{
				Ref:      ref,
				Bookings: sortedBookings(matches),
			})
		}
		result.Slots[i] = s
	}

	for ref, matches := range active {
		if !seen[ref] {
			result.Orphans = append(result.Orphans, matches...)
		}
	}

	slices.SortFunc(result.Conflicts, func(a, b IntegrityConflict) int {
		return compareRefs(a.Ref, b.Ref)
	})
	result.Orphans = sortedBookings(result.Orphans)
	return result
}

func sortedBookings(bs []Booking) []Booking {
	out := slices.Clone(bs)
	slices.SortFunc(out, func(a, b Booking) int {
		if c := compareRefs(a.Ref(), b.Ref()); c != 0 {
			return c
		}
		if c := a.ReservedAt.Compare(b.ReservedAt); c != 0 {
			return c
		}
		return compareIDs(a.ID, b.ID)
	})
	return out
}

func compareRefs(a, b SlotRef) int {
	if c := compareIDs(a.WindowID, b.WindowID); c != 0 {
		return c
	}
	return a.Ordinal - b.Ordinal
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
