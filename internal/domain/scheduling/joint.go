package scheduling

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type JointMode string

const (
	// JointModeAny is the union of every tutor's available slots.
	JointModeAny JointMode = "any"
	// JointModeAll keeps only start times every tutor can take.
	JointModeAll JointMode = "all"
)

func (m JointMode) IsValid() bool {
	return m == JointModeAny || m == JointModeAll
}

// JointSlot is a start instant every requested owner has free.
type JointSlot struct {
	Start time.Time
	End   time.Time
	Slots []Slot
}

// CommonSlots finds start instants at which each owner has an available slot.
// End is the earliest end among the chosen slots.
func CommonSlots(slots []Slot, owners []uuid.UUID) []JointSlot {
	if len(owners) == 0 {
		return nil
	}

	type bucket struct {
		start   time.Time
		byOwner map[uuid.UUID]Slot
	}
	buckets := make(map[int64]*bucket)
	for _, s := range SortByStart(slots) {
		key := s.Start.UnixNano()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{start: s.Start, byOwner: make(map[uuid.UUID]Slot)}
			buckets[key] = b
		}
		if _, taken := b.byOwner[s.OwnerID]; !taken {
			b.byOwner[s.OwnerID] = s
		}
	}

	var out []JointSlot
	for _, b := range buckets {
		joint := JointSlot{Start: b.start}
		complete := true
		for _, owner := range owners {
			s, ok := b.byOwner[owner]
			if !ok {
				complete = false
				break
			}
			if joint.End.IsZero() || s.End.Before(joint.End) {
				joint.End = s.End
			}
			joint.Slots = append(joint.Slots, s)
		}
		if complete {
			out = append(out, joint)
		}
	}

	slices.SortFunc(out, func(a, b JointSlot) int {
		return a.Start.Compare(b.Start)
	})
	return out
}
