package scheduling

import "github.com/google/uuid"

// SlotIndex looks slots up by parent window and ordinal.
type SlotIndex struct {
	slots []Slot
	byRef map[SlotRef]int
}

func NewSlotIndex(slots []Slot) *SlotIndex {
	idx := &SlotIndex{
		slots: slots,
		byRef: make(map[SlotRef]int, len(slots)),
	}
	for i, s := range slots {
		idx.byRef[s.Ref()] = i
	}
	return idx
}

func (idx *SlotIndex) Lookup(ref SlotRef) (Slot, bool) {
	i, ok := idx.byRef[ref]
	if !ok {
		return Slot{}, false
	}
	return idx.slots[i], true
}

func (idx *SlotIndex) ForWindow(windowID uuid.UUID) []Slot {
	var out []Slot
	for _, s := range idx.slots {
		if s.WindowID == windowID {
			out = append(out, s)
		}
	}
	return out
}

func (idx *SlotIndex) Slots() []Slot {
	return idx.slots
}

func (idx *SlotIndex) Len() int {
	return len(idx.slots)
}

// ResolveSlot finds the slot at ordinal inside w. Cancelled windows and
// out-of-range ordinals resolve to ErrSlotNotFound.
func ResolveSlot(w TimeWindow, ordinal int) (Slot, error) {
	if !w.IsActive() {
		return Slot{}, ErrSlotNotFound
	}
	slot, ok := NewSlotIndex(Generate(w)).Lookup(SlotRef{WindowID: w.ID, Ordinal: ordinal})
	if !ok {
		return Slot{}, ErrSlotNotFound
	}
	return slot, nil
}
