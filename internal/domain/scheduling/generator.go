package scheduling

import (
	"slices"
	"time"
)

// Generate splits a window into consecutive slots of SlotLength. The trailing
// slot is clipped to the window end. A window with End <= Start yields nothing.
func Generate(w TimeWindow) []Slot {
	if w.Validate() != nil {
		return []Slot{}
	}

	total := int((w.Duration() + SlotLength - 1) / SlotLength)
	slots := make([]Slot, 0, total)
	for ordinal := range total {
		start := w.Start.Add(time.Duration(ordinal) * SlotLength)
		end := start.Add(SlotLength)
		if end.After(w.End) {
			end = w.End
		}
		slots = append(slots, Slot{
			ID:       SlotID(w.ID, ordinal),
			WindowID: w.ID,
			OwnerID:  w.OwnerID,
			Ordinal:  ordinal,
			Start:    start,
			End:      end,
			State:    StateFree,
		})
	}
	return slots
}

// GenerateMany concatenates per-window output. Cross-window order is not
// defined; use SortByStart when it matters.
func GenerateMany(windows []TimeWindow) []Slot {
	var slots []Slot
	for _, w := range windows {
		slots = append(slots, Generate(w)...)
	}
	return slots
}

// SortByStart returns a sorted copy; ties break on window ID then ordinal.
func SortByStart(slots []Slot) []Slot {
	sorted := slices.Clone(slots)
	slices.SortStableFunc(sorted, compareSlots)
	return sorted
}

func compareSlots(a, b Slot) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	if c := compareIDs(a.WindowID, b.WindowID); c != 0 {
		return c
	}
	return a.Ordinal - b.Ordinal
}
