package scheduling

import (
	"slices"
	"time"
)

// DateKey is a local calendar date in 2006-01-02 form.
type DateKey string

const dateKeyLayout = "2006-01-02"

func DateKeyOf(t time.Time, loc *time.Location) DateKey {
	return DateKey(t.In(loc).Format(dateKeyLayout))
}

func (k DateKey) String() string {
	return string(k)
}

// AvailableSlots keeps free slots that start strictly after now.
func AvailableSlots(slots []Slot, now time.Time) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.IsFree() && s.Start.After(now) {
			out = append(out, s)
		}
	}
	return out
}

// BookableSlots narrows AvailableSlots to slots that also satisfy the lead time.
func BookableSlots(slots []Slot, now time.Time, lead time.Duration) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range AvailableSlots(slots, now) {
		if s.MeetsLeadTime(now, lead) {
			out = append(out, s)
		}
	}
	return out
}

// GroupByDate buckets slots by the calendar date of their start in loc.
// A nil loc means UTC.
func GroupByDate(slots []Slot, loc *time.Location) map[DateKey][]Slot {
	if loc == nil {
		loc = time.UTC
	}
	groups := make(map[DateKey][]Slot)
	for _, s := range SortByStart(slots) {
		key := DateKeyOf(s.Start, loc)
		groups[key] = append(groups[key], s)
	}
	return groups
}

func SortedDateKeys(groups map[DateKey][]Slot) []DateKey {
	keys := make([]DateKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
