package scheduling

import "time"

// ContiguityTolerance is the largest gap or overlap between two slots that
// still counts as back-to-back.
const ContiguityTolerance = 60 * time.Second

// FindRuns returns every window of count contiguous slots. Overlapping runs
// are all reported in start order. Feed it available slots only.
func FindRuns(slots []Slot, count int) [][]Slot {
	if count <= 0 || count > len(slots) {
		return nil
	}

	sorted := SortByStart(slots)
	var runs [][]Slot
	for i := 0; i+count <= len(sorted); i++ {
		candidate := sorted[i : i+count]
		if isContiguous(candidate) {
			run := make([]Slot, count)
			copy(run, candidate)
			runs = append(runs, run)
		}
	}
	return runs
}

func isContiguous(run []Slot) bool {
	for i := 1; i < len(run); i++ {
		if !Adjacent(run[i-1], run[i]) {
			return false
		}
	}
	return true
}

// Adjacent reports whether next begins where prev ends, within ContiguityTolerance.
func Adjacent(prev, next Slot) bool {
	gap := next.Start.Sub(prev.End)
	if gap < 0 {
		gap = -gap
	}
	return gap <= ContiguityTolerance
}
