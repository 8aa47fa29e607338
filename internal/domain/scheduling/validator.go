package scheduling

import "time"

// DefaultMinLeadTime is used when no lead time is configured.
const DefaultMinLeadTime = time.Hour

type ValidationResult struct {
	Valid  bool
	Errors []ErrorKind
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Kinds: r.Errors}
}

func (r ValidationResult) Has(kind ErrorKind) bool {
	for _, k := range r.Errors {
		if k == kind {
			return true
		}
	}
	return false
}

// Validate checks booking eligibility. All rules run; failures accumulate.
// A start exactly at now+minLeadTime does not meet the lead time.
func Validate(slot Slot, now time.Time, minLeadTime time.Duration) ValidationResult {
	var kinds []ErrorKind
	if slot.IsBooked() {
		kinds = append(kinds, KindAlreadyBooked)
	}
	if !slot.Start.After(now) {
		kinds = append(kinds, KindSlotInPast)
	}
	if !slot.MeetsLeadTime(now, minLeadTime) {
		kinds = append(kinds, KindInsufficientLeadTime)
	}
	return ValidationResult{Valid: len(kinds) == 0, Errors: kinds}
}
