package scheduling

import (
	"time"

	"github.com/google/uuid"
)

type WindowStatus string

const (
	WindowStatusActive    WindowStatus = "active"
	WindowStatusCancelled WindowStatus = "cancelled"
)

func (s WindowStatus) String() string {
	return string(s)
}

func (s WindowStatus) IsValid() bool {
	switch s {
	case WindowStatusActive, WindowStatusCancelled:
		return true
	default:
		return false
	}
}

// TimeWindow is a tutor's declared availability over [Start, End).
// RecurrenceRule is carried as opaque metadata and never expanded here.
type TimeWindow struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	OwnerContact   string
	Subject        *string
	Start          time.Time
	End            time.Time
	RecurrenceRule string
	Status         WindowStatus
}

func (w TimeWindow) Validate() error {
	if !w.End.After(w.Start) {
		return ErrInvalidWindow
	}
	return nil
}

func (w TimeWindow) IsActive() bool {
	return w.Status == WindowStatusActive
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
