package scheduling

import (
	"errors"
	"strings"
)

var (
	ErrInvalidWindow         = errors.New("invalid window: end must be after start")
	ErrSlotNotFound          = errors.New("slot not found")
	ErrAlreadyBooked         = errors.New("slot already booked")
	ErrSlotInPast            = errors.New("slot start has already passed")
	ErrInsufficientLeadTime  = errors.New("insufficient lead time")
	ErrDataIntegrityConflict = errors.New("multiple active bookings for one slot")
)

type ErrorKind string

const (
	KindInvalidWindow         ErrorKind = "INVALID_WINDOW"
	KindSlotNotFound          ErrorKind = "SLOT_NOT_FOUND"
	KindAlreadyBooked         ErrorKind = "ALREADY_BOOKED"
	KindSlotInPast            ErrorKind = "SLOT_IN_PAST"
	KindInsufficientLeadTime  ErrorKind = "INSUFFICIENT_LEAD_TIME"
	KindDataIntegrityConflict ErrorKind = "DATA_INTEGRITY_CONFLICT"
)

func (k ErrorKind) String() string {
	return string(k)
}

// Err returns the sentinel error for the kind.
func (k ErrorKind) Err() error {
	switch k {
	case KindInvalidWindow:
		return ErrInvalidWindow
	case KindSlotNotFound:
		return ErrSlotNotFound
	case KindAlreadyBooked:
		return ErrAlreadyBooked
	case KindSlotInPast:
		return ErrSlotInPast
	case KindInsufficientLeadTime:
		return ErrInsufficientLeadTime
	case KindDataIntegrityConflict:
		return ErrDataIntegrityConflict
	default:
		return nil
	}
}

// ValidationError carries every rule a slot failed.
// errors.Is matches the sentinel of any contained kind.
type ValidationError struct {
	Kinds []ErrorKind
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Kinds))
	for _, k := range e.Kinds {
		if err := k.Err(); err != nil {
			parts = append(parts, err.Error())
		}
	}
	return "slot validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	for _, k := range e.Kinds {
		if k.Err() == target {
			return true
		}
	}
	return false
}
