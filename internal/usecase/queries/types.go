package queries

import (
	"time"

	"tutor-scheduling/internal/domain/scheduling"

	"github.com/google/uuid"
)

type DayAvailability struct {
	Date  scheduling.DateKey
	Slots []scheduling.Slot
}

type AvailabilityView struct {
	Timezone    string
	GeneratedAt time.Time
	MinLeadTime time.Duration
	Days        []DayAvailability
	Total       int
}

type WindowSlotsView struct {
	Window    scheduling.TimeWindow
	Slots     []scheduling.Slot
	Conflicts []scheduling.IntegrityConflict
}

type RunsView struct {
	WindowID uuid.UUID
	Count    int
	Runs     [][]scheduling.Slot
}

type SlotStatusView struct {
	Slot       scheduling.Slot
	Validation scheduling.ValidationResult
	Report     scheduling.AvailabilityReport
	CheckedAt  time.Time
}

type JointFilter struct {
	OwnerIDs []uuid.UUID
	Subject  *string
	From     *time.Time
	To       *time.Time
	Mode     scheduling.JointMode
}

type JointAvailabilityView struct {
	Mode     scheduling.JointMode
	Timezone string
	OwnerIDs []uuid.UUID
	// Days is set for JointModeAny.
	Days []DayAvailability
	// Common is set for JointModeAll.
	Common []scheduling.JointSlot
}
