package response

import (
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/pkg/ptr"
	"tutor-scheduling/internal/usecase/queries"
)

type SlotResponse struct {
	ID            string    `json:"id"`
	WindowID      string    `json:"windowId"`
	OwnerID       string    `json:"ownerId"`
	Ordinal       int       `json:"ordinal"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"durationHours"`
	State         string    `json:"state"`
	BookedBy      *string   `json:"bookedBy,omitempty"`
	SessionRef    *string   `json:"sessionRef,omitempty"`
	BookingID     *string   `json:"bookingId,omitempty"`
	Conflicted    bool      `json:"conflicted,omitempty"`
}

func FromSlot(s scheduling.Slot) SlotResponse {
	res := SlotResponse{
		ID:            s.ID.String(),
		WindowID:      s.WindowID.String(),
		OwnerID:       s.OwnerID.String(),
		Ordinal:       s.Ordinal,
		Start:         s.Start,
		End:           s.End,
		DurationHours: s.DurationHours(),
		State:         s.State.String(),
		SessionRef:    s.SessionRef,
		Conflicted:    s.Conflicted,
	}
	if s.BookedBy != nil {
		res.BookedBy = ptr.Of(s.BookedBy.String())
	}
	if s.BookingID != nil {
		res.BookingID = ptr.Of(s.BookingID.String())
	}
	return res
}

func FromSlots(slots []scheduling.Slot) []SlotResponse {
	res := make([]SlotResponse, len(slots))
	for i, s := range slots {
		res[i] = FromSlot(s)
	}
	return res
}

type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func fromDays(days []queries.DayAvailability) []DayResponse {
	res := make([]DayResponse, len(days))
	for i, d := range days {
		res[i] = DayResponse{Date: string(d.Date), Slots: FromSlots(d.Slots)}
	}
	return res
}

type AvailabilityResponse struct {
	Timezone    string        `json:"timezone"`
	GeneratedAt time.Time     `json:"generatedAt"`
	MinLeadTime string        `json:"minLeadTime"`
	Total       int           `json:"total"`
	Days        []DayResponse `json:"days"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Timezone:    v.Timezone,
		GeneratedAt: v.GeneratedAt,
		MinLeadTime: v.MinLeadTime.String(),
		Total:       v.Total,
		Days:        fromDays(v.Days),
	}
}

type WindowResponse struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"ownerId"`
	OwnerContact   string    `json:"ownerContact"`
	Subject        *string   `json:"subject,omitempty"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	RecurrenceRule string    `json:"recurrenceRule,omitempty"`
	Status         string    `json:"status"`
}

func FromWindow(w scheduling.TimeWindow) WindowResponse {
	return WindowResponse{
		ID:             w.ID.String(),
		OwnerID:        w.OwnerID.String(),
		OwnerContact:   w.OwnerContact,
		Subject:        w.Subject,
		Start:          w.Start,
		End:            w.End,
		RecurrenceRule: w.RecurrenceRule,
		Status:         w.Status.String(),
	}
}

type ConflictResponse struct {
	Ordinal    int      `json:"ordinal"`
	BookingIDs []string `json:"bookingIds"`
}

type WindowSlotsResponse struct {
	Window    WindowResponse     `json:"window"`
	Slots     []SlotResponse     `json:"slots"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

func FromWindowSlotsView(v *queries.WindowSlotsView) *WindowSlotsResponse {
	conflicts := make([]ConflictResponse, len(v.Conflicts))
	for i, c := range v.Conflicts {
		ids := make([]string, len(c.Bookings))
		for j, b := range c.Bookings {
			ids[j] = b.ID.String()
		}
		conflicts[i] = ConflictResponse{Ordinal: c.Ref.Ordinal, BookingIDs: ids}
	}
	return &WindowSlotsResponse{
		Window:    FromWindow(v.Window),
		Slots:     FromSlots(v.Slots),
		Conflicts: conflicts,
	}
}

type RunsResponse struct {
	WindowID string           `json:"windowId"`
	Count    int              `json:"count"`
	Runs     [][]SlotResponse `json:"runs"`
}

func FromRunsView(v *queries.RunsView) *RunsResponse {
	runs := make([][]SlotResponse, len(v.Runs))
	for i, r := range v.Runs {
		runs[i] = FromSlots(r)
	}
	return &RunsResponse{WindowID: v.WindowID.String(), Count: v.Count, Runs: runs}
}

type SlotStatusResponse struct {
	Slot               SlotResponse     `json:"slot"`
	Bookable           bool             `json:"bookable"`
	Errors             []string         `json:"errors"`
	Available          bool             `json:"available"`
	ConflictingBooking *BookingResponse `json:"conflictingBooking,omitempty"`
	CheckedAt          time.Time        `json:"checkedAt"`
}

func FromSlotStatusView(v *queries.SlotStatusView) *SlotStatusResponse {
	res := &SlotStatusResponse{
		Slot:      FromSlot(v.Slot),
		Bookable:  v.Validation.Valid,
		Errors:    Kinds(v.Validation.Errors),
		Available: v.Report.Available,
		CheckedAt: v.CheckedAt,
	}
	if v.Report.ConflictingBooking != nil {
		res.ConflictingBooking = FromBooking(*v.Report.ConflictingBooking)
	}
	return res
}

type JointSlotResponse struct {
	Start time.Time      `json:"start"`
	End   time.Time      `json:"end"`
	Slots []SlotResponse `json:"slots"`
}

type JointAvailabilityResponse struct {
	Mode     string              `json:"mode"`
	Timezone string              `json:"timezone"`
	OwnerIDs []string            `json:"ownerIds"`
	Days     []DayResponse       `json:"days,omitempty"`
	Common   []JointSlotResponse `json:"common,omitempty"`
}

func FromJointAvailabilityView(v *queries.JointAvailabilityView) *JointAvailabilityResponse {
	owners := make([]string, len(v.OwnerIDs))
	for i, id := range v.OwnerIDs {
		owners[i] = id.String()
	}
	res := &JointAvailabilityResponse{
		Mode:     string(v.Mode),
		Timezone: v.Timezone,
		OwnerIDs: owners,
	}
	if v.Mode == scheduling.JointModeAll {
		res.Common = make([]JointSlotResponse, len(v.Common))
		for i, js := range v.Common {
			res.Common[i] = JointSlotResponse{Start: js.Start, End: js.End, Slots: FromSlots(js.Slots)}
		}
		return res
	}
	res.Days = fromDays(v.Days)
	return res
}

// Kinds renders error kinds as their wire codes.
func Kinds(kinds []scheduling.ErrorKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}
