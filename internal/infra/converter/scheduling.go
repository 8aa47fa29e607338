package converter

import (
	"tutor-scheduling/internal/domain/scheduling"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"
	"tutor-scheduling/internal/pkg/pgconv"
	"tutor-scheduling/internal/usecase/shared"
)

func WindowToDomain(row sqlc.AvailabilityWindows) scheduling.TimeWindow {
	return scheduling.TimeWindow{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		OwnerContact:   row.OwnerContact,
		Subject:        pgconv.StringPtrFromPgtype(row.Subject),
		Start:          pgconv.TimeFromPgtype(row.StartsAt),
		End:            pgconv.TimeFromPgtype(row.EndsAt),
		RecurrenceRule: pgconv.StringFromPgtype(row.RecurrenceRule),
		Status:         scheduling.WindowStatus(row.Status),
	}
}

func WindowsToDomain(rows []sqlc.AvailabilityWindows) []scheduling.TimeWindow {
	out := make([]scheduling.TimeWindow, len(rows))
	for i, row := range rows {
		out[i] = WindowToDomain(row)
	}
	return out
}

func WindowToCreateParams(w scheduling.TimeWindow) sqlc.CreateWindowParams {
	status := w.Status
	if status == "" {
		status = scheduling.WindowStatusActive
	}
	return sqlc.CreateWindowParams{
		OwnerID:        w.OwnerID,
		OwnerContact:   w.OwnerContact,
		Subject:        pgconv.StringPtrToPgtype(w.Subject),
		StartsAt:       pgconv.TimeToPgtype(w.Start),
		EndsAt:         pgconv.TimeToPgtype(w.End),
		RecurrenceRule: pgconv.OptionalStringToPgtype(w.RecurrenceRule),
		Status:         status.String(),
	}
}

func BookingToDomain(row sqlc.SlotBookings) scheduling.Booking {
	return scheduling.Booking{
		ID:          row.ID,
		WindowID:    row.WindowID,
		Ordinal:     int(row.Ordinal),
		ReservedBy:  row.ReservedBy,
		SessionRef:  row.SessionRef,
		Status:      scheduling.BookingStatus(row.Status),
		ReservedAt:  pgconv.TimeFromPgtype(row.ReservedAt),
		CancelledAt: pgconv.TimePtrFromPgtype(row.CancelledAt),
	}
}

func BookingsToDomain(rows []sqlc.SlotBookings) []scheduling.Booking {
	out := make([]scheduling.Booking, len(rows))
	for i, row := range rows {
		out[i] = BookingToDomain(row)
	}
	return out
}

func ReserveParamsToInfra(p shared.ReserveParams) sqlc.ReserveSlotParams {
	return sqlc.ReserveSlotParams{
		WindowID: p.WindowID,
		// #nosec G115 -- ordinals are bounded by window length
		Ordinal:    int32(p.Ordinal),
		ReservedBy: p.ReservedBy,
		SessionRef: p.SessionRef,
		ReservedAt: pgconv.TimeToPgtype(p.ReservedAt),
	}
}
