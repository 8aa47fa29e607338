//go:build unit || e2e

package builder

import (
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	reqdto "tutor-scheduling/internal/handler/dto/request"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"
	"tutor-scheduling/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	WindowID    uuid.UUID
	Ordinal     int
	ReservedBy  uuid.UUID
	SessionRef  string
	Status      scheduling.BookingStatus
	ReservedAt  time.Time
	CancelledAt *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		WindowID:   uuid.New(),
		Ordinal:    0,
		ReservedBy: uuid.New(),
		SessionRef: "session-" + uuid.NewString()[:8],
		Status:     scheduling.BookingStatusReserved,
		ReservedAt: BaseTime.Add(-48 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ForSlot(windowID uuid.UUID, ordinal int) *BookingBuilder {
	b.WindowID = windowID
	b.Ordinal = ordinal
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	at := b.ReservedAt.Add(time.Hour)
	b.Status = scheduling.BookingStatusCancelled
	b.CancelledAt = &at
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() scheduling.Booking {
	return scheduling.Booking{
		ID:          b.ID,
		WindowID:    b.WindowID,
		Ordinal:     b.Ordinal,
		ReservedBy:  b.ReservedBy,
		SessionRef:  b.SessionRef,
		Status:      b.Status,
		ReservedAt:  b.ReservedAt,
		CancelledAt: b.CancelledAt,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.SlotBookings {
	return sqlc.SlotBookings{
		ID:          b.ID,
		WindowID:    b.WindowID,
		Ordinal:     int32(b.Ordinal), // #nosec G115 -- test ordinals are small
		ReservedBy:  b.ReservedBy,
		SessionRef:  b.SessionRef,
		Status:      b.Status.String(),
		ReservedAt:  pgconv.TimeToPgtype(b.ReservedAt),
		CancelledAt: pgconv.TimePtrToPgtype(b.CancelledAt),
	}
}

func (b *BookingBuilder) BuildReserveRequestDTO() reqdto.ReserveSlotRequest {
	return reqdto.ReserveSlotRequest{
		ReservedBy: b.ReservedBy,
		SessionRef: b.SessionRef,
	}
}
