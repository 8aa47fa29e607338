//go:build unit || e2e

package builder

import (
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra/converter"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"
	"tutor-scheduling/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// BaseTime is a Monday 09:00 UTC far enough ahead that lead-time rules pass by default.
var BaseTime = time.Date(2030, time.January, 7, 9, 0, 0, 0, time.UTC)

type WindowBuilder struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	OwnerContact   string
	Subject        *string
	Start          time.Time
	End            time.Time
	RecurrenceRule string
	Status         scheduling.WindowStatus
}

func NewWindowBuilder() *WindowBuilder {
	subject := "mathematics"
	return &WindowBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		OwnerContact: "tutor@example.com",
		Subject:      &subject,
		Start:        BaseTime,
		End:          BaseTime.Add(3 * time.Hour),
		Status:       scheduling.WindowStatusActive,
	}
}

func (b *WindowBuilder) With(mutate func(*WindowBuilder)) *WindowBuilder {
	mutate(b)
	return b
}

func (b *WindowBuilder) Between(start, end time.Time) *WindowBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *WindowBuilder) Lasting(d time.Duration) *WindowBuilder {
	b.End = b.Start.Add(d)
	return b
}

func (b *WindowBuilder) OwnedBy(ownerID uuid.UUID) *WindowBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *WindowBuilder) AsCancelled() *WindowBuilder {
	b.Status = scheduling.WindowStatusCancelled
	return b
}

// Build methods
func (b *WindowBuilder) BuildDomain() scheduling.TimeWindow {
	return scheduling.TimeWindow{
		ID:             b.ID,
		OwnerID:        b.OwnerID,
		OwnerContact:   b.OwnerContact,
		Subject:        b.Subject,
		Start:          b.Start,
		End:            b.End,
		RecurrenceRule: b.RecurrenceRule,
		Status:         b.Status,
	}
}

func (b *WindowBuilder) BuildInfra() sqlc.AvailabilityWindows {
	return sqlc.AvailabilityWindows{
		ID:             b.ID,
		OwnerID:        b.OwnerID,
		OwnerContact:   b.OwnerContact,
		Subject:        pgconv.StringPtrToPgtype(b.Subject),
		StartsAt:       pgconv.TimeToPgtype(b.Start),
		EndsAt:         pgconv.TimeToPgtype(b.End),
		RecurrenceRule: pgconv.OptionalStringToPgtype(b.RecurrenceRule),
		Status:         b.Status.String(),
		CreatedAt:      pgconv.TimeToPgtype(b.Start.Add(-24 * time.Hour)),
		UpdatedAt:      pgconv.TimeToPgtype(b.Start.Add(-24 * time.Hour)),
	}
}

func (b *WindowBuilder) BuildCreateParams() sqlc.CreateWindowParams {
	return converter.WindowToCreateParams(b.BuildDomain())
}
