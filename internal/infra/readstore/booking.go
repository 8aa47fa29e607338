package readstore

import (
	"context"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra"
	"tutor-scheduling/internal/infra/converter"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"
	"tutor-scheduling/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListActiveBookingsByWindowIDs(ctx context.Context, db sqlc.DBTX, windowIds []uuid.UUID) ([]sqlc.SlotBookings, error)
	FindActiveBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveBookingParams) (sqlc.SlotBookings, error)
}

// BookingReadStore always reads from the primary; bookings are never cached.
type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListBookings(ctx context.Context, windowIDs []uuid.UUID) ([]scheduling.Booking, error) {
	if len(windowIDs) == 0 {
		return []scheduling.Booking{}, nil
	}

	rows, err := r.queries.ListActiveBookingsByWindowIDs(ctx, r.db, windowIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return converter.BookingsToDomain(rows), nil
}

func (r *BookingReadStore) FindBooking(ctx context.Context, windowID uuid.UUID, ordinal int) (*scheduling.Booking, error) {
	row, err := r.queries.FindActiveBooking(ctx, r.db, sqlc.FindActiveBookingParams{
		WindowID: windowID,
		// #nosec G115 -- ordinals are bounded by window length
		Ordinal: int32(ordinal),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	b := converter.BookingToDomain(row)
	return &b, nil
}
