package repository

import (
	"context"
	"errors"
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra"
	"tutor-scheduling/internal/infra/converter"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"
	"tutor-scheduling/internal/pkg/pgconv"
	"tutor-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeForeignKeyViolation = "23503"

type BookingWriteQueries interface {
	ReserveSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveSlotParams) (sqlc.SlotBookings, error)
	CancelBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error)
	FindActiveBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveBookingParams) (sqlc.SlotBookings, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Reserve relies on the partial unique index over active bookings: a taken
// slot makes the insert return no row.
func (r *BookingRepository) Reserve(ctx context.Context, params shared.ReserveParams) (*scheduling.Booking, error) {
	row, err := r.queries.ReserveSlot(ctx, r.db, converter.ReserveParamsToInfra(params))
	if err != nil {
		switch {
		case pgconv.IsNoRows(err), pgconv.IsUniqueViolation(err):
			return nil, infra.WrapRepoErr("slot already reserved", err, infra.KindConflict)
		case isForeignKeyViolation(err):
			return nil, infra.WrapRepoErr("window does not exist", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to reserve slot", err)
	}

	b := converter.BookingToDomain(row)
	return &b, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.CancelBooking(ctx, r.db, sqlc.CancelBookingParams{
		ID:          bookingID,
		CancelledAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return n > 0, nil
}

func (r *BookingRepository) FindActive(ctx context.Context, windowID uuid.UUID, ordinal int) (*scheduling.Booking, error) {
	row, err := r.queries.FindActiveBooking(ctx, r.db, sqlc.FindActiveBookingParams{
		WindowID: windowID,
		// #nosec G115 -- ordinals are bounded by window length
		Ordinal: int32(ordinal),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active booking", err)
	}

	b := converter.BookingToDomain(row)
	return &b, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation
}
