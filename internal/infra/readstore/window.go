package readstore

import (
	"context"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra"
	"tutor-scheduling/internal/infra/converter"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"
	"tutor-scheduling/internal/pkg/pgconv"
	"tutor-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

type WindowReadQueries interface {
	GetWindowByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AvailabilityWindows, error)
	ListWindows(ctx context.Context, db sqlc.DBTX, arg sqlc.ListWindowsParams) ([]sqlc.AvailabilityWindows, error)
}

type WindowReadStore struct {
	queries WindowReadQueries
	db      sqlc.DBTX
}

func NewWindowReadStore(queries WindowReadQueries, db sqlc.DBTX) *WindowReadStore {
	return &WindowReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WindowReadStore) FindWindow(ctx context.Context, id uuid.UUID) (*scheduling.TimeWindow, error) {
	row, err := r.queries.GetWindowByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("window not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find window by ID", err)
	}

	w := converter.WindowToDomain(row)
	return &w, nil
}

func (r *WindowReadStore) ListWindows(ctx context.Context, filter shared.WindowFilter) ([]scheduling.TimeWindow, error) {
	rows, err := r.queries.ListWindows(ctx, r.db, listWindowsParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list windows", err)
	}
	return converter.WindowsToDomain(rows), nil
}

func listWindowsParams(filter shared.WindowFilter) sqlc.ListWindowsParams {
	return sqlc.ListWindowsParams{
		// nil slices encode as NULL
		WindowIds:        nonNil(filter.WindowIDs),
		OwnerIds:         nonNil(filter.OwnerIDs),
		Subject:          pgconv.StringPtrToPgtype(filter.Subject),
		RangeFrom:        pgconv.TimePtrToPgtype(filter.From),
		RangeTo:          pgconv.TimePtrToPgtype(filter.To),
		IncludeCancelled: filter.IncludeCancelled,
	}
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
