package repository

import (
	"context"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra"
	"tutor-scheduling/internal/infra/converter"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"
	"tutor-scheduling/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type WindowLockQueries interface {
	LockWindowForShare(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AvailabilityWindows, error)
}

type WindowRepository struct {
	queries WindowLockQueries
	db      sqlc.DBTX
}

func NewWindowRepository(queries WindowLockQueries, db sqlc.DBTX) *WindowRepository {
	return &WindowRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WindowRepository) LockByID(ctx context.Context, id uuid.UUID) (*scheduling.TimeWindow, error) {
	row, err := r.queries.LockWindowForShare(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("window not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock window", err)
	}

	w := converter.WindowToDomain(row)
	return &w, nil
}
