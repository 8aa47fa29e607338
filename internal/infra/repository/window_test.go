//go:build unit

package repository_test

import (
	"context"
	"testing"

	"tutor-scheduling/internal/infra"
	"tutor-scheduling/internal/infra/repository"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"
	"tutor-scheduling/tests/common/builder"
	repositorymock "tutor-scheduling/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWindowRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewWindowBuilder().BuildInfra()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: window locked"},
		{name: "error: window not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", queryErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockWindowLockQueries(ctrl)
			repo := repository.NewWindowRepository(mockQueries, &mockDBTX{})

			ret := row
			if tc.queryErr != nil {
				ret = sqlc.AvailabilityWindows{}
			}
			mockQueries.EXPECT().LockWindowForShare(ctx, gomock.Any(), row.ID).Return(ret, tc.queryErr)

			got, err := repo.LockByID(ctx, row.ID)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, got.ID)
		})
	}
}
