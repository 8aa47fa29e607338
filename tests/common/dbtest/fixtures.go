//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra/converter"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts the window and returns it with its generated id
func CreateTestWindow(t *testing.T, db sqlc.DBTX, w scheduling.TimeWindow) scheduling.TimeWindow {
	t.Helper()

	id, err := sqlc.New().CreateWindow(context.Background(), db, converter.WindowToCreateParams(w))
	require.NoError(t, err)

	w.ID = id
	return w
}

// inserts an active booking directly, bypassing the reservation flow
func CreateTestBooking(t *testing.T, db sqlc.DBTX, windowID uuid.UUID, ordinal int, reservedBy uuid.UUID, sessionRef string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO slot_bookings (window_id, ordinal, reserved_by, session_ref) VALUES ($1, $2, $3, $4) RETURNING id",
		windowID, ordinal, reservedBy, sessionRef).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountActiveBookings(t *testing.T, db sqlc.DBTX, windowID uuid.UUID, ordinal int) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM slot_bookings WHERE window_id = $1 AND ordinal = $2 AND status = 'reserved'",
		windowID, ordinal).Scan(&n)
	require.NoError(t, err)

	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
