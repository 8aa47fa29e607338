//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"time"

	"tutor-scheduling/internal/handler/dto/response"
	"tutor-scheduling/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func (s *BookingSuite) TestWindowCache() {
	s.Run("正常系: 2回目の窓読み込みはキャッシュから返り、予約状態は常に最新", func() {
		t := s.T()
		windowID := s.createWindow(t, futureStart(), 2*time.Hour)
		hits := s.Metrics.CacheLookupCounter(true)
		before := testutil.ToFloat64(hits)

		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(windowSlotsURL, windowID), nil)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
		require.Equal(t, before, testutil.ToFloat64(hits))

		rw = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, windowID, 1), reserveBody(uuid.New(), "cached"))
		require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())
		require.Equal(t, before+1, testutil.ToFloat64(hits))

		rw = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(windowSlotsURL, windowID), nil)
		require.Equal(t, http.StatusOK, rw.Code)
		require.Equal(t, before+2, testutil.ToFloat64(hits))

		var got response.WindowSlotsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &got))
		require.Len(t, got.Slots, 2)
		require.Equal(t, "free", got.Slots[0].State)
		require.Equal(t, "booked", got.Slots[1].State)
	})
}
