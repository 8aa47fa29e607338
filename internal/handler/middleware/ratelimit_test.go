//go:build unit

package middleware

import (
	"net/http"
	"testing"
	"time"

	"tutor-scheduling/internal/pkg/config"
	"tutor-scheduling/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reserve", rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestRateLimiter_Limit(t *testing.T) {
	t.Run("burst is allowed then requests are rejected", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(0.001, 3))

		for i := range 3 {
			w := httptest.PerformRequestFrom(t, router, http.MethodPost, "/reserve", nil, "10.0.0.1:5000")
			require.Equal(t, http.StatusCreated, w.Code, "request %d", i)
		}

		w := httptest.PerformRequestFrom(t, router, http.MethodPost, "/reserve", nil, "10.0.0.1:5000")
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(0.001, 1))

		first := httptest.PerformRequestFrom(t, router, http.MethodPost, "/reserve", nil, "10.0.0.1:5000")
		again := httptest.PerformRequestFrom(t, router, http.MethodPost, "/reserve", nil, "10.0.0.1:5001")
		other := httptest.PerformRequestFrom(t, router, http.MethodPost, "/reserve", nil, "10.0.0.2:5000")

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, again.Code)
		assert.Equal(t, http.StatusCreated, other.Code)
	})

	t.Run("burst below one is raised to one", func(t *testing.T) {
		rl := NewReserveRateLimiter(config.RateLimitConfig{ReserveRPS: 1, ReserveBurst: 0})
		assert.Equal(t, 1, rl.burst)
	})
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	now := time.Date(2030, time.January, 7, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.limiterFor("10.0.0.1")
	rl.limiterFor("10.0.0.2")
	require.Len(t, rl.visitors, 2)

	now = now.Add(visitorIdleTTL + time.Second)
	rl.limiterFor("10.0.0.2")

	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.2")
}
