package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tutor-scheduling/internal/handler/api"
	"tutor-scheduling/internal/handler/middleware"
	"tutor-scheduling/internal/pkg/config"
	"tutor-scheduling/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	reserveLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, availabilityHandler, bookingHandler, reserveLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(
	engine *gin.Engine,
	m *metrics.Metrics,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	reserveLimiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/availability"), []route{
			{Method: http.MethodGet, Path: "", Handler: availabilityHandler.ListAvailable},
			{Method: http.MethodGet, Path: "/joint", Handler: availabilityHandler.Joint},
		})

		addRoutes(apiGroup.Group("/windows"), []route{
			{Method: http.MethodGet, Path: "/:id/slots", Handler: availabilityHandler.WindowSlots},
			{Method: http.MethodGet, Path: "/:id/runs", Handler: availabilityHandler.Runs},
			{Method: http.MethodGet, Path: "/:id/slots/:ordinal", Handler: availabilityHandler.SlotStatus},
			{
				Method:  http.MethodPost,
				Path:    "/:id/slots/:ordinal/bookings",
				Handler: bookingHandler.Reserve,
				Mw:      []gin.HandlerFunc{reserveLimiter.Limit()},
			},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
