package middleware

import (
	"log/slog"
	"slices"

	"tutor-scheduling/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows and exposes X-Request-ID, and exposes Location.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range []string{"Location", RequestIDHeader} {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}
	allow := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allow, RequestIDHeader) {
		allow = append(allow, RequestIDHeader)
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allow,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
