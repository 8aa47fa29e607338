package middleware

import (
	"log/slog"
	"net/http"

	"tutor-scheduling/internal/handler/httperr"
	"tutor-scheduling/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 12

// ErrorHandler logs the cause behind every 5xx and renders the recorded
// envelope when the handler did not write a body itself.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		resp, public := last.Meta.(httperr.Response)
		if !public || !last.IsType(gin.ErrorTypePublic) {
			resp = httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil)
		}

		if resp.Status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request.Context(), "request failed",
				"route", c.FullPath(),
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, maxStackLines))
		}

		if !c.Writer.Written() {
			c.JSON(resp.Status, resp)
		}
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
