package middleware

import (
	"log/slog"
	"net/http"

	"foodshare/internal/handler/httperr"
	"foodshare/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes a body for requests that recorded errors but never
// responded. Public errors carry their response; private ones are classified.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status, msg := httperr.Classify(c.Errors.Last().Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				route := c.FullPath()
				metrics.PanicsRecoveredTotal.WithLabelValues(route).Inc()
				slog.Error("recovered from panic",
					"error", err,
					"route", route,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
