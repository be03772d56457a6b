package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"warrantly/internal/shared/logger"
)

// Logger records one line per claim API request. The level follows the
// response class so dashboards can alert on server errors without sifting
// through routine claim reads.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if actor, ok := GetActor(c); ok {
			args = append(args, "actor_id", actor.ID, "actor_role", actor.Role)
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Errorw("claim request failed", args...)
		case status >= 400:
			log.Warnw("claim request rejected", args...)
		default:
			log.Debugw("claim request served", args...)
		}
	}
}
