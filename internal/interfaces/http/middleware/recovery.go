package middleware

import (
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"warrantly/internal/shared/logger"
	"warrantly/internal/shared/utils"
)

// Recovery converts panics in claim handlers into a 500 envelope so a single
// bad request never takes the API down. Client disconnects are logged without
// a stack; the response writer is already gone.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		fields := []any{
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"client_ip", c.ClientIP(),
		}
		if claimID := c.Param("id"); claimID != "" {
			fields = append(fields, "claim_id", claimID)
		}
		if actor, ok := GetActor(c); ok {
			fields = append(fields, "actor_id", actor.ID)
		}

		if isClientDisconnect(recovered) {
			logger.Error("connection broken during request", append(fields, "error", recovered)...)
			c.Abort()
			return
		}

		logger.Error("panic recovered while handling claim request",
			append(fields,
				"error", recovered,
				"stack", string(debug.Stack()),
			)...)

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
	})
}

// isClientDisconnect reports whether the recovered value is the peer dropping
// the connection rather than a bug in a handler.
func isClientDisconnect(err interface{}) bool {
	ne, ok := err.(*net.OpError)
	if !ok {
		return false
	}
	se, ok := ne.Err.(*os.SyscallError)
	if !ok {
		return false
	}

	errStr := strings.ToLower(se.Error())
	for _, s := range []string{"connection reset by peer", "broken pipe", "connection refused"} {
		if strings.Contains(errStr, s) {
			return true
		}
	}
	return false
}
