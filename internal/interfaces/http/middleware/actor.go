package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"warrantly/internal/shared/auth"
	"warrantly/internal/shared/utils"
)

const actorContextKey = "actor"

// Actor extracts the authenticated actor identity set by the upstream
// gateway. The gateway terminates the session and forwards the resolved
// identity in X-Actor-Id and X-Actor-Role headers.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		idHeader := c.GetHeader("X-Actor-Id")
		roleHeader := c.GetHeader("X-Actor-Role")

		if idHeader == "" && roleHeader == "" {
			c.Next()
			return
		}

		id, err := strconv.ParseUint(idHeader, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid actor identity")
			c.Abort()
			return
		}

		actor, err := auth.NewActorContext(uint(id), roleHeader)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid actor identity")
			c.Abort()
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// RequireActor aborts requests that did not present a valid actor identity.
// Staff-only routes hang off this.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(actorContextKey); !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "actor identity required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetActor returns the actor attached to the request, if any.
func GetActor(c *gin.Context) (auth.ActorContext, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return auth.ActorContext{}, false
	}
	actor, ok := value.(auth.ActorContext)
	return actor, ok
}
