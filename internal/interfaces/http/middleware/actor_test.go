package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantly/internal/shared/auth"
)

func newActorTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Actor())
	r.GET("/open", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	staff := r.Group("/staff")
	staff.Use(RequireActor())
	staff.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func performRequest(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestActor(t *testing.T) {
	t.Run("attaches valid actor identity", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		var captured *auth.ActorContext
		r := gin.New()
		r.Use(Actor())
		r.GET("/open", func(c *gin.Context) {
			if actor, ok := GetActor(c); ok {
				captured = &actor
			}
			c.Status(http.StatusOK)
		})

		w := performRequest(r, "/open", map[string]string{
			"X-Actor-Id":   "42",
			"X-Actor-Role": "admin",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, captured)
		assert.Equal(t, uint(42), captured.ID)
		assert.True(t, captured.IsAdmin())
	})

	t.Run("passes through without headers", func(t *testing.T) {
		r := newActorTestRouter()

		w := performRequest(r, "/open", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects non-numeric actor ID", func(t *testing.T) {
		r := newActorTestRouter()

		w := performRequest(r, "/open", map[string]string{
			"X-Actor-Id":   "abc",
			"X-Actor-Role": "staff",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		r := newActorTestRouter()

		w := performRequest(r, "/open", map[string]string{
			"X-Actor-Id":   "42",
			"X-Actor-Role": "superuser",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireActor(t *testing.T) {
	t.Run("blocks anonymous requests", func(t *testing.T) {
		r := newActorTestRouter()

		w := performRequest(r, "/staff", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admits authenticated requests", func(t *testing.T) {
		r := newActorTestRouter()

		w := performRequest(r, "/staff", map[string]string{
			"X-Actor-Id":   "7",
			"X-Actor-Role": "staff",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
