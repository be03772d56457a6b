// Package http wires the gin engine, middleware and route groups.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warrantly/internal/infrastructure/config"
	claimHandler "warrantly/internal/interfaces/http/handlers/claim"
	warrantyHandler "warrantly/internal/interfaces/http/handlers/warranty"
	"warrantly/internal/interfaces/http/middleware"
	"warrantly/internal/shared/logger"
)

type Router struct {
	engine          *gin.Engine
	cfg             *config.Config
	claimHandler    *claimHandler.Handler
	warrantyHandler *warrantyHandler.Handler
	logger          logger.Interface
}

func NewRouter(
	cfg *config.Config,
	claimH *claimHandler.Handler,
	warrantyH *warrantyHandler.Handler,
	log logger.Interface,
) *Router {
	return &Router{
		engine:          gin.New(),
		cfg:             cfg,
		claimHandler:    claimH,
		warrantyHandler: warrantyH,
		logger:          log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Actor())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")
	{
		warranty := v1.Group("/warranty")
		{
			warranty.GET("/resolve", r.warrantyHandler.Resolve)
		}

		claims := v1.Group("/claims")
		{
			// Claim intake serves both channels; customer requests carry
			// no actor identity.
			claims.POST("", r.claimHandler.CreateClaim)
			claims.GET("/number/:number", r.claimHandler.GetClaimByNumber)
			claims.GET("/:id", r.claimHandler.GetClaim)

			staff := claims.Group("")
			staff.Use(middleware.RequireActor())
			{
				staff.GET("", r.claimHandler.ListClaims)
				staff.POST("/:id/status", r.claimHandler.ChangeStatus)
				staff.POST("/:id/notes", r.claimHandler.AddNote)
			}
		}
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
