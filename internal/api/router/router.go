package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KKK-90/POSTRKR-App/config"
	"github.com/KKK-90/POSTRKR-App/internal/api/handler"
	"github.com/KKK-90/POSTRKR-App/internal/api/middleware"
	"github.com/KKK-90/POSTRKR-App/internal/service"
	"github.com/KKK-90/POSTRKR-App/pkg/response"
)

// Setup builds the gin engine. limiter may be nil, which disables rate
// limiting.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	authSvc service.AuthService,
	limiter middleware.Limiter,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxUploadMB << 20))

	limit := middleware.RateLimit(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)

	api := r.Group("/api")
	api.Use(middleware.SessionAuth(authSvc))
	{
		api.GET("/health", handler.Health)

		// session
		api.POST("/login", limit, h.Auth.Login)
		api.POST("/logout", h.Auth.Logout)
		api.GET("/session", h.Auth.Session)

		data := api.Group("")
		if cfg.Auth.RequireSession {
			data.Use(middleware.RequireSession())
		}

		// locations
		locations := data.Group("/locations")
		{
			locations.GET("", h.Location.ListLocations)
			locations.POST("", h.Location.CreateLocation)
			locations.GET("/:id", h.Location.GetLocation)
			locations.PUT("/:id", h.Location.UpdateLocation)
			locations.DELETE("/:id", h.Location.DeleteLocation)
		}

		// bulk transfer
		data.POST("/import", limit, h.Transfer.Import)
		data.GET("/export", h.Transfer.Export)
		data.GET("/backup", h.Transfer.Backup)
		data.POST("/restore", limit, h.Transfer.Restore)
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})

	return r
}
