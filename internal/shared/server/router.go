package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"perfwidget-backend/internal/proxy"
	"perfwidget-backend/internal/services/health"
	"perfwidget-backend/internal/shared/config"
	"perfwidget-backend/internal/shared/metrics"
	"perfwidget-backend/internal/shared/server/middleware"
	"perfwidget-backend/internal/shared/server/respond"
)

// RouterDeps holds handlers mounted by NewRouter.
type RouterDeps struct {
	Config       config.Config
	ProxyHandler *proxy.Handler
	Health       *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil)
	}
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	if deps.ProxyHandler != nil {
		deps.ProxyHandler.RegisterRoutes(api)
	}
	r.GET("/metrics", metrics.Handler())
	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "Not found")
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
