package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"perfwidget-backend/internal/proxy"
	"perfwidget-backend/internal/services/health"
	"perfwidget-backend/internal/shared/config"
	"perfwidget-backend/internal/shared/server"
	"perfwidget-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
}

// Build wires the forwarder and router. A missing API key is not an error here;
// it is detected per request.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	upstream, err := proxy.NewClient(cfg.PageSpeedEndpoint, cfg.UpstreamTimeout)
	if err != nil {
		return nil, fmt.Errorf("build scoring client: %w", err)
	}

	svc := &proxy.Service{
		Upstream: upstream,
		APIKey:   config.APIKey,
	}
	handler := proxy.NewHandler(svc)

	if config.APIKey() == "" {
		telemetry.Warn("bootstrap.api_key_missing", map[string]any{
			"env_var": config.APIKeyEnv,
		})
	}

	return &App{
		Config: cfg,
		Router: server.NewRouter(server.RouterDeps{
			Config:       cfg,
			ProxyHandler: handler,
			Health:       health.NewService(config.APIKey),
		}),
	}, nil
}
