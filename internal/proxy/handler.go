package proxy

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"perfwidget-backend/internal/shared/metrics"
	"perfwidget-backend/internal/shared/server/middleware"
	"perfwidget-backend/internal/shared/server/respond"
)

const (
	msgInvalidBody      = "Invalid request body"
	msgMissingKey       = "API key not configured"
	msgMissingURL       = "URL is required"
	msgInvalidKey       = "Invalid API key or quota exceeded"
	msgRateLimited      = "Rate limit exceeded. Please try again later."
	msgUpstreamGeneric  = "Failed to analyze URL"
	msgUpstreamNotReach = "Failed to reach the scoring API"
)

// Handler wires HTTP handlers to the forwarder service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the analysis endpoint. Preflight is answered by the CORS middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/lighthouse", h.analyze)
	rg.OPTIONS("/lighthouse", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (h *Handler) analyze(c *gin.Context) {
	metrics.IncRequests()

	if h.Svc.apiKey() == "" {
		h.fail(c, ErrMissingCredential)
		return
	}

	var req Request
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		metrics.IncFailed("invalid_body")
		respond.Error(c, http.StatusInternalServerError, "invalid_body", msgInvalidBody)
		return
	}
	c.Set(middleware.AnalyzedURLKey, req.URL)
	c.Set(middleware.StrategyKey, req.Strategy)

	body, err := h.Svc.Forward(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	metrics.IncSucceeded()
	c.Set(middleware.UpstreamKey, http.StatusOK)
	respond.RawJSON(c, http.StatusOK, body)
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, code, message := mapError(err)
	metrics.IncFailed(code)
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		c.Set(middleware.UpstreamKey, upstreamErr.Status)
	}
	respond.Error(c, status, code, message)
}

func mapError(err error) (int, string, string) {
	var upstreamErr *UpstreamError
	switch {
	case errors.Is(err, ErrMissingCredential):
		return http.StatusInternalServerError, "missing_credential", msgMissingKey
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request", msgMissingURL
	case errors.As(err, &upstreamErr):
		switch upstreamErr.Status {
		case http.StatusForbidden:
			return http.StatusForbidden, "upstream_403", msgInvalidKey
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests, "upstream_429", msgRateLimited
		}
		status := upstreamErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		message := upstreamErr.Message
		if message == "" {
			message = msgUpstreamGeneric
		}
		return status, "upstream_" + strconv.Itoa(upstreamErr.Status), message
	default:
		return http.StatusInternalServerError, "transport_failure", msgUpstreamNotReach
	}
}
