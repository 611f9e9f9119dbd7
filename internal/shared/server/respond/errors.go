package respond

import (
	"github.com/gin-gonic/gin"

	"perfwidget-backend/internal/shared/telemetry"
)

// ErrorResponse is the error body returned to widget clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs the failure under code and aborts with {"error": message}.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
