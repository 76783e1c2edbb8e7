package respond

import (
	"github.com/gin-gonic/gin"

	"photo-backend/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs the failure and sends the standardized error response.
// The message is the full response body; store-layer detail must not
// be passed here.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
