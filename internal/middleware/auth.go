package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentpay/weather-mcp-go/internal/agentpay"
	"github.com/agentpay/weather-mcp-go/internal/apikey"
	"github.com/agentpay/weather-mcp-go/internal/logging"
	"github.com/agentpay/weather-mcp-go/internal/metrics"
)

// APIKeyHeader is the request header carrying the caller's AgentPay API key.
const APIKeyHeader = "X-AGENTPAY-API-KEY"

// KeyValidator validates an AgentPay API key. A non-nil error means the
// validation call itself failed, not that the key is invalid.
type KeyValidator interface {
	ValidateAPIKey(ctx context.Context, apiKey string) (*agentpay.ValidationResult, error)
}

// APIKeyMiddleware extracts the AgentPay API key from the request header and,
// when present, validates it before the request reaches a tool handler.
// Invalid keys are rejected with 401 and validation-service failures with 500.
// A missing header is legal here: tool handlers reject unauthenticated calls
// themselves, at the point metering would run.
//
// The (possibly absent) key is bound to the request context for the duration
// of the downstream invocation; the binding ends with the request's context.
func APIKeyMiddleware(validator KeyValidator, logger logging.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)

		if key != "" {
			result, err := validator.ValidateAPIKey(c.Request.Context(), key)
			if err != nil {
				logger.WithFields(logging.Fields{
					"error": err,
					"path":  c.Request.URL.Path,
				}).Error("API key validation call failed")
				if m != nil {
					m.AuthRejections.WithLabelValues("validation_failed").Inc()
				}
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal Server Error",
					"message": "API Key validation failed",
				})
				c.Abort()
				return
			}
			if !result.IsValid {
				if m != nil {
					m.AuthRejections.WithLabelValues("invalid_key").Inc()
				}
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   "Unauthorized",
					"message": "Invalid API Key: " + result.InvalidReason,
				})
				c.Abort()
				return
			}
		}

		c.Request = c.Request.WithContext(apikey.WithAPIKey(c.Request.Context(), key))
		c.Next()
	}
}
