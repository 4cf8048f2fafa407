package middleware

import (
	"net/http"

	"courtdesk/internal/shared/config"
	"courtdesk/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderSessionID identifies one operator device/session. Collapse
	// flags and product selections are scoped to it.
	HeaderSessionID = "X-Session-ID"

	// HeaderAPIKey carries the static operator key.
	HeaderAPIKey = "X-API-Key"

	// HeaderRequestID echoes the per-request correlation id.
	HeaderRequestID = "X-Request-ID"

	// ContextSessionID is the gin context key holding the resolved session id.
	ContextSessionID = "session_id"

	// ContextRequestID is the gin context key holding the request id.
	ContextRequestID = "request_id"
)

// OperatorAuth creates an API-key authentication middleware
func OperatorAuth() gin.HandlerFunc {
	return OperatorAuthWithConfig(config.Load())
}

// OperatorAuthWithConfig creates an API-key authentication middleware with config
func OperatorAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// No key configured means open access (development)
		if cfg.Operator.APIKey == "" {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "API key is required", nil, nil)
			c.Abort()
			return
		}

		if key != cfg.Operator.APIKey {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid API key", nil, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestID assigns a correlation id to each request and echoes it back
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ContextRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// SessionID resolves the operator session for session-scoped state.
// A client that sends no session header gets a fresh id per request,
// which behaves like the original app's discard-on-close UI state.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(HeaderSessionID)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(ContextSessionID, sessionID)
		c.Header(HeaderSessionID, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id set by the SessionID middleware
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(ContextSessionID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
