package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edumetry/staffdesk-backend/internal/model"
	"github.com/edumetry/staffdesk-backend/internal/rbac"
	"github.com/edumetry/staffdesk-backend/internal/response"
	"github.com/edumetry/staffdesk-backend/internal/session"
)

const (
	// ContextKeyIdentity is the Gin context key for the restored identity.
	ContextKeyIdentity = "identity"

	// ContextKeySessionID is the Gin context key for the session ID.
	ContextKeySessionID = "session_id"
)

// RequireSession restores the session named by the bearer session ID and
// attaches the identity to the request context. Absent, malformed, or
// cleared sessions are answered with 401 and the login destination; the
// route layer on the client navigates there instead of rendering.
func RequireSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := extractSessionID(c)
		if sessionID == "" {
			response.AbortRedirect(c, http.StatusUnauthorized, response.ErrSessionRequired, rbac.LoginDestination)
			return
		}

		identity, err := manager.Restore(c.Request.Context(), sessionID)
		if err != nil {
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		if identity == nil {
			response.AbortRedirect(c, http.StatusUnauthorized, response.ErrSessionInvalidated, rbac.LoginDestination)
			return
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Set(ContextKeyIdentity, identity)
		c.Next()
	}
}

// GetIdentity retrieves the restored identity from the Gin context.
func GetIdentity(c *gin.Context) *model.Identity {
	val, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return nil
	}
	identity, ok := val.(*model.Identity)
	if !ok {
		return nil
	}
	return identity
}

// GetSessionID retrieves the session ID from the Gin context.
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}

// extractSessionID reads the bearer session ID from the Authorization
// header, falling back to the ?session query param for EventSource clients
// that cannot send headers.
func extractSessionID(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return c.Query("session")
}
