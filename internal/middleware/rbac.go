package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumetry/staffdesk-backend/internal/model"
	"github.com/edumetry/staffdesk-backend/internal/rbac"
	"github.com/edumetry/staffdesk-backend/internal/response"
)

// RequireCapability gates a route behind the access guard. Run after
// RequireSession. A deny is answered with 403 and rendered by the client as
// the access-denied view; it is a routine outcome, not logged as an error.
func RequireCapability(capability model.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)

		switch rbac.Authorize(capability, identity) {
		case rbac.DecisionAllow:
			c.Next()
		case rbac.DecisionDeny:
			response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
		default:
			response.AbortRedirect(c, http.StatusUnauthorized, response.ErrSessionRequired, rbac.LoginDestination)
		}
	}
}

// RequireAnyCapability passes when the guard allows at least one of the
// given capabilities.
func RequireAnyCapability(capabilities ...model.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			response.AbortRedirect(c, http.StatusUnauthorized, response.ErrSessionRequired, rbac.LoginDestination)
			return
		}

		for _, capability := range capabilities {
			if rbac.Authorize(capability, identity) == rbac.DecisionAllow {
				c.Next()
				return
			}
		}

		response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
	}
}
