package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumetry/staffdesk-backend/internal/middleware"
	"github.com/edumetry/staffdesk-backend/internal/model"
	"github.com/edumetry/staffdesk-backend/internal/navigation"
	"github.com/edumetry/staffdesk-backend/internal/rbac"
	"github.com/edumetry/staffdesk-backend/internal/response"
)

// PortalHandler serves the session-scoped portal surface: the derived
// navigation menu and guard decisions for the client's route layer.
type PortalHandler struct{}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler() *PortalHandler {
	return &PortalHandler{}
}

// Navigation godoc
// GET /api/v1/portal/navigation
// Returns the menu entries visible to the session's role, in display order.
func (h *PortalHandler) Navigation(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		response.AbortRedirect(c, http.StatusUnauthorized, response.ErrSessionRequired, rbac.LoginDestination)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"role": identity.Role,
		"menu": navigation.MenuFor(identity.Role),
	})
}

// Permissions godoc
// GET /api/v1/portal/permissions
// Returns the full role → capability table, used by the faculty management
// screens to display what each role may do.
func (h *PortalHandler) Permissions(c *gin.Context) {
	table := make(map[model.Role][]model.Capability, len(model.AllRoles))
	for _, role := range model.AllRoles {
		table[role] = rbac.PermissionsFor(role).List()
	}
	response.Success(c, http.StatusOK, gin.H{"roles": table})
}

// Authorize godoc
// GET /api/v1/portal/authz?capability=X
// Exposes the access guard as data so the client's route layer can decide
// between rendering, an access-denied view, and the login redirect before
// mounting a view. An empty capability means the view declares no guard.
func (h *PortalHandler) Authorize(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	capability := model.Capability(c.Query("capability"))

	decision := rbac.Authorize(capability, identity)

	body := gin.H{"decision": decision}
	if decision == rbac.DecisionRedirect {
		body["redirect_to"] = rbac.LoginDestination
	}
	response.Success(c, http.StatusOK, body)
}
