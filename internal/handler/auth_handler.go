package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumetry/staffdesk-backend/internal/authclient"
	"github.com/edumetry/staffdesk-backend/internal/middleware"
	"github.com/edumetry/staffdesk-backend/internal/model"
	"github.com/edumetry/staffdesk-backend/internal/navigation"
	"github.com/edumetry/staffdesk-backend/internal/rbac"
	"github.com/edumetry/staffdesk-backend/internal/response"
	"github.com/edumetry/staffdesk-backend/internal/session"
	"github.com/edumetry/staffdesk-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	manager *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(manager *session.Manager) *AuthHandler {
	return &AuthHandler{manager: manager}
}

// Login godoc
// POST /api/v1/auth/login
// Forwards credentials to the auth service and establishes a session on
// success. The response carries everything the client needs to render its
// first authenticated view: identity, capability list, and menu.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sessionID, identity, err := h.manager.Login(c.Request.Context(), req.EmployeeID, req.Password)
	if err != nil {
		h.failLogin(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{
		SessionID:    sessionID,
		Identity:     *identity,
		Capabilities: rbac.PermissionsFor(identity.Role).List(),
		Menu:         navigation.MenuFor(identity.Role),
	})
}

// Logout godoc
// POST /api/v1/auth/logout
// Clears the session. Idempotent: logging out an already-absent session
// still answers 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if err := h.manager.Logout(c.Request.Context(), sessionID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"redirect_to": rbac.LoginDestination})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the restored identity and its capabilities.
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		response.AbortRedirect(c, http.StatusUnauthorized, response.ErrSessionRequired, rbac.LoginDestination)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"identity":     identity,
		"capabilities": rbac.PermissionsFor(identity.Role).List(),
	})
}

// failLogin maps lifecycle errors onto the response taxonomy. Session state
// is unchanged on every path here.
func (h *AuthHandler) failLogin(c *gin.Context, err error) {
	var upstream *authclient.UpstreamError
	switch {
	case errors.As(err, &upstream):
		// The auth service's reason is surfaced to the user verbatim.
		response.FailWithMessage(c, http.StatusUnauthorized, response.ErrInvalidCredentials, upstream.Message)
	case errors.Is(err, session.ErrLoginSuperseded):
		response.Fail(c, http.StatusConflict, response.ErrLoginSuperseded)
	case errors.Is(err, session.ErrIncompleteIdentity):
		response.Fail(c, http.StatusBadGateway, response.ErrAuthUnavailable)
	default:
		response.Fail(c, http.StatusBadGateway, response.ErrAuthUnavailable)
	}
}
