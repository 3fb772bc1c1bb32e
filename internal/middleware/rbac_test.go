package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edumetry/staffdesk-backend/internal/middleware"
	"github.com/edumetry/staffdesk-backend/internal/model"
)

func performGuarded(t *testing.T, identity *model.Identity, guard gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded",
		func(c *gin.Context) {
			if identity != nil {
				c.Set(middleware.ContextKeyIdentity, identity)
			}
			c.Next()
		},
		guard,
		func(c *gin.Context) { c.String(http.StatusOK, "content") },
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireCapabilityAllows(t *testing.T) {
	identity := &model.Identity{EmployeeID: "E1", Role: model.RoleHOD, Token: "tok"}
	rec := performGuarded(t, identity, middleware.RequireCapability(model.CapabilityApproveLeave))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestRequireCapabilityDenies(t *testing.T) {
	identity := &model.Identity{EmployeeID: "E1", Role: model.RoleTeaching, Token: "tok"}
	rec := performGuarded(t, identity, middleware.RequireCapability(model.CapabilityApproveLeave))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "PERMISSION_DENIED") {
		t.Fatalf("expected PERMISSION_DENIED body, got %s", rec.Body.String())
	}
}

func TestRequireCapabilityRedirectsUnauthenticated(t *testing.T) {
	rec := performGuarded(t, nil, middleware.RequireCapability(model.CapabilityDashboard))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"redirect_to":"/login"`) {
		t.Fatalf("expected login redirect, got %s", rec.Body.String())
	}
}

func TestRequireAnyCapability(t *testing.T) {
	identity := &model.Identity{EmployeeID: "E1", Role: model.RoleNonTeaching, Token: "tok"}

	rec := performGuarded(t, identity, middleware.RequireAnyCapability(
		model.CapabilityApproveLeave,
		model.CapabilityAnnouncementNonTeaching,
	))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when one capability matches, got %d", rec.Code)
	}

	rec = performGuarded(t, identity, middleware.RequireAnyCapability(
		model.CapabilityApproveLeave,
		model.CapabilityComposeByHOD,
	))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when no capability matches, got %d", rec.Code)
	}
}
