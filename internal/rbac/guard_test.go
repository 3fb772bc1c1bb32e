package rbac_test

import (
	"testing"

	"github.com/edumetry/staffdesk-backend/internal/model"
	"github.com/edumetry/staffdesk-backend/internal/rbac"
)

func identityWithRole(role model.Role) *model.Identity {
	return &model.Identity{
		EmployeeID: "E1001",
		Email:      "staff@example.edu",
		Role:       role,
		Token:      "opaque-token",
	}
}

func TestAuthorizeUnauthenticatedAlwaysRedirects(t *testing.T) {
	for _, capability := range append([]model.Capability{""}, model.AllCapabilities...) {
		if d := rbac.Authorize(capability, nil); d != rbac.DecisionRedirect {
			t.Fatalf("capability %q: expected redirect for nil identity, got %s", capability, d)
		}
	}
}

func TestAuthorizeNoCapabilityAllows(t *testing.T) {
	for _, role := range model.AllRoles {
		if d := rbac.Authorize("", identityWithRole(role)); d != rbac.DecisionAllow {
			t.Fatalf("role %s: ungated view should be allowed, got %s", role, d)
		}
	}
}

func TestAuthorizeMatchesPermissionTable(t *testing.T) {
	for _, role := range model.AllRoles {
		perms := rbac.PermissionsFor(role)
		for _, capability := range model.AllCapabilities {
			decision := rbac.Authorize(capability, identityWithRole(role))
			if perms.Has(capability) && decision != rbac.DecisionAllow {
				t.Fatalf("role %s capability %s: expected allow, got %s", role, capability, decision)
			}
			if !perms.Has(capability) && decision != rbac.DecisionDeny {
				t.Fatalf("role %s capability %s: expected deny, got %s", role, capability, decision)
			}
		}
	}
}

func TestAuthorizeScenarios(t *testing.T) {
	if d := rbac.Authorize(model.CapabilityApproveLeave, identityWithRole(model.RoleTeaching)); d != rbac.DecisionDeny {
		t.Fatalf("teaching + approveleave: expected deny, got %s", d)
	}
	if d := rbac.Authorize(model.CapabilityApproveLeave, identityWithRole(model.RoleHOD)); d != rbac.DecisionAllow {
		t.Fatalf("HOD + approveleave: expected allow, got %s", d)
	}
}

func TestAuthorizeCoercedRoleStillRoutable(t *testing.T) {
	// An identity built from an out-of-range role lands on the fallback
	// role and keeps a working capability set.
	identity := identityWithRole(model.NormalizeRole("superadmin"))
	if identity.Role != model.RoleTeaching {
		t.Fatalf("expected coercion to teaching, got %s", identity.Role)
	}
	if d := rbac.Authorize(model.CapabilityDashboard, identity); d != rbac.DecisionAllow {
		t.Fatalf("coerced identity should reach the dashboard, got %s", d)
	}
}
