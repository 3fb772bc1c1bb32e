package rbac_test

import (
	"testing"

	"github.com/edumetry/staffdesk-backend/internal/model"
	"github.com/edumetry/staffdesk-backend/internal/rbac"
)

func TestPermissionsForEveryRole(t *testing.T) {
	for _, role := range model.AllRoles {
		perms := rbac.PermissionsFor(role)
		if perms == nil {
			t.Fatalf("role %s: expected non-nil capability set", role)
		}
		if len(perms) == 0 {
			t.Fatalf("role %s: expected at least one capability", role)
		}
		// Deterministic across calls.
		again := rbac.PermissionsFor(role)
		if len(again) != len(perms) {
			t.Fatalf("role %s: lookup not deterministic", role)
		}
	}
}

func TestPermissionsForUnknownRole(t *testing.T) {
	perms := rbac.PermissionsFor(model.Role("superadmin"))
	if len(perms) != 0 {
		t.Fatalf("unknown role: expected empty set, got %d capabilities", len(perms))
	}
	if perms.Has(model.CapabilityDashboard) {
		t.Fatalf("unknown role must not have any capability")
	}
}

func TestTeachingLacksApproveLeave(t *testing.T) {
	if rbac.Allowed(model.RoleTeaching, model.CapabilityApproveLeave) {
		t.Fatalf("teaching must not hold approveleave")
	}
}

func TestHODHasApproveLeave(t *testing.T) {
	if !rbac.Allowed(model.RoleHOD, model.CapabilityApproveLeave) {
		t.Fatalf("HOD must hold approveleave")
	}
}

func TestNonTeachingAnnouncements(t *testing.T) {
	if !rbac.Allowed(model.RoleNonTeaching, model.CapabilityAnnouncementNonTeaching) {
		t.Fatalf("nonteaching must hold announcementnonteaching")
	}
	if rbac.Allowed(model.RoleNonTeaching, model.CapabilityComposeByHOD) {
		t.Fatalf("nonteaching must not hold ComposeByHOD")
	}
}

func TestListFollowsDeclarationOrder(t *testing.T) {
	list := rbac.PermissionsFor(model.RoleDirector).List()
	index := make(map[model.Capability]int, len(model.AllCapabilities))
	for i, c := range model.AllCapabilities {
		index[c] = i
	}
	for i := 1; i < len(list); i++ {
		if index[list[i-1]] >= index[list[i]] {
			t.Fatalf("capability list out of order: %v before %v", list[i-1], list[i])
		}
	}
}
