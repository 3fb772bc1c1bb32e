package rbac

import "github.com/edumetry/staffdesk-backend/internal/model"

// CapabilitySet is an immutable membership set over capabilities.
type CapabilitySet map[model.Capability]struct{}

// Has reports whether c is a member of the set.
func (s CapabilitySet) Has(c model.Capability) bool {
	_, ok := s[c]
	return ok
}

// List returns the members in the role table's declaration order.
func (s CapabilitySet) List() []model.Capability {
	out := make([]model.Capability, 0, len(s))
	for _, c := range model.AllCapabilities {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func newSet(caps ...model.Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// rolePermissions is the static role → capability table. Built once at
// package init and never mutated. Every enumerated role has an entry.
var rolePermissions = map[model.Role]CapabilitySet{
	model.RoleDirector: newSet(
		model.CapabilityDashboard,
		model.CapabilityProfile,
		model.CapabilityApproveLeave,
		model.CapabilityApproveHandover,
		model.CapabilityPayroll,
		model.CapabilityPayrollManage,
		model.CapabilityManageFaculty,
		model.CapabilityReports,
		model.CapabilityAnnouncementManage,
	),
	model.RolePrincipal: newSet(
		model.CapabilityDashboard,
		model.CapabilityProfile,
		model.CapabilityApproveLeave,
		model.CapabilityApproveHandover,
		model.CapabilityPayroll,
		model.CapabilityManageFaculty,
		model.CapabilityReports,
		model.CapabilityAnnouncementManage,
	),
	model.RoleHOD: newSet(
		model.CapabilityDashboard,
		model.CapabilityProfile,
		model.CapabilityApplyLeave,
		model.CapabilityLeaveStatus,
		model.CapabilityApproveLeave,
		model.CapabilityChargeHandover,
		model.CapabilityApproveHandover,
		model.CapabilityPayroll,
		model.CapabilityComposeByHOD,
	),
	model.RoleTeaching: newSet(
		model.CapabilityDashboard,
		model.CapabilityProfile,
		model.CapabilityApplyLeave,
		model.CapabilityLeaveStatus,
		model.CapabilityChargeHandover,
		model.CapabilityPayroll,
		model.CapabilityAnnouncementTeaching,
	),
	model.RoleNonTeaching: newSet(
		model.CapabilityDashboard,
		model.CapabilityProfile,
		model.CapabilityApplyLeave,
		model.CapabilityLeaveStatus,
		model.CapabilityPayroll,
		model.CapabilityAnnouncementNonTeaching,
	),
	model.RoleFacultyMgmt: newSet(
		model.CapabilityDashboard,
		model.CapabilityProfile,
		model.CapabilityPayrollManage,
		model.CapabilityManageFaculty,
		model.CapabilityReports,
		model.CapabilityAnnouncementManage,
	),
}

var emptySet = CapabilitySet{}

// PermissionsFor returns the capability set for a role. Unknown roles get
// the empty set, never an error: the lookup is total by design so callers
// need no defensive branching.
func PermissionsFor(role model.Role) CapabilitySet {
	if s, ok := rolePermissions[role]; ok {
		return s
	}
	return emptySet
}

// Allowed reports whether the role may exercise the capability.
func Allowed(role model.Role, capability model.Capability) bool {
	return PermissionsFor(role).Has(capability)
}
