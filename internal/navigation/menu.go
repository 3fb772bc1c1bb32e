// Package navigation derives the side-menu surface from the role permission
// table. The menu is a static ordered descriptor list; what a user sees is
// purely a function of their role.
package navigation

import (
	"github.com/edumetry/staffdesk-backend/internal/model"
	"github.com/edumetry/staffdesk-backend/internal/rbac"
)

// Override replaces an entry's presentation for one specific role. Zero
// fields fall back to the entry's defaults.
type Override struct {
	Label       string
	Destination string
	Capability  model.Capability
}

// MenuEntry is one static navigation descriptor. Declaration order is the
// on-screen order. RoleOverrides lets a single logical entry point to a
// different label, destination, or guard per role; adding a role is a data
// edit, not a code change.
type MenuEntry struct {
	Label         string
	Destination   string
	Capability    model.Capability
	RoleOverrides map[model.Role]Override
}

// menu is the full navigation surface, constructed once and never mutated.
var menu = []MenuEntry{
	{Label: "Dashboard", Destination: "/dashboard", Capability: model.CapabilityDashboard},
	{Label: "My Profile", Destination: "/profile", Capability: model.CapabilityProfile},
	{Label: "Apply Leave", Destination: "/leave/apply", Capability: model.CapabilityApplyLeave},
	{Label: "Leave Status", Destination: "/leave/status", Capability: model.CapabilityLeaveStatus},
	{Label: "Leave Approvals", Destination: "/leave/approvals", Capability: model.CapabilityApproveLeave},
	{Label: "Charge Handover", Destination: "/handover", Capability: model.CapabilityChargeHandover},
	{Label: "Handover Approvals", Destination: "/handover/approvals", Capability: model.CapabilityApproveHandover},
	{Label: "Payroll", Destination: "/payroll", Capability: model.CapabilityPayroll},
	{Label: "Manage Payroll", Destination: "/payroll/manage", Capability: model.CapabilityPayrollManage},
	{Label: "Faculty", Destination: "/faculty", Capability: model.CapabilityManageFaculty},
	{Label: "Reports", Destination: "/reports", Capability: model.CapabilityReports},
	{
		Label:       "Announcements",
		Destination: "/announcements",
		Capability:  model.CapabilityAnnouncementManage,
		RoleOverrides: map[model.Role]Override{
			model.RoleHOD: {
				Label:       "Compose Announcement",
				Destination: "/announcements/compose",
				Capability:  model.CapabilityComposeByHOD,
			},
			model.RoleTeaching: {
				Destination: "/announcements/teaching",
				Capability:  model.CapabilityAnnouncementTeaching,
			},
			model.RoleNonTeaching: {
				Destination: "/announcements/nonteaching",
				Capability:  model.CapabilityAnnouncementNonTeaching,
			},
		},
	},
}

// resolve applies the role override for an entry, if any.
func (e MenuEntry) resolve(role model.Role) (label, destination string, capability model.Capability) {
	label, destination, capability = e.Label, e.Destination, e.Capability
	ov, ok := e.RoleOverrides[role]
	if !ok {
		return label, destination, capability
	}
	if ov.Label != "" {
		label = ov.Label
	}
	if ov.Destination != "" {
		destination = ov.Destination
	}
	if ov.Capability != "" {
		capability = ov.Capability
	}
	return label, destination, capability
}

// MenuFor returns the navigation entries visible to a role, in declaration
// order. An entry is included only when its role-resolved capability is
// permitted for the role. Pure function of role plus static data.
func MenuFor(role model.Role) []model.MenuItem {
	perms := rbac.PermissionsFor(role)
	items := make([]model.MenuItem, 0, len(menu))
	for _, e := range menu {
		label, destination, capability := e.resolve(role)
		if !perms.Has(capability) {
			continue
		}
		items = append(items, model.MenuItem{Label: label, Destination: destination})
	}
	return items
}
