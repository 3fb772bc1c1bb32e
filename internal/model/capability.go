package model

// Capability is a string code naming one guardable unit of functionality.
// Capabilities are flat, not hierarchical; each role lists the ones it may
// exercise. Identifier spelling is shared with the web client's route table.
type Capability string

const (
	// CapabilityDashboard allows viewing the landing dashboard.
	CapabilityDashboard Capability = "dashboard"

	// CapabilityProfile allows viewing and editing the own profile page.
	CapabilityProfile Capability = "profile"

	// CapabilityApplyLeave allows submitting a leave application.
	CapabilityApplyLeave Capability = "applyleave"

	// CapabilityLeaveStatus allows tracking the own leave applications.
	CapabilityLeaveStatus Capability = "leavestatus"

	// CapabilityApproveLeave allows approving or rejecting leave applications.
	CapabilityApproveLeave Capability = "approveleave"

	// CapabilityChargeHandover allows initiating a charge handover.
	CapabilityChargeHandover Capability = "chargehandover"

	// CapabilityApproveHandover allows approving charge handovers.
	CapabilityApproveHandover Capability = "approvehandover"

	// CapabilityPayroll allows viewing the own salary breakdown.
	CapabilityPayroll Capability = "payroll"

	// CapabilityPayrollManage allows managing payroll records of others.
	CapabilityPayrollManage Capability = "payrollmanage"

	// CapabilityManageFaculty allows faculty administration screens.
	CapabilityManageFaculty Capability = "managefaculty"

	// CapabilityReports allows institutional report views.
	CapabilityReports Capability = "reports"

	// CapabilityComposeByHOD allows a head of department to compose
	// announcements for their department.
	CapabilityComposeByHOD Capability = "ComposeByHOD"

	// CapabilityAnnouncementTeaching allows reading the teaching staff feed.
	CapabilityAnnouncementTeaching Capability = "announcementteaching"

	// CapabilityAnnouncementNonTeaching allows reading the non-teaching feed.
	CapabilityAnnouncementNonTeaching Capability = "announcementnonteaching"

	// CapabilityAnnouncementManage allows publishing institution-wide
	// announcements.
	CapabilityAnnouncementManage Capability = "announcementmanage"
)

// AllCapabilities is a slice of all guardable capabilities.
var AllCapabilities = []Capability{
	CapabilityDashboard,
	CapabilityProfile,
	CapabilityApplyLeave,
	CapabilityLeaveStatus,
	CapabilityApproveLeave,
	CapabilityChargeHandover,
	CapabilityApproveHandover,
	CapabilityPayroll,
	CapabilityPayrollManage,
	CapabilityManageFaculty,
	CapabilityReports,
	CapabilityComposeByHOD,
	CapabilityAnnouncementTeaching,
	CapabilityAnnouncementNonTeaching,
	CapabilityAnnouncementManage,
}
