package model

// Role identifies a staff role. The set is closed: every identity entering
// the system carries exactly one of the enumerated values.
type Role string

const (
	RoleDirector    Role = "director"
	RolePrincipal   Role = "principal"
	RoleHOD         Role = "HOD"
	RoleTeaching    Role = "teaching"
	RoleNonTeaching Role = "nonteaching"
	RoleFacultyMgmt Role = "facultymanagement"
)

// RoleFallback is the minimally-privileged role substituted whenever an
// identity arrives with a role outside the enumeration (corrupted persisted
// record, unexpected value from the auth service). The user lands in a
// working view instead of being locked out.
const RoleFallback = RoleTeaching

// AllRoles lists every valid role in a stable order.
var AllRoles = []Role{
	RoleDirector,
	RolePrincipal,
	RoleHOD,
	RoleTeaching,
	RoleNonTeaching,
	RoleFacultyMgmt,
}

// IsValid reports whether r is a member of the role enumeration.
func (r Role) IsValid() bool {
	switch r {
	case RoleDirector, RolePrincipal, RoleHOD, RoleTeaching, RoleNonTeaching, RoleFacultyMgmt:
		return true
	}
	return false
}

// NormalizeRole coerces an arbitrary role string into the enumeration,
// substituting RoleFallback for unknown values. It never fails.
func NormalizeRole(raw string) Role {
	r := Role(raw)
	if !r.IsValid() {
		return RoleFallback
	}
	return r
}
