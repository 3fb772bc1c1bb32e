package model

// Identity is the authenticated staff member as established by the external
// auth service. Role is always a member of the role enumeration after
// construction; use NewIdentity or NormalizeRole when ingesting external
// values.
type Identity struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Role       Role   `json:"role"`
	// Token is the opaque credential issued by the auth service. It is
	// persisted separately from the profile and never rendered in API
	// responses.
	Token string `json:"-"`
}

// NewIdentity builds an Identity from externally supplied fields, coercing
// the role into the enumeration.
func NewIdentity(employeeID, email, name, department, role, token string) Identity {
	return Identity{
		EmployeeID: employeeID,
		Email:      email,
		Name:       name,
		Department: department,
		Role:       NormalizeRole(role),
		Token:      token,
	}
}

// LoginRequest is the payload for staff authentication.
type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=64"`
	Password   string `json:"password" binding:"required,min=6,max=128"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	SessionID    string       `json:"session_id"`
	Identity     Identity     `json:"identity"`
	Capabilities []Capability `json:"capabilities"`
	Menu         []MenuItem   `json:"menu"`
}

// MenuItem is one rendered navigation entry, already resolved for the
// session's role.
type MenuItem struct {
	Label       string `json:"label"`
	Destination string `json:"destination"`
}
