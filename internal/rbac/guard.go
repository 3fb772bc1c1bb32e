package rbac

import "github.com/edumetry/staffdesk-backend/internal/model"

// Decision is the terminal outcome of an authorization check.
type Decision string

const (
	// DecisionAllow renders the requested view.
	DecisionAllow Decision = "allow"

	// DecisionDeny renders the access-denied view. It carries no detail
	// beyond "not permitted"; a denial is a routine outcome of the
	// permission model, not an application error.
	DecisionDeny Decision = "deny"

	// DecisionRedirect sends the client to the login view.
	DecisionRedirect Decision = "redirect"
)

// LoginDestination is the target of a DecisionRedirect.
const LoginDestination = "/login"

// Authorize decides whether the identity may access a view guarded by the
// given capability. A nil identity means no authenticated session and always
// redirects. An empty capability marks a view with no specific guard (a
// generic landing page) and is allowed for any authenticated session.
//
// Authorize is a pure function: safe to call repeatedly and concurrently,
// mutating nothing.
func Authorize(capability model.Capability, identity *model.Identity) Decision {
	if identity == nil {
		return DecisionRedirect
	}
	if capability == "" {
		return DecisionAllow
	}
	if Allowed(identity.Role, capability) {
		return DecisionAllow
	}
	return DecisionDeny
}
