// Package authz is the single authorization decision point. Route
// access and navigation visibility both resolve here instead of ad hoc
// role checks at render sites.
package authz

import "go-dayflow-hrms/internal/model"

// Action is the outcome of a route evaluation.
type Action string

const (
	ActionRender              Action = "render"
	ActionRedirectToSignIn    Action = "redirect_sign_in"
	ActionRedirectToDashboard Action = "redirect_dashboard"
)

// Decision carries the action plus a reason for denied renders.
type Decision struct {
	Action Action `json:"action"`
	Reason string `json:"reason,omitempty"`
}

// Guard evaluates routes against the canonical route table. With role
// enforcement off, role-marked routes behave like the rest of the
// protected set: the nav link is hidden but the page still renders.
type Guard struct {
	enforceRoles bool
}

func NewGuard(enforceRoles bool) *Guard {
	return &Guard{enforceRoles: enforceRoles}
}

// EnforcesRoles reports whether role-marked routes are access-controlled.
func (g *Guard) EnforcesRoles() bool { return g.enforceRoles }

// Evaluate decides whether a session may render a route.
// An unauthenticated session is redirected to sign-in for any protected
// route. A role mismatch on a role-marked route is redirected to the
// dashboard with an authorization reason, unless enforcement is off.
func (g *Guard) Evaluate(route model.RouteSpec, authenticated bool, effectiveRole model.Role) Decision {
	if route.Protected && !authenticated {
		return Decision{Action: ActionRedirectToSignIn}
	}
	if g.enforceRoles && route.RequiredRole != "" && route.RequiredRole != effectiveRole {
		return Decision{
			Action: ActionRedirectToDashboard,
			Reason: "you are not authorized to view this page",
		}
	}
	return Decision{Action: ActionRender}
}

// EvaluatePath resolves the path against the route table first. Unknown
// paths render the not-found page, which is open to everyone.
func (g *Guard) EvaluatePath(path string, authenticated bool, effectiveRole model.Role) Decision {
	route, ok := model.FindRoute(path)
	if !ok {
		return Decision{Action: ActionRender}
	}
	return g.Evaluate(route, authenticated, effectiveRole)
}
