package model

import "strings"

// NavItem is one sidebar entry. AdminOnly and EmployeeOnly gate
// visibility against the session's effective role.
type NavItem struct {
	Title        string `json:"title"`
	Href         string `json:"href"`
	AdminOnly    bool   `json:"admin_only,omitempty"`
	EmployeeOnly bool   `json:"employee_only,omitempty"`
}

// NavItems is the canonical sidebar, in declaration order. The
// navigation filter preserves this order and never sorts.
var NavItems = []NavItem{
	{Title: "Dashboard", Href: "/dashboard"},
	{Title: "My Profile", Href: "/profile"},
	{Title: "Attendance", Href: "/attendance"},
	{Title: "Leave", Href: "/leave"},
	{Title: "Payroll", Href: "/payroll"},
	{Title: "Employee Directory", Href: "/employees", AdminOnly: true},
	{Title: "Leave Approvals", Href: "/leave-approvals", AdminOnly: true},
	{Title: "Payroll Management", Href: "/payroll-management", AdminOnly: true},
}

// RouteSpec declares the access requirements of one client route.
// RequiredRole empty means any authenticated session may render.
type RouteSpec struct {
	Path         string `json:"path"`
	Protected    bool   `json:"protected"`
	RequiredRole Role   `json:"required_role,omitempty"`
}

// Routes is the canonical route table.
var Routes = []RouteSpec{
	{Path: "/"},
	{Path: "/auth"},
	{Path: "/dashboard", Protected: true},
	{Path: "/profile", Protected: true},
	{Path: "/profile/:userId", Protected: true},
	{Path: "/employees", Protected: true, RequiredRole: RoleAdmin},
	{Path: "/attendance", Protected: true},
	{Path: "/leave", Protected: true},
	{Path: "/leave-approvals", Protected: true, RequiredRole: RoleAdmin},
	{Path: "/payroll", Protected: true},
	{Path: "/payroll-management", Protected: true, RequiredRole: RoleAdmin},
}

// FindRoute looks up the route covering a path. Parameterized segments
// (":userId") match any single non-empty segment, so "/profile/u2"
// resolves to "/profile/:userId". The second result is false for
// unknown paths (the router's wildcard / not-found case).
func FindRoute(path string) (RouteSpec, bool) {
	for _, r := range Routes {
		if matchPath(r.Path, path) {
			return r, true
		}
	}
	return RouteSpec{}, false
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}
	patternSegs := strings.Split(pattern, "/")
	pathSegs := strings.Split(path, "/")
	if len(patternSegs) != len(pathSegs) {
		return false
	}
	for i, seg := range patternSegs {
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}
