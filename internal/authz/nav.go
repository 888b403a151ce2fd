package authz

import "go-dayflow-hrms/internal/model"

// VisibleItems filters the sidebar for an effective role. Pure:
// declaration order is preserved and the input is never mutated.
func VisibleItems(items []model.NavItem, effectiveRole model.Role) []model.NavItem {
	out := make([]model.NavItem, 0, len(items))
	for _, item := range items {
		if item.AdminOnly && effectiveRole != model.RoleAdmin {
			continue
		}
		if item.EmployeeOnly && effectiveRole != model.RoleEmployee {
			continue
		}
		out = append(out, item)
	}
	return out
}
