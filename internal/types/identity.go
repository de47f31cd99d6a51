package types

import "slices"

// Role is a role label carried by an identity
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// Identity is the authenticated principal for a single request
type Identity struct {
	Username string
	Roles    []Role
}

// HasRole reports whether the identity carries role. A nil identity has no roles.
func (i *Identity) HasRole(role Role) bool {
	if i == nil {
		return false
	}
	return slices.Contains(i.Roles, role)
}

// ParseRoles converts role names into roles, dropping blanks
func ParseRoles(names []string) []Role {
	roles := make([]Role, 0, len(names))
	for _, n := range names {
		if n != "" {
			roles = append(roles, Role(n))
		}
	}
	return roles
}
