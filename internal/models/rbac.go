package models

// Role is the permission group stored on a user's credential.
type Role string

// Known roles, in increasing order of privilege.
const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// AllRoles lists every assignable role.
var AllRoles = []Role{RoleUser, RoleModerator, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// In reports whether r is a member of allowed.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// ParseRole converts a raw string into a Role. The second return value is
// false for unknown roles.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}
