package entity

// Role is the role claim issued by the identity provider.
type Role string

const (
	// RoleAuthenticated is carried by every signed-in visitor.
	RoleAuthenticated Role = "authenticated"
	// RoleAdmin may read internal data such as the waitlist.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAuthenticated, RoleAdmin:
		return true
	default:
		return false
	}
}
