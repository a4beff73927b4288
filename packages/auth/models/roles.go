package models

// Available roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// GetDefaultRoles returns the roles assigned to a newly created account
func GetDefaultRoles() Roles {
	return Roles{RoleUser}
}

// GetAllRoles returns every role the API accepts
func GetAllRoles() []string {
	return []string{
		RoleUser,
		RoleAdmin,
		RoleStaff,
	}
}

// IsValidRole reports whether role is one of the accepted roles
func IsValidRole(role string) bool {
	for _, r := range GetAllRoles() {
		if r == role {
			return true
		}
	}
	return false
}
