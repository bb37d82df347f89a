package model

// Role constants
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStaff   = "staff"
)

// User is an account in the user directory. Credentials are stored and
// matched as plain text; hardening the credential store is explicitly out
// of scope for this system.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleFaculty || role == RoleStaff
}
