package domain

// UserRole defines the closed set of roles a user can hold.
type UserRole string

const (
	RoleSalesEngineer UserRole = "sales_engineer"
	RoleTeamLeader    UserRole = "team_leader"
	RoleAdmin         UserRole = "admin"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleSalesEngineer, RoleTeamLeader, RoleAdmin:
		return true
	}
	return false
}

// User represents a user of the application in the domain. Users are created at
// login-time persona selection and never deleted.
type User struct {
	UserID       string   `json:"id"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	TeamLeaderID string   `json:"teamLeaderId,omitempty"` // owning team leader, set for sales engineers
	AuditFields
}
