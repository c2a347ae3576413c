package directory

// UserRole is the user's global role
type UserRole string

const (
	// RoleUser is the regular member role
	RoleUser UserRole = "USER"
	// RoleAdmin grants administrative access
	RoleAdmin UserRole = "ADMIN"
)

// IsValid checks if the role is one of the predefined valid roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAtLeast checks if this role meets the minimum required level
func (r UserRole) IsAtLeast(minRole UserRole) bool {
	roleHierarchy := map[UserRole]int{
		RoleUser:  0,
		RoleAdmin: 1,
	}

	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// ParseRole safely parses a string into a UserRole type
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, role.IsValid()
}

// OrganisationStatus tracks whether an organisation is live
type OrganisationStatus string

const (
	// StatusActive marks a live organisation
	StatusActive OrganisationStatus = "ACTIVE"
	// StatusInactive is the default for newly created organisations
	StatusInactive OrganisationStatus = "INACTIVE"
)

// IsValid checks if the status is one of the predefined values
func (s OrganisationStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
