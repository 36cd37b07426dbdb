package domain

import "time"

// User represents a dashboard user.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role represents a user's access level.
type Role string

const (
	// RoleAdmin has full access to all operations
	RoleAdmin Role = "admin"

	// RoleTreasurer can apply ledger mutations and manage members
	RoleTreasurer Role = "treasurer"

	// RoleViewer can only view resources, no mutations
	RoleViewer Role = "viewer"
)

var validRoles = map[Role]bool{
	RoleAdmin:     true,
	RoleTreasurer: true,
	RoleViewer:    true,
}

// IsValid checks if the role is a valid role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanMutate checks if the role may apply ledger mutations.
func (r Role) CanMutate() bool {
	return r == RoleAdmin || r == RoleTreasurer
}
