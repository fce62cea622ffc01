package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole represents the privilege level of an admin account.
type AdminRole string

const (
	// AdminRoleSuper is the initial, fully privileged admin role.
	AdminRoleSuper AdminRole = "super_admin"
	// AdminRoleStandard is a regular moderation admin.
	AdminRoleStandard AdminRole = "admin"
)

// String returns the string representation of the AdminRole.
func (r AdminRole) String() string {
	return string(r)
}

// Admin is a back-office account that moderates suppliers and buyers.
// Admins only authenticate with email/password; there is no third-party
// sign-in path for them.
type Admin struct {
	ID           uuid.UUID
	Email        string // Unique login identifier.
	PasswordHash string // bcrypt hash.
	Name         string
	Role         AdminRole
	LastLogin    *time.Time // nil until the first successful login.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
