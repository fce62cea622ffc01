// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is a domain-specific error returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the standard operations for admin account persistence.
type AdminRepository interface {
	// FindByID retrieves a single admin by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves a single admin by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create persists a new admin account.
	Create(ctx context.Context, admin *entity.Admin) error

	// Update modifies an existing admin account.
	Update(ctx context.Context, admin *entity.Admin) error

	// Count returns the total number of admin accounts.
	Count(ctx context.Context) (int64, error)
}
