package entity

import "github.com/google/uuid"

// PrincipalKind identifies which account table a resolved principal lives in.
type PrincipalKind string

const (
	// PrincipalBuyer is a buyer account.
	PrincipalBuyer PrincipalKind = "buyer"
	// PrincipalSupplier is a supplier account.
	PrincipalSupplier PrincipalKind = "supplier"
	// PrincipalAdmin is a back-office admin account.
	PrincipalAdmin PrincipalKind = "admin"
)

// String returns the string representation of the PrincipalKind.
func (k PrincipalKind) String() string {
	return string(k)
}

// IsValid checks if the PrincipalKind is a valid value.
func (k PrincipalKind) IsValid() bool {
	switch k {
	case PrincipalBuyer, PrincipalSupplier, PrincipalAdmin:
		return true
	default:
		return false
	}
}

// Principal is the authenticated actor resolved from a request. It is
// transient: resolved per request from the attached credentials and never
// persisted by the identity logic itself.
type Principal struct {
	ID    uuid.UUID
	Kind  PrincipalKind
	Email string
	Role  string // Admin role when Kind is PrincipalAdmin, otherwise empty.
}
