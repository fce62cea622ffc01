package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInitialAdminInput defines the data required to bootstrap the first admin.
type RegisterInitialAdminInput struct {
	Name     string
	Email    string
	Password string
}

// AdminLoginInput defines the data required for an admin to log in.
type AdminLoginInput struct {
	Email    string
	Password string
}

// SupplierActionInput is the decoded moderation action for a supplier.
// Action is validated once at the boundary; Badges is only read for the
// update_badges action.
type SupplierActionInput struct {
	SupplierID uuid.UUID
	Action     SupplierAction
	Badges     []string
	AdminID    uuid.UUID
}

// SupplierAction enumerates the moderation actions an admin can apply to a supplier.
type SupplierAction string

const (
	SupplierActionApprove      SupplierAction = "approve"
	SupplierActionSuspend      SupplierAction = "suspend"
	SupplierActionRestore      SupplierAction = "restore"
	SupplierActionUpdateBadges SupplierAction = "update_badges"
)

// BuyerAction enumerates the moderation actions an admin can apply to a buyer.
type BuyerAction string

const (
	BuyerActionWarn     BuyerAction = "warn"
	BuyerActionRestrict BuyerAction = "restrict"
	BuyerActionRestore  BuyerAction = "restore"
	BuyerActionDismiss  BuyerAction = "dismiss"
)

// BuyerActionInput is the decoded moderation action for a buyer.
type BuyerActionInput struct {
	BuyerID uuid.UUID
	Action  BuyerAction
	AdminID uuid.UUID
}

// --- Output DTOs ---

// AdminSessionOutput returns the session token and the admin after a login.
type AdminSessionOutput struct {
	Token string
	Admin *entity.Admin
}

// DashboardOutput aggregates the admin dashboard counters and feeds.
type DashboardOutput struct {
	PendingSuppliers int64
	TotalSuppliers   int64
	FlaggedBuyers    int64
	RecentInquiries  int64 // Inquiries created in the last 7 days.
	RecentActivity   []*entity.ActivityLog
	ActiveAlerts     []*entity.AIAlert
}

// AdminUsecase defines the back-office operations: bootstrap, login,
// dashboard aggregation, listings, and the two moderation state machines.
type AdminUsecase interface {
	// RegisterInitialAdmin creates the very first super admin. It fails with a
	// conflict error as soon as any admin account exists.
	RegisterInitialAdmin(ctx context.Context, input *RegisterInitialAdminInput) (*AdminSessionOutput, error)

	// Login authenticates an admin, bumps lastLogin, and issues a session token.
	Login(ctx context.Context, input *AdminLoginInput) (*AdminSessionOutput, error)

	// Dashboard aggregates the counters and feeds shown on the admin home page.
	Dashboard(ctx context.Context) (*DashboardOutput, error)

	// ListSuppliers returns all suppliers with their KYC documents, newest first.
	ListSuppliers(ctx context.Context) ([]*entity.Supplier, error)

	// GetSupplier returns one supplier with documents.
	GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// ListBuyers returns all buyers, newest first.
	ListBuyers(ctx context.Context) ([]*entity.Buyer, error)

	// ApplySupplierAction applies one moderation action to a supplier. The
	// transition is applied unconditionally regardless of the current status.
	// Every successful action writes exactly one audit entry.
	ApplySupplierAction(ctx context.Context, input *SupplierActionInput) (*entity.Supplier, error)

	// ApplyBuyerAction applies one moderation action to a buyer.
	ApplyBuyerAction(ctx context.Context, input *BuyerActionInput) (*entity.Buyer, error)
}
