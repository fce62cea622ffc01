package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinPasswordLength = 6
	recentActivityLimit      = 5
	recentInquiryWindow      = 7 * 24 * time.Hour
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	eventPublisher    service.EventPublisher
	minPasswordLength int
	logger            *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	minPasswordLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &adminService{
		txManager:         params.TxManager,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		eventPublisher:    params.EventPublisher,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterInitialAdmin bootstraps the very first admin account. The
// existence check and the insert share one transaction so two racing
// bootstrap calls cannot both succeed.
func (srv *adminService) RegisterInitialAdmin(ctx context.Context, input *usecase.RegisterInitialAdminInput) (*usecase.AdminSessionOutput, error) {
	srv.log(ctx).Info("Bootstrapping initial admin", slog.String("email", input.Email))

	if len(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash admin password")
	}

	newAdmin := &entity.Admin{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Role:         entity.AdminRoleSuper,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		count, err := adminRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count admins")
		}
		if count > 0 {
			return domainerrors.ErrAdminExists
		}

		return adminRepo.Create(ctx, newAdmin)
	})
	if err != nil {
		srv.log(ctx).Warn("Initial admin bootstrap rejected", slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.IssueSession(entity.PrincipalAdmin, newAdmin.ID, newAdmin.Email, newAdmin.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue admin session token")
	}

	srv.log(ctx).Info("Initial admin created", slog.Any("adminID", newAdmin.ID))

	return &usecase.AdminSessionOutput{Token: token, Admin: newAdmin}, nil
}

// Login authenticates an admin with email and password. A missing account
// and a wrong password both surface as the same credentials error.
func (srv *adminService) Login(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminSessionOutput, error) {
	srv.log(ctx).Debug("Admin login attempt", slog.String("email", input.Email))

	var admin *entity.Admin
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		admin, findErr = repoFactory.AdminRepo().FindByEmail(ctx, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAdminNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(findErr, "failed to find admin by email")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Admin login failed", slog.String("email", input.Email))

		return nil, err
	}

	// bcrypt check outside the transaction, it is CPU-bound.
	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	now := time.Now()
	admin.LastLogin = &now
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AdminRepo().Update(ctx, admin)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record admin last login")
	}

	token, err := srv.tokenService.IssueSession(entity.PrincipalAdmin, admin.ID, admin.Email, admin.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue admin session token")
	}

	srv.log(ctx).Debug("Admin logged in", slog.Any("adminID", admin.ID))

	return &usecase.AdminSessionOutput{Token: token, Admin: admin}, nil
}

// Dashboard aggregates the counters and feeds in one transaction so the
// numbers describe a single snapshot.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.DashboardOutput, error) {
	out := &usecase.DashboardOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.SupplierRepo()

		var err error
		if out.PendingSuppliers, err = supplierRepo.CountByStatus(ctx, entity.SupplierStatusPending); err != nil {
			return errors.Wrap(err, "failed to count pending suppliers")
		}
		if out.TotalSuppliers, err = supplierRepo.Count(ctx); err != nil {
			return errors.Wrap(err, "failed to count suppliers")
		}
		if out.FlaggedBuyers, err = repoFactory.BuyerRepo().CountFlagged(ctx); err != nil {
			return errors.Wrap(err, "failed to count flagged buyers")
		}
		if out.RecentInquiries, err = repoFactory.InquiryRepo().CountSince(ctx, time.Now().Add(-recentInquiryWindow)); err != nil {
			return errors.Wrap(err, "failed to count recent inquiries")
		}
		if out.RecentActivity, err = repoFactory.ActivityRepo().ListRecent(ctx, recentActivityLimit); err != nil {
			return errors.Wrap(err, "failed to list recent activity")
		}
		if out.ActiveAlerts, err = repoFactory.AlertRepo().ListActive(ctx); err != nil {
			return errors.Wrap(err, "failed to list active alerts")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to build dashboard", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute dashboard transaction")
	}

	return out, nil
}

// ListSuppliers returns all suppliers with their documents, newest first.
func (srv *adminService) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	var suppliers []*entity.Supplier

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		suppliers, listErr = repoFactory.SupplierRepo().List(ctx)

		return listErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	return suppliers, nil
}

// GetSupplier returns one supplier with its documents.
func (srv *adminService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplier *entity.Supplier

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		supplier, findErr = repoFactory.SupplierRepo().FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound
			}

			return errors.Wrap(findErr, "failed to find supplier")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return supplier, nil
}

// ListBuyers returns all buyers, newest first.
func (srv *adminService) ListBuyers(ctx context.Context) ([]*entity.Buyer, error) {
	var buyers []*entity.Buyer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		buyers, listErr = repoFactory.BuyerRepo().List(ctx)

		return listErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyers")
	}

	return buyers, nil
}

// ApplySupplierAction applies one moderation action to a supplier.
// Transitions are unconditional: an admin may approve a banned supplier or
// suspend an already-suspended one, and the write still happens. The state
// change and its audit entry commit atomically; the pubsub mirror is
// best-effort after commit.
func (srv *adminService) ApplySupplierAction(ctx context.Context, input *usecase.SupplierActionInput) (*entity.Supplier, error) {
	srv.log(ctx).Info("Applying supplier action",
		slog.Any("supplierID", input.SupplierID),
		slog.String("action", string(input.Action)))

	var supplier *entity.Supplier
	var entry *entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.SupplierRepo()

		var findErr error
		supplier, findErr = supplierRepo.FindByID(ctx, input.SupplierID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound
			}

			return errors.Wrap(findErr, "failed to find supplier")
		}

		message, err := applySupplierTransition(supplier, input)
		if err != nil {
			return err
		}

		if err := supplierRepo.Update(ctx, supplier); err != nil {
			return errors.Wrap(err, "failed to update supplier")
		}

		entry = &entity.ActivityLog{
			Action:     string(input.Action),
			EntityType: "supplier",
			EntityID:   supplier.ID,
			Message:    message,
			AdminID:    &input.AdminID,
		}

		return repoFactory.ActivityRepo().Create(ctx, entry)
	})
	if err != nil {
		srv.log(ctx).Warn("Supplier action rejected",
			slog.Any("supplierID", input.SupplierID),
			slog.String("action", string(input.Action)),
			slog.Any("error", err))

		return nil, err
	}

	publishAuditEvent(ctx, srv.eventPublisher, srv.log(ctx), entry)

	return supplier, nil
}

// applySupplierTransition mutates the supplier in place and returns the
// audit message. An unknown action leaves the supplier untouched.
func applySupplierTransition(supplier *entity.Supplier, input *usecase.SupplierActionInput) (string, error) {
	switch input.Action {
	case usecase.SupplierActionApprove:
		supplier.Status = entity.SupplierStatusApproved

		return fmt.Sprintf("Supplier %s approved", supplier.CompanyName), nil
	case usecase.SupplierActionSuspend:
		supplier.Status = entity.SupplierStatusSuspended

		return fmt.Sprintf("Supplier %s suspended", supplier.CompanyName), nil
	case usecase.SupplierActionRestore:
		supplier.Status = entity.SupplierStatusApproved

		return fmt.Sprintf("Supplier %s restored", supplier.CompanyName), nil
	case usecase.SupplierActionUpdateBadges:
		supplier.Badges = input.Badges

		return fmt.Sprintf("Supplier %s badges updated", supplier.CompanyName), nil
	default:
		return "", domainerrors.ErrUnknownAction
	}
}

// ApplyBuyerAction applies one moderation action to a buyer.
func (srv *adminService) ApplyBuyerAction(ctx context.Context, input *usecase.BuyerActionInput) (*entity.Buyer, error) {
	srv.log(ctx).Info("Applying buyer action",
		slog.Any("buyerID", input.BuyerID),
		slog.String("action", string(input.Action)))

	var buyer *entity.Buyer
	var entry *entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyerRepo := repoFactory.BuyerRepo()

		var findErr error
		buyer, findErr = buyerRepo.FindByID(ctx, input.BuyerID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrBuyerNotFound) {
				return domainerrors.ErrBuyerNotFound
			}

			return errors.Wrap(findErr, "failed to find buyer")
		}

		message, err := applyBuyerTransition(buyer, input.Action)
		if err != nil {
			return err
		}

		if err := buyerRepo.Update(ctx, buyer); err != nil {
			return errors.Wrap(err, "failed to update buyer")
		}

		entry = &entity.ActivityLog{
			Action:     string(input.Action),
			EntityType: "buyer",
			EntityID:   buyer.ID,
			Message:    message,
			AdminID:    &input.AdminID,
		}

		return repoFactory.ActivityRepo().Create(ctx, entry)
	})
	if err != nil {
		srv.log(ctx).Warn("Buyer action rejected",
			slog.Any("buyerID", input.BuyerID),
			slog.String("action", string(input.Action)),
			slog.Any("error", err))

		return nil, err
	}

	publishAuditEvent(ctx, srv.eventPublisher, srv.log(ctx), entry)

	return buyer, nil
}

// applyBuyerTransition mutates the buyer in place and returns the audit
// message. restore clears both the status and the moderation flag; dismiss
// only clears the flag.
func applyBuyerTransition(buyer *entity.Buyer, action usecase.BuyerAction) (string, error) {
	switch action {
	case usecase.BuyerActionWarn:
		buyer.Status = entity.BuyerStatusWarned

		return fmt.Sprintf("Buyer %s warned", buyer.Email), nil
	case usecase.BuyerActionRestrict:
		buyer.Status = entity.BuyerStatusRestricted

		return fmt.Sprintf("Buyer %s restricted", buyer.Email), nil
	case usecase.BuyerActionRestore:
		buyer.Status = entity.BuyerStatusActive
		buyer.Flagged = false
		buyer.FlagReason = nil

		return fmt.Sprintf("Buyer %s restored", buyer.Email), nil
	case usecase.BuyerActionDismiss:
		buyer.Flagged = false
		buyer.FlagReason = nil

		return fmt.Sprintf("Flag dismissed for buyer %s", buyer.Email), nil
	default:
		return "", domainerrors.ErrUnknownAction
	}
}
