package impl

import (
	"context"
	"fmt"
	"log/slog"

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

// resetRequestedMessage is returned for every reset request, hit or miss, so
// the endpoint cannot be used to probe which emails have accounts.
const resetRequestedMessage = "If an account with that email exists, a password reset link has been sent."

// passwordResetService implements the PasswordResetUsecase interface for both
// admin and supplier accounts.
type passwordResetService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	mailSender        service.MailSender
	eventPublisher    service.EventPublisher
	baseURL           string
	minPasswordLength int
	logger            *slog.Logger
}

// PasswordResetServiceParams holds dependencies for passwordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	MailSender     service.MailSender
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	minPasswordLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	var baseURL string
	if params.Config != nil {
		baseURL = params.Config.App.BaseURL
	}

	return &passwordResetService{
		txManager:         params.TxManager,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		mailSender:        params.MailSender,
		eventPublisher:    params.EventPublisher,
		baseURL:           baseURL,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resetAccount is the slice of an admin or supplier the reset flow needs.
type resetAccount struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// RequestReset issues a reset token and mails the link when the account
// exists. Hit and miss return the same message, and a mail transport failure
// is swallowed after logging so the caller cannot distinguish it from a miss.
func (srv *passwordResetService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) (string, error) {
	srv.log(ctx).Info("Password reset requested",
		slog.String("audience", string(input.Audience)),
		slog.String("email", input.Email))

	account, err := srv.findAccountByEmail(ctx, input.Audience, input.Email)
	if err != nil {
		return "", err
	}
	if account == nil {
		return resetRequestedMessage, nil
	}

	token, err := srv.tokenService.IssueReset(input.Audience, account.ID, account.Email)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue reset token")
	}

	link := fmt.Sprintf("%s/%s/reset-password?token=%s", srv.baseURL, string(input.Audience), token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>A password reset was requested for your account. "+
			"<a href=%q>Reset your password</a>. If you did not request this, you can ignore this email.</p>",
		account.Name, link)

	if err := srv.mailSender.Send(ctx, account.Email, "Reset your password", body); err != nil {
		srv.log(ctx).Warn("Failed to send reset email",
			slog.String("audience", string(input.Audience)),
			slog.Any("error", err))
	}

	return resetRequestedMessage, nil
}

// CompleteReset verifies the reset token and replaces the password. The
// password write and its audit entry commit atomically.
func (srv *passwordResetService) CompleteReset(ctx context.Context, input *usecase.CompleteResetInput) error {
	if len(input.NewPassword) < srv.minPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}

	claims, err := srv.tokenService.VerifyReset(input.Token, input.Audience)
	if err != nil {
		srv.log(ctx).Warn("Password reset token rejected",
			slog.String("audience", string(input.Audience)))

		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	var entry *entity.ActivityLog

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		switch input.Audience {
		case entity.PrincipalAdmin:
			admin, err := repoFactory.AdminRepo().FindByID(ctx, claims.AccountID)
			if err != nil {
				if errors.Is(err, repository.ErrAdminNotFound) {
					return domainerrors.ErrNotFound
				}

				return errors.Wrap(err, "failed to find admin")
			}

			admin.PasswordHash = hashedPassword
			if err := repoFactory.AdminRepo().Update(ctx, admin); err != nil {
				return errors.Wrap(err, "failed to update admin password")
			}

			entry = &entity.ActivityLog{
				Action:     "password_reset",
				EntityType: "admin",
				EntityID:   admin.ID,
				Message:    fmt.Sprintf("Password reset completed for admin %s", admin.Email),
			}
		case entity.PrincipalSupplier:
			supplier, err := repoFactory.SupplierRepo().FindByID(ctx, claims.AccountID)
			if err != nil {
				if errors.Is(err, repository.ErrSupplierNotFound) {
					return domainerrors.ErrNotFound
				}

				return errors.Wrap(err, "failed to find supplier")
			}

			supplier.PasswordHash = hashedPassword
			if err := repoFactory.SupplierRepo().Update(ctx, supplier); err != nil {
				return errors.Wrap(err, "failed to update supplier password")
			}

			entry = &entity.ActivityLog{
				Action:     "password_reset",
				EntityType: "supplier",
				EntityID:   supplier.ID,
				Message:    fmt.Sprintf("Password reset completed for supplier %s", supplier.Email),
			}
		default:
			return domainerrors.ErrValidationFailed
		}

		return repoFactory.ActivityRepo().Create(ctx, entry)
	})
	if err != nil {
		return err
	}

	publishAuditEvent(ctx, srv.eventPublisher, srv.log(ctx), entry)

	srv.log(ctx).Info("Password reset completed",
		slog.String("audience", string(input.Audience)),
		slog.Any("accountID", claims.AccountID))

	return nil
}

// findAccountByEmail looks the account up in the table the audience selects.
// A miss is (nil, nil): the caller hides it from the requester.
func (srv *passwordResetService) findAccountByEmail(ctx context.Context, audience entity.PrincipalKind, email string) (*resetAccount, error) {
	var account *resetAccount

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		switch audience {
		case entity.PrincipalAdmin:
			admin, err := repoFactory.AdminRepo().FindByEmail(ctx, email)
			if err != nil {
				if errors.Is(err, repository.ErrAdminNotFound) {
					return nil
				}

				return errors.Wrap(err, "failed to find admin by email")
			}
			account = &resetAccount{ID: admin.ID, Email: admin.Email, Name: admin.Name}
		case entity.PrincipalSupplier:
			supplier, err := repoFactory.SupplierRepo().FindByEmail(ctx, email)
			if err != nil {
				if errors.Is(err, repository.ErrSupplierNotFound) {
					return nil
				}

				return errors.Wrap(err, "failed to find supplier by email")
			}
			account = &resetAccount{ID: supplier.ID, Email: supplier.Email, Name: supplier.CompanyName}
		default:
			return domainerrors.ErrValidationFailed
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}
