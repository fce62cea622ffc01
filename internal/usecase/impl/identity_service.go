// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

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

// identityService implements the IdentityUsecase interface. The credential
// strategies are held as an ordered slice; resolution walks them until one
// yields a principal.
type identityService struct {
	txManager         repository.TransactionManager
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// identityStrategy tries one class of credential. Returning (nil, nil) means
// the credential was absent or rejected and the next strategy should run; a
// non-nil error aborts resolution.
type identityStrategy func(ctx context.Context, input *usecase.ResolvePrincipalInput, audience entity.PrincipalKind) (*entity.Principal, error)

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Logger            *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:         params.TxManager,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolvePrincipal walks the credential strategies in order: custom session
// token first, then Google ID token, then the bare email fallback. The first
// hit wins, so a request carrying both a custom token and a Google token is
// resolved from the custom token alone.
func (srv *identityService) ResolvePrincipal(ctx context.Context, input *usecase.ResolvePrincipalInput, audience entity.PrincipalKind) (*entity.Principal, error) {
	strategies := []identityStrategy{
		srv.resolveSessionToken,
		srv.resolveGoogleIDToken,
		srv.resolveEmailFallback,
	}

	for _, strategy := range strategies {
		principal, err := strategy(ctx, input, audience)
		if err != nil {
			return nil, err
		}
		if principal != nil {
			return principal, nil
		}
	}

	srv.log(ctx).Debug("No credential strategy resolved a principal",
		slog.String("audience", audience.String()))

	return nil, domainerrors.ErrUnauthorized
}

// resolveSessionToken verifies the custom signed token. A malformed, expired
// or wrong-kind token counts as a miss so the remaining strategies still run;
// a valid token whose account has since disappeared is a hard failure, since
// falling through would let a stale token masquerade as a different identity.
func (srv *identityService) resolveSessionToken(ctx context.Context, input *usecase.ResolvePrincipalInput, audience entity.PrincipalKind) (*entity.Principal, error) {
	if input.SessionToken == "" {
		return nil, nil
	}

	claims, err := srv.tokenService.VerifySession(input.SessionToken, audience)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected, trying next strategy")

		return nil, nil
	}

	exists, err := srv.accountExists(ctx, claims.AccountID, audience)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token account")
	}
	if !exists {
		return nil, domainerrors.ErrUnauthorized
	}

	return &entity.Principal{
		ID:    claims.AccountID,
		Kind:  audience,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// resolveGoogleIDToken verifies a third-party ID token. Only buyers sign in
// through Google; for other audiences this strategy is a structural miss.
// A verified first-time identity creates the buyer account, and every later
// sign-in bumps lastActive.
func (srv *identityService) resolveGoogleIDToken(ctx context.Context, input *usecase.ResolvePrincipalInput, audience entity.PrincipalKind) (*entity.Principal, error) {
	if input.GoogleIDToken == "" || audience != entity.PrincipalBuyer {
		return nil, nil
	}

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.GoogleIDToken)
	if err != nil {
		srv.log(ctx).Debug("Google ID token rejected, trying next strategy")

		return nil, nil
	}

	buyer, err := srv.upsertGoogleBuyer(ctx, oauthUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert google buyer")
	}

	return &entity.Principal{
		ID:    buyer.ID,
		Kind:  entity.PrincipalBuyer,
		Email: buyer.Email,
	}, nil
}

// resolveEmailFallback matches an already-verified third-party session that
// only carries an email. An unknown email is a miss, not an error.
func (srv *identityService) resolveEmailFallback(ctx context.Context, input *usecase.ResolvePrincipalInput, audience entity.PrincipalKind) (*entity.Principal, error) {
	if input.Email == "" || audience != entity.PrincipalBuyer {
		return nil, nil
	}

	var buyer *entity.Buyer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		buyer, findErr = repoFactory.BuyerRepo().FindByEmail(ctx, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrBuyerNotFound) {
				return nil
			}

			return errors.Wrap(findErr, "failed to find buyer by email")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute email fallback transaction")
	}
	if buyer == nil {
		return nil, nil
	}

	return &entity.Principal{
		ID:    buyer.ID,
		Kind:  entity.PrincipalBuyer,
		Email: buyer.Email,
	}, nil
}

// upsertGoogleBuyer creates the buyer on first Google sign-in and bumps
// lastActive on every subsequent one.
func (srv *identityService) upsertGoogleBuyer(ctx context.Context, oauthUser *service.OAuthUser) (*entity.Buyer, error) {
	var buyer *entity.Buyer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyerRepo := repoFactory.BuyerRepo()

		existing, err := buyerRepo.FindByEmail(ctx, oauthUser.Email)
		if err != nil && !errors.Is(err, repository.ErrBuyerNotFound) {
			return errors.Wrap(err, "failed to find buyer by email")
		}

		if errors.Is(err, repository.ErrBuyerNotFound) {
			srv.log(ctx).Info("Creating buyer from Google sign-in", slog.String("email", oauthUser.Email))

			newBuyer := &entity.Buyer{
				Email:      oauthUser.Email,
				Name:       oauthUser.Name,
				Status:     entity.BuyerStatusActive,
				LastActive: time.Now(),
			}
			if err := buyerRepo.Create(ctx, newBuyer); err != nil {
				return errors.Wrap(err, "failed to create buyer from google sign-in")
			}
			buyer = newBuyer

			return nil
		}

		existing.LastActive = time.Now()
		if err := buyerRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to bump buyer lastActive")
		}
		buyer = existing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute google buyer upsert transaction")
	}

	return buyer, nil
}

// accountExists checks the token subject against the right account table.
func (srv *identityService) accountExists(ctx context.Context, id uuid.UUID, audience entity.PrincipalKind) (bool, error) {
	exists := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		switch audience {
		case entity.PrincipalAdmin:
			_, findErr = repoFactory.AdminRepo().FindByID(ctx, id)
			if errors.Is(findErr, repository.ErrAdminNotFound) {
				return nil
			}
		case entity.PrincipalSupplier:
			_, findErr = repoFactory.SupplierRepo().FindByID(ctx, id)
			if errors.Is(findErr, repository.ErrSupplierNotFound) {
				return nil
			}
		case entity.PrincipalBuyer:
			_, findErr = repoFactory.BuyerRepo().FindByID(ctx, id)
			if errors.Is(findErr, repository.ErrBuyerNotFound) {
				return nil
			}
		default:
			return errors.Errorf("unknown audience: %s", audience)
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find account by id")
		}
		exists = true

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute account lookup transaction")
	}

	return exists, nil
}
