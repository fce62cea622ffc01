package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// buyerService implements the BuyerUsecase interface.
type buyerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// BuyerServiceParams holds dependencies for buyerService, injected by Fx.
type BuyerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewBuyerService is the constructor for buyerService.
func NewBuyerService(params BuyerServiceParams) usecase.BuyerUsecase {
	return &buyerService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *buyerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Me returns the buyer's own account.
func (srv *buyerService) Me(ctx context.Context, buyerID uuid.UUID) (*entity.Buyer, error) {
	var buyer *entity.Buyer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		buyer, findErr = repoFactory.BuyerRepo().FindByID(ctx, buyerID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrBuyerNotFound) {
				return domainerrors.ErrBuyerNotFound
			}

			return errors.Wrap(findErr, "failed to find buyer")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return buyer, nil
}

// SubmitInquiry records a sourcing request against a supplier. The supplier
// lookup and the insert share one transaction, so an inquiry can never point
// at a supplier deleted between the check and the write.
func (srv *buyerService) SubmitInquiry(ctx context.Context, input *usecase.SubmitInquiryInput) (*entity.Inquiry, error) {
	srv.log(ctx).Info("Submitting inquiry",
		slog.Any("buyerID", input.BuyerID),
		slog.Any("supplierID", input.SupplierID))

	inquiry := &entity.Inquiry{
		BuyerID:     input.BuyerID,
		SupplierID:  input.SupplierID,
		CategoryID:  input.CategoryID,
		Product:     input.Product,
		Description: input.Description,
		Quantity:    input.Quantity,
		Budget:      input.Budget,
		Timeline:    input.Timeline,
		Status:      entity.InquiryStatusNew,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.SupplierRepo().FindByID(ctx, input.SupplierID); err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound
			}

			return errors.Wrap(err, "failed to find supplier")
		}

		return repoFactory.InquiryRepo().Create(ctx, inquiry)
	})
	if err != nil {
		srv.log(ctx).Warn("Inquiry rejected",
			slog.Any("buyerID", input.BuyerID),
			slog.Any("error", err))

		return nil, err
	}

	return inquiry, nil
}
