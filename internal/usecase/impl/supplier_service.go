package impl

import (
	"context"
	"fmt"
	"log/slog"

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

// supplierService implements the SupplierUsecase interface.
type supplierService struct {
	txManager      repository.TransactionManager
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// SupplierServiceParams holds dependencies for supplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(params SupplierServiceParams) usecase.SupplierUsecase {
	return &supplierService{
		txManager:      params.TxManager,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *supplierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new supplier account in the pending state and logs it
// in immediately so the portal can show the onboarding checklist.
func (srv *supplierService) Register(ctx context.Context, input *usecase.RegisterSupplierInput) (*usecase.SupplierSessionOutput, error) {
	srv.log(ctx).Info("Registering supplier", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash supplier password")
	}

	newSupplier := &entity.Supplier{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		CompanyName:  input.CompanyName,
		Phone:        input.Phone,
		GSTNumber:    input.GSTNumber,
		PANNumber:    input.PANNumber,
		City:         input.City,
		State:        input.State,
		Status:       entity.SupplierStatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SupplierRepo().Create(ctx, newSupplier)
	})
	if err != nil {
		srv.log(ctx).Warn("Supplier registration rejected",
			slog.String("email", input.Email),
			slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.IssueSession(entity.PrincipalSupplier, newSupplier.ID, newSupplier.Email, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue supplier session token")
	}

	srv.log(ctx).Info("Supplier registered", slog.Any("supplierID", newSupplier.ID))

	return &usecase.SupplierSessionOutput{Token: token, Supplier: newSupplier}, nil
}

// Login authenticates a supplier. Pending and suspended suppliers may still
// sign in so the portal can show them their status; banned accounts cannot.
func (srv *supplierService) Login(ctx context.Context, input *usecase.SupplierLoginInput) (*usecase.SupplierSessionOutput, error) {
	srv.log(ctx).Debug("Supplier login attempt", slog.String("email", input.Email))

	var supplier *entity.Supplier
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		supplier, findErr = repoFactory.SupplierRepo().FindByEmail(ctx, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrSupplierNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(findErr, "failed to find supplier by email")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Supplier login failed", slog.String("email", input.Email))

		return nil, err
	}

	if !srv.hasher.Check(input.Password, supplier.PasswordHash) {
		srv.log(ctx).Warn("Supplier login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if supplier.Status == entity.SupplierStatusBanned {
		srv.log(ctx).Warn("Banned supplier denied login", slog.Any("supplierID", supplier.ID))

		return nil, domainerrors.ErrAccountSuspended
	}

	token, err := srv.tokenService.IssueSession(entity.PrincipalSupplier, supplier.ID, supplier.Email, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue supplier session token")
	}

	srv.log(ctx).Debug("Supplier logged in", slog.Any("supplierID", supplier.ID))

	return &usecase.SupplierSessionOutput{Token: token, Supplier: supplier}, nil
}

// GetProfile returns the supplier's own profile with KYC documents.
func (srv *supplierService) GetProfile(ctx context.Context, supplierID uuid.UUID) (*entity.Supplier, error) {
	var supplier *entity.Supplier

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		supplier, findErr = repoFactory.SupplierRepo().FindByID(ctx, supplierID)
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

// UpdateProfile applies the allow-listed profile edits. Nil fields are left
// untouched; empty strings overwrite, so a supplier can clear a field.
func (srv *supplierService) UpdateProfile(ctx context.Context, input *usecase.UpdateSupplierProfileInput) (*entity.Supplier, error) {
	srv.log(ctx).Debug("Updating supplier profile", slog.Any("supplierID", input.SupplierID))

	var supplier *entity.Supplier

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

		applyProfileEdits(supplier, input)

		if err := supplierRepo.Update(ctx, supplier); err != nil {
			return errors.Wrap(err, "failed to update supplier profile")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return supplier, nil
}

func applyProfileEdits(supplier *entity.Supplier, input *usecase.UpdateSupplierProfileInput) {
	setIfPresent(&supplier.CompanyName, input.CompanyName)
	setIfPresent(&supplier.Phone, input.Phone)
	setIfPresent(&supplier.Address, input.Address)
	setIfPresent(&supplier.City, input.City)
	setIfPresent(&supplier.State, input.State)
	setIfPresent(&supplier.Pincode, input.Pincode)
	setIfPresent(&supplier.Website, input.Website)
	setIfPresent(&supplier.ProfileImage, input.ProfileImage)
	setIfPresent(&supplier.Description, input.Description)
	setIfPresent(&supplier.Categories, input.Categories)
	setIfPresent(&supplier.Capacity, input.Capacity)
	setIfPresent(&supplier.MOQ, input.MOQ)
	setIfPresent(&supplier.EstablishedYear, input.EstablishedYear)
	setIfPresent(&supplier.EmployeeCount, input.EmployeeCount)
	setIfPresent(&supplier.Certifications, input.Certifications)
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// SubmitDocument upserts the KYC document row for (supplier, docType). A
// resubmission overwrites the stored file and resets the review status to
// pending so a verified document cannot be silently swapped. The upsert and
// its audit entry commit atomically.
func (srv *supplierService) SubmitDocument(ctx context.Context, input *usecase.SubmitDocumentInput) (*entity.SupplierDocument, error) {
	srv.log(ctx).Info("Submitting KYC document",
		slog.Any("supplierID", input.SupplierID),
		slog.String("docType", input.DocType.String()))

	var doc *entity.SupplierDocument
	var entry *entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.SupplierRepo()

		supplier, err := supplierRepo.FindByID(ctx, input.SupplierID)
		if err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound
			}

			return errors.Wrap(err, "failed to find supplier")
		}

		doc, err = supplierRepo.FindDocument(ctx, input.SupplierID, input.DocType)
		switch {
		case err == nil:
			doc.FileName = input.FileName
			doc.FileURL = input.FileURL
			doc.Status = entity.DocumentStatusPending
			if err := supplierRepo.UpdateDocument(ctx, doc); err != nil {
				return errors.Wrap(err, "failed to update KYC document")
			}
		case errors.Is(err, repository.ErrDocumentNotFound):
			doc = &entity.SupplierDocument{
				SupplierID: input.SupplierID,
				DocType:    input.DocType,
				FileName:   input.FileName,
				FileURL:    input.FileURL,
				Status:     entity.DocumentStatusPending,
			}
			if err := supplierRepo.CreateDocument(ctx, doc); err != nil {
				return errors.Wrap(err, "failed to create KYC document")
			}
		default:
			return errors.Wrap(err, "failed to find KYC document")
		}

		entry = &entity.ActivityLog{
			Action:     "kyc_submitted",
			EntityType: "supplier",
			EntityID:   input.SupplierID,
			Message:    fmt.Sprintf("Supplier %s submitted %s", supplier.CompanyName, input.DocType),
		}

		return repoFactory.ActivityRepo().Create(ctx, entry)
	})
	if err != nil {
		srv.log(ctx).Warn("KYC document submission rejected",
			slog.Any("supplierID", input.SupplierID),
			slog.Any("error", err))

		return nil, err
	}

	publishAuditEvent(ctx, srv.eventPublisher, srv.log(ctx), entry)

	return doc, nil
}

// ListProducts returns the supplier's active products, newest first.
func (srv *supplierService) ListProducts(ctx context.Context, supplierID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		products, listErr = repoFactory.ProductRepo().ListBySupplier(ctx, supplierID)

		return listErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct adds a new active listing to the supplier's catalog.
func (srv *supplierService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Debug("Creating product",
		slog.Any("supplierID", input.SupplierID),
		slog.String("name", input.Name))

	product := &entity.Product{
		SupplierID:  input.SupplierID,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		PriceRange:  input.PriceRange,
		MOQ:         input.MOQ,
		LeadTime:    input.LeadTime,
		Images:      input.Images,
		IsActive:    true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct modifies a listing. Ownership is part of the lookup, so a
// product belonging to another supplier surfaces as not found.
func (srv *supplierService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Debug("Updating product",
		slog.Any("productID", input.ProductID),
		slog.Any("supplierID", input.SupplierID))

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		var findErr error
		product, findErr = productRepo.FindOwned(ctx, input.ProductID, input.SupplierID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(findErr, "failed to find product")
		}

		setIfPresent(&product.Name, input.Name)
		setIfPresent(&product.Category, input.Category)
		setIfPresent(&product.Description, input.Description)
		setIfPresent(&product.PriceRange, input.PriceRange)
		setIfPresent(&product.MOQ, input.MOQ)
		setIfPresent(&product.LeadTime, input.LeadTime)
		if input.Images != nil {
			product.Images = input.Images
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct soft-deletes a listing by deactivating it. The row stays in
// place so existing inquiries keep their reference.
func (srv *supplierService) DeleteProduct(ctx context.Context, productID, supplierID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting product",
		slog.Any("productID", productID),
		slog.Any("supplierID", supplierID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindOwned(ctx, productID, supplierID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		product.IsActive = false

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to deactivate product")
		}

		return nil
	})
}

// ProfileQR renders a PNG QR code pointing at the supplier's public profile.
func (srv *supplierService) ProfileQR(ctx context.Context, supplierID uuid.UUID) ([]byte, error) {
	// Verify the supplier exists before rendering anything.
	if _, err := srv.GetProfile(ctx, supplierID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateProfileQR(supplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return png, nil
}
