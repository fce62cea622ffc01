package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// supplierRepository implements the repository.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// FindByID retrieves a supplier by ID, preloading its KYC documents.
func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Preload("Documents").
		Where("id = ?", id).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by ID")
	}

	return toSupplierDomain(&supplierM), nil
}

// FindByEmail retrieves a supplier by email address.
func (repo *supplierRepository) FindByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by email")
	}

	return toSupplierDomain(&supplierM), nil
}

// List retrieves all suppliers with their documents, newest first.
func (repo *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []*model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Preload("Documents").
		Order("created_at DESC").
		Find(&supplierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, nil
}

// Create persists a new supplier account.
func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required supplier information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	// Update the entity with generated values
	supplier.ID = supplierM.ID
	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

// Update modifies an existing supplier. Badges are written explicitly so an
// admin can clear them back to an empty list.
func (repo *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", supplier.ID).
		Select("*").
		Omit("id", "created_at", "email").
		Updates(supplierM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailTaken
		}

		return errors.Wrap(result.Error, "failed to update supplier")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// CountByStatus returns the number of suppliers in the given status.
func (repo *supplierRepository) CountByStatus(ctx context.Context, status entity.SupplierStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count suppliers by status")
	}

	return count, nil
}

// Count returns the total number of suppliers.
func (repo *supplierRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count suppliers")
	}

	return count, nil
}

// FindDocument retrieves the single document row for a (supplier, docType) pair.
func (repo *supplierRepository) FindDocument(ctx context.Context, supplierID uuid.UUID, docType entity.DocType) (*entity.SupplierDocument, error) {
	var docM model.SupplierDocumentModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ? AND doc_type = ?", supplierID, docType.String()).
		First(&docM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier document")
	}

	return toDocumentDomain(&docM), nil
}

// CreateDocument persists a new KYC document row.
func (repo *supplierRepository) CreateDocument(ctx context.Context, doc *entity.SupplierDocument) error {
	docM := fromDocumentDomain(doc)

	if err := repo.db.WithContext(ctx).Create(docM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier document")
	}

	doc.ID = docM.ID
	doc.CreatedAt = docM.CreatedAt
	doc.UpdatedAt = docM.UpdatedAt

	return nil
}

// UpdateDocument modifies an existing KYC document row.
func (repo *supplierRepository) UpdateDocument(ctx context.Context, doc *entity.SupplierDocument) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierDocumentModel{}).
		Where("id = ?", doc.ID).
		Updates(map[string]any{
			"file_name": doc.FileName,
			"file_url":  doc.FileURL,
			"status":    string(doc.Status),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update supplier document")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSupplierDomain converts a GORM SupplierModel to a domain Supplier entity.
func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	documents := make([]entity.SupplierDocument, 0, len(data.Documents))
	for i := range data.Documents {
		documents = append(documents, *toDocumentDomain(&data.Documents[i]))
	}

	products := make([]entity.Product, 0, len(data.Products))
	for i := range data.Products {
		products = append(products, *toProductDomain(&data.Products[i]))
	}

	return &entity.Supplier{
		ID:              data.ID,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		CompanyName:     data.CompanyName,
		Phone:           data.Phone,
		GSTNumber:       data.GSTNumber,
		PANNumber:       data.PANNumber,
		Address:         data.Address,
		City:            data.City,
		State:           data.State,
		Pincode:         data.Pincode,
		Website:         data.Website,
		ProfileImage:    data.ProfileImage,
		Description:     data.Description,
		Categories:      data.Categories,
		Capacity:        data.Capacity,
		MOQ:             data.MOQ,
		EstablishedYear: data.EstablishedYear,
		EmployeeCount:   data.EmployeeCount,
		Certifications:  data.Certifications,
		Status:          entity.SupplierStatus(data.Status),
		Badges:          data.Badges,
		Documents:       documents,
		Products:        products,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromSupplierDomain converts a domain Supplier entity to a GORM SupplierModel.
// Associations are managed through their own repository methods.
func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	return &model.SupplierModel{
		ID:              data.ID,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		CompanyName:     data.CompanyName,
		Phone:           data.Phone,
		GSTNumber:       data.GSTNumber,
		PANNumber:       data.PANNumber,
		Address:         data.Address,
		City:            data.City,
		State:           data.State,
		Pincode:         data.Pincode,
		Website:         data.Website,
		ProfileImage:    data.ProfileImage,
		Description:     data.Description,
		Categories:      data.Categories,
		Capacity:        data.Capacity,
		MOQ:             data.MOQ,
		EstablishedYear: data.EstablishedYear,
		EmployeeCount:   data.EmployeeCount,
		Certifications:  data.Certifications,
		Status:          data.Status.String(),
		Badges:          data.Badges,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toDocumentDomain converts a GORM SupplierDocumentModel to a domain entity.
func toDocumentDomain(data *model.SupplierDocumentModel) *entity.SupplierDocument {
	if data == nil {
		return nil
	}

	return &entity.SupplierDocument{
		ID:         data.ID,
		SupplierID: data.SupplierID,
		DocType:    entity.DocType(data.DocType),
		FileName:   data.FileName,
		FileURL:    data.FileURL,
		Status:     entity.DocumentStatus(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDocumentDomain converts a domain SupplierDocument to its GORM model.
func fromDocumentDomain(data *entity.SupplierDocument) *model.SupplierDocumentModel {
	if data == nil {
		return nil
	}

	return &model.SupplierDocumentModel{
		ID:         data.ID,
		SupplierID: data.SupplierID,
		DocType:    data.DocType.String(),
		FileName:   data.FileName,
		FileURL:    data.FileURL,
		Status:     string(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
