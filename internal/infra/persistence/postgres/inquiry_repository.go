package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inquiryRepository implements the repository.InquiryRepository interface.
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepository{
		db: db,
	}
}

// Create persists a new inquiry.
func (repo *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	inquiryM := fromInquiryDomain(inquiry)

	if err := repo.db.WithContext(ctx).Create(inquiryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inquiry")
	}

	inquiry.ID = inquiryM.ID
	inquiry.CreatedAt = inquiryM.CreatedAt
	inquiry.UpdatedAt = inquiryM.UpdatedAt

	return nil
}

// CountSince returns the number of inquiries created at or after the given time.
func (repo *inquiryRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.InquiryModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count inquiries")
	}

	return count, nil
}

// --- Mapper Functions ---

// fromInquiryDomain converts a domain Inquiry to its GORM model.
func fromInquiryDomain(data *entity.Inquiry) *model.InquiryModel {
	if data == nil {
		return nil
	}

	return &model.InquiryModel{
		ID:          data.ID,
		BuyerID:     data.BuyerID,
		SupplierID:  data.SupplierID,
		CategoryID:  data.CategoryID,
		Product:     data.Product,
		Description: data.Description,
		Quantity:    data.Quantity,
		Budget:      data.Budget,
		Timeline:    data.Timeline,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
