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

// buyerRepository implements the repository.BuyerRepository interface.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository is the constructor for buyerRepository.
func NewBuyerRepository(db *gorm.DB) repository.BuyerRepository {
	return &buyerRepository{
		db: db,
	}
}

// FindByID retrieves a buyer by their unique ID.
func (repo *buyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error) {
	var buyerM model.BuyerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&buyerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by ID")
	}

	return toBuyerDomain(&buyerM), nil
}

// FindByEmail retrieves a buyer by their email address.
func (repo *buyerRepository) FindByEmail(ctx context.Context, email string) (*entity.Buyer, error) {
	var buyerM model.BuyerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&buyerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by email")
	}

	return toBuyerDomain(&buyerM), nil
}

// List retrieves all buyers, newest first.
func (repo *buyerRepository) List(ctx context.Context) ([]*entity.Buyer, error) {
	var buyerModels []*model.BuyerModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&buyerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list buyers")
	}

	buyers := make([]*entity.Buyer, 0, len(buyerModels))
	for _, buyerM := range buyerModels {
		buyers = append(buyers, toBuyerDomain(buyerM))
	}

	return buyers, nil
}

// Create persists a new buyer account.
func (repo *buyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	buyerM := fromBuyerDomain(buyer)

	if err := repo.db.WithContext(ctx).Create(buyerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required buyer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buyer")
	}

	// Update the entity with generated values
	buyer.ID = buyerM.ID
	buyer.CreatedAt = buyerM.CreatedAt
	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

// Update modifies an existing buyer. The moderation columns are written
// explicitly so restore/dismiss can clear the flag and its reason.
func (repo *buyerRepository) Update(ctx context.Context, buyer *entity.Buyer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BuyerModel{}).
		Where("id = ?", buyer.ID).
		Updates(map[string]any{
			"name":         buyer.Name,
			"phone":        buyer.Phone,
			"company_name": buyer.CompanyName,
			"status":       buyer.Status.String(),
			"flagged":      buyer.Flagged,
			"flag_reason":  buyer.FlagReason,
			"last_active":  buyer.LastActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update buyer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuyerNotFound
	}

	return nil
}

// CountFlagged returns the number of buyers currently carrying a moderation flag.
func (repo *buyerRepository) CountFlagged(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BuyerModel{}).
		Where("flagged = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count flagged buyers")
	}

	return count, nil
}

// --- Mapper Functions ---

// toBuyerDomain converts a GORM BuyerModel to a domain Buyer entity.
func toBuyerDomain(data *model.BuyerModel) *entity.Buyer {
	if data == nil {
		return nil
	}

	return &entity.Buyer{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Phone:        data.Phone,
		CompanyName:  data.CompanyName,
		Status:       entity.BuyerStatus(data.Status),
		Flagged:      data.Flagged,
		FlagReason:   data.FlagReason,
		LastActive:   data.LastActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromBuyerDomain converts a domain Buyer entity to a GORM BuyerModel.
func fromBuyerDomain(data *entity.Buyer) *model.BuyerModel {
	if data == nil {
		return nil
	}

	return &model.BuyerModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Phone:        data.Phone,
		CompanyName:  data.CompanyName,
		Status:       data.Status.String(),
		Flagged:      data.Flagged,
		FlagReason:   data.FlagReason,
		LastActive:   data.LastActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
