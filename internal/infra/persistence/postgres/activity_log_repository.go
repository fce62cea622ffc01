package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityLogRepository implements the repository.ActivityLogRepository interface.
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{
		db: db,
	}
}

// Create appends a new audit entry.
func (repo *activityLogRepository) Create(ctx context.Context, entry *entity.ActivityLog) error {
	entryM := fromActivityLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListRecent retrieves the most recent audit entries, newest first.
func (repo *activityLogRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	var entryModels []*model.ActivityLogModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent activity")
	}

	entries := make([]*entity.ActivityLog, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toActivityLogDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toActivityLogDomain converts a GORM ActivityLogModel to a domain entity.
func toActivityLogDomain(data *model.ActivityLogModel) *entity.ActivityLog {
	if data == nil {
		return nil
	}

	return &entity.ActivityLog{
		ID:         data.ID,
		Action:     data.Action,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		Message:    data.Message,
		AdminID:    data.AdminID,
		CreatedAt:  data.CreatedAt,
	}
}

// fromActivityLogDomain converts a domain ActivityLog to its GORM model.
func fromActivityLogDomain(data *entity.ActivityLog) *model.ActivityLogModel {
	if data == nil {
		return nil
	}

	return &model.ActivityLogModel{
		ID:         data.ID,
		Action:     data.Action,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		Message:    data.Message,
		AdminID:    data.AdminID,
		CreatedAt:  data.CreatedAt,
	}
}
