package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// ListActive retrieves alerts still awaiting admin attention, newest first.
func (repo *alertRepository) ListActive(ctx context.Context) ([]*entity.AIAlert, error) {
	var alertModels []*model.AIAlertModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.AlertStatusActive)).
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active alerts")
	}

	alerts := make([]*entity.AIAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, &entity.AIAlert{
			ID:        alertM.ID,
			Title:     alertM.Title,
			Severity:  alertM.Severity,
			Status:    entity.AlertStatus(alertM.Status),
			CreatedAt: alertM.CreatedAt,
		})
	}

	return alerts, nil
}
