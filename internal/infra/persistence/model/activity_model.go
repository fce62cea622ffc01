package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogModel is the GORM-specific struct for the 'activity_logs' table.
// Rows are append-only.
type ActivityLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Action     string     `gorm:"type:varchar(100);not null"`
	EntityType string     `gorm:"type:varchar(50);not null"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Message    string     `gorm:"type:text;not null"`
	AdminID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

// AIAlertModel is the GORM-specific struct for the 'ai_alerts' table.
type AIAlertModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Severity  string    `gorm:"type:varchar(20);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AIAlertModel) TableName() string {
	return "ai_alerts"
}
