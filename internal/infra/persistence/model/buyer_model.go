package model

import (
	"time"

	"github.com/google/uuid"
)

// BuyerModel is the GORM-specific struct for the 'buyers' table.
type BuyerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Name         string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(50)"`
	CompanyName  string    `gorm:"type:varchar(255)"`

	Status     string  `gorm:"type:varchar(50);not null;default:'active'"`
	Flagged    bool    `gorm:"not null;default:false;index"`
	FlagReason *string `gorm:"type:text"`

	LastActive time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerModel) TableName() string {
	return "buyers"
}
