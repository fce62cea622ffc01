package model

import (
	"time"

	"github.com/google/uuid"
)

// InquiryModel is the GORM-specific struct for the 'inquiries' table.
type InquiryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BuyerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	SupplierID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid"`
	Product     string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Quantity    string     `gorm:"type:varchar(100)"`
	Budget      string     `gorm:"type:varchar(100)"`
	Timeline    string     `gorm:"type:varchar(100)"`
	Status      string     `gorm:"type:varchar(50);not null;default:'new'"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "inquiries"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
