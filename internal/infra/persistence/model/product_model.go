package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Rows are never hard-deleted; IsActive flips to false instead so old
// inquiries keep a valid reference.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SupplierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
	PriceRange  string    `gorm:"type:varchar(100)"`
	MOQ         string    `gorm:"type:varchar(100)"`
	LeadTime    string    `gorm:"type:varchar(100)"`
	Images      []string  `gorm:"type:jsonb;serializer:json"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
