package model

import (
	"time"

	"github.com/google/uuid"
)

// SupplierModel is the GORM-specific struct for the 'suppliers' table.
type SupplierModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CompanyName  string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(50)"`

	GSTNumber string `gorm:"type:varchar(50)"`
	PANNumber string `gorm:"type:varchar(50)"`

	Address string `gorm:"type:text"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	Pincode string `gorm:"type:varchar(20)"`
	Website string `gorm:"type:varchar(255)"`

	ProfileImage    string `gorm:"type:varchar(500)"`
	Description     string `gorm:"type:text"`
	Categories      string `gorm:"type:text"`
	Capacity        string `gorm:"type:varchar(255)"`
	MOQ             string `gorm:"type:varchar(255)"`
	EstablishedYear string `gorm:"type:varchar(10)"`
	EmployeeCount   string `gorm:"type:varchar(50)"`
	Certifications  string `gorm:"type:text"`

	Status string   `gorm:"type:varchar(50);not null;default:'pending';index"`
	Badges []string `gorm:"type:jsonb;serializer:json"`

	Documents []SupplierDocumentModel `gorm:"foreignKey:SupplierID"`
	Products  []ProductModel          `gorm:"foreignKey:SupplierID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// SupplierDocumentModel is the GORM-specific struct for the
// 'supplier_documents' table. The (supplier_id, doc_type) pair is unique so a
// resubmission always lands on the existing row.
type SupplierDocumentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_supplier_doc_type"`
	DocType    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_supplier_doc_type"`
	FileName   string    `gorm:"type:varchar(255);not null"`
	FileURL    string    `gorm:"type:varchar(500);not null"`
	Status     string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierDocumentModel) TableName() string {
	return "supplier_documents"
}
