// Command seed migrates the schema and loads a small development dataset:
// one admin, one approved supplier with products, one buyer, a category, and
// an inquiry. It is idempotent: rows are matched by their natural keys.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"bazaar/config"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed failed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		return err
	}
	logger.Info("Schema migrated")

	if err := seed(db, logger); err != nil {
		return err
	}
	logger.Info("Seed complete")

	return nil
}

func migrate(db *gorm.DB) error {
	// uuid_generate_v4 lives in uuid-ossp.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&model.AdminModel{},
		&model.SupplierModel{},
		&model.SupplierDocumentModel{},
		&model.BuyerModel{},
		&model.ProductModel{},
		&model.CategoryModel{},
		&model.InquiryModel{},
		&model.ActivityLogModel{},
		&model.AIAlertModel{},
	)
}

func seed(db *gorm.DB, logger *slog.Logger) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.AdminModel{
		Email:        "admin@example.com",
		PasswordHash: string(adminHash),
		Name:         "Platform Admin",
		Role:         "super_admin",
	}
	if err := db.Where(model.AdminModel{Email: admin.Email}).
		Attrs(admin).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	supplierHash, err := bcrypt.GenerateFromPassword([]byte("supplier12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	supplier := model.SupplierModel{
		Email:        "textiles@example.com",
		PasswordHash: string(supplierHash),
		CompanyName:  "Shree Textiles",
		Phone:        "+91 98765 43210",
		GSTNumber:    "27AAPFU0939F1ZV",
		PANNumber:    "AAPFU0939F",
		City:         "Surat",
		State:        "Gujarat",
		Status:       "approved",
		Badges:       []string{"gst"},
	}
	if err := db.Where(model.SupplierModel{Email: supplier.Email}).
		Attrs(supplier).FirstOrCreate(&supplier).Error; err != nil {
		return err
	}

	products := []model.ProductModel{
		{
			SupplierID:  supplier.ID,
			Name:        "Cotton Grey Fabric",
			Category:    "textiles",
			Description: "Combed cotton grey fabric, 40s count.",
			PriceRange:  "₹80-120/meter",
			MOQ:         "1000 meters",
			LeadTime:    "2 weeks",
			IsActive:    true,
		},
		{
			SupplierID:  supplier.ID,
			Name:        "Polyester Lining",
			Category:    "textiles",
			Description: "Lightweight polyester lining fabric.",
			PriceRange:  "₹45-60/meter",
			MOQ:         "500 meters",
			LeadTime:    "10 days",
			IsActive:    true,
		},
	}
	for i := range products {
		if err := db.Where(model.ProductModel{SupplierID: supplier.ID, Name: products[i].Name}).
			Attrs(products[i]).FirstOrCreate(&products[i]).Error; err != nil {
			return err
		}
	}

	buyer := model.BuyerModel{
		Email:       "buyer@example.com",
		Name:        "Asha Mehta",
		CompanyName: "Mehta Garments",
		Status:      "active",
	}
	if err := db.Where(model.BuyerModel{Email: buyer.Email}).
		Attrs(buyer).FirstOrCreate(&buyer).Error; err != nil {
		return err
	}

	category := model.CategoryModel{
		Name:        "Textiles",
		Slug:        "textiles",
		Description: "Fabrics, yarns and finished textile goods.",
	}
	if err := db.Where(model.CategoryModel{Slug: category.Slug}).
		Attrs(category).FirstOrCreate(&category).Error; err != nil {
		return err
	}

	inquiry := model.InquiryModel{
		BuyerID:     buyer.ID,
		SupplierID:  supplier.ID,
		CategoryID:  &category.ID,
		Product:     "Cotton Grey Fabric",
		Description: "Looking for a recurring monthly supply.",
		Quantity:    "5000 meters",
		Budget:      "₹5,00,000",
		Timeline:    "30 days",
		Status:      "new",
	}
	if err := db.Where(model.InquiryModel{BuyerID: buyer.ID, SupplierID: supplier.ID, Product: inquiry.Product}).
		Attrs(inquiry).FirstOrCreate(&inquiry).Error; err != nil {
		return err
	}

	logger.Info("Seeded development data",
		slog.String("admin", admin.Email),
		slog.String("supplier", supplier.Email),
		slog.String("buyer", buyer.Email),
	)

	return nil
}
