// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// View structs are the JSON shapes handed to clients. Entities never cross
// the HTTP boundary directly: password hashes stay behind the mapping.

type adminView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toAdminView(admin *entity.Admin) *adminView {
	return &adminView{
		ID:        admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
		Role:      admin.Role.String(),
		LastLogin: admin.LastLogin,
		CreatedAt: admin.CreatedAt,
	}
}

type documentView struct {
	ID        uuid.UUID `json:"id"`
	DocType   string    `json:"docType"`
	FileName  string    `json:"fileName"`
	FileURL   string    `json:"fileUrl"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDocumentView(doc *entity.SupplierDocument) *documentView {
	return &documentView{
		ID:        doc.ID,
		DocType:   doc.DocType.String(),
		FileName:  doc.FileName,
		FileURL:   doc.FileURL,
		Status:    string(doc.Status),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

type supplierView struct {
	ID              uuid.UUID       `json:"id"`
	Email           string          `json:"email"`
	CompanyName     string          `json:"companyName"`
	Phone           string          `json:"phone"`
	GSTNumber       string          `json:"gstNumber"`
	PANNumber       string          `json:"panNumber"`
	Address         string          `json:"address"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	Pincode         string          `json:"pincode"`
	Website         string          `json:"website"`
	ProfileImage    string          `json:"profileImage"`
	Description     string          `json:"description"`
	Categories      string          `json:"categories"`
	Capacity        string          `json:"capacity"`
	MOQ             string          `json:"moq"`
	EstablishedYear string          `json:"establishedYear"`
	EmployeeCount   string          `json:"employeeCount"`
	Certifications  string          `json:"certifications"`
	Status          string          `json:"status"`
	Badges          []string        `json:"badges"`
	Documents       []*documentView `json:"documents,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func toSupplierView(supplier *entity.Supplier) *supplierView {
	view := &supplierView{
		ID:              supplier.ID,
		Email:           supplier.Email,
		CompanyName:     supplier.CompanyName,
		Phone:           supplier.Phone,
		GSTNumber:       supplier.GSTNumber,
		PANNumber:       supplier.PANNumber,
		Address:         supplier.Address,
		City:            supplier.City,
		State:           supplier.State,
		Pincode:         supplier.Pincode,
		Website:         supplier.Website,
		ProfileImage:    supplier.ProfileImage,
		Description:     supplier.Description,
		Categories:      supplier.Categories,
		Capacity:        supplier.Capacity,
		MOQ:             supplier.MOQ,
		EstablishedYear: supplier.EstablishedYear,
		EmployeeCount:   supplier.EmployeeCount,
		Certifications:  supplier.Certifications,
		Status:          supplier.Status.String(),
		Badges:          supplier.Badges,
		CreatedAt:       supplier.CreatedAt,
		UpdatedAt:       supplier.UpdatedAt,
	}
	for i := range supplier.Documents {
		view.Documents = append(view.Documents, toDocumentView(&supplier.Documents[i]))
	}

	return view
}

func toSupplierViews(suppliers []*entity.Supplier) []*supplierView {
	views := make([]*supplierView, 0, len(suppliers))
	for _, supplier := range suppliers {
		views = append(views, toSupplierView(supplier))
	}

	return views
}

type buyerView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	CompanyName string    `json:"companyName"`
	Status      string    `json:"status"`
	Flagged     bool      `json:"flagged"`
	FlagReason  *string   `json:"flagReason,omitempty"`
	LastActive  time.Time `json:"lastActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toBuyerView(buyer *entity.Buyer) *buyerView {
	return &buyerView{
		ID:          buyer.ID,
		Email:       buyer.Email,
		Name:        buyer.Name,
		Phone:       buyer.Phone,
		CompanyName: buyer.CompanyName,
		Status:      buyer.Status.String(),
		Flagged:     buyer.Flagged,
		FlagReason:  buyer.FlagReason,
		LastActive:  buyer.LastActive,
		CreatedAt:   buyer.CreatedAt,
	}
}

func toBuyerViews(buyers []*entity.Buyer) []*buyerView {
	views := make([]*buyerView, 0, len(buyers))
	for _, buyer := range buyers {
		views = append(views, toBuyerView(buyer))
	}

	return views
}

type productView struct {
	ID          uuid.UUID `json:"id"`
	SupplierID  uuid.UUID `json:"supplierId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	PriceRange  string    `json:"priceRange"`
	MOQ         string    `json:"moq"`
	LeadTime    string    `json:"leadTime"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProductView(product *entity.Product) *productView {
	return &productView{
		ID:          product.ID,
		SupplierID:  product.SupplierID,
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		PriceRange:  product.PriceRange,
		MOQ:         product.MOQ,
		LeadTime:    product.LeadTime,
		Images:      product.Images,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

type activityView struct {
	ID         uuid.UUID `json:"id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   uuid.UUID `json:"entityId"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toActivityViews(entries []*entity.ActivityLog) []*activityView {
	views := make([]*activityView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, &activityView{
			ID:         entry.ID,
			Action:     entry.Action,
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Message:    entry.Message,
			CreatedAt:  entry.CreatedAt,
		})
	}

	return views
}

type alertView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Severity  string    `json:"severity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAlertViews(alerts []*entity.AIAlert) []*alertView {
	views := make([]*alertView, 0, len(alerts))
	for _, alert := range alerts {
		views = append(views, &alertView{
			ID:        alert.ID,
			Title:     alert.Title,
			Severity:  alert.Severity,
			Status:    string(alert.Status),
			CreatedAt: alert.CreatedAt,
		})
	}

	return views
}

type inquiryView struct {
	ID          uuid.UUID  `json:"id"`
	BuyerID     uuid.UUID  `json:"buyerId"`
	SupplierID  uuid.UUID  `json:"supplierId"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	Product     string     `json:"product"`
	Description string     `json:"description"`
	Quantity    string     `json:"quantity"`
	Budget      string     `json:"budget"`
	Timeline    string     `json:"timeline"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toInquiryView(inquiry *entity.Inquiry) *inquiryView {
	return &inquiryView{
		ID:          inquiry.ID,
		BuyerID:     inquiry.BuyerID,
		SupplierID:  inquiry.SupplierID,
		CategoryID:  inquiry.CategoryID,
		Product:     inquiry.Product,
		Description: inquiry.Description,
		Quantity:    inquiry.Quantity,
		Budget:      inquiry.Budget,
		Timeline:    inquiry.Timeline,
		Status:      string(inquiry.Status),
		CreatedAt:   inquiry.CreatedAt,
	}
}
