package handler

import (
	"net/http"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupplierHandler holds dependencies for the supplier portal endpoints.
type SupplierHandler struct {
	supplierUsecase usecase.SupplierUsecase
	resetUsecase    usecase.PasswordResetUsecase
	tokenService    service.TokenService
	cfg             *config.Config
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(
	supplierUsecase usecase.SupplierUsecase,
	resetUsecase usecase.PasswordResetUsecase,
	tokenService service.TokenService,
	cfg *config.Config,
) *SupplierHandler {
	return &SupplierHandler{
		supplierUsecase: supplierUsecase,
		resetUsecase:    resetUsecase,
		tokenService:    tokenService,
		cfg:             cfg,
	}
}

type registerSupplierRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	CompanyName string `json:"companyName" validate:"required"`
	Phone       string `json:"phone"`
	GSTNumber   string `json:"gstNumber"`
	PANNumber   string `json:"panNumber"`
	City        string `json:"city"`
	State       string `json:"state"`
}

// Register creates a new supplier account.
func (h *SupplierHandler) Register(c echo.Context) error {
	var req registerSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.supplierUsecase.Register(c.Request().Context(), &usecase.RegisterSupplierInput{
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
		GSTNumber:   req.GSTNumber,
		PANNumber:   req.PANNumber,
		City:        req.City,
		State:       req.State,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, constants.SupplierTokenCookie, output.Token, h.tokenService.SessionTTL())

	return response.Success(c, http.StatusCreated, toSupplierView(output.Supplier), "Supplier registered successfully")
}

type supplierLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the supplier login request.
func (h *SupplierHandler) Login(c echo.Context) error {
	var req supplierLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.supplierUsecase.Login(c.Request().Context(), &usecase.SupplierLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, constants.SupplierTokenCookie, output.Token, h.tokenService.SessionTTL())

	return response.Success(c, http.StatusOK, toSupplierView(output.Supplier), "Login successful")
}

// Logout clears the supplier session cookie.
func (h *SupplierHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.cfg, constants.SupplierTokenCookie)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// ForgotPassword starts the supplier password reset flow.
func (h *SupplierHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.resetUsecase.RequestReset(c.Request().Context(), &usecase.RequestResetInput{
		Audience: entity.PrincipalSupplier,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// ResetPassword completes the supplier password reset flow.
func (h *SupplierHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.resetUsecase.CompleteReset(c.Request().Context(), &usecase.CompleteResetInput{
		Audience:    entity.PrincipalSupplier,
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// GetProfile returns the authenticated supplier's profile.
func (h *SupplierHandler) GetProfile(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	supplier, err := h.supplierUsecase.GetProfile(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSupplierView(supplier), "Profile retrieved successfully")
}

type updateProfileRequest struct {
	CompanyName     *string `json:"companyName"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	Pincode         *string `json:"pincode"`
	Website         *string `json:"website"`
	ProfileImage    *string `json:"profileImage"`
	Description     *string `json:"description"`
	Categories      *string `json:"categories"`
	Capacity        *string `json:"capacity"`
	MOQ             *string `json:"moq"`
	EstablishedYear *string `json:"establishedYear"`
	EmployeeCount   *string `json:"employeeCount"`
	Certifications  *string `json:"certifications"`
}

// UpdateProfile applies the allow-listed profile edits.
func (h *SupplierHandler) UpdateProfile(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	supplier, err := h.supplierUsecase.UpdateProfile(c.Request().Context(), &usecase.UpdateSupplierProfileInput{
		SupplierID:      principal.ID,
		CompanyName:     req.CompanyName,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Pincode:         req.Pincode,
		Website:         req.Website,
		ProfileImage:    req.ProfileImage,
		Description:     req.Description,
		Categories:      req.Categories,
		Capacity:        req.Capacity,
		MOQ:             req.MOQ,
		EstablishedYear: req.EstablishedYear,
		EmployeeCount:   req.EmployeeCount,
		Certifications:  req.Certifications,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSupplierView(supplier), "Profile updated successfully")
}

type submitDocumentRequest struct {
	DocType  string `json:"docType" validate:"required"`
	FileName string `json:"fileName" validate:"required"`
	FileURL  string `json:"fileUrl" validate:"required"`
}

// SubmitDocument upserts one KYC document for the authenticated supplier.
func (h *SupplierHandler) SubmitDocument(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req submitDocumentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	docType := entity.DocType(req.DocType)
	if !docType.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown document type")
	}

	doc, err := h.supplierUsecase.SubmitDocument(c.Request().Context(), &usecase.SubmitDocumentInput{
		SupplierID: principal.ID,
		DocType:    docType,
		FileName:   req.FileName,
		FileURL:    req.FileURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDocumentView(doc), "Document submitted successfully")
}

// ListProducts returns the authenticated supplier's active products.
func (h *SupplierHandler) ListProducts(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	products, err := h.supplierUsecase.ListProducts(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	PriceRange  string   `json:"priceRange"`
	MOQ         string   `json:"moq"`
	LeadTime    string   `json:"leadTime"`
	Images      []string `json:"images"`
}

// CreateProduct adds a product to the authenticated supplier's catalog.
func (h *SupplierHandler) CreateProduct(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.supplierUsecase.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		SupplierID:  principal.ID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		PriceRange:  req.PriceRange,
		MOQ:         req.MOQ,
		LeadTime:    req.LeadTime,
		Images:      req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	PriceRange  *string  `json:"priceRange"`
	MOQ         *string  `json:"moq"`
	LeadTime    *string  `json:"leadTime"`
	Images      []string `json:"images"`
}

// UpdateProduct modifies a product the authenticated supplier owns.
func (h *SupplierHandler) UpdateProduct(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.supplierUsecase.UpdateProduct(c.Request().Context(), &usecase.UpdateProductInput{
		ProductID:   productID,
		SupplierID:  principal.ID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		PriceRange:  req.PriceRange,
		MOQ:         req.MOQ,
		LeadTime:    req.LeadTime,
		Images:      req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// DeleteProduct soft-deletes a product the authenticated supplier owns.
func (h *SupplierHandler) DeleteProduct(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.supplierUsecase.DeleteProduct(c.Request().Context(), productID, principal.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ProfileQR renders a PNG QR code linking to the supplier's public profile.
func (h *SupplierHandler) ProfileQR(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	png, err := h.supplierUsecase.ProfileQR(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
