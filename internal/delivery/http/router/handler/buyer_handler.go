package handler

import (
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BuyerHandler holds dependencies for the buyer-facing endpoints.
type BuyerHandler struct {
	buyerUsecase usecase.BuyerUsecase
}

// NewBuyerHandler is the constructor for BuyerHandler, injected by Fx.
func NewBuyerHandler(buyerUsecase usecase.BuyerUsecase) *BuyerHandler {
	return &BuyerHandler{buyerUsecase: buyerUsecase}
}

// Me returns the authenticated buyer's account.
func (h *BuyerHandler) Me(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	buyer, err := h.buyerUsecase.Me(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBuyerView(buyer), "Account retrieved successfully")
}

type submitInquiryRequest struct {
	SupplierID  string `json:"supplierId" validate:"required"`
	CategoryID  string `json:"categoryId"`
	Product     string `json:"product" validate:"required"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
}

// SubmitInquiry records a sourcing request against a supplier.
func (h *BuyerHandler) SubmitInquiry(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req submitInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inquiry input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid supplier ID")
	}

	var categoryID *uuid.UUID
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
		}
		categoryID = &id
	}

	inquiry, err := h.buyerUsecase.SubmitInquiry(c.Request().Context(), &usecase.SubmitInquiryInput{
		BuyerID:     principal.ID,
		SupplierID:  supplierID,
		CategoryID:  categoryID,
		Product:     req.Product,
		Description: req.Description,
		Quantity:    req.Quantity,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toInquiryView(inquiry), "Inquiry submitted successfully")
}
