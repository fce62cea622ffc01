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

// AdminHandler holds dependencies for the back-office endpoints.
type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	resetUsecase usecase.PasswordResetUsecase
	tokenService service.TokenService
	cfg          *config.Config
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	adminUsecase usecase.AdminUsecase,
	resetUsecase usecase.PasswordResetUsecase,
	tokenService service.TokenService,
	cfg *config.Config,
) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		resetUsecase: resetUsecase,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

type registerInitialAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInitial bootstraps the first admin account.
func (h *AdminHandler) RegisterInitial(c echo.Context) error {
	var req registerInitialAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.adminUsecase.RegisterInitialAdmin(c.Request().Context(), &usecase.RegisterInitialAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, constants.AdminTokenCookie, output.Token, h.tokenService.SessionTTL())

	return response.Success(c, http.StatusCreated, toAdminView(output.Admin), "Admin created successfully")
}

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the admin login request.
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.adminUsecase.Login(c.Request().Context(), &usecase.AdminLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, constants.AdminTokenCookie, output.Token, h.tokenService.SessionTTL())

	return response.Success(c, http.StatusOK, toAdminView(output.Admin), "Login successful")
}

// Logout clears the admin session cookie.
func (h *AdminHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.cfg, constants.AdminTokenCookie)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword starts the admin password reset flow.
func (h *AdminHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.resetUsecase.RequestReset(c.Request().Context(), &usecase.RequestResetInput{
		Audience: entity.PrincipalAdmin,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ResetPassword completes the admin password reset flow.
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.resetUsecase.CompleteReset(c.Request().Context(), &usecase.CompleteResetInput{
		Audience:    entity.PrincipalAdmin,
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// Dashboard returns the back-office landing page counters and feeds.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	output, err := h.adminUsecase.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pendingSuppliers": output.PendingSuppliers,
		"totalSuppliers":   output.TotalSuppliers,
		"flaggedBuyers":    output.FlaggedBuyers,
		"recentInquiries":  output.RecentInquiries,
		"recentActivity":   toActivityViews(output.RecentActivity),
		"activeAlerts":     toAlertViews(output.ActiveAlerts),
	}, "Dashboard retrieved successfully")
}

// ListSuppliers returns all suppliers with their KYC documents.
func (h *AdminHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.adminUsecase.ListSuppliers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSupplierViews(suppliers), "Suppliers retrieved successfully")
}

// GetSupplier returns one supplier.
func (h *AdminHandler) GetSupplier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid supplier ID")
	}

	supplier, err := h.adminUsecase.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSupplierView(supplier), "Supplier retrieved successfully")
}

// ListBuyers returns all buyers.
func (h *AdminHandler) ListBuyers(c echo.Context) error {
	buyers, err := h.adminUsecase.ListBuyers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBuyerViews(buyers), "Buyers retrieved successfully")
}

type supplierActionRequest struct {
	Action string   `json:"action" validate:"required"`
	Badges []string `json:"badges"`
}

// SupplierAction applies one moderation action to a supplier.
func (h *AdminHandler) SupplierAction(c echo.Context) error {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid supplier ID")
	}

	var req supplierActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	supplier, err := h.adminUsecase.ApplySupplierAction(c.Request().Context(), &usecase.SupplierActionInput{
		SupplierID: supplierID,
		Action:     usecase.SupplierAction(req.Action),
		Badges:     req.Badges,
		AdminID:    principal.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSupplierView(supplier), "Action applied successfully")
}

type buyerActionRequest struct {
	Action string `json:"action" validate:"required"`
}

// BuyerAction applies one moderation action to a buyer.
func (h *AdminHandler) BuyerAction(c echo.Context) error {
	buyerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid buyer ID")
	}

	var req buyerActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	buyer, err := h.adminUsecase.ApplyBuyerAction(c.Request().Context(), &usecase.BuyerActionInput{
		BuyerID: buyerID,
		Action:  usecase.BuyerAction(req.Action),
		AdminID: principal.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBuyerView(buyer), "Action applied successfully")
}
