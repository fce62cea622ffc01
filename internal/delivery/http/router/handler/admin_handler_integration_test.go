package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
)

// stubAdminUsecase returns canned outputs; the handler tests only exercise
// binding, validation, cookies and serialization.
type stubAdminUsecase struct {
	session    *usecase.AdminSessionOutput
	supplier   *entity.Supplier
	buyer      *entity.Buyer
	lastAction *usecase.SupplierActionInput
	err        error
}

func (s *stubAdminUsecase) RegisterInitialAdmin(_ context.Context, _ *usecase.RegisterInitialAdminInput) (*usecase.AdminSessionOutput, error) {
	return s.session, s.err
}

func (s *stubAdminUsecase) Login(_ context.Context, _ *usecase.AdminLoginInput) (*usecase.AdminSessionOutput, error) {
	return s.session, s.err
}

func (s *stubAdminUsecase) Dashboard(_ context.Context) (*usecase.DashboardOutput, error) {
	return &usecase.DashboardOutput{}, s.err
}

func (s *stubAdminUsecase) ListSuppliers(_ context.Context) ([]*entity.Supplier, error) {
	return []*entity.Supplier{s.supplier}, s.err
}

func (s *stubAdminUsecase) GetSupplier(_ context.Context, _ uuid.UUID) (*entity.Supplier, error) {
	return s.supplier, s.err
}

func (s *stubAdminUsecase) ListBuyers(_ context.Context) ([]*entity.Buyer, error) {
	return []*entity.Buyer{s.buyer}, s.err
}

func (s *stubAdminUsecase) ApplySupplierAction(_ context.Context, input *usecase.SupplierActionInput) (*entity.Supplier, error) {
	s.lastAction = input

	return s.supplier, s.err
}

func (s *stubAdminUsecase) ApplyBuyerAction(_ context.Context, _ *usecase.BuyerActionInput) (*entity.Buyer, error) {
	return s.buyer, s.err
}

type stubResetUsecase struct{}

func (s *stubResetUsecase) RequestReset(_ context.Context, _ *usecase.RequestResetInput) (string, error) {
	return "If an account with that email exists, a password reset link has been sent.", nil
}

func (s *stubResetUsecase) CompleteReset(_ context.Context, _ *usecase.CompleteResetInput) error {
	return nil
}

type stubTokenService struct{}

func (s *stubTokenService) IssueSession(entity.PrincipalKind, uuid.UUID, string, string) (string, error) {
	return "session-token", nil
}

func (s *stubTokenService) IssueReset(entity.PrincipalKind, uuid.UUID, string) (string, error) {
	return "reset-token", nil
}

func (s *stubTokenService) VerifySession(string, entity.PrincipalKind) (*service.Claims, error) {
	return nil, nil
}

func (s *stubTokenService) VerifyReset(string, entity.PrincipalKind) (*service.Claims, error) {
	return nil, nil
}

func (s *stubTokenService) SessionTTL() time.Duration { return 24 * time.Hour }

func newHandlerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"

	return cfg
}

func newAdminHandlerEcho(adminUC usecase.AdminUsecase) (*echo.Echo, *AdminHandler) {
	e := echo.New()
	e.Validator = validator.New()
	h := NewAdminHandler(adminUC, &stubResetUsecase{}, &stubTokenService{}, newHandlerTestConfig())

	return e, h
}

func TestAdminLoginHandler(t *testing.T) {
	admin := &entity.Admin{ID: uuid.New(), Email: "admin@example.com", Name: "Root Admin", Role: entity.AdminRoleSuper}
	stub := &stubAdminUsecase{session: &usecase.AdminSessionOutput{Token: "session-token", Admin: admin}}
	e, h := newAdminHandlerEcho(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"admin12345"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == constants.AdminTokenCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie, "login must set the admin session cookie")
	assert.Equal(t, "session-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", data["email"])
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAdminLoginHandler_MissingFields(t *testing.T) {
	e, h := newAdminHandlerEcho(&stubAdminUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login",
		strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAdminLogoutHandler(t *testing.T) {
	e, h := newAdminHandlerEcho(&stubAdminUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == constants.AdminTokenCookie {
			assert.Less(t, ck.MaxAge, 0, "logout must expire the cookie")

			return
		}
	}
	t.Fatal("logout did not touch the admin session cookie")
}

func TestSupplierActionHandler(t *testing.T) {
	supplier := &entity.Supplier{ID: uuid.New(), CompanyName: "Shree Textiles", Status: entity.SupplierStatusApproved}
	stub := &stubAdminUsecase{supplier: supplier}
	e, h := newAdminHandlerEcho(stub)
	adminID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/suppliers/"+supplier.ID.String()+"/action",
		strings.NewReader(`{"action":"approve"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(supplier.ID.String())
	deliverycontext.SetPrincipal(c, &entity.Principal{ID: adminID, Kind: entity.PrincipalAdmin})

	require.NoError(t, h.SupplierAction(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastAction)
	assert.Equal(t, usecase.SupplierActionApprove, stub.lastAction.Action)
	assert.Equal(t, adminID, stub.lastAction.AdminID, "the acting admin comes from the request principal")
}

func TestSupplierActionHandler_BadSupplierID(t *testing.T) {
	e, h := newAdminHandlerEcho(&stubAdminUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/suppliers/not-a-uuid/action",
		strings.NewReader(`{"action":"approve"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.SupplierAction(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
