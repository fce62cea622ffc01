package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
)

// stubTokenService mints predictable tokens for cookie assertions.
type stubTokenService struct {
	issued int
	err    error
}

func (s *stubTokenService) IssueSession(entity.PrincipalKind, uuid.UUID, string, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.issued++

	return "minted-session-token", nil
}

func (s *stubTokenService) IssueReset(entity.PrincipalKind, uuid.UUID, string) (string, error) {
	return "", nil
}

func (s *stubTokenService) VerifySession(string, entity.PrincipalKind) (*service.Claims, error) {
	return nil, domainerrors.ErrInvalidToken
}

func (s *stubTokenService) VerifyReset(string, entity.PrincipalKind) (*service.Claims, error) {
	return nil, domainerrors.ErrInvalidToken
}

func (s *stubTokenService) SessionTTL() time.Duration { return 24 * time.Hour }

// fakeIdentityUsecase records the credentials it was handed and resolves a
// canned principal.
type fakeIdentityUsecase struct {
	principal *entity.Principal
	err       error
	lastInput *usecase.ResolvePrincipalInput
}

func (f *fakeIdentityUsecase) ResolvePrincipal(_ context.Context, input *usecase.ResolvePrincipalInput, _ entity.PrincipalKind) (*entity.Principal, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}

	return f.principal, nil
}

func newTestAuthMiddleware(identity *fakeIdentityUsecase, tokens *stubTokenService) *AuthMiddleware {
	cfg := &config.Config{}
	cfg.Env.Env = "test"

	return NewAuthMiddleware(identity, tokens, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func runAuthMiddleware(t *testing.T, identity *fakeIdentityUsecase, prep func(*http.Request)) (*entity.Principal, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/supplier/profile", nil)
	if prep != nil {
		prep(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Principal
	handler := newTestAuthMiddleware(identity, &stubTokenService{}).RequireSupplier()(func(c echo.Context) error {
		seen = deliverycontext.GetPrincipal(c)

		return c.NoContent(http.StatusOK)
	})
	err := handler(c)

	return seen, err
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	identity := &fakeIdentityUsecase{
		principal: &entity.Principal{ID: uuid.New(), Kind: entity.PrincipalSupplier, Email: "textiles@example.com"},
	}

	seen, err := runAuthMiddleware(t, identity, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constants.SupplierTokenCookie, Value: "cookie-token"})
	})
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", identity.lastInput.SessionToken)
	require.NotNil(t, seen)
	assert.Equal(t, identity.principal.ID, seen.ID)
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	identity := &fakeIdentityUsecase{
		principal: &entity.Principal{ID: uuid.New(), Kind: entity.PrincipalSupplier},
	}

	_, err := runAuthMiddleware(t, identity, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	})
	require.NoError(t, err)
	assert.Equal(t, "header-token", identity.lastInput.SessionToken)
}

func TestAuthMiddleware_CookieWinsOverBearer(t *testing.T) {
	identity := &fakeIdentityUsecase{
		principal: &entity.Principal{ID: uuid.New(), Kind: entity.PrincipalSupplier},
	}

	_, err := runAuthMiddleware(t, identity, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constants.SupplierTokenCookie, Value: "cookie-token"})
		req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	})
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", identity.lastInput.SessionToken)
}

func runBuyerAuthMiddleware(t *testing.T, identity *fakeIdentityUsecase, tokens *stubTokenService, prep func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/buyer/me", nil)
	if prep != nil {
		prep(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := newTestAuthMiddleware(identity, tokens).RequireBuyer()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec
}

func buyerSessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == constants.BuyerTokenCookie {
			return ck
		}
	}

	return nil
}

func TestAuthMiddleware_GoogleHeaderPassthrough(t *testing.T) {
	identity := &fakeIdentityUsecase{
		principal: &entity.Principal{ID: uuid.New(), Kind: entity.PrincipalBuyer},
	}

	runBuyerAuthMiddleware(t, identity, &stubTokenService{}, func(req *http.Request) {
		req.Header.Set(HeaderGoogleIDToken, "google-token")
	})
	assert.Equal(t, "google-token", identity.lastInput.GoogleIDToken)
	assert.Empty(t, identity.lastInput.SessionToken)
}

func TestAuthMiddleware_GoogleSignInSetsSessionCookie(t *testing.T) {
	identity := &fakeIdentityUsecase{
		principal: &entity.Principal{ID: uuid.New(), Kind: entity.PrincipalBuyer, Email: "buyer@example.com"},
	}
	tokens := &stubTokenService{}

	rec := runBuyerAuthMiddleware(t, identity, tokens, func(req *http.Request) {
		req.Header.Set(HeaderGoogleIDToken, "google-token")
	})

	cookie := buyerSessionCookie(rec)
	require.NotNil(t, cookie, "a Google-resolved buyer must get a session cookie")
	assert.Equal(t, "minted-session-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.Equal(t, 1, tokens.issued)
}

func TestAuthMiddleware_ExistingSessionCookieNotReissued(t *testing.T) {
	identity := &fakeIdentityUsecase{
		principal: &entity.Principal{ID: uuid.New(), Kind: entity.PrincipalBuyer, Email: "buyer@example.com"},
	}
	tokens := &stubTokenService{}

	rec := runBuyerAuthMiddleware(t, identity, tokens, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constants.BuyerTokenCookie, Value: "existing-token"})
	})

	assert.Nil(t, buyerSessionCookie(rec))
	assert.Zero(t, tokens.issued)
}

func TestAuthMiddleware_CookieMintFailureStillAuthenticates(t *testing.T) {
	identity := &fakeIdentityUsecase{
		principal: &entity.Principal{ID: uuid.New(), Kind: entity.PrincipalBuyer, Email: "buyer@example.com"},
	}
	tokens := &stubTokenService{err: assert.AnError}

	// The request already authenticated through Google; a token-mint hiccup
	// only costs the next request another Google round-trip.
	rec := runBuyerAuthMiddleware(t, identity, tokens, func(req *http.Request) {
		req.Header.Set(HeaderGoogleIDToken, "google-token")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, buyerSessionCookie(rec))
}

func TestAuthMiddleware_SupplierNeverAutoIssuesCookie(t *testing.T) {
	identity := &fakeIdentityUsecase{
		principal: &entity.Principal{ID: uuid.New(), Kind: entity.PrincipalSupplier},
	}
	tokens := &stubTokenService{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/supplier/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := newTestAuthMiddleware(identity, tokens).RequireSupplier()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Empty(t, rec.Result().Cookies())
	assert.Zero(t, tokens.issued)
}

func TestAuthMiddleware_ResolutionFailurePropagates(t *testing.T) {
	identity := &fakeIdentityUsecase{err: domainerrors.ErrUnauthorized}

	seen, err := runAuthMiddleware(t, identity, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Nil(t, seen, "the handler must not run on a failed resolution")
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	newErrorMiddleware().HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, domainerrors.ErrUnauthorized.Message(), body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), body.Error.Code)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	rec, _ := handleError(t, domainerrors.ErrSupplierNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route not found", body.Message)
}

func TestErrorMiddleware_UnknownErrorStaysGeneric(t *testing.T) {
	rec, body := handleError(t, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	require.NotNil(t, body.Error)
	assert.NotContains(t, body.Error.Details, assert.AnError.Error(), "internal details must not leak to the client")
}
