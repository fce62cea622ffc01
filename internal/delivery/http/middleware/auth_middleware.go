package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HeaderGoogleIDToken carries a raw Google ID token presented by a buyer
// signing in through the third-party flow.
const HeaderGoogleIDToken = "X-Google-Id-Token"

// AuthMiddleware resolves the request's principal through the identity
// use case and exposes it to handlers via the delivery context.
type AuthMiddleware struct {
	identityUsecase usecase.IdentityUsecase
	tokenService    service.TokenService
	cfg             *config.Config
	logger          *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(
	identityUsecase usecase.IdentityUsecase,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		identityUsecase: identityUsecase,
		tokenService:    tokenService,
		cfg:             cfg,
		logger:          logger,
	}
}

// RequireAdmin authenticates back-office requests against the admin table.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.require(entity.PrincipalAdmin, constants.AdminTokenCookie)
}

// RequireSupplier authenticates supplier-portal requests.
func (m *AuthMiddleware) RequireSupplier() echo.MiddlewareFunc {
	return m.require(entity.PrincipalSupplier, constants.SupplierTokenCookie)
}

// RequireBuyer authenticates buyer requests. Buyers may present either the
// custom session cookie or a Google ID token.
func (m *AuthMiddleware) RequireBuyer() echo.MiddlewareFunc {
	return m.require(entity.PrincipalBuyer, constants.BuyerTokenCookie)
}

func (m *AuthMiddleware) require(audience entity.PrincipalKind, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			input := &usecase.ResolvePrincipalInput{
				SessionToken:  sessionToken(c, cookieName),
				GoogleIDToken: c.Request().Header.Get(HeaderGoogleIDToken),
			}

			principal, err := m.identityUsecase.ResolvePrincipal(c.Request().Context(), input, audience)
			if err != nil {
				return err
			}

			// A buyer who arrived without a usable session token was resolved
			// through the Google token. Mint the session cookie now so later
			// requests skip the round-trip to Google's key servers.
			if audience == entity.PrincipalBuyer && input.SessionToken == "" {
				m.issueSessionCookie(c, cookieName, principal)
			}

			deliverycontext.SetPrincipal(c, principal)

			return next(c)
		}
	}
}

func (m *AuthMiddleware) issueSessionCookie(c echo.Context, cookieName string, principal *entity.Principal) {
	token, err := m.tokenService.IssueSession(principal.Kind, principal.ID, principal.Email, principal.Role)
	if err != nil {
		m.logger.Warn("Failed to issue session token after third-party sign-in",
			slog.String("audience", principal.Kind.String()),
			slog.Any("error", err))

		return
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.tokenService.SessionTTL().Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Env.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken extracts the custom session token from the audience's cookie,
// falling back to a Bearer Authorization header for non-browser clients.
func sessionToken(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}
