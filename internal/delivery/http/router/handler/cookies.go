package handler

import (
	"net/http"
	"time"

	"bazaar/config"

	"github.com/labstack/echo/v4"
)

// setSessionCookie attaches a session token cookie to the response. Cookies
// are http-only and marked secure outside local development.
func setSessionCookie(c echo.Context, cfg *config.Config, name, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Env.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires a session token cookie.
func clearSessionCookie(c echo.Context, cfg *config.Config, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Env.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}
