// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

const (
	sessionTTL       = 24 * time.Hour
	adminResetTTL    = 15 * time.Minute
	supplierResetTTL = time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// A single HS256 secret signs every token; the aud and kind claims keep the
// token populations apart.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Token)}, nil
}

// IssueSession creates a session token for the given account.
func (s *jwtService) IssueSession(audience entity.PrincipalKind, accountID uuid.UUID, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   accountID.String(),
		"email": email,
		"aud":   string(audience),
		"kind":  string(service.TokenKindSession),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(sessionTTL).Unix(),
	}
	if role != "" {
		claims["role"] = role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// IssueReset creates a short-lived, single-purpose password-reset token.
// Admin reset tokens expire faster than supplier ones.
func (s *jwtService) IssueReset(audience entity.PrincipalKind, accountID uuid.UUID, email string) (string, error) {
	ttl := supplierResetTTL
	if audience == entity.PrincipalAdmin {
		ttl = adminResetTTL
	}

	claims := jwt.MapClaims{
		"sub":   accountID.String(),
		"email": email,
		"aud":   string(audience),
		"kind":  string(service.TokenKindPasswordReset),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// VerifySession verifies a session token for the expected audience. Tokens
// minted before the kind claim existed carry none; those are treated as
// session tokens.
func (s *jwtService) VerifySession(tokenString string, audience entity.PrincipalKind) (*service.Claims, error) {
	claims, kind, err := s.parse(tokenString, audience)
	if err != nil {
		return nil, err
	}
	if kind != "" && kind != service.TokenKindSession {
		return nil, domainerrors.ErrInvalidToken
	}
	claims.Kind = service.TokenKindSession

	return claims, nil
}

// VerifyReset verifies a password-reset token for the expected audience.
// The kind claim must be present and match; a session token can never
// complete a reset.
func (s *jwtService) VerifyReset(tokenString string, audience entity.PrincipalKind) (*service.Claims, error) {
	claims, kind, err := s.parse(tokenString, audience)
	if err != nil {
		return nil, err
	}
	if kind != service.TokenKindPasswordReset {
		return nil, domainerrors.ErrInvalidToken
	}
	claims.Kind = service.TokenKindPasswordReset

	return claims, nil
}

// SessionTTL returns the session token lifetime, used for the cookie max-age.
func (s *jwtService) SessionTTL() time.Duration {
	return sessionTTL
}

// parse validates signature, expiry and audience. Every failure collapses
// into ErrInvalidToken so the caller cannot tell which check rejected the
// token.
func (s *jwtService) parse(tokenString string, audience entity.PrincipalKind) (*service.Claims, service.TokenKind, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithAudience(string(audience)))
	if err != nil || !token.Valid {
		return nil, "", domainerrors.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", domainerrors.ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, "", domainerrors.ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	kindRaw, _ := mapClaims["kind"].(string)

	claims := &service.Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		Audience:  audience,
	}

	return claims, service.TokenKind(kindRaw), nil
}
