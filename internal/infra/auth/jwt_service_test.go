package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
)

const testSecret = "test-secret-key"

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_SessionRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)
	accountID := uuid.New()

	token, err := svc.IssueSession(entity.PrincipalAdmin, accountID, "admin@example.com", "super_admin")
	require.NoError(t, err)

	claims, err := svc.VerifySession(token, entity.PrincipalAdmin)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "super_admin", claims.Role)
	assert.Equal(t, entity.PrincipalAdmin, claims.Audience)
	assert.Equal(t, service.TokenKindSession, claims.Kind)
}

func TestJWTService_AudienceMismatch(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueSession(entity.PrincipalSupplier, uuid.New(), "s@example.com", "")
	require.NoError(t, err)

	_, err = svc.VerifySession(token, entity.PrincipalAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.VerifySession(token, entity.PrincipalBuyer)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_KindSeparation(t *testing.T) {
	svc := newTestTokenService(t)
	accountID := uuid.New()

	sessionToken, err := svc.IssueSession(entity.PrincipalSupplier, accountID, "s@example.com", "")
	require.NoError(t, err)
	resetToken, err := svc.IssueReset(entity.PrincipalSupplier, accountID, "s@example.com")
	require.NoError(t, err)

	// A session token can never complete a password reset.
	_, err = svc.VerifyReset(sessionToken, entity.PrincipalSupplier)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	// And a reset token can never open a session.
	_, err = svc.VerifySession(resetToken, entity.PrincipalSupplier)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	claims, err := svc.VerifyReset(resetToken, entity.PrincipalSupplier)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, service.TokenKindPasswordReset, claims.Kind)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := newTestTokenService(t)

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := svc.VerifySession(token, entity.PrincipalAdmin)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	}
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Token = "a-different-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.IssueSession(entity.PrincipalAdmin, uuid.New(), "admin@example.com", "admin")
	require.NoError(t, err)

	_, err = svc.VerifySession(token, entity.PrincipalAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	// Hand-craft an already-expired token signed with the same secret.
	claims := jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "admin@example.com",
		"aud":   string(entity.PrincipalAdmin),
		"kind":  string(service.TokenKindSession),
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.VerifySession(expired, entity.PrincipalAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_MissingSubject(t *testing.T) {
	svc := newTestTokenService(t)

	claims := jwt.MapClaims{
		"email": "admin@example.com",
		"aud":   string(entity.PrincipalAdmin),
		"kind":  string(service.TokenKindSession),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.VerifySession(token, entity.PrincipalAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_SessionTTL(t *testing.T) {
	svc := newTestTokenService(t)
	assert.Equal(t, 24*time.Hour, svc.SessionTTL())
}
