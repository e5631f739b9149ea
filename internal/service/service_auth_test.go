package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

func newAuthFixture(duration time.Duration) AuthService {
	return NewAuthService(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-key-vault-test",
		TokenDuration: duration,
	}, logger.Nop())
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newAuthFixture(time.Hour)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Login: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseExpiredToken(t *testing.T) {
	svc := newAuthFixture(-time.Minute)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseGarbage(t *testing.T) {
	svc := newAuthFixture(time.Hour)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not.a.token")
	assert.Error(t, err)

	_, err = svc.ParseToken(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_ParseForeignSignature(t *testing.T) {
	issuing := newAuthFixture(time.Hour)
	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	verifying := NewAuthService(config.App{
		TokenSignKey:  "a-different-key",
		TokenIssuer:   "go-key-vault-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	assert.Error(t, err)
}
