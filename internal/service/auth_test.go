package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository/memory"
	"frota-backend/internal/security"
)

func newAuthFixture() AuthService {
	store := memory.NewStore()
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", 60)
	return NewAuthService(store.Users, tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newAuthFixture()
	ctx := context.Background()

	user, err := auth.Register(ctx, "Maria", "maria@frota.com", "s3nha-segura")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.True(t, user.Active)
	assert.NotEqual(t, "s3nha-segura", user.PasswordHash)

	token, logged, err := auth.Login(ctx, "maria@frota.com", "s3nha-segura")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newAuthFixture()
	ctx := context.Background()
	_, err := auth.Register(ctx, "Maria", "maria@frota.com", "s3nha-segura")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "maria@frota.com", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "ninguem@frota.com", "s3nha-segura")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newAuthFixture()
	ctx := context.Background()
	_, err := auth.Register(ctx, "Maria", "maria@frota.com", "s3nha-segura")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "Outra", "maria@frota.com", "outra-senha")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "email", validation.Field)
}

func TestRegisterWeakPassword(t *testing.T) {
	auth := newAuthFixture()
	_, err := auth.Register(context.Background(), "Maria", "maria@frota.com", "curta")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "password", validation.Field)
}
