package auth

import (
	"context"
	"testing"
	"time"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestUseCase(t *testing.T) (*AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := NewAuthUseCase(store.UserRepo(), store.SessionRepo(), testSecret, time.Hour)
	return uc, store
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	reg, err := uc.Register(ctx, &RegisterRequest{Email: "a@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "a@example.com", reg.User.Email)

	login, err := uc.Login(ctx, &LoginRequest{Email: "a@example.com", Password: "secret-pass"})
	require.NoError(t, err)

	userID, err := uc.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, userID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, &RegisterRequest{Email: "a@example.com", Password: "secret-pass"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, &RegisterRequest{Email: "a@example.com", Password: "other-pass"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyTaken)
}

func TestLogin_WrongCredentials(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, &RegisterRequest{Email: "a@example.com", Password: "secret-pass"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, &LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogout_RevokesToken(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	reg, err := uc.Register(ctx, &RegisterRequest{Email: "a@example.com", Password: "secret-pass"})
	require.NoError(t, err)

	_, err = uc.Authenticate(ctx, reg.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, reg.Token))

	_, err = uc.Authenticate(ctx, reg.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Authenticate(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestDeleteAccount(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	reg, err := uc.Register(ctx, &RegisterRequest{Email: "a@example.com", Password: "secret-pass"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAccount(ctx, reg.User.ID))

	_, err = store.UserRepo().GetByID(ctx, reg.User.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.ErrorIs(t, uc.DeleteAccount(ctx, reg.User.ID), domain.ErrUserNotFound)
}
