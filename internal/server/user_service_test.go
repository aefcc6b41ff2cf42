package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/types"
)

func newTestUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_Register(t *testing.T) {
	service, store := newTestUserService()
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The stored hash verifies the original password and is not the
	// plaintext itself.
	stored := store.byEmail["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)

	pwCfg := &config.PasswordConfig{BcryptCost: 10}
	assert.True(t, pwCfg.VerifyPassword("password123", stored.PasswordHash))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	require.Error(t, err)
	var dup *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dup)
}

func TestUserService_Login(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "password123",
	})
	require.NoError(t, err)

	user, err := service.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	var invalid *ErrInvalidCredentials

	_, err = service.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorAs(t, err, &invalid)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_Get(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	created, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "password123",
	})
	require.NoError(t, err)

	user, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = service.Get(ctx, uuid.New())
	var notFound *ErrUserNotFound
	assert.ErrorAs(t, err, &notFound)
}
