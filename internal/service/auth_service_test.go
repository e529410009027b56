package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diet-coach-be/internal/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	svc := NewAuthService(factory)

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "sari@example.com",
		Password: "correct-horse",
		Name:     "Sari",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "sari@example.com", registered.User.Email)
	assert.Equal(t, "FREE", registered.User.MembershipTier)
	assert.Equal(t, "Beginner", registered.User.Level)

	loggedIn, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "sari@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, loggedIn.User.Id)

	me, err := svc.Me(ctx, registered.User.Id)
	require.NoError(t, err)
	assert.Equal(t, "Sari", me.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	svc := NewAuthService(factory)

	req := &dto.RegisterRequest{Email: "dup@example.com", Password: "secret-pass", Name: "A"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.True(t, errors.Is(err, ErrEmailTaken))
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	svc := NewAuthService(factory)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "x@example.com", Password: "right-password", Name: "X"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "x@example.com", Password: "wrong-password"})
	require.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.True(t, errors.Is(err, ErrInvalidCredentials), "unknown email is indistinguishable from a bad password")
}
