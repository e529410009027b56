package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diet-coach-be/internal/config"
	"diet-coach-be/internal/entity"
)

func TestGetAuthURLEmbedsState(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewGoogleAuthService(factory, newTestCodec(t), config.GoogleConfig{
		ClientID:    "client-id",
		RedirectURL: "https://example.com/callback",
	})

	resp, err := svc.GetAuthURL(ctx, user.Id)
	require.NoError(t, err)
	assert.Contains(t, resp.URL, "state=")
	assert.Contains(t, resp.URL, "access_type=offline")
	assert.Contains(t, resp.URL, "prompt=consent")
}

func TestHandleCallbackRejectsUnknownState(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	svc := NewGoogleAuthService(factory, newTestCodec(t), config.GoogleConfig{})

	err := svc.HandleCallback(ctx, "never-issued", "any-code")
	require.True(t, errors.Is(err, ErrInvalidOauthState))
}

func TestCalendarConnectionStatus(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	codec := newTestCodec(t)
	svc := NewGoogleAuthService(factory, codec, config.GoogleConfig{})

	status, err := svc.Status(ctx, user.Id)
	require.NoError(t, err)
	assert.False(t, status.Connected)

	_, err = svc.TokenSource(ctx, user.Id)
	require.True(t, errors.Is(err, ErrCalendarNotConnected))

	// Simulate a stored grant.
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.GoogleAuthRepository().Upsert(ctx, &entity.GoogleAuth{
		UserId:       user.Id,
		AccessToken:  codec.Encrypt("access"),
		RefreshToken: codec.Encrypt("refresh"),
		TokenExpiry:  time.Now().Add(time.Hour),
	}))

	status, err = svc.Status(ctx, user.Id)
	require.NoError(t, err)
	assert.True(t, status.Connected)

	ts, err := svc.TokenSource(ctx, user.Id)
	require.NoError(t, err)
	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "access", tok.AccessToken, "tokens come back decrypted")

	require.NoError(t, svc.Disconnect(ctx, user.Id))
	status, err = svc.Status(ctx, user.Id)
	require.NoError(t, err)
	assert.False(t, status.Connected)
}
