package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diet-coach-be/internal/dto"
	"diet-coach-be/pkg/entitlement"
	"diet-coach-be/pkg/llm"
)

type fakeVisionProvider struct {
	reply    string
	err      error
	lastMime string
	lastData []byte
}

func (f *fakeVisionProvider) AnalyzeImage(_ context.Context, _ string, imageData []byte, mimeType string, _ ...llm.Option) (string, error) {
	f.lastData = imageData
	f.lastMime = mimeType
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestAnalyzeFoodRequiresPremium(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewVisionService(gate, &fakeVisionProvider{}, nopLogger{})

	_, err := svc.AnalyzeFood(ctx, user.Id, &dto.AnalyzeFoodRequest{
		Image: base64.StdEncoding.EncodeToString([]byte("img")),
	})
	require.True(t, errors.Is(err, entitlement.ErrPremiumRequired))
}

func TestAnalyzeFoodParsesResult(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory, asPremium(time.Now().Add(48*time.Hour)))
	gate := entitlement.NewGate(NewGateStore(factory))
	provider := &fakeVisionProvider{
		reply: `{"foods": [{"name": "Gado-gado", "portion": "1 bowl", "calories": 450}], "totalCalories": 450, "confidence": "high"}`,
	}
	svc := NewVisionService(gate, provider, nopLogger{})

	resp, err := svc.AnalyzeFood(ctx, user.Id, &dto.AnalyzeFoodRequest{
		Image: base64.StdEncoding.EncodeToString([]byte("img")),
	})
	require.NoError(t, err)
	require.Len(t, resp.Foods, 1)
	assert.Equal(t, "Gado-gado", resp.Foods[0].Name)
	assert.Equal(t, 450.0, resp.TotalCalories)
	assert.Equal(t, "high", resp.Confidence)
	assert.Equal(t, []byte("img"), provider.lastData)
	assert.Equal(t, "image/jpeg", provider.lastMime, "mime falls back to jpeg")
}

func TestAnalyzeFoodDataURL(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory, asPremium(time.Now().Add(48*time.Hour)))
	gate := entitlement.NewGate(NewGateStore(factory))
	provider := &fakeVisionProvider{
		reply: `{"foods": [], "totalCalories": 0, "confidence": "high"}`,
	}
	svc := NewVisionService(gate, provider, nopLogger{})

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("pngbytes"))
	_, err := svc.AnalyzeFood(ctx, user.Id, &dto.AnalyzeFoodRequest{Image: payload})
	require.NoError(t, err)
	assert.Equal(t, "image/png", provider.lastMime)
	assert.Equal(t, []byte("pngbytes"), provider.lastData)
}

func TestAnalyzeFoodDegradesOnProseReply(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory, asPremium(time.Now().Add(48*time.Hour)))
	gate := entitlement.NewGate(NewGateStore(factory))
	provider := &fakeVisionProvider{reply: "That looks like a tasty bowl of soup."}
	svc := NewVisionService(gate, provider, nopLogger{})

	resp, err := svc.AnalyzeFood(ctx, user.Id, &dto.AnalyzeFoodRequest{
		Image: base64.StdEncoding.EncodeToString([]byte("img")),
	})
	require.NoError(t, err, "unparseable model output degrades instead of failing")
	assert.Empty(t, resp.Foods)
	assert.Equal(t, "low", resp.Confidence)
	assert.Equal(t, provider.reply, resp.RawResponse)
}

func TestAnalyzeFoodRejectsBadBase64(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory, asPremium(time.Now().Add(48*time.Hour)))
	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewVisionService(gate, &fakeVisionProvider{}, nopLogger{})

	_, err := svc.AnalyzeFood(ctx, user.Id, &dto.AnalyzeFoodRequest{Image: "%%% not base64 %%%"})
	require.Error(t, err)
}
