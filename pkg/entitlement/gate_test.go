package entitlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps one account in memory and records persisted mutations.
type fakeStore struct {
	account    *Account
	resets     int
	increments int
}

func (f *fakeStore) GetAccount(_ context.Context, _ string) (*Account, error) {
	return f.account, nil
}

func (f *fakeStore) ResetMessageCount(_ context.Context, _ string, at time.Time) error {
	f.resets++
	f.account.MessageCount = 0
	f.account.LastMessageDate = at
	return nil
}

func (f *fakeStore) IncrementMessageCount(_ context.Context, _ string, at time.Time) error {
	f.increments++
	f.account.MessageCount++
	f.account.LastMessageDate = at
	return nil
}

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

func newTestGate(account *Account) (*Gate, *fakeStore) {
	store := &fakeStore{account: account}
	return NewGateWithClock(store, func() time.Time { return testNow }), store
}

func TestCheckMessageLimitUnknownUser(t *testing.T) {
	gate, _ := newTestGate(nil)
	res, err := gate.CheckMessageLimit(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, "User not found", res.Reason)
}

func TestPremiumBypassesQuota(t *testing.T) {
	gate, _ := newTestGate(&Account{
		SubscriptionTier: TierPremium,
		MessageCount:     99,
		LastMessageDate:  testNow,
	})

	res, err := gate.CheckMessageLimit(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.True(t, res.IsPremium)
}

func TestExpiryBoundaryIsStrict(t *testing.T) {
	tests := []struct {
		name    string
		expires time.Time
		premium bool
	}{
		{"expiry in future", testNow.Add(time.Hour), true},
		{"expiry exactly now is expired", testNow, false},
		{"expiry in past", testNow.Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expires := tt.expires
			gate, _ := newTestGate(&Account{
				SubscriptionTier:      TierPremium,
				SubscriptionExpiresAt: &expires,
				LastMessageDate:       testNow,
			})
			premium, err := gate.IsPremium(context.Background(), "u1")
			require.NoError(t, err)
			assert.Equal(t, tt.premium, premium)
		})
	}
}

func TestNilExpiryNeverLapses(t *testing.T) {
	gate, _ := newTestGate(&Account{SubscriptionTier: TierPremium, LastMessageDate: testNow})
	premium, err := gate.IsPremium(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, premium)
}

func TestQuotaResetOnNewDay(t *testing.T) {
	gate, store := newTestGate(&Account{
		SubscriptionTier: "FREE",
		MessageCount:     10,
		LastMessageDate:  testNow.AddDate(0, 0, -1),
	})

	res, err := gate.CheckMessageLimit(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, FreeMessageLimit, res.Remaining)
	assert.Equal(t, 1, store.resets)
	assert.Equal(t, 0, store.account.MessageCount)

	// A racing second check on the same new day resets again, harmlessly.
	res2, err := gate.CheckMessageLimit(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, res2.Allowed)
	assert.Equal(t, 0, store.account.MessageCount)
}

func TestQuotaExhaustion(t *testing.T) {
	gate, _ := newTestGate(&Account{
		SubscriptionTier: "FREE",
		MessageCount:     10,
		LastMessageDate:  testNow.Add(-time.Hour), // same day
	})

	res, err := gate.CheckMessageLimit(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, "Daily limit reached", res.Reason)
}

func TestQuotaRemaining(t *testing.T) {
	gate, store := newTestGate(&Account{
		SubscriptionTier: "FREE",
		MessageCount:     3,
		LastMessageDate:  testNow.Add(-time.Minute),
	})

	res, err := gate.CheckMessageLimit(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 7, res.Remaining)

	require.NoError(t, gate.IncrementMessageCount(context.Background(), "u1"))
	assert.Equal(t, 4, store.account.MessageCount)
	assert.Equal(t, testNow, store.account.LastMessageDate)
}

func TestExpiredPremiumFallsBackToQuota(t *testing.T) {
	expired := testNow.Add(-time.Minute)
	gate, _ := newTestGate(&Account{
		SubscriptionTier:      TierPremium,
		SubscriptionExpiresAt: &expired,
		MessageCount:          10,
		LastMessageDate:       testNow.Add(-time.Hour),
	})

	res, err := gate.CheckMessageLimit(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, "Daily limit reached", res.Reason)
}

func TestRequirePremium(t *testing.T) {
	gate, _ := newTestGate(&Account{SubscriptionTier: "FREE", LastMessageDate: testNow})
	err := gate.RequirePremium(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrPremiumRequired)
}
