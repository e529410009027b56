// Package entitlement decides whether a metered action is permitted for a
// user: premium resolution with lazy expiry, and the free-tier daily message
// quota. State is re-evaluated on every check; there is no background sweep.
package entitlement

import (
	"context"
	"errors"
	"time"

	"diet-coach-be/internal/pkg/timeutil"
)

// FreeMessageLimit is the number of AI chat turns a free-tier user gets per
// calendar day (server-local).
const FreeMessageLimit = 10

const TierPremium = "PREMIUM"

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrDailyLimitReached = errors.New("Daily limit reached")
	ErrPremiumRequired   = errors.New("premium subscription required")
)

// Account is the slice of the user record the gate reads.
type Account struct {
	SubscriptionTier      string
	SubscriptionExpiresAt *time.Time
	MessageCount          int
	LastMessageDate       time.Time
}

// UserStore is the narrow persistence port the gate needs. The quota counter
// updates must be atomic at the store level (count = count + 1), but the
// check and the increment are two separate calls: two concurrent requests can
// both pass CheckMessageLimit before either increments. That overrun is
// inherited, accepted behavior; a conditional increment-if-below-limit UPDATE
// would close it if the contract is ever strengthened.
type UserStore interface {
	GetAccount(ctx context.Context, userID string) (*Account, error)
	ResetMessageCount(ctx context.Context, userID string, at time.Time) error
	IncrementMessageCount(ctx context.Context, userID string, at time.Time) error
}

type LimitResult struct {
	Allowed   bool
	IsPremium bool
	Remaining int
	Reason    string
}

type Gate struct {
	store UserStore
	now   func() time.Time
}

func NewGate(store UserStore) *Gate {
	return &Gate{store: store, now: time.Now}
}

// NewGateWithClock injects the clock for tests.
func NewGateWithClock(store UserStore, now func() time.Time) *Gate {
	return &Gate{store: store, now: now}
}

func (g *Gate) isPremium(a *Account) bool {
	// Expiry exactly equal to now counts as expired (strict After).
	return a.SubscriptionTier == TierPremium &&
		(a.SubscriptionExpiresAt == nil || a.SubscriptionExpiresAt.After(g.now()))
}

// IsPremium resolves the user's effective tier. Expiry is evaluated lazily
// here on every call; a lapsed user keeps the stored tier value until checked.
func (g *Gate) IsPremium(ctx context.Context, userID string) (bool, error) {
	account, err := g.store.GetAccount(ctx, userID)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, nil
	}
	return g.isPremium(account), nil
}

// RequirePremium returns ErrPremiumRequired for free users so callers can map
// it to an upgrade prompt rather than a generic failure.
func (g *Gate) RequirePremium(ctx context.Context, userID string) error {
	premium, err := g.IsPremium(ctx, userID)
	if err != nil {
		return err
	}
	if !premium {
		return ErrPremiumRequired
	}
	return nil
}

// CheckMessageLimit evaluates the quota state machine. It may persist an
// idempotent counter reset on day rollover, but never consumes quota; callers
// call IncrementMessageCount only after the metered action succeeds.
func (g *Gate) CheckMessageLimit(ctx context.Context, userID string) (*LimitResult, error) {
	account, err := g.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return &LimitResult{Allowed: false, Reason: ErrUserNotFound.Error()}, nil
	}

	if g.isPremium(account) {
		return &LimitResult{Allowed: true, IsPremium: true}, nil
	}

	now := g.now()
	if !timeutil.SameDay(account.LastMessageDate, now) {
		// New quota day: reset and allow with a full allowance. Setting the
		// counter to zero twice is safe if two requests race the rollover.
		if err := g.store.ResetMessageCount(ctx, userID, now); err != nil {
			return nil, err
		}
		return &LimitResult{Allowed: true, Remaining: FreeMessageLimit}, nil
	}

	if account.MessageCount >= FreeMessageLimit {
		return &LimitResult{Allowed: false, Reason: ErrDailyLimitReached.Error()}, nil
	}

	return &LimitResult{Allowed: true, Remaining: FreeMessageLimit - account.MessageCount}, nil
}

// IncrementMessageCount consumes one unit of quota and stamps the message
// time. Call only after the downstream action succeeded.
func (g *Gate) IncrementMessageCount(ctx context.Context, userID string) error {
	return g.store.IncrementMessageCount(ctx, userID, g.now())
}
