package entity

import (
	"time"

	"github.com/google/uuid"
)

type MembershipTier string

const (
	TierFree    MembershipTier = "FREE"
	TierPremium MembershipTier = "PREMIUM"
)

type User struct {
	Id               uuid.UUID
	Email            string
	PasswordHash     string
	Name             string
	MembershipTier   MembershipTier
	MembershipExpiry *time.Time
	MessageCount     int
	LastMessageDate  *time.Time
	Xp               int
	BuddyId          *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsPremium reports whether the premium grant is still active at now.
// An expiry exactly equal to now counts as expired.
func (u *User) IsPremium(now time.Time) bool {
	return u.MembershipTier == TierPremium &&
		u.MembershipExpiry != nil &&
		u.MembershipExpiry.After(now)
}
