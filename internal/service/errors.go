package service

import "errors"

// Shared sentinels so controllers can map failures to HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("User not found")
	ErrProfileNotFound    = errors.New("Profile not found. Please complete onboarding first")
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("access denied")

	ErrNoWaterLogs = errors.New("No logs to remove")

	ErrAlreadyJoined = errors.New("Already joined")

	ErrCalendarNotConnected = errors.New("Google Calendar is not connected")
	ErrCalendarAuthExpired  = errors.New("Calendar authorization expired. Please reconnect your Google account")

	ErrInvalidSignature   = errors.New("invalid signature")
	ErrInvalidOauthState  = errors.New("invalid or expired oauth state")
	ErrTransactionMissing = errors.New("transaction not found")
)
