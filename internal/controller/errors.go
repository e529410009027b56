package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"diet-coach-be/internal/service"
	"diet-coach-be/pkg/entitlement"
)

// mapError translates service sentinels into HTTP statuses; anything unknown
// falls through to the 500 handler.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrCalendarAuthExpired):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrTransactionMissing):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, entitlement.ErrDailyLimitReached):
		return fiber.NewError(fiber.StatusTooManyRequests, err.Error())
	case errors.Is(err, entitlement.ErrPremiumRequired),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrInvalidSignature):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNoWaterLogs),
		errors.Is(err, service.ErrAlreadyJoined),
		errors.Is(err, service.ErrCalendarNotConnected),
		errors.Is(err, service.ErrInvalidOauthState):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
