package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"diet-coach-be/internal/pkg/serverutils"
	"diet-coach-be/internal/service"
)

type IGoogleAuthController interface {
	RegisterRoutes(r fiber.Router)
}

type googleAuthController struct {
	service     service.IGoogleAuthService
	frontendURL string
}

func NewGoogleAuthController(service service.IGoogleAuthService, frontendURL string) IGoogleAuthController {
	return &googleAuthController{service: service, frontendURL: frontendURL}
}

func (c *googleAuthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/google/v1")
	// Google redirects the browser here, no JWT.
	h.Get("/callback", c.Callback)

	h.Get("/url", serverutils.JwtMiddleware, c.AuthURL)
	h.Get("/status", serverutils.JwtMiddleware, c.Status)
	h.Delete("/disconnect", serverutils.JwtMiddleware, c.Disconnect)
}

func (c *googleAuthController) AuthURL(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.GetAuthURL(ctx.Context(), userId)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get auth url", res))
}

func (c *googleAuthController) Callback(ctx *fiber.Ctx) error {
	state := ctx.Query("state")
	code := ctx.Query("code")
	if state == "" || code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing state or code")
	}

	if err := c.service.HandleCallback(ctx.Context(), state, code); err != nil {
		return mapError(err)
	}

	if c.frontendURL != "" {
		return ctx.Redirect(c.frontendURL + "/settings?calendar=connected")
	}
	return ctx.JSON(serverutils.SuccessResponse("Google Calendar connected", nil))
}

func (c *googleAuthController) Status(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.Status(ctx.Context(), userId)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get calendar status", res))
}

func (c *googleAuthController) Disconnect(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	if err := c.service.Disconnect(ctx.Context(), userId); err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Google Calendar disconnected", nil))
}
