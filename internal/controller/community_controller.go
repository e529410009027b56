package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"diet-coach-be/internal/pkg/serverutils"
	"diet-coach-be/internal/service"
)

type ICommunityController interface {
	RegisterRoutes(r fiber.Router)
}

type communityController struct {
	service service.ICommunityService
}

func NewCommunityController(service service.ICommunityService) ICommunityController {
	return &communityController{service: service}
}

func (c *communityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/community/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/buddy", c.GetBuddy)
	h.Put("/buddy/:id", c.SetBuddy)
	h.Delete("/buddy", c.RemoveBuddy)
	h.Get("/gamification", c.Gamification)
	h.Get("/groups", c.ListGroups)
	h.Post("/groups/:id/join", c.JoinGroup)
	h.Get("/challenges", c.ListChallenges)
	h.Post("/challenges/:id/join", c.JoinChallenge)
}

func (c *communityController) ListGroups(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.ListGroups(ctx.Context(), userId)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get groups", res))
}

func (c *communityController) JoinGroup(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	groupId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := c.service.JoinGroup(ctx.Context(), userId, groupId); err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Joined successfully", nil))
}

func (c *communityController) ListChallenges(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.ListChallenges(ctx.Context(), userId)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get challenges", res))
}

func (c *communityController) JoinChallenge(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	challengeId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := c.service.JoinChallenge(ctx.Context(), userId, challengeId); err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Joined successfully", nil))
}

func (c *communityController) SetBuddy(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	buddyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.service.SetBuddy(ctx.Context(), userId, buddyId)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set buddy", res))
}

func (c *communityController) RemoveBuddy(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	if err := c.service.RemoveBuddy(ctx.Context(), userId); err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove buddy", nil))
}

func (c *communityController) GetBuddy(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.GetBuddy(ctx.Context(), userId)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get buddy", res))
}

func (c *communityController) Gamification(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.Gamification(ctx.Context(), userId)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get gamification", res))
}
