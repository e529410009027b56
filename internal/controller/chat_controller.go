package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/pkg/serverutils"
	"diet-coach-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
}

type chatController struct {
	chat   service.IChatService
	vision service.IVisionService
}

func NewChatController(chat service.IChatService, vision service.IVisionService) IChatController {
	return &chatController{chat: chat, vision: vision}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Chat)
	h.Get("/history", c.History)
	h.Get("/quota", c.Quota)
	h.Post("/analyze-food", c.AnalyzeFood)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chat.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	limit := ctx.QueryInt("limit", 50)

	res, err := c.chat.History(ctx.Context(), userId, limit)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) Quota(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.chat.Quota(ctx.Context(), userId)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get quota", res))
}

func (c *chatController) AnalyzeFood(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.AnalyzeFoodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.vision.AnalyzeFood(ctx.Context(), userId, &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success analyze food", res))
}
