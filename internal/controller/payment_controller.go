package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/pkg/serverutils"
	"diet-coach-be/internal/service"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment/v1")
	// Midtrans calls this server to server, no JWT.
	h.Post("/notification", c.Notification)

	h.Post("/charge", serverutils.JwtMiddleware, c.CreateCharge)
	h.Get("/transactions", serverutils.JwtMiddleware, c.Transactions)
}

func (c *paymentController) CreateCharge(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.CreateCharge(ctx.Context(), userId)
	if err != nil {
		return mapError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create charge", res))
}

func (c *paymentController) Notification(ctx *fiber.Ctx) error {
	var req dto.MidtransNotification
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := c.service.HandleNotification(ctx.Context(), &req); err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("OK", nil))
}

func (c *paymentController) Transactions(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.GetTransactions(ctx.Context(), userId)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get transactions", res))
}
