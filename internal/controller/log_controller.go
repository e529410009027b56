package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/pkg/serverutils"
	"diet-coach-be/internal/service"
)

type ILogController interface {
	RegisterRoutes(r fiber.Router)
}

type logController struct {
	service service.ILogService
}

func NewLogController(service service.ILogService) ILogController {
	return &logController{service: service}
}

func (c *logController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/log/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Post("/food", c.CreateFood)
	h.Get("/food", c.ListFood)
	h.Put("/food/:id", c.UpdateFood)
	h.Delete("/food/:id", c.DeleteFood)

	h.Post("/exercise", c.CreateExercise)
	h.Get("/exercise", c.ListExercise)
	h.Delete("/exercise/:id", c.DeleteExercise)

	h.Post("/water", c.LogWater)
	h.Get("/water", c.WaterStats)
	h.Get("/water/history", c.WaterHistory)

	h.Get("/summary/daily", c.DailySummary)
	h.Get("/summary/weekly", c.WeeklySummary)
}

// dayParam reads ?date=YYYY-MM-DD, defaulting to today.
func dayParam(ctx *fiber.Ctx) (time.Time, error) {
	raw := ctx.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	return day, nil
}

func (c *logController) CreateFood(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.CreateFoodLogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateFoodLog(ctx.Context(), userId, &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success log food", res))
}

func (c *logController) ListFood(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	day, err := dayParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListFoodLogs(ctx.Context(), userId, day)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get food logs", res))
}

func (c *logController) UpdateFood(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateFoodLogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateFoodLog(ctx.Context(), userId, id, &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update food log", res))
}

func (c *logController) DeleteFood(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := c.service.DeleteFoodLog(ctx.Context(), userId, id); err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete food log", nil))
}

func (c *logController) CreateExercise(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.CreateExerciseLogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateExerciseLog(ctx.Context(), userId, &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success log exercise", res))
}

func (c *logController) ListExercise(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	day, err := dayParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListExerciseLogs(ctx.Context(), userId, day)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get exercise logs", res))
}

func (c *logController) DeleteExercise(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := c.service.DeleteExerciseLog(ctx.Context(), userId, id); err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete exercise log", nil))
}

func (c *logController) LogWater(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.LogWaterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.LogWater(ctx.Context(), userId, &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success log water", res))
}

func (c *logController) WaterStats(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	day, err := dayParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.WaterStats(ctx.Context(), userId, day)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get water stats", res))
}

func (c *logController) WaterHistory(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	days := ctx.QueryInt("days", 7)
	res, err := c.service.WaterHistory(ctx.Context(), userId, days)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get water history", res))
}

func (c *logController) DailySummary(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	day, err := dayParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.DailySummary(ctx.Context(), userId, day)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get daily summary", res))
}

func (c *logController) WeeklySummary(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	day, err := dayParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.WeeklySummary(ctx.Context(), userId, day)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get weekly summary", res))
}
