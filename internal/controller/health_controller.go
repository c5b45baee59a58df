package controller

import (
	"time"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/pkg/apperror"
	"healthlink-be/internal/pkg/serverutils"
	"healthlink-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type healthController struct {
	service service.IHealthRecordService
}

func NewHealthController(service service.IHealthRecordService) IHealthController {
	return &healthController{service: service}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health-data")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Delete(":id", c.Delete)
}

func (c *healthController) GetAll(ctx *fiber.Ctx) error {
	query := dto.ListHealthRecordsQuery{
		DataType: ctx.Query("type"),
	}

	if raw := ctx.Query("start_date"); raw != "" {
		at, err := parseDateParam(raw, false)
		if err != nil {
			return apperror.Validation("invalid start_date")
		}
		query.StartDate = &at
	}
	if raw := ctx.Query("end_date"); raw != "" {
		at, err := parseDateParam(raw, true)
		if err != nil {
			return apperror.Validation("invalid end_date")
		}
		query.EndDate = &at
	}

	res, err := c.service.GetAll(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *healthController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateHealthRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *healthController) Delete(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.Success())
}

// parseDateParam accepts either a full timestamp or a bare date. A bare
// end-of-range date is pushed to the last instant of that day so the bound
// stays inclusive.
func parseDateParam(raw string, endOfDay bool) (time.Time, error) {
	if at, err := time.Parse(time.RFC3339, raw); err == nil {
		return at, nil
	}
	at, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		at = at.Add(24*time.Hour - time.Nanosecond)
	}
	return at, nil
}
