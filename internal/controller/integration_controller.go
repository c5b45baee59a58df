package controller

import (
	"healthlink-be/internal/dto"
	"healthlink-be/internal/pkg/serverutils"
	"healthlink-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIntegrationController interface {
	RegisterRoutes(r fiber.Router)
	ChatWebhook(ctx *fiber.Ctx) error
	UserContext(ctx *fiber.Ctx) error
}

type integrationController struct {
	service service.IIntegrationService
}

func NewIntegrationController(service service.IIntegrationService) IIntegrationController {
	return &integrationController{service: service}
}

func (c *integrationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/n8n")
	h.Post("/webhook/chat", c.ChatWebhook)
	h.Get("/user-context", c.UserContext)
}

func (c *integrationController) ChatWebhook(ctx *fiber.Ctx) error {
	var req dto.ChatWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.ChatWebhook(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(dto.ChatWebhookResponse{Success: true})
}

func (c *integrationController) UserContext(ctx *fiber.Ctx) error {
	res, err := c.service.UserContext(ctx.Context(), ctx.Query("user_id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
