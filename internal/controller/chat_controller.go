package controller

import (
	"healthlink-be/internal/dto"
	"healthlink-be/internal/pkg/serverutils"
	"healthlink-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	CreateMessage(ctx *fiber.Ctx) error
	DeleteMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IConversationService
}

func NewChatController(service service.IConversationService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversations")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	// the messages sub-resource is registered before the bare :id routes so
	// the more specific pattern wins
	h.Get(":id/messages", c.GetMessages)
	h.Post(":id/messages", c.CreateMessage)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)

	// messages are deleted by their own id, not through the parent
	r.Delete("/messages/:id", c.DeleteMessage)
}

func (c *chatController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateConversationRequest
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

func (c *chatController) Show(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) Update(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.Success())
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	conversationId, err := idParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetMessages(ctx.Context(), conversationId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) CreateMessage(ctx *fiber.Ctx) error {
	conversationId, err := idParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateMessage(ctx.Context(), conversationId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) DeleteMessage(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteMessage(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.Success())
}
