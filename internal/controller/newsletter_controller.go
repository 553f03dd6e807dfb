package controller

import (
	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/pkg/serverutils"
	"placid-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INewsletterController interface {
	RegisterRoutes(r fiber.Router)
	Subscribe(ctx *fiber.Ctx) error
	Unsubscribe(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type newsletterController struct {
	service service.INewsletterService
}

func NewNewsletterController(service service.INewsletterService) INewsletterController {
	return &newsletterController{service: service}
}

func (c *newsletterController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/newsletter")
	pub.Post("/subscribe", c.Subscribe)
	pub.Post("/unsubscribe", c.Unsubscribe)

	admin := r.Group("/admin/newsletter")
	admin.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)
	admin.Get("", c.List)
}

func (c *newsletterController) Subscribe(ctx *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Subscribe(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success subscribe", res))
}

func (c *newsletterController) Unsubscribe(ctx *fiber.Ctx) error {
	var req dto.UnsubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Unsubscribe(ctx.Context(), req.Email); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success unsubscribe", struct{}{}))
}

func (c *newsletterController) List(ctx *fiber.Ctx) error {
	activeOnly := ctx.QueryBool("active_only", false)
	res, err := c.service.List(ctx.Context(), activeOnly)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subscribers", res))
}
