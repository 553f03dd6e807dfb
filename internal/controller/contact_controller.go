package controller

import (
	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/pkg/apperrors"
	"placid-catalog-be/internal/pkg/serverutils"
	"placid-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Reply(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type contactController struct {
	service service.IInquiryService
}

func NewContactController(service service.IInquiryService) IContactController {
	return &contactController{service: service}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.Submit)

	admin := r.Group("/admin/inquiries")
	admin.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)
	admin.Get("", c.List)
	admin.Get("/:id", c.Get)
	admin.Patch("/:id/status", c.UpdateStatus)
	admin.Post("/:id/reply", c.Reply)
	admin.Delete("/:id", c.Delete)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.CreateInquiryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit inquiry", res))
}

func (c *contactController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get inquiries", res))
}

func (c *contactController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid inquiry id")
	}
	res, err := c.service.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get inquiry", res))
}

func (c *contactController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid inquiry id")
	}

	var req dto.UpdateInquiryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.Status == "" {
		return apperrors.NewValidation("Status is required")
	}

	res, err := c.service.UpdateStatus(ctx.Context(), id, req.Status)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update inquiry", res))
}

func (c *contactController) Reply(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid inquiry id")
	}

	var req dto.UpdateInquiryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.ReplyMessage == "" {
		return apperrors.NewValidation("Reply message is required")
	}

	res, err := c.service.Reply(ctx.Context(), id, req.ReplyMessage)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reply inquiry", res))
}

func (c *contactController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid inquiry id")
	}
	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete inquiry", struct{}{}))
}
