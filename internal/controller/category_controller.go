package controller

import (
	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/pkg/serverutils"
	"placid-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	GetHierarchy(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetBySlug(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Recount(ctx *fiber.Ctx) error
}

type categoryController struct {
	service service.ICategoryService
}

func NewCategoryController(service service.ICategoryService) ICategoryController {
	return &categoryController{service: service}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/categories")
	pub.Get("/hierarchy", c.GetHierarchy)
	pub.Get("", c.GetAll)
	pub.Get("/:slug", c.GetBySlug)

	admin := r.Group("/admin/categories")
	admin.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)
	admin.Post("", c.Create)
	admin.Put("/:id", c.Update)
	admin.Post("/recount", c.Recount)
}

func (c *categoryController) GetHierarchy(ctx *fiber.Ctx) error {
	res, err := c.service.GetHierarchy(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get category hierarchy", res))
}

func (c *categoryController) GetAll(ctx *fiber.Ctx) error {
	includeInactive := ctx.QueryBool("include_inactive", false)

	res, err := c.service.GetAll(ctx.Context(), includeInactive)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get categories", res))
}

func (c *categoryController) GetBySlug(ctx *fiber.Ctx) error {
	res, err := c.service.GetBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get category", res))
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create category", res))
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update category", res))
}

func (c *categoryController) Recount(ctx *fiber.Ctx) error {
	if err := c.service.Recount(ctx.Context()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success recount categories", struct{}{}))
}
