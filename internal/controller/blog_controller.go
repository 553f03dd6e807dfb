package controller

import (
	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/pkg/serverutils"
	"placid-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBlogController interface {
	RegisterRoutes(r fiber.Router)
	ListPublished(ctx *fiber.Ctx) error
	GetBySlug(ctx *fiber.Ctx) error
	ListAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	SetPublished(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type blogController struct {
	service service.IBlogService
}

func NewBlogController(service service.IBlogService) IBlogController {
	return &blogController{service: service}
}

func (c *blogController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/blog")
	pub.Get("", c.ListPublished)
	pub.Get("/:slug", c.GetBySlug)

	admin := r.Group("/admin/blog")
	admin.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)
	admin.Get("", c.ListAll)
	admin.Post("", c.Create)
	admin.Put("/:id", c.Update)
	admin.Patch("/:id/publish", c.SetPublished)
	admin.Delete("/:id", c.Delete)
}

func (c *blogController) ListPublished(ctx *fiber.Ctx) error {
	res, err := c.service.ListPublished(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get posts", res))
}

func (c *blogController) GetBySlug(ctx *fiber.Ctx) error {
	res, err := c.service.GetPublishedBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get post", res))
}

func (c *blogController) ListAll(ctx *fiber.Ctx) error {
	res, err := c.service.ListAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get posts", res))
}

func (c *blogController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBlogPostRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create post", res))
}

func (c *blogController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.UpdateBlogPostRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success update post", res))
}

func (c *blogController) SetPublished(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post id")
	}

	var req struct {
		Published *bool `json:"published" validate:"required"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetPublished(ctx.Context(), id, *req.Published)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update post", res))
}

func (c *blogController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post id")
	}
	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete post", struct{}{}))
}
