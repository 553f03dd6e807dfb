package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/pkg/apperrors"
	"placid-catalog-be/internal/pkg/serverutils"
	"placid-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	GetFeatured(ctx *fiber.Ctx) error
	GetBySku(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AssignCategories(ctx *fiber.Ctx) error
	ToggleFeatured(ctx *fiber.Ctx) error
	UploadImage(ctx *fiber.Ctx) error
}

type productController struct {
	service   service.IProductService
	uploadDir string
	siteURL   string
}

func NewProductController(service service.IProductService, uploadDir string, siteURL string) IProductController {
	return &productController{
		service:   service,
		uploadDir: uploadDir,
		siteURL:   siteURL,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/products")
	pub.Get("", c.List)
	pub.Get("/featured", c.GetFeatured)
	pub.Get("/:sku", c.GetBySku)

	admin := r.Group("/admin/products")
	admin.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)
	admin.Post("", c.Create)
	admin.Put("/:sku", c.Update)
	admin.Delete("/:sku", c.Delete)
	admin.Put("/:sku/categories", c.AssignCategories)
	admin.Put("/:sku/featured", c.ToggleFeatured)
	admin.Post("/upload", c.UploadImage)
}

func (c *productController) List(ctx *fiber.Ctx) error {
	query := dto.ListProductsQuery{
		Page:              ctx.QueryInt("page", 1),
		Limit:             ctx.QueryInt("limit", 20),
		Search:            ctx.Query("search"),
		Category:          ctx.Query("category"),
		SortBy:            ctx.Query("sort_by"),
		SortOrder:         ctx.Query("sort_order"),
		IncludeCategories: ctx.QueryBool("include_categories", false),
	}
	// Only authenticated admins may see inactive products.
	if ctx.QueryBool("include_inactive", false) {
		role, _ := ctx.Locals("role").(string)
		query.IncludeInactive = role == "admin"
	}

	res, err := c.service.List(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *productController) GetFeatured(ctx *fiber.Ctx) error {
	res, err := c.service.GetFeatured(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get featured products", res))
}

func (c *productController) GetBySku(ctx *fiber.Ctx) error {
	res, err := c.service.GetBySku(ctx.Context(), ctx.Params("sku"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get product", res))
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Sku = ctx.Params("sku")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update product", res))
}

func (c *productController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.Context(), ctx.Params("sku")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete product", struct{}{}))
}

func (c *productController) AssignCategories(ctx *fiber.Ctx) error {
	var req dto.AssignCategoriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Sku = ctx.Params("sku")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AssignCategories(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success assign categories", res))
}

func (c *productController) ToggleFeatured(ctx *fiber.Ctx) error {
	var req dto.ToggleFeaturedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Sku = ctx.Params("sku")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ToggleFeatured(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle featured", res))
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

func (c *productController) UploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return apperrors.NewValidation("Missing image file")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return apperrors.NewValidation("Unsupported image type")
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	dest := filepath.Join(c.uploadDir, filename)
	if err := ctx.SaveFile(file, dest); err != nil {
		return apperrors.NewInternal("Failed to save uploaded file", err)
	}

	url := fmt.Sprintf("%s/uploads/%s", strings.TrimRight(c.siteURL, "/"), filename)
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload image", dto.UploadImageResponse{URL: url}))
}
