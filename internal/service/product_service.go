package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/apperrors"
	"placid-catalog-be/internal/repository/specification"
	"placid-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	featuredCacheKey = "product:featured"

	// Hard cap on products flagged featured, enforced on toggle.
	maxFeaturedProducts = 10

	defaultPageSize = 20
	maxPageSize     = 100
)

type IProductService interface {
	List(ctx context.Context, query *dto.ListProductsQuery) (*dto.PaginatedProductsResponse, error)
	GetBySku(ctx context.Context, sku string) (*dto.ProductResponse, error)
	GetFeatured(ctx context.Context) ([]*dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, sku string) error
	AssignCategories(ctx context.Context, req *dto.AssignCategoriesRequest) (*dto.ProductResponse, error)
	ToggleFeatured(ctx context.Context, req *dto.ToggleFeaturedRequest) (*dto.ProductResponse, error)
}

type productService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	embedTopic       string
	cache            *gocache.Cache
}

func NewProductService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embedTopic string,
	cache *gocache.Cache,
) IProductService {
	return &productService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		embedTopic:       embedTopic,
		cache:            cache,
	}
}

func (s *productService) bustCache() {
	if s.cache != nil {
		s.cache.Delete(featuredCacheKey)
		s.cache.Delete(hierarchyCacheKey)
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	res := &dto.ProductResponse{
		Id:            p.Id,
		Sku:           p.Sku,
		TitleEn:       p.TitleEn,
		TitleTh:       p.TitleTh,
		DescriptionEn: p.DescriptionEn,
		DescriptionTh: p.DescriptionTh,
		Category:      p.Category,
		Supplier:      p.Supplier,
		Images:        p.Images,
		Pdfs:          p.Pdfs,
		Active:        p.Active,
		HasPricing:    p.HasPricing,
		Featured:      p.Featured,
		SourceURL:     p.SourceURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	for _, link := range p.Categories {
		pc := &dto.ProductCategoryResponse{
			CategoryId: link.CategoryId,
			IsPrimary:  link.IsPrimary,
		}
		if link.Category != nil {
			pc.Category = toCategoryResponse(link.Category)
		}
		res.Categories = append(res.Categories, pc)
	}
	return res
}

func (s *productService) publishEmbed(ctx context.Context, productId uuid.UUID) {
	// Embedding refresh is best-effort; the catalog write already happened.
	msg := dto.PublishEmbedProductMessage{ProductId: productId}
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return
	}
	s.publisherService.Publish(ctx, s.embedTopic, msgJson)
}

func (s *productService) List(ctx context.Context, query *dto.ListProductsQuery) (*dto.PaginatedProductsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	specs := make([]specification.Specification, 0, 4)
	if !query.IncludeInactive {
		specs = append(specs, specification.ActiveOnly{})
	}
	if query.Search != "" {
		specs = append(specs, specification.ProductKeyword{Keyword: query.Search})
	}
	if query.Category != "" {
		specs = append(specs, specification.ByCategoryName{Name: query.Category})
	}

	total, err := uow.ProductRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	sortField := "created_at"
	switch query.SortBy {
	case "title":
		sortField = "title_en"
	case "sku":
		sortField = "sku"
	}
	specs = append(specs,
		specification.OrderBy{Field: sortField, Desc: query.SortOrder == "desc"},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}

	return &dto.PaginatedProductsResponse{
		Products:   result,
		Total:      total,
		Page:       page,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *productService) GetBySku(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindBySku(ctx, strings.ToUpper(sku))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFound("Product not found")
	}
	return toProductResponse(product), nil
}

func (s *productService) GetFeatured(ctx context.Context) ([]*dto.ProductResponse, error) {
	if s.cache != nil {
		if cached, found := s.cache.Get(featuredCacheKey); found {
			return cached.([]*dto.ProductResponse), nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.FeaturedOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: maxFeaturedProducts, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}

	if s.cache != nil {
		s.cache.Set(featuredCacheKey, result, gocache.DefaultExpiration)
	}
	return result, nil
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sku := strings.ToUpper(strings.TrimSpace(req.Sku))
	existing, err := uow.ProductRepository().FindOne(ctx, specification.BySku{Sku: sku})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidation("SKU already exists")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := entity.Product{
		Id:            uuid.New(),
		Sku:           sku,
		TitleEn:       req.TitleEn,
		TitleTh:       req.TitleTh,
		DescriptionEn: req.DescriptionEn,
		DescriptionTh: req.DescriptionTh,
		Category:      req.Category,
		Images:        req.Images,
		Pdfs:          req.Pdfs,
		Active:        active,
		HasPricing:    req.HasPricing,
		CreatedAt:     time.Now(),
	}
	if req.Supplier != "" {
		product.Supplier = &req.Supplier
	}
	if req.SourceURL != "" {
		product.SourceURL = &req.SourceURL
	}

	if err := uow.ProductRepository().Create(ctx, &product); err != nil {
		return nil, err
	}

	s.publishEmbed(ctx, product.Id)
	return toProductResponse(&product), nil
}

func (s *productService) Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.BySku{Sku: strings.ToUpper(req.Sku)})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFound("Product not found")
	}

	now := time.Now()
	product.TitleEn = req.TitleEn
	product.TitleTh = req.TitleTh
	product.DescriptionEn = req.DescriptionEn
	product.DescriptionTh = req.DescriptionTh
	product.Images = req.Images
	product.Pdfs = req.Pdfs
	if req.Supplier != "" {
		product.Supplier = &req.Supplier
	}
	if req.SourceURL != "" {
		product.SourceURL = &req.SourceURL
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.HasPricing != nil {
		product.HasPricing = *req.HasPricing
	}
	product.UpdatedAt = &now

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	s.bustCache()
	s.publishEmbed(ctx, product.Id)
	return toProductResponse(product), nil
}

// Delete deactivates the product. Rows stay in place so associations and
// embeddings survive a reactivation.
func (s *productService) Delete(ctx context.Context, sku string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.BySku{Sku: strings.ToUpper(sku)})
	if err != nil {
		return err
	}
	if product == nil {
		return apperrors.NewNotFound("Product not found")
	}

	now := time.Now()
	product.Active = false
	product.UpdatedAt = &now

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return err
	}

	s.bustCache()
	return nil
}

// AssignCategories replaces a product's category links in one transaction:
// scalar category takes the primary's English name, old rows go, new rows
// come in with exactly one is_primary, then every active category is
// recounted. Any failure rolls the whole sequence back.
func (s *productService) AssignCategories(ctx context.Context, req *dto.AssignCategoriesRequest) (*dto.ProductResponse, error) {
	primaryInList := false
	seen := make(map[uuid.UUID]bool, len(req.Categories))
	for _, id := range req.Categories {
		if seen[id] {
			return nil, apperrors.NewValidation("Duplicate category in list")
		}
		seen[id] = true
		if id == req.PrimaryCategory {
			primaryInList = true
		}
	}
	if !primaryInList {
		return nil, apperrors.NewValidation("Primary category must be in the categories list")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	product, err := uow.ProductRepository().FindOne(ctx, specification.BySku{Sku: strings.ToUpper(req.Sku)})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFound("Product not found")
	}

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.ByIDs{IDs: req.Categories})
	if err != nil {
		return nil, err
	}

	var primary *entity.Category
	for _, category := range categories {
		if category.Id == req.PrimaryCategory {
			primary = category
			break
		}
	}
	if primary == nil {
		return nil, apperrors.NewNotFound("Primary category not found")
	}
	if len(categories) != len(req.Categories) {
		return nil, apperrors.NewNotFound("One or more categories not found")
	}

	now := time.Now()
	product.Category = primary.NameEn
	product.UpdatedAt = &now
	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	if err := uow.ProductCategoryRepository().DeleteByProductId(ctx, product.Id); err != nil {
		return nil, err
	}

	links := make([]*entity.ProductCategory, 0, len(req.Categories))
	for _, id := range req.Categories {
		links = append(links, &entity.ProductCategory{
			ProductId:  product.Id,
			CategoryId: id,
			IsPrimary:  id == req.PrimaryCategory,
		})
	}
	if err := uow.ProductCategoryRepository().CreateBulk(ctx, links); err != nil {
		return nil, err
	}

	if err := recountActiveCategories(ctx, uow); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.bustCache()
	s.publishEmbed(ctx, product.Id)

	// Reload outside the transaction so the response carries the new links.
	fresh, err := s.uowFactory.NewUnitOfWork(ctx).ProductRepository().FindBySku(ctx, product.Sku)
	if err != nil || fresh == nil {
		return toProductResponse(product), nil
	}
	return toProductResponse(fresh), nil
}

// ToggleFeatured flips the featured flag. Turning it on counts live featured
// products (never the denormalized column) inside the transaction; at the
// cap the product is left untouched.
func (s *productService) ToggleFeatured(ctx context.Context, req *dto.ToggleFeaturedRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	product, err := uow.ProductRepository().FindOne(ctx, specification.BySku{Sku: strings.ToUpper(req.Sku)})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFound("Product not found")
	}

	featured := *req.Featured
	if featured {
		count, err := uow.ProductRepository().CountActiveFeaturedExcluding(ctx, product.Sku)
		if err != nil {
			return nil, err
		}
		if count >= maxFeaturedProducts {
			return nil, apperrors.NewCapacityExceeded("Maximum of 10 featured products allowed")
		}
	}

	now := time.Now()
	product.Featured = featured
	product.UpdatedAt = &now
	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.bustCache()
	return toProductResponse(product), nil
}
