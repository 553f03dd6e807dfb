package service

import (
	"context"
	"time"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/apperrors"
	"placid-catalog-be/internal/repository/specification"
	"placid-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const hierarchyCacheKey = "category:hierarchy"

type ICategoryService interface {
	GetHierarchy(ctx context.Context) ([]*dto.CategoryTreeResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]*dto.CategoryResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Recount(ctx context.Context) error
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache) ICategoryService {
	return &categoryService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// recountActiveCategories overwrites product_count for every active category
// with the number of distinct active products linked through the association
// table. Idempotent; runs on whatever connection the unit of work holds, so
// callers inside a transaction get transactional recounts.
func recountActiveCategories(ctx context.Context, uow unitofwork.UnitOfWork) error {
	categories, err := uow.CategoryRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return err
	}
	for _, category := range categories {
		count, err := uow.ProductCategoryRepository().CountActiveProducts(ctx, category.Id)
		if err != nil {
			return err
		}
		if err := uow.CategoryRepository().UpdateProductCount(ctx, category.Id, int(count)); err != nil {
			return err
		}
	}
	return nil
}

// maxTreeDepth bounds the ancestor walk so a corrupted tree cannot loop the
// request forever.
const maxTreeDepth = 32

// ensureNoAncestorCycle rejects moving a category under one of its own
// descendants. It walks up from the proposed parent; reaching the category
// being updated means the move would close a cycle, after which no node in
// the loop would be reachable from the roots.
func ensureNoAncestorCycle(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, parent *entity.Category) error {
	cursor := parent
	for depth := 0; cursor.ParentId != nil; depth++ {
		if depth >= maxTreeDepth {
			return apperrors.NewValidation("Category tree is too deep")
		}
		if *cursor.ParentId == id {
			return apperrors.NewValidation("Category cannot be moved under its own descendant")
		}
		next, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *cursor.ParentId})
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		cursor = next
	}
	return nil
}

func (s *categoryService) bustCache() {
	if s.cache != nil {
		s.cache.Delete(hierarchyCacheKey)
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:            c.Id,
		NameEn:        c.NameEn,
		NameTh:        c.NameTh,
		Slug:          c.Slug,
		DescriptionEn: c.DescriptionEn,
		DescriptionTh: c.DescriptionTh,
		Active:        c.Active,
		Order:         c.Order,
		ProductCount:  c.ProductCount,
		ParentId:      c.ParentId,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (s *categoryService) GetHierarchy(ctx context.Context) ([]*dto.CategoryTreeResponse, error) {
	if s.cache != nil {
		if cached, found := s.cache.Get(hierarchyCacheKey); found {
			return cached.([]*dto.CategoryTreeResponse), nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	// Build the tree in memory. One query, then link children to parents.
	byParent := make(map[uuid.UUID][]*entity.Category)
	roots := make([]*entity.Category, 0)
	for _, category := range categories {
		if category.ParentId == nil {
			roots = append(roots, category)
		} else {
			byParent[*category.ParentId] = append(byParent[*category.ParentId], category)
		}
	}

	var attach func(c *entity.Category) *dto.CategoryTreeResponse
	attach = func(c *entity.Category) *dto.CategoryTreeResponse {
		node := &dto.CategoryTreeResponse{
			CategoryResponse: *toCategoryResponse(c),
			Children:         make([]*dto.CategoryTreeResponse, 0),
		}
		for _, child := range byParent[c.Id] {
			node.Children = append(node.Children, attach(child))
		}
		return node
	}

	tree := make([]*dto.CategoryTreeResponse, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, attach(root))
	}

	if s.cache != nil {
		s.cache.Set(hierarchyCacheKey, tree, gocache.DefaultExpiration)
	}
	return tree, nil
}

func (s *categoryService) GetAll(ctx context.Context, includeInactive bool) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "sort_order"},
	}
	if !includeInactive {
		specs = append(specs, specification.ActiveOnly{})
	}

	categories, err := uow.CategoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, toCategoryResponse(category))
	}
	return result, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	category, err := uow.CategoryRepository().FindOne(ctx,
		specification.BySlug{Slug: slug},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NewNotFound("Category not found")
	}
	return toCategoryResponse(category), nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Pre-check for a friendly message; the unique index is the backstop.
	existing, err := uow.CategoryRepository().FindBySlugExcept(ctx, req.Slug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidation("Slug already in use")
	}

	if req.ParentId != nil {
		parent, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperrors.NewValidation("Parent category not found")
		}
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	category := entity.Category{
		Id:            uuid.New(),
		NameEn:        req.NameEn,
		NameTh:        req.NameTh,
		Slug:          req.Slug,
		DescriptionEn: req.DescriptionEn,
		DescriptionTh: req.DescriptionTh,
		Active:        active,
		Order:         req.Order,
		ParentId:      req.ParentId,
		CreatedAt:     time.Now(),
	}

	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}

	s.bustCache()
	return toCategoryResponse(&category), nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NewNotFound("Category not found")
	}

	existing, err := uow.CategoryRepository().FindBySlugExcept(ctx, req.Slug, req.Id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidation("Slug already in use")
	}

	if req.ParentId != nil {
		if *req.ParentId == req.Id {
			return nil, apperrors.NewValidation("Category cannot be its own parent")
		}
		parent, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperrors.NewValidation("Parent category not found")
		}
		if err := ensureNoAncestorCycle(ctx, uow, req.Id, parent); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	category.NameEn = req.NameEn
	category.NameTh = req.NameTh
	category.Slug = req.Slug
	category.DescriptionEn = req.DescriptionEn
	category.DescriptionTh = req.DescriptionTh
	category.ParentId = req.ParentId
	if req.Active != nil {
		category.Active = *req.Active
	}
	if req.Order != nil {
		category.Order = *req.Order
	}
	category.UpdatedAt = &now

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}

	s.bustCache()
	return toCategoryResponse(category), nil
}

func (s *categoryService) Recount(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := recountActiveCategories(ctx, uow); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.bustCache()
	return nil
}
