package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateProductDuplicateSku(t *testing.T) {
	store := &fakeStore{
		products: []entity.Product{
			{Id: uuid.New(), Sku: "PA-FW-101", Active: true},
		},
	}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	_, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Sku:     " pa-fw-101 ",
		TitleEn: "Panel",
		TitleTh: "แผ่น",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, "SKU already exists", appErr.Message)
}

func TestCreateProductUppercasesSkuAndQueuesEmbed(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{}
	svc := NewProductService(newFakeFactory(store), pub, "EMBED_PRODUCT", nil)

	res, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Sku:     "pa-fw-102",
		TitleEn: "Panel",
		TitleTh: "แผ่น",
	})
	require.NoError(t, err)
	assert.Equal(t, "PA-FW-102", res.Sku)
	assert.True(t, res.Active)

	require.Len(t, pub.published, 1)
	assert.Equal(t, "EMBED_PRODUCT", pub.published[0].Topic)
}

func TestToggleFeaturedAtCap(t *testing.T) {
	products := make([]entity.Product, 0, 11)
	for i := 0; i < 10; i++ {
		products = append(products, entity.Product{
			Id: uuid.New(), Sku: fmt.Sprintf("FEAT-%d", i), Active: true, Featured: true,
		})
	}
	target := entity.Product{Id: uuid.New(), Sku: "TARGET-1", Active: true}
	products = append(products, target)

	store := &fakeStore{products: products}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	_, err := svc.ToggleFeatured(context.Background(), &dto.ToggleFeaturedRequest{
		Sku:      "target-1",
		Featured: boolPtr(true),
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindCapacityExceeded, appErr.Kind)
	assert.Equal(t, "Maximum of 10 featured products allowed", appErr.Message)

	// Target untouched.
	for _, p := range store.products {
		if p.Sku == "TARGET-1" {
			assert.False(t, p.Featured)
		}
	}
}

func TestToggleFeaturedBelowCap(t *testing.T) {
	store := &fakeStore{
		products: []entity.Product{
			{Id: uuid.New(), Sku: "FEAT-1", Active: true, Featured: true},
			{Id: uuid.New(), Sku: "TARGET-1", Active: true},
		},
	}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	res, err := svc.ToggleFeatured(context.Background(), &dto.ToggleFeaturedRequest{
		Sku:      "TARGET-1",
		Featured: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, res.Featured)
}

func TestToggleFeaturedOffIgnoresCap(t *testing.T) {
	products := make([]entity.Product, 0, 11)
	for i := 0; i < 10; i++ {
		products = append(products, entity.Product{
			Id: uuid.New(), Sku: fmt.Sprintf("FEAT-%d", i), Active: true, Featured: true,
		})
	}
	products = append(products, entity.Product{Id: uuid.New(), Sku: "TARGET-1", Active: true, Featured: true})

	store := &fakeStore{products: products}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	res, err := svc.ToggleFeatured(context.Background(), &dto.ToggleFeaturedRequest{
		Sku:      "TARGET-1",
		Featured: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, res.Featured)
}

func TestAssignCategoriesPrimaryMustBeInList(t *testing.T) {
	store := &fakeStore{}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	_, err := svc.AssignCategories(context.Background(), &dto.AssignCategoriesRequest{
		Sku:             "PA-1",
		Categories:      []uuid.UUID{uuid.New()},
		PrimaryCategory: uuid.New(),
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, 0, store.beginCount)
}

func TestAssignCategoriesRejectsDuplicates(t *testing.T) {
	id := uuid.New()
	svc := NewProductService(newFakeFactory(&fakeStore{}), &fakePublisher{}, "EMBED_PRODUCT", nil)

	_, err := svc.AssignCategories(context.Background(), &dto.AssignCategoriesRequest{
		Sku:             "PA-1",
		Categories:      []uuid.UUID{id, id},
		PrimaryCategory: id,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
}

func TestAssignCategoriesWritesScalarLinksAndRecounts(t *testing.T) {
	catPrimary := uuid.New()
	catSecondary := uuid.New()
	catOld := uuid.New()
	productId := uuid.New()

	store := &fakeStore{
		categories: []entity.Category{
			{Id: catPrimary, NameEn: "Fabric Panels", Slug: "fabric", Active: true},
			{Id: catSecondary, NameEn: "Wall Systems", Slug: "walls", Active: true},
			{Id: catOld, NameEn: "Old Home", Slug: "old", Active: true, ProductCount: 1},
		},
		products: []entity.Product{
			{Id: productId, Sku: "PA-1", TitleEn: "Panel", Active: true, Category: "Old Home"},
		},
		links: []entity.ProductCategory{
			{ProductId: productId, CategoryId: catOld, IsPrimary: true},
		},
	}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	res, err := svc.AssignCategories(context.Background(), &dto.AssignCategoriesRequest{
		Sku:             "pa-1",
		Categories:      []uuid.UUID{catSecondary, catPrimary},
		PrimaryCategory: catPrimary,
	})
	require.NoError(t, err)

	// Scalar column takes the primary's English name.
	assert.Equal(t, "Fabric Panels", res.Category)

	// Old rows replaced, exactly one primary.
	require.Len(t, store.links, 2)
	primaries := 0
	for _, link := range store.links {
		assert.Equal(t, productId, link.ProductId)
		assert.NotEqual(t, catOld, link.CategoryId)
		if link.IsPrimary {
			primaries++
			assert.Equal(t, catPrimary, link.CategoryId)
		}
	}
	assert.Equal(t, 1, primaries)

	// Every active category recounted inside the same transaction.
	for _, c := range store.categories {
		switch c.Id {
		case catPrimary, catSecondary:
			assert.Equal(t, 1, c.ProductCount)
		case catOld:
			assert.Equal(t, 0, c.ProductCount)
		}
	}

	assert.Equal(t, 1, store.commitCount)
	assert.Equal(t, 0, store.rollbackCount)
}

func TestAssignCategoriesRollsBackOnFailure(t *testing.T) {
	cat := uuid.New()
	catOld := uuid.New()
	productId := uuid.New()

	store := &fakeStore{
		categories: []entity.Category{
			{Id: cat, NameEn: "Fabric Panels", Slug: "fabric", Active: true},
			{Id: catOld, NameEn: "Old Home", Slug: "old", Active: true, ProductCount: 1},
		},
		products: []entity.Product{
			{Id: productId, Sku: "PA-1", TitleEn: "Panel", Active: true, Category: "Old Home"},
		},
		links: []entity.ProductCategory{
			{ProductId: productId, CategoryId: catOld, IsPrimary: true},
		},
		failCreateBulkLinks: errors.New("constraint violation"),
	}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	_, err := svc.AssignCategories(context.Background(), &dto.AssignCategoriesRequest{
		Sku:             "PA-1",
		Categories:      []uuid.UUID{cat},
		PrimaryCategory: cat,
	})
	require.Error(t, err)

	// Whole sequence rolled back: scalar column and links unchanged.
	assert.Equal(t, "Old Home", store.products[0].Category)
	require.Len(t, store.links, 1)
	assert.Equal(t, catOld, store.links[0].CategoryId)
	assert.Equal(t, 1, store.rollbackCount)
	assert.Equal(t, 0, store.commitCount)
}

func TestAssignCategoriesMissingPrimary(t *testing.T) {
	productId := uuid.New()
	store := &fakeStore{
		products: []entity.Product{
			{Id: productId, Sku: "PA-1", Active: true},
		},
	}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	missing := uuid.New()
	_, err := svc.AssignCategories(context.Background(), &dto.AssignCategoriesRequest{
		Sku:             "PA-1",
		Categories:      []uuid.UUID{missing},
		PrimaryCategory: missing,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "Primary category not found", appErr.Message)
}

func TestAssignCategoriesMissingSecondary(t *testing.T) {
	cat := uuid.New()
	productId := uuid.New()
	store := &fakeStore{
		categories: []entity.Category{
			{Id: cat, NameEn: "Fabric Panels", Slug: "fabric", Active: true},
		},
		products: []entity.Product{
			{Id: productId, Sku: "PA-1", Active: true},
		},
	}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	_, err := svc.AssignCategories(context.Background(), &dto.AssignCategoriesRequest{
		Sku:             "PA-1",
		Categories:      []uuid.UUID{cat, uuid.New()},
		PrimaryCategory: cat,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "One or more categories not found", appErr.Message)
}

func TestListFiltersAndPaginates(t *testing.T) {
	store := &fakeStore{
		products: []entity.Product{
			{Id: uuid.New(), Sku: "PA-1", TitleEn: "Fabric Panel", Active: true},
			{Id: uuid.New(), Sku: "PA-2", TitleEn: "Fabric Baffle", Active: true},
			{Id: uuid.New(), Sku: "PA-3", TitleEn: "Fabric Cloud", Active: true},
			{Id: uuid.New(), Sku: "PA-4", TitleEn: "Steel Door", Active: true},
			{Id: uuid.New(), Sku: "PA-5", TitleEn: "Fabric Hidden", Active: false},
		},
	}
	svc := NewProductService(newFakeFactory(store), &fakePublisher{}, "EMBED_PRODUCT", nil)

	res, err := svc.List(context.Background(), &dto.ListProductsQuery{
		Search: "fabric",
		Page:   1,
		Limit:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.Equal(t, 2, res.TotalPages)
	assert.Len(t, res.Products, 2)
}

func TestGetBySkuNotFound(t *testing.T) {
	svc := NewProductService(newFakeFactory(&fakeStore{}), &fakePublisher{}, "EMBED_PRODUCT", nil)

	_, err := svc.GetBySku(context.Background(), "NOPE-1")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
