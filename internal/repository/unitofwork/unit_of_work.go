package unitofwork

import (
	"context"

	"placid-catalog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CategoryRepository() contract.CategoryRepository
	ProductRepository() contract.ProductRepository
	ProductCategoryRepository() contract.ProductCategoryRepository
	ProductEmbeddingRepository() contract.ProductEmbeddingRepository
	BlogRepository() contract.BlogRepository
	InquiryRepository() contract.InquiryRepository
	SubscriberRepository() contract.SubscriberRepository
	UserRepository() contract.UserRepository
}
