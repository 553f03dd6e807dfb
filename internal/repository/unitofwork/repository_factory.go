package unitofwork

import "context"

// RepositoryFactory hands each request its own unit of work. Services depend
// on this instead of *gorm.DB so tests can swap in fakes.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
