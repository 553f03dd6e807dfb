package service

import (
	"context"
	"sort"
	"strings"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/repository/contract"
	"placid-catalog-be/internal/repository/specification"
	"placid-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore is an in-memory backing store shared by the fake repositories.
// Specifications are interpreted by type switch, mirroring what the SQL
// implementations express through GORM.
type fakeStore struct {
	categories  []entity.Category
	products    []entity.Product
	links       []entity.ProductCategory
	embeddings  []entity.ProductEmbedding
	subscribers []entity.NewsletterSubscriber
	inquiries   []entity.ContactInquiry
	posts       []entity.BlogPost
	users       []entity.User

	// nearest configures SearchNearest results.
	nearest []uuid.UUID

	// failCreateBulkLinks makes ProductCategoryRepository.CreateBulk fail,
	// for rollback tests.
	failCreateBulkLinks error

	beginCount    int
	commitCount   int
	rollbackCount int
}

func (s *fakeStore) clone() *fakeStore {
	c := &fakeStore{
		nearest:             s.nearest,
		failCreateBulkLinks: s.failCreateBulkLinks,
		beginCount:          s.beginCount,
		commitCount:         s.commitCount,
		rollbackCount:       s.rollbackCount,
	}
	c.categories = append([]entity.Category(nil), s.categories...)
	c.products = append([]entity.Product(nil), s.products...)
	c.links = append([]entity.ProductCategory(nil), s.links...)
	c.embeddings = append([]entity.ProductEmbedding(nil), s.embeddings...)
	c.subscribers = append([]entity.NewsletterSubscriber(nil), s.subscribers...)
	c.inquiries = append([]entity.ContactInquiry(nil), s.inquiries...)
	c.posts = append([]entity.BlogPost(nil), s.posts...)
	c.users = append([]entity.User(nil), s.users...)
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.categories = from.categories
	s.products = from.products
	s.links = from.links
	s.embeddings = from.embeddings
	s.subscribers = from.subscribers
	s.inquiries = from.inquiries
	s.posts = from.posts
	s.users = from.users
}

type fakeUowFactory struct {
	store *fakeStore
}

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeUowFactory{store: store}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store    *fakeStore
	snapshot *fakeStore
	active   bool
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.store.beginCount++
	u.snapshot = u.store.clone()
	u.active = true
	return nil
}

func (u *fakeUow) Commit() error {
	u.store.commitCount++
	u.active = false
	u.snapshot = nil
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.active {
		return nil
	}
	u.store.rollbackCount++
	u.store.restore(u.snapshot)
	u.active = false
	return nil
}

func (u *fakeUow) CategoryRepository() contract.CategoryRepository {
	return &fakeCategoryRepo{store: u.store}
}

func (u *fakeUow) ProductRepository() contract.ProductRepository {
	return &fakeProductRepo{store: u.store}
}

func (u *fakeUow) ProductCategoryRepository() contract.ProductCategoryRepository {
	return &fakeProductCategoryRepo{store: u.store}
}

func (u *fakeUow) ProductEmbeddingRepository() contract.ProductEmbeddingRepository {
	return &fakeProductEmbeddingRepo{store: u.store}
}

func (u *fakeUow) BlogRepository() contract.BlogRepository {
	return &fakeBlogRepo{store: u.store}
}

func (u *fakeUow) InquiryRepository() contract.InquiryRepository {
	return &fakeInquiryRepo{store: u.store}
}

func (u *fakeUow) SubscriberRepository() contract.SubscriberRepository {
	return &fakeSubscriberRepo{store: u.store}
}

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

// paginate applies Pagination specs after filtering.
func paginate[T any](items []T, specs []specification.Specification) []T {
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			if p.Offset >= len(items) {
				return nil
			}
			items = items[p.Offset:]
			if p.Limit > 0 && p.Limit < len(items) {
				items = items[:p.Limit]
			}
		}
	}
	return items
}

// ---- categories ----

type fakeCategoryRepo struct {
	store *fakeStore
}

func (r *fakeCategoryRepo) matches(c entity.Category, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ActiveOnly:
			if !c.Active {
				return false
			}
		case specification.BySlug:
			if c.Slug != s.Slug {
				return false
			}
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if c.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.RootsOnly:
			if c.ParentId != nil {
				return false
			}
		}
	}
	return true
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.store.categories = append(r.store.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	for i := range r.store.categories {
		if r.store.categories[i].Id == category.Id {
			r.store.categories[i] = *category
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.store.categories {
		if r.store.categories[i].Id == id {
			r.store.categories = append(r.store.categories[:i], r.store.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	for _, c := range r.store.categories {
		if r.matches(c, specs) {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var filtered []entity.Category
	for _, c := range r.store.categories {
		if r.matches(c, specs) {
			filtered = append(filtered, c)
		}
	}
	for _, spec := range specs {
		if o, ok := spec.(specification.OrderBy); ok && o.Field == "sort_order" {
			sort.SliceStable(filtered, func(i, j int) bool {
				if o.Desc {
					return filtered[i].Order > filtered[j].Order
				}
				return filtered[i].Order < filtered[j].Order
			})
		}
	}
	filtered = paginate(filtered, specs)
	result := make([]*entity.Category, 0, len(filtered))
	for i := range filtered {
		c := filtered[i]
		result = append(result, &c)
	}
	return result, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, c := range r.store.categories {
		if r.matches(c, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeCategoryRepo) FindBySlugExcept(ctx context.Context, slug string, exceptId uuid.UUID) (*entity.Category, error) {
	for _, c := range r.store.categories {
		if c.Slug == slug && c.Id != exceptId {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) UpdateProductCount(ctx context.Context, id uuid.UUID, count int) error {
	for i := range r.store.categories {
		if r.store.categories[i].Id == id {
			r.store.categories[i].ProductCount = count
			return nil
		}
	}
	return nil
}

// ---- products ----

type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) matches(p entity.Product, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ActiveOnly:
			if !p.Active {
				return false
			}
		case specification.FeaturedOnly:
			if !p.Featured {
				return false
			}
		case specification.BySku:
			if p.Sku != s.Sku {
				return false
			}
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if p.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.ByCategoryName:
			if p.Category != s.Name {
				return false
			}
		case specification.ProductKeyword:
			kw := strings.ToLower(s.Keyword)
			supplier := ""
			if p.Supplier != nil {
				supplier = *p.Supplier
			}
			haystack := strings.ToLower(strings.Join([]string{
				p.Sku, p.TitleEn, p.TitleTh, p.DescriptionEn, p.DescriptionTh, p.Category, supplier,
			}, " "))
			if !strings.Contains(haystack, kw) {
				return false
			}
		}
	}
	return true
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.store.products = append(r.store.products, *product)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	for i := range r.store.products {
		if r.store.products[i].Id == product.Id {
			r.store.products[i] = *product
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	for _, p := range r.store.products {
		if r.matches(p, specs) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var filtered []entity.Product
	for _, p := range r.store.products {
		if r.matches(p, specs) {
			filtered = append(filtered, p)
		}
	}
	filtered = paginate(filtered, specs)
	result := make([]*entity.Product, 0, len(filtered))
	for i := range filtered {
		p := filtered[i]
		result = append(result, &p)
	}
	return result, nil
}

func (r *fakeProductRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, p := range r.store.products {
		if r.matches(p, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) FindBySku(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.Sku == sku {
			found := p
			for _, link := range r.store.links {
				if link.ProductId == p.Id {
					pc := &entity.ProductCategory{
						ProductId:  link.ProductId,
						CategoryId: link.CategoryId,
						IsPrimary:  link.IsPrimary,
					}
					for _, c := range r.store.categories {
						if c.Id == link.CategoryId {
							cat := c
							pc.Category = &cat
							break
						}
					}
					found.Categories = append(found.Categories, pc)
				}
			}
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) CountActiveFeaturedExcluding(ctx context.Context, sku string) (int64, error) {
	var n int64
	for _, p := range r.store.products {
		if p.Active && p.Featured && p.Sku != sku {
			n++
		}
	}
	return n, nil
}

// ---- product categories ----

type fakeProductCategoryRepo struct {
	store *fakeStore
}

func (r *fakeProductCategoryRepo) DeleteByProductId(ctx context.Context, productId uuid.UUID) error {
	kept := r.store.links[:0]
	for _, link := range r.store.links {
		if link.ProductId != productId {
			kept = append(kept, link)
		}
	}
	r.store.links = append([]entity.ProductCategory(nil), kept...)
	return nil
}

func (r *fakeProductCategoryRepo) CreateBulk(ctx context.Context, links []*entity.ProductCategory) error {
	if r.store.failCreateBulkLinks != nil {
		return r.store.failCreateBulkLinks
	}
	for _, link := range links {
		r.store.links = append(r.store.links, *link)
	}
	return nil
}

func (r *fakeProductCategoryRepo) FindByProductId(ctx context.Context, productId uuid.UUID) ([]*entity.ProductCategory, error) {
	var result []*entity.ProductCategory
	for i := range r.store.links {
		if r.store.links[i].ProductId == productId {
			link := r.store.links[i]
			result = append(result, &link)
		}
	}
	return result, nil
}

func (r *fakeProductCategoryRepo) CountActiveProducts(ctx context.Context, categoryId uuid.UUID) (int64, error) {
	seen := make(map[uuid.UUID]bool)
	for _, link := range r.store.links {
		if link.CategoryId != categoryId || seen[link.ProductId] {
			continue
		}
		for _, p := range r.store.products {
			if p.Id == link.ProductId && p.Active {
				seen[link.ProductId] = true
			}
		}
	}
	return int64(len(seen)), nil
}

// ---- product embeddings ----

type fakeProductEmbeddingRepo struct {
	store *fakeStore
}

func (r *fakeProductEmbeddingRepo) DeleteByProductId(ctx context.Context, productId uuid.UUID) error {
	kept := r.store.embeddings[:0]
	for _, e := range r.store.embeddings {
		if e.ProductId != productId {
			kept = append(kept, e)
		}
	}
	r.store.embeddings = append([]entity.ProductEmbedding(nil), kept...)
	return nil
}

func (r *fakeProductEmbeddingRepo) CreateBulk(ctx context.Context, embeddings []*entity.ProductEmbedding) error {
	for _, e := range embeddings {
		r.store.embeddings = append(r.store.embeddings, *e)
	}
	return nil
}

func (r *fakeProductEmbeddingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.store.embeddings)), nil
}

func (r *fakeProductEmbeddingRepo) SearchNearest(ctx context.Context, vector []float32, limit int) ([]uuid.UUID, error) {
	if len(r.store.nearest) > limit {
		return r.store.nearest[:limit], nil
	}
	return r.store.nearest, nil
}

// ---- blog ----

type fakeBlogRepo struct {
	store *fakeStore
}

func (r *fakeBlogRepo) matches(p entity.BlogPost, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.PublishedOnly:
			if !p.Published {
				return false
			}
		case specification.BySlug:
			if p.Slug != s.Slug {
				return false
			}
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		}
	}
	return true
}

func (r *fakeBlogRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	r.store.posts = append(r.store.posts, *post)
	return nil
}

func (r *fakeBlogRepo) Update(ctx context.Context, post *entity.BlogPost) error {
	for i := range r.store.posts {
		if r.store.posts[i].Id == post.Id {
			r.store.posts[i] = *post
			return nil
		}
	}
	return nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.store.posts {
		if r.store.posts[i].Id == id {
			r.store.posts = append(r.store.posts[:i], r.store.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeBlogRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error) {
	for _, p := range r.store.posts {
		if r.matches(p, specs) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeBlogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error) {
	var result []*entity.BlogPost
	for i := range r.store.posts {
		if r.matches(r.store.posts[i], specs) {
			p := r.store.posts[i]
			result = append(result, &p)
		}
	}
	return result, nil
}

func (r *fakeBlogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, p := range r.store.posts {
		if r.matches(p, specs) {
			n++
		}
	}
	return n, nil
}

// ---- inquiries ----

type fakeInquiryRepo struct {
	store *fakeStore
}

func (r *fakeInquiryRepo) matches(i entity.ContactInquiry, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if i.Id != s.ID {
				return false
			}
		case specification.ByStatus:
			if string(i.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *fakeInquiryRepo) Create(ctx context.Context, inquiry *entity.ContactInquiry) error {
	r.store.inquiries = append(r.store.inquiries, *inquiry)
	return nil
}

func (r *fakeInquiryRepo) Update(ctx context.Context, inquiry *entity.ContactInquiry) error {
	for i := range r.store.inquiries {
		if r.store.inquiries[i].Id == inquiry.Id {
			r.store.inquiries[i] = *inquiry
			return nil
		}
	}
	return nil
}

func (r *fakeInquiryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.store.inquiries {
		if r.store.inquiries[i].Id == id {
			r.store.inquiries = append(r.store.inquiries[:i], r.store.inquiries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeInquiryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactInquiry, error) {
	for _, i := range r.store.inquiries {
		if r.matches(i, specs) {
			found := i
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeInquiryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactInquiry, error) {
	var result []*entity.ContactInquiry
	for i := range r.store.inquiries {
		if r.matches(r.store.inquiries[i], specs) {
			inq := r.store.inquiries[i]
			result = append(result, &inq)
		}
	}
	return result, nil
}

func (r *fakeInquiryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, i := range r.store.inquiries {
		if r.matches(i, specs) {
			n++
		}
	}
	return n, nil
}

// ---- subscribers ----

type fakeSubscriberRepo struct {
	store *fakeStore
}

func (r *fakeSubscriberRepo) Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	r.store.subscribers = append(r.store.subscribers, *subscriber)
	return nil
}

func (r *fakeSubscriberRepo) Update(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	for i := range r.store.subscribers {
		if r.store.subscribers[i].Id == subscriber.Id {
			r.store.subscribers[i] = *subscriber
			return nil
		}
	}
	return nil
}

func (r *fakeSubscriberRepo) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	for _, s := range r.store.subscribers {
		if s.Email == email {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriberRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NewsletterSubscriber, error) {
	var result []*entity.NewsletterSubscriber
	for i := range r.store.subscribers {
		s := r.store.subscribers[i]
		active := true
		for _, spec := range specs {
			if _, ok := spec.(specification.ActiveOnly); ok {
				active = s.Active
			}
		}
		if active {
			result = append(result, &s)
		}
	}
	return result, nil
}

func (r *fakeSubscriberRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.subscribers)), nil
}

// ---- users ----

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users = append(r.store.users, *user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i := range r.store.users {
		if r.store.users[i].Id == user.Id {
			r.store.users[i] = *user
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		ok := true
		for _, spec := range specs {
			if s, isID := spec.(specification.ByID); isID && u.Id != s.ID {
				ok = false
			}
		}
		if ok {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.users)), nil
}

// ---- collaborators ----

type fakePublisher struct {
	published []publishedMessage
	err       error
}

type publishedMessage struct {
	Topic   string
	Payload []byte
}

func (p *fakePublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, publishedMessage{Topic: topic, Payload: payload})
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
