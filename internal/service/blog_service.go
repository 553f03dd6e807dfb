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
)

type IBlogService interface {
	ListPublished(ctx context.Context) ([]*dto.BlogPostResponse, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error)
	ListAll(ctx context.Context) ([]*dto.BlogPostResponse, error)
	Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error)
	Update(ctx context.Context, req *dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*dto.BlogPostResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBlogService(uowFactory unitofwork.RepositoryFactory) IBlogService {
	return &blogService{uowFactory: uowFactory}
}

func toBlogPostResponse(p *entity.BlogPost) *dto.BlogPostResponse {
	return &dto.BlogPostResponse{
		Id:            p.Id,
		Slug:          p.Slug,
		TitleEn:       p.TitleEn,
		TitleTh:       p.TitleTh,
		ExcerptEn:     p.ExcerptEn,
		ExcerptTh:     p.ExcerptTh,
		ContentEn:     p.ContentEn,
		ContentTh:     p.ContentTh,
		Author:        p.Author,
		FeaturedImage: p.FeaturedImage,
		Category:      p.Category,
		Tags:          p.Tags,
		ReadingTime:   p.ReadingTime,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (s *blogService) ListPublished(ctx context.Context) ([]*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	posts, err := uow.BlogRepository().FindAll(ctx,
		specification.PublishedOnly{},
		specification.OrderBy{Field: "published_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, toBlogPostResponse(post))
	}
	return result, nil
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := uow.BlogRepository().FindOne(ctx,
		specification.BySlug{Slug: slug},
		specification.PublishedOnly{},
	)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NewNotFound("Post not found")
	}
	return toBlogPostResponse(post), nil
}

func (s *blogService) ListAll(ctx context.Context) ([]*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	posts, err := uow.BlogRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, toBlogPostResponse(post))
	}
	return result, nil
}

func (s *blogService) Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.BlogRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidation("Slug already in use")
	}

	post := entity.BlogPost{
		Id:          uuid.New(),
		Slug:        req.Slug,
		TitleEn:     req.TitleEn,
		TitleTh:     req.TitleTh,
		ExcerptEn:   req.ExcerptEn,
		ExcerptTh:   req.ExcerptTh,
		ContentEn:   req.ContentEn,
		ContentTh:   req.ContentTh,
		Author:      req.Author,
		Category:    req.Category,
		Tags:        req.Tags,
		ReadingTime: req.ReadingTime,
		Published:   req.Published,
		CreatedAt:   time.Now(),
	}
	if req.FeaturedImage != "" {
		post.FeaturedImage = &req.FeaturedImage
	}
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := uow.BlogRepository().Create(ctx, &post); err != nil {
		return nil, err
	}
	return toBlogPostResponse(&post), nil
}

func (s *blogService) Update(ctx context.Context, req *dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.BlogRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NewNotFound("Post not found")
	}

	if req.Slug != post.Slug {
		existing, err := uow.BlogRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewValidation("Slug already in use")
		}
	}

	now := time.Now()
	post.Slug = req.Slug
	post.TitleEn = req.TitleEn
	post.TitleTh = req.TitleTh
	post.ExcerptEn = req.ExcerptEn
	post.ExcerptTh = req.ExcerptTh
	post.ContentEn = req.ContentEn
	post.ContentTh = req.ContentTh
	post.Author = req.Author
	post.Category = req.Category
	post.Tags = req.Tags
	post.ReadingTime = req.ReadingTime
	if req.FeaturedImage != "" {
		post.FeaturedImage = &req.FeaturedImage
	}
	post.UpdatedAt = &now

	if err := uow.BlogRepository().Update(ctx, post); err != nil {
		return nil, err
	}
	return toBlogPostResponse(post), nil
}

func (s *blogService) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.BlogRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NewNotFound("Post not found")
	}

	now := time.Now()
	post.Published = published
	if published && post.PublishedAt == nil {
		post.PublishedAt = &now
	}
	post.UpdatedAt = &now

	if err := uow.BlogRepository().Update(ctx, post); err != nil {
		return nil, err
	}
	return toBlogPostResponse(post), nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := uow.BlogRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if post == nil {
		return apperrors.NewNotFound("Post not found")
	}
	return uow.BlogRepository().Delete(ctx, id)
}
