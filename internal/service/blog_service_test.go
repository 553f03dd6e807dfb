package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPublishedHidesDrafts(t *testing.T) {
	now := time.Now()
	store := &fakeStore{
		posts: []entity.BlogPost{
			{Id: uuid.New(), Slug: "room-acoustics-101", TitleEn: "Room Acoustics 101", Published: true, PublishedAt: &now},
			{Id: uuid.New(), Slug: "draft-post", TitleEn: "Draft", Published: false},
		},
	}
	svc := NewBlogService(newFakeFactory(store))

	posts, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "room-acoustics-101", posts[0].Slug)
}

func TestGetPublishedBySlugSkipsDraft(t *testing.T) {
	store := &fakeStore{
		posts: []entity.BlogPost{
			{Id: uuid.New(), Slug: "draft-post", TitleEn: "Draft", Published: false},
		},
	}
	svc := NewBlogService(newFakeFactory(store))

	_, err := svc.GetPublishedBySlug(context.Background(), "draft-post")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}

func TestCreateBlogPostSlugCollision(t *testing.T) {
	store := &fakeStore{
		posts: []entity.BlogPost{
			{Id: uuid.New(), Slug: "room-acoustics-101", Published: true},
		},
	}
	svc := NewBlogService(newFakeFactory(store))

	_, err := svc.Create(context.Background(), &dto.CreateBlogPostRequest{
		Slug:      "room-acoustics-101",
		TitleEn:   "Another",
		TitleTh:   "อีก",
		ContentEn: "body",
		ContentTh: "เนื้อหา",
		Category:  "guides",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, "Slug already in use", appErr.Message)
}

func TestPublishSetsPublishedAtOnce(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{
		posts: []entity.BlogPost{
			{Id: id, Slug: "room-acoustics-101", Published: false},
		},
	}
	svc := NewBlogService(newFakeFactory(store))

	res, err := svc.SetPublished(context.Background(), id, true)
	require.NoError(t, err)
	require.NotNil(t, res.PublishedAt)
	first := *res.PublishedAt

	// Unpublish then republish. The original timestamp survives.
	_, err = svc.SetPublished(context.Background(), id, false)
	require.NoError(t, err)

	res, err = svc.SetPublished(context.Background(), id, true)
	require.NoError(t, err)
	require.NotNil(t, res.PublishedAt)
	assert.Equal(t, first, *res.PublishedAt)
}

func TestUpdateBlogPostKeepsOwnSlug(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{
		posts: []entity.BlogPost{
			{Id: id, Slug: "room-acoustics-101", TitleEn: "Old", Published: true},
		},
	}
	svc := NewBlogService(newFakeFactory(store))

	res, err := svc.Update(context.Background(), &dto.UpdateBlogPostRequest{
		Id:        id,
		Slug:      "room-acoustics-101",
		TitleEn:   "New Title",
		TitleTh:   "หัวข้อใหม่",
		ContentEn: "body",
		ContentTh: "เนื้อหา",
		Category:  "guides",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Title", res.TitleEn)
}

func TestDeleteBlogPostNotFound(t *testing.T) {
	svc := NewBlogService(newFakeFactory(&fakeStore{}))

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
