// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/mock"
	"github.com/MKhiriev/go-blog-list/internal/store"
	"github.com/MKhiriev/go-blog-list/internal/utils"
	"github.com/MKhiriev/go-blog-list/internal/validators"
	"github.com/MKhiriev/go-blog-list/models"
)

func newTestBlogSvc(t *testing.T) (BlogService, *mock.MockBlogRepository, *mock.MockIDGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBlogRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	return NewBlogService(repo, validators.NewRequestValidator(), ids, logger.Nop()), repo, ids
}

func authedContext(userID string) context.Context {
	return utils.WithIdentity(context.Background(), models.Identity{ID: userID, Username: "root"})
}

func intPtr(v int) *int { return &v }

// ── CreateBlog ───────────────────────────────────────────────────────────────

func TestBlogService_CreateBlog_DefaultsLikesWhenAbsent(t *testing.T) {
	svc, repo, ids := newTestBlogSvc(t)

	ids.EXPECT().Generate().Return("b1")
	repo.EXPECT().CreateBlog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Blog) (models.Blog, error) {
			assert.Equal(t, "b1", b.ID)
			assert.Equal(t, "u1", b.UserID)
			assert.Equal(t, 0, b.Likes)
			assert.False(t, b.CreatedAt.IsZero())
			b.User = &models.Owner{ID: "u1", Username: "root"}
			return b, nil
		},
	)

	blog, err := svc.CreateBlog(authedContext("u1"), models.CreateBlogRequest{Title: "T", URL: "U"})
	require.NoError(t, err)
	assert.Equal(t, 0, blog.Likes)
	require.NotNil(t, blog.User)
	assert.Equal(t, "u1", blog.User.ID)
}

func TestBlogService_CreateBlog_KeepsExplicitLikes(t *testing.T) {
	svc, repo, ids := newTestBlogSvc(t)

	ids.EXPECT().Generate().Return("b1")
	repo.EXPECT().CreateBlog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Blog) (models.Blog, error) { return b, nil },
	)

	blog, err := svc.CreateBlog(authedContext("u1"), models.CreateBlogRequest{Title: "T", URL: "U", Likes: intPtr(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, blog.Likes)
}

func TestBlogService_CreateBlog_NoIdentity(t *testing.T) {
	svc, _, _ := newTestBlogSvc(t)

	_, err := svc.CreateBlog(context.Background(), models.CreateBlogRequest{Title: "T", URL: "U"})
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestBlogService_CreateBlog_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request models.CreateBlogRequest
		wantMsg string
	}{
		{name: "no title", request: models.CreateBlogRequest{URL: "U"}, wantMsg: validators.MsgMissingBlogFields},
		{name: "no url", request: models.CreateBlogRequest{Title: "T"}, wantMsg: validators.MsgMissingBlogFields},
		{name: "negative likes", request: models.CreateBlogRequest{Title: "T", URL: "U", Likes: intPtr(-1)}, wantMsg: validators.MsgNegativeLikes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestBlogSvc(t)

			_, err := svc.CreateBlog(authedContext("u1"), tt.request)
			var vErr *validators.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestBlogService_CreateBlog_StaleIdentity(t *testing.T) {
	svc, repo, ids := newTestBlogSvc(t)

	ids.EXPECT().Generate().Return("b1")
	repo.EXPECT().CreateBlog(gomock.Any(), gomock.Any()).Return(models.Blog{}, store.ErrUserReferenceInvalid)

	_, err := svc.CreateBlog(authedContext("deleted-user"), models.CreateBlogRequest{Title: "T", URL: "U"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// ── DeleteBlog ───────────────────────────────────────────────────────────────

func TestBlogService_DeleteBlog(t *testing.T) {
	owned := models.Blog{ID: "b1", UserID: "u1"}

	t.Run("owner deletes", func(t *testing.T) {
		svc, repo, _ := newTestBlogSvc(t)
		gomock.InOrder(
			repo.EXPECT().FindBlogByID(gomock.Any(), "b1").Return(owned, nil),
			repo.EXPECT().DeleteBlog(gomock.Any(), "b1").Return(nil),
		)
		assert.NoError(t, svc.DeleteBlog(authedContext("u1"), "b1"))
	})

	t.Run("not owner", func(t *testing.T) {
		svc, repo, _ := newTestBlogSvc(t)
		repo.EXPECT().FindBlogByID(gomock.Any(), "b1").Return(owned, nil)
		assert.ErrorIs(t, svc.DeleteBlog(authedContext("u2"), "b1"), ErrNotBlogOwner)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, repo, _ := newTestBlogSvc(t)
		repo.EXPECT().FindBlogByID(gomock.Any(), "nope").Return(models.Blog{}, store.ErrBlogNotFound)

		err := svc.DeleteBlog(authedContext("u1"), "nope")
		assert.ErrorIs(t, err, ErrBlogNotFound)
		assert.EqualError(t, err, "blog nope not found")
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _, _ := newTestBlogSvc(t)
		assert.ErrorIs(t, svc.DeleteBlog(context.Background(), "b1"), ErrNoIdentity)
	})
}

// ── UpdateBlog / GetBlog ─────────────────────────────────────────────────────

func TestBlogService_UpdateBlog_AnyCaller(t *testing.T) {
	svc, repo, _ := newTestBlogSvc(t)
	request := models.UpdateBlogRequest{ID: "b1", Likes: intPtr(8)}

	repo.EXPECT().UpdateBlog(gomock.Any(), request).Return(models.Blog{ID: "b1", Likes: 8, UserID: "u1"}, nil)

	blog, err := svc.UpdateBlog(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 8, blog.Likes)
}

func TestBlogService_UpdateBlog_NegativeLikes(t *testing.T) {
	svc, _, _ := newTestBlogSvc(t)

	_, err := svc.UpdateBlog(context.Background(), models.UpdateBlogRequest{ID: "b1", Likes: intPtr(-3)})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestBlogService_UpdateBlog_NotFound(t *testing.T) {
	svc, repo, _ := newTestBlogSvc(t)

	repo.EXPECT().UpdateBlog(gomock.Any(), gomock.Any()).Return(models.Blog{}, store.ErrBlogNotFound)

	_, err := svc.UpdateBlog(context.Background(), models.UpdateBlogRequest{ID: "nope"})
	var nf *BlogNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nope", nf.ID)
}

func TestBlogService_GetBlog_StorageError(t *testing.T) {
	svc, repo, _ := newTestBlogSvc(t)
	dbErr := errors.New("boom")

	repo.EXPECT().FindBlogByID(gomock.Any(), "b1").Return(models.Blog{}, dbErr)

	_, err := svc.GetBlog(context.Background(), "b1")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrBlogNotFound)
}

// ── Stats ────────────────────────────────────────────────────────────────────

func TestBlogService_Stats(t *testing.T) {
	svc, repo, _ := newTestBlogSvc(t)

	repo.EXPECT().ListBlogs(gomock.Any()).Return([]models.Blog{
		{ID: "a001", Author: "Teemu Teekkari", Likes: 99},
		{ID: "a002", Author: "Tiina Teekkari", Likes: 21},
		{ID: "a003", Author: "Tiina Teekkari", Likes: 15},
	}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 135, stats.TotalLikes)
	assert.Equal(t, "a001", stats.FavoriteBlog.ID)
	assert.Equal(t, models.AuthorBlogs{Author: "Tiina Teekkari", Blogs: 2}, *stats.MostBlogs)
	assert.Equal(t, models.AuthorLikes{Author: "Teemu Teekkari", Likes: 99}, *stats.MostLikes)
}
