// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-list/internal/listhelper"
	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/store"
	"github.com/MKhiriev/go-blog-list/internal/utils"
	"github.com/MKhiriev/go-blog-list/internal/validators"
	"github.com/MKhiriev/go-blog-list/models"
)

// blogService implements BlogService on top of a BlogRepository.
//
// Creation and deletion require an identity in the context. Updates do not
// check ownership: any caller holding a blog id may change it.
type blogService struct {
	blogRepository store.BlogRepository
	validator      validators.Validator
	idGenerator    IDGenerator
	logger         *logger.Logger
}

func NewBlogService(
	blogRepository store.BlogRepository,
	validator validators.Validator,
	idGenerator IDGenerator,
	logger *logger.Logger,
) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		validator:      validator,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

func (s *blogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.blogRepository.ListBlogs(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing blogs failed")
		return nil, fmt.Errorf("listing blogs failed: %w", err)
	}
	return blogs, nil
}

func (s *blogService) GetBlog(ctx context.Context, id string) (models.Blog, error) {
	blog, err := s.blogRepository.FindBlogByID(ctx, id)
	if err != nil {
		return models.Blog{}, s.blogError(ctx, id, err)
	}
	return blog, nil
}

// CreateBlog stores a blog owned by the caller. Likes default to 0 only
// when absent from the request.
func (s *blogService) CreateBlog(ctx context.Context, request models.CreateBlogRequest) (models.Blog, error) {
	log := logger.FromContext(ctx)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return models.Blog{}, ErrNoIdentity
	}

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("user_id", identity.ID).Msg("invalid blog data")
		return models.Blog{}, err
	}

	likes := 0
	if request.Likes != nil {
		likes = *request.Likes
	}

	blog := models.Blog{
		ID:        s.idGenerator.Generate(),
		Title:     request.Title,
		Author:    request.Author,
		URL:       request.URL,
		Likes:     likes,
		UserID:    identity.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.blogRepository.CreateBlog(ctx, blog)
	switch {
	case errors.Is(err, store.ErrUserReferenceInvalid):
		// token outlived its user
		log.Warn().Str("user_id", identity.ID).Msg("identity references a missing user")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	case errors.Is(err, store.ErrBlogConstraint):
		return models.Blog{}, &validators.ValidationError{Message: validators.MsgNegativeLikes}
	case err != nil:
		log.Err(err).Str("user_id", identity.ID).Msg("blog creation failed")
		return models.Blog{}, fmt.Errorf("blog creation failed: %w", err)
	}

	log.Info().Str("blog_id", created.ID).Str("user_id", identity.ID).Msg("blog created")
	return created, nil
}

// UpdateBlog replaces the fields present in request and keeps the rest.
func (s *blogService) UpdateBlog(ctx context.Context, request models.UpdateBlogRequest) (models.Blog, error) {
	if request.ID == "" {
		return models.Blog{}, ErrInvalidDataProvided
	}

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Blog{}, err
	}

	updated, err := s.blogRepository.UpdateBlog(ctx, request)
	if errors.Is(err, store.ErrBlogConstraint) {
		return models.Blog{}, &validators.ValidationError{Message: validators.MsgNegativeLikes}
	}
	if err != nil {
		return models.Blog{}, s.blogError(ctx, request.ID, err)
	}

	return updated, nil
}

// DeleteBlog removes a blog owned by the caller.
func (s *blogService) DeleteBlog(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return ErrNoIdentity
	}

	blog, err := s.blogRepository.FindBlogByID(ctx, id)
	if err != nil {
		return s.blogError(ctx, id, err)
	}

	if blog.UserID != identity.ID {
		log.Debug().Str("blog_id", id).Str("user_id", identity.ID).Str("owner_id", blog.UserID).Msg("delete by non-owner")
		return ErrNotBlogOwner
	}

	if err = s.blogRepository.DeleteBlog(ctx, id); err != nil {
		return s.blogError(ctx, id, err)
	}

	log.Info().Str("blog_id", id).Str("user_id", identity.ID).Msg("blog deleted")
	return nil
}

// Stats aggregates all blogs with the list helpers.
func (s *blogService) Stats(ctx context.Context) (models.BlogStats, error) {
	blogs, err := s.ListBlogs(ctx)
	if err != nil {
		return models.BlogStats{}, err
	}
	return listhelper.Stats(blogs), nil
}

func (s *blogService) blogError(ctx context.Context, id string, err error) error {
	if errors.Is(err, store.ErrBlogNotFound) {
		return &BlogNotFoundError{ID: id}
	}
	logger.FromContext(ctx).Err(err).Str("blog_id", id).Msg("blog storage error")
	return fmt.Errorf("blog %s: %w", id, err)
}
