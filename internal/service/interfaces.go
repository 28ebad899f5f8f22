package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-blog-list/models"
)

type AuthService interface {
	// RegisterUser validates the request, hashes the password and stores a
	// new user with an empty blog list.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	// Login returns the user matching the credentials or ErrWrongCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BlogService operations that mutate blogs read the caller from the
// identity attached to ctx (see utils.WithIdentity).
type BlogService interface {
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlog(ctx context.Context, id string) (models.Blog, error)
	CreateBlog(ctx context.Context, request models.CreateBlogRequest) (models.Blog, error)
	UpdateBlog(ctx context.Context, request models.UpdateBlogRequest) (models.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.BlogStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Ping reports whether the storage answers.
	Ping(ctx context.Context) error
	// ResetStorage removes all users and blogs. Exposed only in test mode.
	ResetStorage(ctx context.Context) error
}

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() string
}
