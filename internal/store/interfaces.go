package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-blog-list/models"
)

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts a user. A taken username yields ErrUsernameTaken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername yields ErrNoUserWasFound when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// ListUsers returns every user with their blogs in creation order.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BlogRepository is the blog store.
type BlogRepository interface {
	// CreateBlog inserts the blog and appends it to the owner's blog list
	// in a single transaction. The returned blog has its owner expanded.
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	FindBlogByID(ctx context.Context, id string) (models.Blog, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	// UpdateBlog applies the non-nil fields of update and returns the result.
	UpdateBlog(ctx context.Context, update models.UpdateBlogRequest) (models.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

// MaintenanceRepository exposes storage-wide operations.
type MaintenanceRepository interface {
	Ping(ctx context.Context) error
	// Reset removes every user and blog.
	Reset(ctx context.Context) error
}

// DBTX is implemented by both *sql.DB and *sql.Tx, so query helpers can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrorClassificator categorises driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
