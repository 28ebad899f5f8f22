package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/models"
)

type blogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlogRepository constructs a [BlogRepository] backed by db.
func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBlog inserts the blog and appends its id to the owner's list in one
// transaction, then reads it back with the owner expanded.
//
// Error handling:
//   - foreign key violation (owner gone) → [ErrUserReferenceInvalid].
//   - check violation (negative likes) → [ErrBlogConstraint].
func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildInsertBlogQuery(r.db.builder, blog)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.blogWriteError(err)
		}

		query, args, err = buildNextUserBlogPositionQuery(r.db.builder, blog.UserID)
		if err != nil {
			return err
		}
		var position int
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&position); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		query, args, err = buildAppendUserBlogQuery(r.db.builder, blog.UserID, blog.ID, position)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.blogWriteError(err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Str("blog_id", blog.ID).Msg("error creating blog")
		return models.Blog{}, err
	}

	return r.FindBlogByID(ctx, blog.ID)
}

// FindBlogByID returns the blog with its owner expanded, or [ErrBlogNotFound].
func (r *blogRepository) FindBlogByID(ctx context.Context, id string) (models.Blog, error) {
	return r.findBlogByID(ctx, r.db, id)
}

func (r *blogRepository) findBlogByID(ctx context.Context, q DBTX, id string) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBlogByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.FindBlogByID").Msg("error building query")
		return models.Blog{}, err
	}

	blog, err := scanBlog(q.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Blog{}, ErrBlogNotFound
	case err != nil:
		log.Err(err).Str("func", "*blogRepository.FindBlogByID").Msg("error scanning blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blog, nil
}

// ListBlogs returns every blog in creation order with owners expanded.
func (r *blogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBlogsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error selecting blogs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0)
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error scanning blog")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		blogs = append(blogs, blog)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blogs, nil
}

// UpdateBlog applies the non-nil fields of update and returns the stored
// result. An update with no fields only checks that the blog exists.
func (r *blogRepository) UpdateBlog(ctx context.Context, update models.UpdateBlogRequest) (models.Blog, error) {
	log := logger.FromContext(ctx)

	var updated models.Blog
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, ok, err := buildUpdateBlogQuery(r.db.builder, update)
		if err != nil {
			return err
		}
		if ok {
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return r.blogWriteError(err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				return ErrBlogNotFound
			}
		}

		updated, err = r.findBlogByID(ctx, tx, update.ID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrBlogNotFound) {
			log.Err(err).Str("func", "*blogRepository.UpdateBlog").Str("blog_id", update.ID).Msg("error updating blog")
		}
		return models.Blog{}, err
	}

	return updated, nil
}

// DeleteBlog removes the blog. Its entry in the owner's list goes with it.
func (r *blogRepository) DeleteBlog(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBlogQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Msg("error building query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Str("blog_id", id).Msg("error deleting blog")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrBlogNotFound
	}

	return nil
}

func (r *blogRepository) blogWriteError(err error) error {
	switch r.db.classify(err) {
	case ForeignKeyViolation:
		return ErrUserReferenceInvalid
	case CheckViolation:
		return ErrBlogConstraint
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBlog reads one row shaped like blogWithOwnerColumns.
func scanBlog(row rowScanner) (models.Blog, error) {
	var (
		blog  models.Blog
		owner models.Owner
	)
	if err := row.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.UserID, &blog.CreatedAt,
		&owner.Username, &owner.Name); err != nil {
		return models.Blog{}, err
	}
	owner.ID = blog.UserID
	blog.User = &owner
	return blog, nil
}
