package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-list/models"
)

const (
	usersTable     = "users"
	blogsTable     = "blogs"
	userBlogsTable = "user_blogs"
)

var (
	userColumns = []string{"id", "username", "name", "password_hash", "created_at"}

	// blog columns joined with the owner, see scanBlog
	blogWithOwnerColumns = []string{
		"b.id", "b.title", "b.author", "b.url", "b.likes", "b.user_id", "b.created_at",
		"u.username", "u.name",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return wrapBuildErr(b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Name, user.PasswordHash, user.CreatedAt).
		ToSql())
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return wrapBuildErr(b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql())
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return wrapBuildErr(b.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "id").
		ToSql())
}

// buildSelectUserBlogsQuery returns (user_id, url, title, author, blog id)
// for every user, ordered by user and append position. Concurrent appends
// may share a position; creation time and id break those ties.
func buildSelectUserBlogsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return wrapBuildErr(b.Select("ub.user_id", "b.url", "b.title", "b.author", "b.id").
		From(userBlogsTable + " ub").
		Join(blogsTable + " b ON b.id = ub.blog_id").
		OrderBy("ub.user_id", "ub.position", "b.created_at", "b.id").
		ToSql())
}

func buildInsertBlogQuery(b sq.StatementBuilderType, blog models.Blog) (string, []any, error) {
	return wrapBuildErr(b.Insert(blogsTable).
		Columns("id", "title", "author", "url", "likes", "user_id", "created_at").
		Values(blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes, blog.UserID, blog.CreatedAt).
		ToSql())
}

func buildNextUserBlogPositionQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return wrapBuildErr(b.Select("COALESCE(MAX(position), 0) + 1").
		From(userBlogsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql())
}

func buildAppendUserBlogQuery(b sq.StatementBuilderType, userID, blogID string, position int) (string, []any, error) {
	return wrapBuildErr(b.Insert(userBlogsTable).
		Columns("user_id", "blog_id", "position").
		Values(userID, blogID, position).
		ToSql())
}

func selectBlogsWithOwner(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(blogWithOwnerColumns...).
		From(blogsTable + " b").
		Join(usersTable + " u ON u.id = b.user_id")
}

func buildSelectBlogsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return wrapBuildErr(selectBlogsWithOwner(b).
		OrderBy("b.created_at", "b.id").
		ToSql())
}

func buildSelectBlogByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return wrapBuildErr(selectBlogsWithOwner(b).
		Where(sq.Eq{"b.id": id}).
		ToSql())
}

// buildUpdateBlogQuery builds an UPDATE touching only the non-nil fields of
// update. ok is false when there is nothing to update.
func buildUpdateBlogQuery(b sq.StatementBuilderType, update models.UpdateBlogRequest) (query string, args []any, ok bool, err error) {
	setMap := make(map[string]any, 4)
	if update.Title != nil {
		setMap["title"] = *update.Title
	}
	if update.Author != nil {
		setMap["author"] = *update.Author
	}
	if update.URL != nil {
		setMap["url"] = *update.URL
	}
	if update.Likes != nil {
		setMap["likes"] = *update.Likes
	}
	if len(setMap) == 0 {
		return "", nil, false, nil
	}

	query, args, err = wrapBuildErr(b.Update(blogsTable).
		SetMap(setMap).
		Where(sq.Eq{"id": update.ID}).
		ToSql())
	return query, args, err == nil, err
}

func buildDeleteBlogQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return wrapBuildErr(b.Delete(blogsTable).
		Where(sq.Eq{"id": id}).
		ToSql())
}

func buildResetQueries(b sq.StatementBuilderType) ([]string, error) {
	queries := make([]string, 0, 3)
	// children first
	for _, table := range []string{userBlogsTable, blogsTable, usersTable} {
		query, _, err := wrapBuildErr(b.Delete(table).ToSql())
		if err != nil {
			return nil, err
		}
		queries = append(queries, query)
	}
	return queries, nil
}

func wrapBuildErr(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
