package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when a user insert violates the
	// username uniqueness constraint.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup by username matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUserReferenceInvalid is returned when a blog references a user that
	// does not exist (foreign key violation).
	ErrUserReferenceInvalid = errors.New("referenced user does not exist")

	// ErrBlogNotFound is returned when a blog lookup, update or delete
	// targets an id that does not exist.
	ErrBlogNotFound = errors.New("blog was not found")

	// ErrBlogConstraint is returned when a blog row violates a check
	// constraint (e.g. negative likes).
	ErrBlogConstraint = errors.New("blog violates a constraint")

	// ErrUnsupportedDriver is returned by NewStorages for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
