package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("incorrect username or password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenIsExpired      = errors.New("token is expired")

	// ErrNoIdentity is returned when an operation requires an authenticated
	// caller and the context carries none.
	ErrNoIdentity = errors.New("no identity attached to request")

	ErrNotBlogOwner = errors.New("only the user that created a blog can delete it")
	ErrBlogNotFound = errors.New("blog not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// BlogNotFoundError names the blog id that was looked up.
// It matches ErrBlogNotFound with errors.Is.
type BlogNotFoundError struct {
	ID string
}

func (e *BlogNotFoundError) Error() string {
	return fmt.Sprintf("blog %s not found", e.ID)
}

func (e *BlogNotFoundError) Is(target error) bool {
	return target == ErrBlogNotFound
}
