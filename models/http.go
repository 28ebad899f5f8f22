// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required,min=3"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful POST /api/login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// CreateBlogRequest is the body of POST /api/blogs.
type CreateBlogRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	URL    string `json:"url" validate:"required"`

	// Likes defaults to 0 only when the field is absent.
	Likes *int `json:"likes" validate:"omitempty,min=0"`
}

// UpdateBlogRequest is the body of PUT /api/blogs/{id}.
// Only non-nil fields will be updated (partial update support).
type UpdateBlogRequest struct {
	// ID is taken from the URL path, never from the body.
	ID string `json:"-"`

	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	URL    *string `json:"url,omitempty"`
	Likes  *int    `json:"likes,omitempty" validate:"omitempty,min=0"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateBlogRequest) IsEmpty() bool {
	return r.Title == nil && r.Author == nil && r.URL == nil && r.Likes == nil
}

// ErrorResponse is the single envelope used for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
