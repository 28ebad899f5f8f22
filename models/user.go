// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a blog-list account.
// PasswordHash is never exposed via JSON.
type User struct {
	// ID is the opaque identifier assigned at creation. Immutable.
	ID string `json:"id"`

	// Username is unique across all users. Uniqueness is enforced by the store.
	Username string `json:"username"`

	// Name is an optional display name.
	Name string `json:"name"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// Blogs lists the blogs owned by the user in creation order.
	Blogs []BlogRef `json:"blogs"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Owner is the public projection of a User embedded into a Blog.
type Owner struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

// Identity is the decoded payload of a verified token: who is making the request.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// IsZero reports whether the identity carries no user.
func (i Identity) IsZero() bool {
	return i.ID == ""
}
