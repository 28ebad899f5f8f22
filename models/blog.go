// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Blog is a bookmarked blog post owned by the user who created it.
type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`

	// UserID references the owning user. It is exposed only through User.
	UserID string `json:"-"`

	// User is the expanded owner. Nil when the owner was not loaded.
	User *Owner `json:"user"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}

// Ref returns the short form of the blog used inside a user listing.
func (b Blog) Ref() BlogRef {
	return BlogRef{
		URL:    b.URL,
		Title:  b.Title,
		Author: b.Author,
		ID:     b.ID,
	}
}

// BlogRef is the projection of a Blog embedded into a User listing.
// It carries neither likes nor the owner back-reference.
type BlogRef struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ID     string `json:"id"`
}
