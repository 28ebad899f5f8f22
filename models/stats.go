// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthorBlogs is the author with the largest number of blogs.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the author whose blogs collected the most likes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// BlogStats aggregates the whole blog list. Pointer fields are nil
// when there are no blogs.
type BlogStats struct {
	TotalLikes   int          `json:"totalLikes"`
	FavoriteBlog *Blog        `json:"favoriteBlog"`
	MostBlogs    *AuthorBlogs `json:"mostBlogs"`
	MostLikes    *AuthorLikes `json:"mostLikes"`
}
