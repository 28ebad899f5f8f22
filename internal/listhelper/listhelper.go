// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package listhelper computes aggregates over a list of blogs.
//
// Every function is pure. Ties are resolved in favour of the element (or
// author) that appears first in the input.
package listhelper

import (
	"github.com/thoas/go-funk"

	"github.com/MKhiriev/go-blog-list/models"
)

// Dummy always returns 1.
func Dummy([]models.Blog) int {
	return 1
}

// TotalLikes sums the likes of all blogs. An empty list yields 0.
func TotalLikes(blogs []models.Blog) int {
	if len(blogs) == 0 {
		return 0
	}
	return funk.SumInt(funk.Map(blogs, func(b models.Blog) int { return b.Likes }).([]int))
}

// FavoriteBlog returns the first blog with the largest number of likes.
// ok is false for an empty list.
func FavoriteBlog(blogs []models.Blog) (favorite models.Blog, ok bool) {
	if len(blogs) == 0 {
		return models.Blog{}, false
	}

	favorite = blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > favorite.Likes {
			favorite = b
		}
	}
	return favorite, true
}

// MostBlogs returns the author with the most blogs.
func MostBlogs(blogs []models.Blog) (models.AuthorBlogs, bool) {
	counts := make(map[string]int, len(blogs))
	for _, b := range blogs {
		counts[b.Author]++
	}

	author, n, ok := maxByAuthor(authorsInOrder(blogs), counts)
	if !ok {
		return models.AuthorBlogs{}, false
	}
	return models.AuthorBlogs{Author: author, Blogs: n}, true
}

// MostLikes returns the author whose blogs have the largest like sum.
func MostLikes(blogs []models.Blog) (models.AuthorLikes, bool) {
	likes := make(map[string]int, len(blogs))
	for _, b := range blogs {
		likes[b.Author] += b.Likes
	}

	author, n, ok := maxByAuthor(authorsInOrder(blogs), likes)
	if !ok {
		return models.AuthorLikes{}, false
	}
	return models.AuthorLikes{Author: author, Likes: n}, true
}

// Stats bundles every aggregate for the stats endpoint.
func Stats(blogs []models.Blog) models.BlogStats {
	stats := models.BlogStats{TotalLikes: TotalLikes(blogs)}

	if fav, ok := FavoriteBlog(blogs); ok {
		stats.FavoriteBlog = &fav
	}
	if mb, ok := MostBlogs(blogs); ok {
		stats.MostBlogs = &mb
	}
	if ml, ok := MostLikes(blogs); ok {
		stats.MostLikes = &ml
	}
	return stats
}

// authorsInOrder lists distinct authors by first appearance.
func authorsInOrder(blogs []models.Blog) []string {
	if len(blogs) == 0 {
		return nil
	}
	return funk.UniqString(funk.Map(blogs, func(b models.Blog) string { return b.Author }).([]string))
}

func maxByAuthor(authors []string, values map[string]int) (string, int, bool) {
	if len(authors) == 0 {
		return "", 0, false
	}

	best := authors[0]
	for _, a := range authors[1:] {
		if values[a] > values[best] {
			best = a
		}
	}
	return best, values[best], true
}
