// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blog-list/internal/utils"
	"github.com/MKhiriev/go-blog-list/models"
)

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.services.BlogService.ListBlogs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.services.BlogService.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) blogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.BlogService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// createBlog handles POST /api/blogs. The owner is the caller identified
// by the auth middleware.
func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	var request models.CreateBlogRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.CreateBlog(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusCreated)
}

// updateBlog handles PUT /api/blogs/{id}. Fields absent from the body keep
// their stored values.
func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	var request models.UpdateBlogRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.ID = chi.URLParam(r, "id")

	blog, err := h.services.BlogService.UpdateBlog(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := h.services.BlogService.DeleteBlog(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
