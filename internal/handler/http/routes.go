package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	// a present but invalid Bearer token is rejected on every route
	router.Use(h.auth)

	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/ping", h.ping)

		r.Post("/api/login", h.login)

		r.Get("/api/users", h.listUsers)
		r.Post("/api/users", h.registerUser)

		r.Get("/api/blogs", h.listBlogs)
		r.Post("/api/blogs", h.createBlog)
		r.Get("/api/blogs/stats", h.blogStats)
		r.Get("/api/blogs/{id}", h.getBlog)
		r.Put("/api/blogs/{id}", h.updateBlog)
		r.Delete("/api/blogs/{id}", h.deleteBlog)
	})

	if h.testingRoutes {
		h.logger.Warn().Msg("testing routes are enabled")
		router.Post("/api/testing/reset", h.resetStorage)
	}

	router.NotFound(unknownEndpoint)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
