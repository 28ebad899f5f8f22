// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blog-list/internal/utils"
)

// CheckHTTPMethod returns a handler to register as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// A request whose path matches a route but whose method is not registered
// for it gets 404 {"error":"unknown endpoint"} instead of chi's default 405,
// so a wrong method looks the same as an unknown path.
//
// Routes are compared by exact pattern against [http.Request.URL.Path];
// parameterised segments are not expanded. If the method turns out to be
// registered for the pattern, the request is served by the router as usual.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteError(w, msgUnknownEndpoint, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
