// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// A request whose path is registered but whose method is not answers 404
// instead of chi's default 405, so the set of supported methods is not
// advertised. Only exact patterns are compared; the API has no path
// parameters.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		route, found := findRoute(router, r.URL.Path)
		if !found || route.Handlers[r.Method] == nil {
			utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		// The method is registered: delegate to the router's normal pipeline.
		router.ServeHTTP(w, r)
	}
}

func findRoute(router chi.Routes, path string) (chi.Route, bool) {
	for _, route := range router.Routes() {
		if route.Pattern == path {
			return route, true
		}
	}
	return chi.Route{}, false
}
