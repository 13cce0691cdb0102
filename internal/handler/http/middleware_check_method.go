// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-auth/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// Instead of chi's 405 it answers 404 with a JSON error body when the path
// has no handler for the request method, so /api/user/login is not
// advertised to GET requests. Routes are matched by exact pattern, which holds
// for the flat routes registered in [Handler.Init].
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteJSONError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
