// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux mirroring the application's route
// shapes. It intentionally does not use Handler.Init() to avoid service and
// middleware setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("users"))
	})
	router.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// ---- Table test ----

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		// Existing route + valid method -> handler responds.
		{
			name:           "GET /users — registered, should pass through",
			method:         http.MethodGet,
			path:           "/users",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /signup — registered, should pass through",
			method:         http.MethodPost,
			path:           "/signup",
			expectedStatus: http.StatusCreated,
		},
		// Existing route + invalid method -> 404, never 405.
		{
			name:           "POST /users — method not registered → 404",
			method:         http.MethodPost,
			path:           "/users",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "GET /signup — method not registered → 404",
			method:         http.MethodGet,
			path:           "/signup",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "PATCH /login — method not registered → 404",
			method:         http.MethodPatch,
			path:           "/login",
			expectedStatus: http.StatusNotFound,
		},
		// Non-existing route: chi returns 404 before MethodNotAllowed.
		{
			name:           "GET /nonexistent — route does not exist",
			method:         http.MethodGet,
			path:           "/nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

// ---- Existing route with valid method forwards response body ----

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "users", rr.Body.String())
}

// ---- Invalid method always returns 404, not 405 ----

func TestCheckHTTPMethod_WrongMethodReturns404NotMethodNotAllowed(t *testing.T) {
	router := buildRouter()

	wrongMethods := []string{
		http.MethodPost,
		http.MethodPatch,
		http.MethodOptions,
		http.MethodDelete,
	}

	for _, method := range wrongMethods {
		t.Run(method+" /users", func(t *testing.T) {
			req := httptest.NewRequest(method, "/users", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code,
				"wrong method on existing route should return 404, not 405")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
