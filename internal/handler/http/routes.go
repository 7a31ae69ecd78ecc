package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the router with the fixed middleware chain. Order matters:
// error containment is outermost (it catches faults from the gate, the
// access log, and the endpoints), then the auth gate, then access logging
// innermost. A request that fails the gate therefore never reaches the
// access log or an endpoint. Trace-ID assignment sits outside containment
// so every response, including 500s, carries a trace id.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withRecover, h.withAuthGate, h.withLogging)

	router.Get("/", h.root)
	router.Get("/users", h.listUsers)
	router.Get("/users/search", h.searchUsers)
	router.Get("/users/by-email/{email}", h.userByEmail)
	router.Get("/users/{id}", h.userByID)
	router.Post("/signup", h.signup)
	router.Put("/users/{id}", h.updateUser)
	router.Delete("/users/{id}", h.deleteUser)
	router.Post("/login", h.login)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
