// internal/app/features/auth/routes.go
package auth

import (
	"github.com/go-chi/chi/v5"
)

// PublicRoutes mounts the endpoints that work without a token.
func PublicRoutes(r chi.Router, h *Handler) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// PrivateRoutes mounts the endpoints that require a verified bearer
// token. The caller wraps these in the auth middleware.
func PrivateRoutes(r chi.Router, h *Handler) {
	r.Get("/me", h.Me)
}
