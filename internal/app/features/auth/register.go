// internal/app/features/auth/register.go
package auth

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/habitloop/circlehub/internal/app/store/users"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/inputval"
	"github.com/habitloop/circlehub/internal/app/system/normalize"
	"github.com/habitloop/circlehub/internal/app/system/sanitize"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"github.com/habitloop/circlehub/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
)

type registerInput struct {
	Name     string `json:"name" validate:"required,max=100" label:"Name"`
	Email    string `json:"email" validate:"required,email,max=254" label:"Email"`
	Password string `json:"password" validate:"required,min=8,max=72" label:"Password"`
}

// Register serves POST /auth/register: creates a user and returns a
// signed token plus the profile. Email uniqueness is case-insensitive,
// enforced by a unique index on the folded email.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if !httpjson.DecodeBody(w, r, &in) {
		return
	}
	in.Name = normalize.Name(sanitize.Text(in.Name))
	in.Email = normalize.Param(in.Email)

	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.Validation(w, res.First())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		h.ErrLog.ServerError(w, r, "hash password", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := userstore.New(h.DB).Create(ctx, models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Validation(w, "Email already registered")
			return
		}
		h.ErrLog.ServerError(w, r, "create user", err)
		return
	}

	token, err := h.Tokens.Issue(created)
	if err != nil {
		h.ErrLog.ServerError(w, r, "issue token", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, tokenResponse{Token: token, User: viewOf(created)})
}
