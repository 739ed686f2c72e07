// internal/app/features/auth/login.go
package auth

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/habitloop/circlehub/internal/app/store/users"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/inputval"
	"github.com/habitloop/circlehub/internal/app/system/normalize"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type loginInput struct {
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}

// Login serves POST /auth/login. Unknown email and wrong password get
// the same answer, so the endpoint does not leak which emails exist.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if !httpjson.DecodeBody(w, r, &in) {
		return
	}
	in.Email = normalize.Param(in.Email)

	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.Validation(w, res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := userstore.New(h.DB).GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.ErrLog.ServerError(w, r, "load user", err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		h.ErrLog.ServerError(w, r, "issue token", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, tokenResponse{Token: token, User: viewOf(user)})
}
