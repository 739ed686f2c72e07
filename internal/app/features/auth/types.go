// internal/app/features/auth/types.go
package auth

import (
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userView is the public profile projection. The password hash never
// leaves the store layer.
type userView struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// tokenResponse is the register/login success body.
type tokenResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func viewOf(u models.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email}
}
