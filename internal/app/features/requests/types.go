// internal/app/features/requests/types.go
package requests

import (
	"time"

	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userRef is the resolved requester projection.
type userRef struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// pendingView is one pending request with its requester resolved.
type pendingView struct {
	ID        primitive.ObjectID `json:"_id"`
	UserID    primitive.ObjectID `json:"userId"`
	CircleID  primitive.ObjectID `json:"circleId"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	User      userRef            `json:"user"`
}

// resolvedView is the terminal request state returned by Resolve.
type resolvedView struct {
	ID        primitive.ObjectID `json:"_id"`
	UserID    primitive.ObjectID `json:"userId"`
	CircleID  primitive.ObjectID `json:"circleId"`
	Status    string             `json:"status"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// resolveResponse acknowledges a resolution.
type resolveResponse struct {
	Message string       `json:"message"`
	Request resolvedView `json:"request"`
}

func pendingViews(reqs []models.JoinRequest, users map[primitive.ObjectID]models.User) []pendingView {
	out := make([]pendingView, 0, len(reqs))
	for _, req := range reqs {
		pv := pendingView{
			ID:        req.ID,
			UserID:    req.UserID,
			CircleID:  req.CircleID,
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
			User:      userRef{ID: req.UserID},
		}
		if u, ok := users[req.UserID]; ok {
			pv.User.Name = u.Name
			pv.User.Email = u.Email
		}
		out = append(out, pv)
	}
	return out
}
