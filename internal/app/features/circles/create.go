// internal/app/features/circles/create.go
package circles

import (
	"context"
	"errors"
	"net/http"

	circlestore "github.com/habitloop/circlehub/internal/app/store/circles"
	userstore "github.com/habitloop/circlehub/internal/app/store/users"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/inputval"
	"github.com/habitloop/circlehub/internal/app/system/normalize"
	"github.com/habitloop/circlehub/internal/app/system/sanitize"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createCircleInput struct {
	Name        string   `json:"name" validate:"required,max=100" label:"Circle name"`
	Description string   `json:"description" validate:"max=500" label:"Description"`
	Privacy     string   `json:"privacy" validate:"omitempty,oneof=public private" label:"Privacy"`
	Habits      []string `json:"habits" validate:"omitempty,dive,max=100" label:"Habit"`
	Category    string   `json:"category" validate:"omitempty,oneof=Fitness Mindfulness Learning Productivity Health Other" label:"Category"`
	Image       string   `json:"image" validate:"omitempty,max=2048" label:"Image URL"`
}

// Create serves POST /circles. The creator becomes the sole initial
// member; privacy defaults to public and category to other. Duplicate
// active names per creator (case-insensitive) are rejected.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	_, callerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var in createCircleInput
	if !httpjson.DecodeBody(w, r, &in) {
		return
	}
	in.Name = normalize.Name(sanitize.Text(in.Name))
	in.Description = sanitize.Text(in.Description)
	in.Habits = normalize.StringSlice(sanitize.TextSlice(in.Habits))

	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.Validation(w, res.First())
		return
	}

	circle := models.Circle{
		Name:        in.Name,
		Description: in.Description,
		Privacy:     in.Privacy,
		Habits:      in.Habits,
		Category:    in.Category,
		Image:       in.Image,
		CreatorID:   callerID,
	}
	if circle.Image == "" {
		circle.Image = h.DefaultImage
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := circlestore.New(h.DB).Create(ctx, circle)
	if err != nil {
		if errors.Is(err, circlestore.ErrDuplicateCircleName) {
			httpjson.Validation(w, "You already have a circle with this name")
			return
		}
		h.ErrLog.ServerError(w, r, "create circle", err)
		return
	}

	users, err := userstore.New(h.DB).GetByIDs(ctx, []primitive.ObjectID{callerID})
	if err != nil {
		h.ErrLog.ServerError(w, r, "resolve circle creator", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, summaryView(created, users, callerID))
}
