// internal/app/features/circles/edit.go
package circles

import (
	"context"
	"errors"
	"net/http"

	"github.com/habitloop/circlehub/internal/app/policy/circlepolicy"
	circlestore "github.com/habitloop/circlehub/internal/app/store/circles"
	userstore "github.com/habitloop/circlehub/internal/app/store/users"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/inputval"
	"github.com/habitloop/circlehub/internal/app/system/normalize"
	"github.com/habitloop/circlehub/internal/app/system/sanitize"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pointer fields distinguish "absent" from "set to empty". Absent
// fields are left untouched; description is the only field where an
// explicit "" is applied.
type updateCircleInput struct {
	Name        *string  `json:"name" validate:"omitempty,max=100" label:"Circle name"`
	Description *string  `json:"description" validate:"omitempty,max=500" label:"Description"`
	Privacy     *string  `json:"privacy" validate:"omitempty,oneof=public private" label:"Privacy"`
	Habits      []string `json:"habits" validate:"omitempty,dive,max=100" label:"Habit"`
	Category    *string  `json:"category" validate:"omitempty,oneof=Fitness Mindfulness Learning Productivity Health Other" label:"Category"`
	Image       *string  `json:"image" validate:"omitempty,max=2048" label:"Image URL"`
}

// Edit serves PUT /circles/{id}. Creator only; partial update.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	_, callerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := circleIDParam(w, r)
	if !ok {
		return
	}

	var in updateCircleInput
	if !httpjson.DecodeBody(w, r, &in) {
		return
	}

	fields := circlestore.UpdateFields{}
	if in.Name != nil {
		name := normalize.Name(sanitize.Text(*in.Name))
		if name == "" {
			httpjson.Validation(w, "Circle name is required")
			return
		}
		fields.Name = name
	}
	if in.Description != nil {
		desc := sanitize.Text(*in.Description)
		fields.Description = &desc
	}
	if in.Privacy != nil {
		fields.Privacy = *in.Privacy
	}
	if in.Habits != nil {
		in.Habits = normalize.StringSlice(sanitize.TextSlice(in.Habits))
		fields.Habits = in.Habits
	}
	if in.Category != nil {
		fields.Category = *in.Category
	}
	if in.Image != nil {
		fields.Image = *in.Image
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.Validation(w, res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := circlestore.New(h.DB)
	circle, err := store.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Circle not found")
			return
		}
		h.ErrLog.ServerError(w, r, "load circle", err)
		return
	}
	if !circlepolicy.IsCreator(circle, callerID) {
		httpjson.Forbidden(w, "Not authorized")
		return
	}

	updated, err := store.Update(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, circlestore.ErrDuplicateCircleName):
			httpjson.Validation(w, "You already have a circle with this name")
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.NotFound(w, "Circle not found")
		default:
			h.ErrLog.ServerError(w, r, "update circle", err)
		}
		return
	}

	users, err := userstore.New(h.DB).GetByIDs(ctx, []primitive.ObjectID{updated.CreatorID})
	if err != nil {
		h.ErrLog.ServerError(w, r, "resolve circle creator", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, summaryView(updated, users, callerID))
}
