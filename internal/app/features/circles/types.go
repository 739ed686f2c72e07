// internal/app/features/circles/types.go
package circles

import (
	"time"

	"github.com/habitloop/circlehub/internal/app/policy/circlepolicy"
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRef is the resolved creator/requester projection: id, name, email.
type UserRef struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// MemberView is one resolved membership entry in the detail view.
type MemberView struct {
	ID       primitive.ObjectID `json:"_id"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	JoinedAt time.Time          `json:"joinedAt"`
}

// CircleSummary is the list/create/update projection. Members is a
// count here; the detail view resolves the full list instead. The two
// projections are deliberately distinct types.
type CircleSummary struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Members     int                `json:"members"`
	Habits      []string           `json:"habits"`
	Privacy     string             `json:"privacy"`
	Category    string             `json:"category"`
	Image       string             `json:"image"`
	Creator     UserRef            `json:"creator"`
	CreatedAt   time.Time          `json:"createdAt"`
	IsCreator   bool               `json:"isCreator"`
	IsMember    bool               `json:"isMember"`
}

// CircleDetail is the single-circle projection with members resolved to
// id/name/email/joinedAt entries.
type CircleDetail struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Members     []MemberView       `json:"members"`
	Habits      []string           `json:"habits"`
	Privacy     string             `json:"privacy"`
	Category    string             `json:"category"`
	Image       string             `json:"image"`
	Creator     UserRef            `json:"creator"`
	CreatedAt   time.Time          `json:"createdAt"`
	IsCreator   bool               `json:"isCreator"`
	IsMember    bool               `json:"isMember"`
}

// listResponse is the paged directory envelope.
type listResponse struct {
	Circles     []CircleSummary `json:"circles"`
	TotalPages  int64           `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int64           `json:"total"`
}

// messageResponse is the body for join/leave/delete acknowledgements.
type messageResponse struct {
	Message string `json:"message"`
}

// requestView is the created join-request projection.
type requestView struct {
	ID        primitive.ObjectID `json:"_id"`
	UserID    primitive.ObjectID `json:"userId"`
	CircleID  primitive.ObjectID `json:"circleId"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

// userRef resolves one user reference against the preloaded user map.
// Dangling references keep the ID and leave name/email blank.
func userRef(users map[primitive.ObjectID]models.User, id primitive.ObjectID) UserRef {
	ref := UserRef{ID: id}
	if u, ok := users[id]; ok {
		ref.Name = u.Name
		ref.Email = u.Email
	}
	return ref
}

// summaryView projects a circle for the caller, with the creator
// resolved from the preloaded user map.
func summaryView(c models.Circle, users map[primitive.ObjectID]models.User, callerID primitive.ObjectID) CircleSummary {
	return CircleSummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Members:     len(c.Members),
		Habits:      c.Habits,
		Privacy:     c.Privacy,
		Category:    c.Category,
		Image:       c.Image,
		Creator:     userRef(users, c.CreatorID),
		CreatedAt:   c.CreatedAt,
		IsCreator:   circlepolicy.IsCreator(c, callerID),
		IsMember:    circlepolicy.IsMember(c, callerID),
	}
}

// detailView projects a circle with its member list resolved.
func detailView(c models.Circle, users map[primitive.ObjectID]models.User, callerID primitive.ObjectID) CircleDetail {
	members := make([]MemberView, 0, len(c.Members))
	for _, m := range c.Members {
		mv := MemberView{ID: m.UserID, JoinedAt: m.JoinedAt}
		if u, ok := users[m.UserID]; ok {
			mv.Name = u.Name
			mv.Email = u.Email
		}
		members = append(members, mv)
	}
	return CircleDetail{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Members:     members,
		Habits:      c.Habits,
		Privacy:     c.Privacy,
		Category:    c.Category,
		Image:       c.Image,
		Creator:     userRef(users, c.CreatorID),
		CreatedAt:   c.CreatedAt,
		IsCreator:   circlepolicy.IsCreator(c, callerID),
		IsMember:    circlepolicy.IsMember(c, callerID),
	}
}

// creatorIDs collects the distinct creator IDs from a circle page for a
// single batched user lookup.
func creatorIDs(circles []models.Circle) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(circles))
	ids := make([]primitive.ObjectID, 0, len(circles))
	for _, c := range circles {
		if _, ok := seen[c.CreatorID]; ok {
			continue
		}
		seen[c.CreatorID] = struct{}{}
		ids = append(ids, c.CreatorID)
	}
	return ids
}
