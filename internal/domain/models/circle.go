// internal/domain/models/circle.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Circle privacy values. Public circles can be joined directly; private
// circles admit members only through the join-request workflow.
const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

// Circle categories. CategoryOther is the default.
const (
	CategoryFitness      = "Fitness"
	CategoryMindfulness  = "Mindfulness"
	CategoryLearning     = "Learning"
	CategoryProductivity = "Productivity"
	CategoryHealth       = "Health"
	CategoryOther        = "Other"
)

// Member is one membership entry embedded on a Circle. The creator is
// always present from creation and cannot be removed via leave.
type Member struct {
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	JoinedAt time.Time          `bson:"joined_at" json:"joined_at"`
}

// Circle is a named group of users organized around shared habits.
//
// NOTE:
//   - Members are embedded on the circle document so join/leave stay
//     single-document writes (add-if-absent / pull, never a full
//     document overwrite).
//   - Circles are never hard-deleted; IsActive=false marks the circle
//     deleted and every lookup path treats it as missing.
type Circle struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"`
	Description string             `bson:"description" json:"description"`
	Privacy     string             `bson:"privacy" json:"privacy"`
	CreatorID   primitive.ObjectID `bson:"creator_id" json:"creator_id"`
	Members     []Member           `bson:"members" json:"members"`
	Habits      []string           `bson:"habits" json:"habits"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	IsActive    bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidPrivacy reports whether s is a recognized privacy value.
func ValidPrivacy(s string) bool {
	return s == PrivacyPublic || s == PrivacyPrivate
}

// ValidCategory reports whether s is a recognized category.
func ValidCategory(s string) bool {
	switch s {
	case CategoryFitness, CategoryMindfulness, CategoryLearning,
		CategoryProductivity, CategoryHealth, CategoryOther:
		return true
	}
	return false
}
