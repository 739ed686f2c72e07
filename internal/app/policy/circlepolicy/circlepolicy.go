// internal/app/policy/circlepolicy.go
package circlepolicy

import (
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsCreator reports whether the user created the circle. Creators hold
// exclusive update/delete/approve rights and can never leave.
func IsCreator(c models.Circle, userID primitive.ObjectID) bool {
	return c.CreatorID == userID
}

// IsMember reports whether the user appears in the circle's embedded
// members list. The creator is a member from creation.
func IsMember(c models.Circle, userID primitive.ObjectID) bool {
	for _, m := range c.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// CanView reports whether the user may read the circle's detail view.
// Public circles are visible to any authenticated caller; private
// circles only to the creator and members.
func CanView(c models.Circle, userID primitive.ObjectID) bool {
	if c.Privacy != models.PrivacyPrivate {
		return true
	}
	return IsCreator(c, userID) || IsMember(c, userID)
}
