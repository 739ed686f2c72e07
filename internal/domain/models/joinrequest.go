// internal/domain/models/joinrequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Join request statuses. A request starts pending and is resolved exactly
// once to approved or declined; both are terminal.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestDeclined = "declined"
)

// JoinRequest is a mediated admission request for a private circle.
// At most one pending request may exist per (user, circle); resolved
// requests are kept as history and never deleted.
type JoinRequest struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	CircleID primitive.ObjectID `bson:"circle_id" json:"circle_id"`
	Status   string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidAction reports whether s is a terminal resolution action.
func ValidAction(s string) bool {
	return s == RequestApproved || s == RequestDeclined
}
