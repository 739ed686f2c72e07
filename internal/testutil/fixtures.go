package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user and returns it with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		EmailCI:      text.Fold(email),
		PasswordHash: "$2a$10$testhashnotarealbcrypthashxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateCircle inserts an active circle with the creator as its sole
// member.
func (f *Fixtures) CreateCircle(ctx context.Context, name, privacy string, creatorID primitive.ObjectID) models.Circle {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Circle{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Description: "A test circle",
		Privacy:     privacy,
		CreatorID:   creatorID,
		Members:     []models.Member{{UserID: creatorID, JoinedAt: now}},
		Habits:      []string{},
		Category:    models.CategoryOther,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("circles").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test circle: %v", err)
	}
	return c
}

// AddCircleMember appends a membership entry directly.
func (f *Fixtures) AddCircleMember(ctx context.Context, circleID, userID primitive.ObjectID) {
	f.t.Helper()

	_, err := f.db.Collection("circles").UpdateByID(ctx, circleID, bson.M{
		"$push": bson.M{
			"members": models.Member{UserID: userID, JoinedAt: time.Now().UTC()},
		},
	})
	if err != nil {
		f.t.Fatalf("failed to add test member: %v", err)
	}
}

// CreateJoinRequest inserts a join request in the given status.
func (f *Fixtures) CreateJoinRequest(ctx context.Context, userID, circleID primitive.ObjectID, status string) models.JoinRequest {
	f.t.Helper()

	now := time.Now().UTC()
	req := models.JoinRequest{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		CircleID:  circleID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("join_requests").InsertOne(ctx, req); err != nil {
		f.t.Fatalf("failed to create test join request: %v", err)
	}
	return req
}
