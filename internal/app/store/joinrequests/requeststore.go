// internal/app/store/joinrequests/requeststore.go
package requeststore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	// ErrDuplicatePending means the user already has a pending request for
	// this circle. The partial unique index enforces the invariant, so two
	// racing requests cannot both insert.
	ErrDuplicatePending = errors.New("a pending request already exists for this user and circle")

	// ErrAlreadyResolved means the request left the pending state before
	// this resolution attempt.
	ErrAlreadyResolved = errors.New("request has already been resolved")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("join_requests")}
}

// Create inserts a new pending request.
func (s *Store) Create(ctx context.Context, userID, circleID primitive.ObjectID) (models.JoinRequest, error) {
	now := time.Now().UTC()
	req := models.JoinRequest{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		CircleID:  circleID,
		Status:    models.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, req); err != nil {
		if wafflemongo.IsDup(err) {
			return models.JoinRequest{}, ErrDuplicatePending
		}
		return models.JoinRequest{}, err
	}
	return req, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.JoinRequest, error) {
	var req models.JoinRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		return models.JoinRequest{}, err
	}
	return req, nil
}

// ListPendingByCircle returns the circle's pending requests, oldest first.
func (s *Store) ListPendingByCircle(ctx context.Context, circleID primitive.ObjectID) ([]models.JoinRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{
		"circle_id": circleID,
		"status":    models.RequestPending,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reqs []models.JoinRequest
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// Resolve moves a pending request to the given terminal status and
// returns the updated document. The update filter requires
// status=pending, so a request can be resolved at most once: a second
// attempt gets ErrAlreadyResolved, and a missing request gets
// mongo.ErrNoDocuments.
func (s *Store) Resolve(ctx context.Context, id primitive.ObjectID, status string) (models.JoinRequest, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.JoinRequest
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": models.RequestPending},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}},
		opts,
	).Decode(&updated)
	if err == nil {
		return updated, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.JoinRequest{}, err
	}

	// No pending match: distinguish "already resolved" from "missing".
	if _, getErr := s.GetByID(ctx, id); getErr == nil {
		return models.JoinRequest{}, ErrAlreadyResolved
	}
	return models.JoinRequest{}, mongo.ErrNoDocuments
}
