// internal/app/store/circles/circlestore.go
package circlestore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateCircleName = errors.New("an active circle with this name already exists for this creator")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("circles")}
}

// GetActive loads a circle by ID, treating inactive (soft-deleted)
// circles as missing. Returns mongo.ErrNoDocuments either way, so a
// deleted circle is indistinguishable from one that never existed.
func (s *Store) GetActive(ctx context.Context, id primitive.ObjectID) (models.Circle, error) {
	var c models.Circle
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&c); err != nil {
		return models.Circle{}, err
	}
	return c, nil
}

// GetByID loads a circle regardless of its active flag. Used by the
// request workflow, which checks only existence for the circle lookup.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Circle, error) {
	var c models.Circle
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Circle{}, err
	}
	return c, nil
}

// Create persists a new circle with the creator as its sole initial
// member. Defaults privacy, category, and the active flag.
func (s *Store) Create(ctx context.Context, c models.Circle) (models.Circle, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.NameCI = text.Fold(c.Name)
	if c.Privacy == "" {
		c.Privacy = models.PrivacyPublic
	}
	if c.Category == "" {
		c.Category = models.CategoryOther
	}
	if c.Habits == nil {
		c.Habits = []string{}
	}
	c.Members = []models.Member{{UserID: c.CreatorID, JoinedAt: now}}
	c.IsActive = true
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Circle{}, ErrDuplicateCircleName
		}
		return models.Circle{}, err
	}
	return c, nil
}

// ListFilter narrows the circle directory listing.
type ListFilter struct {
	Search   string // free text over name+description ($text)
	Category string // exact category, "" means all
	Privacy  string // "public" or "private", "" means both
	Skip     int64
	Limit    int64
}

// List returns one page of active circles (newest first) and the total
// count matching the filter.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Circle, int64, error) {
	query := bson.M{"is_active": true}
	if f.Search != "" {
		query["$text"] = bson.M{"$search": f.Search}
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Privacy != "" {
		query["privacy"] = f.Privacy
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(f.Skip).
		SetLimit(f.Limit)

	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var circles []models.Circle
	if err := cur.All(ctx, &circles); err != nil {
		return nil, 0, err
	}

	total, err := s.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return circles, total, nil
}

// ListForUser returns every active circle the user created or belongs
// to, newest first, without pagination.
func (s *Store) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Circle, error) {
	query := bson.M{
		"is_active": true,
		"$or": []bson.M{
			{"creator_id": userID},
			{"members.user_id": userID},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var circles []models.Circle
	if err := cur.All(ctx, &circles); err != nil {
		return nil, err
	}
	return circles, nil
}

// UpdateFields carries a partial update. Empty strings are no-ops, except
// Description: a non-nil pointer is always applied, including "".
type UpdateFields struct {
	Name        string
	Description *string
	Privacy     string
	Habits      []string
	Category    string
	Image       string
}

// Update applies the provided fields and returns the updated circle.
// Only active circles can be updated; a missing or inactive circle
// yields mongo.ErrNoDocuments.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, f UpdateFields) (models.Circle, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if f.Name != "" {
		set["name"] = f.Name
		set["name_ci"] = text.Fold(f.Name)
	}
	if f.Description != nil {
		set["description"] = *f.Description
	}
	if f.Privacy != "" {
		set["privacy"] = f.Privacy
	}
	if f.Habits != nil {
		set["habits"] = f.Habits
	}
	if f.Category != "" {
		set["category"] = f.Category
	}
	if f.Image != "" {
		set["image"] = f.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Circle
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "is_active": true},
		bson.M{"$set": set},
		opts,
	).Decode(&updated)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Circle{}, ErrDuplicateCircleName
		}
		return models.Circle{}, err
	}
	return updated, nil
}

// SoftDelete flips the active flag. Memberships, join requests, and
// history are left in place; every lookup path now reports not-found.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// AddMember appends the user to the members array if absent. The filter
// carries the absence check so the append is a single atomic
// add-if-absent write; two racing joins cannot both insert. Returns
// whether the member was added.
func (s *Store) AddMember(ctx context.Context, circleID, userID primitive.ObjectID) (bool, error) {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":             circleID,
			"is_active":       true,
			"members.user_id": bson.M{"$ne": userID},
		},
		bson.M{
			"$push": bson.M{"members": models.Member{UserID: userID, JoinedAt: now}},
			"$set":  bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// RemoveMember pulls the user's membership entry. Removing a user who is
// not a member is a no-op.
func (s *Store) RemoveMember(ctx context.Context, circleID, userID primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": circleID, "is_active": true},
		bson.M{
			"$pull": bson.M{"members": bson.M{"user_id": userID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	return err
}
