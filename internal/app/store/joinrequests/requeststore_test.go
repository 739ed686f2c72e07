package requeststore_test

import (
	"errors"
	"testing"

	requeststore "github.com/habitloop/circlehub/internal/app/store/joinrequests"
	"github.com/habitloop/circlehub/internal/domain/models"
	"github.com/habitloop/circlehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := primitive.NewObjectID()
	circle := primitive.NewObjectID()

	req, err := store.Create(ctx, user, circle)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if req.Status != models.RequestPending {
		t.Errorf("expected pending status, got %q", req.Status)
	}
	if req.UserID != user || req.CircleID != circle {
		t.Errorf("unexpected request identity: %+v", req)
	}
}

func TestStore_Create_DuplicatePending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := primitive.NewObjectID()
	circle := primitive.NewObjectID()

	if _, err := store.Create(ctx, user, circle); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := store.Create(ctx, user, circle); !errors.Is(err, requeststore.ErrDuplicatePending) {
		t.Errorf("expected ErrDuplicatePending, got %v", err)
	}

	// A pending request for a different circle is unaffected.
	if _, err := store.Create(ctx, user, primitive.NewObjectID()); err != nil {
		t.Errorf("pending request for another circle should succeed, got %v", err)
	}
}

func TestStore_Create_AllowedAfterResolution(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := primitive.NewObjectID()
	circle := primitive.NewObjectID()

	first, err := store.Create(ctx, user, circle)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Resolve(ctx, first.ID, models.RequestDeclined); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// The pending-uniqueness guard only covers pending rows; a declined
	// user may ask again.
	if _, err := store.Create(ctx, user, circle); err != nil {
		t.Errorf("new request after decline should succeed, got %v", err)
	}
}

func TestStore_Resolve_Terminal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req, err := store.Create(ctx, primitive.NewObjectID(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	resolved, err := store.Resolve(ctx, req.ID, models.RequestApproved)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.Status != models.RequestApproved {
		t.Errorf("expected approved, got %q", resolved.Status)
	}
	if resolved.UpdatedAt.Before(req.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}

	if _, err := store.Resolve(ctx, req.ID, models.RequestDeclined); !errors.Is(err, requeststore.ErrAlreadyResolved) {
		t.Errorf("expected ErrAlreadyResolved on second attempt, got %v", err)
	}
	// Status unchanged by the failed second attempt.
	got, err := store.GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.RequestApproved {
		t.Errorf("status flipped by rejected resolution: %q", got.Status)
	}
}

func TestStore_Resolve_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Resolve(ctx, primitive.NewObjectID(), models.RequestApproved); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_ListPendingByCircle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	circle := primitive.NewObjectID()
	first, err := store.Create(ctx, primitive.NewObjectID(), circle)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := store.Create(ctx, primitive.NewObjectID(), circle)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	resolvedReq, err := store.Create(ctx, primitive.NewObjectID(), circle)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Resolve(ctx, resolvedReq.ID, models.RequestDeclined); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	// Other circle's request does not leak in.
	if _, err := store.Create(ctx, primitive.NewObjectID(), primitive.NewObjectID()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	reqs, err := store.ListPendingByCircle(ctx, circle)
	if err != nil {
		t.Fatalf("ListPendingByCircle failed: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("expected 2 pending requests, got %d", len(reqs))
	}
	// Oldest first.
	if reqs[0].ID != first.ID || reqs[1].ID != second.ID {
		t.Errorf("unexpected order: %v then %v", reqs[0].ID, reqs[1].ID)
	}
}
