package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/habitloop/circlehub/internal/app/system/auth"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx(t *testing.T) {
	id := primitive.NewObjectID()

	r := httptest.NewRequest("GET", "/", nil)
	r = auth.WithTestUser(r, &auth.TokenUser{ID: id.Hex(), Name: "N"})

	name, userID, ok := authz.UserCtx(r)
	if !ok {
		t.Fatal("expected ok")
	}
	if name != "N" || userID != id {
		t.Errorf("got name=%q id=%v", name, userID)
	}
}

func TestUserCtx_NoUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if _, _, ok := authz.UserCtx(r); ok {
		t.Error("expected ok=false without a user")
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r = auth.WithTestUser(r, &auth.TokenUser{ID: "not-an-object-id"})
	if _, _, ok := authz.UserCtx(r); ok {
		t.Error("expected ok=false for malformed ID")
	}
}
