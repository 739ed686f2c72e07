package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/habitloop/circlehub/internal/app/system/auth"
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T, expiry time.Duration) *auth.Manager {
	t.Helper()
	m, err := auth.NewManager(testSecret, expiry, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

func TestNewManager_EmptySecret(t *testing.T) {
	if _, err := auth.NewManager("", time.Hour, zap.NewNop()); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := newManager(t, time.Hour)
	u := models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Grace Hopper",
		Email: "grace@example.com",
	}

	token, err := m.Issue(u)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if got.ID != u.ID.Hex() {
		t.Errorf("ID: got %q, want %q", got.ID, u.ID.Hex())
	}
	if got.Name != u.Name || got.Email != u.Email {
		t.Errorf("claims: got %+v", got)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := newManager(t, -time.Minute)
	token, err := m.Issue(models.User{ID: primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Error("expected verification failure for expired token")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	m := newManager(t, time.Hour)
	token, err := m.Issue(models.User{ID: primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	other, err := auth.NewManager("another-secret-that-is-long-enough!", time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Error("expected verification failure with a different secret")
	}
}

func TestRequireBearer(t *testing.T) {
	m := newManager(t, time.Hour)
	u := models.User{ID: primitive.NewObjectID(), Name: "N", Email: "n@example.com"}
	token, err := m.Issue(u)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var seen *auth.TokenUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.CurrentUser(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := m.RequireBearer(next)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest("GET", "/circles", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Errorf("status: got %d, want %d", rec.Code, tc.status)
			}
			if tc.status == http.StatusOK && (seen == nil || seen.ID != u.ID.Hex()) {
				t.Errorf("expected user in context, got %+v", seen)
			}
		})
	}
}
