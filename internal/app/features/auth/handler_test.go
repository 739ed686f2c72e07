package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authfeature "github.com/habitloop/circlehub/internal/app/features/auth"
	sysauth "github.com/habitloop/circlehub/internal/app/system/auth"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*authfeature.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	tokens, err := sysauth.NewManager("0123456789abcdef0123456789abcdef", time.Hour, logger)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	handler := authfeature.NewHandler(db, tokens, httpjson.NewErrorLogger(logger), logger)
	return handler, testutil.NewFixtures(t, db)
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, rec, &body)
	return body.Message
}

func TestRegister_Success(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/auth/register", map[string]any{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "correct horse battery",
	})
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var got struct {
		Token string `json:"token"`
		User  struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	testutil.DecodeJSON(t, rec, &got)
	if got.Token == "" {
		t.Error("expected a token")
	}
	if got.User.Name != "Ada Lovelace" || got.User.Email != "ada@example.com" {
		t.Errorf("user: %+v", got.User)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "First", "dup@example.com")

	req := testutil.NewJSONRequest(t, "POST", "/auth/register", map[string]any{
		"name":     "Second",
		"email":    "DUP@example.com",
		"password": "long enough pass",
	})
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Email already registered" {
		t.Errorf("message: %q", msg)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	handler, _ := newTestHandler(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"email": "a@b.com", "password": "long enough pass"}},
		{"bad email", map[string]any{"name": "A", "email": "nope", "password": "long enough pass"}},
		{"short password", map[string]any{"name": "A", "email": "a@b.com", "password": "short"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, "POST", "/auth/register", tc.body)
			rec := httptest.NewRecorder()
			handler.Register(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status: got %d", rec.Code)
			}
		})
	}
}

func TestLoginFlow(t *testing.T) {
	handler, _ := newTestHandler(t)

	// Register through the real endpoint so the stored hash is genuine.
	req := testutil.NewJSONRequest(t, "POST", "/auth/register", map[string]any{
		"name":     "Grace",
		"email":    "grace@example.com",
		"password": "correct horse battery",
	})
	rec := httptest.NewRecorder()
	handler.Register(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status: got %d, body %s", rec.Code, rec.Body.String())
	}

	// Right password, case-folded email.
	req = testutil.NewJSONRequest(t, "POST", "/auth/login", map[string]any{
		"email":    "GRACE@example.com",
		"password": "correct horse battery",
	})
	rec = httptest.NewRecorder()
	handler.Login(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var got struct {
		Token string `json:"token"`
	}
	testutil.DecodeJSON(t, rec, &got)
	if got.Token == "" {
		t.Error("expected a token")
	}

	// Wrong password.
	req = testutil.NewJSONRequest(t, "POST", "/auth/login", map[string]any{
		"email":    "grace@example.com",
		"password": "wrong password!!",
	})
	rec = httptest.NewRecorder()
	handler.Login(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status: got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Invalid email or password" {
		t.Errorf("message: %q", msg)
	}

	// Unknown email gets the same answer.
	req = testutil.NewJSONRequest(t, "POST", "/auth/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "whatever works!",
	})
	rec = httptest.NewRecorder()
	handler.Login(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email status: got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Invalid email or password" {
		t.Errorf("message: %q", msg)
	}
}

func TestMe(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Profiled", "me@example.com")

	req := testutil.NewAuthenticatedRequest(t, "GET", "/auth/me", nil, user)
	rec := httptest.NewRecorder()
	handler.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var got struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	testutil.DecodeJSON(t, rec, &got)
	if got.Name != "Profiled" || got.Email != "me@example.com" {
		t.Errorf("profile: %+v", got)
	}
}
