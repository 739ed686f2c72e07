package httpjson_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestError_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
	}{
		{"validation", func(w http.ResponseWriter) { httpjson.Validation(w, "Bad input") }, http.StatusBadRequest},
		{"forbidden", func(w http.ResponseWriter) { httpjson.Forbidden(w, "No") }, http.StatusForbidden},
		{"not found", func(w http.ResponseWriter) { httpjson.NotFound(w, "Gone") }, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)
			if rec.Code != tc.status {
				t.Errorf("status: got %d, want %d", rec.Code, tc.status)
			}
			body := decode(t, rec)
			if body["message"] == "" {
				t.Error("expected message in body")
			}
			if _, ok := body["error"]; ok {
				t.Error("non-500 bodies must not carry an error field")
			}
		})
	}
}

func TestServerError(t *testing.T) {
	errLog := httpjson.NewErrorLogger(zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/circles", nil)

	errLog.ServerError(rec, req, "load circle", errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "Server error" {
		t.Errorf("message: got %q", body["message"])
	}
	if body["error"] != "boom" {
		t.Errorf("error: got %q", body["error"])
	}
}

func TestDecodeBody(t *testing.T) {
	type in struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"x"}`))
	var v in
	if !httpjson.DecodeBody(rec, req, &v) {
		t.Fatal("expected decode to succeed")
	}
	if v.Name != "x" {
		t.Errorf("decoded: %+v", v)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	if httpjson.DecodeBody(rec, req, &v) {
		t.Error("expected decode to fail")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d", rec.Code)
	}
	if decode(t, rec)["message"] != "Invalid request body" {
		t.Error("expected invalid-body message")
	}
}
