package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/habitloop/circlehub/internal/app/system/httpjson"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-user context                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// TokenUser is the caller identity carried in a verified bearer token and
// injected into r.Context(). Handlers trust it unconditionally; the token
// manager is the only component that constructs one from the wire.
type TokenUser struct {
	ID    string
	Name  string
	Email string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the caller identity and a "found?" flag.
func CurrentUser(r *http.Request) (*TokenUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*TokenUser)
	return u, ok
}

// RequireBearer verifies the Authorization header and injects the caller
// identity into context. Missing, malformed, or expired credentials get a
// 401 with the standard {message} error body.
func (m *Manager) RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		u, err := m.Verify(raw)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		next.ServeHTTP(w, withUser(r, u))
	})
}

// WithTestUser injects a user directly, bypassing token verification.
// For handler tests only.
func WithTestUser(r *http.Request, u *TokenUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *TokenUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
