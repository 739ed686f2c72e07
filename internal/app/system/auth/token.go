package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.uber.org/zap"
)

// Manager issues and verifies the HMAC-signed bearer tokens that
// authenticate every API request.
type Manager struct {
	secret []byte
	expiry time.Duration
	log    *zap.Logger
}

// claims is the JWT payload. Subject carries the user's ObjectID hex.
type claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

var errEmptyToken = errors.New("empty token")

// NewManager builds a token manager from the configured signing secret.
// In production the secret must be strong; short secrets get a warning.
func NewManager(secret string, expiry time.Duration, logger *zap.Logger) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty; provide ≥32 random chars")
	}
	if len(secret) < 32 {
		logger.Warn("jwt secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	if expiry <= 0 {
		expiry = 7 * 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), expiry: expiry, log: logger}, nil
}

// Issue signs a token for the given user.
func (m *Manager) Issue(u models.User) (string, error) {
	now := time.Now().UTC()
	c := claims{
		Name:  u.Name,
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

// Verify parses and validates a signed token and returns the caller
// identity it carries.
func (m *Manager) Verify(raw string) (*TokenUser, error) {
	if raw == "" {
		return nil, errEmptyToken
	}
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if c.Subject == "" {
		return nil, errors.New("token missing subject")
	}
	return &TokenUser{ID: c.Subject, Name: c.Name, Email: c.Email}, nil
}
