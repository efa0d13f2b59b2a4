// Package token issues and verifies the stateless session tokens that
// carry an identity's id and role between requests.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
)

const DefaultTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is what a verified token asserts about its bearer. The role is
// captured at issuance time; a later role change does not invalidate
// tokens already in flight.
type Claims struct {
	UserID string
	Role   domain.Role
}

// Manager signs and verifies HS256 session tokens with a process-wide
// secret. Verification is pure and repeatable; nothing is persisted.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token for an already-verified identity.
func (m *Manager) Issue(userID string, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role.String(),
		"exp":  time.Now().Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify validates signature, algorithm and expiry, and recovers the
// embedded claims. Any failure is reported as ErrInvalidToken; callers
// treat it uniformly as an unusable session.
func (m *Manager) Verify(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	rawRole, _ := claims["role"].(string)
	role, roleErr := domain.ParseRole(rawRole)
	if sub == "" || roleErr != nil {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: sub, Role: role}, nil
}
