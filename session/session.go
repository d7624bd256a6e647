// Package session is the single source of truth for "is a user logged in,
// and as what role". The pair (token, role) lives in one HS256-signed cookie
// and is re-read from it on every request; nothing is cached in memory.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"learnhub-web/models"
)

const CookieName = "learnhub_session"

// ErrNoSession means no usable session cookie is present. That is not a
// failure: it is the signal to send the user to the login view.
var ErrNoSession = errors.New("session: not authenticated")

// Session is the client's persisted proof of identity plus resolved role.
type Session struct {
	Token string
	Role  models.Role
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a cookie value carrying both the upstream token and the role.
// They are always written together so a token can never exist without a
// resolved (possibly unknown) role next to it.
func (m *Manager) Issue(token string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"token": token,
		"role":  string(role),
		"exp":   time.Now().Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Set persists the session in the browser cookie.
func (m *Manager) Set(c *fiber.Ctx, token string, role models.Role) error {
	value, err := m.Issue(token, role)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Expires:  time.Now().Add(m.ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Current re-reads and verifies the session cookie. A missing, expired or
// tampered cookie all collapse into ErrNoSession.
func (m *Manager) Current(c *fiber.Ctx) (Session, error) {
	value := c.Cookies(CookieName)
	if value == "" {
		return Session{}, ErrNoSession
	}

	parsed, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("session: unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Session{}, ErrNoSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrNoSession
	}

	token, _ := claims["token"].(string)
	roleStr, _ := claims["role"].(string)
	if token == "" {
		return Session{}, ErrNoSession
	}

	return Session{Token: token, Role: models.ParseRole(roleStr)}, nil
}

// Token returns the persisted token, or empty when anonymous.
func (m *Manager) Token(c *fiber.Ctx) string {
	sess, err := m.Current(c)
	if err != nil {
		return ""
	}
	return sess.Token
}

// Clear removes the session. Used on logout and whenever any upstream call
// answers 401/403.
func (m *Manager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// ResolveRole picks the effective role for the fetched user record. Not all
// platform responses include a role; losing it would strand the user in an
// unrecognized-role state, so an absent field falls back to the persisted
// role. A present but unrecognized value stays unknown on purpose.
func ResolveRole(user *models.User, persisted models.Role) models.Role {
	if user == nil || strings.TrimSpace(user.Role) == "" {
		return persisted
	}
	return models.ParseRole(user.Role)
}
