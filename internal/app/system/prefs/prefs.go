// Package prefs remembers small visitor preferences in a signed cookie.
// Currently that is the last dashboard role the visitor opened, which the
// dashboard hub uses to offer a shortcut back.
package prefs

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Dashboard roles.
const (
	RoleHousehold = "household"
	RoleCollector = "collector"
	RoleAuthority = "authority"
)

const (
	lastRoleKey = "last_role"
	maxAge      = 30 * 24 * 60 * 60 // 30 days
)

// Manager reads and writes the preference cookie.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager. sessionKey signs the cookie; secure marks it
// Secure for HTTPS deployments.
func NewManager(sessionKey, name string, secure bool, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: name, log: logger}, nil
}

// LastRole returns the remembered role, or "" when none is stored or the
// cookie does not verify.
func (m *Manager) LastRole(r *http.Request) string {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		return ""
	}
	role, _ := sess.Values[lastRoleKey].(string)
	if !validRole(role) {
		return ""
	}
	return role
}

// RememberRole stores role in the cookie. Unknown roles are ignored.
func (m *Manager) RememberRole(w http.ResponseWriter, r *http.Request, role string) {
	if !validRole(role) {
		return
	}
	// A cookie signed with an old key fails to decode; Get still returns a
	// fresh session we can overwrite.
	sess, _ := m.store.Get(r, m.name)
	sess.Values[lastRoleKey] = role
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("save preference cookie", zap.Error(err))
	}
}

// Remember returns middleware that records role before serving next.
func (m *Manager) Remember(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.RememberRole(w, r, role)
			next.ServeHTTP(w, r)
		})
	}
}

func validRole(role string) bool {
	switch role {
	case RoleHousehold, RoleCollector, RoleAuthority:
		return true
	default:
		return false
	}
}
