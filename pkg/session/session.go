// Package session tracks who is logged in and what they may do.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// ErrInvalidCredentials is returned for an unknown e-mail or a wrong secret.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Login finds the first contact whose organizational e-mail matches email
// case-insensitively and checks its secret. Later contacts sharing the same
// e-mail are never considered.
func Login(contacts []model.Contact, email, secret string) (*model.Contact, error) {
	for _, c := range contacts {
		if !strings.EqualFold(c.OrgEmail, email) {
			continue
		}
		if c.Password != secret {
			return nil, ErrInvalidCredentials
		}
		found := c
		return &found, nil
	}
	return nil, ErrInvalidCredentials
}

// Session holds the current user. The zero value is logged out.
type Session struct {
	mu   sync.RWMutex
	user *model.Contact
}

// New returns a logged-out session.
func New() *Session {
	return &Session{}
}

// Login authenticates against contacts and, on success, replaces the current
// user. A failed attempt leaves the session as it was.
func (s *Session) Login(contacts []model.Contact, email, secret string) (model.Contact, error) {
	c, err := Login(contacts, email, secret)
	if err != nil {
		return model.Contact{}, err
	}
	s.mu.Lock()
	s.user = c
	s.mu.Unlock()
	return *c, nil
}

// Logout clears the current user.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// User returns the current user, if any.
func (s *Session) User() (model.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.Contact{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether someone is logged in.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// IsAdminOrSecretary reports whether the current user has elevated access.
func (s *Session) IsAdminOrSecretary() bool {
	u, ok := s.User()
	return ok && u.IsAdminOrSecretary()
}

// CanEditMeeting reports whether the current user may copy or re-edit a
// meeting. Admins always may; secretaries only on the meeting's own day.
func (s *Session) CanEditMeeting(m model.Meeting, today string) bool {
	u, ok := s.User()
	if !ok {
		return false
	}
	return CanEditMeeting(u, m, today)
}

// CanEditMeeting is the permission rule behind Session.CanEditMeeting.
func CanEditMeeting(u model.Contact, m model.Meeting, today string) bool {
	switch u.Role {
	case model.RoleAdmin:
		return true
	case model.RoleSecretary:
		return m.Date == today
	default:
		return false
	}
}
