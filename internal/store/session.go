package store

import (
	"context"

	"finconnect/internal/core"
	"finconnect/internal/log"
)

// Login establishes a session for the demo identity after the simulated
// network delay. Credentials are accepted as-is; there is no verification in
// this mock design.
func (s *Store) Login(ctx context.Context, email, password string) (core.Session, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return core.Session{}, err
	}

	s.mu.Lock()
	session := core.Session{User: s.demoUser, StartedAt: s.now()}
	s.session = &session
	s.mu.Unlock()

	s.persistFlag(ctx, true)
	s.info("Session established", log.FieldUserID, session.User.ID)
	return session, nil
}

// Register behaves like Login but overrides the demo identity's name and
// email with the supplied values. Duplicate emails are not checked.
func (s *Store) Register(ctx context.Context, name, email, password string) (core.Session, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return core.Session{}, err
	}

	s.mu.Lock()
	user := s.demoUser
	user.Name = name
	user.Email = email
	session := core.Session{User: user, StartedAt: s.now()}
	s.session = &session
	s.mu.Unlock()

	s.persistFlag(ctx, true)
	s.info("Session registered", log.FieldUserID, session.User.ID)
	return session, nil
}

// Logout clears the session and the durable flag.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.persistFlag(ctx, false)
	s.info("Session cleared")
}

// RestoreSession re-establishes the demo session when the durable flag is
// set. Called once at startup.
func (s *Store) RestoreSession(ctx context.Context) (bool, error) {
	if s.flag == nil {
		return false, nil
	}
	active, err := s.flag.Active(ctx)
	if err != nil {
		return false, err
	}
	if !active {
		return false, nil
	}

	s.mu.Lock()
	session := core.Session{User: s.demoUser, StartedAt: s.now()}
	s.session = &session
	s.mu.Unlock()

	s.info("Session restored", log.FieldUserID, session.User.ID)
	return true, nil
}

// Session returns the current session, if any.
func (s *Store) Session() (core.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return core.Session{}, false
	}
	return *s.session, true
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool {
	_, ok := s.Session()
	return ok
}

// currentUserID falls back to the demo identity when no session is active,
// matching the original's permissive behavior.
func (s *Store) currentUserID() string {
	if s.session != nil {
		return s.session.User.ID
	}
	return s.demoUser.ID
}

func (s *Store) persistFlag(ctx context.Context, active bool) {
	if s.flag == nil {
		return
	}
	if err := s.flag.SetActive(ctx, active); err != nil && s.logger != nil {
		s.logger.Warn("Failed to persist session flag", log.FieldError, err)
	}
}
