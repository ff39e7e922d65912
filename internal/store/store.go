// Package store holds every domain collection in memory and is the single
// source of truth the rest of the service reads from and mutates through.
//
// All mutations are serialized behind one mutex. Collections keep insertion
// order; callers that need a different order sort the returned copies.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"finconnect/internal/assistant"
	"finconnect/internal/core"
	"finconnect/internal/log"
)

// SessionFlag is the single durable datum: whether a session was active when
// the process last ran. Read once at startup, set on login, cleared on logout.
type SessionFlag interface {
	Active(ctx context.Context) (bool, error)
	SetActive(ctx context.Context, active bool) error
}

type Store struct {
	mu sync.RWMutex

	logger    *log.Logger
	now       func() time.Time
	latency   time.Duration
	responder assistant.ResponseGenerator
	flag      SessionFlag

	session  *core.Session
	demoUser core.User
	users    map[string]core.User

	projects []core.Project
	entries  []core.SpendingEntry
	budgets  []core.PlannedBudget
	posts    []core.CommunityPost
	messages []core.AssistantMessage
	greeting core.AssistantMessage
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Used by tests and the dashboard month
// window.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLatency sets the simulated network delay applied to the mock auth and
// assistant flows.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithResponder replaces the assistant reply strategy.
func WithResponder(r assistant.ResponseGenerator) Option {
	return func(s *Store) { s.responder = r }
}

// WithSessionFlag attaches the durable session flag. Without it the store
// simply forgets the session on restart.
func WithSessionFlag(f SessionFlag) Option {
	return func(s *Store) { s.flag = f }
}

// WithLogger attaches a logger. By default the store logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New builds a store populated from seed. The seed's collections are copied,
// never aliased.
func New(seed *Seed, opts ...Option) *Store {
	s := &Store{
		now:       time.Now,
		responder: assistant.NewKeywordResponder(),
		demoUser:  seed.CurrentUser,
		users:     make(map[string]core.User, len(seed.Users)),
		projects:  append([]core.Project(nil), seed.Projects...),
		entries:   append([]core.SpendingEntry(nil), seed.Entries...),
		budgets:   append([]core.PlannedBudget(nil), seed.Budgets...),
		posts:     clonePosts(seed.Posts),
		messages:  append([]core.AssistantMessage(nil), seed.Messages...),
	}
	for _, u := range seed.Users {
		s.users[u.ID] = u
	}
	if len(seed.Messages) > 0 {
		s.greeting = seed.Messages[0]
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newID returns a prefixed, collision-free identifier. The original scheme
// derived ids from a millisecond timestamp, which collides under rapid
// creation.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// simulateLatency models the fixed network delay the mock flows advertise.
func (s *Store) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Store) info(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

// UserByID looks up a user from the reference data.
func (s *Store) UserByID(id string) (core.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// Users returns the reference users in no particular order.
func (s *Store) Users() []core.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

func clonePosts(posts []core.CommunityPost) []core.CommunityPost {
	out := make([]core.CommunityPost, len(posts))
	for i, p := range posts {
		p.Reactions = append([]core.Reaction(nil), p.Reactions...)
		p.Comments = append([]core.Comment(nil), p.Comments...)
		out[i] = p
	}
	return out
}
