package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"reseller-portal-go/internal/db"
	"reseller-portal-go/internal/models"
)

// Identity is the authenticated principal delivered by the identity
// provider's change stream, or nil when signed out.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// AuthStream is a subscribable authentication-state change stream. The
// listener fires on sign-in, sign-out and token refresh; the returned
// function removes the listener.
type AuthStream interface {
	Subscribe(listener func(identity *Identity)) (unsubscribe func())
}

// SessionState is the session store's snapshot exposed to consumers.
// Role is derived, not authoritative: it is re-read from the user record
// on every identity change and cached only for this session. Consumers
// must not render role-gated content while Loading is true.
type SessionState struct {
	Identity *Identity
	Role     string
	Loading  bool
}

const (
	defaultRoleLookupAttempts = 3
	defaultRoleLookupBackoff  = time.Second
)

// RoleResolver derives a user's role from the document store with bounded
// retries. On exhaustion it fails safe to the free role: lookup failure
// must never grant premium.
type RoleResolver struct {
	userRepo db.UserRepository
	logger   *zap.Logger
	attempts int
	backoff  time.Duration
	sleep    func(time.Duration)
}

// NewRoleResolver creates a RoleResolver with the standard 3-attempt,
// 1-second-backoff policy.
func NewRoleResolver(userRepo db.UserRepository, logger *zap.Logger) *RoleResolver {
	return &RoleResolver{
		userRepo: userRepo,
		logger:   logger,
		attempts: defaultRoleLookupAttempts,
		backoff:  defaultRoleLookupBackoff,
		sleep:    time.Sleep,
	}
}

// Resolve returns the role stored on the user record, retrying transient
// lookup failures. A missing record or exhausted retries resolve to free.
func (r *RoleResolver) Resolve(ctx context.Context, userID string) string {
	for attempt := 1; attempt <= r.attempts; attempt++ {
		user, err := r.userRepo.GetByID(ctx, userID)
		if err == nil {
			if user.Role == "" {
				return models.RoleFree
			}
			return user.Role
		}
		// A missing record is an answer, not a failure: the profile has
		// not been initialized yet. Only transient errors are retried.
		if errors.Is(err, db.ErrNotFound) {
			return models.RoleFree
		}
		r.logger.Warn("role lookup failed",
			zap.String("userID", userID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < r.attempts {
			r.sleep(r.backoff)
		}
	}
	return models.RoleFree
}

// SessionStore holds the authenticated identity and its derived role for
// one client session. It is a passive subscriber: it never mutates the
// user record.
type SessionStore struct {
	mu          sync.Mutex
	stream      AuthStream
	roles       *RoleResolver
	logger      *zap.Logger
	state       SessionState
	unsubscribe func()
}

// NewSessionStore creates a session store in the loading state. Start
// must be called to attach it to the auth stream.
func NewSessionStore(stream AuthStream, roles *RoleResolver, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		stream: stream,
		roles:  roles,
		logger: logger,
		state:  SessionState{Loading: true},
	}
}

// Start subscribes to the identity provider's change stream. Calling
// Start on a started store is a no-op.
func (s *SessionStore) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = s.stream.Subscribe(func(identity *Identity) {
		s.onAuthChange(ctx, identity)
	})
}

// onAuthChange resolves the new identity and its role. Loading flips
// back to true while resolution is in flight and resolves exactly once
// per change.
func (s *SessionStore) onAuthChange(ctx context.Context, identity *Identity) {
	s.mu.Lock()
	s.state.Identity = identity
	s.state.Loading = true
	s.mu.Unlock()

	role := ""
	if identity != nil {
		role = s.roles.Resolve(ctx, identity.UID)
	}

	s.mu.Lock()
	s.state.Role = role
	s.state.Loading = false
	s.mu.Unlock()

	s.logger.Debug("session state resolved",
		zap.Bool("authenticated", identity != nil),
		zap.String("role", role),
	)
}

// State returns a snapshot of the current session state.
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispose detaches the store from the auth stream. Safe to call more
// than once.
func (s *SessionStore) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
