package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edumetry/staffdesk-backend/internal/authclient"
	"github.com/edumetry/staffdesk-backend/internal/config"
	"github.com/edumetry/staffdesk-backend/internal/model"
)

// Common lifecycle errors.
var (
	// ErrIncompleteIdentity means the auth service answered 2xx but the
	// payload lacked the token or the role string. Nothing is persisted.
	ErrIncompleteIdentity = errors.New("auth service returned an incomplete identity")

	// ErrLoginSuperseded means a newer login attempt or a logout for the
	// same employee happened while this login's network call was pending.
	// The stale result is discarded.
	ErrLoginSuperseded = errors.New("login attempt superseded")
)

// Authenticator validates credentials against the external auth service.
type Authenticator interface {
	Login(ctx context.Context, employeeID, password string) (*authclient.LoginResult, error)
}

// Manager orchestrates the session lifecycle: Login, Logout, and Restore.
// It is the sole mutator of session state; the access guard and navigation
// deriver only read the identities it produces.
//
// Each employee has one active session. A monotonic per-employee attempt
// counter orders login attempts against logouts so that a response arriving
// after the session moved on is never applied.
type Manager struct {
	rdb   *redis.Client
	store *Store
	auth  Authenticator
	log   zerolog.Logger
}

// NewManager creates a Manager.
func NewManager(rdb *redis.Client, store *Store, auth Authenticator, log zerolog.Logger) *Manager {
	return &Manager{rdb: rdb, store: store, auth: auth, log: log}
}

// Login authenticates against the auth service and, on success, persists a
// fresh session and returns its ID together with the established identity.
//
// The role is coerced into the enumeration; a missing token or missing role
// string is rejected before the store is touched. Upstream failures leave
// all state unchanged. A result that resolves after a newer attempt or a
// logout for the same employee is discarded with ErrLoginSuperseded.
func (m *Manager) Login(ctx context.Context, employeeID, password string) (string, *model.Identity, error) {
	attemptKey := config.CacheKey.LoginAttemptKey(employeeID)

	attempt, err := m.rdb.Incr(ctx, attemptKey).Result()
	if err != nil {
		return "", nil, fmt.Errorf("register login attempt: %w", err)
	}

	result, err := m.auth.Login(ctx, employeeID, password)
	if err != nil {
		return "", nil, err
	}
	if result.Token == "" || result.User.Role == "" {
		return "", nil, ErrIncompleteIdentity
	}

	// The network call may have outlived this attempt's relevance.
	current, err := m.rdb.Get(ctx, attemptKey).Int64()
	if err != nil {
		return "", nil, fmt.Errorf("check login attempt: %w", err)
	}
	if current != attempt {
		m.log.Info().
			Str("employee_id", employeeID).
			Int64("attempt", attempt).
			Int64("current", current).
			Msg("Discarding stale login result")
		return "", nil, ErrLoginSuperseded
	}

	identity := model.NewIdentity(
		result.User.EmployeeID,
		result.User.Email,
		result.User.Name,
		result.User.Department,
		result.User.Role,
		result.Token,
	)
	if identity.EmployeeID == "" {
		identity.EmployeeID = employeeID
	}
	if string(identity.Role) != result.User.Role {
		m.log.Warn().
			Str("employee_id", identity.EmployeeID).
			Str("received_role", result.User.Role).
			Str("coerced_role", string(identity.Role)).
			Msg("Unknown role coerced to fallback")
	}

	sessionID := uuid.New().String()
	if err := m.store.Persist(ctx, sessionID, identity); err != nil {
		return "", nil, err
	}

	// Replace any previous session for this employee.
	activeKey := config.CacheKey.ActiveSessionKey(identity.EmployeeID)
	previous, err := m.rdb.GetSet(ctx, activeKey, sessionID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", nil, fmt.Errorf("track active session: %w", err)
	}
	if err := m.rdb.Expire(ctx, activeKey, m.store.TTL()).Err(); err != nil {
		return "", nil, fmt.Errorf("expire active session: %w", err)
	}
	if previous != "" && previous != sessionID {
		if err := m.store.Clear(ctx, previous); err != nil {
			m.log.Warn().Err(err).Str("session_id", previous).Msg("Failed to clear replaced session")
		}
	}

	m.log.Info().
		Str("employee_id", identity.EmployeeID).
		Str("role", string(identity.Role)).
		Msg("Session established")

	return sessionID, &identity, nil
}

// Restore re-establishes the identity for a session ID, or nil when the
// session is absent. Malformed records are healed by the store and reported
// as absent; the caller redirects to the login view in that case.
func (m *Manager) Restore(ctx context.Context, sessionID string) (*model.Identity, error) {
	if sessionID == "" {
		return nil, nil
	}
	return m.store.Restore(ctx, sessionID)
}

// Logout clears the session unconditionally and invalidates any login
// attempt still in flight for the same employee. Logging out an absent
// session is a no-op.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	identity, err := m.store.Restore(ctx, sessionID)
	if err != nil {
		return err
	}
	if identity != nil {
		// Bump the attempt counter so a pending login resolves as stale.
		if err := m.rdb.Incr(ctx, config.CacheKey.LoginAttemptKey(identity.EmployeeID)).Err(); err != nil {
			return fmt.Errorf("invalidate pending logins: %w", err)
		}
		if err := m.rdb.Del(ctx, config.CacheKey.ActiveSessionKey(identity.EmployeeID)).Err(); err != nil {
			return fmt.Errorf("drop active session: %w", err)
		}
		m.log.Info().Str("employee_id", identity.EmployeeID).Msg("Session cleared")
	}

	return m.store.Clear(ctx, sessionID)
}
