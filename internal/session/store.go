// Package session implements the staff session lifecycle: a Redis-backed
// durable store and the manager that orchestrates login, logout, and
// restore around it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edumetry/staffdesk-backend/internal/config"
	"github.com/edumetry/staffdesk-backend/internal/model"
)

// persistedProfile is the durable shape of an identity, stored separately
// from the opaque token.
type persistedProfile struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role"`
}

// Store persists identities in Redis. Each session occupies two keys — the
// serialized profile and the opaque token — written as a pair and cleared
// together. Side effects are confined to Redis; the store never touches
// session state or navigation.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a Store with the given record TTL.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// TTL returns the configured record lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Persist durably writes the identity under the session ID, overwriting any
// prior value. Profile and token are written in one pipeline so a session is
// never half-present after a successful call.
func (s *Store) Persist(ctx context.Context, sessionID string, identity model.Identity) error {
	profile := persistedProfile{
		EmployeeID: identity.EmployeeID,
		Email:      identity.Email,
		Name:       identity.Name,
		Department: identity.Department,
		Role:       string(identity.Role),
	}
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, config.CacheKey.SessionProfileKey(sessionID), payload, s.ttl)
	pipe.Set(ctx, config.CacheKey.SessionTokenKey(sessionID), identity.Token, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Restore reads the durable record for a session ID. It returns nil when no
// record exists. A malformed or partial record (one key missing, profile
// unparseable, required fields absent) is self-healing: both keys are
// cleared and the session is reported as absent rather than surfacing a
// parse error — a half-written or legacy-shaped record must never break
// startup of the client. Out-of-enumeration roles are coerced to the
// fallback role.
//
// Only infrastructure failures (Redis unreachable) return an error.
func (s *Store) Restore(ctx context.Context, sessionID string) (*model.Identity, error) {
	pipe := s.rdb.Pipeline()
	profileCmd := pipe.Get(ctx, config.CacheKey.SessionProfileKey(sessionID))
	tokenCmd := pipe.Get(ctx, config.CacheKey.SessionTokenKey(sessionID))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read session: %w", err)
	}

	payload, profileErr := profileCmd.Bytes()
	token, tokenErr := tokenCmd.Result()

	profileMissing := errors.Is(profileErr, redis.Nil)
	tokenMissing := errors.Is(tokenErr, redis.Nil)

	if profileMissing && tokenMissing {
		return nil, nil
	}
	// Partial presence is treated as absent, and the leftover key removed.
	if profileMissing || tokenMissing || token == "" {
		return nil, s.Clear(ctx, sessionID)
	}

	var profile persistedProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, s.Clear(ctx, sessionID)
	}
	if profile.EmployeeID == "" || profile.Role == "" {
		return nil, s.Clear(ctx, sessionID)
	}

	identity := model.Identity{
		EmployeeID: profile.EmployeeID,
		Email:      profile.Email,
		Name:       profile.Name,
		Department: profile.Department,
		Role:       model.NormalizeRole(profile.Role),
		Token:      token,
	}
	return &identity, nil
}

// Clear removes the durable record unconditionally. Clearing an absent
// session is a no-op.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	err := s.rdb.Del(ctx,
		config.CacheKey.SessionProfileKey(sessionID),
		config.CacheKey.SessionTokenKey(sessionID),
	).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
