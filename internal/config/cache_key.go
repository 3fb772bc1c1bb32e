package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SessionProfileKey returns the cache key holding a session's serialized
// identity profile.
func (r *CacheKeyStruct) SessionProfileKey(sessionID string) string {
	return fmt.Sprintf("session:%s:profile", sessionID)
}

// SessionTokenKey returns the cache key holding a session's opaque upstream
// token. Written and cleared as a pair with the profile key.
func (r *CacheKeyStruct) SessionTokenKey(sessionID string) string {
	return fmt.Sprintf("session:%s:token", sessionID)
}

// ActiveSessionKey returns the cache key pointing at an employee's currently
// active session ID. One active session per employee; re-login replaces it.
func (r *CacheKeyStruct) ActiveSessionKey(employeeID string) string {
	return fmt.Sprintf("employee:%s:active_session", employeeID)
}

// LoginAttemptKey returns the cache key of an employee's monotonic login
// attempt counter, used to discard stale login responses.
func (r *CacheKeyStruct) LoginAttemptKey(employeeID string) string {
	return fmt.Sprintf("employee:%s:login_attempt", employeeID)
}

var CacheKey = NewCacheKeyStruct()
