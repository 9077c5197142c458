package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"asiadrive/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the interface for session record operations.
// A session token is only honored while its record exists, so revoking the
// record logs the browser out regardless of the cookie's lifetime.
type SessionStoreInterface interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	Lookup(ctx context.Context, sessionID string) (userID uint, ok bool, err error)
	Revoke(ctx context.Context, sessionID string) error
}

// SessionStore handles storage and retrieval of session records in Redis.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Save stores a session record in Redis with TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	payload, err := json.Marshal(map[string]interface{}{"user_id": userID})
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}

	key := sessionKeyPrefix + sessionID
	if err := s.cache.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Lookup retrieves the user ID bound to a session. A missing record is not
// an error: it reports ok=false and the caller treats the request as
// unauthenticated.
func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (uint, bool, error) {
	key := sessionKeyPrefix + sessionID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return 0, false, nil
	}

	var record map[string]interface{}
	if err := json.Unmarshal(data, &record); err != nil {
		return 0, false, fmt.Errorf("unmarshal session data: %w", err)
	}

	uid, ok := record["user_id"].(float64)
	if !ok {
		return 0, false, fmt.Errorf("invalid user_id in session data")
	}
	return uint(uid), true, nil
}

// Revoke removes a session record from Redis. Revoking an absent session is
// a no-op, which keeps logout idempotent.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	key := sessionKeyPrefix + sessionID
	return s.cache.Delete(ctx, key)
}
