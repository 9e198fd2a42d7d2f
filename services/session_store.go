package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/krystian2077/smartpc-builder/configurator"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("configurator session not found")

const (
	sessionTTL = 24 * time.Hour

	// submitLockTTL bounds how long a submission can block the next one if
	// the process dies mid-request.
	submitLockTTL = 30 * time.Second
)

// SessionStore keeps configurator sessions in Redis as JSON blobs with a
// TTL. Sessions are disposable browsing state, so losing them on expiry is
// fine; the shopper just starts a new configuration.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func sessionKey(sessionID string) string {
	return "cfg:sess:" + sessionID
}

// Get loads a session by id.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*configurator.Session, error) {
	blob, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		log.Printf("[session] load %s failed: %v", sessionID, err)
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session configurator.Session
	if err := json.Unmarshal(blob, &session); err != nil {
		log.Printf("[session] corrupt session %s: %v", sessionID, err)
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// Save writes a session back, refreshing its TTL.
func (s *SessionStore) Save(ctx context.Context, session *configurator.Session) error {
	session.Touch()

	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(session.ID), blob, sessionTTL).Err(); err != nil {
		log.Printf("[session] save %s failed: %v", session.ID, err)
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete discards a session.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

// AcquireSubmitLock enforces at most one in-flight inquiry submission per
// session, so repeated clicks cannot produce duplicate orders. Returns false
// when a submission is already running.
func (s *SessionStore) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, sessionKey(sessionID)+":submitting", "1", submitLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire submit lock: %w", err)
	}
	return ok, nil
}

// ReleaseSubmitLock allows the next submission attempt, e.g. after an
// upstream failure so the user can resubmit manually.
func (s *SessionStore) ReleaseSubmitLock(ctx context.Context, sessionID string) {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)+":submitting").Err(); err != nil {
		log.Printf("[session] release submit lock %s failed: %v", sessionID, err)
	}
}
