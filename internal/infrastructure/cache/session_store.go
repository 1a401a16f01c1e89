package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
)

const sessionKeyPrefix = "session:"

type sessionStore struct {
	cache Cache
	now   func() time.Time
}

// NewSessionStore keeps auth sessions in cache until they expire
func NewSessionStore(cache Cache) auth.SessionStore {
	return &sessionStore{cache: cache, now: time.Now}
}

func (s *sessionStore) Save(ctx context.Context, session *auth.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("session %s is already expired", session.ID)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+session.ID, session, ttl)
}

func (s *sessionStore) Get(ctx context.Context, sessionID string) (*auth.Session, error) {
	var session auth.Session
	found, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
