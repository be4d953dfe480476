package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"ideaproof/internal/core/domain"
)

const sessionPrefix = "ideaproof:session:"

// SessionStore implements port.SessionStore with one JSON value per user.
// Every Put refreshes the TTL. Like the in-memory store, concurrent
// read-modify-write sequences for one user are last-write-wins.
type SessionStore struct {
	client goredis.Cmdable
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionStore(client goredis.Cmdable, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl, now: time.Now}
}

func (s *SessionStore) Get(ctx context.Context, userID string) (domain.Session, bool, error) {
	raw, err := s.client.Get(ctx, sessionPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.Session{}, false, nil
		}
		return domain.Session{}, false, fmt.Errorf("get session: %w", err)
	}
	var sess domain.Session
	if err = json.Unmarshal(raw, &sess); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return sess, true, nil
}

func (s *SessionStore) Put(ctx context.Context, sess domain.Session) error {
	sess.UpdatedAt = s.now().UTC()
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err = s.client.Set(ctx, sessionPrefix+sess.UserID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionPrefix+userID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
