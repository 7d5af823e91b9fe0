package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicare-portal/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type redisStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisStore(client *redis.Client, log *logrus.Logger) Store {
	return &redisStore{
		client: client,
		log:    log,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *redisStore) Create(ctx context.Context, sess *entity.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.ID), payload, ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess entity.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		// Corrupt stored data is discarded silently.
		s.log.WithField("session_id", id).Warn("Discarding corrupt session record")
		s.client.Del(ctx, sessionKey(id))
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
