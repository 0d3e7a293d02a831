// Package state provides session conversation history stores.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
)

const defaultTTL = 24 * time.Hour

// RedisHistoryStore keeps each session's turns in a Redis list. TTL is
// refreshed on every append so active sessions never expire mid-conversation.
type RedisHistoryStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// RedisOption configures a RedisHistoryStore.
type RedisOption func(*RedisHistoryStore)

// WithTTL overrides the default session expiry.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisHistoryStore) { s.ttl = ttl }
}

func NewRedisHistoryStore(rdb redis.Cmdable, opts ...RedisOption) *RedisHistoryStore {
	s := &RedisHistoryStore{rdb: rdb, ttl: defaultTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisHistoryStore) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s:turns", sessionID)
}

func (s *RedisHistoryStore) Load(ctx context.Context, sessionID string) ([]contractx.Turn, error) {
	key := s.sessionKey(sessionID)

	rows, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		log.Error().Err(err).Str("key", key).Msg("failed to load session history from redis")
		return nil, fmt.Errorf("load history: %w", err)
	}

	turns := make([]contractx.Turn, 0, len(rows))
	for i, row := range rows {
		var t contractx.Turn
		if err := json.Unmarshal([]byte(row), &t); err != nil {
			log.Error().Err(err).Str("sessionID", sessionID).Int("index", i).Msg("failed to unmarshal turn")
			return nil, fmt.Errorf("unmarshal turn at index %d: %w", i, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (s *RedisHistoryStore) Append(ctx context.Context, sessionID string, turns ...contractx.Turn) error {
	if len(turns) == 0 {
		return nil
	}
	key := s.sessionKey(sessionID)

	values := make([]any, 0, len(turns))
	for _, t := range turns {
		b, err := json.Marshal(t)
		if err != nil {
			log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to marshal turn")
			return fmt.Errorf("marshal turn: %w", err)
		}
		values = append(values, b)
	}

	if err := s.rdb.RPush(ctx, key, values...).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to push turns to redis")
		return fmt.Errorf("append history: %w", err)
	}
	// extend TTL on touch
	if s.ttl > 0 {
		if ok, err := s.rdb.Expire(ctx, key, s.ttl).Result(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to set expire")
			return fmt.Errorf("expire history: %w", err)
		} else if !ok {
			log.Warn().Str("key", key).Dur("ttl", s.ttl).Msg("failed to set TTL on session key")
		}
	}
	return nil
}

func (s *RedisHistoryStore) Delete(ctx context.Context, sessionID string) error {
	key := s.sessionKey(sessionID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete session history from redis")
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

var _ contractx.HistoryStore = (*RedisHistoryStore)(nil)
