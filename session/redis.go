package session

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
	"travel-companion/domain"
)

// redisStore keeps sessions in Redis lists so several service instances
// can share them. Keys expire ttl after the last write.
type redisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore returns a Store backed by client. A ttl of zero keeps keys forever.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) Store {
	return &redisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *redisStore) historyKey(id string) string {
	return s.prefix + id + ":history"
}

func (s *redisStore) phrasesKey(id string) string {
	return s.prefix + id + ":phrases"
}

// PrependHistory pushes on the head of the list, so LRANGE yields most recent first.
func (s *redisStore) PrependHistory(ctx context.Context, id string, entry domain.HistoryEntry) error {
	if id == "" {
		return ErrNoSession
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}
	return s.push(ctx, id, s.historyKey(id), data, true)
}

func (s *redisStore) History(ctx context.Context, id string) ([]domain.HistoryEntry, error) {
	if id == "" {
		return nil, ErrNoSession
	}
	values, err := s.client.LRange(ctx, s.historyKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading history [%v]: %w", id, err)
	}
	out := make([]domain.HistoryEntry, 0, len(values))
	for _, v := range values {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			return nil, fmt.Errorf("decoding history entry: %w", err)
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *redisStore) ClearHistory(ctx context.Context, id string) error {
	if id == "" {
		return ErrNoSession
	}
	if err := s.client.Del(ctx, s.historyKey(id)).Err(); err != nil {
		return fmt.Errorf("clearing history [%v]: %w", id, err)
	}
	return nil
}

func (s *redisStore) AppendPhrase(ctx context.Context, id string, phrase domain.SavedPhrase) error {
	if id == "" {
		return ErrNoSession
	}
	data, err := json.Marshal(phrase)
	if err != nil {
		return fmt.Errorf("encoding phrase: %w", err)
	}
	return s.push(ctx, id, s.phrasesKey(id), data, false)
}

func (s *redisStore) Phrases(ctx context.Context, id string) ([]domain.SavedPhrase, error) {
	if id == "" {
		return nil, ErrNoSession
	}
	values, err := s.client.LRange(ctx, s.phrasesKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading phrases [%v]: %w", id, err)
	}
	out := make([]domain.SavedPhrase, 0, len(values))
	for _, v := range values {
		var phrase domain.SavedPhrase
		if err := json.Unmarshal([]byte(v), &phrase); err != nil {
			return nil, fmt.Errorf("decoding phrase: %w", err)
		}
		out = append(out, phrase)
	}
	return out, nil
}

// push adds data to the head or tail of key and, in the same transaction,
// refreshes the expiry of every key of session id so they expire together.
func (s *redisStore) push(ctx context.Context, id, key string, data []byte, head bool) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if head {
			pipe.LPush(ctx, key, data)
		} else {
			pipe.RPush(ctx, key, data)
		}
		if s.ttl > 0 {
			pipe.Expire(ctx, s.historyKey(id), s.ttl)
			pipe.Expire(ctx, s.phrasesKey(id), s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing [%v]: %w", key, err)
	}
	return nil
}
