package store

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/regportal/backend/internal/domain"
)

const txRetries = 5

// RedisStore keeps the whole record list as a JSON array under a single
// key. Read-modify-write cycles run under WATCH so a concurrent writer
// retries instead of silently losing the other session's update.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.UserRecord, error) {
	return s.load(ctx, s.client)
}

func (s *RedisStore) load(ctx context.Context, c redis.Cmdable) ([]domain.UserRecord, error) {
	raw, err := c.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.UserRecord{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get record list")
	}

	var records []domain.UserRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrap(err, "unmarshal record list")
	}
	return records, nil
}

func (s *RedisStore) Append(ctx context.Context, rec domain.UserRecord) error {
	return s.mutate(ctx, func(records []domain.UserRecord) ([]domain.UserRecord, error) {
		for _, existing := range records {
			if existing.UserName == rec.UserName {
				return nil, domain.ErrDuplicateEntry
			}
		}
		return append(records, rec), nil
	})
}

func (s *RedisStore) UpdateApproval(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus) error {
	return s.mutate(ctx, func(records []domain.UserRecord) ([]domain.UserRecord, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].IsApproved = status
				return records, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// mutate runs one optimistic read-modify-write cycle over the list key,
// retrying when another writer touches the key mid-transaction.
func (s *RedisStore) mutate(ctx context.Context, apply func([]domain.UserRecord) ([]domain.UserRecord, error)) error {
	txn := func(tx *redis.Tx) error {
		records, err := s.load(ctx, tx)
		if err != nil {
			return err
		}

		updated, err := apply(records)
		if err != nil {
			return err
		}

		raw, err := json.Marshal(updated)
		if err != nil {
			return errors.Wrap(err, "marshal record list")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, raw, 0)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < txRetries; i++ {
		err = s.client.Watch(ctx, txn, s.key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return errors.Wrap(err, "record list transaction retries exhausted")
}
