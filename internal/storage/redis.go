package storage

import (
	"context"
	"errors"
	"time"

	"platepilot/internal/domain"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

type RedisOTPStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisOTPStore(client *redis.Client, ttl time.Duration) *RedisOTPStore {
	return &RedisOTPStore{Client: client, TTL: ttl}
}

func (s *RedisOTPStore) OTPKey(phone string) string {
	return "otp:" + phone
}

func (s *RedisOTPStore) Save(ctx context.Context, phone, code string) error {
	return s.Client.Set(ctx, s.OTPKey(phone), code, s.TTL).Err()
}

// Consume reports whether code matches the stored one and deletes it on a
// match, so a code verifies at most once.
func (s *RedisOTPStore) Consume(ctx context.Context, phone, code string) (bool, error) {
	key := s.OTPKey(phone)
	stored, err := s.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}

	deleted, err := s.Client.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// RedisRebuildLock serialises ledger rebuilds across sales-svc replicas.
type RedisRebuildLock struct {
	Locker *redislock.Client
	Key    string
	TTL    time.Duration
}

func NewRedisRebuildLock(client *redis.Client, ttl time.Duration) *RedisRebuildLock {
	return &RedisRebuildLock{
		Locker: redislock.New(client),
		Key:    "lock:sales:rebuild",
		TTL:    ttl,
	}
}

func (l *RedisRebuildLock) Acquire(ctx context.Context) (func(), error) {
	lock, err := l.Locker.Obtain(ctx, l.Key, l.TTL, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, domain.ErrRebuildInProgress
	}
	if err != nil {
		return nil, err
	}
	return func() {
		_ = lock.Release(context.Background())
	}, nil
}
