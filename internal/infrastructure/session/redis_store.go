package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/DaSparky/daham-blogsite/internal/config"
	"github.com/DaSparky/daham-blogsite/pkg/logger"
)

// redisStore keeps sessions in Redis: key "session:<token>" holds the
// bound user id ("0" while anonymous), "session:<token>:flash" holds
// the pending flash messages as a list. Both expire together.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(cfg *config.RedisConfig, ttl time.Duration) Store {
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr:         cfg.Host,
			Password:     cfg.Password,
			DB:           cfg.DB,
			PoolSize:     10,
			MinIdleConns: 5,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
		ttl: ttl,
	}
}

func sessionKey(token string) string { return "session:" + token }
func flashKey(token string) string   { return "session:" + token + ":flash" }

func (s *redisStore) Create(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(token), "0", s.ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

func (s *redisStore) SetUser(ctx context.Context, token string, userID int64) error {
	key := sessionKey(token)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("set session user: %w", err)
	}
	if exists == 0 {
		return ErrSessionNotFound
	}
	if err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), s.ttl).Err(); err != nil {
		return fmt.Errorf("set session user: %w", err)
	}
	return nil
}

func (s *redisStore) ClearUser(ctx context.Context, token string) error {
	return s.SetUser(ctx, token, 0)
}

func (s *redisStore) UserID(ctx context.Context, token string) (int64, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("resolve session: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// Corrupt value; drop the session rather than guessing.
		logger.Warn("corrupt session value, destroying", map[string]interface{}{
			"token": token,
		})
		_ = s.Destroy(ctx, token)
		return 0, ErrSessionNotFound
	}
	return userID, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token), flashKey(token)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (s *redisStore) AddFlash(ctx context.Context, token, message string) error {
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, flashKey(token), message)
	pipe.Expire(ctx, flashKey(token), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add flash: %w", err)
	}
	return nil
}

func (s *redisStore) PopFlashes(ctx context.Context, token string) ([]string, error) {
	pipe := s.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, flashKey(token), 0, -1)
	pipe.Del(ctx, flashKey(token))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("pop flashes: %w", err)
	}
	return rangeCmd.Val(), nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
