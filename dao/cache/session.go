package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStorage 刷新令牌会话，登出或过期即失效
type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(redis *redis.Client) *SessionStorage {
	return &SessionStorage{redis: redis}
}

func (s *SessionStorage) key(userID int64) string {
	return fmt.Sprintf("boxbox:session:%d", userID)
}

func (s *SessionStorage) Set(ctx context.Context, userID int64, refreshToken string, expire time.Duration) error {
	return s.redis.Set(ctx, s.key(userID), refreshToken, expire).Err()
}

// Get 返回当前会话的刷新令牌，无会话返回空串
func (s *SessionStorage) Get(ctx context.Context, userID int64) (string, error) {
	val, err := s.redis.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *SessionStorage) Del(ctx context.Context, userID int64) error {
	return s.redis.Del(ctx, s.key(userID)).Err()
}
