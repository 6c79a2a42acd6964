package cache

import (
	"context"
	"encoding/json"
	"time"

	"boxbox/models"

	"github.com/redis/go-redis/v9"
)

const (
	raceListKey = "boxbox:races"
	raceListTTL = 10 * time.Minute
)

// RaceStorage 赛事目录缓存
// 赛事是只读参考数据，短 TTL 缓存即可兜住绝大部分读流量
type RaceStorage struct {
	redis *redis.Client
}

func NewRaceStorage(redis *redis.Client) *RaceStorage {
	return &RaceStorage{redis: redis}
}

// GetList 读缓存，未命中返回 nil
func (s *RaceStorage) GetList(ctx context.Context) ([]*models.Race, error) {
	val, err := s.redis.Get(ctx, raceListKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var races []*models.Race
	if err := json.Unmarshal(val, &races); err != nil {
		return nil, err
	}
	return races, nil
}

func (s *RaceStorage) SetList(ctx context.Context, races []*models.Race) error {
	val, err := json.Marshal(races)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, raceListKey, val, raceListTTL).Err()
}
