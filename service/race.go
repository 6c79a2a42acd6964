package service

import (
	"context"

	"boxbox/dao"
	"boxbox/dao/cache"
	"boxbox/models"
	"boxbox/pkg/log"
	"boxbox/pkg/response"

	"go.uber.org/zap"
)

var _ IRaceService = (*RaceService)(nil)

type IRaceService interface {
	List(ctx context.Context) ([]*models.Race, error)
	GetBySlug(ctx context.Context, slug string) (*models.Race, error)
}

type RaceService struct {
	RaceDAO     *dao.RaceDAO
	RaceStorage *cache.RaceStorage
}

// List 赛事列表，优先读缓存，缓存故障不阻断请求
func (s *RaceService) List(ctx context.Context) ([]*models.Race, error) {
	cached, err := s.RaceStorage.GetList(ctx)
	if err != nil {
		log.L.Warn("race cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	races, err := s.RaceDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.RaceStorage.SetList(ctx, races); err != nil {
		log.L.Warn("race cache write failed", zap.Error(err))
	}

	return races, nil
}

func (s *RaceService) GetBySlug(ctx context.Context, slug string) (*models.Race, error) {
	race, err := s.RaceDAO.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if race == nil {
		return nil, response.ErrNotFound("赛事不存在")
	}
	return race, nil
}
